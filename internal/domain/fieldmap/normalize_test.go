package fieldmap

import "testing"

func TestNormalizeHeaderEquivalentSpellings(t *testing.T) {
	variants := []string{"GPF NO", "gpf_no", "Gpf-No", "G.P.F NO", "GPF/NO", "(GPF NO)"}
	want := NormalizeHeader(variants[0])
	for _, v := range variants[1:] {
		if NormalizeHeader(v) != want {
			t.Fatalf("expected %q to normalize to %q, got %q", v, want, NormalizeHeader(v))
		}
	}
}

func TestNormalizeHeaderIdempotent(t *testing.T) {
	once := NormalizeHeader("Bank A/C Number")
	if NormalizeHeader(once) != once {
		t.Fatalf("normalization is not idempotent: %q -> %q", once, NormalizeHeader(once))
	}
}

func TestNormalizeHeaderEmpty(t *testing.T) {
	if NormalizeHeader("") != "" {
		t.Fatal("empty header must normalize to empty string")
	}
}

func TestResolveFirstCandidateOnly(t *testing.T) {
	headers := []string{"BASIC", "GPF"}
	row := []string{"1000", "500"}

	// Second candidate matches a header but must not be consulted.
	if _, ok := Resolve(headers, row, []string{"BASIC PAY FULL", "BASIC"}); ok {
		t.Fatal("resolver must only consult the first candidate")
	}
	got, ok := Resolve(headers, row, []string{"GPF", "GPF NO"})
	if !ok || got != "500" {
		t.Fatalf("expected 500 via first candidate, got %q ok=%v", got, ok)
	}
}

func TestResolveMissingInputs(t *testing.T) {
	if _, ok := Resolve(nil, nil, []string{"GPF"}); ok {
		t.Fatal("empty headers must resolve to not found")
	}
	if _, ok := Resolve([]string{"GPF"}, []string{"5"}, nil); ok {
		t.Fatal("empty candidate list must resolve to not found")
	}
}

func TestResolveBlankCellIsNotFound(t *testing.T) {
	headers := []string{"GPF", "PT"}
	row := []string{"   ", "200"}
	if _, ok := ResolveExact(headers, row, "GPF"); ok {
		t.Fatal("blank cell must count as not found")
	}
	got, ok := ResolveExact(headers, row, "pt")
	if !ok || got != "200" {
		t.Fatalf("expected 200, got %q ok=%v", got, ok)
	}
}

func TestResolveShortRow(t *testing.T) {
	// Header exists but the row is shorter than the header list.
	if _, ok := ResolveExact([]string{"A", "B"}, []string{"1"}, "B"); ok {
		t.Fatal("out-of-range cell must count as not found")
	}
}

func TestFindMapping(t *testing.T) {
	m, ok := Find("  employee net salary ")
	if !ok {
		t.Fatal("expected EMPLOYEE NET SALARY mapping")
	}
	if m.ExcelHeaderCandidates[0] != "EMPLOYEE NET SALARY" {
		t.Fatalf("unexpected first candidate %q", m.ExcelHeaderCandidates[0])
	}

	if _, ok := Find("NO SUCH FIELD"); ok {
		t.Fatal("unknown label must not resolve")
	}
}

func TestFindInCategory(t *testing.T) {
	if _, ok := FindInCategory("GPF", CategoryGovtRecovery); !ok {
		t.Fatal("GPF must be a government recovery")
	}
	if _, ok := FindInCategory("GPF", CategoryEmolument); ok {
		t.Fatal("GPF must not match the emolument category")
	}
	if _, ok := FindInCategory("EMPLOYEE NAME", CategoryHeaderInfo); !ok {
		t.Fatal("EMPLOYEE NAME must be header info")
	}
}

func TestRegistryCategoriesPopulated(t *testing.T) {
	counts := map[FieldCategory]int{}
	for _, m := range DefaultMappings {
		counts[m.Category]++
		if len(m.ExcelHeaderCandidates) == 0 {
			t.Fatalf("mapping %q has no header candidates", m.PayslipLabel)
		}
	}
	for _, c := range []FieldCategory{CategoryHeaderInfo, CategoryEmolument, CategoryGovtRecovery, CategoryNonGovtRecovery} {
		if counts[c] == 0 {
			t.Fatalf("category %q has no mappings", c)
		}
	}
}
