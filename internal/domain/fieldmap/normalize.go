package fieldmap

import "strings"

// NormalizeHeader canonicalizes a spreadsheet header for comparison. Paybill
// spreadsheets arrive with free-form column names ("GPF NO", "gpf_no",
// "Gpf-No"), so comparisons are done on a lowercased form with whitespace,
// dots, underscores, hyphens, slashes and parentheses removed. The result is
// a lookup key only, never display text.
func NormalizeHeader(header string) string {
	var b strings.Builder
	b.Grow(len(header))
	for _, r := range strings.ToLower(header) {
		switch r {
		case ' ', '\t', '\n', '\r', '.', '_', '-', '/', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ResolveExact returns the cell under the header matching excelHeader after
// normalization. Cells that are absent or blank after trimming count as not
// found.
func ResolveExact(rawHeaders, rawDataRow []string, excelHeader string) (string, bool) {
	if len(rawHeaders) == 0 || len(rawDataRow) == 0 || excelHeader == "" {
		return "", false
	}
	want := NormalizeHeader(excelHeader)
	for i, h := range rawHeaders {
		if NormalizeHeader(h) != want {
			continue
		}
		if i >= len(rawDataRow) {
			return "", false
		}
		if strings.TrimSpace(rawDataRow[i]) == "" {
			return "", false
		}
		return rawDataRow[i], true
	}
	return "", false
}

// Resolve looks up a row value for a mapped field. Only the first candidate
// header is consulted; the remaining candidates are carried as configuration
// but are intentionally not tried, since widening the match would change
// which spreadsheet columns resolve on existing paybills.
func Resolve(rawHeaders, rawDataRow []string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	return ResolveExact(rawHeaders, rawDataRow, candidates[0])
}
