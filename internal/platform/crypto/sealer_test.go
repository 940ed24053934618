package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	key := hex.EncodeToString(bytes.Repeat([]byte{0x42}, 32))
	s, err := NewSealer(key)
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	if !s.Configured() {
		t.Fatal("sealer must be configured with a 32-byte key")
	}

	sealed, err := s.Seal([]byte("JBSWY3DPEHPK3PXP"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if bytes.Equal(sealed, []byte("JBSWY3DPEHPK3PXP")) {
		t.Fatal("sealed value must differ from plaintext")
	}

	plain, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if string(plain) != "JBSWY3DPEHPK3PXP" {
		t.Fatalf("round trip = %q", plain)
	}
}

func TestUnconfiguredSealerPassesThrough(t *testing.T) {
	s, err := NewSealer("")
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	sealed, err := s.Seal([]byte("plain"))
	if err != nil || string(sealed) != "plain" {
		t.Fatalf("pass-through seal = %q, %v", sealed, err)
	}
}

func TestSealerRejectsShortKey(t *testing.T) {
	if _, err := NewSealer(hex.EncodeToString([]byte("short"))); err == nil {
		t.Fatal("short key must be rejected")
	}
}
