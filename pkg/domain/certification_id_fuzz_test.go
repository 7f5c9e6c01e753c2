package domain

import (
	"strings"
	"testing"
)

// FuzzParseCertificationID checks that parsing never panics and that every
// accepted id is stable under a second parse.
func FuzzParseCertificationID(f *testing.F) {
	f.Add("")
	f.Add("ARA-2024-0001")
	f.Add("ARA-9999-UNKNOWN")
	f.Add("  ARA-2024-0001  ")
	f.Add("'; DROP TABLE registry;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("ARA-2024-0001\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseCertificationID(input)
		if err != nil {
			return
		}
		if id == "" {
			t.Fatal("accepted id must not be empty")
		}
		if len(id) > MaxCertificationIDLength {
			t.Fatalf("accepted id exceeds max length: %d", len(id))
		}
		if strings.TrimSpace(id.String()) != id.String() {
			t.Fatal("accepted id must be trimmed")
		}
		again, err := ParseCertificationID(id.String())
		if err != nil || again != id {
			t.Fatalf("round-trip changed id: %q -> %q (%v)", id, again, err)
		}
	})
}
