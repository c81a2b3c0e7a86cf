package services

import (
	"strings"
	"testing"
)

func TestRandomTeamCodeFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := randomTeamCode()
		if len(code) != 6 {
			t.Fatalf("expected 6-character code, got %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(teamCodeAlphabet, r) {
				t.Fatalf("code %q contains invalid character %q", code, r)
			}
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("code %q is not uppercase", code)
		}
		seen[code] = true
	}
	// 50 draws from a 36^6 space colliding down to a handful would mean
	// the generator is broken.
	if len(seen) < 25 {
		t.Fatalf("expected mostly distinct codes, got %d unique of 50", len(seen))
	}
}

func TestRandomTeamCodeCoversAlphabet(t *testing.T) {
	// ~12000 character draws against a 36-character alphabet: every
	// character should show up unless the sampling is skewed.
	counts := map[rune]int{}
	for i := 0; i < 2000; i++ {
		for _, r := range randomTeamCode() {
			counts[r]++
		}
	}
	for _, r := range teamCodeAlphabet {
		if counts[r] == 0 {
			t.Fatalf("character %q never generated across 2000 codes", r)
		}
	}
}
