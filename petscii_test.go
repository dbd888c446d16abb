package bc64

import "testing"

func TestPetsciiToASCIIUnshiftedLowersCase(t *testing.T) {
	if got := petsciiToASCII("GAME"); got != "game" {
		t.Fatalf("got %q, want %q", got, "game")
	}
}

func TestPetsciiToASCIIShiftedStaysUpperCase(t *testing.T) {
	shifted := string([]byte{0xc7, 0xc1, 0xcd, 0xc5})
	if got := petsciiToASCII(shifted); got != "GAME" {
		t.Fatalf("got %q, want %q", got, "GAME")
	}
}

func TestPetsciiToASCIIPassesThroughSymbols(t *testing.T) {
	if got := petsciiToASCII("$"); got != "$" {
		t.Fatalf("got %q, want %q", got, "$")
	}
}
