package cipher

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerateKey(t *testing.T) {
	for _, length := range []int{1, 5, 10, MaxGeneratedKeyLength} {
		key, err := GenerateKey(length)
		if err != nil {
			t.Fatalf("GenerateKey(%d) unexpected error: %v", length, err)
		}
		if n := utf8.RuneCountInString(key); n != length {
			t.Errorf("GenerateKey(%d) = %q with %d characters", length, key, n)
		}
		if hasRepeats([]rune(key)) {
			t.Errorf("GenerateKey(%d) = %q repeats a character", length, key)
		}
		if strings.Trim(key, "0123456789abcdef") != "" {
			t.Errorf("GenerateKey(%d) = %q contains non-hex characters", length, key)
		}
	}
}

func TestGenerateKeyEncodesAndDecodes(t *testing.T) {
	key, err := GenerateKey(7)
	if err != nil {
		t.Fatalf("GenerateKey() unexpected error: %v", err)
	}
	encoded, err := EncodeMessage("generated keys round trip", key)
	if err != nil {
		t.Fatalf("EncodeMessage() unexpected error: %v", err)
	}
	decoded, err := DecodeMessage(encoded, key)
	if err != nil {
		t.Fatalf("DecodeMessage() unexpected error: %v", err)
	}
	if got := strings.TrimRight(decoded, " "); got != "generated keys round trip" {
		t.Errorf("round trip with generated key %q = %q", key, got)
	}
}

func TestGenerateKeyInvalidLength(t *testing.T) {
	for _, length := range []int{-1, 0, MaxGeneratedKeyLength + 1} {
		if _, err := GenerateKey(length); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("GenerateKey(%d) error = %v, want %v", length, err, ErrInvalidArgument)
		}
	}
}
