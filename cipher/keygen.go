package cipher

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxGeneratedKeyLength is the longest key GenerateKey can produce: one of
// each hex digit.
const MaxGeneratedKeyLength = 16

// GenerateKey returns a random key of length distinct characters.
// Characters are taken from the hex digits of random UUIDs in the order they
// appear, so keys mix lower-case letters and digits.
func GenerateKey(length int) (string, error) {
	if length < 1 || length > MaxGeneratedKeyLength {
		return "", fmt.Errorf("%w: key length must be between 1 and %d, got %d",
			ErrInvalidArgument, MaxGeneratedKeyLength, length)
	}

	var key strings.Builder
	seen := make(map[rune]bool, length)
	for len(seen) < length {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("generating key: %w", err)
		}
		for _, char := range strings.ReplaceAll(id.String(), "-", "") {
			if seen[char] {
				continue
			}
			seen[char] = true
			key.WriteRune(char)
			if len(seen) == length {
				break
			}
		}
	}
	return key.String(), nil
}
