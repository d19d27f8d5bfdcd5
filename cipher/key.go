package cipher

import (
	"cmp"
	"slices"
)

// SortKey returns the characters of key ordered letters first, digits last.
// Non-digits are ordered by code point, so upper-case letters come before
// lower-case ones; digits are ordered by value. Equal characters keep their
// relative order. The input slice is not modified.
func SortKey(key []rune) []rune {
	sorted := slices.Clone(key)
	slices.SortStableFunc(sorted, compareKeyChars)
	return sorted
}

// compareKeyChars is the three-way comparator behind SortKey.
func compareKeyChars(left, right rune) int {
	leftNumeric, rightNumeric := isNumeric(left), isNumeric(right)
	switch {
	case leftNumeric && !rightNumeric:
		return 1
	case !leftNumeric && rightNumeric:
		return -1
	default:
		// For single digits code point order is value order.
		return cmp.Compare(left, right)
	}
}

// isNumeric reports whether r would parse as a number on its own.
func isNumeric(r rune) bool {
	return r >= '0' && r <= '9'
}

// CalculateNumericKey returns, for every character of sortedKey, its 1-based
// position in key.
//
// If key repeats a character, the position of its last occurrence is used for
// every copy. A character of sortedKey that does not appear in key maps to 0.
func CalculateNumericKey(key, sortedKey []rune) []int {
	positions := make(map[rune]int, len(key))
	for i, char := range key {
		positions[char] = i + 1
	}

	numericKey := make([]int, 0, len(sortedKey))
	for _, char := range sortedKey {
		numericKey = append(numericKey, positions[char])
	}
	return numericKey
}

// numericKeyFor splits key and derives its numeric key.
func numericKeyFor(key string) ([]int, error) {
	splitKey := []rune(key)
	if len(splitKey) == 0 {
		return nil, errEmptyKey
	}
	return CalculateNumericKey(splitKey, SortKey(splitKey)), nil
}

// hasRepeats reports whether any character appears more than once in key.
func hasRepeats(key []rune) bool {
	seen := make(map[rune]struct{}, len(key))
	for _, char := range key {
		if _, ok := seen[char]; ok {
			return true
		}
		seen[char] = struct{}{}
	}
	return false
}
