package puzzle

import (
	"fmt"
	"slices"
	"strings"
)

type letterGroup struct {
	count int
	last  int // index of the last string with this letter set
}

// FindUnique returns the string whose letters differ from the others.
//
// Strings are compared by their letter sets: case, repetition, order and
// non-word characters are ignored, so "abc", "C b a" and "aabbcc" are alike.
// The least common letter set wins, the earliest seen on a tie, and the last
// string with that set is returned.
func FindUnique(set []string) (string, error) {
	if len(set) == 0 {
		return "", fmt.Errorf("find unique: %w", ErrEmptySet)
	}

	groups := make(map[string]*letterGroup)
	var order []string
	for i, s := range set {
		letters := letterSet(s)
		group, ok := groups[letters]
		if !ok {
			group = &letterGroup{}
			groups[letters] = group
			order = append(order, letters)
		}
		group.count++
		group.last = i
	}

	rarest := order[0]
	for _, letters := range order[1:] {
		if groups[letters].count < groups[rarest].count {
			rarest = letters
		}
	}
	return set[groups[rarest].last], nil
}

// letterSet returns the distinct lower-cased word characters of s, sorted.
func letterSet(s string) string {
	chars := []rune(strings.ToLower(nonWord.ReplaceAllString(s, "")))
	slices.Sort(chars)
	return string(slices.Compact(chars))
}
