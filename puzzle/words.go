package puzzle

import (
	"errors"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	nonInteger     = regexp.MustCompile(`[^0-9+-]`)
	leadingInteger = regexp.MustCompile(`^[+-]?[0-9]+`)
)

// SortWords reorders the space separated words of sentence by the number
// embedded in each word, e.g. "is2 Thi1s T7est 4a" becomes
// "Thi1s is2 4a T7est". A word without a number is at position 0. When two
// words share a position the later one replaces the earlier.
func SortWords(sentence string) string {
	byPosition := make(map[int]string)
	for _, word := range strings.Split(sentence, " ") {
		byPosition[wordPosition(word)] = word
	}

	words := make([]string, 0, len(byPosition))
	for _, position := range slices.Sorted(maps.Keys(byPosition)) {
		words = append(words, byPosition[position])
	}
	return strings.Join(words, " ")
}

// wordPosition keeps the digits and sign characters of word and parses the
// integer they start with. Numbers too large for an int saturate.
func wordPosition(word string) int {
	digits := leadingInteger.FindString(nonInteger.ReplaceAllString(word, ""))
	position, err := strconv.Atoi(digits)
	switch {
	case errors.Is(err, strconv.ErrRange):
		if strings.HasPrefix(digits, "-") {
			return math.MinInt
		}
		return math.MaxInt
	case err != nil:
		return 0
	}
	return position
}
