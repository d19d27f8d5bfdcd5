package puzzle

import (
	"regexp"
	"strings"
	"unicode"
)

const shortcutLength = 3

var nonWord = regexp.MustCompile(`\W`)

// BigLetterShortcut returns up to three upper-case characters taken from text.
// Characters that upper-casing leaves unchanged (capitals, digits and '_') are
// used first, in order. If there are fewer than three, the first small letters
// of text fill the remainder, upper-cased.
func BigLetterShortcut(text string) string {
	var big, small []rune
	for _, char := range nonWord.ReplaceAllString(text, "") {
		if len(big) > shortcutLength {
			break
		}
		if unicode.ToUpper(char) == char {
			big = append(big, char)
			continue
		}
		if len(small) < shortcutLength {
			small = append(small, char)
		}
	}

	if len(big) >= shortcutLength {
		return string(big[:shortcutLength])
	}
	fill := min(len(small), shortcutLength-len(big))
	return string(big) + strings.ToUpper(string(small[:fill]))
}
