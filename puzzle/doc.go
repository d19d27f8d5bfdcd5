// Package puzzle provides small string puzzles.
//
//   - BigLetterShortcut builds a three letter shortcut from the capitals of a
//     phrase, falling back to its first small letters.
//   - SortWords orders the words of a sentence by the number each word carries.
//   - FindUnique finds the one string whose set of letters differs from the
//     rest.
//
// Only the ASCII word characters [A-Za-z0-9_] are significant to
// BigLetterShortcut and FindUnique; everything else is ignored.
package puzzle
