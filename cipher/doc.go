// Package cipher implements a keyed columnar transposition cipher.
//
// A key's characters are ordered with SortKey (letters by code point, digits
// after letters), and CalculateNumericKey maps every sorted position back to
// the 1-based position of that character in the original key. EncodeMessage
// uses that numeric key to scatter each block of len(key) message characters
// across the columns of a grid row, then reads every row left to right.
//
//	SortKey("2e1Ca")                     -> "Cae12"
//	CalculateNumericKey("2e1Ca", "Cae12") -> [4 5 2 3 1]
//	EncodeMessage("secretinformation", "2e1Ca")
//	                                     -> "ecrseonftiiatrm   on"
//
// Rows that end up with missing cells, either the final partial row or a
// row that lost cells to a key with repeated characters, are padded with
// spaces, so the output length is always a multiple of the key length.
//
// DecodeMessage inverts EncodeMessage for keys without repeated characters.
// The package also provides small key utilities: Inspect, Fingerprint and
// GenerateKey.
//
// All functions are pure and safe for concurrent use.
package cipher
