package cipher

import "fmt"

// padding fills grid cells that no message character was written to.
const padding = ' '

// grid is the row-major buffer a message is scattered into. Every cell starts
// out as padding.
type grid struct {
	width int
	cells []rune
}

func newGrid(length, width int) *grid {
	rows := (length + width - 1) / width
	cells := make([]rune, rows*width)
	for i := range cells {
		cells[i] = padding
	}
	return &grid{width: width, cells: cells}
}

func (g *grid) rows() int {
	return len(g.cells) / g.width
}

func (g *grid) set(row, col int, char rune) {
	g.cells[row*g.width+col] = char
}

func (g *grid) get(row, col int) rune {
	return g.cells[row*g.width+col]
}

// String reads the grid row by row, each row in ascending column order.
func (g *grid) String() string {
	return string(g.cells)
}

// EncodeMessage encrypts message with the columnar transposition derived from
// key.
//
// The n-th character of every block of len(key) characters is written to
// column NumericKey[n]-1 of that block's row. If key repeats a character, two
// positions of a block share a column and the later character wins. Missing
// cells are padded with spaces, so the result holds len(message) rounded up to
// a multiple of len(key) characters. Lengths are counted in runes.
//
// An empty key returns ErrInvalidArgument. An empty message encodes to "".
func EncodeMessage(message, key string) (string, error) {
	numericKey, err := numericKeyFor(key)
	if err != nil {
		return "", err
	}

	chars := []rune(message)
	if len(chars) == 0 {
		return "", nil
	}

	width := len(numericKey)
	g := newGrid(len(chars), width)
	for i, char := range chars {
		row, cursor := i/width, i%width
		g.set(row, numericKey[cursor]-1, char)
	}
	return g.String(), nil
}

// DecodeMessage reverses EncodeMessage. The result still carries the padding
// added to the final row; trim trailing spaces if the plaintext had none.
//
// Keys that repeat a character lose information during encoding and are
// rejected with ErrDuplicateKey. A ciphertext whose length is not a multiple
// of the key length returns ErrInvalidArgument.
func DecodeMessage(ciphertext, key string) (string, error) {
	splitKey := []rune(key)
	if len(splitKey) == 0 {
		return "", errEmptyKey
	}
	if hasRepeats(splitKey) {
		return "", fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	numericKey := CalculateNumericKey(splitKey, SortKey(splitKey))

	chars := []rune(ciphertext)
	width := len(numericKey)
	if len(chars)%width != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of key length %d",
			ErrInvalidArgument, len(chars), width)
	}

	g := &grid{width: width, cells: chars}
	plain := make([]rune, 0, len(chars))
	for row := 0; row < g.rows(); row++ {
		for cursor := range width {
			plain = append(plain, g.get(row, numericKey[cursor]-1))
		}
	}
	return string(plain), nil
}
