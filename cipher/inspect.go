package cipher

// KeyReport describes how a key drives the transposition.
type KeyReport struct {
	Key         string `json:"key" yaml:"key"`
	Sorted      string `json:"sorted" yaml:"sorted"`
	Numeric     []int  `json:"numeric" yaml:"numeric"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
	Unique      bool   `json:"unique" yaml:"unique"` // false if the key repeats a character and cannot decode
}

// Inspect derives the sorted and numeric forms of key.
func Inspect(key string) (KeyReport, error) {
	splitKey := []rune(key)
	if len(splitKey) == 0 {
		return KeyReport{}, errEmptyKey
	}
	sorted := SortKey(splitKey)
	return KeyReport{
		Key:         key,
		Sorted:      string(sorted),
		Numeric:     CalculateNumericKey(splitKey, sorted),
		Fingerprint: Fingerprint(key),
		Unique:      !hasRepeats(splitKey),
	}, nil
}
