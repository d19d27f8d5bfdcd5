package cipher

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "mixed letters and digits",
			key:  "2e1Ca",
			want: "Cae12",
		},
		{
			name: "empty key",
			key:  "",
			want: "",
		},
		{
			name: "lower-case letters",
			key:  "bca",
			want: "abc",
		},
		{
			name: "digits by value",
			key:  "9310",
			want: "0139",
		},
		{
			name: "upper-case before lower-case",
			key:  "a1B2",
			want: "Ba12",
		},
		{
			name: "repeated characters",
			key:  "b2ab2",
			want: "abb22",
		},
		{
			name: "non-ascii letters after ascii",
			key:  "é1a",
			want: "aé1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(SortKey([]rune(tt.key)))
			if got != tt.want {
				t.Errorf("SortKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestSortKeyDoesNotModifyInput(t *testing.T) {
	key := []rune("2e1Ca")
	SortKey(key)
	if string(key) != "2e1Ca" {
		t.Errorf("SortKey modified its input: %q", string(key))
	}
}

func TestSortKeyIsPermutation(t *testing.T) {
	keys := []string{"2e1Ca", "zZ9a0", "hello", "1111", "QwErTy123", "ключ7"}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			sorted := SortKey([]rune(key))
			if len(sorted) != len([]rune(key)) {
				t.Fatalf("len(SortKey(%q)) = %d, want %d", key, len(sorted), len([]rune(key)))
			}

			want := []rune(key)
			slices.Sort(want)
			got := slices.Clone(sorted)
			slices.Sort(got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("SortKey(%q) is not a permutation (-want +got):\n%s", key, diff)
			}
		})
	}
}

func TestCompareKeyChars(t *testing.T) {
	tests := []struct {
		left, right rune
		want        int
	}{
		{'a', 'b', -1},
		{'b', 'a', 1},
		{'a', 'a', 0},
		{'1', 'a', 1},
		{'a', '1', -1},
		{'1', '2', -1},
		{'7', '7', 0},
		{'Z', 'a', -1},
	}

	for _, tt := range tests {
		if got := compareKeyChars(tt.left, tt.right); got != tt.want {
			t.Errorf("compareKeyChars(%q, %q) = %d, want %d", tt.left, tt.right, got, tt.want)
		}
	}
}

func TestCalculateNumericKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		sortedKey string
		want      []int
	}{
		{
			name:      "mixed key",
			key:       "2e1Ca",
			sortedKey: "Cae12",
			want:      []int{4, 5, 2, 3, 1},
		},
		{
			name:      "already sorted",
			key:       "abc",
			sortedKey: "abc",
			want:      []int{1, 2, 3},
		},
		{
			name:      "repeated character uses last occurrence",
			key:       "abca",
			sortedKey: "aabc",
			want:      []int{4, 4, 2, 3},
		},
		{
			name:      "unknown character maps to zero",
			key:       "ab",
			sortedKey: "ax",
			want:      []int{1, 0},
		},
		{
			name:      "empty",
			key:       "",
			sortedKey: "",
			want:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateNumericKey([]rune(tt.key), []rune(tt.sortedKey))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CalculateNumericKey(%q, %q) mismatch (-want +got):\n%s", tt.key, tt.sortedKey, diff)
			}
		})
	}
}

func TestNumericKeyIsPermutation(t *testing.T) {
	keys := []string{"2e1Ca", "zyx", "Q1w2E3", "a", "0123456789abcdef"}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			splitKey := []rune(key)
			got := CalculateNumericKey(splitKey, SortKey(splitKey))
			slices.Sort(got)

			want := make([]int, len(splitKey))
			for i := range want {
				want[i] = i + 1
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("numeric key of %q is not a permutation of 1..%d (-want +got):\n%s", key, len(splitKey), diff)
			}
		})
	}
}

func TestHasRepeats(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"abc", false},
		{"abca", true},
		{"2e1Ca", false},
		{"aA", false},
		{"11", true},
	}

	for _, tt := range tests {
		if got := hasRepeats([]rune(tt.key)); got != tt.want {
			t.Errorf("hasRepeats(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
