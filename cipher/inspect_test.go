package cipher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want KeyReport
	}{
		{
			name: "unique key",
			key:  "2e1Ca",
			want: KeyReport{
				Key:         "2e1Ca",
				Sorted:      "Cae12",
				Numeric:     []int{4, 5, 2, 3, 1},
				Fingerprint: Fingerprint("2e1Ca"),
				Unique:      true,
			},
		},
		{
			name: "repeated character",
			key:  "abca",
			want: KeyReport{
				Key:         "abca",
				Sorted:      "aabc",
				Numeric:     []int{4, 4, 2, 3},
				Fingerprint: Fingerprint("abca"),
				Unique:      false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Inspect(tt.key)
			if err != nil {
				t.Fatalf("Inspect(%q) unexpected error: %v", tt.key, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Inspect(%q) mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestInspectEmptyKey(t *testing.T) {
	if _, err := Inspect(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Inspect(\"\") error = %v, want %v", err, ErrInvalidArgument)
	}
}
