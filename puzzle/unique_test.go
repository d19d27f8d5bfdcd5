package puzzle

import (
	"errors"
	"testing"
)

func TestFindUnique(t *testing.T) {
	tests := []struct {
		name string
		set  []string
		want string
	}{
		{
			name: "repeated letters",
			set:  []string{"Aa", "aaa", "aaaaa", "BbBb", "Aaaa", "AaAaAa", "a"},
			want: "BbBb",
		},
		{
			name: "anagrams",
			set:  []string{"abc", "acb", "bac", "foo", "bca", "cab", "cba"},
			want: "foo",
		},
		{
			name: "three strings",
			set:  []string{"silvia", "vasili", "victor"},
			want: "victor",
		},
		{
			name: "spaces are not significant",
			set:  []string{"Tom Marvolo Riddle", "I am Lord Voldemort", "Harry Potter"},
			want: "Harry Potter",
		},
		{
			name: "only spaces is empty",
			set:  []string{"     ", "a", " "},
			want: "a",
		},
		{
			name: "last string of the rarest set",
			set:  []string{"ab", "ba", "c", "c", "c"},
			want: "ba",
		},
		{
			name: "tie resolves to first seen set",
			set:  []string{"ab", "cd"},
			want: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindUnique(tt.set)
			if err != nil {
				t.Fatalf("FindUnique(%q) unexpected error: %v", tt.set, err)
			}
			if got != tt.want {
				t.Errorf("FindUnique(%q) = %q, want %q", tt.set, got, tt.want)
			}
		})
	}
}

func TestFindUniqueEmptySet(t *testing.T) {
	if _, err := FindUnique(nil); !errors.Is(err, ErrEmptySet) {
		t.Errorf("FindUnique(nil) error = %v, want %v", err, ErrEmptySet)
	}
}

func TestLetterSet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cab", "abc"},
		{"C b a", "abc"},
		{"aabbcc", "abc"},
		{"   ", ""},
		{"x_1", "1_x"},
	}

	for _, tt := range tests {
		if got := letterSet(tt.input); got != tt.want {
			t.Errorf("letterSet(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
