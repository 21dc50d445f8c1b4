package tally

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTally(t *testing.T) {
	got := Tally([]int{20, 37, 20, 21, 20})
	want := map[int]int{20: 3, 37: 1, 21: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tally() mismatch (-want +got):\n%s", diff)
	}

	if got := Tally[string](nil); len(got) != 0 {
		t.Errorf("Tally(nil) = %v, want empty", got)
	}
}

func TestRunes(t *testing.T) {
	got := Runes("hello")
	want := map[rune]int{'h': 1, 'e': 1, 'l': 2, 'o': 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Runes() mismatch (-want +got):\n%s", diff)
	}
}

func TestCountDuplicates(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abcde", 0},
		{"abbcccd", 2},
		{"aabbcde", 2},
		{"aabBcde", 2},
		{"Indivisibility", 1},
		{"Indivisibilities", 2},
		{"aA11", 2},
		{"ABBA", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CountDuplicates(tt.input); got != tt.want {
				t.Errorf("CountDuplicates(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeDuplicates(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"din", "((("},
		{"recede", "()()()"},
		{"Success", ")())())"},
		{"(( @", "))(("},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EncodeDuplicates(tt.input); got != tt.want {
				t.Errorf("EncodeDuplicates(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFixCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"more lower", "code", "code"},
		{"tie prefers lower", "CoDe", "code"},
		{"more upper", "CODe", "CODE"},
		{"even split", "COde", "code"},
		{"digits count as lower", "AB12", "ab12"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixCase(tt.input); got != tt.want {
				t.Errorf("FixCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMumble(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abcd", "A-Bb-Ccc-Dddd"},
		{"RqaEzty", "R-Qq-Aaa-Eeee-Zzzzz-Tttttt-Yyyyyyy"},
		{"cwAt", "C-Ww-Aaa-Tttt"},
		{"é", "É"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Mumble(tt.input); got != tt.want {
				t.Errorf("Mumble(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestXO(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"xo", true},
		{"Xo", true},
		{"xxOo", true},
		{"xxxm", false},
		{"Oo", false},
		{"ooom", false},
		{"zpzpzpp", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := XO(tt.input); got != tt.want {
				t.Errorf("XO(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
