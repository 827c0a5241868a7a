package transcription

import (
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pèn", "pen"},
		{"kʰị̌ː", "khyih"}, // kʰị̌ː: aspirated onset, long vowel, caron tone
		{"pèn ɖiàŋ", "pen driaeng"},
		{"ʔàn", "qaen"},
		{"kʷɑ̀n", "kwan"}, // kʷɑ̀n: labial medial
		{"kiaŋ", "kiaeng"},
		{"ɨə", "yo"},
		{"kɨəŋ", "kyong"},
		{"ʉu", "u"},
		{"ɦʉ́", "uq"}, // ɦʉ́: gh elided before u
		{"ɦi", "ghi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Convert(tt.input); got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestConvertPreservesTokenCount(t *testing.T) {
	inputs := []string{
		"pèn ɖiàŋ",
		"ʔ a . x",
		"  spaced \t out  tokens ",
		"zzz 123 ???",
	}
	for _, input := range inputs {
		got := Convert(input)
		if len(strings.Fields(got)) != len(strings.Fields(input)) {
			t.Errorf("Convert(%q) = %q: token count %d, want %d",
				input, got, len(strings.Fields(got)), len(strings.Fields(input)))
		}
	}
}

func TestConvertDeterministic(t *testing.T) {
	input := "pèn ɖiàŋ ʔàn kiaŋ"
	first := Convert(input)
	for i := 0; i < 3; i++ {
		if got := Convert(input); got != first {
			t.Fatalf("Convert(%q) changed between calls: %q then %q", input, first, got)
		}
	}
}

func TestStripBoundaryMarkers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{". pèn . ɖiàŋ .", "pèn ɖiàŋ"},
		{"pèn ɖiàŋ", "pèn ɖiàŋ"},
		{".", ""},
		{"...", "..."}, // only the bare marker token is a boundary
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripBoundaryMarkers(tt.input); got != tt.want {
			t.Errorf("StripBoundaryMarkers(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
