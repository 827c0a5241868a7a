package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSyllableUnknownOnset(t *testing.T) {
	converted, diags := ConvertSyllable("ʁa")
	assert.Equal(t, "ʁae", converted)
	require.Len(t, diags, 1)
	assert.Equal(t, UnknownSymbol, diags[0].Kind)
	assert.Equal(t, SlotOnset, diags[0].Slot)
	assert.Equal(t, "ʁ", diags[0].Symbol)
	assert.Equal(t, "ʁa", diags[0].Syllable)
}

func TestConvertSyllableNoVowel(t *testing.T) {
	converted, diags := ConvertSyllable("ʂ")
	assert.Equal(t, "sr", converted)
	require.Len(t, diags, 1)
	assert.Equal(t, DegenerateSyllable, diags[0].Kind)
	assert.Equal(t, SlotSyllable, diags[0].Slot)
}

func TestConvertSyllableBoundaryMarkerDoesNotCrash(t *testing.T) {
	// Callers are supposed to strip "." tokens; if one slips through it
	// must survive as-is.
	converted, diags := ConvertSyllable(".")
	assert.Equal(t, ".", converted)
	assert.NotEmpty(t, diags)
}

func TestConvertSyllableMultipleToneMarks(t *testing.T) {
	// e carrying both acute and grave: the acute wins, the grave stays on
	// the vowel and is reported.
	converted, diags := ConvertSyllable("pe\u0301\u0300n")
	assert.Equal(t, "pènq", converted)
	require.Len(t, diags, 2)
	assert.Equal(t, MalformedTone, diags[0].Kind)
	assert.Equal(t, SlotTone, diags[0].Slot)
	assert.Equal(t, UnknownSymbol, diags[1].Kind)
	assert.Equal(t, SlotNucleus, diags[1].Slot)
}

func TestToneSuffixes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ká", "kaeq"},
		{"kǎ", "kaeh"},
		{"kà", "kae"},
		{"ka", "kae"},
	}
	for _, tt := range tests {
		converted, diags := ConvertSyllable(tt.input)
		assert.Equal(t, tt.want, converted, "input %q", tt.input)
		assert.Empty(t, diags, "input %q", tt.input)
	}
}

func TestElisionAfterMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ɦʉ", "u"},    // mapped nucleus u
		{"ɦɨ", "y"},    // mapped nucleus y
		{"ɦỵɑ", "ua"},  // mapped medial u
		{"ɦu", "ghou"}, // nucleus maps to ou, no elision
		{"ɦʷɑ", "ghwa"},
		{"ɦi", "ghi"},
	}
	for _, tt := range tests {
		converted, diags := ConvertSyllable(tt.input)
		assert.Equal(t, tt.want, converted, "input %q", tt.input)
		assert.Empty(t, diags, "input %q", tt.input)
	}
}

func TestSplitCodaTerminatesOnAllCodaEligibleRhyme(t *testing.T) {
	// A rhyme made entirely of coda symbols cannot come out of
	// splitOnsetRhyme, but the backward scan must still terminate and
	// keep the text.
	medialNucleus, coda := splitCoda([]rune("ŋk"))
	assert.Empty(t, medialNucleus)
	assert.Equal(t, "ŋk", string(coda))

	medialNucleus, coda = splitCoda([]rune("aŋ"))
	assert.Equal(t, "a", string(medialNucleus))
	assert.Equal(t, "ŋ", string(coda))

	medialNucleus, coda = splitCoda(nil)
	assert.Empty(t, medialNucleus)
	assert.Empty(t, coda)
}

func TestExtractToneOrder(t *testing.T) {
	// Inputs are decomposed, as extractTone sees them mid-pipeline.
	toneless, tone, leftover := extractTone("a\u0301")
	assert.Equal(t, "a", toneless)
	assert.Equal(t, ToneAcute, tone)
	assert.Zero(t, leftover)

	toneless, tone, leftover = extractTone("ia")
	assert.Equal(t, "ia", toneless)
	assert.Equal(t, ToneNone, tone)
	assert.Zero(t, leftover)

	// Acute is checked before grave even when the grave comes first.
	toneless, tone, leftover = extractTone("a\u0300e\u0301")
	assert.Equal(t, "a\u0300e", toneless)
	assert.Equal(t, ToneAcute, tone)
	assert.Equal(t, rune(graveAccent), leftover)
}
