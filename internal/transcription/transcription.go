// Package transcription converts Cinix phonetic transcripts of
// reconstructed Middle Chinese into TUPA romanization for on-screen
// display.
//
// Cinix is the IPA-style notation produced by the reconstruction pipeline;
// TUPA is the Latin-letter notation shown beneath the narrated text.
// Conversion is one-directional and purely structural: each syllable is
// decomposed into onset, medial, nucleus, coda and tone, each slot is
// mapped through its own table, and the parts are reassembled. There is no
// shared state beyond the read-only tables, so conversions may run
// concurrently without coordination.
package transcription

import (
	"strings"

	"github.com/samber/lo"
)

// BoundaryMarker is the sentence-boundary token the transcript builder
// interleaves with syllables. It is not a syllable; callers strip it
// before conversion to keep the syllable-per-character alignment intact.
const BoundaryMarker = "."

// Convert converts a line of whitespace-separated Cinix syllables to TUPA,
// one output token per input token, joined by single spaces. Diagnostics
// are discarded; use ConvertLine to inspect them.
func Convert(line string) string {
	converted, _ := ConvertLine(line)
	return converted
}

// ConvertLine converts a line of whitespace-separated Cinix syllables and
// returns the diagnostics collected across all of them. Conversion never
// fails: unmapped symbols pass through unchanged and are reported.
func ConvertLine(line string) (string, []Diagnostic) {
	var diags []Diagnostic
	words := lo.Map(strings.Fields(line), func(word string, _ int) string {
		converted, wordDiags := ConvertSyllable(word)
		diags = append(diags, wordDiags...)
		return converted
	})
	return strings.Join(words, " "), diags
}

// StripBoundaryMarkers removes sentence-boundary tokens from a transcript
// line. The engine itself treats every token it receives as a syllable.
func StripBoundaryMarkers(line string) string {
	kept := lo.Filter(strings.Fields(line), func(token string, _ int) bool {
		return token != BoundaryMarker
	})
	return strings.Join(kept, " ")
}
