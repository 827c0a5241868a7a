package transcription

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ConvertSyllable converts a single Cinix syllable to its TUPA spelling.
//
// The syllable is canonically decomposed, cut into onset, medial, nucleus,
// coda and tone, each slot is mapped through its table, and the parts are
// recomposed in that order. Symbols without a table entry pass through
// unchanged; every anomaly is reported as a diagnostic, never an error.
func ConvertSyllable(syllable string) (string, []Diagnostic) {
	if syllable == "" {
		return "", nil
	}

	var diags []Diagnostic
	report := func(kind DiagnosticKind, slot Slot, symbol string) {
		diags = append(diags, Diagnostic{Syllable: syllable, Slot: slot, Symbol: symbol, Kind: kind})
	}

	runes := []rune(norm.NFD.String(syllable))

	onset, rhyme := splitOnsetRhyme(runes)
	if len(rhyme) == 0 {
		report(DegenerateSyllable, SlotSyllable, "")
	}

	// TUPA does not encode vowel length.
	rhyme = dropLengthMarks(rhyme)

	medialNucleus, coda := splitCoda(rhyme)

	toneless, tone, leftover := extractTone(string(medialNucleus))
	if leftover != 0 {
		report(MalformedTone, SlotTone, string(leftover))
	}

	medial, nucleus := splitMedialNucleus(norm.NFC.String(toneless))

	mapSlot := func(slot Slot, symbol string, romanize func() (string, bool)) string {
		if symbol == "" {
			return ""
		}
		spelling, ok := romanize()
		if !ok {
			report(UnknownSymbol, slot, symbol)
		}
		return spelling
	}

	onsetOut := mapSlot(SlotOnset, onset, Onset(onset).Romanize)
	codaOut := mapSlot(SlotCoda, string(coda), Coda(coda).Romanize)

	var medialOut, nucleusOut string
	if spelling, ok := specialPair(medial + nucleus); ok {
		nucleusOut = spelling
	} else {
		medialOut = mapSlot(SlotMedial, medial, Medial(medial).Romanize)
		nucleusOut = mapSlot(SlotNucleus, nucleus, Nucleus(nucleus).Romanize)
	}

	// ɦ is not written before the rounded and high vowels u and y. A
	// closed exception, not a general rule.
	if onsetOut == "gh" {
		switch {
		case nucleusOut == "u", nucleusOut == "y", medialOut == "u", medialOut == "y":
			onsetOut = ""
		}
	}

	return norm.NFC.String(onsetOut + medialOut + nucleusOut + codaOut + tone.Suffix()), diags
}

// splitOnsetRhyme cuts the decomposed syllable at its first vowel.
// Everything before it is the onset; without a vowel the whole syllable is
// treated as onset.
func splitOnsetRhyme(runes []rune) (onset string, rhyme []rune) {
	for i, r := range runes {
		if isVowel(r) {
			return string(runes[:i]), runes[i:]
		}
	}
	return string(runes), nil
}

func dropLengthMarks(rhyme []rune) []rune {
	kept := make([]rune, 0, len(rhyme))
	for _, r := range rhyme {
		if r != lengthMark {
			kept = append(kept, r)
		}
	}
	return kept
}

// splitCoda walks the rhyme backwards until it meets a rune that cannot
// close a syllable. A rhyme begins with its vowel, so the scan normally
// stops there at the latest; should every rune be coda-eligible, the whole
// rhyme is kept as the coda rather than dropped.
func splitCoda(rhyme []rune) (medialNucleus, coda []rune) {
	for i := len(rhyme) - 1; i >= 0; i-- {
		if !isCodaEligible(rhyme[i]) {
			return rhyme[:i+1], rhyme[i+1:]
		}
	}
	return nil, rhyme
}

// extractTone strips the syllable's tone mark from the medial+nucleus
// complex. Marks are tried in a fixed order and only the first match is
// taken; a second recognized mark is left in place and returned so the
// caller can report it.
func extractTone(medialNucleus string) (toneless string, tone Tone, leftover rune) {
	toneless = medialNucleus
	tone = ToneNone
	for _, t := range []Tone{ToneAcute, ToneGrave, ToneCaron} {
		if strings.ContainsRune(toneless, rune(t)) {
			toneless = strings.ReplaceAll(toneless, string(rune(t)), "")
			tone = t
			break
		}
	}
	for _, r := range toneless {
		if isToneMark(r) {
			leftover = r
			break
		}
	}
	return toneless, tone, leftover
}

// splitMedialNucleus separates the glide from the vowel by rune count of
// the recomposed complex: the last rune is the nucleus, anything before it
// the medial.
func splitMedialNucleus(medialNucleus string) (medial, nucleus string) {
	runes := []rune(medialNucleus)
	if len(runes) == 0 {
		return "", ""
	}
	return string(runes[:len(runes)-1]), string(runes[len(runes)-1:])
}
