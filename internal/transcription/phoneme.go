package transcription

// Combining marks and modifiers recognized while scanning a decomposed
// syllable.
const (
	acuteAccent = '\u0301'
	graveAccent = '\u0300'
	caronMark   = '\u030c'
	lengthMark  = '\u02d0'
)

// isVowel reports whether r can start a rhyme. ʷ counts: as a medial it
// always sits between onset and nucleus, so it marks the rhyme start as
// surely as a vowel does.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'ɑ', 'ɨ', 'ə', 'ʉ', 'y', 'ʷ':
		return true
	}
	return false
}

// isCodaEligible reports whether r may close a syllable: the nasals, the
// stops and the two offglides.
func isCodaEligible(r rune) bool {
	switch r {
	case 'm', 'n', 'ŋ', 'p', 't', 'k', 'j', 'w':
		return true
	}
	return false
}

func isToneMark(r rune) bool {
	switch r {
	case acuteAccent, graveAccent, caronMark:
		return true
	}
	return false
}

// Onset is the syllable-initial consonant cluster in Cinix notation.
type Onset string

// Romanize returns the TUPA spelling of the onset. ok is false when the
// onset is outside the attested inventory; callers fall back to the
// source spelling.
func (o Onset) Romanize() (spelling string, ok bool) {
	switch o {
	// Spelled the same in TUPA.
	case "p", "b", "m", "t", "d", "n", "s", "z", "l", "j", "k", "g", "h":
		return string(o), true
	case "pʰ":
		return "ph", true
	case "tʰ":
		return "th", true
	case "kʰ":
		return "kh", true
	case "ʦ":
		return "ts", true
	case "ʦʰ":
		return "tsh", true
	case "ʣ":
		return "dz", true
	case "ɕ":
		return "sj", true
	case "ʑ":
		return "zj", true
	case "ʨ":
		return "tj", true
	case "ʨʰ":
		return "tjh", true
	case "ʥ":
		return "dj", true
	case "ɲ":
		return "nj", true
	case "ʂ":
		return "sr", true
	case "ʈ":
		return "tr", true
	case "ɖ":
		return "dr", true
	case "ɳ":
		return "nr", true
	case "ꭧ":
		return "tsr", true
	case "ꭧʰ":
		return "tshr", true
	case "ꭦ":
		return "dzr", true
	case "ŋ":
		return "ng", true
	case "ʔ":
		return "q", true
	case "ɦ":
		return "gh", true
	}
	return string(o), false
}

// Medial is the glide between onset and nucleus, possibly empty.
type Medial string

// Romanize returns the TUPA spelling of the medial.
func (m Medial) Romanize() (spelling string, ok bool) {
	switch m {
	case "i":
		return "i", true
	case "y":
		return "wi", true
	case "ʷ":
		return "w", true
	case "ɨ", "ị":
		return "y", true
	case "ʉ", "ỵ":
		return "u", true
	}
	return string(m), false
}

// Nucleus is the tone-bearing core vowel of the syllable.
type Nucleus string

// Romanize returns the TUPA spelling of the nucleus.
func (n Nucleus) Romanize() (spelling string, ok bool) {
	switch n {
	case "a", "ạ":
		return "ae", true
	case "e":
		return "e", true
	case "ẹ":
		return "ee", true
	case "ɑ":
		return "a", true
	case "ə":
		return "eo", true
	case "i":
		return "i", true
	case "ɨ":
		return "y", true
	case "ị":
		return "yi", true
	case "u":
		return "ou", true
	case "ʉ":
		return "u", true
	case "o":
		return "o", true
	case "ọ":
		return "oeu", true
	}
	return string(n), false
}

// Coda is the syllable-final consonant or glide, possibly empty.
type Coda string

// Romanize returns the TUPA spelling of the coda.
func (c Coda) Romanize() (spelling string, ok bool) {
	switch c {
	case "m", "n", "p", "t", "k", "w", "j":
		return string(c), true
	case "ŋ":
		return "ng", true
	}
	return string(c), false
}

// Tone is the combining diacritic carried by the nucleus, or ToneNone.
type Tone rune

const (
	ToneNone  Tone = 0
	ToneAcute Tone = acuteAccent
	ToneGrave Tone = graveAccent
	ToneCaron Tone = caronMark
)

// Suffix returns the TUPA tone letter. The grave tone, like the unmarked
// one, is written with no letter.
func (t Tone) Suffix() string {
	switch t {
	case ToneAcute:
		return "q"
	case ToneCaron:
		return "h"
	}
	return ""
}

// specialPair returns the fixed spelling for the few medial+nucleus pairs
// that override the per-slot tables. A closed enumeration of attested
// exceptions; do not generalize.
func specialPair(pair string) (string, bool) {
	switch pair {
	case "ɨə":
		return "yo", true
	case "ʉu":
		return "u", true
	}
	return "", false
}
