package transcription

import "fmt"

// DiagnosticKind classifies a conversion diagnostic.
type DiagnosticKind string

const (
	// UnknownSymbol marks a structural component with no table entry;
	// the source spelling was passed through unchanged.
	UnknownSymbol DiagnosticKind = "unknown-symbol"
	// DegenerateSyllable marks a structurally incomplete syllable, such
	// as one without a vowel. The output is best-effort.
	DegenerateSyllable DiagnosticKind = "degenerate-syllable"
	// MalformedTone marks a syllable carrying more than one recognized
	// tone mark. The extra mark stays on the vowel.
	MalformedTone DiagnosticKind = "malformed-tone"
)

// Slot names the structural position a diagnostic refers to.
type Slot string

const (
	SlotOnset    Slot = "onset"
	SlotMedial   Slot = "medial"
	SlotNucleus  Slot = "nucleus"
	SlotCoda     Slot = "coda"
	SlotTone     Slot = "tone"
	SlotSyllable Slot = "syllable"
)

// Diagnostic describes a non-fatal condition met while converting one
// syllable. Diagnostics are advisory: the conversion result is always
// usable and callers must not treat them as failures.
type Diagnostic struct {
	Syllable string // the input syllable, as given
	Slot     Slot
	Symbol   string // the offending symbol, when one exists
	Kind     DiagnosticKind
}

func (d Diagnostic) String() string {
	if d.Symbol == "" {
		return fmt.Sprintf("%s: %s in %q", d.Kind, d.Slot, d.Syllable)
	}
	return fmt.Sprintf("%s: %s %q in %q", d.Kind, d.Slot, d.Symbol, d.Syllable)
}
