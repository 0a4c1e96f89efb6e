package analyzer

// FlagKind identifies one of the closed set of warnings a scorer can raise.
// Emission order follows scorer evaluation order; rendering is separate from
// the trigger logic so display text can change without touching scoring.
type FlagKind int

const (
	FlagSensational FlagKind = iota
	FlagPunctuation
	FlagCaps
	FlagLength
	FlagEmotional
)

// String returns the human-readable warning text for the flag.
func (k FlagKind) String() string {
	switch k {
	case FlagSensational:
		return "Sensationalist language detected"
	case FlagPunctuation:
		return "Excessive punctuation"
	case FlagCaps:
		return "Excessive capitalization (shouting)"
	case FlagLength:
		return "Suspiciously short content"
	case FlagEmotional:
		return "Emotionally charged language"
	default:
		return "unknown"
	}
}

// Trigger thresholds per scorer, applied to that scorer's own [0,1] value.
const (
	flagSensationalAbove = 0.5
	flagPunctuationAbove = 0.6
	flagCapsAbove        = 0.6
	flagLengthAbove      = 0.7
	flagEmotionalAbove   = 0.5
)
