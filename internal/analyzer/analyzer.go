package analyzer

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyHeadline is returned when an analysis request has no headline text.
var ErrEmptyHeadline = errors.New("headline is empty")

// Feature weights. These are a static policy constant summing to 1.0 and are
// never renormalized at runtime.
const (
	WeightSensational = 0.30
	WeightPunctuation = 0.20
	WeightCaps        = 0.20
	WeightLength      = 0.15
	WeightEmotional   = 0.15
)

// FeatureScore is one scorer's output together with its fixed weight.
type FeatureScore struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// Report carries the five per-feature scores, the weighted aggregate, and
// the warnings raised along the way. Built fresh per analysis, never mutated.
type Report struct {
	Sensational FeatureScore `json:"sensational"`
	Punctuation FeatureScore `json:"punctuation"`
	Caps        FeatureScore `json:"caps"`
	Length      FeatureScore `json:"length"`
	Emotional   FeatureScore `json:"emotional"`

	HeuristicScore float64  `json:"heuristic_score"`
	Flags          []string `json:"flags"`
}

// Features returns the five scores in evaluation order.
func (r *Report) Features() []FeatureScore {
	return []FeatureScore{r.Sensational, r.Punctuation, r.Caps, r.Length, r.Emotional}
}

// Analyzer is the rule-based linguistic scoring engine. It is immutable after
// construction and safe for concurrent use; every Analyze call is a pure
// function of its input text.
type Analyzer struct {
	lexicon       Lexicon
	sensationalRE []*regexp.Regexp
	emotionalRE   []*regexp.Regexp
}

// New compiles the matchers for the given lexicon.
func New(lex Lexicon) *Analyzer {
	return &Analyzer{
		lexicon:       lex,
		sensationalRE: compilePhrases(lex.Sensational),
		emotionalRE:   compilePhrases(lex.Emotional),
	}
}

// Lexicon returns the keyword sets the analyzer was built with.
func (a *Analyzer) Lexicon() Lexicon { return a.lexicon }

func compilePhrases(phrases []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(phrases))
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(p)+`\b`))
	}
	return out
}

// Analyze scores the headline plus optional body and returns the heuristic
// report. The only error condition is an empty headline; the scorers
// themselves are total over arbitrary text.
func (a *Analyzer) Analyze(headline, body string) (*Report, error) {
	headline = strings.TrimSpace(headline)
	if headline == "" {
		return nil, ErrEmptyHeadline
	}

	combined := headline
	if b := strings.TrimSpace(body); b != "" {
		combined += " " + b
	}
	wordCount := len(strings.Fields(combined))

	rep := &Report{
		Sensational: FeatureScore{Name: "sensational", Weight: WeightSensational},
		Punctuation: FeatureScore{Name: "punctuation", Weight: WeightPunctuation},
		Caps:        FeatureScore{Name: "caps", Weight: WeightCaps},
		Length:      FeatureScore{Name: "length", Weight: WeightLength},
		Emotional:   FeatureScore{Name: "emotional", Weight: WeightEmotional},
		Flags:       []string{},
	}

	// Keyword scorers run on the text as-is; their matchers are already
	// case-insensitive. Capitalization needs the original casing.
	rep.Sensational.Value = scoreMatches(a.sensationalRE, combined, sensationalBudget)
	rep.Punctuation.Value = scorePunctuation(combined)
	rep.Caps.Value = scoreCapitalization(combined)
	rep.Length.Value = scoreLength(wordCount)
	rep.Emotional.Value = scoreMatches(a.emotionalRE, combined, emotionalBudget)

	rep.HeuristicScore = clamp01(
		rep.Sensational.Value*WeightSensational +
			rep.Punctuation.Value*WeightPunctuation +
			rep.Caps.Value*WeightCaps +
			rep.Length.Value*WeightLength +
			rep.Emotional.Value*WeightEmotional)

	if rep.Sensational.Value > flagSensationalAbove {
		rep.Flags = append(rep.Flags, FlagSensational.String())
	}
	if rep.Punctuation.Value > flagPunctuationAbove {
		rep.Flags = append(rep.Flags, FlagPunctuation.String())
	}
	if rep.Caps.Value > flagCapsAbove {
		rep.Flags = append(rep.Flags, FlagCaps.String())
	}
	if rep.Length.Value > flagLengthAbove {
		rep.Flags = append(rep.Flags, FlagLength.String())
	}
	if rep.Emotional.Value > flagEmotionalAbove {
		rep.Flags = append(rep.Flags, FlagEmotional.String())
	}

	return rep, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
