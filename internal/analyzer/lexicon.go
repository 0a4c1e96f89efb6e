package analyzer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the versioned keyword/phrase sets used by the sensationalism
// and emotional-language scorers. Entries are matched case-insensitively as
// whole words or phrases; scoring arithmetic never depends on the contents,
// so sets can be extended or localized without touching the scorers.
type Lexicon struct {
	Version     string   `yaml:"version" json:"version"`
	Sensational []string `yaml:"sensational" json:"sensational"`
	Emotional   []string `yaml:"emotional" json:"emotional"`
}

var defaultSensational = []string{
	"shocking", "banned", "exposed", "truth", "breaking",
	"urgent", "alert", "scandal", "secret", "revealed",
	"unbelievable", "miracle", "warning", "danger", "crisis",
	"leaked", "exclusive", "bombshell", "proof", "evidence",
	"they don't want you to know",
}

var defaultEmotional = []string{
	"fear", "angry", "hate", "love", "terrifying",
	"amazing", "horrible", "disgusting", "outrageous",
}

// DefaultLexicon returns the built-in keyword sets.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Version:     "builtin-1",
		Sensational: append([]string(nil), defaultSensational...),
		Emotional:   append([]string(nil), defaultEmotional...),
	}
}

// LoadLexicon reads a lexicon from a YAML file. A missing file falls back to
// the built-in sets so the service runs without any external configuration.
func LoadLexicon(path string) (Lexicon, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultLexicon(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultLexicon(), nil
		}
		return Lexicon{}, fmt.Errorf("read lexicon: %w", err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("decode lexicon: %w", err)
	}
	if err := validateLexicon(lex); err != nil {
		return Lexicon{}, err
	}
	return lex, nil
}

func validateLexicon(lex Lexicon) error {
	if len(lex.Sensational) == 0 {
		return errors.New("lexicon has no sensational entries")
	}
	if len(lex.Emotional) == 0 {
		return errors.New("lexicon has no emotional entries")
	}
	for _, w := range append(append([]string(nil), lex.Sensational...), lex.Emotional...) {
		if strings.TrimSpace(w) == "" {
			return errors.New("lexicon contains an empty entry")
		}
	}
	return nil
}
