package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

// Saturation budgets: the match count at which a keyword scorer reaches 1.0.
const (
	sensationalBudget = 3.0
	emotionalBudget   = 4.0
)

var (
	ellipsisRE     = regexp.MustCompile(`\.{3,}`)
	multiExclaimRE = regexp.MustCompile(`!{2,}`)
)

// scoreMatches counts whole-word/phrase occurrences across the compiled
// matchers and saturates at the given budget.
func scoreMatches(matchers []*regexp.Regexp, text string, budget float64) float64 {
	count := 0
	for _, re := range matchers {
		count += len(re.FindAllStringIndex(text, -1))
	}
	return clamp01(float64(count) / budget)
}

// scorePunctuation measures repeated/unusual punctuation on the raw text.
// Interrobangs and runs of exclamation marks weigh heaviest.
func scorePunctuation(text string) float64 {
	exclamations := strings.Count(text, "!")
	questions := strings.Count(text, "?")
	interrobangs := strings.Count(text, "?!")
	ellipses := len(ellipsisRE.FindAllStringIndex(text, -1))
	multiExclaim := len(multiExclaimRE.FindAllStringIndex(text, -1))

	total := float64(exclamations)/3 + float64(questions)/3 +
		float64(interrobangs)*2 + float64(ellipses)*1.5 +
		float64(multiExclaim)*3

	return clamp01(total / 5)
}

// scoreCapitalization rates the uppercase-to-letters ratio. Text with no
// letters scores zero.
func scoreCapitalization(text string) float64 {
	letters, upper := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters == 0 {
		return 0
	}

	ratio := float64(upper) / float64(letters)
	switch {
	case ratio > 0.6:
		return 1.0
	case ratio > 0.4:
		return 0.7
	case ratio > 0.2:
		return 0.4
	default:
		return clamp01(ratio * 2)
	}
}

// scoreLength flags suspicious brevity: under 50 words rises toward 1.0,
// 50-99 words is mildly suspicious, 100+ scores zero.
func scoreLength(wordCount int) float64 {
	switch {
	case wordCount < 50:
		return clamp01(1.0 - float64(wordCount)/50.0)
	case wordCount < 100:
		return 0.3
	default:
		return 0
	}
}
