// Package tokens estimates LLM token usage from raw text and classifies
// totals against configured budgets.
package tokens

import "math"

// Limits holds the token budget thresholds.
type Limits struct {
	// WarnThreshold is the fraction of MaxLimit at which usage is flagged
	// as a warning, e.g. 0.8.
	WarnThreshold float64
	// MaxLimit is the hard context budget in tokens.
	MaxLimit int
}

const (
	// DefaultMaxLimit is the hard context budget when none is configured.
	DefaultMaxLimit = 2_000_000
	// DefaultWarnThreshold flags usage strictly above 80% of the budget.
	DefaultWarnThreshold = 0.8

	// charsPerToken is the average characters-per-token ratio used for
	// estimation. Matches the common 4-chars heuristic for English text.
	charsPerToken = 4
)

// Level classifies a token total against the budget.
type Level string

const (
	LevelOK       Level = "ok"
	LevelWarning  Level = "warning"
	LevelExceeded Level = "exceeded"
)

// DefaultLimits returns the default budget thresholds.
func DefaultLimits() Limits {
	return Limits{
		WarnThreshold: DefaultWarnThreshold,
		MaxLimit:      DefaultMaxLimit,
	}
}

// Estimate approximates the token count of text as ceil(len/4),
// counting runes so multi-byte text is not over-charged.
func Estimate(text string) int {
	if text == "" {
		return 0
	}
	runes := len([]rune(text))
	return (runes + charsPerToken - 1) / charsPerToken
}

// Classify returns the budget level for a token total.
func (l Limits) Classify(total int) Level {
	if total > l.MaxLimit {
		return LevelExceeded
	}
	if float64(total) > l.WarnThreshold*float64(l.MaxLimit) {
		return LevelWarning
	}
	return LevelOK
}

// Percent returns the usage as a whole percentage of the budget,
// rounded to the nearest integer.
func (l Limits) Percent(total int) int {
	if l.MaxLimit <= 0 {
		return 0
	}
	return int(math.Round(float64(total) * 100 / float64(l.MaxLimit)))
}
