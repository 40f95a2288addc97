// ABOUTME: Dream DNA profile calculation
// ABOUTME: Percentage breakdown of an entry across emotions and themes
package dna

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/harper/dreamdecoder/internal/analyzer"
	"github.com/harper/dreamdecoder/internal/domain"
)

// Fallback labels used when a half of the profile has no real data.
const (
	LabelUnknown       = "Unknown"
	LabelNeutral       = "Neutral"
	LabelUncategorized = "Uncategorized"
	LabelError         = "Error"
)

// Component is one labelled percentage.
type Component struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Profile is an entry's emotion and theme breakdown. Values within each list
// sum to 100 subject to rounding.
type Profile struct {
	Emotions []Component `json:"emotions"`
	Themes   []Component `json:"themes"`
}

// Calculator computes profiles using the analyzer's tokenization and lexicon.
type Calculator struct {
	analyzer *analyzer.Analyzer
	log      zerolog.Logger
}

// NewCalculator creates a calculator.
func NewCalculator(a *analyzer.Analyzer, log zerolog.Logger) *Calculator {
	return &Calculator{analyzer: a, log: log}
}

// Calculate builds the profile for a stored entry. The two halves fail
// independently: a failure in one yields a single Error component there.
func (c *Calculator) Calculate(e domain.Entry) Profile {
	return Profile{
		Emotions: c.guard("emotions", func() []Component { return Emotions(e.Sentiment) }),
		Themes:   c.guard("themes", func() []Component { return c.Themes(e.Text) }),
	}
}

func (c *Calculator) guard(half string, fn func() []Component) (out []Component) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Str("half", half).Str("panic", fmt.Sprint(r)).Msg("dna calculation failed")
			out = single(LabelError)
		}
	}()
	return fn()
}

// Emotions scales the pos/neg/neu scores to percentages. Unknown or partial
// scores have no breakdown.
func Emotions(s *domain.Sentiment) []Component {
	if s == nil || s.Partial {
		return single(LabelUnknown)
	}
	candidates := []Component{
		{Label: string(domain.EmotionPositive), Value: round1(s.Pos * 100)},
		{Label: string(domain.EmotionNegative), Value: round1(s.Neg * 100)},
		{Label: string(domain.EmotionNeutral), Value: round1(s.Neu * 100)},
	}
	out := make([]Component, 0, len(candidates))
	for _, c := range candidates {
		if c.Value > 0 {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return single(LabelNeutral)
	}
	return out
}

// Themes distributes keyword hits across the lexicon's themes.
func (c *Calculator) Themes(text string) []Component {
	if text == "" {
		return single(LabelUncategorized)
	}
	themes := c.analyzer.Lexicon().Themes()
	hits := c.analyzer.Lexicon().ThemeHits(c.analyzer.Words(text))

	total := 0
	for _, h := range hits {
		total += h
	}
	if total == 0 {
		return single(LabelUncategorized)
	}

	out := make([]Component, 0, len(themes))
	for i, t := range themes {
		if hits[i] == 0 {
			continue
		}
		out = append(out, Component{
			Label: t.Label,
			Value: round1(float64(hits[i]) / float64(total) * 100),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

func single(label string) []Component {
	return []Component{{Label: label, Value: 100.0}}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Describe renders components as "Label 12.5%, Other 87.5%".
func Describe(cs []Component) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("%s %.1f%%", c.Label, c.Value)
	}
	return strings.Join(parts, ", ")
}
