// ABOUTME: Adapters for the external NLP primitives
// ABOUTME: golem English lemmatizer and govader VADER sentiment scorer
package analyzer

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jonreiter/govader"

	"github.com/harper/dreamdecoder/internal/domain"
)

// NewEnglishLemmatizer loads the golem English dictionary.
func NewEnglishLemmatizer() (Lemmatizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemmatizer: %w", err)
	}
	return l, nil
}

// VaderScorer scores text with the VADER lexicon.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer creates a VADER-backed scorer.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements SentimentScorer.
func (v *VaderScorer) Score(text string) (s domain.Sentiment, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("vader: %v", r)
		}
	}()
	p := v.analyzer.PolarityScores(text)
	return domain.Sentiment{
		Pos:      p.Positive,
		Neg:      p.Negative,
		Neu:      p.Neutral,
		Compound: p.Compound,
	}, nil
}
