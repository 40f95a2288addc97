// ABOUTME: Text analysis for dream entries
// ABOUTME: Detects dream type, scores sentiment, and extracts vocabulary symbols
package analyzer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/lexicon"
)

// Lemmatizer reduces a lower-cased word to its dictionary form.
type Lemmatizer interface {
	Lemma(word string) string
}

// SentimentScorer produces polarity scores for a piece of text.
type SentimentScorer interface {
	Score(text string) (domain.Sentiment, error)
}

// Analyzer derives type, sentiment and symbols from dream text. It holds no
// mutable state and is safe for concurrent use.
type Analyzer struct {
	lex    *lexicon.Lexicon
	lemma  Lemmatizer
	scorer SentimentScorer
	log    zerolog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLemmatizer sets the lemmatizer. Without one, words come from
// whitespace tokenization only.
func WithLemmatizer(l Lemmatizer) Option {
	return func(a *Analyzer) {
		a.lemma = l
	}
}

// WithScorer sets the sentiment scorer. Without one, sentiment is unknown.
func WithScorer(s SentimentScorer) Option {
	return func(a *Analyzer) {
		a.scorer = s
	}
}

// WithLogger sets the logger used to report primitive failures.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.log = l
	}
}

// New creates an analyzer over the given lexicon.
func New(lex *lexicon.Lexicon, opts ...Option) *Analyzer {
	a := &Analyzer{lex: lex, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Lexicon returns the vocabulary the analyzer matches against.
func (a *Analyzer) Lexicon() *lexicon.Lexicon {
	return a.lex
}

// DetectDreamType classifies text by keyword containment. Nightmare keywords
// are checked before lucid ones and the first match wins.
func (a *Analyzer) DetectDreamType(text string) domain.DreamType {
	lower := strings.ToLower(text)
	if containsAny(lower, a.lex.NightmareKeywords()) {
		return domain.DreamNightmare
	}
	if containsAny(lower, a.lex.LucidKeywords()) {
		return domain.DreamLucid
	}
	return domain.DreamNormal
}

// ScoreSentiment returns nil when text is empty, no scorer is configured, or
// the scorer fails.
func (a *Analyzer) ScoreSentiment(text string) *domain.Sentiment {
	if strings.TrimSpace(text) == "" || a.scorer == nil {
		return nil
	}
	s, err := a.scorer.Score(text)
	if err != nil {
		a.log.Warn().Err(err).Msg("sentiment scoring failed")
		return nil
	}
	return &s
}

// ExtractSymbols returns the sorted vocabulary words present in text.
func (a *Analyzer) ExtractSymbols(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}
	for w := range a.Words(text) {
		if a.lex.IsSymbol(w) {
			found = append(found, w)
		}
	}
	sort.Strings(found)
	return found
}

// Analyze runs every detector over text.
func (a *Analyzer) Analyze(text string) domain.Analysis {
	if text == "" {
		return domain.Analysis{Type: domain.DreamUnknown, Symbols: []string{}}
	}
	result := domain.Analysis{
		Type:      a.DetectDreamType(text),
		Sentiment: a.ScoreSentiment(text),
		Symbols:   a.ExtractSymbols(text),
	}
	a.log.Debug().
		Str("type", string(result.Type)).
		Str("emotion", string(domain.PrimaryEmotion(result.Sentiment))).
		Int("symbols", len(result.Symbols)).
		Msg("analyzed dream text")
	return result
}

// Words returns the lower-cased word set of text: whitespace tokens, the same
// tokens stripped of surrounding punctuation, and their lemmas when a
// lemmatizer is configured.
func (a *Analyzer) Words(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		words[tok] = struct{}{}
		if a.lemma == nil {
			continue
		}
		trimmed := strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if trimmed == "" {
			continue
		}
		words[trimmed] = struct{}{}
		if lemma := a.lemmaOf(trimmed); lemma != "" {
			words[lemma] = struct{}{}
		}
	}
	return words
}

// lemmaOf guards against a misbehaving lemmatizer; a panic degrades to no
// lemma for that word.
func (a *Analyzer) lemmaOf(word string) (lemma string) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Warn().Interface("panic", r).Str("word", word).Msg("lemmatizer failed")
			lemma = ""
		}
	}()
	return strings.ToLower(a.lemma.Lemma(word))
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
