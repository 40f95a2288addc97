// ABOUTME: Dream entry model shared by every layer
// ABOUTME: Entry, Sentiment and Analysis types plus dream type values
package domain

import "time"

// DreamType is the coarse classification of a dream's text.
type DreamType string

const (
	DreamNightmare DreamType = "Nightmare"
	DreamLucid     DreamType = "Lucid"
	DreamNormal    DreamType = "Normal"
	DreamUnknown   DreamType = "Unknown"
)

// Sentiment holds VADER-style polarity scores. A nil *Sentiment means the
// score is unknown, which is distinct from an all-zero score.
type Sentiment struct {
	Pos      float64 `json:"pos"`
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Compound float64 `json:"compound"`

	// Partial marks a stored score that lacked one of pos, neg or neu. It
	// still buckets by Compound but has no emotion breakdown.
	Partial bool `json:"-"`
}

// Entry is one journaled dream.
type Entry struct {
	ID           string     `json:"dream_id"`
	UserID       string     `json:"user_id"`
	Text         string     `json:"dream_text"`
	Date         string     `json:"dream_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DetectedType DreamType  `json:"detected_type"`
	Sentiment    *Sentiment `json:"emotional_tone"`
	Symbols      []string   `json:"extracted_symbols"`
}

// Analysis is the set of fields derived from an entry's text.
type Analysis struct {
	Type      DreamType  `json:"type"`
	Sentiment *Sentiment `json:"emotion"`
	Symbols   []string   `json:"symbols"`
}

// Apply copies the derived fields onto the entry.
func (a Analysis) Apply(e *Entry) {
	e.DetectedType = a.Type
	e.Sentiment = a.Sentiment
	e.Symbols = a.Symbols
}

// HasSymbol reports whether the entry's symbol set contains name.
func (e Entry) HasSymbol(name string) bool {
	for _, s := range e.Symbols {
		if s == name {
			return true
		}
	}
	return false
}
