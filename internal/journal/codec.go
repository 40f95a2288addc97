// ABOUTME: Cell encoding for structured journal fields
// ABOUTME: Sentiment and symbols live as JSON text inside a single CSV cell
package journal

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/harper/dreamdecoder/internal/domain"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// EncodeSentiment renders a sentiment cell; unknown sentiment is "{}". A
// partial score keeps only compound and its non-zero scores so it reads back
// as partial.
func EncodeSentiment(s *domain.Sentiment) string {
	if s == nil {
		return "{}"
	}
	var v any = s
	if s.Partial {
		m := map[string]float64{"compound": s.Compound}
		for k, x := range map[string]float64{"pos": s.Pos, "neg": s.Neg, "neu": s.Neu} {
			if x != 0 {
				m[k] = x
			}
		}
		v = m
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// DecodeSentiment parses a sentiment cell. Anything that is not a non-empty
// object of numbers decodes as unknown. An object missing pos, neg or neu is
// marked partial; absent scores read as zero.
func DecodeSentiment(cell string) *domain.Sentiment {
	cell = strings.TrimSpace(cell)
	if !strings.HasPrefix(cell, "{") {
		return nil
	}
	var raw map[string]float64
	if err := json.Unmarshal([]byte(cell), &raw); err != nil || len(raw) == 0 {
		return nil
	}
	s := &domain.Sentiment{
		Pos:      raw["pos"],
		Neg:      raw["neg"],
		Neu:      raw["neu"],
		Compound: raw["compound"],
	}
	for _, k := range []string{"pos", "neg", "neu"} {
		if _, ok := raw[k]; !ok {
			s.Partial = true
		}
	}
	return s
}

// EncodeSymbols renders a symbols cell as a JSON array.
func EncodeSymbols(symbols []string) string {
	if len(symbols) == 0 {
		return "[]"
	}
	data, err := json.Marshal(symbols)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeSymbols parses a symbols cell; malformed cells decode as empty.
func DecodeSymbols(cell string) []string {
	cell = strings.TrimSpace(cell)
	if !strings.HasPrefix(cell, "[") {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(cell), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// EncodeTimestamp formats t as RFC3339 with nanoseconds; the zero time is "".
func EncodeTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func decodeTimestamp(cell string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t
		}
	}
	return time.Time{}
}
