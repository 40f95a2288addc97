// ABOUTME: Journal export in CSV, markdown, and JSON
// ABOUTME: Writes one user's entries to an arbitrary writer
package insights

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/journal"
)

// ErrNoEntries is returned when there is nothing to export.
var ErrNoEntries = errors.New("no entries to export")

// Export formats.
const (
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ExportColumns is the column order of CSV exports.
var ExportColumns = []string{
	"dream_id", "user_id", "dream_date", "dream_text", "detected_type",
	"emotional_tone", "extracted_symbols", "created_at", "updated_at",
}

// ValidFormat reports whether format is a supported export format.
func ValidFormat(format string) bool {
	switch format {
	case FormatCSV, FormatMarkdown, FormatJSON:
		return true
	}
	return false
}

// Export writes every entry of userID to w in the given format.
func (s *Service) Export(userID string, w io.Writer, format string) error {
	if !ValidFormat(format) {
		return domain.NewValidationError("format", "must be csv, markdown, or json")
	}
	entries := s.journal.List(userID)
	if len(entries) == 0 {
		return fmt.Errorf("export %s: %w", userID, ErrNoEntries)
	}

	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(entries)
	case FormatMarkdown:
		for _, e := range entries {
			if _, err = io.WriteString(w, formatMarkdown(e)); err != nil {
				break
			}
		}
	default:
		err = writeCSV(w, entries)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", userID, err)
	}
	s.log.Info().Str("user_id", userID).Str("format", format).Int("entries", len(entries)).Msg("journal exported")
	return nil
}

func writeCSV(w io.Writer, entries []domain.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.ID,
			e.UserID,
			e.Date,
			e.Text,
			string(e.DetectedType),
			journal.EncodeSentiment(e.Sentiment),
			journal.EncodeSymbols(e.Symbols),
			journal.EncodeTimestamp(e.CreatedAt),
			journal.EncodeTimestamp(e.UpdatedAt),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatMarkdown(e domain.Entry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s - %s\n", e.Date, e.DetectedType))
	sb.WriteString("\n")
	sb.WriteString(e.Text)
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("- **Emotion**: %s\n", domain.PrimaryEmotion(e.Sentiment)))
	if len(e.Symbols) > 0 {
		sb.WriteString(fmt.Sprintf("- **Symbols**: %s\n", strings.Join(e.Symbols, ", ")))
	}
	sb.WriteString(fmt.Sprintf("- **ID**: %s\n", e.ID))
	sb.WriteString("\n")

	return sb.String()
}
