// ABOUTME: Shared output helpers for CLI commands
// ABOUTME: JSON printing and the tab-separated dream table
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/dreamdecoder/internal/domain"
)

const previewLen = 50

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printEntryTable(entries []domain.Entry) {
	fmt.Println("ID\t\t\t\t\tDate\t\tType\t\tEmotion\t\tText")
	fmt.Println("--\t\t\t\t\t----\t\t----\t\t-------\t\t----")
	for _, e := range entries {
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, padType(e.DetectedType), domain.PrimaryEmotion(e.Sentiment), preview(e.Text))
	}
}

func printEntry(e domain.Entry) {
	fmt.Printf("ID:        %s\n", e.ID)
	fmt.Printf("User:      %s\n", e.UserID)
	fmt.Printf("Date:      %s\n", e.Date)
	fmt.Printf("Type:      %s\n", e.DetectedType)
	fmt.Printf("Emotion:   %s\n", describeSentiment(e.Sentiment))
	fmt.Printf("Symbols:   %s\n", strings.Join(e.Symbols, ", "))
	fmt.Printf("Created:   %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:   %s\n", e.UpdatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("\n%s\n", e.Text)
}

func describeSentiment(s *domain.Sentiment) string {
	if s == nil {
		return string(domain.EmotionUnknown)
	}
	return fmt.Sprintf("%s (compound %.3f)", domain.PrimaryEmotion(s), s.Compound)
}

// padType keeps the table aligned for the short type names.
func padType(t domain.DreamType) string {
	if len(t) < 8 {
		return string(t) + "\t"
	}
	return string(t)
}

func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if len(r) <= previewLen {
		return text
	}
	return string(r[:previewLen]) + "..."
}
