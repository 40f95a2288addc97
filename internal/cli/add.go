// ABOUTME: Add command for recording a new dream
// ABOUTME: Analyzes the text and prints the detected type, emotion and symbols
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/dreamdecoder/internal/domain"
)

var (
	addDate       string
	addJSONOutput bool
)

var addCmd = &cobra.Command{
	Use:     "add [dream text]",
	Aliases: []string{"a"},
	Short:   "Record a dream",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		date := addDate
		if date == "" {
			date = time.Now().Format(domain.DateLayout)
		}

		id, err := a.journal.Add(userID, args[0], date)
		if err != nil {
			return fmt.Errorf("failed to add dream: %w", err)
		}
		a.afterWrite()

		entry, err := a.journal.Get(id)
		if err != nil {
			return fmt.Errorf("failed to read back dream: %w", err)
		}

		if addJSONOutput {
			return printJSON(entry)
		}
		fmt.Printf("Dream added (ID: %s)\n", id)
		fmt.Printf("Type:      %s\n", entry.DetectedType)
		fmt.Printf("Emotion:   %s\n", describeSentiment(entry.Sentiment))
		if len(entry.Symbols) > 0 {
			fmt.Printf("Symbols:   %s\n", strings.Join(entry.Symbols, ", "))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Dream date as YYYY-MM-DD (default: today, local time)")
	addCmd.Flags().BoolVar(&addJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(addCmd)
}
