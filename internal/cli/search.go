// ABOUTME: Search command for querying dreams
// ABOUTME: Supports text, emotion, symbol and natural-language date filters
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/journal"
)

var (
	searchSince      string
	searchUntil      string
	searchEmotion    string
	searchSymbol     string
	searchJSONOutput bool
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search dreams",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := ""
		if len(args) > 0 {
			text = args[0]
		}
		filter, err := journal.BuildFilter(text, searchSince, searchUntil, searchEmotion, searchSymbol)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		results := a.journal.Search(userID, filter)

		if searchJSONOutput {
			return printJSON(results)
		}
		if len(results) == 0 {
			fmt.Println("No matching dreams.")
			return nil
		}
		entries := make([]domain.Entry, len(results))
		for i, r := range results {
			entries[i] = r.Entry
		}
		printEntryTable(entries)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchSince, "since", "", "Start date (natural language or ISO)")
	searchCmd.Flags().StringVar(&searchUntil, "until", "", "End date (natural language or ISO)")
	searchCmd.Flags().StringVarP(&searchEmotion, "emotion", "e", "", "Primary emotion: Positive, Negative, Neutral or Unknown")
	searchCmd.Flags().StringVarP(&searchSymbol, "symbol", "s", "", "Symbol the dream must contain")
	searchCmd.Flags().BoolVar(&searchJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(searchCmd)
}
