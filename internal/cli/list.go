// ABOUTME: List command for displaying a user's dreams
// ABOUTME: Supports table and JSON output formats
package cli

import (
	"github.com/spf13/cobra"
)

var (
	listLimit      int
	listJSONOutput bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded dreams",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		entries := a.journal.List(userID)
		if listLimit > 0 && len(entries) > listLimit {
			entries = entries[len(entries)-listLimit:]
		}

		if listJSONOutput {
			return printJSON(entries)
		}
		printEntryTable(entries)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "Number of most recent dreams to show (0 for all)")
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
