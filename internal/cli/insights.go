// ABOUTME: Commands that look across a user's whole journal
// ABOUTME: symbol, reflect, timeline and export
package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/dreamdecoder/internal/insights"
	"github.com/harper/dreamdecoder/internal/journal"
)

var (
	symbolJSONOutput   bool
	reflectDays        int
	timelineSince      string
	timelineUntil      string
	timelineJSONOutput bool
	exportFormat       string
	exportOutput       string
)

var symbolCmd = &cobra.Command{
	Use:   "symbol <name>",
	Short: "Look up a dream symbol",
	Long: `Look up a symbol's traditional and psychological meaning, along with how
often it appears in your dreams and which symbols it shows up with.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		details, err := a.guide.Details(args[0], userID)
		if err != nil {
			return err
		}
		if symbolJSONOutput {
			return printJSON(details)
		}

		fmt.Printf("Symbol:         %s\n", details.SymbolName)
		fmt.Printf("Traditional:    %s\n", details.TraditionalMeaning)
		fmt.Printf("Psychological:  %s\n", details.PsychologicalMeaning)
		fmt.Printf("In your dreams: %d\n", details.PersonalFrequency)
		if len(details.CoOccurring) > 0 {
			fmt.Println("Appears with:")
			for _, c := range details.CoOccurring {
				fmt.Printf("  %s (%d)\n", c.Symbol, c.Count)
			}
		}
		return nil
	},
}

var reflectCmd = &cobra.Command{
	Use:   "reflect",
	Short: "Summarize recent dream patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		for _, r := range a.insights.Reflections(userID, reflectDays) {
			fmt.Println(r)
		}
		return nil
	},
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the emotion of each dream over time",
	RunE: func(cmd *cobra.Command, args []string) error {
		since, err := journal.ParseBound(timelineSince)
		if err != nil {
			return fmt.Errorf("invalid --since date: %w", err)
		}
		until, err := journal.ParseBound(timelineUntil)
		if err != nil {
			return fmt.Errorf("invalid --until date: %w", err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		points := a.insights.Timeline(userID, since, until)

		if timelineJSONOutput {
			return printJSON(points)
		}
		fmt.Println("Date\t\tEmotion\t\tCompound\tID")
		fmt.Println("----\t\t-------\t\t--------\t--")
		for _, p := range points {
			fmt.Printf("%s\t%s\t%8.3f\t%s\n", p.Date, p.Emotion, p.Compound, p.DreamID)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all of a user's dreams",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !insights.ValidFormat(exportFormat) {
			return fmt.Errorf("unknown format %q (csv, markdown or json)", exportFormat)
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return a.insights.Export(userID, os.Stdout, exportFormat)
		}

		// Only create the file once the export has succeeded.
		var buf bytes.Buffer
		if err := a.insights.Export(userID, &buf, exportFormat); err != nil {
			return err
		}
		if err := os.WriteFile(exportOutput, buf.Bytes(), 0644); err != nil { //nolint:gosec // User-chosen output path
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", exportOutput)
		return nil
	},
}

func init() {
	symbolCmd.Flags().BoolVar(&symbolJSONOutput, "json", false, "Output as JSON")
	reflectCmd.Flags().IntVar(&reflectDays, "days", insights.DefaultReflectionDays, "Days of history to consider")
	timelineCmd.Flags().StringVar(&timelineSince, "since", "", "Start date (natural language or ISO)")
	timelineCmd.Flags().StringVar(&timelineUntil, "until", "", "End date (natural language or ISO)")
	timelineCmd.Flags().BoolVar(&timelineJSONOutput, "json", false, "Output as JSON")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", insights.FormatCSV, "Format: csv, markdown or json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")

	rootCmd.AddCommand(symbolCmd)
	rootCmd.AddCommand(reflectCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(exportCmd)
}
