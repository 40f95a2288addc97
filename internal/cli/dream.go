// ABOUTME: Commands that act on a single dream by ID
// ABOUTME: show, update, delete, dna, dreamify and recommend
package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/dreamdecoder/internal/dna"
	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/insights"
	"github.com/harper/dreamdecoder/internal/journal"
)

var (
	showJSONOutput bool
	updateText     string
	updateDate     string
	dnaJSONOutput  bool
	dreamifyStyle  string
	dreamifyText   string
)

var showCmd = &cobra.Command{
	Use:   "show <dream id>",
	Short: "Show a dream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		entry, err := a.journal.Get(args[0])
		if err != nil {
			return err
		}
		if showJSONOutput {
			return printJSON(entry)
		}
		printEntry(entry)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <dream id>",
	Short: "Change a dream's text or date",
	Long: `Change a dream's text or date. New text is analyzed again.
An invalid date is ignored and the stored date kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in journal.UpdateInput
		if cmd.Flags().Changed("text") {
			in.Text = &updateText
		}
		if cmd.Flags().Changed("date") {
			in.Date = &updateDate
		}
		if in.Text == nil && in.Date == nil {
			return errors.New("nothing to update: pass --text or --date")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		entry, err := a.journal.Update(args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update dream: %w", err)
		}
		a.afterWrite()

		fmt.Printf("Dream updated (ID: %s)\n", entry.ID)
		if in.Date != nil && entry.Date != updateDate {
			color.Yellow("Ignored invalid date %q, kept %s", updateDate, entry.Date)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <dream id>",
	Aliases: []string{"rm"},
	Short:   "Delete a dream",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.journal.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to delete dream: %w", err)
		}
		a.afterWrite()
		fmt.Printf("Dream deleted (ID: %s)\n", args[0])
		return nil
	},
}

var dnaCmd = &cobra.Command{
	Use:   "dna <dream id>",
	Short: "Show a dream's emotion and theme breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		profile, err := a.insights.DNA(args[0])
		if err != nil {
			return err
		}
		if dnaJSONOutput {
			return printJSON(profile)
		}
		fmt.Printf("Emotions:  %s\n", dna.Describe(profile.Emotions))
		fmt.Printf("Themes:    %s\n", dna.Describe(profile.Themes))
		return nil
	},
}

var dreamifyCmd = &cobra.Command{
	Use:   "dreamify [dream id]",
	Short: "Retell a dream as a poem or noir line",
	Long: `Retell a stored dream, or text passed with --text, in a style.
Styles: poem, noir. Any other style echoes the original text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !cmd.Flags().Changed("text") {
			return errors.New("pass a dream id or --text")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Println(a.insights.Dreamify(dreamifyText, dreamifyStyle))
			return nil
		}
		out, err := a.insights.DreamifyEntry(args[0], dreamifyStyle)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <dream id>",
	Short: "Suggest follow-ups based on a dream's emotion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		recs := a.insights.Recommendations(args[0])
		if insights.IsDreamNotFound(recs) {
			return fmt.Errorf("dream %s: %w", args[0], domain.ErrNotFound)
		}
		for _, r := range recs {
			fmt.Printf("- %s\n", r)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSONOutput, "json", false, "Output as JSON")
	updateCmd.Flags().StringVar(&updateText, "text", "", "New dream text")
	updateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "New dream date as YYYY-MM-DD")
	dnaCmd.Flags().BoolVar(&dnaJSONOutput, "json", false, "Output as JSON")
	dreamifyCmd.Flags().StringVarP(&dreamifyStyle, "style", "s", insights.StylePoem, "Style: poem or noir")
	dreamifyCmd.Flags().StringVar(&dreamifyText, "text", "", "Dreamify this text instead of a stored dream")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(dnaCmd)
	rootCmd.AddCommand(dreamifyCmd)
	rootCmd.AddCommand(recommendCmd)
}
