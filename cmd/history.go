package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past screenings, newest first (default 20)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		store, _, closeDB, err := openHistory()
		if err != nil {
			return err
		}
		defer closeDB()

		records := store.ReadAll(cmd.Context())
		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No screenings recorded yet.")
			return nil
		}
		if limit <= 0 {
			limit = len(records)
		}
		for i := len(records) - 1; i >= 0 && len(records)-i <= limit; i-- {
			r := records[i]
			ts := r.Timestamp.Local().Format("2006-01-02 15:04:05")
			fmt.Fprintf(out, "%s  %-6s  %3ds  lang=%s  face=%s arm=%s speech=%s time=%s\n",
				ts, r.Risk(), r.DurationSeconds, r.Language,
				r.Answers.Face, r.Answers.Arm, r.Answers.Speech, r.Answers.Time)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "Number of screenings to show (0 = all)")
	historyCmd.Flags().Bool("json", false, "Print the full history as JSON")
}
