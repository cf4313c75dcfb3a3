package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/vitalis/pkg/history"
)

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Show the result of a past screening (default: the latest)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		nth, _ := cmd.Flags().GetInt("nth")

		store, _, closeDB, err := openHistory()
		if err != nil {
			return err
		}
		defer closeDB()

		rec, err := pickRecord(store.ReadAll(cmd.Context()), nth)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), rec, currentLanguage())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resultCmd)
	resultCmd.Flags().IntP("nth", "n", 1, "Which screening to show, counting back from the latest (1 = latest)")
}

// pickRecord returns the nth most recent record (1 = latest).
func pickRecord(records []history.Record, nth int) (history.Record, error) {
	if len(records) == 0 {
		return history.Record{}, fmt.Errorf("no screenings recorded yet; run `vitalis screen` first")
	}
	if nth < 1 || nth > len(records) {
		return history.Record{}, fmt.Errorf("--nth must be between 1 and %d", len(records))
	}
	return records[len(records)-nth], nil
}
