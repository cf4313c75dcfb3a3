package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/vitalis/internal/utils"
	"github.com/sw33tLie/vitalis/pkg/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a past screening as a PDF report (default: the latest)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		nth, _ := cmd.Flags().GetInt("nth")
		dir, _ := cmd.Flags().GetString("out")
		share, _ := cmd.Flags().GetBool("share")

		store, _, closeDB, err := openHistory()
		if err != nil {
			return err
		}
		defer closeDB()

		rec, err := pickRecord(store.ReadAll(cmd.Context()), nth)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if share {
			fmt.Fprintln(out, report.ShareText(rec.Risk()))
			return nil
		}

		path, err := report.Save(dir, rec, time.Now())
		if err != nil {
			// Export problems never take the app down.
			utils.Log.Warnf("could not export report: %v", err)
			return nil
		}
		fmt.Fprintf(out, "Report saved to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntP("nth", "n", 1, "Which screening to export, counting back from the latest (1 = latest)")
	reportCmd.Flags().StringP("out", "o", ".", "Directory to write the PDF into")
	reportCmd.Flags().Bool("share", false, "Print the share text instead of writing a PDF")
}
