package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/vitalis/pkg/dashboard"
	"github.com/sw33tLie/vitalis/pkg/i18n"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Prints screening statistics from the local history.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, _, closeDB, err := openHistory()
		if err != nil {
			return err
		}
		defer closeDB()

		printDashboard(cmd.OutOrStdout(), dashboard.Load(cmd.Context(), store), currentLanguage())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func printDashboard(out io.Writer, stats dashboard.Stats, lang i18n.Language) {
	fmt.Fprintf(out, "== %s ==\n\n", i18n.T(lang, "dash.title"))

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\t%d\t\n", i18n.T(lang, "dash.total"), stats.Total)
	fmt.Fprintf(w, "%s\t%ds\t\n", i18n.T(lang, "dash.avg"), stats.AvgDuration)
	fmt.Fprintf(w, "%s\t%d\t\n", i18n.T(lang, "dash.high"), stats.High)
	fmt.Fprintf(w, "%s\t%d\t\n", i18n.T(lang, "dash.medium"), stats.Medium)
	fmt.Fprintf(w, "%s\t%d\t\n", i18n.T(lang, "dash.low"), stats.Low)
	w.Flush()

	fmt.Fprintf(out, "\n%s\n", i18n.T(lang, "dash.recent"))
	if len(stats.Recent) == 0 {
		fmt.Fprintln(out, "  -")
		return
	}
	w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	for _, r := range stats.Recent {
		fmt.Fprintf(w, "  %s\t%s\t%ds\t\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"), r.Risk(), r.DurationSeconds)
	}
	w.Flush()
}
