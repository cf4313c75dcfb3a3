package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/vitalis/pkg/i18n"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all screening history (irreversible)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		lang := currentLanguage()
		out := cmd.OutOrStdout()

		if !yes && !confirmClear(cmd.InOrStdin(), out, lang) {
			fmt.Fprintln(out, i18n.T(lang, "dash.clear.aborted"))
			return nil
		}

		store, _, closeDB, err := openHistory()
		if err != nil {
			return err
		}
		defer closeDB()

		return clearHistory(cmd.Context(), out, store, lang)
	},
}

// confirmClear asks before deleting; only y or yes confirms.
func confirmClear(in io.Reader, out io.Writer, lang i18n.Language) bool {
	fmt.Fprintf(out, "%s [y/N] ", i18n.T(lang, "dash.clear.confirm"))
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

type historyClearer interface {
	Clear(ctx context.Context) error
}

func clearHistory(ctx context.Context, out io.Writer, store historyClearer, lang i18n.Language) error {
	if err := store.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, i18n.T(lang, "dash.clear.done"))
	return nil
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
