package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/hospitals"
	"github.com/sw33tLie/vitalis/pkg/i18n"
	"github.com/sw33tLie/vitalis/pkg/screening"
)

// printResult renders a completed screening the way the result screen shows it.
func printResult(out io.Writer, rec history.Record, lang i18n.Language) {
	tier := rec.Risk()
	key := "risk." + tier.String()

	fmt.Fprintf(out, "\n== %s ==\n\n", i18n.T(lang, "result.title"))
	fmt.Fprintf(out, "%s RISK\n", tier)
	fmt.Fprintln(out, i18n.T(lang, key+".title"))
	fmt.Fprintln(out, i18n.T(lang, key+".desc"))
	fmt.Fprintf(out, "> %s\n\n", i18n.T(lang, key+".action"))

	fmt.Fprintf(out, "%s: %ds   %s: %d/%d\n\n",
		i18n.T(lang, "result.duration"), rec.DurationSeconds,
		i18n.T(lang, "result.symptoms"), rec.Answers.YesCount(), len(fast.Keys))

	fmt.Fprintln(out, i18n.T(lang, "result.responses"))
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	for _, q := range screening.Questions {
		fmt.Fprintf(w, "  %s\t%s\t\n", q.Label(lang), answerLabel(rec.Answers.Get(q.Key), lang))
	}
	w.Flush()

	if tier == fast.High {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "!! %s: vitalis hospitals\n", i18n.T(lang, "result.find"))
		fmt.Fprintf(out, "!! %s: %s\n", i18n.T(lang, "result.call108"), hospitals.EmergencyTelURL())
	}

	fmt.Fprintf(out, "\n%s\n", i18n.T(lang, "result.disclaimer"))
}

func answerLabel(a fast.Answer, lang i18n.Language) string {
	switch a {
	case fast.Yes:
		return i18n.T(lang, "screen.yes")
	case fast.No:
		return i18n.T(lang, "screen.no")
	}
	return "-"
}
