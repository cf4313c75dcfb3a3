package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/vitalis/pkg/hospitals"
	"github.com/sw33tLie/vitalis/pkg/i18n"
)

var hospitalsCmd = &cobra.Command{
	Use:   "hospitals",
	Short: "List nearby hospitals with directions and call links",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		lang := currentLanguage()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s\n", i18n.T(lang, "map.loading"))
		loc, fallback := hospitals.Resolve(cmd.Context(), configuredLocator(cmd))
		if fallback {
			fmt.Fprintf(out, "(location unavailable, using %s)\n", loc)
		}

		list, err := configuredFinder().FindNearby(cmd.Context(), loc)
		if err != nil {
			return err
		}
		printHospitals(out, loc, list, lang)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hospitalsCmd)
	hospitalsCmd.Flags().Float64("lat", 0, "Latitude of your position (overrides location.lat)")
	hospitalsCmd.Flags().Float64("lng", 0, "Longitude of your position (overrides location.lng)")
}

func printHospitals(out io.Writer, origin hospitals.Location, list []hospitals.Hospital, lang i18n.Language) {
	fmt.Fprintf(out, "\n== %s ==\n%s\n\n", i18n.T(lang, "map.title"), i18n.T(lang, "map.within"))
	for _, h := range list {
		fmt.Fprintf(out, "%s", h.Name)
		if h.Emergency {
			fmt.Fprintf(out, "  [%s]", i18n.T(lang, "map.emergency"))
		}
		fmt.Fprintf(out, "\n  %s  (%s)\n", h.Address, h.Distance)
		fmt.Fprintf(out, "  %s: %s\n", i18n.T(lang, "map.call"), hospitals.TelURL(h.Phone))
		fmt.Fprintf(out, "  %s: %s\n\n", i18n.T(lang, "map.directions"), hospitals.DirectionsURL(origin, h))
	}
	fmt.Fprintf(out, "%s %s %s\n", i18n.T(lang, "map.critical"), i18n.T(lang, "map.call108"), hospitals.EmergencyTelURL())
}
