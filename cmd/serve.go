package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/vitalis/internal/server"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"web"},
	Short:   "Start the local screening web interface",
	Long: `Start a local web server with the screening flow, results, dashboard and
hospital finder. Browsers with speech recognition can answer by voice.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var store *history.Store
		if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
			store = history.NewStore(storage.NewMemory())
		} else {
			s, _, closeFn, err := openHistory()
			if err != nil {
				return err
			}
			defer closeFn()
			store = s
		}

		srv := server.New(server.Config{
			Store:    store,
			Finder:   configuredFinder(),
			Locator:  configuredLocator(cmd),
			Language: currentLanguage(),
		})
		return srv.Start(viper.GetString("server.listen"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "b", "127.0.0.1:8108", "Address to bind the server to")
	serveCmd.Flags().Bool("ephemeral", false, "Keep history in memory only")
	serveCmd.Flags().Float64("lat", 0, "Latitude used for hospital lookups")
	serveCmd.Flags().Float64("lng", 0, "Longitude used for hospital lookups")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}
