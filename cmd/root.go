package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/vitalis/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `
	__     _____ _____  _    _     ___ ____  
	\ \   / /_ _|_   _|/ \  | |   |_ _/ ___| 
	 \ \ / / | |  | | / _ \ | |    | |\___ \ 
	  \ V /  | |  | |/ ___ \| |___ | | ___) |
	   \_/  |___| |_/_/   \_\_____|___|____/ 

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vitalis",
	Short: "FAST stroke symptom screening, by keyboard or by voice.",
	Long: LOGO + `vitalis walks through the FAST protocol (Face, Arm, Speech, Time), classifies the
answers as LOW, MEDIUM or HIGH concern and keeps a local history of past screenings.

This is a screening tool, not a diagnosis. In an emergency, call 108.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vitalis.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().String("lang", "", "UI language: en or hi (default from config, else en)")
	rootCmd.PersistentFlags().String("dbpath", "", "Path to SQLite DB file (default: ~/.config/vitalis/vitalis.sqlite)")

	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("lang"))
	viper.BindPFlag("db.path", rootCmd.PersistentFlags().Lookup("dbpath"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".vitalis")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("vitalis")
	viper.AutomaticEnv()

	// Defaults are written to a fresh config file, so set them first.
	viper.SetDefault("language", "en")
	viper.SetDefault("db.path", "")
	viper.SetDefault("location.lat", 0.0)
	viper.SetDefault("location.lng", 0.0)
	viper.SetDefault("hospitals.url", "")
	viper.SetDefault("screening.step_delay", "300ms")
	viper.SetDefault("server.listen", "127.0.0.1:8108")

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.vitalis.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				utils.Log.Debugf("could not create config file: %v", err)
			}
		} else {
			utils.Log.Warnf("could not read config file: %v", err)
		}
	}

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	if err := utils.SetLogLevel(levelString); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
