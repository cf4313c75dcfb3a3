package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/vitalis/internal/utils"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/hospitals"
	"github.com/sw33tLie/vitalis/pkg/i18n"
	"github.com/sw33tLie/vitalis/pkg/storage"
)

// openHistory opens the configured database and returns a locked history store.
// The returned func closes the database.
func openHistory() (*history.Store, *storage.DB, func(), error) {
	dbPath, err := utils.GetAbsDBPath(viper.GetString("db.path"))
	if err != nil {
		return nil, nil, nil, err
	}
	lock, err := utils.NewWriteLock(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := storage.Open(dbPath, storage.DefaultDBTimeout)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not open database %s: %w", dbPath, err)
	}
	utils.Log.Debugf("using database %s", dbPath)

	closeFn := func() {
		if err := db.Close(); err != nil {
			utils.Log.Warnf("closing database: %v", err)
		}
	}
	return history.NewStore(db, history.WithLocker(lock)), db, closeFn, nil
}

func currentLanguage() i18n.Language {
	return i18n.ParseLanguage(viper.GetString("language"))
}

func stepDelay() time.Duration {
	d := viper.GetDuration("screening.step_delay")
	if d < 0 {
		return 0
	}
	return d
}

// configuredLocator returns a fixed locator when a position is configured or
// passed on the command line. Without one, lookups use the default location.
func configuredLocator(cmd *cobra.Command) hospitals.Locator {
	lat := viper.GetFloat64("location.lat")
	lng := viper.GetFloat64("location.lng")
	if cmd != nil {
		if f := cmd.Flags().Lookup("lat"); f != nil && f.Changed {
			lat, _ = cmd.Flags().GetFloat64("lat")
		}
		if f := cmd.Flags().Lookup("lng"); f != nil && f.Changed {
			lng, _ = cmd.Flags().GetFloat64("lng")
		}
	}
	if lat == 0 && lng == 0 {
		return hospitals.FixedLocator{}
	}
	return hospitals.FixedLocator{Location: &hospitals.Location{Lat: lat, Lng: lng}}
}

func configuredFinder() hospitals.Finder {
	static := hospitals.NewStaticFinder()
	if endpoint := viper.GetString("hospitals.url"); endpoint != "" {
		return hospitals.NewRemoteFinder(endpoint, static, hospitals.RemoteOptions{})
	}
	return static
}
