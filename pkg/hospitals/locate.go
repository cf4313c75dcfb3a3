package hospitals

import (
	"context"
	"errors"

	"github.com/sw33tLie/vitalis/internal/utils"
)

// DefaultLocation is used when no position is available (New Delhi).
var DefaultLocation = Location{Lat: 28.6139, Lng: 77.2090}

var ErrNoPosition = errors.New("position unavailable")

// Locator yields the user's position once.
type Locator interface {
	Locate(ctx context.Context) (Location, error)
}

// FixedLocator returns a configured position. A nil FixedLocator has no position.
type FixedLocator struct {
	Location *Location
}

func (f FixedLocator) Locate(context.Context) (Location, error) {
	if f.Location == nil {
		return Location{}, ErrNoPosition
	}
	return *f.Location, nil
}

// Resolve asks l for a position and falls back to DefaultLocation when l is
// nil or fails. fallback reports whether the default was used.
func Resolve(ctx context.Context, l Locator) (loc Location, fallback bool) {
	if l == nil {
		return DefaultLocation, true
	}
	loc, err := l.Locate(ctx)
	if err != nil {
		utils.Log.Debugf("hospitals: location error, using default: %v", err)
		return DefaultLocation, true
	}
	return loc, false
}
