// Package hospitals finds nearby hospitals and builds the links used to reach them.
package hospitals

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// EmergencyNumber is the national ambulance line.
const EmergencyNumber = "108"

type Hospital struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Distance  string `json:"distance"`
	Phone     string `json:"phone"`
	Emergency bool   `json:"emergency"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l Location) String() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// Finder looks up hospitals around a location.
type Finder interface {
	FindNearby(ctx context.Context, loc Location) ([]Hospital, error)
}

// StaticFinder returns the same fixed list for every location.
type StaticFinder struct {
	Hospitals []Hospital
}

// NewStaticFinder returns a finder over the built-in list.
func NewStaticFinder() *StaticFinder {
	return &StaticFinder{Hospitals: builtin}
}

func (f *StaticFinder) FindNearby(_ context.Context, _ Location) ([]Hospital, error) {
	out := make([]Hospital, len(f.Hospitals))
	copy(out, f.Hospitals)
	return out, nil
}

var builtin = []Hospital{
	{Name: "City General Hospital", Address: "123 Main Street", Distance: "2.3 km", Phone: "011-12345678", Emergency: true},
	{Name: "Apollo Hospital", Address: "456 Park Avenue", Distance: "3.5 km", Phone: "011-87654321", Emergency: true},
	{Name: "AIIMS Emergency", Address: "789 Medical Complex", Distance: "4.2 km", Phone: "011-26588500", Emergency: true},
	{Name: "Max Healthcare", Address: "321 Hospital Road", Distance: "5.1 km", Phone: "011-26925858", Emergency: true},
}

// DirectionsURL links to driving directions from origin to the hospital.
func DirectionsURL(origin Location, h Hospital) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s",
		origin.String(), encodeURIComponent(h.Name+" "+h.Address))
}

// TelURL builds a tel: link for phone.
func TelURL(phone string) string {
	return "tel:" + phone
}

// EmergencyTelURL is the tel: link for the ambulance line.
func EmergencyTelURL() string {
	return TelURL(EmergencyNumber)
}

// encodeURIComponent matches the browser function: spaces become %20 and
// !'()* stay literal.
func encodeURIComponent(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	for _, r := range []string{"!", "'", "(", ")", "*"} {
		e = strings.ReplaceAll(e, url.QueryEscape(r), r)
	}
	return e
}
