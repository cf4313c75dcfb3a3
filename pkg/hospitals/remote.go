package hospitals

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sw33tLie/vitalis/internal/utils"
	"github.com/sw33tLie/vitalis/pkg/whttp"
	"github.com/tidwall/gjson"
)

// RemoteFinder fetches hospitals from a JSON endpoint. The endpoint receives
// lat and lng query parameters and answers with an array of objects carrying
// name, address, distance, phone and emergency. Any failure falls back to
// Fallback.
type RemoteFinder struct {
	Endpoint string
	Fallback Finder
	client   *http.Client
}

// RemoteOptions tunes the retrying client.
type RemoteOptions struct {
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Timeout      time.Duration
}

func NewRemoteFinder(endpoint string, fallback Finder, opts RemoteOptions) *RemoteFinder {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = log.New(io.Discard, "", 0)
	retryClient.RetryMax = 3
	if opts.RetryMax > 0 {
		retryClient.RetryMax = opts.RetryMax
	}
	if opts.RetryWaitMin > 0 {
		retryClient.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		retryClient.RetryWaitMax = opts.RetryWaitMax
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retryClient.HTTPClient.Timeout = timeout

	if fallback == nil {
		fallback = NewStaticFinder()
	}
	return &RemoteFinder{
		Endpoint: endpoint,
		Fallback: fallback,
		client:   retryClient.StandardClient(),
	}
}

func (f *RemoteFinder) FindNearby(ctx context.Context, loc Location) ([]Hospital, error) {
	hs, err := f.fetch(ctx, loc)
	if err != nil {
		utils.Log.Warnf("hospitals: remote lookup failed, using built-in list: %v", err)
		return f.Fallback.FindNearby(ctx, loc)
	}
	return hs, nil
}

func (f *RemoteFinder) fetch(ctx context.Context, loc Location) ([]Hospital, error) {
	sep := "?"
	if strings.Contains(f.Endpoint, "?") {
		sep = "&"
	}
	u := fmt.Sprintf("%s%slat=%g&lng=%g", f.Endpoint, sep, loc.Lat, loc.Lng)

	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{Method: http.MethodGet, URL: u}, f.client)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", res.StatusCode, f.Endpoint)
	}
	return parseHospitals(res.BodyString)
}

// parseHospitals reads either a bare array or an object with a "hospitals" array.
func parseHospitals(body string) ([]Hospital, error) {
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("invalid JSON response")
	}
	list := gjson.Parse(body)
	if !list.IsArray() {
		list = list.Get("hospitals")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("response holds no hospital list")
	}

	var out []Hospital
	list.ForEach(func(_, v gjson.Result) bool {
		name := strings.TrimSpace(v.Get("name").String())
		if name == "" {
			return true
		}
		out = append(out, Hospital{
			Name:      name,
			Address:   v.Get("address").String(),
			Distance:  v.Get("distance").String(),
			Phone:     v.Get("phone").String(),
			Emergency: v.Get("emergency").Bool(),
		})
		return true
	})
	if len(out) == 0 {
		return nil, fmt.Errorf("response holds no hospitals")
	}
	return out, nil
}
