package feeds

import "net/http"

// DefaultPlasmaURL is the SWPC 7-day plasma product.
const DefaultPlasmaURL = "https://services.swpc.noaa.gov/products/solar-wind/plasma-7-day.json"

// speed column in the plasma product.
const speedColumn = 2

// PlasmaFeed implements the solarwind.Feed interface for the plasma product;
// the pipeline consumes its bulk-speed column to estimate transit time.
type PlasmaFeed struct {
	*client
}

// NewPlasmaFeed creates a plasma feed client. An empty url selects the SWPC
// default.
func NewPlasmaFeed(httpClient *http.Client, url string) *PlasmaFeed {
	if url == "" {
		url = DefaultPlasmaURL
	}
	return &PlasmaFeed{newClient("plasma", url, speedColumn, httpClient)}
}
