package feeds

import "net/http"

// DefaultMagURL is the SWPC 7-day magnetometer product.
const DefaultMagURL = "https://services.swpc.noaa.gov/products/solar-wind/mag-7-day.json"

// bz_gsm column in the magnetometer product.
const bzColumn = 3

// MagFeed implements the solarwind.Feed interface for the magnetic-field
// product; the pipeline consumes its north-south (Bz) component.
type MagFeed struct {
	*client
}

// NewMagFeed creates a magnetometer feed client. An empty url selects the
// SWPC default.
func NewMagFeed(httpClient *http.Client, url string) *MagFeed {
	if url == "" {
		url = DefaultMagURL
	}
	return &MagFeed{newClient("mag", url, bzColumn, httpClient)}
}
