// internal/fetcher/query.go
package fetcher

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tamzrod/quakelight/internal/config"
)

// Query is one parameterized event-service query.
// Everything but MinMagnitude is fixed for the process lifetime.
type Query struct {
	BaseURL      string
	Latitude     float64
	Longitude    float64
	RadiusKm     float64
	WindowHours  int
	MinMagnitude float64
}

// NewQuery builds a Query from startup configuration.
func NewQuery(c config.QueryConfig, minMagnitude float64) Query {
	return Query{
		BaseURL:      c.BaseURL,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		RadiusKm:     c.RadiusKm,
		WindowHours:  c.WindowHours,
		MinMagnitude: minMagnitude,
	}
}

// URL renders the request URL.
// Parameter order is fixed: geographic filter, format, time window, magnitude.
func (q Query) URL() string {
	var b strings.Builder
	b.WriteString(q.BaseURL)
	b.WriteString("?latitude=")
	b.WriteString(formatFloat(q.Latitude))
	b.WriteString("&longitude=")
	b.WriteString(formatFloat(q.Longitude))
	b.WriteString("&maxradiuskm=")
	b.WriteString(formatFloat(q.RadiusKm))
	b.WriteString("&format=text")
	b.WriteString("&starttime=")
	b.WriteString(url.QueryEscape("NOW-" + strconv.Itoa(q.WindowHours) + "hours"))
	b.WriteString("&minmagnitude=")
	b.WriteString(formatFloat(q.MinMagnitude))
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
