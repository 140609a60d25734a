package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const eventURIPrefix = "/events/"

// EventURI is the path hits for an event are recorded under.
func EventURI(id int64) string {
	return fmt.Sprintf("%s%d", eventURIPrefix, id)
}

// EventIDFromURI parses the id back out of an EventURI. ok is false for any other path.
func EventIDFromURI(uri string) (int64, bool) {
	if !strings.HasPrefix(uri, eventURIPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(uri, eventURIPrefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// EndpointHit is one recorded visit of a public endpoint.
type EndpointHit struct {
	App       string   `json:"app"`
	URI       string   `json:"uri"`
	IP        string   `json:"ip"`
	Timestamp DateTime `json:"timestamp"`
}

// ViewStats is one aggregated row returned by the stats service.
type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// ViewStatsQuery asks for hit counts in [Start, End]. Empty URIs means all.
type ViewStatsQuery struct {
	Start  time.Time
	End    time.Time
	URIs   []string
	Unique bool
}
