// Package stats computes the descriptive statistics shown for a filtered trip table.
//
// Every report carries a Status. Aggregators never fail: an empty table yields
// NoData and a dataset without an optional column yields NotAvailable.
package stats

import (
	"fmt"

	"bikeshare/domain/business/tripcounter"
)

const componentType = "stats"

// Status tells whether a report holds values
type Status int

const (
	// Available the report holds computed values
	Available Status = iota
	// NoData the filtered table has no rows to compute the report from
	NoData
	// NotAvailable the dataset of the city has no column for the report
	NotAvailable
)

func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case NoData:
		return "no data"
	case NotAvailable:
		return "not available"
	}
	return "unknown"
}

// Count is a categorical value with the amount of trips that have it
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

func toCounts(counter *tripcounter.TripCounter[string]) []Count {
	entries := counter.Entries()
	counts := make([]Count, 0, len(entries))
	for _, entry := range entries {
		counts = append(counts, Count{Value: entry.Value, Count: entry.Counter})
	}
	return counts
}

func getLogMessage(method string, message string) string {
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", componentType, method, message)
}
