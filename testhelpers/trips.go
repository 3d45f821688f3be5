// Package testhelpers builds trips and tables for tests.
package testhelpers

import (
	"testing"
	"time"

	"bikeshare/domain/entities/trip"
	"bikeshare/table"
)

const timestampLayout = "2006-01-02 15:04:05"

// Trip builds a trip starting at start (2006-01-02 15:04:05 layout) that lasts d
func Trip(t testing.TB, start string, d time.Duration, startStation string, endStation string) *trip.TripData {
	t.Helper()
	begin, err := time.Parse(timestampLayout, start)
	if err != nil {
		t.Fatalf("invalid start timestamp %q: %s", start, err)
	}
	return trip.NewTripData(begin, begin.Add(d), startStation, endStation, "Subscriber")
}

// Journeys builds one trip per (start, end) pair, all on the same morning
func Journeys(t testing.TB, pairs ...[2]string) []*trip.TripData {
	t.Helper()
	trips := make([]*trip.TripData, 0, len(pairs))
	for _, pair := range pairs {
		trips = append(trips, Trip(t, "2017-01-02 08:00:00", 10*time.Minute, pair[0], pair[1]))
	}
	return trips
}

// FullSchemaTable returns a chicago table with gender and birth year columns
func FullSchemaTable(trips ...*trip.TripData) *table.Table {
	return table.NewTable("chicago", table.Schema{HasGender: true, HasBirthYear: true}, trips)
}

// BareSchemaTable returns a washington table without the optional columns
func BareSchemaTable(trips ...*trip.TripData) *table.Table {
	return table.NewTable("washington", table.Schema{}, trips)
}
