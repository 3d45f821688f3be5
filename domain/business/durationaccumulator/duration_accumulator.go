package durationaccumulator

import (
	"time"

	"bikeshare/domain/entities/trip"
)

// DurationAccumulator struct that collects data about the duration of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of durations of the trips
// + MaxDuration: longest duration seen so far
// + Longest: every trip whose duration equals MaxDuration, in table order
type DurationAccumulator struct {
	Counter       int
	TotalDuration time.Duration
	MaxDuration   time.Duration
	Longest       []*trip.TripData
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(tripData *trip.TripData) {
	da.Counter += 1
	da.TotalDuration += tripData.Duration

	switch {
	case len(da.Longest) == 0 || tripData.Duration > da.MaxDuration:
		da.MaxDuration = tripData.Duration
		da.Longest = []*trip.TripData{tripData}
	case tripData.Duration == da.MaxDuration:
		da.Longest = append(da.Longest, tripData)
	}
}

// GetAverageDuration returns the arithmetic mean of the durations collected.
// The second value is false when nothing was collected.
func (da *DurationAccumulator) GetAverageDuration() (time.Duration, bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return da.TotalDuration / time.Duration(da.Counter), true
}
