package stats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
	"bikeshare/table"
)

// DurationReport total and average trip duration
// + Longest: every trip whose duration is the maximum, in table order
type DurationReport struct {
	Status  Status           `json:"status"`
	Total   time.Duration    `json:"total"`
	Mean    time.Duration    `json:"mean"`
	Longest []*trip.TripData `json:"longest"`
}

func Duration(t *table.Table) DurationReport {
	if t.Empty() {
		return DurationReport{Status: NoData, Longest: []*trip.TripData{}}
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range t.Trips() {
		accumulator.UpdateAccumulator(tripData)
	}

	mean, _ := accumulator.GetAverageDuration()
	log.Debug(getLogMessage("Duration", fmt.Sprintf("%v trips, %v tied for the longest duration",
		accumulator.Counter, len(accumulator.Longest))))
	return DurationReport{
		Status:  Available,
		Total:   accumulator.TotalDuration,
		Mean:    mean,
		Longest: accumulator.Longest,
	}
}
