package stats

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/table"
)

// StationReport most popular stations and trip
// + JourneyDistanceKm: straight-line distance of PopularJourney, set only when HasDistance
type StationReport struct {
	Status            Status       `json:"status"`
	PopularStart      string       `json:"popular_start"`
	PopularEnd        string       `json:"popular_end"`
	PopularJourney    trip.Journey `json:"popular_journey"`
	StartStationCount int          `json:"start_station_count"`
	EndStationCount   int          `json:"end_station_count"`
	JourneyDistanceKm float64      `json:"journey_distance_km,omitempty"`
	HasDistance       bool         `json:"has_distance"`
}

// Stations returns the modal start station, end station and journey of the table,
// plus the amount of distinct start and end stations. dir may be nil.
func Stations(t *table.Table, dir *station.Directory) StationReport {
	if t.Empty() {
		return StationReport{Status: NoData}
	}

	starts := tripcounter.NewOrderedTripCounter[string]()
	ends := tripcounter.NewOrderedTripCounter[string]()
	journeys := tripcounter.NewTripCounter[trip.Journey](trip.Journey.Less)
	for _, tripData := range t.Trips() {
		starts.UpdateCounter(tripData.StartStation)
		ends.UpdateCounter(tripData.EndStation)
		journeys.UpdateCounter(tripData.Journey)
	}

	report := StationReport{
		Status:            Available,
		StartStationCount: starts.Distinct(),
		EndStationCount:   ends.Distinct(),
	}
	report.PopularStart, _ = starts.Mode()
	report.PopularEnd, _ = ends.Mode()
	report.PopularJourney, _ = journeys.Mode()
	report.JourneyDistanceKm, report.HasDistance = dir.Distance(report.PopularJourney)

	log.Debug(getLogMessage("Stations", fmt.Sprintf("%v trips over %v distinct journeys, distance known: %v",
		journeys.Total(), journeys.Distinct(), report.HasDistance)))
	return report
}
