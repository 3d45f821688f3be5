package stats

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/table"
)

// TimeReport most frequent times of travel
type TimeReport struct {
	Status           Status `json:"status"`
	PopularMonth     int    `json:"popular_month"`
	PopularDay       string `json:"popular_day"`
	PopularStartHour int    `json:"popular_start_hour"`
}

// Time returns the modal month, weekday and start hour of the table
func Time(t *table.Table) TimeReport {
	if t.Empty() {
		return TimeReport{Status: NoData}
	}

	months := tripcounter.NewOrderedTripCounter[int]()
	days := tripcounter.NewOrderedTripCounter[string]()
	hours := tripcounter.NewOrderedTripCounter[int]()
	for _, tripData := range t.Trips() {
		months.UpdateCounter(tripData.Month)
		days.UpdateCounter(tripData.DayName())
		hours.UpdateCounter(tripData.StartHour)
	}

	log.Debug(getLogMessage("Time", fmt.Sprintf("%v trips counted over %v months, %v days and %v hours",
		months.Total(), months.Distinct(), days.Distinct(), hours.Distinct())))

	report := TimeReport{Status: Available}
	report.PopularMonth, _ = months.Mode()
	report.PopularDay, _ = days.Mode()
	report.PopularStartHour, _ = hours.Mode()
	return report
}
