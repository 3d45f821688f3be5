package stats

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/business/yearaccumulator"
	"bikeshare/table"
)

// CountReport amount of trips per value of a categorical field
type CountReport struct {
	Status Status  `json:"status"`
	Counts []Count `json:"counts"`
}

// BirthYearReport statistics about the birth year of riders
// + Oldest: earliest birth year
// + Youngest: most recent birth year
// + MostCommon: modal birth year
// + Average: mean birth year, truncated
type BirthYearReport struct {
	Status     Status `json:"status"`
	Oldest     int    `json:"oldest"`
	Youngest   int    `json:"youngest"`
	MostCommon int    `json:"most_common"`
	Average    int    `json:"average"`
}

type UserReport struct {
	UserTypes  CountReport     `json:"user_types"`
	Genders    CountReport     `json:"genders"`
	BirthYears BirthYearReport `json:"birth_years"`
}

// Users returns the breakdown of user types and, when the dataset has the columns,
// of genders and birth years. Missing columns take precedence over an empty table:
// a washington table reports NotAvailable for gender whatever the filters.
// Records without a value for a field are left out of that field's statistics.
func Users(t *table.Table) UserReport {
	schema := t.Schema()
	report := UserReport{
		UserTypes:  CountReport{Status: NoData},
		Genders:    CountReport{Status: NoData},
		BirthYears: BirthYearReport{Status: NoData},
	}
	if !schema.HasGender {
		report.Genders.Status = NotAvailable
	}
	if !schema.HasBirthYear {
		report.BirthYears.Status = NotAvailable
	}

	userTypes := tripcounter.NewOrderedTripCounter[string]()
	genders := tripcounter.NewOrderedTripCounter[string]()
	years := yearaccumulator.NewYearAccumulator()
	for _, tripData := range t.Trips() {
		if tripData.UserType != "" {
			userTypes.UpdateCounter(tripData.UserType)
		}
		if schema.HasGender && tripData.Gender != "" {
			genders.UpdateCounter(tripData.Gender)
		}
		if schema.HasBirthYear && tripData.HasBirthYear() {
			years.UpdateAccumulator(tripData.BirthYear)
		}
	}

	log.Debug(getLogMessage("Users", fmt.Sprintf("%v user types, %v genders and %v birth years counted",
		userTypes.Total(), genders.Total(), years.Counter)))

	if userTypes.Distinct() > 0 {
		report.UserTypes = CountReport{Status: Available, Counts: toCounts(userTypes)}
	}
	if genders.Distinct() > 0 {
		report.Genders = CountReport{Status: Available, Counts: toCounts(genders)}
	}
	if years.Counter > 0 {
		mostCommon, _ := years.GetMostCommon()
		average, _ := years.GetAverageYear()
		report.BirthYears = BirthYearReport{
			Status:     Available,
			Oldest:     years.Oldest,
			Youngest:   years.Youngest,
			MostCommon: mostCommon,
			Average:    average,
		}
	}
	return report
}
