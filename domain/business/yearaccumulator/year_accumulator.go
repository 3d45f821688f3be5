package yearaccumulator

import (
	"bikeshare/domain/business/tripcounter"
)

// YearAccumulator struct that collects the birth years of riders
// + Counter: counts the amount of years collected
// + Oldest: smallest birth year
// + Youngest: greatest birth year
// + total: sum of years, used for the average
type YearAccumulator struct {
	Counter  int
	Oldest   int
	Youngest int
	total    int
	years    *tripcounter.TripCounter[int]
}

func NewYearAccumulator() *YearAccumulator {
	return &YearAccumulator{
		years: tripcounter.NewOrderedTripCounter[int](),
	}
}

func (ya *YearAccumulator) UpdateAccumulator(year int) {
	if ya.Counter == 0 || year < ya.Oldest {
		ya.Oldest = year
	}
	if ya.Counter == 0 || year > ya.Youngest {
		ya.Youngest = year
	}
	ya.Counter += 1
	ya.total += year
	ya.years.UpdateCounter(year)
}

// GetMostCommon returns the most frequent birth year
func (ya *YearAccumulator) GetMostCommon() (int, bool) {
	return ya.years.Mode()
}

// GetAverageYear returns the mean birth year truncated to an integer
func (ya *YearAccumulator) GetAverageYear() (int, bool) {
	if ya.Counter == 0 {
		return 0, false
	}
	return ya.total / ya.Counter, true
}
