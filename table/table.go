package table

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
)

const componentType = "filter-engine"

// Schema tells which optional columns the dataset of a city has.
// It is a property of the dataset, not of the rows: a table with a Gender
// column keeps HasGender after filtering even if no row remains.
type Schema struct {
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`
}

// Table is an ordered sequence of trips loaded from the dataset of a single city.
// Tables are never modified once built; filtering returns a new Table.
type Table struct {
	city   string
	schema Schema
	trips  []*trip.TripData
}

func NewTable(city string, schema Schema, trips []*trip.TripData) *Table {
	return &Table{
		city:   city,
		schema: schema,
		trips:  trips,
	}
}

func (t *Table) City() string {
	return t.city
}

func (t *Table) Schema() Schema {
	return t.schema
}

func (t *Table) Len() int {
	return len(t.trips)
}

func (t *Table) Empty() bool {
	return len(t.trips) == 0
}

// Trips returns the rows of the table. Callers must not modify the returned slice.
func (t *Table) Trips() []*trip.TripData {
	return t.trips
}

// Slice returns the rows in [from, to), clamped to the bounds of the table
func (t *Table) Slice(from int, to int) []*trip.TripData {
	if from < 0 {
		from = 0
	}
	if to > len(t.trips) {
		to = len(t.trips)
	}
	if from >= to {
		return []*trip.TripData{}
	}
	return t.trips[from:to]
}

// Filter returns a new table with the rows of t matching the month and day of sel.
// Month and day filters are combined with AND; All disables a filter.
// Months or days outside the vocabulary are rejected with ErrInvalidInput.
// An empty result is not an error: the empty table is returned and a warning is logged.
func Filter(t *Table, sel selection.Selection) (*Table, error) {
	sel, err := sel.Normalize()
	if err != nil {
		log.Error(getLogMessage("Filter", "invalid filters", err))
		return nil, err
	}

	byMonth, byDay := sel.FilterByMonth(), sel.FilterByDay()
	monthNumber := sel.MonthNumber()
	weekday, _ := sel.Weekday()

	filtered := make([]*trip.TripData, 0, len(t.trips))
	for _, tripData := range t.trips {
		if byMonth && tripData.Month != monthNumber {
			continue
		}
		if byDay && tripData.Weekday != weekday {
			continue
		}
		filtered = append(filtered, tripData)
	}

	result := NewTable(t.city, t.schema, filtered)
	if result.Empty() {
		log.Warn(getLogMessage("Filter", fmt.Sprintf("no data available for filters month=%s day=%s", sel.Month, sel.Day), nil))
		return result, nil
	}

	log.Debug(getLogMessage("Filter", fmt.Sprintf("%v of %v trips match month=%s day=%s", result.Len(), t.Len(), sel.Month, sel.Day), nil))
	return result, nil
}

func getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", componentType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", componentType, method, message)
}
