package table_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/table"
	"bikeshare/testhelpers"
)

// sampleTable has trips spread over months and weekdays:
// 2017-01-02 Monday, 2017-01-07 Saturday, 2017-03-06 Monday, 2017-06-30 Friday
func sampleTable(t *testing.T) *table.Table {
	return testhelpers.FullSchemaTable(
		testhelpers.Trip(t, "2017-01-02 08:00:00", time.Minute, "A", "B"),
		testhelpers.Trip(t, "2017-01-07 09:00:00", time.Minute, "B", "C"),
		testhelpers.Trip(t, "2017-03-06 10:00:00", time.Minute, "C", "D"),
		testhelpers.Trip(t, "2017-06-30 23:30:00", time.Minute, "D", "A"),
	)
}

func mustSelect(t *testing.T, month string, day string) selection.Selection {
	t.Helper()
	sel, err := selection.New("chicago", month, day)
	require.NoError(t, err)
	return sel
}

func mustFilter(t *testing.T, tbl *table.Table, sel selection.Selection) *table.Table {
	t.Helper()
	filtered, err := table.Filter(tbl, sel)
	require.NoError(t, err)
	return filtered
}

func TestFilter_allKeepsEverything(t *testing.T) {
	tbl := sampleTable(t)

	filtered := mustFilter(t, tbl, mustSelect(t, "all", "all"))

	assert.Equal(t, tbl.Trips(), filtered.Trips())
	assert.Equal(t, tbl.Schema(), filtered.Schema())
	assert.Equal(t, "chicago", filtered.City())
}

func TestFilter_byMonth(t *testing.T) {
	filtered := mustFilter(t, sampleTable(t), mustSelect(t, "january", "all"))

	require.Equal(t, 2, filtered.Len())
	for _, td := range filtered.Trips() {
		assert.Equal(t, 1, td.Month)
	}
}

func TestFilter_byDay(t *testing.T) {
	filtered := mustFilter(t, sampleTable(t), mustSelect(t, "all", "MONDAY"))

	require.Equal(t, 2, filtered.Len())
	for _, td := range filtered.Trips() {
		assert.Equal(t, "Monday", td.DayName())
	}
}

func TestFilter_monthAndDay(t *testing.T) {
	filtered := mustFilter(t, sampleTable(t), mustSelect(t, "january", "monday"))

	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, "A", filtered.Trips()[0].StartStation)
}

func TestFilter_emptyResultIsNotAnError(t *testing.T) {
	filtered := mustFilter(t, sampleTable(t), mustSelect(t, "february", "all"))

	assert.True(t, filtered.Empty())
	assert.Equal(t, table.Schema{HasGender: true, HasBirthYear: true}, filtered.Schema())
}

func TestFilter_idempotent(t *testing.T) {
	sel := mustSelect(t, "all", "monday")
	once := mustFilter(t, sampleTable(t), sel)

	twice := mustFilter(t, once, sel)

	assert.Equal(t, once.Trips(), twice.Trips())
}

func TestFilter_doesNotModifyInput(t *testing.T) {
	tbl := sampleTable(t)
	before := append([]*trip.TripData(nil), tbl.Trips()...)

	_ = mustFilter(t, tbl, mustSelect(t, "march", "all"))

	assert.Equal(t, before, tbl.Trips())
}

// Selections built by hand skip ParseMonth/ParseDay, so Filter checks them again
func TestFilter_unnormalizedSelection(t *testing.T) {
	for _, tc := range []struct {
		sel  selection.Selection
		want []string
	}{
		{sel: selection.Selection{City: "chicago", Month: "all", Day: "MONDAY"}, want: []string{"A", "C"}},
		{sel: selection.Selection{City: "chicago", Month: "January", Day: "all"}, want: []string{"A", "B"}},
		{sel: selection.Selection{City: "Chicago", Month: " JANUARY ", Day: "Saturday"}, want: []string{"B"}},
	} {
		filtered, err := table.Filter(sampleTable(t), tc.sel)
		require.NoError(t, err, tc.sel.String())

		var starts []string
		for _, td := range filtered.Trips() {
			starts = append(starts, td.StartStation)
		}
		assert.Equal(t, tc.want, starts, tc.sel.String())
	}
}

func TestFilter_unknownValuesAreRejected(t *testing.T) {
	for _, sel := range []selection.Selection{
		{City: "chicago", Month: "july", Day: "all"},
		{City: "chicago", Month: "all", Day: "someday"},
		{City: "chicago", Month: "3", Day: "all"},
		{City: "chicago"},
	} {
		filtered, err := table.Filter(sampleTable(t), sel)

		assert.ErrorIs(t, err, dataErrors.ErrInvalidInput, sel.String())
		assert.Nil(t, filtered, sel.String())
	}
}

func TestTable_Slice(t *testing.T) {
	tbl := sampleTable(t)

	assert.Len(t, tbl.Slice(1, 3), 2)
	assert.Len(t, tbl.Slice(2, 10), 2)
	assert.Empty(t, tbl.Slice(5, 10))
	assert.Empty(t, tbl.Slice(-2, 0))
}
