package explorer_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/explorer"
	"bikeshare/loader"
	"bikeshare/table"
	"bikeshare/testhelpers"
)

type stubLoader struct {
	tables map[string]*table.Table
	calls  []string
}

func (s *stubLoader) Load(city string) (*table.Table, error) {
	s.calls = append(s.calls, city)
	tbl, ok := s.tables[city]
	if !ok {
		return nil, fmt.Errorf("%w: no file for %s", dataErrors.ErrDataUnavailable, city)
	}
	return tbl, nil
}

func chicagoTable(t *testing.T, rows int) *table.Table {
	trips := make([]*trip.TripData, 0, rows)
	for i := 0; i < rows; i++ {
		trips = append(trips, testhelpers.Trip(t, "2017-01-02 08:00:00", time.Duration(i+1)*time.Minute, fmt.Sprintf("Station %d", i), "Lake Shore Dr").
			WithGender("Female").
			WithBirthYear(1980+i))
	}
	return testhelpers.FullSchemaTable(trips...)
}

func run(t *testing.T, l explorer.DatasetLoader, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	e := explorer.NewExplorer(explorer.Config{PageSize: 5, FirstPageOffset: 5}, l, nil, strings.NewReader(input), &out)
	err := e.Run()
	return out.String(), err
}

func TestRun_singleSession(t *testing.T) {
	l := &stubLoader{tables: map[string]*table.Table{"chicago": chicagoTable(t, 7)}}

	out, err := run(t, l, "chicago\njanuary\nmonday\n\nno\nno\n")

	require.NoError(t, err)
	assert.Equal(t, []string{"chicago"}, l.calls)
	assert.Contains(t, out, "City = Chicago")
	assert.Contains(t, out, "Most popular month: January")
	assert.Contains(t, out, "Most popular day of the week: Monday")
	assert.Contains(t, out, "The most popular trip is from Station 0 to Lake Shore Dr")
	assert.Contains(t, out, "The total time travelling for all journeys: 28m0s")
	assert.Contains(t, out, "The oldest user's birth year is: 1980")
	// first window shows rows 5 and 6 only
	assert.Contains(t, out, "Station 5")
	assert.Contains(t, out, "Station 6")
	assert.Contains(t, out, "Would you like to restart?")
}

func TestRun_restartDiscardsTable(t *testing.T) {
	l := &stubLoader{tables: map[string]*table.Table{
		"chicago":    chicagoTable(t, 3),
		"washington": testhelpers.BareSchemaTable(testhelpers.Journeys(t, [2]string{"A", "B"})...),
	}}

	out, err := run(t, l, "chicago\nall\nall\nno\nyes\nwashington\nall\nall\nno\nno\n")

	require.NoError(t, err)
	assert.Equal(t, []string{"chicago", "washington"}, l.calls)
	assert.Contains(t, out, "City = Washington")
	assert.Contains(t, out, "Your data does not contain information for Gender")
}

func TestRun_emptyFilterResult(t *testing.T) {
	l := &stubLoader{tables: map[string]*table.Table{"chicago": chicagoTable(t, 3)}}

	out, err := run(t, l, "chicago\njune\nall\n\nno\nno\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Sorry, there is no data available for your filters")
	assert.Contains(t, out, "There are no more rows to display")
}

func TestRun_dataUnavailableIsReturned(t *testing.T) {
	l := &stubLoader{tables: map[string]*table.Table{}}

	_, err := run(t, l, "new york city\nall\nall\n")

	require.Error(t, err)
	assert.ErrorIs(t, err, dataErrors.ErrDataUnavailable)
}

func TestRun_endOfInputTerminates(t *testing.T) {
	l := &stubLoader{tables: map[string]*table.Table{"chicago": chicagoTable(t, 3)}}

	_, err := run(t, l, "chicago\nall\n")

	require.NoError(t, err)
	assert.Empty(t, l.calls)
}

func TestRun_withDatasetFiles(t *testing.T) {
	dir := t.TempDir()
	datasets := map[string]string{
		"chicago":       filepath.Join(dir, "chicago.csv"),
		"new york city": filepath.Join(dir, "new_york_city.csv"),
		"washington":    filepath.Join(dir, "washington.csv"),
	}
	data := "Start Time,End Time,Start Station,End Station,User Type\n" +
		"2017-02-07 07:00:00,2017-02-07 07:20:00,Union Station,Capitol Hill,Subscriber\n" +
		"2017-02-07 07:05:00,2017-02-07 07:15:00,Union Station,Capitol Hill,Customer\n"
	require.NoError(t, os.WriteFile(datasets["washington"], []byte(data), 0o600))
	l, err := loader.NewLoader(datasets, loader.Options{})
	require.NoError(t, err)

	out, err := run(t, l, "Washington\nfebruary\ntuesday\nno\nno\n")

	require.NoError(t, err)
	assert.Contains(t, out, "The most popular trip is from Union Station to Capitol Hill")
	assert.Contains(t, out, "The average journey time: 15m0s")
	assert.Contains(t, out, "Your data does not contain information for Birth Year")
}

func TestRun_oversizedAnswerIsReprompted(t *testing.T) {
	l := &stubLoader{tables: map[string]*table.Table{"chicago": chicagoTable(t, 3)}}

	out, err := run(t, l, strings.Repeat("chicago", 10*1024)+"\nchicago\nall\nall\nno\nno\n")

	require.NoError(t, err)
	assert.Equal(t, []string{"chicago"}, l.calls)
	assert.Contains(t, out, "Oops I don't seem to understand your input")
	assert.Contains(t, out, "City = Chicago")
}
