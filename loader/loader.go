package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/table"
)

const (
	loaderType = "dataset-loader"

	startTimeColumn    = "Start Time"
	endTimeColumn      = "End Time"
	startStationColumn = "Start Station"
	endStationColumn   = "End Station"
	userTypeColumn     = "User Type"
	genderColumn       = "Gender"
	birthYearColumn    = "Birth Year"

	DefaultTimestampLayout = "2006-01-02 15:04:05"
)

var requiredColumns = []string{startTimeColumn, endTimeColumn, startStationColumn, endStationColumn, userTypeColumn}

// Options tune how datasets are parsed
// + Delimiter: field separator of the dataset files, ',' when zero
// + TimestampLayouts: layouts tried in order to parse Start Time and End Time
type Options struct {
	Delimiter        rune
	TimestampLayouts []string
}

// Loader reads the dataset of a city into a table.Table.
// Sources are resolved once, when the Loader is built.
type Loader struct {
	datasets map[string]string
	options  Options
}

// NewLoader returns a Loader for the given city -> dataset path mapping.
// Every city in selection.Cities must have a dataset.
func NewLoader(datasets map[string]string, options Options) (*Loader, error) {
	var missing []string
	for _, city := range selection.Cities {
		if strings.TrimSpace(datasets[city]) == "" {
			missing = append(missing, city)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("no dataset configured for: %s", strings.Join(missing, ", "))
	}

	if options.Delimiter == 0 {
		options.Delimiter = ','
	}
	if len(options.TimestampLayouts) == 0 {
		options.TimestampLayouts = []string{DefaultTimestampLayout}
	}

	return &Loader{
		datasets: datasets,
		options:  options,
	}, nil
}

// Source returns the path of the dataset of city
func (l *Loader) Source(city string) (string, bool) {
	path, ok := l.datasets[city]
	return path, ok
}

// Load reads the dataset of city. Any failure reading the source is returned
// wrapping dataErrors.ErrDataUnavailable.
func (l *Loader) Load(city string) (*table.Table, error) {
	path, ok := l.Source(city)
	if !ok {
		return nil, fmt.Errorf("%w: unknown city %q", dataErrors.ErrInvalidInput, city)
	}

	dataFile, err := os.Open(path)
	if err != nil {
		log.Error(getLogMessage(city, "Load", fmt.Sprintf("error opening %s", path), err))
		return nil, fmt.Errorf("%w: %s", dataErrors.ErrDataUnavailable, err)
	}

	defer func(dataFile *os.File) {
		if err := dataFile.Close(); err != nil {
			log.Errorf("error closing %s: %s", path, err.Error())
		}
	}(dataFile)

	start := time.Now()
	tbl, err := l.Parse(city, dataFile)
	if err != nil {
		return nil, err
	}

	log.Info(getLogMessage(city, "Load", fmt.Sprintf("%v trips loaded from %s in %s", tbl.Len(), path, time.Since(start)), nil))
	return tbl, nil
}

// Parse reads a dataset from r. The first line must be the header.
func (l *Loader) Parse(city string, r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.options.Delimiter
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: error reading header: %s", dataErrors.ErrDataUnavailable, err)
	}

	columns, schema, err := getColumnIndexes(header)
	if err != nil {
		return nil, err
	}

	var trips []*trip.TripData
	line := 1
	skipped := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line += 1
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Debug(getLogMessage(city, "Parse", fmt.Sprintf("skipping malformed line %v", line), err))
				skipped += 1
				continue
			}
			return nil, fmt.Errorf("%w: error reading line %v: %s", dataErrors.ErrDataUnavailable, line, err)
		}

		tripData, err := l.getTripData(record, columns, schema)
		if err != nil {
			if errors.Is(err, dataErrors.ErrInvalidTripData) {
				log.Debug(getLogMessage(city, "Parse", fmt.Sprintf("skipping line %v", line), err))
				skipped += 1
				continue
			}
			return nil, err
		}

		if !isValid(city, line, tripData) {
			skipped += 1
			continue
		}

		trips = append(trips, tripData)
	}

	if skipped > 0 {
		log.Info(getLogMessage(city, "Parse", fmt.Sprintf("%v invalid lines were skipped", skipped), nil))
	}

	return table.NewTable(city, schema, trips), nil
}

// columnIndexes contains the index of each field to analyze, -1 when the column is absent
type columnIndexes struct {
	StartTime    int
	EndTime      int
	StartStation int
	EndStation   int
	UserType     int
	Gender       int
	BirthYear    int
}

func getColumnIndexes(header []string) (columnIndexes, table.Schema, error) {
	positions := make(map[string]int, len(header))
	for idx, name := range header {
		// some exports carry a byte order mark in the first column name
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		positions[name] = idx
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := positions[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columnIndexes{}, table.Schema{}, fmt.Errorf("%w: %w: %s", dataErrors.ErrDataUnavailable, dataErrors.ErrMissingColumn, strings.Join(missing, ", "))
	}

	indexOf := func(name string) int {
		if idx, ok := positions[name]; ok {
			return idx
		}
		return -1
	}

	columns := columnIndexes{
		StartTime:    indexOf(startTimeColumn),
		EndTime:      indexOf(endTimeColumn),
		StartStation: indexOf(startStationColumn),
		EndStation:   indexOf(endStationColumn),
		UserType:     indexOf(userTypeColumn),
		Gender:       indexOf(genderColumn),
		BirthYear:    indexOf(birthYearColumn),
	}
	schema := table.Schema{
		HasGender:    columns.Gender >= 0,
		HasBirthYear: columns.BirthYear >= 0,
	}
	return columns, schema, nil
}

func (l *Loader) getTripData(record []string, columns columnIndexes, schema table.Schema) (*trip.TripData, error) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	startTime, err := l.parseTimestamp(field(columns.StartTime))
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}

	endTime, err := l.parseTimestamp(field(columns.EndTime))
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	tripData := trip.NewTripData(
		startTime,
		endTime,
		field(columns.StartStation),
		field(columns.EndStation),
		field(columns.UserType),
	)

	if schema.HasGender {
		tripData.WithGender(field(columns.Gender))
	}

	if schema.HasBirthYear {
		year, err := parseBirthYear(field(columns.BirthYear))
		if err != nil {
			return nil, err
		}
		tripData.WithBirthYear(year)
	}

	return tripData, nil
}

func (l *Loader) parseTimestamp(value string) (time.Time, error) {
	for _, layout := range l.options.TimestampLayouts {
		if timestamp, err := time.Parse(layout, value); err == nil {
			return timestamp, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s %q: %w", dataErrors.ErrInvalidDate, value, dataErrors.ErrInvalidTripData)
}

// parseBirthYear parses values such as 1992 or 1992.0. Empty values mean the rider did not say.
func parseBirthYear(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	year, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(year) || math.IsInf(year, 0) || year < 0 {
		return 0, fmt.Errorf("%s %q: %w", dataErrors.ErrInvalidYear, value, dataErrors.ErrInvalidTripData)
	}
	return int(year), nil
}

// isValid returns true if the following conditions are met:
// + The trip does not end before it starts
// + Both start station and end station have a name
func isValid(city string, line int, tripData *trip.TripData) bool {
	validData := true
	var invalidReasons []string
	if tripData.EndTime.Before(tripData.StartTime) {
		invalidReasons = append(invalidReasons, "EndTime < StartTime")
		validData = false
	}

	if tripData.StartStation == "" {
		invalidReasons = append(invalidReasons, "empty StartStation")
		validData = false
	}

	if tripData.EndStation == "" {
		invalidReasons = append(invalidReasons, "empty EndStation")
		validData = false
	}

	if !validData {
		log.Debug(getLogMessage(city, "isValid", fmt.Sprintf("invalid data at line %v, reasons: %v", line, invalidReasons), nil))
	}

	return validData
}

func getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][city: %s][method: %s][status: ERROR] %s: %s", loaderType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][city: %s][method: %s][status: OK] %s", loaderType, city, method, message)
}
