package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

// LoadStations reads a station coordinates file with the header name,latitude,longitude.
// An empty path or a missing file means no coordinates are known and returns a nil Directory.
func LoadStations(path string) (*station.Directory, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	stationsFile, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn(getLogMessage("", "LoadStations", fmt.Sprintf("stations file %s not found, distances disabled", path), nil))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening stations file: %w", err)
	}
	defer stationsFile.Close()

	stations, err := ParseStations(stationsFile)
	if err != nil {
		return nil, fmt.Errorf("error reading stations file %s: %w", path, err)
	}

	log.Info(getLogMessage("", "LoadStations", fmt.Sprintf("%v stations loaded from %s", len(stations), path), nil))
	return station.NewDirectory(stations), nil
}

func ParseStations(r io.Reader) ([]station.StationData, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	_, err := reader.Read() // dismiss header
	if err != nil {
		return nil, err
	}

	var stations []station.StationData
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		stationData, err := getStationData(record)
		if err != nil {
			log.Debugf("bypassing station %v: %s", record, err.Error())
			continue
		}
		stations = append(stations, stationData)
	}
	return stations, nil
}

func getStationData(record []string) (station.StationData, error) {
	latitude, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return station.StationData{}, fmt.Errorf("invalid latitude %q: %w", record[1], dataErrors.ErrInvalidStation)
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return station.StationData{}, fmt.Errorf("invalid longitude %q: %w", record[2], dataErrors.ErrInvalidStation)
	}

	return station.StationData{
		Name:      strings.TrimSpace(record[0]),
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}
