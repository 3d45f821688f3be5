package station

import (
	"github.com/umahmood/haversine"

	"bikeshare/domain/entities/trip"
)

// StationData struct that contains the location of a station
type StationData struct {
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Directory knows where stations are and computes distances between them.
// Distances are cached by journey since the same pair is asked for repeatedly.
type Directory struct {
	stations       map[string]StationData
	distancesCache map[trip.Journey]float64
}

func NewDirectory(stations []StationData) *Directory {
	stationsMap := make(map[string]StationData, len(stations))
	for _, s := range stations {
		stationsMap[s.Name] = s
	}
	return &Directory{
		stations:       stationsMap,
		distancesCache: make(map[trip.Journey]float64),
	}
}

// Len returns the amount of stations with known coordinates
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.stations)
}

// Distance returns the straight-line distance in kilometers between both ends of the journey.
// The second value is false when any of the stations is unknown.
func (d *Directory) Distance(journey trip.Journey) (float64, bool) {
	if d == nil {
		return 0, false
	}

	if km, ok := d.distancesCache[journey]; ok {
		return km, true
	}

	start, ok := d.stations[journey.StartStation]
	if !ok {
		return 0, false
	}
	end, ok := d.stations[journey.EndStation]
	if !ok {
		return 0, false
	}

	km := calculateDistance(start, end)
	d.distancesCache[journey] = km
	return km, true
}

// calculateDistance returns the distance between two stations using haversine formula
func calculateDistance(startStation StationData, endStation StationData) float64 {
	station1 := haversine.Coord{Lat: startStation.Latitude, Lon: startStation.Longitude}
	station2 := haversine.Coord{Lat: endStation.Latitude, Lon: endStation.Longitude}

	_, km := haversine.Distance(station1, station2)
	return km
}
