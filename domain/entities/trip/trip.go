package trip

import (
	"time"
)

// Journey identifies a trip by its endpoints. The pair is kept as two fields so
// station names never have to be split back out of a joined key.
type Journey struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
}

func NewJourney(startStation string, endStation string) Journey {
	return Journey{StartStation: startStation, EndStation: endStation}
}

// Less orders journeys by start station, then by end station
func (j Journey) Less(other Journey) bool {
	if j.StartStation != other.StartStation {
		return j.StartStation < other.StartStation
	}
	return j.EndStation < other.EndStation
}

// TripData struct that contains one bike-share ride
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: kind of rider (Subscriber, Customer, ...)
// + Gender: empty when the record or the dataset has no gender
// + BirthYear: zero when the record or the dataset has no birth year
//
// Derived fields, computed once by NewTripData:
// + Month: 1-12, from StartTime
// + Weekday: day of the week of StartTime
// + StartHour: 0-23, from StartTime
// + Journey: (StartStation, EndStation) pair
// + Duration: EndTime - StartTime
type TripData struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`

	Month     int           `json:"month"`
	Weekday   time.Weekday  `json:"weekday"`
	StartHour int           `json:"start_hour"`
	Journey   Journey       `json:"journey"`
	Duration  time.Duration `json:"duration"`
}

func NewTripData(startTime time.Time, endTime time.Time, startStation string, endStation string, userType string) *TripData {
	return &TripData{
		StartTime:    startTime,
		EndTime:      endTime,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
		Month:        int(startTime.Month()),
		Weekday:      startTime.Weekday(),
		StartHour:    startTime.Hour(),
		Journey:      NewJourney(startStation, endStation),
		Duration:     endTime.Sub(startTime),
	}
}

// WithGender sets the gender of the rider and returns the same record
func (td *TripData) WithGender(gender string) *TripData {
	td.Gender = gender
	return td
}

// WithBirthYear sets the birth year of the rider and returns the same record
func (td *TripData) WithBirthYear(year int) *TripData {
	td.BirthYear = year
	return td
}

// DayName returns the weekday name used by filters and reports, e.g. Monday
func (td *TripData) DayName() string {
	return td.Weekday.String()
}

func (td *TripData) HasBirthYear() bool {
	return td.BirthYear != 0
}
