package selection

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// All disables a month or day filter
const All = "all"

const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	Washington  = "washington"
)

var (
	// Cities accepted as input, one dataset each
	Cities = []string{Chicago, NewYorkCity, Washington}

	// Months covered by the datasets. Trips are only available from January to June,
	// so July to December are not part of the vocabulary.
	Months = []string{"january", "february", "march", "april", "may", "june"}

	Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Selection is the (city, month, day) triple chosen once per session.
// Month and Day hold a lowercase name or All.
type Selection struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// New validates the three values and returns the Selection
func New(city string, month string, day string) (Selection, error) {
	parsedCity, err := ParseCity(city)
	if err != nil {
		return Selection{}, err
	}
	parsedMonth, err := ParseMonth(month)
	if err != nil {
		return Selection{}, err
	}
	parsedDay, err := ParseDay(day)
	if err != nil {
		return Selection{}, err
	}
	return Selection{City: parsedCity, Month: parsedMonth, Day: parsedDay}, nil
}

// ParseCity normalizes the input and checks it is one of Cities
func ParseCity(input string) (string, error) {
	city := normalize(input)
	if !utils.ContainsString(city, Cities) {
		return "", fmt.Errorf("%w: unknown city %q", dataErrors.ErrInvalidInput, input)
	}
	return city, nil
}

// ParseMonth normalizes the input and checks it is one of Months or All.
// Numbers are rejected with ErrNumericMonth so the caller can ask for a name.
func ParseMonth(input string) (string, error) {
	month := normalize(input)
	if month == All || utils.ContainsString(month, Months) {
		return month, nil
	}
	if _, err := strconv.Atoi(month); err == nil {
		return "", fmt.Errorf("%w: %w", dataErrors.ErrInvalidInput, dataErrors.ErrNumericMonth)
	}
	return "", fmt.Errorf("%w: unknown month %q", dataErrors.ErrInvalidInput, input)
}

// ParseDay normalizes the input and checks it is one of Days or All
func ParseDay(input string) (string, error) {
	day := normalize(input)
	if day == All || utils.ContainsString(day, Days) {
		return day, nil
	}
	return "", fmt.Errorf("%w: unknown day %q", dataErrors.ErrInvalidInput, input)
}

// Normalize parses month and day again, so a Selection that was not built by New
// is either brought to the lowercase vocabulary or rejected with ErrInvalidInput
func (s Selection) Normalize() (Selection, error) {
	month, err := ParseMonth(s.Month)
	if err != nil {
		return Selection{}, err
	}
	day, err := ParseDay(s.Day)
	if err != nil {
		return Selection{}, err
	}
	return Selection{City: normalize(s.City), Month: month, Day: day}, nil
}

// MonthNumber returns the 1-based position of the month within Months, 0 for All
func (s Selection) MonthNumber() int {
	selected := normalize(s.Month)
	for idx, month := range Months {
		if month == selected {
			return idx + 1
		}
	}
	return 0
}

// DayName returns the title-cased day, e.g. Monday, or empty for All
func (s Selection) DayName() string {
	day := normalize(s.Day)
	if day == "" || day == All {
		return ""
	}
	return utils.TitleCase(day)
}

// Weekday returns the day as time.Weekday. The second value is false for All.
func (s Selection) Weekday() (time.Weekday, bool) {
	name := s.DayName()
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String() == name {
			return wd, true
		}
	}
	return time.Sunday, false
}

func (s Selection) FilterByMonth() bool {
	return s.MonthNumber() != 0
}

func (s Selection) FilterByDay() bool {
	_, ok := s.Weekday()
	return ok
}

func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
