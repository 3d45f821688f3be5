// Package report renders selections, statistics and raw rows as console text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/stats"
	"bikeshare/table"
	"bikeshare/utils"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	noDataMessage   = "Sorry, there is no data available for your filters"
)

var separator = strings.Repeat("-", 40)

// Formatter writes reports to w. Write errors are kept and returned by Err,
// so callers check once after a batch of sections.
type Formatter struct {
	w   io.Writer
	err error
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Err returns the first write error, if any
func (f *Formatter) Err() error {
	return f.err
}

func (f *Formatter) printf(format string, args ...any) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintf(f.w, format, args...)
}

func (f *Formatter) footer(elapsed time.Duration) {
	f.printf("\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	f.printf("%s\n", separator)
}

// Selection prints the filters chosen by the user
func (f *Formatter) Selection(sel selection.Selection) {
	f.printf("\nThanks! You are searching for data using the following filters:\n")
	f.printf("City = %s\nMonth = %s\nDay = %s\n", utils.TitleCase(sel.City), sel.Month, sel.Day)
	f.printf("%s\n", separator)
}

// NoData tells the user the filters matched no trips
func (f *Formatter) NoData() {
	f.printf("%s\n", noDataMessage)
}

func (f *Formatter) Time(report stats.TimeReport, elapsed time.Duration) {
	f.printf("\nCalculating The Most Frequent Times of Travel...\n\n")
	if report.Status != stats.Available {
		f.NoData()
	} else {
		f.printf("Most popular month: %s\n", time.Month(report.PopularMonth))
		f.printf("Most popular day of the week: %s\n", report.PopularDay)
		f.printf("Most popular start hour: %d\n", report.PopularStartHour)
	}
	f.footer(elapsed)
}

func (f *Formatter) Stations(report stats.StationReport, elapsed time.Duration) {
	f.printf("\nCalculating The Most Popular Stations and Trip...\n\n")
	if report.Status != stats.Available {
		f.NoData()
	} else {
		f.printf("Most commonly used start station: %s\n", report.PopularStart)
		f.printf("Most commonly used end station: %s\n", report.PopularEnd)
		f.printf("The most popular trip is from %s to %s\n", report.PopularJourney.StartStation, report.PopularJourney.EndStation)
		if report.HasDistance {
			f.printf("The straight-line distance of that trip is %.2f km\n", report.JourneyDistanceKm)
		}
		f.printf("The total number of Start Stations used in this timeframe is: %d\n", report.StartStationCount)
		f.printf("The total number of End Stations used in this timeframe is: %d\n", report.EndStationCount)
	}
	f.footer(elapsed)
}

func (f *Formatter) Duration(report stats.DurationReport, elapsed time.Duration) {
	f.printf("\nCalculating Trip Duration...\n\n")
	if report.Status != stats.Available {
		f.NoData()
	} else {
		f.printf("The total time travelling for all journeys: %s\n", report.Total)
		f.printf("The average journey time: %s\n", report.Mean)
		if len(report.Longest) == 1 {
			f.printf("The stats for the longest journey are as follows:\n")
		} else {
			f.printf("The stats for the %d longest journeys are as follows:\n", len(report.Longest))
		}
		f.writeTable([]string{"Start Station", "End Station", "Travel Time"}, report.Longest, func(td *trip.TripData) []string {
			return []string{td.StartStation, td.EndStation, td.Duration.String()}
		})
	}
	f.footer(elapsed)
}

func (f *Formatter) Users(report stats.UserReport, elapsed time.Duration) {
	f.printf("\nCalculating User Stats...\n\n")

	f.printf("The breakdown of user types is as follows:\n")
	f.counts(report.UserTypes, "User Type")

	f.printf("\n")
	if report.Genders.Status == stats.NotAvailable {
		f.printf("Your data does not contain information for Gender\n")
	} else {
		f.printf("The gender split is as follows:\n")
		f.counts(report.Genders, "Gender")
	}

	f.printf("\n")
	years := report.BirthYears
	switch years.Status {
	case stats.NotAvailable:
		f.printf("Your data does not contain information for Birth Year\n")
	case stats.NoData:
		f.printf("Here are the stats for Birth Year:\n")
		f.NoData()
	default:
		f.printf("Here are the stats for Birth Year:\n")
		f.printf("The oldest user's birth year is: %d\n", years.Oldest)
		f.printf("The youngest user's birth year is: %d\n", years.Youngest)
		f.printf("The most common user birth year is: %d\n", years.MostCommon)
		f.printf("The average user birth year is: %d\n", years.Average)
	}
	f.footer(elapsed)
}

// Rows prints raw trips with every loaded column. offset is the table position of the first row.
func (f *Formatter) Rows(rows []*trip.TripData, offset int, schema table.Schema) {
	if len(rows) == 0 {
		f.printf("There are no more rows to display\n")
		return
	}

	header := []string{"#", "Start Time", "End Time", "Start Station", "End Station", "User Type"}
	if schema.HasGender {
		header = append(header, "Gender")
	}
	if schema.HasBirthYear {
		header = append(header, "Birth Year")
	}
	header = append(header, "Month", "Day", "Start Hour", "Travel Time")

	position := offset
	f.writeTable(header, rows, func(td *trip.TripData) []string {
		row := []string{
			strconv.Itoa(position),
			td.StartTime.Format(timestampLayout),
			td.EndTime.Format(timestampLayout),
			td.StartStation,
			td.EndStation,
			td.UserType,
		}
		position++
		if schema.HasGender {
			row = append(row, td.Gender)
		}
		if schema.HasBirthYear {
			year := ""
			if td.HasBirthYear() {
				year = strconv.Itoa(td.BirthYear)
			}
			row = append(row, year)
		}
		return append(row,
			strconv.Itoa(td.Month),
			td.DayName(),
			strconv.Itoa(td.StartHour),
			td.Duration.String(),
		)
	})
}

func (f *Formatter) counts(report stats.CountReport, label string) {
	if report.Status != stats.Available {
		f.NoData()
		return
	}
	tw := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	for _, count := range report.Counts {
		if f.err == nil {
			_, f.err = fmt.Fprintf(tw, "%s\t%d\n", count.Value, count.Count)
		}
	}
	f.flush(tw)
	f.printf("Name: %s\n", label)
}

func (f *Formatter) writeTable(header []string, rows []*trip.TripData, columns func(*trip.TripData) []string) {
	tw := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	if f.err == nil {
		_, f.err = fmt.Fprintln(tw, strings.Join(header, "\t"))
	}
	for _, row := range rows {
		if f.err == nil {
			_, f.err = fmt.Fprintln(tw, strings.Join(columns(row), "\t"))
		}
	}
	f.flush(tw)
}

func (f *Formatter) flush(tw *tabwriter.Writer) {
	if err := tw.Flush(); err != nil && f.err == nil {
		f.err = err
	}
}
