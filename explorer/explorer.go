// Package explorer runs the interactive session: collect filters, load the city,
// print the reports, browse raw rows and offer a restart.
package explorer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/console"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/station"
	"bikeshare/pagination"
	"bikeshare/report"
	"bikeshare/stats"
	"bikeshare/table"
)

const explorerType = "explorer"

type state int

const (
	collectFilters state = iota
	loadData
	showReports
	browseRows
	askRestart
	terminate
)

func (s state) String() string {
	switch s {
	case collectFilters:
		return "collect-filters"
	case loadData:
		return "load"
	case showReports:
		return "report"
	case browseRows:
		return "browse"
	case askRestart:
		return "ask-restart"
	case terminate:
		return "terminate"
	}
	return "unknown"
}

// DatasetLoader loads the whole dataset of a city
type DatasetLoader interface {
	Load(city string) (*table.Table, error)
}

// Config
// + PageSize: rows per raw data window
// + FirstPageOffset: position of the first raw row shown
type Config struct {
	PageSize        int
	FirstPageOffset int
}

// Explorer holds the state of one interactive run. Only one table lives in
// memory at a time; it is dropped whenever the user restarts.
type Explorer struct {
	config    Config
	prompter  *console.Prompter
	formatter *report.Formatter
	loader    DatasetLoader
	stations  *station.Directory

	sessionID string
	selection selection.Selection
	table     *table.Table
}

// NewExplorer reads answers from in and writes questions and reports to out.
// stations may be nil.
func NewExplorer(cfg Config, datasetLoader DatasetLoader, stations *station.Directory, in io.Reader, out io.Writer) *Explorer {
	return &Explorer{
		config:    cfg,
		prompter:  console.NewPrompter(in, out),
		formatter: report.NewFormatter(out),
		loader:    datasetLoader,
		stations:  stations,
	}
}

func (e *Explorer) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][session: %s][method: %s][status: ERROR] %s: %s", explorerType, e.sessionID, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][session: %s][method: %s][status: OK] %s", explorerType, e.sessionID, method, message)
}

// Run drives the session until the user declines to restart or the input ends.
// Errors loading a dataset are returned; running out of input is not an error.
func (e *Explorer) Run() error {
	current := collectFilters
	for current != terminate {
		log.Debug(e.getLogMessage("Run", fmt.Sprintf("entering state %s", current), nil))
		next, err := e.step(current)
		if errors.Is(err, io.EOF) {
			log.Info(e.getLogMessage("Run", "end of input, terminating", nil))
			return nil
		}
		if err != nil {
			log.Error(e.getLogMessage("Run", fmt.Sprintf("error in state %s", current), err))
			return err
		}
		current = next
	}
	log.Debug(e.getLogMessage("Run", "session finished", nil))
	return nil
}

func (e *Explorer) step(current state) (state, error) {
	switch current {
	case collectFilters:
		return e.collectFilters()
	case loadData:
		return e.loadData()
	case showReports:
		return e.showReports()
	case browseRows:
		return e.browseRows()
	case askRestart:
		return e.askRestart()
	}
	return terminate, fmt.Errorf("unknown state %d", current)
}

func (e *Explorer) collectFilters() (state, error) {
	e.sessionID = uuid.NewString()
	e.table = nil

	sel, err := e.prompter.Selection()
	if err != nil {
		return terminate, err
	}
	e.selection = sel
	log.Info(e.getLogMessage("collectFilters", fmt.Sprintf("filters selected: %s", sel), nil))

	e.formatter.Selection(sel)
	return loadData, e.formatter.Err()
}

func (e *Explorer) loadData() (state, error) {
	full, err := e.loader.Load(e.selection.City)
	if err != nil {
		return terminate, fmt.Errorf("error loading %s data: %w", e.selection.City, err)
	}

	e.table, err = table.Filter(full, e.selection)
	if err != nil {
		return terminate, fmt.Errorf("error filtering %s data: %w", e.selection.City, err)
	}
	if e.table.Empty() {
		e.formatter.NoData()
	}
	return showReports, e.formatter.Err()
}

func (e *Explorer) showReports() (state, error) {
	start := time.Now()
	users := stats.Users(e.table)
	e.formatter.Users(users, time.Since(start))

	start = time.Now()
	times := stats.Time(e.table)
	e.formatter.Time(times, time.Since(start))

	start = time.Now()
	stations := stats.Stations(e.table, e.stations)
	e.formatter.Stations(stations, time.Since(start))

	start = time.Now()
	durations := stats.Duration(e.table)
	e.formatter.Duration(durations, time.Since(start))

	return browseRows, e.formatter.Err()
}

func (e *Explorer) browseRows() (state, error) {
	more, err := e.prompter.WantsRawData()
	if err != nil {
		return terminate, err
	}

	cursor := pagination.NewCursor(e.table, e.config.PageSize, e.config.FirstPageOffset)
	for more {
		offset := cursor.Offset()
		e.formatter.Rows(cursor.Next(), offset, e.table.Schema())
		if err := e.formatter.Err(); err != nil {
			return terminate, err
		}

		if cursor.Exhausted() {
			log.Debug(e.getLogMessage("browseRows", fmt.Sprintf("all %v rows shown", e.table.Len()), nil))
		}

		more, err = e.prompter.MoreRows()
		if err != nil {
			return terminate, err
		}
	}
	return askRestart, nil
}

func (e *Explorer) askRestart() (state, error) {
	restart, err := e.prompter.Restart()
	if err != nil {
		return terminate, err
	}
	if restart {
		return collectFilters, nil
	}
	return terminate, nil
}
