// Package console asks the user for filters and navigation choices, one line at a time.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	dataErrors "bikeshare/domain/errors"
)

const (
	cityPrompt          = "Please enter the city:  "
	cityRetryPrompt     = "\nPlease enter Chicago, New York City or Washington:  "
	monthPrompt         = "Please enter the month e.g. January, February, ..., June or all:  "
	monthByNamePrompt   = "Please input the month by name, not number: "
	dayPrompt           = "Please enter the day of the week e.g. Monday, Tuesday... or all: "
	dayRetryPrompt      = "Oops I don't seem to understand your input!\n" + dayPrompt
	restartPrompt       = "\nWould you like to restart? Enter yes or no.\n"
	moreRowsPrompt      = "\nHit Enter for 5 new lines, or enter No to exit: "
	notUnderstoodOutput = "Oops I don't seem to understand your input"
)

// Prompter reads answers from in and writes questions to out.
// Lines of any length are accepted. Reaching the end of in makes every method return io.EOF.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Println writes a line to the output
func (p *Prompter) Println(text string) error {
	_, err := fmt.Fprintln(p.out, text)
	return err
}

// ask writes the question and returns the next line, with surrounding spaces removed
func (p *Prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Greet introduces the tool and the choices to make
func (p *Prompter) Greet() error {
	return p.Println("Hello! Let's explore some US bikeshare data!\n" +
		"First, please tell me which city you are interested in - Chicago, New York City or Washington?")
}

// City asks until the answer is one of the supported cities
func (p *Prompter) City() (string, error) {
	answer, err := p.ask(cityPrompt)
	for err == nil {
		city, parseErr := selection.ParseCity(answer)
		if parseErr == nil {
			return city, p.Println("")
		}
		log.Debugf("[component: console][method: City] %s", parseErr)
		if err = p.Println(notUnderstoodOutput); err != nil {
			break
		}
		answer, err = p.ask(cityRetryPrompt)
	}
	return "", err
}

// Month asks until the answer is a month between January and June, or all.
// Numbers get a dedicated hint asking for the month name.
func (p *Prompter) Month() (string, error) {
	if err := p.Println("Do you wish to filter by month?"); err != nil {
		return "", err
	}
	answer, err := p.ask(monthPrompt)
	for err == nil {
		month, parseErr := selection.ParseMonth(answer)
		if parseErr == nil {
			return month, p.Println("")
		}
		log.Debugf("[component: console][method: Month] %s", parseErr)
		if errors.Is(parseErr, dataErrors.ErrNumericMonth) {
			answer, err = p.ask(monthByNamePrompt)
			continue
		}
		if err = p.Println("I don't recognise your input."); err != nil {
			break
		}
		answer, err = p.ask(monthPrompt)
	}
	return "", err
}

// Day asks until the answer is a day of the week, or all
func (p *Prompter) Day() (string, error) {
	answer, err := p.ask("Do you wish to filter by day?\n" + dayPrompt)
	for err == nil {
		day, parseErr := selection.ParseDay(answer)
		if parseErr == nil {
			return day, p.Println("")
		}
		log.Debugf("[component: console][method: Day] %s", parseErr)
		answer, err = p.ask(dayRetryPrompt)
	}
	return "", err
}

// Selection asks for city, month and day
func (p *Prompter) Selection() (selection.Selection, error) {
	if err := p.Greet(); err != nil {
		return selection.Selection{}, err
	}
	city, err := p.City()
	if err != nil {
		return selection.Selection{}, err
	}
	month, err := p.Month()
	if err != nil {
		return selection.Selection{}, err
	}
	day, err := p.Day()
	if err != nil {
		return selection.Selection{}, err
	}
	return selection.Selection{City: city, Month: month, Day: day}, nil
}

// Restart returns true only when the user answers yes
func (p *Prompter) Restart() (bool, error) {
	answer, err := p.ask(restartPrompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

// WantsRawData asks whether to start the raw data view
func (p *Prompter) WantsRawData() (bool, error) {
	if err := p.Println("\nWould you like to view some raw data?"); err != nil {
		return false, err
	}
	return p.MoreRows()
}

// MoreRows returns false only when the user answers no. Any other answer,
// including an empty line, asks for the next window of rows.
func (p *Prompter) MoreRows() (bool, error) {
	answer, err := p.ask(moreRowsPrompt)
	if err != nil {
		return false, err
	}
	return !strings.EqualFold(answer, "no"), nil
}
