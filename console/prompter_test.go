package console_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/console"
	"bikeshare/domain/entities/selection"
)

func newPrompter(input string) (*console.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return console.NewPrompter(strings.NewReader(input), &out), &out
}

func TestCity_repromptsUntilValid(t *testing.T) {
	p, out := newPrompter("boston\n\nNew York City\n")

	city, err := p.City()

	require.NoError(t, err)
	assert.Equal(t, selection.NewYorkCity, city)
	assert.Equal(t, 2, strings.Count(out.String(), "Oops I don't seem to understand your input"))
}

func TestCity_longLineIsReprompted(t *testing.T) {
	p, out := newPrompter(strings.Repeat("x", 70*1024) + "\nchicago\n")

	city, err := p.City()

	require.NoError(t, err)
	assert.Equal(t, selection.Chicago, city)
	assert.Equal(t, 1, strings.Count(out.String(), "Oops I don't seem to understand your input"))
}

func TestCity_lastLineWithoutNewline(t *testing.T) {
	p, _ := newPrompter("washington")

	city, err := p.City()

	require.NoError(t, err)
	assert.Equal(t, selection.Washington, city)
}

func TestMonth_numericInputGetsHint(t *testing.T) {
	p, out := newPrompter("3\njuly\nMarch\n")

	month, err := p.Month()

	require.NoError(t, err)
	assert.Equal(t, "march", month)
	assert.Contains(t, out.String(), "Please input the month by name, not number")
	assert.Contains(t, out.String(), "I don't recognise your input.")
}

func TestDay(t *testing.T) {
	p, out := newPrompter("someday\nALL\n")

	day, err := p.Day()

	require.NoError(t, err)
	assert.Equal(t, selection.All, day)
	assert.Contains(t, out.String(), "Oops I don't seem to understand your input!")
}

func TestSelection(t *testing.T) {
	p, out := newPrompter("chicago\nall\nfriday\n")

	sel, err := p.Selection()

	require.NoError(t, err)
	assert.Equal(t, selection.Selection{City: "chicago", Month: "all", Day: "friday"}, sel)
	assert.Contains(t, out.String(), "Let's explore some US bikeshare data!")
}

func TestSelection_endOfInput(t *testing.T) {
	p, _ := newPrompter("chicago\n")

	_, err := p.Selection()

	assert.ErrorIs(t, err, io.EOF)
}

func TestRestart(t *testing.T) {
	for input, want := range map[string]bool{
		"yes\n": true,
		"YES\n": true,
		"y\n":   false,
		"no\n":  false,
		"\n":    false,
	} {
		p, _ := newPrompter(input)

		restart, err := p.Restart()

		require.NoError(t, err, input)
		assert.Equal(t, want, restart, input)
	}
}

func TestMoreRows(t *testing.T) {
	for input, want := range map[string]bool{
		"\n":     true,
		"more\n": true,
		"No\n":   false,
		"no\n":   false,
	} {
		p, _ := newPrompter(input)

		more, err := p.MoreRows()

		require.NoError(t, err, input)
		assert.Equal(t, want, more, input)
	}
}

func TestMoreRows_endOfInput(t *testing.T) {
	p, _ := newPrompter("")

	_, err := p.MoreRows()

	assert.ErrorIs(t, err, io.EOF)
}
