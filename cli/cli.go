// Package cli provides helpers that add commonly used flags to kingpin
// applications: date ranges, database configuration, input/output
// selection and logging control.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kingpin/v2"
)

// DefaultBeginDelta is the default distance, in days, between the
// default end date (now) and the default begin date.
const DefaultBeginDelta = 14

const dateHelpExample = "e.g. 2022-01-30, 2022-01-30T11:11:03Z"

// DateRange holds the values of the --begin-date and --end-date flags.
type DateRange struct {
	Begin time.Time
	End   time.Time
}

// AddDateRangeFlags adds --begin-date and --end-date flags to the
// application. Both accept an ISO 8601 UTC date or date and time. The
// end date defaults to the current time and the begin date to
// beginDelta days before it; pass DefaultBeginDelta for the standard
// two week window.
func AddDateRangeFlags(app *kingpin.Application, beginDelta int) *DateRange {
	now := time.Now().UTC()
	r := &DateRange{
		Begin: now.AddDate(0, 0, -beginDelta),
		End:   now,
	}

	app.Flag("begin-date",
		"Limit to after this date. Defaults to "+
			strconv.Itoa(beginDelta)+" days ago. The argument must be an "+
			"ISO8601 UTC date or date and time "+dateHelpExample).
		SetValue(&isoTimeValue{t: &r.Begin})
	app.Flag("end-date",
		"Limit to before this date. Defaults to the current time. The "+
			"argument must be an ISO8601 UTC date or date and time "+
			dateHelpExample).
		SetValue(&isoTimeValue{t: &r.End})

	return r
}

// AddDBConfigFlag adds a required --db-config flag naming a database
// configuration file. The file must exist.
func AddDBConfigFlag(app *kingpin.Application) *string {
	return app.Flag("db-config", "Configuration file for database connection").
		Required().ExistingFile()
}

// IOFlags holds the values of the --input and --output flags. An empty
// value means STDIN or STDOUT respectively.
type IOFlags struct {
	Input  string
	Output string
}

// AddIOFlags adds --input and --output flags to the application.
func AddIOFlags(app *kingpin.Application) *IOFlags {
	f := &IOFlags{}
	app.Flag("input", "Input file. Defaults to STDIN.").StringVar(&f.Input)
	app.Flag("output", "Output file. Defaults to STDOUT.").StringVar(&f.Output)
	return f
}

// OpenInput opens the input file, or returns STDIN when no input flag
// was given.
func (f *IOFlags) OpenInput() (io.ReadCloser, error) {
	if f.Input == "" {
		return os.Stdin, nil
	}
	in, err := os.Open(f.Input)
	if err != nil {
		return nil, fmt.Errorf("open input %q: %w", f.Input, err)
	}
	return in, nil
}

// OpenOutput creates the output file, or returns STDOUT when no output
// flag was given.
func (f *IOFlags) OpenOutput() (io.WriteCloser, error) {
	if f.Output == "" {
		return os.Stdout, nil
	}
	out, err := os.Create(f.Output)
	if err != nil {
		return nil, fmt.Errorf("open output %q: %w", f.Output, err)
	}
	return out, nil
}

// IntInRange establishes a flag value that must be an integer between
// min and max inclusive:
//
//	count := cli.IntInRange(app.Flag("count", "Number of items."), 1, 100)
func IntInRange(s kingpin.Settings, min, max int) *int {
	target := new(int)
	s.SetValue(&rangedIntValue{target: target, min: min, max: max})
	return target
}

// isoTimeValue parses ISO 8601 dates and timestamps into *t. Dates and
// zone-less timestamps are taken as UTC.
type isoTimeValue struct {
	t *time.Time
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (v *isoTimeValue) Set(s string) error {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*v.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("incorrect format %q, use ISO8601 UTC e.g. 2022-01-30T11:11:03Z", s)
}

func (v *isoTimeValue) String() string {
	return v.t.Format(time.RFC3339)
}

type rangedIntValue struct {
	target   *int
	min, max int
}

func (v *rangedIntValue) Set(s string) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("value %q is not an integer", s)
	}
	if val < v.min || val > v.max {
		return fmt.Errorf("value %d is not in range %d to %d", val, v.min, v.max)
	}
	*v.target = val
	return nil
}

func (v *rangedIntValue) String() string {
	return strconv.Itoa(*v.target)
}
