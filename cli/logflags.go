package cli

import (
	"errors"

	"github.com/alecthomas/kingpin/v2"

	"github.com/wtsi-npg/npg-go-lib/logging"
)

// LogFlags holds the values of the standard logging flags.
type LogFlags struct {
	// ConfigFile is the value of --log-config. If set, the settings in
	// the file take precedence over Debug and Verbose.
	ConfigFile string
	Debug      bool
	Verbose    bool
	Colour     bool
	JSON       bool
}

// AddLoggingFlags adds the standard logging flags to the application:
//
//	--log-config   Use a log settings file.
//	-d, --debug    Enable DEBUG level logging to STDERR.
//	-v, --verbose  Enable INFO level logging to STDERR.
//	--colour       Use coloured log rendering to the console.
//	--log-json     Use JSON log rendering.
//
// Call Validate after parsing to enforce the mutual exclusions between
// them.
func AddLoggingFlags(app *kingpin.Application) *LogFlags {
	f := &LogFlags{}
	app.Flag("log-config", "A logging configuration file.").StringVar(&f.ConfigFile)
	app.Flag("debug", "Enable DEBUG level logging to STDERR.").Short('d').BoolVar(&f.Debug)
	app.Flag("verbose", "Enable INFO level logging to STDERR.").Short('v').BoolVar(&f.Verbose)
	app.Flag("colour", "Use coloured log rendering to the console.").BoolVar(&f.Colour)
	app.Flag("log-json", "Use JSON log rendering.").BoolVar(&f.JSON)
	return f
}

// Validate checks the mutual exclusions between the logging flags: at
// most one of --log-config, --debug and --verbose, and at most one of
// --colour and --log-json.
func (f *LogFlags) Validate() error {
	n := 0
	if f.ConfigFile != "" {
		n++
	}
	if f.Debug {
		n++
	}
	if f.Verbose {
		n++
	}
	if n > 1 {
		return errors.New("--log-config, --debug and --verbose are mutually exclusive")
	}

	if f.Colour && f.JSON {
		return errors.New("--colour and --log-json are mutually exclusive")
	}

	return nil
}

// Options converts the parsed flags into logging options.
func (f *LogFlags) Options() logging.Options {
	return logging.Options{
		ConfigFile: f.ConfigFile,
		Debug:      f.Debug,
		Verbose:    f.Verbose,
		Colour:     f.Colour,
		JSON:       f.JSON,
	}
}
