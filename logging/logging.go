// Package logging configures structured logging for command-line
// tools. The pipeline is mostly fixed; callers choose a level with the
// Debug and Verbose options, a rendering with Colour and JSON, or
// override both with a TOML settings file.
package logging

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log level and rendering. The zero value gives
// ERROR level console logging to STDERR.
type Options struct {
	// ConfigFile is the path of a TOML settings file. If set, its
	// contents override the Debug and Verbose options.
	ConfigFile string

	// Debug enables DEBUG level logging. It overrides Verbose.
	Debug bool
	// Verbose enables INFO level logging.
	Verbose bool

	// Colour uses coloured level rendering on the console. It is
	// ignored when JSON is set.
	Colour bool
	// JSON renders log events as JSON.
	JSON bool
}

// fileSettings is the schema of the TOML settings file.
type fileSettings struct {
	Level       string   `toml:"level"`
	Encoding    string   `toml:"encoding"`
	Colour      bool     `toml:"colour"`
	OutputPaths []string `toml:"output_paths"`
}

// Configure builds a logger from the given options. Events carry an
// ISO 8601 timestamp and the caller's file and line.
func Configure(opts Options) (*zap.Logger, error) {
	level := zapcore.ErrorLevel
	if opts.Verbose {
		level = zapcore.InfoLevel
	}
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encoding := "console"
	if opts.JSON {
		encoding = "json"
	}
	colour := opts.Colour && !opts.JSON
	outputs := []string{"stderr"}

	if opts.ConfigFile != "" {
		var fs fileSettings
		if _, err := toml.DecodeFile(opts.ConfigFile, &fs); err != nil {
			return nil, fmt.Errorf("parse log settings %q: %w", opts.ConfigFile, err)
		}

		if fs.Level != "" {
			l, err := zapcore.ParseLevel(fs.Level)
			if err != nil {
				return nil, fmt.Errorf("log settings %q: %w", opts.ConfigFile, err)
			}
			level = l
		}
		if fs.Encoding != "" {
			encoding = fs.Encoding
		}
		colour = fs.Colour && encoding != "json"
		if len(fs.OutputPaths) > 0 {
			outputs = fs.OutputPaths
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = encoding
	cfg.OutputPaths = outputs
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if colour {
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Init configures a logger as Configure does and installs it as the
// process-wide default, so that zap.L() and zap.S() use it.
func Init(opts Options) (*zap.Logger, error) {
	logger, err := Configure(opts)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
