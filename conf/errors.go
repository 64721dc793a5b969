package conf

import "errors"

var (
	// ErrInvalidRecord is returned by New when the record type is not a
	// struct, or declares no usable fields.
	ErrInvalidRecord = errors.New("invalid record type")

	// ErrConfigRead is returned by Load when the configuration file
	// cannot be opened or parsed as INI text.
	ErrConfigRead = errors.New("cannot read configuration")

	// ErrMissingField is returned by Load when a required field has no
	// value after the file and any environment fallback are exhausted.
	ErrMissingField = errors.New("missing required field")

	// ErrUnsupportedType is returned by Load when a field's declared
	// type has no registered converter.
	ErrUnsupportedType = errors.New("unsupported field type")
)
