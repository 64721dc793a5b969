package conf

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Converter parses raw configuration strings for one declared field
// type. FromFile receives the value found in the INI section. FromEnv
// receives the environment variable value and whether the variable was
// set at all.
//
// Both methods return the typed value, or nil when the input yields no
// value (an empty string for a non-string type, or an unset variable).
// A nil result sends the loader further down the fallback chain.
type Converter interface {
	FromFile(raw string) (any, error)
	FromEnv(value string, ok bool) (any, error)
}

// DefaultConverter returns the built-in converter for a declared type,
// if one exists. A custom converter registered with WithConverter can
// delegate to it for the types it does not handle itself.
func DefaultConverter(t reflect.Type) (Converter, bool) {
	c, ok := builtinConverters[t]
	return c, ok
}

var builtinConverters = map[reflect.Type]Converter{
	reflect.TypeFor[string]():  stringConverter{},
	reflect.TypeFor[int]():     intConverter{},
	reflect.TypeFor[int64]():   int64Converter{},
	reflect.TypeFor[float64](): floatConverter{},
	reflect.TypeFor[bool]():    boolConverter{},
	reflect.TypeFor[Path]():    pathConverter{},
	reflect.TypeFor[Secret]():  secretConverter{},
}

// boolWords are the literal words recognised in INI values, matched
// case-insensitively.
var boolWords = map[string]bool{
	"1": true, "yes": true, "true": true, "on": true,
	"0": false, "no": false, "false": false, "off": false,
}

type stringConverter struct{}

// FromFile keeps the raw value unchanged, including an empty string.
func (stringConverter) FromFile(raw string) (any, error) { return raw, nil }

func (stringConverter) FromEnv(value string, ok bool) (any, error) {
	if !ok {
		return nil, nil
	}
	return value, nil
}

type intConverter struct{}

func (intConverter) FromFile(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to int: %w", raw, err)
	}
	return v, nil
}

func (c intConverter) FromEnv(value string, ok bool) (any, error) {
	if !ok || value == "" {
		return nil, nil
	}
	return c.FromFile(value)
}

type int64Converter struct{}

func (int64Converter) FromFile(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to int64: %w", raw, err)
	}
	return v, nil
}

func (c int64Converter) FromEnv(value string, ok bool) (any, error) {
	if !ok || value == "" {
		return nil, nil
	}
	return c.FromFile(value)
}

type floatConverter struct{}

func (floatConverter) FromFile(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to float64: %w", raw, err)
	}
	return v, nil
}

func (c floatConverter) FromEnv(value string, ok bool) (any, error) {
	if !ok || value == "" {
		return nil, nil
	}
	return c.FromFile(value)
}

type boolConverter struct{}

func (boolConverter) FromFile(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	v, found := boolWords[strings.ToLower(raw)]
	if !found {
		return nil, fmt.Errorf("cannot convert %q to bool", raw)
	}
	return v, nil
}

// FromEnv treats an environment variable as true only when its
// lower-cased value is the word "true". Any other set value is false.
func (boolConverter) FromEnv(value string, ok bool) (any, error) {
	if !ok {
		return nil, nil
	}
	return strings.ToLower(value) == "true", nil
}

type pathConverter struct{}

func (pathConverter) FromFile(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	return Path(raw), nil
}

func (pathConverter) FromEnv(value string, ok bool) (any, error) {
	if !ok || value == "" {
		return nil, nil
	}
	return Path(value), nil
}

type secretConverter struct{}

func (secretConverter) FromFile(raw string) (any, error) { return Secret(raw), nil }

func (secretConverter) FromEnv(value string, ok bool) (any, error) {
	if !ok {
		return nil, nil
	}
	return Secret(value), nil
}
