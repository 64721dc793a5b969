package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"go.uber.org/zap"
	ini "gopkg.in/ini.v1"
)

// Loader builds instances of the record type T from one section of an
// INI file. T must be a struct; its exported fields define the keys to
// read and the types to coerce them to.
//
// A Loader is immutable after New and may be shared between
// goroutines. Each Load call parses the file afresh and keeps no
// reference to the returned record.
type Loader[T any] struct {
	typ        reflect.Type
	fields     []Field
	useEnv     bool
	envPrefix  string
	converters map[reflect.Type]Converter
	log        *zap.Logger
}

type settings struct {
	useEnv     bool
	envPrefix  string
	converters map[reflect.Type]Converter
	log        *zap.Logger
}

// Option configures a Loader at construction time.
type Option func(*settings)

// WithEnv enables fallback to environment variables for fields absent
// from the file. The variable consulted for a field is the prefix
// (folded to upper case) followed by the upper-cased field key, with
// no separator beyond what the prefix itself contains.
//
// Field keys exist in the context of their record, but environment
// variables are global; the prefix gives them a more descriptive name,
// e.g. a prefix of "SERVER_" maps the key "port" to SERVER_PORT.
func WithEnv(prefix string) Option {
	return func(s *settings) {
		s.useEnv = true
		s.envPrefix = prefix
	}
}

// WithLogger sets the logger that receives trace events during Load.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithConverter registers a converter for the declared type t. It
// takes precedence over the built-in converter for that type, if any.
// A converter that only handles part of the input space can delegate
// the rest to DefaultConverter.
func WithConverter(t reflect.Type, c Converter) Option {
	return func(s *settings) {
		if s.converters == nil {
			s.converters = make(map[reflect.Type]Converter)
		}
		s.converters[t] = c
	}
}

// New creates a Loader for the record type T. It returns an error
// wrapping ErrInvalidRecord if T is not a struct type, declares no
// usable fields, or declares fields with duplicate keys.
func New[T any](opts ...Option) (*Loader[T], error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidRecord, t)
	}

	fields, err := fieldsOf(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRecord, t, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s declares no fields", ErrInvalidRecord, t)
	}

	log := s.log
	if log == nil {
		log = zap.NewNop()
	}

	return &Loader[T]{
		typ:        t,
		fields:     fields,
		useEnv:     s.useEnv,
		envPrefix:  s.envPrefix,
		converters: s.converters,
		log:        log,
	}, nil
}

// Fields returns the field descriptors of the record type, in
// declaration order.
func (l *Loader[T]) Fields() []Field {
	return slices.Clone(l.fields)
}

// Load creates a new record from the named section of the INI file at
// path. For each declared field, a value is resolved from the file
// section, then (when enabled) from an environment variable, and
// otherwise omitted. An omitted optional field is left at its zero
// value; an omitted required field makes Load fail with an error
// wrapping ErrMissingField.
//
// A file that cannot be opened or parsed yields an error wrapping
// ErrConfigRead. A field whose declared type has no converter yields
// an error wrapping ErrUnsupportedType.
func (l *Loader[T]) Load(path, section string) (T, error) {
	var rec T

	abs, err := filepath.Abs(path)
	if err != nil {
		return rec, fmt.Errorf("%w: resolving %q: %v", ErrConfigRead, path, err)
	}

	l.log.Debug("Reading configuration from file",
		zap.String("path", abs),
		zap.String("section", section),
		zap.String("type", l.typ.String()))

	file, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, abs)
	if err != nil {
		return rec, fmt.Errorf("%w: %q: %v", ErrConfigRead, abs, err)
	}

	sec, err := file.GetSection(section)
	if err != nil {
		// The file parsed but lacks the section; every field goes to
		// the fallback chain.
		sec = nil
	}

	values := make(map[string]any, len(l.fields))
	for _, f := range l.fields {
		v, ok, err := l.resolve(sec, f, abs, section)
		if err != nil {
			return rec, err
		}
		if ok {
			values[f.Key] = v
		}
	}

	var missing []string
	for _, f := range l.fields {
		if f.Optional {
			continue
		}
		if _, ok := values[f.Key]; !ok {
			missing = append(missing, f.Key)
		}
	}
	if len(missing) > 0 {
		return rec, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	if err := decode(values, &rec); err != nil {
		return rec, err
	}

	resolved := make([]string, 0, len(values))
	for _, f := range l.fields {
		if _, ok := values[f.Key]; ok {
			resolved = append(resolved, f.Key)
		}
	}
	l.log.Debug("Reading complete",
		zap.String("type", l.typ.String()),
		zap.Strings("fields", resolved))

	return rec, nil
}

// resolve finds the value for one field, following the fallback chain
// file -> environment -> omission. The second return value reports
// whether a value was found.
func (l *Loader[T]) resolve(sec *ini.Section, f Field, path, section string) (any, bool, error) {
	conv, err := l.converter(f.Type)
	if err != nil {
		return nil, false, fmt.Errorf("field %q: %w", f.Key, err)
	}

	if sec != nil && sec.HasKey(f.Key) {
		raw := sec.Key(f.Key).String()

		if raw == "" && f.Optional {
			// An empty value for an optional field is an explicit nil,
			// not a trigger for fallback.
			return nil, false, nil
		}

		v, err := conv.FromFile(raw)
		if err != nil {
			return nil, false, fmt.Errorf("field %q: %w", f.Key, err)
		}
		if v != nil {
			return v, true, nil
		}

		// The key is present but yielded no value.
		if !l.useEnv {
			return nil, false, nil
		}
		l.log.Debug("Absent field; using an environment variable",
			zap.String("path", path),
			zap.String("section", section),
			zap.String("field", f.Key),
			zap.String("env_var", f.EnvVar(l.envPrefix)))
		return l.resolveEnv(conv, f)
	}

	if !l.useEnv {
		return nil, false, nil
	}

	event := "Absent field; using an environment variable"
	if sec == nil {
		event = "Absent INI section; using an environment variable"
	}
	l.log.Debug(event,
		zap.String("path", path),
		zap.String("section", section),
		zap.String("field", f.Key),
		zap.String("env_var", f.EnvVar(l.envPrefix)))

	return l.resolveEnv(conv, f)
}

func (l *Loader[T]) resolveEnv(conv Converter, f Field) (any, bool, error) {
	value, ok := os.LookupEnv(f.EnvVar(l.envPrefix))

	v, err := conv.FromEnv(value, ok)
	if err != nil {
		return nil, false, fmt.Errorf("field %q: %w", f.Key, err)
	}
	if v == nil {
		return nil, false, nil
	}
	return v, true, nil
}

// converter finds the converter for a declared type, preferring any
// registered with WithConverter over the built-ins.
func (l *Loader[T]) converter(t reflect.Type) (Converter, error) {
	if c, ok := l.converters[t]; ok {
		return c, nil
	}
	if c, ok := DefaultConverter(t); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}
