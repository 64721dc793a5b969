package conf

import (
	"fmt"
	"reflect"
	"strings"
)

// Field describes one declared field of the record type: its INI key,
// declared type, and whether it is optional or sensitive.
type Field struct {
	// Name is the struct field name.
	Name string
	// Key is the INI key, taken from the `ini` tag if present,
	// otherwise the field name. Matching is case-insensitive.
	Key string
	// Type is the declared type, with any pointer stripped.
	Type reflect.Type
	// Optional is true for pointer-typed fields. An optional field
	// resolves to nil rather than an error when no value is found.
	Optional bool
	// Sensitive marks a field whose value must not appear in logs.
	// It is set with the "sensitive" tag option.
	Sensitive bool
}

// EnvVar returns the name of the environment variable consulted for
// the field when fallback is enabled: the prefix (folded to upper
// case) followed by the upper-cased key.
func (f Field) EnvVar(prefix string) string {
	return strings.ToUpper(prefix) + strings.ToUpper(f.Key)
}

// fieldsOf enumerates the usable fields of a record struct type, in
// declaration order. Unexported fields and fields tagged `ini:"-"` are
// skipped. Keys must be unique within the record, ignoring case.
func fieldsOf(t reflect.Type) ([]Field, error) {
	var fields []Field
	seen := make(map[string]string)

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("ini")
		if tag == "-" {
			continue
		}

		f := Field{Name: sf.Name, Key: sf.Name, Type: sf.Type}
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				f.Key = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "sensitive" {
					f.Sensitive = true
				}
			}
		}

		if f.Type.Kind() == reflect.Ptr {
			f.Optional = true
			f.Type = f.Type.Elem()
		}

		lower := strings.ToLower(f.Key)
		if prev, dup := seen[lower]; dup {
			return nil, fmt.Errorf("duplicate key %q for fields %s and %s", f.Key, prev, sf.Name)
		}
		seen[lower] = sf.Name

		fields = append(fields, f)
	}

	return fields, nil
}
