package conf

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// decode assigns the resolved value set to a new record instance. The
// values are already coerced to their declared types, so mapstructure
// only matches keys to fields (through the `ini` tag, falling back to
// a case-insensitive field name match) and allocates pointers for
// optional fields.
func decode(values map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "ini",
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("assigning resolved values: %w", err)
	}

	return nil
}
