// Package conf populates statically declared configuration structs from
// INI files, with optional fallback to environment variables.
//
// Declaring configuration as a struct keeps it readable and navigable:
// every field has a name and a type, and an IDE can autocomplete it.
// The loader reads one named section of an INI file and builds a new
// struct instance from it.
//
// Features:
//   - Per-field type coercion: string, int, int64, float64, bool, Path
//   - Optional fields declared as pointer types
//   - Fallback chain: file -> environment variable -> omission
//   - Case-insensitive key matching, last occurrence wins
//   - Custom field types via a converter registry
//   - Structured trace logging of load decisions (never of values)
//
// Quick Start:
//
//	type ServerConfig struct {
//	    Host string  `ini:"host"`
//	    Port int     `ini:"port"`
//	    Note *string `ini:"note"` // optional
//	}
//
//	loader, err := conf.New[ServerConfig]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, err := loader.Load("config.ini", "server")
//
// With environment fallback enabled, a field absent from the file is
// read from an environment variable named after the field in upper
// case, with an optional prefix:
//
//	loader, err := conf.New[ServerConfig](conf.WithEnv("SERVER_"))
//
// Here a missing "port" key falls back to the SERVER_PORT variable.
//
// Sensitive fields can be tagged so that tooling built on the field
// descriptors can redact them:
//
//	type ServerConfig struct {
//	    AdminToken string `ini:"admin_token,sensitive"`
//	}
//
// The loader itself never logs resolved values, only field names. The
// Secret string type additionally redacts itself when printed.
//
// Thread Safety:
// A Loader is immutable after New and safe for concurrent use. Each
// Load call parses the file afresh and holds no state between calls.
package conf
