package conf

// Path is a filesystem path value read from configuration. The path is
// carried verbatim and is not checked for existence.
type Path string

func (p Path) String() string { return string(p) }

// Secret is a string whose value must not appear in textual output.
// Both fmt verbs and zap's reflection-based encoders go through the
// String and GoString methods, so a Secret renders as "REDACTED"
// unless Reveal is called explicitly.
type Secret string

func (s Secret) String() string { return "REDACTED" }

func (s Secret) GoString() string { return "REDACTED" }

// Reveal returns the underlying secret value.
func (s Secret) Reveal() string { return string(s) }
