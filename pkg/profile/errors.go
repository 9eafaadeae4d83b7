package profile

import "fmt"

// ConfigError describes a profile that cannot be used.
type ConfigError struct {
	// Path is the profile file, empty when parsing from memory.
	Path string

	// Line is the 1-based line of the offending token, 0 if not applicable.
	Line int

	// Key is the register key involved, if any.
	Key string

	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	msg := "profile"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	if e.Key != "" {
		msg += fmt.Sprintf(": key '%s'", e.Key)
	}
	return msg + ": " + e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

func errMissingValue(path string, line int, key string) *ConfigError {
	return &ConfigError{Path: path, Line: line, Key: key, Message: "missing value"}
}

func errInvalidAddress(path string, line int, key, value string, cause error) *ConfigError {
	return &ConfigError{
		Path:    path,
		Line:    line,
		Key:     key,
		Message: fmt.Sprintf("invalid address '%s', expected 16-bit hexadecimal", value),
		Cause:   cause,
	}
}
