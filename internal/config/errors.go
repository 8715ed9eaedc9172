package config

import "fmt"

// InvalidOptionError reports an option whose value failed validation.
type InvalidOptionError struct {
	Option  string
	Value   string
	Message string
}

func (e *InvalidOptionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid value %q for option %s: %s", e.Value, e.Option, e.Message)
	}
	return fmt.Sprintf("invalid value %q for option %s", e.Value, e.Option)
}

func newInvalidOption(option, value, message string) *InvalidOptionError {
	return &InvalidOptionError{Option: option, Value: value, Message: message}
}
