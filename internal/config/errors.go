package config

import "errors"

// InvalidConfigurationError is returned when buildpack.toml cannot be used.
type InvalidConfigurationError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidConfigurationError) Error() string {
	msg := "invalid buildpack configuration"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Err
}

// IsInvalidConfiguration checks if an error is or wraps an InvalidConfigurationError.
func IsInvalidConfiguration(err error) bool {
	var invalid *InvalidConfigurationError
	return errors.As(err, &invalid)
}
