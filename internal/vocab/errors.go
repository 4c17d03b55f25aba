package vocab

import "fmt"

// ConfigError represents an invalid vocabulary configuration.
// It is returned at construction/load time and is fatal at initialization.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
