package ranking

import "fmt"

// InvalidTopKError reports a negative top_k in a rank request. The call is
// rejected rather than silently clamped.
type InvalidTopKError struct {
	TopK int
}

func (e *InvalidTopKError) Error() string {
	return fmt.Sprintf("invalid top_k %d: must be non-negative", e.TopK)
}

// ConfigError represents an invalid scoring configuration, such as
// dimension weights that do not sum to 1.0. It is returned at engine
// construction and is fatal at initialization.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scoring config error: %s", e.Message)
}
