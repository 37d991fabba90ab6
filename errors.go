package heatmap

import "fmt"

// ConfigurationError reports an invariant violation detected while
// constructing a Renderer, Grid, or ColorLUT: a LUT source image that
// is not one row tall, a LUT resolution below 2, a degenerate value
// domain, or non-positive dimensions. These are programmer errors, not
// transient failures; callers should fix the configuration rather than
// retry.
type ConfigurationError struct {
	Param   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("heatmap: invalid %s: %s", e.Param, e.Message)
}

// configErrorf builds a ConfigurationError for the named parameter.
func configErrorf(param, format string, args ...interface{}) error {
	return &ConfigurationError{
		Param:   param,
		Message: fmt.Sprintf(format, args...),
	}
}
