package bem

import (
	"fmt"
	"strings"
)

// ConfigError reports invalid geometry or flow configuration. It is
// raised before any solving begins.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// ConvergenceError reports that an element solve ran out of iterations
// before meeting tolerance. The partial residual is carried for
// diagnostics; no element state is returned alongside it.
type ConvergenceError struct {
	Iterations int
	Residual   float64
	Tol        float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("element solve did not converge after %d iterations: residual %.3e > tolerance %.3e",
		e.Iterations, e.Residual, e.Tol)
}

// AggregationError reports that one or more element solves failed, so
// no rotor performance can be produced.
type AggregationError struct {
	// Indices of the elements that did not converge, in radial order.
	Indices []int
}

func (e *AggregationError) Error() string {
	parts := make([]string, len(e.Indices))
	for i, idx := range e.Indices {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return fmt.Sprintf("cannot aggregate rotor performance: element(s) %s failed to converge",
		strings.Join(parts, ", "))
}
