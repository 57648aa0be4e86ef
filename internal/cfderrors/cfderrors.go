// Package cfderrors defines the typed, fatal-at-the-core error kinds named
// in spec.md 7: config errors, I/O errors, non-physical state, numerical
// divergence, and out-of-range configuration. Grounded on the teacher's
// panic(fmt.Errorf(...)) idiom for unrecoverable setup errors
// (model_problems/Euler2D/fluxes.go NewFluxType, initialization.go
// NewInitType) generalized into concrete error types so callers can
// distinguish kinds with errors.As instead of string matching.
package cfderrors

import "fmt"

// ConfigError reports a missing, malformed, or dangling-reference case
// file (unknown region or body name).
type ConfigError struct {
	Detail string
}

func (e ConfigError) Error() string { return fmt.Sprintf("config error: %s", e.Detail) }

// IOError reports an unwritable output path or a truncated restart file.
type IOError struct {
	Path   string
	Detail string
}

func (e IOError) Error() string { return fmt.Sprintf("io error at %q: %s", e.Path, e.Detail) }

// NonPhysicalState reports rho<=0 or p<=0 encountered by a kernel. K, J, I
// and Step are filled in by the caller that has grid-position context (the
// thermo package itself does not know its own (k,j,i), so it leaves these
// zero and the time driver wraps the error with location before logging).
type NonPhysicalState struct {
	Reason     string
	K, J, I    int
	Step       int
	HasLoc     bool
}

func (e NonPhysicalState) Error() string {
	if !e.HasLoc {
		return fmt.Sprintf("non-physical state: %s", e.Reason)
	}
	return fmt.Sprintf("non-physical state at (k=%d,j=%d,i=%d) step %d: %s", e.K, e.J, e.I, e.Step, e.Reason)
}

// WithLocation returns a copy of e annotated with the offending node and
// step count, per spec.md 7's "prints offending (k,j,i) and step count".
func (e NonPhysicalState) WithLocation(k, j, i, step int) NonPhysicalState {
	e.K, e.J, e.I = k, j, i
	e.Step = step
	e.HasLoc = true
	return e
}

// NumericalDivergence reports a NaN found in the field after a step.
type NumericalDivergence struct {
	Step int
}

func (e NumericalDivergence) Error() string {
	return fmt.Sprintf("numerical divergence (NaN in field) at step %d", e.Step)
}

// ConfigOutOfRange reports dx<=0, negative ghost width, or negative
// reference scales.
type ConfigOutOfRange struct {
	Field string
	Value float64
}

func (e ConfigOutOfRange) Error() string {
	return fmt.Sprintf("config out of range: %s = %g", e.Field, e.Value)
}
