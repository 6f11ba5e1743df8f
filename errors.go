package motion

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	ErrConfiguration = errors.New("motion: invalid configuration")
	ErrOrdering      = errors.New("motion: ordering violation")
)

// ConfigurationError reports an invalid construction parameter such as a zero
// oscillator period. It is only ever returned from constructors, never while
// sampling a frame.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("motion: invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// OrderingViolation reports two nodes of one tree claiming the same identity,
// which would make the depth-first delay assignment ambiguous.
type OrderingViolation struct {
	Parent string // id of the parent whose child conflicts ("" for the root)
	ID     string // conflicting node id
	Index  int    // sibling index of the conflicting node
}

func (e *OrderingViolation) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("motion: node %q at root index %d conflicts with an earlier node", e.ID, e.Index)
	}
	return fmt.Sprintf("motion: node %q at %s[%d] conflicts with an earlier node", e.ID, e.Parent, e.Index)
}

// Is reports whether target is ErrOrdering.
func (e *OrderingViolation) Is(target error) bool {
	return target == ErrOrdering
}
