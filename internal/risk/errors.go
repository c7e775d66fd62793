package risk

import "fmt"

// ValidationError reports a raw input field that violated a constraint.
// It is the only recoverable error kind in this package: the HTTP boundary
// surfaces it to the caller so the input can be corrected and resubmitted.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Constraint)
}

// DerivationError reports degenerate input reaching a derived-metric
// calculation, such as a zero height. The validator rejects such input
// upstream, so seeing one means the pipeline was miswired.
type DerivationError struct {
	Reason string
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("derivation failed: %s", e.Reason)
}

// InvariantViolation reports an unrecognized categorical value reaching the
// feature vector builder. Parsing happens exactly once at the validator
// boundary, so this is a programming error, not a user error.
type InvariantViolation struct {
	Field string
	Value string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: unrecognized %s value %q", e.Field, e.Value)
}

// MissingAdviceError reports a (metric, status) pair absent from the advice
// table. The table is checked for completeness at engine construction, so a
// lookup failure indicates a table/vocabulary mismatch.
type MissingAdviceError struct {
	Metric string
	Status string
}

func (e *MissingAdviceError) Error() string {
	return fmt.Sprintf("no advice for metric %q with status %q", e.Metric, e.Status)
}
