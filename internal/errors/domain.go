// Package errors defines the domain error values returned by the
// scheduling engine and mapped to HTTP responses by the handlers.
package errors

// DomainError is a stable, machine-readable business rule violation.
// Errors of this kind are deterministic: retrying with the same inputs
// always reproduces the same failure.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches DomainErrors by code so wrapped errors still compare
// against the package sentinels with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
