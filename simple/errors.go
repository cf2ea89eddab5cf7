package simple

import "fmt"

// UnsupportedRepresentationError reports a tree that is plausible Sieve
// but encodes a combination outside the simplified model.
type UnsupportedRepresentationError struct {
	Detail string
}

func (e *UnsupportedRepresentationError) Error() string {
	return fmt.Sprintf("unsupported filter representation: %s", e.Detail)
}

// InvalidInputError reports a tree that violates the structural contract
// or names vocabulary this package does not recognize.
type InvalidInputError struct {
	Detail string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid filter input: %s", e.Detail)
}

func unsupportedf(format string, args ...any) error {
	return &UnsupportedRepresentationError{Detail: fmt.Sprintf(format, args...)}
}

func invalidf(format string, args ...any) error {
	return &InvalidInputError{Detail: fmt.Sprintf(format, args...)}
}
