package overload

import (
	"errors"
	"fmt"
)

// ErrInvalidSignature is returned by Register and NewRegistry when a
// candidate's parameter list is malformed.
var ErrInvalidSignature = errors.New("invalid signature")

// InvalidSignatureError describes which candidate failed validation and why.
type InvalidSignatureError struct {
	Candidate int    // declaration index, -1 for the fallback
	Name      string // candidate name
	Param     string // offending parameter, if any
	Reason    string
}

func (e *InvalidSignatureError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%v: candidate %d (%q), parameter %q: %s", ErrInvalidSignature, e.Candidate, e.Name, e.Param, e.Reason)
	}
	return fmt.Sprintf("%v: candidate %d (%q): %s", ErrInvalidSignature, e.Candidate, e.Name, e.Reason)
}

func (e *InvalidSignatureError) Unwrap() error {
	return ErrInvalidSignature
}
