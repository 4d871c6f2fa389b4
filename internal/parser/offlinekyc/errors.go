package offlinekyc

import (
	"errors"
	"fmt"
)

var errNoRoot = errors.New("no root element")

// LoaderError indicates the raw input could not be turned into a Tree.
type LoaderError struct {
	Err error
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("loading offline kyc document: %v", e.Err)
}

func (e *LoaderError) Unwrap() error {
	return e.Err
}

// MalformedDocumentError is the only error Extract returns. Err carries the
// original failure, which may itself be a *LoaderError.
type MalformedDocumentError struct {
	Reason string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed offline kyc document: %s", e.Reason)
	}
	return fmt.Sprintf("malformed offline kyc document: %s: %v", e.Reason, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

func malformed(reason string, err error) *MalformedDocumentError {
	return &MalformedDocumentError{Reason: reason, Err: err}
}
