package service

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when a backup envelope is not parseable JSON.
var ErrInvalidFormat = errors.New("backup: invalid format")

// ErrMissingRequiredData is returned when a backup envelope lacks the
// site-settings collection. Such envelopes are rejected before any write.
var ErrMissingRequiredData = errors.New("backup: missing required data")

// ErrAssistantUnavailable is returned when the AI collaborator is not
// configured.
var ErrAssistantUnavailable = errors.New("assistant unavailable")

// ValidationError reports a rejected input field. Handlers translate the
// code straight into a 400 response body.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string { return "validation: " + e.Code }

func invalid(code string) error { return &ValidationError{Code: code} }

// PartialRestoreError reports a backup import that failed after some
// collections were already overwritten. There is no rollback; Written lists
// the collections that were restored before the failure.
type PartialRestoreError struct {
	Collection string
	Written    []string
	Err        error
}

func (e *PartialRestoreError) Error() string {
	return fmt.Sprintf("backup: restore of %s failed after %d collections: %v",
		e.Collection, len(e.Written), e.Err)
}

func (e *PartialRestoreError) Unwrap() error { return e.Err }
