package services

import "errors"

// Operation errors. Unknown ids surface as ErrNotFound so callers can tell
// "nothing happened" apart from "id didn't exist"; the remaining errors mark
// inputs rejected before any state change.
var (
	ErrNotFound        = errors.New("not found")
	ErrPhaseLocked     = errors.New("phase is locked")
	ErrEmptyMessage    = errors.New("message text is empty")
	ErrRequestResolved = errors.New("guild request already resolved")
)
