package ripple

import "errors"

var (
	ErrNotFound              = errors.New("ripple not found")
	ErrSuggestedTaskNotFound = errors.New("suggested task not found")
	ErrNotPending            = errors.New("already reviewed")
	ErrEntryRequired         = errors.New("entry id is required")
	ErrUnknownType           = errors.New("unknown ripple type")
)
