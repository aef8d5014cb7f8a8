package automation

import "errors"

var (
	ErrEntryIDRequired   = errors.New("entry id is required")
	ErrEntryDateRequired = errors.New("entry date is required")
)
