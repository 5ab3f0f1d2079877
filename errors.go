package chatprep

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent = errors.New("content cannot be empty")
	ErrRenderFailed = errors.New("markdown rendering failed")
)
