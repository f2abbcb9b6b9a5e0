package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrEmptyID = errors.New("entity id must not be empty")
	ErrClosed  = errors.New("store closed")
)
