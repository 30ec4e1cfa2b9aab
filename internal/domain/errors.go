package domain

import "errors"

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrTransitionMismatch = errors.New("transition does not match the one in flight")
)
