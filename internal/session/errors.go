package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionBusy     = errors.New("session already has a turn in flight")
)
