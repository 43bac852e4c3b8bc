package entities

import "errors"

// Failure kinds a step can surface. Callers classify with errors.Is;
// causes are wrapped alongside with %w-style formatting at the point of
// failure.
var (
	ErrLaunch          = errors.New("browser launch failed")
	ErrNavigation      = errors.New("navigation failed")
	ErrElementNotFound = errors.New("element not found")
	ErrNotInteractable = errors.New("element not interactable")
	ErrFileNotFound    = errors.New("file not found")
	ErrTimeout         = errors.New("timed out")
)
