package services

import "errors"

// Service errors
var (
	ErrEmptyPath    = errors.New("path is required")
	ErrNilTelemetry = errors.New("tracer is required")
)
