package services

import "errors"

// ErrNotFound is returned when a referenced project does not exist
var ErrNotFound = errors.New("project not found")

// ErrValidation is returned when a submission is missing a required field
var ErrValidation = errors.New("validation failed")
