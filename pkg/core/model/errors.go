package model

import "errors"

// Sentinel errors for the validation and not-found taxonomy.
// Callers dispatch with errors.Is.
var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrDuplicateRole     = errors.New("role already exists")
	ErrInvalidRole       = errors.New("unknown role")
	ErrMissingTimeWindow = errors.New("fixed_time role requires a time window")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrDuplicateEmployee = errors.New("employee name already in use")
)
