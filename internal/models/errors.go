package models

import "errors"

// Validation errors for enumerated candidate fields
var (
	ErrInvalidPriority     = errors.New("invalid priority: must be ALTA, MEDIA or BAJA")
	ErrInvalidContractType = errors.New("invalid contract type")
)
