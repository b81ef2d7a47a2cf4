package models

import (
	"fmt"
	"strings"
)

// Priority is the recruiting priority of a candidate
type Priority string

const (
	PriorityAlta  Priority = "ALTA"
	PriorityMedia Priority = "MEDIA"
	PriorityBaja  Priority = "BAJA"
)

// Priorities lists all priorities from highest to lowest
var Priorities = []Priority{PriorityAlta, PriorityMedia, PriorityBaja}

// ParsePriority parses a priority name, case-insensitive
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityAlta, PriorityMedia, PriorityBaja:
		return true
	}
	return false
}

// Color returns the display color for the priority
func (p Priority) Color() string {
	switch p {
	case PriorityAlta:
		return "#FF5F5F"
	case PriorityMedia:
		return "#FFAF00"
	case PriorityBaja:
		return "#5FAF5F"
	}
	return "#808080"
}

// ContractType is the kind of contract offered to a candidate
type ContractType string

const (
	ContractIndefinido ContractType = "INDEFINIDO"
	ContractTemporal   ContractType = "TEMPORAL"
	ContractPracticas  ContractType = "PRACTICAS"
	ContractFreelance  ContractType = "FREELANCE"
)

// ParseContractType parses a contract type name, case-insensitive
func ParseContractType(s string) (ContractType, error) {
	ct := ContractType(strings.ToUpper(strings.TrimSpace(s)))
	switch ct {
	case ContractIndefinido, ContractTemporal, ContractPracticas, ContractFreelance:
		return ct, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidContractType, s)
}
