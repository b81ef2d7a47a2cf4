package models

import (
	"slices"
	"strings"
	"time"
)

// CandidateItem is a single recruiting record attached to exactly one column.
// Optional dates and the contract type are nil when not known yet.
type CandidateItem struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Position        string        `json:"position"`
	Department      string        `json:"department"`
	Skills          []string      `json:"skills"`
	Salary          float64       `json:"salary"`
	Priority        Priority      `json:"priority"`
	ApplicationDate time.Time     `json:"applicationDate"`
	InterviewDate   *time.Time    `json:"interviewDate,omitempty"`
	HireDate        *time.Time    `json:"hireDate,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Tags            []string      `json:"tags"`
	ContractType    *ContractType `json:"contractType,omitempty"`
}

// GetID returns the candidate ID (used by the CLI quiet output mode)
func (c *CandidateItem) GetID() string {
	return c.ID
}

// Clone returns a deep copy of the candidate
func (c *CandidateItem) Clone() *CandidateItem {
	if c == nil {
		return nil
	}
	out := *c
	out.Skills = slices.Clone(c.Skills)
	out.Tags = slices.Clone(c.Tags)
	if c.InterviewDate != nil {
		d := *c.InterviewDate
		out.InterviewDate = &d
	}
	if c.HireDate != nil {
		d := *c.HireDate
		out.HireDate = &d
	}
	if c.ContractType != nil {
		ct := *c.ContractType
		out.ContractType = &ct
	}
	return &out
}

// CandidateInput is the payload produced by the candidate editor.
// Status names the column the candidate should end up in.
type CandidateInput struct {
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Position        string        `json:"position"`
	Department      string        `json:"department"`
	Skills          []string      `json:"skills"`
	Salary          float64       `json:"salary"`
	Priority        Priority      `json:"priority"`
	ApplicationDate time.Time     `json:"applicationDate"`
	InterviewDate   *time.Time    `json:"interviewDate,omitempty"`
	HireDate        *time.Time    `json:"hireDate,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Tags            []string      `json:"tags"`
	ContractType    *ContractType `json:"contractType,omitempty"`
	Status          string        `json:"status"`
}

// ToItem builds a candidate with the given id from the editor payload.
// Tags are normalized to a sorted set and a missing priority defaults to MEDIA.
func (in CandidateInput) ToItem(id string) *CandidateItem {
	item := &CandidateItem{
		ID:              id,
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Position:        in.Position,
		Department:      in.Department,
		Skills:          slices.Clone(in.Skills),
		Salary:          in.Salary,
		Priority:        in.Priority,
		ApplicationDate: in.ApplicationDate,
		InterviewDate:   in.InterviewDate,
		HireDate:        in.HireDate,
		Notes:           in.Notes,
		Tags:            NormalizeTags(in.Tags),
		ContractType:    in.ContractType,
	}
	if item.Priority == "" {
		item.Priority = PriorityMedia
	}
	if item.Skills == nil {
		item.Skills = []string{}
	}
	return item.Clone()
}

// InputFromItem returns the editor payload for an existing candidate
func InputFromItem(item *CandidateItem, status string) CandidateInput {
	c := item.Clone()
	return CandidateInput{
		Name:            c.Name,
		Email:           c.Email,
		Position:        c.Position,
		Department:      c.Department,
		Skills:          c.Skills,
		Salary:          c.Salary,
		Priority:        c.Priority,
		ApplicationDate: c.ApplicationDate,
		InterviewDate:   c.InterviewDate,
		HireDate:        c.HireDate,
		Notes:           c.Notes,
		Tags:            c.Tags,
		ContractType:    c.ContractType,
		Status:          status,
	}
}

// NormalizeTags trims, deduplicates and sorts tags
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// PendingDelete is a delete request staged for confirmation
type PendingDelete struct {
	ID       string `json:"id"`
	ColumnID string `json:"columnId"`
	Name     string `json:"name"`
}
