package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed"
)

// Action names the board transition behind an EventBoardChanged
type Action string

const (
	ActionMove   Action = "move"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionReset  Action = "reset"
)

// Event represents a board change notification
type Event struct {
	Type        EventType `json:"type"`
	Action      Action    `json:"action,omitempty"`
	ColumnIDs   []string  `json:"columnIds,omitempty"`   // Columns whose contents changed
	CandidateID string    `json:"candidateId,omitempty"` // Candidate the transition targeted
	Timestamp   time.Time `json:"timestamp"`
	SequenceID  int64     `json:"sequenceId"`       // Monotonically increasing, assigned by the publisher
	Origin      string    `json:"origin,omitempty"` // Process that published the event over NATS
}

// BoardChanged builds a change event for the given transition
func BoardChanged(action Action, candidateID string, columnIDs ...string) Event {
	return Event{
		Type:        EventBoardChanged,
		Action:      action,
		CandidateID: candidateID,
		ColumnIDs:   columnIDs,
		Timestamp:   time.Now(),
	}
}
