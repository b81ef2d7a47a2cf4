package pipeline

import "github.com/thenoetrevino/talento/internal/models"

// ConfirmState is the state of a two-phase delete
type ConfirmState int

const (
	Idle ConfirmState = iota
	PendingConfirmation
)

func (s ConfirmState) String() string {
	if s == PendingConfirmation {
		return "pending_confirmation"
	}
	return "idle"
}

// DeleteConfirmation stages a delete request until it is explicitly
// confirmed or cancelled. The zero value is Idle.
type DeleteConfirmation struct {
	state   ConfirmState
	pending models.PendingDelete
}

// State returns the current state
func (d *DeleteConfirmation) State() ConfirmState {
	return d.state
}

// Request stages a delete. A request made while another one is pending replaces it.
func (d *DeleteConfirmation) Request(p models.PendingDelete) {
	d.pending = p
	d.state = PendingConfirmation
}

// Pending returns the staged request, if any
func (d *DeleteConfirmation) Pending() (models.PendingDelete, bool) {
	if d.state != PendingConfirmation {
		return models.PendingDelete{}, false
	}
	return d.pending, true
}

// Confirm returns the staged request and goes back to Idle.
// Returns false when nothing is pending.
func (d *DeleteConfirmation) Confirm() (models.PendingDelete, bool) {
	p, ok := d.Pending()
	d.reset()
	return p, ok
}

// Cancel discards the staged request without deleting anything
func (d *DeleteConfirmation) Cancel() {
	d.reset()
}

func (d *DeleteConfirmation) reset() {
	d.state = Idle
	d.pending = models.PendingDelete{}
}
