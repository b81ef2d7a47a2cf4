package pipeline

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDPrefix is prepended to every generated candidate id
const IDPrefix = "cand-"

// IDGenerator produces candidate ids
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator produces collision-safe ids of the form cand-<uuid>
type UUIDGenerator struct{}

// NewID implements IDGenerator
func (UUIDGenerator) NewID() string {
	return IDPrefix + uuid.NewString()
}

// SequentialIDs produces cand-1, cand-2, ... from a monotonic counter.
// Safe for concurrent use.
type SequentialIDs struct {
	next atomic.Int64
}

// NewSequentialIDs returns a generator whose first id is cand-<start>
func NewSequentialIDs(start int64) *SequentialIDs {
	g := &SequentialIDs{}
	g.next.Store(start - 1)
	return g
}

// NewID implements IDGenerator
func (g *SequentialIDs) NewID() string {
	return IDPrefix + strconv.FormatInt(g.next.Add(1), 10)
}
