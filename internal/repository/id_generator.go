package repository

import (
	"sync"
	"time"

	"building-service/internal/models"
)

// IDGenerator hands out building identifiers.
type IDGenerator interface {
	NextID() models.BuildingID
}

// ClockIDGenerator issues millisecond timestamps, bumped past the previous id
// so that two creates within the same millisecond still get distinct ids.
type ClockIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewClockIDGenerator creates a generator driven by the wall clock.
func NewClockIDGenerator() *ClockIDGenerator {
	return &ClockIDGenerator{now: time.Now}
}

func (g *ClockIDGenerator) NextID() models.BuildingID {
	g.mu.Lock()
	defer g.mu.Unlock()
	next := g.now().UnixMilli()
	if next <= g.last {
		next = g.last + 1
	}
	g.last = next
	return models.BuildingID(next)
}
