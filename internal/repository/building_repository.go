package repository

import (
	"errors"
	"sync"

	"building-service/internal/models"
)

var (
	// ErrRecordNotFound is returned when no building carries the requested id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when appending a building whose id is taken.
	ErrDuplicateID = errors.New("duplicate building id")
)

// BuildingRepository defines the operations on the building collection.
type BuildingRepository interface {
	List() []models.Building
	Count() int
	// Filter returns the matching buildings in collection order together with
	// the collection size, both read under the same lock.
	Filter(match func(models.Building) bool) (matched []models.Building, total int)
	Append(building models.Building) error
	Replace(building models.Building) (models.Building, error)
	Remove(id models.BuildingID) (models.Building, error)
}

// MemoryBuildingRepository keeps the ordered building collection in process
// memory. The backing slice never leaves the repository; reads return copies.
type MemoryBuildingRepository struct {
	mu        sync.RWMutex
	buildings []models.Building
}

// NewMemoryBuildingRepository creates a repository holding a copy of seed.
func NewMemoryBuildingRepository(seed []models.Building) *MemoryBuildingRepository {
	buildings := make([]models.Building, len(seed))
	copy(buildings, seed)
	return &MemoryBuildingRepository{buildings: buildings}
}

// List returns every building in insertion order.
func (r *MemoryBuildingRepository) List() []models.Building {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Building, len(r.buildings))
	copy(out, r.buildings)
	return out
}

// Count returns the collection size.
func (r *MemoryBuildingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buildings)
}

func (r *MemoryBuildingRepository) Filter(match func(models.Building) bool) ([]models.Building, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]models.Building, 0, len(r.buildings))
	for _, b := range r.buildings {
		if match == nil || match(b) {
			matched = append(matched, b)
		}
	}
	return matched, len(r.buildings)
}

// Append adds a building at the end of the collection.
func (r *MemoryBuildingRepository) Append(building models.Building) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(building.ID) >= 0 {
		return ErrDuplicateID
	}
	r.buildings = append(r.buildings, building)
	return nil
}

// Replace overwrites the building with the same id, keeping its position.
func (r *MemoryBuildingRepository) Replace(building models.Building) (models.Building, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(building.ID)
	if i < 0 {
		return models.Building{}, ErrRecordNotFound
	}
	r.buildings[i] = building
	return building, nil
}

// Remove deletes the first building with the id and returns it.
func (r *MemoryBuildingRepository) Remove(id models.BuildingID) (models.Building, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return models.Building{}, ErrRecordNotFound
	}
	removed := r.buildings[i]
	r.buildings = append(r.buildings[:i], r.buildings[i+1:]...)
	return removed, nil
}

// indexOf must be called with r.mu held.
func (r *MemoryBuildingRepository) indexOf(id models.BuildingID) int {
	for i := range r.buildings {
		if r.buildings[i].ID == id {
			return i
		}
	}
	return -1
}
