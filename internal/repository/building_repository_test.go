package repository

import (
	"sync"
	"testing"
	"time"

	"building-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBuildingRepository_SeedIsCopied(t *testing.T) {
	seed := SeedBuildings()
	repo := NewMemoryBuildingRepository(seed)

	seed[0].Name = "changed"
	list := repo.List()
	require.Len(t, list, 6)
	assert.Equal(t, "Keangnam", list[0].Name)

	list[1].Name = "changed too"
	assert.Equal(t, "Tòa nhà Lim Tower", repo.List()[1].Name)
}

func TestMemoryBuildingRepository_AppendRejectsDuplicate(t *testing.T) {
	repo := NewMemoryBuildingRepository(SeedBuildings())

	err := repo.Append(models.Building{ID: 3, Name: "dup"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 6, repo.Count())

	require.NoError(t, repo.Append(models.Building{ID: 7, Name: "new"}))
	assert.Equal(t, 7, repo.Count())
	assert.Equal(t, models.BuildingID(7), repo.List()[6].ID)
}

func TestMemoryBuildingRepository_ReplaceKeepsPosition(t *testing.T) {
	repo := NewMemoryBuildingRepository(SeedBuildings())

	updated, err := repo.Replace(models.Building{ID: 2, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Renamed", repo.List()[1].Name)

	_, err = repo.Replace(models.Building{ID: 9999})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryBuildingRepository_Remove(t *testing.T) {
	repo := NewMemoryBuildingRepository(SeedBuildings())

	removed, err := repo.Remove(4)
	require.NoError(t, err)
	assert.Equal(t, "Tòa nhà VinCom", removed.Name)
	assert.Equal(t, 5, repo.Count())
	for _, b := range repo.List() {
		assert.NotEqual(t, models.BuildingID(4), b.ID)
	}

	_, err = repo.Remove(4)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryBuildingRepository_Filter(t *testing.T) {
	repo := NewMemoryBuildingRepository(SeedBuildings())

	matched, total := repo.Filter(func(b models.Building) bool { return b.ID%2 == 0 })
	assert.Equal(t, 6, total)
	require.Len(t, matched, 3)
	assert.Equal(t, models.BuildingID(2), matched[0].ID)
	assert.Equal(t, models.BuildingID(6), matched[2].ID)

	all, _ := repo.Filter(nil)
	assert.Len(t, all, 6)
}

func TestMemoryBuildingRepository_ConcurrentAppends(t *testing.T) {
	repo := NewMemoryBuildingRepository(nil)
	ids := NewClockIDGenerator()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Append(models.Building{ID: ids.NextID()}))
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, repo.Count())
}

func TestClockIDGenerator_Monotonic(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	gen := &ClockIDGenerator{now: func() time.Time { return fixed }}

	first := gen.NextID()
	second := gen.NextID()
	third := gen.NextID()

	assert.Equal(t, models.BuildingID(1_700_000_000_000), first)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}
