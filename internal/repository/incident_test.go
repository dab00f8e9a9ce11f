package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vish-34/PulseIQ/internal/models"
)

func TestIncidentStore_SaveAndGet(t *testing.T) {
	store := NewIncidentStore()

	incident := models.NewIncident("inc_1")
	store.Save(incident)

	got, err := store.GetByID("inc_1")
	require.NoError(t, err)
	assert.Same(t, incident, got)
	assert.Equal(t, 1, store.Count())
}

func TestIncidentStore_GetMissing(t *testing.T) {
	store := NewIncidentStore()

	_, err := store.GetByID("inc_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inc_missing not found")
}

func TestIncidentStore_ConcurrentAccess(t *testing.T) {
	store := NewIncidentStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("inc_%d", n)
			store.Save(models.NewIncident(id))
			_, _ = store.GetByID(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, store.Count())
}
