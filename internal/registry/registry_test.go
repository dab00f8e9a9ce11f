package registry

import (
	"bytes"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestRegistry() *CancelRegistry {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewCancelRegistry(logger)
}

func TestRegisterAndCancel(t *testing.T) {
	r := newTestRegistry()

	r.Register("inc_1", nil)
	assert.False(t, r.IsCancelled("inc_1"))

	ok := r.RequestCancel("inc_1")
	assert.True(t, ok)
	assert.True(t, r.IsCancelled("inc_1"))
}

func TestRequestCancel_Idempotent(t *testing.T) {
	r := newTestRegistry()
	r.Register("inc_1", nil)

	assert.True(t, r.RequestCancel("inc_1"))
	assert.True(t, r.RequestCancel("inc_1"))
	assert.True(t, r.IsCancelled("inc_1"))
}

func TestRequestCancel_UnknownIncident(t *testing.T) {
	r := newTestRegistry()

	// Отмена после завершения (ручка удалена) - безопасный no-op
	assert.False(t, r.RequestCancel("inc_missing"))
	assert.False(t, r.IsCancelled("inc_missing"))
}

func TestRequestCancel_SignalsHandle(t *testing.T) {
	r := newTestRegistry()
	called := false
	r.Register("inc_1", func() { called = true })

	r.RequestCancel("inc_1")
	assert.True(t, called)
}

func TestUnregister(t *testing.T) {
	r := newTestRegistry()
	r.Register("inc_1", nil)
	r.RequestCancel("inc_1")

	r.Unregister("inc_1")

	assert.False(t, r.IsCancelled("inc_1"))
	assert.Empty(t, r.ActiveIncidents())
}

func TestActiveIncidents(t *testing.T) {
	r := newTestRegistry()
	r.Register("inc_1", nil)
	r.Register("inc_2", nil)

	ids := r.ActiveIncidents()
	assert.Len(t, ids, 2)
	assert.ElementsMatch(t, []string{"inc_1", "inc_2"}, ids)
}

func TestCancelAll(t *testing.T) {
	r := newTestRegistry()
	r.Register("inc_1", nil)
	r.Register("inc_2", nil)
	r.Register("inc_3", nil)

	count := r.CancelAll()

	assert.Equal(t, 3, count)
	assert.True(t, r.IsCancelled("inc_1"))
	assert.True(t, r.IsCancelled("inc_2"))
	assert.True(t, r.IsCancelled("inc_3"))
}

func TestConcurrentAccess(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%26))
			r.Register(id, nil)
			r.IsCancelled(id)
			r.RequestCancel(id)
			r.Unregister(id)
		}(i)
	}
	wg.Wait()

	assert.Empty(t, r.ActiveIncidents())
}
