package registry

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Handle - ручка отмены для одного запущенного инцидента
type Handle struct {
	IncidentID string
	cancelled  bool
	cancel     func() // отменяет контекст оркестрации, может быть nil
}

// CancelRegistry - общепроцессное хранилище ручек отмены по идентификатору
// инцидента. Единственная структура, разделяемая между инцидентами, поэтому
// защищена мьютексом.
type CancelRegistry struct {
	mu      sync.RWMutex
	handles map[string]*Handle
	logger  *logrus.Logger
}

// NewCancelRegistry создает пустой реестр отмены
func NewCancelRegistry(logger *logrus.Logger) *CancelRegistry {
	return &CancelRegistry{
		handles: make(map[string]*Handle),
		logger:  logger,
	}
}

// Register регистрирует инцидент в начале оркестрации. cancel может быть nil.
func (r *CancelRegistry) Register(incidentID string, cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handles[incidentID] = &Handle{
		IncidentID: incidentID,
		cancel:     cancel,
	}
	r.logger.WithField("incident_id", incidentID).Info("Crash task registered")
}

// RequestCancel выставляет флаг отмены. Идемпотентна; возвращает false,
// если инцидент не зарегистрирован (уже завершен или не существует).
func (r *CancelRegistry) RequestCancel(incidentID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, ok := r.handles[incidentID]
	if !ok {
		r.logger.WithField("incident_id", incidentID).Warn("No active crash task found for cancellation")
		return false
	}

	handle.cancelled = true
	if handle.cancel != nil {
		handle.cancel()
	}
	r.logger.WithField("incident_id", incidentID).Warn("Cancellation flag set for incident")
	return true
}

// IsCancelled проверяет флаг отмены. Для незарегистрированных инцидентов - false.
func (r *CancelRegistry) IsCancelled(incidentID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.handles[incidentID]
	return ok && handle.cancelled
}

// Unregister удаляет ручку отмены. Вызывается на любом выходе из оркестрации,
// чтобы не накапливать записи завершенных инцидентов.
func (r *CancelRegistry) Unregister(incidentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.handles, incidentID)
	r.logger.WithField("incident_id", incidentID).Info("Crash task unregistered")
}

// ActiveIncidents возвращает идентификаторы всех зарегистрированных инцидентов
func (r *CancelRegistry) ActiveIncidents() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.handles))
	for id := range r.handles {
		ids = append(ids, id)
	}
	return ids
}

// CancelAll запрашивает отмену всех активных инцидентов, возвращает их число
func (r *CancelRegistry) CancelAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, handle := range r.handles {
		handle.cancelled = true
		if handle.cancel != nil {
			handle.cancel()
		}
		count++
	}
	r.logger.WithField("count", count).Warn("Cancelled all active crash tasks")
	return count
}
