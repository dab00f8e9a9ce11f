package repository

import (
	"fmt"
	"sync"

	"github.com/vish-34/PulseIQ/internal/models"
	"github.com/vish-34/PulseIQ/internal/service"
)

// IncidentStore - in-memory хранилище инцидентов. Персистентность не нужна:
// инциденты живут в памяти процесса и обслуживают эндпоинты статуса и журнала.
type IncidentStore struct {
	mu        sync.RWMutex
	incidents map[string]*models.Incident
}

// NewIncidentStore создает пустое хранилище инцидентов
func NewIncidentStore() service.IncidentStore {
	return &IncidentStore{
		incidents: make(map[string]*models.Incident),
	}
}

// Save сохраняет инцидент в хранилище
func (s *IncidentStore) Save(incident *models.Incident) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents[incident.ID()] = incident
}

// GetByID возвращает инцидент по его идентификатору
func (s *IncidentStore) GetByID(id string) (*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	incident, ok := s.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s not found", id)
	}
	return incident, nil
}

// Count возвращает количество инцидентов в хранилище
func (s *IncidentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.incidents)
}
