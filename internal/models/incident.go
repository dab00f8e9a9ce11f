package models

import (
	"sync"
	"time"
)

// IncidentState - состояние жизненного цикла инцидента
type IncidentState string

const (
	StateIdle                 IncidentState = "Idle"
	StateMonitoring           IncidentState = "Monitoring"
	StateTriangulationPending IncidentState = "TriangulationPending"
	StateCriticalConfirmed    IncidentState = "CriticalConfirmed"
	StateAgentsRunning        IncidentState = "AgentsRunning"
	StateHospitalMode         IncidentState = "HospitalMode"
	StateCompleted            IncidentState = "Completed"
)

// validTransitions - таблица допустимых переходов между состояниями
var validTransitions = map[IncidentState][]IncidentState{
	StateIdle:                 {StateMonitoring},
	StateMonitoring:           {StateTriangulationPending, StateIdle},
	StateTriangulationPending: {StateCriticalConfirmed, StateIdle},
	StateCriticalConfirmed:    {StateAgentsRunning},
	StateAgentsRunning:        {StateHospitalMode, StateCompleted},
	StateHospitalMode:         {StateCompleted},
	StateCompleted:            {}, // терминальное состояние
}

// TransitionLogEntry - запись журнала переходов, только для добавления
type TransitionLogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	State     IncidentState  `json:"state"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
}

// IncidentStatus - снимок текущего состояния инцидента для отдачи наружу
type IncidentStatus struct {
	IncidentID  string        `json:"incident_id"`
	State       IncidentState `json:"state"`
	CreatedAt   time.Time     `json:"created_at"`
	ConfirmedAt *time.Time    `json:"confirmed_at,omitempty"`
	LogCount    int           `json:"log_count"`
	HasReading  bool          `json:"has_reading"`
	GPS         *GPSLocation  `json:"gps,omitempty"`
	BloodType   string        `json:"blood_type,omitempty"`
	HospitalGPS *GPSLocation  `json:"hospital_gps,omitempty"`
}

// Incident - конечный автомат жизненного цикла инцидента. Переходы выполняет
// единственный владелец (оркестратор), но статус и журнал читаются
// HTTP-хэндлерами конкурентно, поэтому доступ закрыт RWMutex.
type Incident struct {
	mu          sync.RWMutex
	id          string
	state       IncidentState
	reading     *CrashReading
	createdAt   time.Time
	confirmedAt *time.Time
	hospitalGPS *GPSLocation
	logs        []TransitionLogEntry
	metadata    map[string]any
}

// NewIncident создает новый инцидент в состоянии Idle
func NewIncident(id string) *Incident {
	inc := &Incident{
		id:        id,
		state:     StateIdle,
		createdAt: time.Now().UTC(),
		logs:      make([]TransitionLogEntry, 0),
		metadata:  make(map[string]any),
	}
	inc.appendLog("State machine initialized", nil)
	return inc
}

// appendLog добавляет запись журнала; вызывается под мьютексом либо из конструктора
func (i *Incident) appendLog(message string, data map[string]any) {
	i.logs = append(i.logs, TransitionLogEntry{
		Timestamp: time.Now().UTC(),
		State:     i.state,
		Message:   message,
		Data:      data,
	})
}

// ID возвращает идентификатор инцидента
func (i *Incident) ID() string {
	return i.id
}

// State возвращает текущее состояние
func (i *Incident) State() IncidentState {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.state
}

// ConfirmedAt возвращает момент подтверждения критического события (или nil)
func (i *Incident) ConfirmedAt() *time.Time {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.confirmedAt == nil {
		return nil
	}
	t := *i.confirmedAt
	return &t
}

// Reading возвращает привязанные показания датчиков
func (i *Incident) Reading() *CrashReading {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.reading
}

// CanTransition проверяет, допустим ли переход в целевое состояние
func (i *Incident) CanTransition(target IncidentState) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.canTransitionLocked(target)
}

func (i *Incident) canTransitionLocked(target IncidentState) bool {
	for _, allowed := range validTransitions[i.state] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Transition выполняет переход в целевое состояние. При недопустимом переходе
// возвращает false, но все равно добавляет запись об отклоненной попытке в
// журнал - журнал фиксирует и успешные, и отклоненные переходы.
func (i *Incident) Transition(target IncidentState, reason string, data map[string]any) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.canTransitionLocked(target) {
		i.appendLog(
			"Invalid transition attempt: "+string(i.state)+" -> "+string(target),
			map[string]any{"reason": reason, "data": data},
		)
		return false
	}

	old := i.state
	i.state = target

	if target == StateCriticalConfirmed && i.confirmedAt == nil {
		now := time.Now().UTC()
		i.confirmedAt = &now
	}

	i.appendLog(
		"State transition: "+string(old)+" -> "+string(target),
		map[string]any{"reason": reason, "data": data},
	)
	return true
}

// AttachReading сохраняет показания датчиков (устанавливается один раз)
func (i *Incident) AttachReading(reading *CrashReading) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.reading != nil {
		return
	}
	i.reading = reading
	i.appendLog("Crash reading attached", map[string]any{
		"gps": map[string]any{"lat": reading.GPS.Lat, "lon": reading.GPS.Lon},
	})
}

// SetHospitalGPS сохраняет координаты госпиталя (устанавливается один раз)
func (i *Incident) SetHospitalGPS(gps GPSLocation) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.hospitalGPS != nil {
		return
	}
	i.hospitalGPS = &gps
}

// SetMetadata сохраняет произвольные результаты агентов в метаданных инцидента
func (i *Incident) SetMetadata(key string, value any) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.metadata[key] = value
	i.appendLog("Metadata updated: "+key, map[string]any{"key": key})
}

// MetadataValue возвращает значение метаданных по ключу
func (i *Incident) MetadataValue(key string) (any, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	v, ok := i.metadata[key]
	return v, ok
}

// IsTerminal возвращает true, если инцидент в терминальном состоянии
func (i *Incident) IsTerminal() bool {
	return i.State() == StateCompleted
}

// IsActive возвращает true, если инцидент активен (не Idle и не Completed)
func (i *Incident) IsActive() bool {
	s := i.State()
	return s != StateIdle && s != StateCompleted
}

// Status возвращает снимок текущего состояния инцидента
func (i *Incident) Status() IncidentStatus {
	i.mu.RLock()
	defer i.mu.RUnlock()

	status := IncidentStatus{
		IncidentID: i.id,
		State:      i.state,
		CreatedAt:  i.createdAt,
		LogCount:   len(i.logs),
		HasReading: i.reading != nil,
	}
	if i.confirmedAt != nil {
		t := *i.confirmedAt
		status.ConfirmedAt = &t
	}
	if i.reading != nil {
		gps := i.reading.GPS
		status.GPS = &gps
		status.BloodType = i.reading.BloodType
	}
	if i.hospitalGPS != nil {
		gps := *i.hospitalGPS
		status.HospitalGPS = &gps
	}
	return status
}

// RecentLogs возвращает копию последних limit записей журнала.
// При limit <= 0 возвращается весь журнал.
func (i *Incident) RecentLogs(limit int) []TransitionLogEntry {
	i.mu.RLock()
	defer i.mu.RUnlock()

	start := 0
	if limit > 0 && limit < len(i.logs) {
		start = len(i.logs) - limit
	}
	out := make([]TransitionLogEntry, len(i.logs)-start)
	copy(out, i.logs[start:])
	return out
}
