package v1

import (
	"time"

	"github.com/vish-34/PulseIQ/internal/models"
	"github.com/vish-34/PulseIQ/internal/service"
)

// GPSDTO DTO координат точки аварии
// @Description DTO координат точки аварии
type GPSDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// CrashTriggerRequest DTO аварийного срабатывания датчиков
// @Description DTO аварийного срабатывания датчиков
type CrashTriggerRequest struct {
	UserID         string   `json:"user_id,omitempty"`
	GForce         float64  `json:"g_force" validate:"gt=0"`
	HeartRate      float64  `json:"heart_rate" validate:"gt=0,lte=300"`
	HeartRateAfter *float64 `json:"heart_rate_after,omitempty" validate:"omitempty,gt=0,lte=300"`
	VoiceDecibels  float64  `json:"voice_decibels" validate:"gte=0"`
	GPS            GPSDTO   `json:"gps"`
	BloodType      string   `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies      []string `json:"allergies,omitempty"`
	UserConsent    bool     `json:"user_consent"`
}

// CrashTriggerResponse DTO итога обработки срабатывания
// @Description DTO итога обработки срабатывания
type CrashTriggerResponse struct {
	IncidentID     string               `json:"incident_id"`
	Outcome        service.Outcome      `json:"outcome"`
	Status         string               `json:"status"`
	FamilyNotified bool                 `json:"family_notified"`
	Swarm          *service.SwarmResult `json:"swarm,omitempty"`
	BlackBox       *BlackBoxDTO         `json:"black_box,omitempty"`
}

// BlackBoxDTO DTO сводки записи черного ящика
// @Description DTO сводки записи черного ящика
type BlackBoxDTO struct {
	RecordingID string    `json:"recording_id"`
	StartedAt   time.Time `json:"started_at"`
	StoppedAt   time.Time `json:"stopped_at"`
	ChunkCount  int       `json:"chunk_count"`
}

// CancelResponse DTO результата отмены инцидента
// @Description DTO результата отмены инцидента
type CancelResponse struct {
	IncidentID string `json:"incident_id"`
	Cancelled  bool   `json:"cancelled"`
}

// CancelAllResponse DTO результата массовой отмены
// @Description DTO результата массовой отмены
type CancelAllResponse struct {
	CancelledCount int `json:"cancelled_count"`
}

// ActiveIncidentsResponse DTO списка активных инцидентов
// @Description DTO списка активных инцидентов
type ActiveIncidentsResponse struct {
	Active []string `json:"active"`
	Count  int      `json:"count"`
}

// IncidentLogsResponse DTO журнала переходов инцидента
// @Description DTO журнала переходов инцидента
type IncidentLogsResponse struct {
	IncidentID string                      `json:"incident_id"`
	Logs       []models.TransitionLogEntry `json:"logs"`
}

// HealthResponse DTO проверки работоспособности
// @Description DTO проверки работоспособности
type HealthResponse struct {
	Status          string `json:"status"`
	ActiveIncidents int    `json:"active_incidents"`
	TotalIncidents  int    `json:"total_incidents"`
}
