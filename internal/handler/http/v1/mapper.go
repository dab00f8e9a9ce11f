package v1

import (
	"github.com/vish-34/PulseIQ/internal/models"
	"github.com/vish-34/PulseIQ/internal/service"
)

// DTOToCrashReading преобразует DTO срабатывания в доменную модель
func DTOToCrashReading(dto CrashTriggerRequest) *models.CrashReading {
	return &models.CrashReading{
		UserID:         dto.UserID,
		GForce:         dto.GForce,
		HeartRate:      dto.HeartRate,
		HeartRateAfter: dto.HeartRateAfter,
		VoiceDecibels:  dto.VoiceDecibels,
		GPS:            models.GPSLocation{Lat: dto.GPS.Lat, Lon: dto.GPS.Lon},
		BloodType:      dto.BloodType,
		Allergies:      dto.Allergies,
		UserConsent:    dto.UserConsent,
	}
}

// OutcomeToTriggerResponse преобразует итог обработки в DTO для ответа
func OutcomeToTriggerResponse(outcome *service.CrashOutcome) *CrashTriggerResponse {
	resp := &CrashTriggerResponse{
		IncidentID:     outcome.IncidentID,
		Outcome:        outcome.Outcome,
		Status:         outcome.Status,
		FamilyNotified: outcome.FamilyNotified,
		Swarm:          outcome.Swarm,
	}
	if outcome.BlackBox != nil {
		resp.BlackBox = &BlackBoxDTO{
			RecordingID: outcome.BlackBox.RecordingID,
			StartedAt:   outcome.BlackBox.StartedAt,
			StoppedAt:   outcome.BlackBox.StoppedAt,
			ChunkCount:  outcome.BlackBox.ChunkCount,
		}
	}
	return resp
}
