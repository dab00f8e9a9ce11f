package medical

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mdp/qrterminal/v3"
	"github.com/vish-34/PulseIQ/internal/models"
)

// DashboardData - данные панели первого реагирующего: то, что врач должен
// увидеть на экране устройства пострадавшего.
type DashboardData struct {
	IncidentID     string   `json:"incident_id"`
	BloodType      string   `json:"blood_type"`
	Allergies      []string `json:"allergies"`
	HeartRate      float64  `json:"heart_rate"`
	HeartRateAfter *float64 `json:"heart_rate_after,omitempty"`
	GForce         float64  `json:"g_force"`
}

// BuildDashboard собирает данные панели из показаний датчиков
func BuildDashboard(incidentID string, reading *models.CrashReading) DashboardData {
	return DashboardData{
		IncidentID:     incidentID,
		BloodType:      reading.BloodType,
		Allergies:      reading.Allergies,
		HeartRate:      reading.HeartRate,
		HeartRateAfter: reading.HeartRateAfter,
		GForce:         reading.GForce,
	}
}

// RenderQR кодирует медицинские данные в QR-код и возвращает его текстовый
// рендер для панели первого реагирующего.
func RenderQR(data DashboardData) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal medical data for QR: %w", err)
	}

	var buf bytes.Buffer
	qrterminal.GenerateHalfBlock(string(payload), qrterminal.L, &buf)
	return buf.String(), nil
}
