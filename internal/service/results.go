package service

import (
	"time"

	"github.com/vish-34/PulseIQ/internal/blackbox"
	"github.com/vish-34/PulseIQ/internal/medical"
	"github.com/vish-34/PulseIQ/internal/models"
)

// Outcome - итог обработки аварийного срабатывания
type Outcome string

const (
	OutcomeCompleted   Outcome = "completed"
	OutcomeNonCritical Outcome = "non_critical"
	OutcomeCancelled   Outcome = "cancelled"
)

// StatusProtocolCompleted - статус успешно пройденного протокола реагирования.
// Отличается от статуса триангуляции: тот фиксирует момент подтверждения,
// этот - завершение всех фаз.
const StatusProtocolCompleted = "PROTOCOL_COMPLETED"

// DispatchResult - результат работы диспетчера: выбранный травмоцентр и ETA
type DispatchResult struct {
	Hospital   *models.Hospital `json:"hospital,omitempty"`
	ETAMinutes float64          `json:"eta_minutes,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// MedicalResult - медицинская панель для приемного отделения
type MedicalResult struct {
	Dashboard medical.DashboardData `json:"dashboard"`
	QR        string                `json:"-"` // ASCII QR рендерится только в терминал
	Error     string                `json:"error,omitempty"`
}

// PreauthResult - результат проверки полиса и предавторизации оплаты
type PreauthResult struct {
	PolicyNumber string  `json:"policy_number,omitempty"`
	Provider     string  `json:"provider,omitempty"`
	Amount       float64 `json:"amount,omitempty"`
	Covered      bool    `json:"covered"`
	Token        string  `json:"token,omitempty"`
	HospitalID   string  `json:"hospital_id,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// SwarmResult - агрегированный результат параллельных агентов.
// Отказ одного агента не отменяет остальных: его поле Error заполнено,
// остальные результаты остаются валидными.
type SwarmResult struct {
	Dispatch *DispatchResult `json:"dispatch,omitempty"`
	Medical  *MedicalResult  `json:"medical,omitempty"`
	Preauth  *PreauthResult  `json:"preauth,omitempty"`
	Duration time.Duration   `json:"-"`
}

// CrashOutcome - итоговый отчет по инциденту, отдается вызывающей стороне
type CrashOutcome struct {
	IncidentID     string            `json:"incident_id"`
	Outcome        Outcome           `json:"outcome"`
	Status         string            `json:"status"`
	FamilyNotified bool              `json:"family_notified"`
	Swarm          *SwarmResult      `json:"swarm,omitempty"`
	BlackBox       *blackbox.Summary `json:"black_box,omitempty"`
}
