package detector

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vish-34/PulseIQ/internal/config"
	"github.com/vish-34/PulseIQ/internal/models"
)

// StatusCriticalConfirmed - статус при срабатывании всех трех подтверждений
const StatusCriticalConfirmed = "CRITICAL_EVENT_CONFIRMED"

// StatusConsentNotProvided - статус при отсутствии согласия пользователя
const StatusConsentNotProvided = "MONITOR_MODE - user consent not provided"

// Detector реализует триангуляцию: три независимых подтверждения
// (удар, паттерн пульса, тишина) до объявления критического события.
type Detector struct {
	gForceThreshold float64
	spikeThreshold  float64
	dropThreshold   float64
	silenceLevel    float64
	logger          *logrus.Logger
}

// New создает детектор с порогами из конфигурации
func New(cfg *config.Config, logger *logrus.Logger) *Detector {
	return &Detector{
		gForceThreshold: cfg.GForceThreshold,
		spikeThreshold:  cfg.HeartRateSpikeThreshold,
		dropThreshold:   cfg.HeartRateDropThreshold,
		silenceLevel:    cfg.VoiceDecibelThreshold,
		logger:          logger,
	}
}

// ImpactDetected - подтверждение 1: перегрузка строго выше порога
func (d *Detector) ImpactDetected(gForce float64) bool {
	return gForce > d.gForceThreshold
}

// HeartPatternDetected - подтверждение 2: скачок пульса выше порога, затем
// резкое падение ниже порога либо отсутствие показания (тишина датчика)
func (d *Detector) HeartPatternDetected(hr float64, hrAfter *float64) bool {
	if hr <= d.spikeThreshold {
		return false
	}
	if hrAfter == nil {
		// Нет показания после удара - датчик молчит
		return true
	}
	return *hrAfter < d.dropThreshold
}

// SilenceDetected - подтверждение 3: уровень голоса точно равен порогу тишины.
// Именно равенство, а не "ниже": любой положительный уровень означает отклик.
func (d *Detector) SilenceDetected(decibels float64) bool {
	return decibels == d.silenceLevel
}

// Triangulate выполняет триангуляцию по показаниям датчиков.
// Возвращает (критичность, статус). Все три проверки вычисляются всегда -
// диагностический статус должен перечислить каждую несработавшую.
func (d *Detector) Triangulate(reading *models.CrashReading) (bool, string) {
	log := d.logger.WithFields(logrus.Fields{
		"service": "detector",
		"method":  "Triangulate",
	})

	if !reading.UserConsent {
		log.Warn("User consent not provided, staying in monitor mode")
		return false, StatusConsentNotProvided
	}

	impact := d.ImpactDetected(reading.GForce)
	heart := d.HeartPatternDetected(reading.HeartRate, reading.HeartRateAfter)
	silence := d.SilenceDetected(reading.VoiceDecibels)

	log.WithFields(logrus.Fields{
		"impact_detected": impact,
		"g_force":         reading.GForce,
		"threshold":       d.gForceThreshold,
	}).Info("Confirmation 1: impact check")
	log.WithFields(logrus.Fields{
		"heart_pattern_detected": heart,
		"heart_rate":             reading.HeartRate,
		"heart_rate_after":       formatHRAfter(reading.HeartRateAfter),
	}).Info("Confirmation 2: heart rate pattern check")
	log.WithFields(logrus.Fields{
		"silence_detected": silence,
		"voice_decibels":   reading.VoiceDecibels,
	}).Info("Confirmation 3: silence check")

	if impact && heart && silence {
		log.Info("All 3 confirmations met, critical event confirmed")
		return true, StatusCriticalConfirmed
	}

	// Диагностический статус перечисляет все несработавшие подтверждения
	reasons := make([]string, 0, 3)
	if !impact {
		reasons = append(reasons, fmt.Sprintf("Impact threshold not met (G-Force: %gG)", reading.GForce))
	}
	if !heart {
		reasons = append(reasons, fmt.Sprintf("Heart rate pattern not detected (HR: %g -> %s)",
			reading.HeartRate, formatHRAfter(reading.HeartRateAfter)))
	}
	if !silence {
		reasons = append(reasons, fmt.Sprintf("Voice detected (Decibels: %g)", reading.VoiceDecibels))
	}

	status := "MONITOR_MODE - " + strings.Join(reasons, "; ")
	log.WithField("status", status).Warn("Triangulation failed")
	return false, status
}

func formatHRAfter(hrAfter *float64) string {
	if hrAfter == nil {
		return "none"
	}
	return fmt.Sprintf("%g", *hrAfter)
}
