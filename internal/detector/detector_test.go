package detector

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/vish-34/PulseIQ/internal/config"
	"github.com/vish-34/PulseIQ/internal/models"
)

// newTestDetector создает детектор с порогами по умолчанию
func newTestDetector() *Detector {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		GForceThreshold:         4.0,
		HeartRateSpikeThreshold: 140.0,
		HeartRateDropThreshold:  50.0,
		VoiceDecibelThreshold:   0.0,
	}
	return New(cfg, logger)
}

func fptr(v float64) *float64 { return &v }

func TestImpactDetected_Boundary(t *testing.T) {
	d := newTestDetector()

	assert.True(t, d.ImpactDetected(5.2))
	assert.False(t, d.ImpactDetected(2.1))
	// Порог строгий: ровно 4.0 не считается ударом
	assert.False(t, d.ImpactDetected(4.0))
}

func TestHeartPatternDetected(t *testing.T) {
	d := newTestDetector()

	assert.True(t, d.HeartPatternDetected(145, fptr(45)), "скачок и падение")
	assert.True(t, d.HeartPatternDetected(145, nil), "скачок и тишина датчика")
	assert.False(t, d.HeartPatternDetected(80, fptr(75)), "нет скачка")
	assert.False(t, d.HeartPatternDetected(150, fptr(120)), "скачок без падения")
	// Нет скачка - второе показание не имеет значения
	assert.False(t, d.HeartPatternDetected(80, nil))
}

func TestSilenceDetected_ExactEquality(t *testing.T) {
	d := newTestDetector()

	assert.True(t, d.SilenceDetected(0.0))
	assert.False(t, d.SilenceDetected(0.1))
	assert.False(t, d.SilenceDetected(45.2))
}

func TestTriangulate_ConsentGate(t *testing.T) {
	d := newTestDetector()

	// Показания критические, но согласия нет - датчики не важны
	reading := &models.CrashReading{
		GForce:         5.2,
		HeartRate:      145,
		HeartRateAfter: fptr(45),
		VoiceDecibels:  0,
		UserConsent:    false,
	}

	isCritical, status := d.Triangulate(reading)

	assert.False(t, isCritical)
	assert.Contains(t, status, "consent")
	assert.Contains(t, status, "MONITOR_MODE")
}

func TestTriangulate_Critical(t *testing.T) {
	d := newTestDetector()
	reading := &models.CrashReading{
		GForce:         5.2,
		HeartRate:      145,
		HeartRateAfter: fptr(45),
		VoiceDecibels:  0,
		UserConsent:    true,
	}

	isCritical, status := d.Triangulate(reading)

	assert.True(t, isCritical)
	assert.Equal(t, StatusCriticalConfirmed, status)
}

// TestTriangulate_AllCombinations перебирает все 8 комбинаций трех подтверждений:
// критичность только при строгой конъюнкции всех трех.
func TestTriangulate_AllCombinations(t *testing.T) {
	d := newTestDetector()

	for _, impact := range []bool{false, true} {
		for _, heart := range []bool{false, true} {
			for _, silence := range []bool{false, true} {
				name := fmt.Sprintf("impact=%v_heart=%v_silence=%v", impact, heart, silence)
				t.Run(name, func(t *testing.T) {
					reading := &models.CrashReading{UserConsent: true}

					if impact {
						reading.GForce = 5.2
					} else {
						reading.GForce = 2.0
					}
					if heart {
						reading.HeartRate = 145
						reading.HeartRateAfter = fptr(45)
					} else {
						reading.HeartRate = 80
						reading.HeartRateAfter = fptr(75)
					}
					if silence {
						reading.VoiceDecibels = 0
					} else {
						reading.VoiceDecibels = 35.5
					}

					isCritical, status := d.Triangulate(reading)

					assert.Equal(t, impact && heart && silence, isCritical)
					if isCritical {
						assert.Equal(t, StatusCriticalConfirmed, status)
					} else {
						assert.Contains(t, status, "MONITOR_MODE")
						// Каждое несработавшее подтверждение перечислено в статусе
						if !impact {
							assert.Contains(t, status, "Impact threshold not met")
						}
						if !heart {
							assert.Contains(t, status, "Heart rate pattern not detected")
						}
						if !silence {
							assert.Contains(t, status, "Voice detected")
						}
					}
				})
			}
		}
	}
}

func TestTriangulate_GForceBelowThresholdNeverCritical(t *testing.T) {
	d := newTestDetector()
	reading := &models.CrashReading{
		GForce:         3.9,
		HeartRate:      145,
		HeartRateAfter: fptr(45),
		VoiceDecibels:  0,
		UserConsent:    true,
	}

	isCritical, _ := d.Triangulate(reading)
	assert.False(t, isCritical)
}
