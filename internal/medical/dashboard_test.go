package medical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vish-34/PulseIQ/internal/models"
)

func TestBuildDashboard(t *testing.T) {
	after := 45.0
	reading := &models.CrashReading{
		GForce:         5.2,
		HeartRate:      145,
		HeartRateAfter: &after,
		BloodType:      "O+",
		Allergies:      []string{"Penicillin"},
	}

	data := BuildDashboard("inc_1", reading)

	assert.Equal(t, "inc_1", data.IncidentID)
	assert.Equal(t, "O+", data.BloodType)
	assert.Equal(t, []string{"Penicillin"}, data.Allergies)
	assert.Equal(t, 145.0, data.HeartRate)
	require.NotNil(t, data.HeartRateAfter)
	assert.Equal(t, 45.0, *data.HeartRateAfter)
}

func TestRenderQR(t *testing.T) {
	data := DashboardData{
		IncidentID: "inc_1",
		BloodType:  "O+",
		HeartRate:  145,
		GForce:     5.2,
	}

	qr, err := RenderQR(data)

	require.NoError(t, err)
	assert.NotEmpty(t, qr)
}
