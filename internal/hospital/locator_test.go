package hospital

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vish-34/PulseIQ/internal/config"
	"github.com/vish-34/PulseIQ/internal/models"
)

func newTestLocator(apiKey string) *Locator {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		GoogleMapsAPIKey:  apiKey,
		GoogleMapsTimeout: time.Second,
	}
	return NewLocator(cfg, logger)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Мумбаи (Goregaon) -> Пуна, около 120 км по прямой
	goregaon := models.GPSLocation{Lat: 19.1680, Lon: 72.8500}
	pune := models.GPSLocation{Lat: 18.5204, Lon: 73.8567}

	distance := DistanceKm(goregaon, pune)

	assert.InDelta(t, 127.0, distance, 10.0)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	p := models.GPSLocation{Lat: 19.1680, Lon: 72.8500}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestWithinGeofence(t *testing.T) {
	hospital := models.GPSLocation{Lat: 19.1680, Lon: 72.8500}
	// ~111 м на градус широты * 0.0005 = ~55 м
	near := models.GPSLocation{Lat: 19.1685, Lon: 72.8500}
	far := models.GPSLocation{Lat: 19.1780, Lon: 72.8500} // ~1.1 км

	assert.True(t, WithinGeofence(near, hospital, 100))
	assert.False(t, WithinGeofence(far, hospital, 100))
	assert.True(t, WithinGeofence(hospital, hospital, 0))
}

func TestFindNearest_MockFallbackWithoutAPIKey(t *testing.T) {
	locator := newTestLocator("")
	gps := models.GPSLocation{Lat: 19.1680, Lon: 72.8500}

	hospital, err := locator.FindNearest(context.Background(), gps)

	require.NoError(t, err)
	require.NotNil(t, hospital)
	assert.Equal(t, "City Trauma Center", hospital.Name)
	assert.Equal(t, "mock_city_trauma_center", hospital.ID)
	assert.Greater(t, hospital.DistanceKm, 0.0)
	// Mock-госпиталь рядом с точкой аварии
	assert.Less(t, hospital.DistanceKm, 5.0)
}
