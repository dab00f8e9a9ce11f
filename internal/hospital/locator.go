package hospital

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/vish-34/PulseIQ/internal/config"
	"github.com/vish-34/PulseIQ/internal/models"
)

const placesNearbyURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// Locator ищет ближайший травмоцентр через Google Places API.
// При любой ошибке (нет ключа, сеть, пустой ответ) возвращает
// детерминированный mock-госпиталь рядом с точкой аварии - ядро протокола
// не различает живой и резервный результат.
type Locator struct {
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewLocator создает локатор госпиталей
func NewLocator(cfg *config.Config, logger *logrus.Logger) *Locator {
	return &Locator{
		apiKey: cfg.GoogleMapsAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.GoogleMapsTimeout,
		},
		logger: logger,
	}
}

type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// FindNearest находит ближайший травмоцентр к заданной точке
func (l *Locator) FindNearest(ctx context.Context, gps models.GPSLocation) (*models.Hospital, error) {
	log := l.logger.WithFields(logrus.Fields{
		"service": "hospital",
		"method":  "FindNearest",
		"lat":     gps.Lat,
		"lon":     gps.Lon,
	})

	if l.apiKey == "" {
		log.Warn("Google Maps API key is not configured, using mock hospital")
		return l.mockHospital(gps), nil
	}

	hospital, err := l.queryPlaces(ctx, gps)
	if err != nil {
		log.WithError(err).Warn("Places lookup failed, falling back to mock hospital")
		return l.mockHospital(gps), nil
	}

	log.WithFields(logrus.Fields{
		"hospital":    hospital.Name,
		"distance_km": hospital.DistanceKm,
	}).Info("Nearest trauma center found")
	return hospital, nil
}

func (l *Locator) queryPlaces(ctx context.Context, gps models.GPSLocation) (*models.Hospital, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", gps.Lat, gps.Lon))
	params.Set("rankby", "distance")
	params.Set("type", "hospital")
	params.Set("keyword", "trauma center")
	params.Set("key", l.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, placesNearbyURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create places request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places request returned status %d", resp.StatusCode)
	}

	var data placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		return nil, fmt.Errorf("places response status %q with %d results", data.Status, len(data.Results))
	}

	place := data.Results[0]
	hospitalGPS := models.GPSLocation{
		Lat: place.Geometry.Location.Lat,
		Lon: place.Geometry.Location.Lng,
	}

	return &models.Hospital{
		ID:         place.PlaceID,
		Name:       place.Name,
		Address:    place.Vicinity,
		GPS:        hospitalGPS,
		DistanceKm: round2(DistanceKm(gps, hospitalGPS)),
	}, nil
}

// mockHospital возвращает резервный госпиталь чуть в стороне от точки аварии
func (l *Locator) mockHospital(gps models.GPSLocation) *models.Hospital {
	hospitalGPS := models.GPSLocation{Lat: gps.Lat + 0.01, Lon: gps.Lon + 0.01}
	return &models.Hospital{
		ID:         "mock_city_trauma_center",
		Name:       "City Trauma Center",
		Address:    "Address not available",
		GPS:        hospitalGPS,
		DistanceKm: round2(DistanceKm(gps, hospitalGPS)),
	}
}

// DistanceKm возвращает расстояние между двумя точками по формуле гаверсинуса
func DistanceKm(a, b models.GPSLocation) float64 {
	const earthRadiusKm = 6371.0

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// WithinGeofence проверяет попадание точки в радиус геозоны (в метрах)
func WithinGeofence(current, target models.GPSLocation, radiusMeters float64) bool {
	return DistanceKm(current, target)*1000 <= radiusMeters
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
