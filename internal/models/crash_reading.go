package models

// GPSLocation - координаты GPS
type GPSLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CrashReading представляет снимок показаний датчиков в момент аварии.
// Неизменяем после получения.
type CrashReading struct {
	UserID         string      `json:"user_id"`
	GForce         float64     `json:"g_force"`
	HeartRate      float64     `json:"heart_rate"`
	HeartRateAfter *float64    `json:"heart_rate_after,omitempty"` // nil = нет показания (тишина)
	VoiceDecibels  float64     `json:"voice_decibels"`
	GPS            GPSLocation `json:"gps"`
	BloodType      string      `json:"blood_type"`
	Allergies      []string    `json:"allergies"`
	UserConsent    bool        `json:"user_consent"`
}

// Hospital - информация о ближайшем травмоцентре
type Hospital struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	GPS        GPSLocation `json:"gps"`
	DistanceKm float64     `json:"distance_km"`
}
