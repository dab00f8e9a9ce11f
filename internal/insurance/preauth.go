package insurance

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PreauthToken - предавторизационный токен для госпитальной кассы
type PreauthToken struct {
	Token        string    `json:"token"`
	PolicyNumber string    `json:"policy_number"`
	Amount       float64   `json:"amount"`
	HospitalID   string    `json:"hospital_id"`
	IncidentID   string    `json:"incident_id"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	Used         bool      `json:"used"`
}

// TokenStore - инжектируемое in-memory хранилище предавторизационных токенов
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]*PreauthToken
	ttl    time.Duration
}

// NewTokenStore создает хранилище токенов с заданным сроком жизни
func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{
		tokens: make(map[string]*PreauthToken),
		ttl:    ttl,
	}
}

// GeneratePreauthToken генерирует токен формата PREAUTH_{YYYYMMDD}_{RANDOM6}
// и сохраняет его в хранилище.
func (s *TokenStore) GeneratePreauthToken(ctx context.Context, policyNumber string, amount float64, hospitalID, incidentID string) (string, error) {
	now := time.Now().UTC()
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	token := fmt.Sprintf("PREAUTH_%s_%s", now.Format("20060102"), random)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = &PreauthToken{
		Token:        token,
		PolicyNumber: policyNumber,
		Amount:       amount,
		HospitalID:   hospitalID,
		IncidentID:   incidentID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
		Used:         false,
	}
	return token, nil
}

// Validate проверяет токен: существует, не истек, не использован
func (s *TokenStore) Validate(token string) (*PreauthToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.tokens[token]
	if !ok {
		return nil, fmt.Errorf("preauth token %s not found", token)
	}
	if record.Used {
		return nil, fmt.Errorf("preauth token %s already used", token)
	}
	if time.Now().UTC().After(record.ExpiresAt) {
		return nil, fmt.Errorf("preauth token %s expired at %s", token, record.ExpiresAt.Format(time.RFC3339))
	}

	copied := *record
	return &copied, nil
}

// MarkUsed помечает токен использованным
func (s *TokenStore) MarkUsed(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.tokens[token]
	if !ok {
		return fmt.Errorf("preauth token %s not found", token)
	}
	record.Used = true
	return nil
}
