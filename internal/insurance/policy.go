package insurance

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vish-34/PulseIQ/internal/config"
)

// Policy - страховой полис пользователя
type Policy struct {
	PolicyNumber   string  `json:"policy_number"`
	Provider       string  `json:"provider"`
	CoverageAmount float64 `json:"coverage_amount"`
	PolicyType     string  `json:"policy_type"`
	Active         bool    `json:"active"`
	UserID         string  `json:"user_id"`
}

// mockProviders - список провайдеров для фабрикации полисов в mock-режиме
var mockProviders = []string{
	"HealthCare Insurance Ltd",
	"MediCover Insurance",
	"Star Health Insurance",
	"HDFC ERGO Health Insurance",
	"ICICI Lombard Health Insurance",
	"Bajaj Allianz Health Insurance",
	"Care Health Insurance",
	"Niva Bupa Health Insurance",
}

// Service - поиск полисов и проверка покрытия. В демо хранит небольшую
// таблицу полисов в памяти; фабрикация полиса для неизвестного пользователя
// выполняется ТОЛЬКО при явно включенном mock-режиме.
type Service struct {
	mu       sync.RWMutex
	policies map[string]*Policy
	mockMode bool
	logger   *logrus.Logger
}

// NewService создает страховой сервис с посевными полисами
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	s := &Service{
		policies: make(map[string]*Policy),
		mockMode: cfg.InsuranceMockMode,
		logger:   logger,
	}
	s.seed()
	return s
}

func (s *Service) seed() {
	s.policies["user_001"] = &Policy{
		PolicyNumber:   "POL-2024-001234",
		Provider:       "HealthCare Insurance Ltd",
		CoverageAmount: 500000.0,
		PolicyType:     "Individual",
		Active:         true,
		UserID:         "user_001",
	}
	s.policies["user_002"] = &Policy{
		PolicyNumber:   "POL-2024-005678",
		Provider:       "MediCover Insurance",
		CoverageAmount: 1000000.0,
		PolicyType:     "Family",
		Active:         true,
		UserID:         "user_002",
	}
}

// LookupPolicy ищет полис пользователя. Для неизвестного пользователя в
// mock-режиме фабрикует правдоподобный полис, иначе возвращает ошибку.
func (s *Service) LookupPolicy(ctx context.Context, userID string) (*Policy, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "insurance",
		"method":  "LookupPolicy",
		"user_id": userID,
	})

	s.mu.RLock()
	policy, ok := s.policies[userID]
	s.mu.RUnlock()

	if ok {
		log.WithField("policy_number", policy.PolicyNumber).Info("Policy found")
		copied := *policy
		return &copied, nil
	}

	if !s.mockMode {
		log.Warn("Policy not found")
		return nil, fmt.Errorf("insurance: policy for user %s not found", userID)
	}

	fabricated := &Policy{
		PolicyNumber:   fmt.Sprintf("POL-2024-%06d", rand.Intn(900000)+100000),
		Provider:       mockProviders[rand.Intn(len(mockProviders))],
		CoverageAmount: 300000.0 + rand.Float64()*1200000.0,
		PolicyType:     []string{"Individual", "Family", "Group"}[rand.Intn(3)],
		Active:         true,
		UserID:         userID,
	}
	log.WithField("policy_number", fabricated.PolicyNumber).Warn("Policy not found, fabricated mock policy (mock mode enabled)")

	s.mu.Lock()
	s.policies[userID] = fabricated
	s.mu.Unlock()

	copied := *fabricated
	return &copied, nil
}

// VerifyCoverage проверяет, укладывается ли сумма в покрытие полиса.
// Для неизвестного номера полиса считаем покрытие достаточным - запрос
// на предавторизацию при ЧП не должен блокироваться проверкой.
func (s *Service) VerifyCoverage(ctx context.Context, amount float64, policyNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, policy := range s.policies {
		if policy.PolicyNumber == policyNumber {
			return policy.Active && amount <= policy.CoverageAmount, nil
		}
	}
	return true, nil
}
