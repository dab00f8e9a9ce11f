package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vish-34/PulseIQ/internal/models"
)

const (
	eventQueueKey = "incident_events"
)

// Типы событий жизненного цикла инцидента
const (
	EventCriticalConfirmed = "critical_confirmed"
	EventCancelled         = "cancelled"
	EventNonCritical       = "non_critical"
	EventHospitalArrived   = "hospital_arrived"
	EventCompleted         = "completed"
)

// IncidentEvent - событие жизненного цикла инцидента для доставки вебхуком
type IncidentEvent struct {
	IncidentID string               `json:"incident_id"`
	Event      string               `json:"event"`
	State      models.IncidentState `json:"state"`
	Status     string               `json:"status,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
	Details    map[string]any       `json:"details,omitempty"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// EventPublisher - интерфейс для публикации событий инцидентов
type EventPublisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие инцидента в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
