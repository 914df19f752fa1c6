package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_response_system/internal/models"
)

const (
	webhookQueueKey = "incident_events"
)

// Типы событий жизненного цикла инцидента
const (
	EventIncidentCreated = "incident.created"
	EventStatusChanged   = "incident.status_changed"
	EventAnalysisUpdated = "incident.analysis_updated"
)

// IncidentEvent - структура для данных вебхука о событии инцидента
type IncidentEvent struct {
	EventID       uuid.UUID             `json:"event_id"`
	EventType     string                `json:"event_type"`
	IncidentID    string                `json:"incident_id"`
	Status        models.IncidentStatus `json:"status"`
	PriorityScore int                   `json:"priority_score"`
	Timestamp     time.Time             `json:"timestamp"`
}

// NewIncidentEvent создает событие вебхука для инцидента
func NewIncidentEvent(eventType string, incident *models.Incident) IncidentEvent {
	return IncidentEvent{
		EventID:       uuid.New(),
		EventType:     eventType,
		IncidentID:    incident.ID,
		Status:        incident.Status,
		PriorityScore: incident.PriorityScore,
		Timestamp:     time.Now().UTC(),
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
