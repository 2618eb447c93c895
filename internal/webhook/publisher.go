package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/barangay_portal/internal/models"
)

const (
	alertQueueKey = "emergency_alerts"
)

// AlertEvent - уведомление о новом экстренном вызове для внешней системы
type AlertEvent struct {
	ReportID     models.ID           `json:"report_id"`
	Name         string              `json:"name"`
	IncidentType models.IncidentType `json:"incident_type"`
	Description  string              `json:"description,omitempty"`
	LocationText string              `json:"location_text"`
	Latitude     float64             `json:"latitude,omitempty"`
	Longitude    float64             `json:"longitude,omitempty"`
	Status       string              `json:"status"`
	SubmittedAt  time.Time           `json:"submitted_at"`
	PublishedAt  time.Time           `json:"published_at"`
}

// NewAlertEvent собирает событие из вызова
func NewAlertEvent(r models.EmergencyReport) AlertEvent {
	return AlertEvent{
		ReportID:     r.ID,
		Name:         r.Name,
		IncidentType: r.IncidentType,
		Description:  r.Description,
		LocationText: r.LocationText,
		Latitude:     r.Latitude.Float64(),
		Longitude:    r.Longitude.Float64(),
		Status:       string(r.Status.Normalize()),
		SubmittedAt:  r.SubmittedAt,
		PublishedAt:  time.Now().UTC(),
	}
}

// AlertPublisher - интерфейс для публикации событий
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая очередь Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть очереди
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}

// PublishAlert публикует вызов, впервые замеченный панелью
func (p *RedisAlertPublisher) PublishAlert(ctx context.Context, report models.EmergencyReport) error {
	return p.Publish(ctx, NewAlertEvent(report))
}
