package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/barangay_portal/internal/config"
	"github.com/sirupsen/logrus"
)

const popTimeout = time.Second

// AlertWorker забирает события из очереди и доставляет их на вебхук
type AlertWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	done        chan struct{}
}

func NewAlertWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *AlertWorker {
	return &AlertWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.AlertWebhookTimeout,
		},
		done: make(chan struct{}),
	}
}

// Start запускает горутину обработки очереди; остановка - отменой ctx
func (w *AlertWorker) Start(ctx context.Context) {
	w.logger.WithField("queue", alertQueueKey).Info("Starting alert worker...")
	go func() {
		defer close(w.done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping alert worker.")
				return
			}

			// BRPOP с таймаутом, чтобы регулярно проверять ctx
			result, err := w.redisClient.BRPop(ctx, popTimeout, alertQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop alert event from Redis")
				sleep(ctx, w.cfg.AlertWebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event AlertEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
				continue
			}

			w.deliver(ctx, event, payload)
		}
	}()
}

// Done закрывается после остановки воркера
func (w *AlertWorker) Done() <-chan struct{} {
	return w.done
}

func (w *AlertWorker) deliver(ctx context.Context, event AlertEvent, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"report_id":     event.ReportID,
		"incident_type": event.IncidentType,
	})
	log.Debug("Delivering alert event...")

	if w.cfg.AlertWebhookURL == "" {
		log.Warn("Alert webhook URL is not configured. Skipping delivery.")
		return false
	}

	maxRetries := w.cfg.AlertWebhookMaxRetries
	delay := w.cfg.AlertWebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.send(ctx, rawPayload)
		if err == nil {
			log.Info("Alert delivered successfully.")
			return true
		}
		if ctx.Err() != nil {
			log.WithError(err).Warn("Alert delivery interrupted by shutdown.")
			return false
		}

		log.WithError(err).Warnf("Alert delivery failed. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if i < maxRetries-1 {
			sleep(ctx, delay)
			delay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver alert after %d attempts.", maxRetries)
	return false
}

func (w *AlertWorker) send(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.AlertWebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись добавляется, только если задан секрет
	if w.cfg.AlertWebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.AlertWebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
