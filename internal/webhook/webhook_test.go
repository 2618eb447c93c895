package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/barangay_portal/internal/config"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func testConfig(url string) *config.Config {
	return &config.Config{
		AlertWebhookURL:        url,
		AlertWebhookSecret:     "s3cret",
		AlertWebhookTimeout:    time.Second,
		AlertWebhookMaxRetries: 3,
		AlertWebhookBaseDelay:  5 * time.Millisecond,
	}
}

func TestPublishAlert_PushesEventToQueue(t *testing.T) {
	mr, client := newRedis(t)
	publisher := NewRedisAlertPublisher(client)
	report := models.EmergencyReport{
		ID:           "42",
		Name:         "Ana",
		IncidentType: models.IncidentFire,
		LocationText: "Purok 3",
		Latitude:     14.599512,
		Longitude:    120.984222,
		Status:       " Pending",
	}

	require.NoError(t, publisher.PublishAlert(context.Background(), report))

	items, err := mr.List(alertQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var event AlertEvent
	require.NoError(t, json.Unmarshal([]byte(items[0]), &event))
	assert.Equal(t, models.ID("42"), event.ReportID)
	assert.Equal(t, "pending", event.Status)
	assert.Equal(t, 14.599512, event.Latitude)
	assert.False(t, event.PublishedAt.IsZero())
}

func TestAlertWorker_DeliversSignedPayload(t *testing.T) {
	_, client := newRedis(t)

	var (
		mu        sync.Mutex
		body      string
		signature string
	)
	received := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		body = string(raw)
		signature = r.Header.Get("X-Webhook-Signature")
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
		received <- struct{}{}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewAlertWorker(client, logger.Discard(), testConfig(srv.URL))
	worker.Start(ctx)

	require.NoError(t, NewRedisAlertPublisher(client).Publish(ctx, AlertEvent{ReportID: "7", Status: "pending"}))

	select {
	case <-received:
	case <-time.After(3 * time.Second):
		t.Fatal("alert was not delivered")
	}

	cancel()
	select {
	case <-worker.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, generateHMACSHA256(body, "s3cret"), signature)
	assert.Contains(t, body, `"report_id":7`)
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker := NewAlertWorker(nil, logger.Discard(), testConfig(srv.URL))

	ok := worker.deliver(context.Background(), AlertEvent{ReportID: "1"}, `{"report_id":"1"}`)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := NewAlertWorker(nil, logger.Discard(), testConfig(srv.URL))

	ok := worker.deliver(context.Background(), AlertEvent{ReportID: "1"}, `{}`)

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	worker := NewAlertWorker(nil, logger.Discard(), testConfig(""))
	assert.False(t, worker.deliver(context.Background(), AlertEvent{}, `{}`))
}

func TestGenerateHMACSHA256(t *testing.T) {
	sig := generateHMACSHA256("payload", "key")

	assert.Len(t, sig, 64)
	assert.Equal(t, sig, generateHMACSHA256("payload", "key"))
	assert.NotEqual(t, sig, generateHMACSHA256("payload", "other"))
}
