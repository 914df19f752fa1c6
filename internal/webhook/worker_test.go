package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker создает WebhookWorker с подавленным выводом логов.
// Redis-клиент не нужен: доставка события его не использует.
func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWebhookWorker(nil, logger, cfg)
}

func testEvent() (IncidentEvent, string) {
	event := NewIncidentEvent(EventStatusChanged, &models.Incident{
		ID:            "INC-20240501120000-1",
		Status:        models.StatusResolved,
		PriorityScore: 75,
	})
	payload, _ := json.Marshal(event)
	return event, string(payload)
}

func TestProcessIncidentEvent_RetriesUntilDelivered(t *testing.T) {
	// Подготовка: первые две попытки отвечают 500, третья - 200
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testEvent()

	// Действие
	worker.processIncidentEvent(context.Background(), event, payload)

	// Проверки
	assert.Equal(t, int32(3), attempts.Load())
}

func TestProcessIncidentEvent_SignsPayload(t *testing.T) {
	// Подготовка
	const secret = "test-secret"
	var gotSignature string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testEvent()

	// Действие
	worker.processIncidentEvent(context.Background(), event, payload)

	// Проверки: подпись HMAC-SHA256 от тела запроса
	require.NotEmpty(t, gotSignature)
	assert.Equal(t, payload, string(gotBody))

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
}

func TestProcessIncidentEvent_GivesUpAfterMaxRetries(t *testing.T) {
	// Подготовка: приемник всегда отвечает 500
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testEvent()

	// Действие
	worker.processIncidentEvent(context.Background(), event, payload)

	// Проверки: ровно maxRetries попыток
	assert.Equal(t, int32(3), attempts.Load())
}
