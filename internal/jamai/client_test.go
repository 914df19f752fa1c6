package jamai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer поднимает фейковый chat-completions сервер, возвращающий content
func newTestServer(t *testing.T, content string, capture *ChatRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func testClientReport() *models.EmergencyReport {
	return &models.EmergencyReport{
		IncidentType: "fire",
		Location:     "Kamunting, Perak",
		Description:  "Smoke on the second floor",
		Severity:     models.SeverityHigh,
	}
}

func TestAnalyzeEmergency_Success(t *testing.T) {
	// Подготовка
	content := `{"risk_assessment": 85, "immediate_actions": ["Evacuate"], "required_resources": ["Fire truck"], "estimated_response_time": 6, "escalation_needed": true, "confidence_score": 92}`
	var captured ChatRequest
	server := newTestServer(t, content, &captured)
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4", 5*time.Second)

	// Действие
	analysis, err := client.AnalyzeEmergency(context.Background(), testClientReport())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 85, analysis.RiskAssessment)
	assert.Equal(t, []string{"Evacuate"}, analysis.ImmediateActions)
	assert.True(t, analysis.EscalationNeeded)
	assert.Equal(t, 92, analysis.ConfidenceScore)

	// Параметры сэмплирования для анализа зафиксированы
	assert.Equal(t, "gpt-4", captured.Model)
	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, 1000, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[1].Content, "Incident Type: fire")
	assert.Contains(t, captured.Messages[1].Content, "Severity: high")
}

func TestAnalyzeEmergency_ServerError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4", 5*time.Second)

	// Действие
	_, err := client.AnalyzeEmergency(context.Background(), testClientReport())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeEmergency_TransportError(t *testing.T) {
	// Подготовка: сервер сразу закрыт
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4", time.Second)

	// Действие
	_, err := client.AnalyzeEmergency(context.Background(), testClientReport())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeEmergency_MalformedContent(t *testing.T) {
	// Подготовка: сервер ответил 200, но content - не JSON
	server := newTestServer(t, "Sorry, I cannot help with that.", nil)
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4", 5*time.Second)

	// Действие
	_, err := client.AnalyzeEmergency(context.Background(), testClientReport())

	// Проверки
	require.Error(t, err)
	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestAnalyzeEmergency_NoChoices(t *testing.T) {
	// Подготовка: пустой список choices
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4", 5*time.Second)

	// Действие
	_, err := client.AnalyzeEmergency(context.Background(), testClientReport())

	// Проверки
	require.Error(t, err)
	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestRecommendResources_Success(t *testing.T) {
	// Подготовка
	var captured ChatRequest
	server := newTestServer(t, `["Fire truck", "Ambulance", "Police unit"]`, &captured)
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4", 5*time.Second)

	// Действие
	resources, err := client.RecommendResources(context.Background(), "fire", models.SeverityHigh, "Kamunting")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"Fire truck", "Ambulance", "Police unit"}, resources)
	assert.Equal(t, 0.5, captured.Temperature)
	assert.Equal(t, 200, captured.MaxTokens)
}

func TestRecommendResources_NotAList(t *testing.T) {
	// Подготовка: content - JSON, но не массив
	server := newTestServer(t, `{"resources": ["Fire truck"]}`, nil)
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4", 5*time.Second)

	// Действие
	_, err := client.RecommendResources(context.Background(), "fire", models.SeverityHigh, "Kamunting")

	// Проверки
	require.Error(t, err)
	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestGenerateDispatchPlan_Success(t *testing.T) {
	// Подготовка
	content := `{"primary_dispatch": {"unit": "Engine-7", "eta": "4 minutes"}, "backup_dispatch": {"unit": "Engine-9", "eta": "9 minutes"}, "coordination_notes": ["Stage at north entrance"], "public_safety_alerts": [], "traffic_management": ["Close Jalan Besar"]}`
	var captured ChatRequest
	server := newTestServer(t, content, &captured)
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4", 5*time.Second)
	analysis := models.AnalysisResult{RiskAssessment: 85}

	// Действие
	plan, err := client.GenerateDispatchPlan(context.Background(), analysis, testClientReport())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Engine-7", plan.PrimaryDispatch.Unit)
	assert.Equal(t, "9 minutes", plan.BackupDispatch.ETA)
	assert.Equal(t, []string{"Close Jalan Besar"}, plan.TrafficManagement)
	assert.Equal(t, 0.6, captured.Temperature)
	assert.Equal(t, 500, captured.MaxTokens)
}
