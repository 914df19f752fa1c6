package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	handler.RegisterRootRoutes(router)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func sampleIncident() *models.Incident {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &models.Incident{
		ID: "INC-20240501120000-1",
		Report: models.EmergencyReport{
			IncidentType: "fire",
			Location:     "Main street 5",
			Description:  "Building on fire",
			Severity:     models.SeverityHigh,
		},
		Status: models.StatusActive,
		Analysis: models.AnalysisResult{
			RiskAssessment:        80,
			ImmediateActions:      []string{"Evacuate the area"},
			RequiredResources:     []string{"Fire truck"},
			EstimatedResponseTime: 6,
			EscalationNeeded:      true,
			ConfidenceScore:       90,
		},
		DispatchPlan: models.DispatchPlan{
			PrimaryDispatch: models.DispatchUnit{Unit: "Unit-1", ETA: "5 minutes"},
		},
		Resources:     []string{"Fire truck", "Ambulance"},
		PriorityScore: 80,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestSubmitReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := sampleIncident()
	reqBody := ReportRequest{
		IncidentType: "fire",
		Location:     "Main street 5",
		Description:  "Building on fire",
		Severity:     "high",
	}

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(incident, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/emergency/report", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EmergencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incident.ID, resp.IncidentID)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, incident.Analysis.ImmediateActions, resp.RecommendedActions)
	assert.Equal(t, incident.Resources, resp.ResourcesRequired)
	assert.Equal(t, "6 minutes", resp.EstimatedArrivalTime)
	assert.Equal(t, 80, resp.PriorityScore)
	assert.Equal(t, 80, resp.AIAnalysis.RiskAssessment)
	assert.True(t, resp.AIAnalysis.EscalationNeeded)
}

func TestSubmitReport_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/emergency/report", bytes.NewBufferString(`{"incident_type": "fire"`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSubmitReport_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := ReportRequest{ // Недопустимая важность
		IncidentType: "fire",
		Location:     "Main street 5",
		Description:  "Building on fire",
		Severity:     "catastrophic",
	}

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/emergency/report", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Severity")
}

func TestSubmitReport_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := ReportRequest{
		IncidentType: "fire",
		Location:     "Main street 5",
		Description:  "Building on fire",
		Severity:     "high",
	}

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("storage failure")).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/emergency/report", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := sampleIncident()

	mockService.EXPECT().
		GetIncident(gomock.Any(), incident.ID).
		Return(incident, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/emergency/incident/%s", incident.ID), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incident.ID, resp.IncidentID)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, incident.Report.IncidentType, resp.Report.IncidentType)
	assert.Equal(t, incident.Analysis.RiskAssessment, resp.Analysis.RiskAssessment)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetIncident(gomock.Any(), "INC-unknown").
		Return(nil, models.ErrIncidentNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/emergency/incident/INC-unknown", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestActiveIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	summaries := []*models.IncidentSummary{
		{IncidentID: "INC-20240501120000-1", PriorityScore: 80, Status: models.StatusActive},
		{IncidentID: "INC-20240501120000-2", PriorityScore: 50, Status: models.StatusResolved},
	}

	mockService.EXPECT().
		ActiveIncidents(gomock.Any()).
		Return(summaries, nil).Times(1)

	w := makeRequest(router, "GET", "/api/emergency/active-incidents", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ActiveIncidentsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalActive)
	require.Len(t, resp.Incidents, 2)
	assert.Equal(t, "INC-20240501120000-1", resp.Incidents[0].IncidentID)
}

func TestUpdateStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := sampleIncident()
	incident.Status = models.StatusInProgress

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), incident.ID, models.StatusInProgress).
		Return(incident, nil).Times(1)

	body := bytes.NewBufferString(`{"status": "IN_PROGRESS"}`)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/emergency/incident/%s/status", incident.ID), body, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp UpdateStatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incident.ID, resp.IncidentID)
	assert.Equal(t, "IN_PROGRESS", resp.Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), "INC-1", models.IncidentStatus("PAUSED")).
		Return(nil, models.ErrInvalidStatus).Times(1)

	body := bytes.NewBufferString(`{"status": "PAUSED"}`)
	w := makeRequest(router, "PUT", "/api/emergency/incident/INC-1/status", body, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), "INC-unknown", models.StatusResolved).
		Return(nil, models.ErrIncidentNotFound).Times(1)

	body := bytes.NewBufferString(`{"status": "RESOLVED"}`)
	w := makeRequest(router, "PUT", "/api/emergency/incident/INC-unknown/status", body, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), "INC-1", models.StatusActive).
		Return(nil, models.ErrInvalidTransition).Times(1)

	body := bytes.NewBufferString(`{"status": "ACTIVE"}`)
	w := makeRequest(router, "PUT", "/api/emergency/incident/INC-1/status", body, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "illegal status transition")
}

func TestUpdateStatus_MissingStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := bytes.NewBufferString(`{}`)
	w := makeRequest(router, "PUT", "/api/emergency/incident/INC-1/status", body, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAnalysis_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := sampleIncident()
	incident.Report.AdditionalDetails = map[string]any{"people_trapped": float64(3)}

	mockService.EXPECT().
		UpdateAnalysis(gomock.Any(), incident.ID, map[string]any{"people_trapped": float64(3)}).
		Return(incident, nil).Times(1)

	body := bytes.NewBufferString(`{"people_trapped": 3}`)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/emergency/update-analysis/%s", incident.ID), body, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incident.ID, resp.IncidentID)
	assert.Equal(t, float64(3), resp.Report.AdditionalDetails["people_trapped"])
}

func TestUpdateAnalysis_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateAnalysis(gomock.Any(), "INC-unknown", gomock.Any()).
		Return(nil, models.ErrIncidentNotFound).Times(1)

	body := bytes.NewBufferString(`{"people_trapped": 3}`)
	w := makeRequest(router, "POST", "/api/emergency/update-analysis/INC-unknown", body, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestHealthCheck_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ActiveIncidents(gomock.Any()).
		Return([]*models.IncidentSummary{{IncidentID: "INC-1"}}, nil).Times(1)

	// Health-check не требует API-ключа
	w := makeRequest(router, "GET", "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, serviceName, resp.Service)
	assert.Equal(t, 1, resp.ActiveIncidents)
}

func TestIndex_ListsEndpoints(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), serviceName)
	assert.Contains(t, w.Body.String(), "POST /api/emergency/report")
}

func TestAuth_MissingAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ActiveIncidents(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/emergency/active-incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAuth_InvalidAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ActiveIncidents(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/emergency/active-incidents", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ActiveIncidents(gomock.Any()).
		Return([]*models.IncidentSummary{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/emergency/active-incidents", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}
