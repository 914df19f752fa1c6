package v1

import (
	"time"

	"github.com/shenikar/emergency_response_system/internal/models"
)

// ReportRequest DTO для подачи сообщения о чрезвычайной ситуации
// @Description DTO для подачи сообщения о чрезвычайной ситуации
type ReportRequest struct {
	IncidentType      string         `json:"incident_type" validate:"required,min=2,max=255"`
	Location          string         `json:"location" validate:"required,min=2,max=255"`
	Description       string         `json:"description" validate:"required"`
	Severity          string         `json:"severity" validate:"required,oneof=low medium high critical"`
	Timestamp         string         `json:"timestamp,omitempty"`
	ContactInfo       string         `json:"contact_info,omitempty"`
	AdditionalDetails map[string]any `json:"additional_details,omitempty"`
}

// UpdateStatusRequest DTO для обновления статуса инцидента
// @Description DTO для обновления статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AIAnalysisSummary - сводка AI-анализа в ответе на подачу сообщения
type AIAnalysisSummary struct {
	RiskAssessment   int                 `json:"risk_assessment"`
	EscalationNeeded bool                `json:"escalation_needed"`
	ConfidenceScore  int                 `json:"confidence_score"`
	DispatchPlan     models.DispatchPlan `json:"dispatch_plan"`
}

// EmergencyResponse DTO для ответа на подачу сообщения
// @Description DTO для ответа на подачу сообщения о чрезвычайной ситуации
type EmergencyResponse struct {
	IncidentID           string            `json:"incident_id"`
	Status               string            `json:"status"`
	RecommendedActions   []string          `json:"recommended_actions"`
	ResourcesRequired    []string          `json:"resources_required"`
	EstimatedArrivalTime string            `json:"estimated_arrival_time"`
	PriorityScore        int               `json:"priority_score"`
	AIAnalysis           AIAnalysisSummary `json:"ai_analysis"`
}

// IncidentResponse DTO для ответа с полной информацией об инциденте
// @Description DTO для ответа с полной информацией об инциденте
type IncidentResponse struct {
	IncidentID    string                 `json:"incident_id"`
	Report        models.EmergencyReport `json:"report"`
	Status        string                 `json:"status"`
	Analysis      models.AnalysisResult  `json:"ai_analysis"`
	DispatchPlan  models.DispatchPlan    `json:"dispatch_plan"`
	Resources     []string               `json:"resources_required"`
	PriorityScore int                    `json:"priority_score"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// UpdateStatusResponse DTO для ответа на обновление статуса
// @Description DTO для ответа на обновление статуса
type UpdateStatusResponse struct {
	IncidentID string    `json:"incident_id"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ActiveIncidentsResponse DTO для списка отслеживаемых инцидентов
// @Description DTO для списка отслеживаемых инцидентов
type ActiveIncidentsResponse struct {
	TotalActive int                       `json:"total_active"`
	Incidents   []*models.IncidentSummary `json:"incidents"`
}

// HealthResponse DTO для ответа health-check
// @Description DTO для ответа health-check
type HealthResponse struct {
	Status          string `json:"status"`
	Service         string `json:"service"`
	Timestamp       string `json:"timestamp"`
	ActiveIncidents int    `json:"active_incidents"`
}
