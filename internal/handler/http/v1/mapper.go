package v1

import (
	"fmt"

	"github.com/shenikar/emergency_response_system/internal/models"
)

// DTOToReportModel преобразует DTO подачи сообщения в доменную модель
func DTOToReportModel(dto ReportRequest) *models.EmergencyReport {
	return &models.EmergencyReport{
		IncidentType:      dto.IncidentType,
		Location:          dto.Location,
		Description:       dto.Description,
		Severity:          models.Severity(dto.Severity),
		Timestamp:         dto.Timestamp,
		ContactInfo:       dto.ContactInfo,
		AdditionalDetails: dto.AdditionalDetails,
	}
}

// ModelToEmergencyResponse преобразует созданный инцидент в DTO ответа на подачу
func ModelToEmergencyResponse(incident *models.Incident) *EmergencyResponse {
	return &EmergencyResponse{
		IncidentID:           incident.ID,
		Status:               string(incident.Status),
		RecommendedActions:   incident.Analysis.ImmediateActions,
		ResourcesRequired:    incident.Resources,
		EstimatedArrivalTime: fmt.Sprintf("%d minutes", incident.Analysis.EstimatedResponseTime),
		PriorityScore:        incident.PriorityScore,
		AIAnalysis: AIAnalysisSummary{
			RiskAssessment:   incident.Analysis.RiskAssessment,
			EscalationNeeded: incident.Analysis.EscalationNeeded,
			ConfidenceScore:  incident.Analysis.ConfidenceScore,
			DispatchPlan:     incident.DispatchPlan,
		},
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(incident *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		IncidentID:    incident.ID,
		Report:        incident.Report,
		Status:        string(incident.Status),
		Analysis:      incident.Analysis,
		DispatchPlan:  incident.DispatchPlan,
		Resources:     incident.Resources,
		PriorityScore: incident.PriorityScore,
		CreatedAt:     incident.CreatedAt,
		UpdatedAt:     incident.UpdatedAt,
	}
}
