package models

// AnalysisResult - результат AI-анализа инцидента
type AnalysisResult struct {
	RiskAssessment        int      `json:"risk_assessment"`
	ImmediateActions      []string `json:"immediate_actions"`
	RequiredResources     []string `json:"required_resources"`
	EstimatedResponseTime int      `json:"estimated_response_time"`
	EscalationNeeded      bool     `json:"escalation_needed"`
	ConfidenceScore       int      `json:"confidence_score"`
}

// DispatchUnit - назначенная единица реагирования и ее ETA
type DispatchUnit struct {
	Unit string `json:"unit"`
	ETA  string `json:"eta"`
}

// DispatchPlan - план диспетчеризации, сгенерированный AI или фолбэком
type DispatchPlan struct {
	PrimaryDispatch    DispatchUnit `json:"primary_dispatch"`
	BackupDispatch     DispatchUnit `json:"backup_dispatch"`
	CoordinationNotes  []string     `json:"coordination_notes"`
	PublicSafetyAlerts []string     `json:"public_safety_alerts"`
	TrafficManagement  []string     `json:"traffic_management"`
}

// ClampPriority приводит оценку риска к допустимому диапазону [0, 100]
func ClampPriority(risk int) int {
	if risk < 0 {
		return 0
	}
	if risk > 100 {
		return 100
	}
	return risk
}
