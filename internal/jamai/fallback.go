package jamai

import "github.com/shenikar/emergency_response_system/internal/models"

// Статические фолбэки - единственный механизм восстановления после отказа JamAI.
// Значения зафиксированы по уровню серьезности и полностью детерминированы.

// severityRiskMap - оценка риска по уровню серьезности
var severityRiskMap = map[models.Severity]int{
	models.SeverityCritical: 95,
	models.SeverityHigh:     75,
	models.SeverityMedium:   50,
	models.SeverityLow:      25,
}

// defaultResourcesMap - ресурсы по умолчанию по уровню серьезности
var defaultResourcesMap = map[models.Severity][]string{
	models.SeverityCritical: {"Ambulance", "Fire truck", "Police units", "Hazmat team"},
	models.SeverityHigh:     {"Ambulance", "Fire truck", "Police unit"},
	models.SeverityMedium:   {"Ambulance", "Police unit"},
	models.SeverityLow:      {"Standard ambulance"},
}

// FallbackAnalysis возвращает фолбэк-анализ по уровню серьезности инцидента
func FallbackAnalysis(severity models.Severity) models.AnalysisResult {
	risk, ok := severityRiskMap[severity]
	if !ok {
		risk = 50
	}

	escalate := severity == models.SeverityCritical || severity == models.SeverityHigh
	responseTime := 10
	if escalate {
		responseTime = 5
	}

	return models.AnalysisResult{
		RiskAssessment: risk,
		ImmediateActions: []string{
			"Scene assessment",
			"Emergency services coordination",
			"Public safety measures",
		},
		RequiredResources:     []string{"Ambulance", "Fire Department", "Police"},
		EstimatedResponseTime: responseTime,
		EscalationNeeded:      escalate,
		ConfidenceScore:       70,
	}
}

// CannedAnalysis возвращает фиксированный анализ, используемый когда JamAI
// ответил успешно, но содержимое не удалось разобрать как JSON
func CannedAnalysis() models.AnalysisResult {
	return models.AnalysisResult{
		RiskAssessment:        75,
		ImmediateActions:      []string{"Assess scene safety", "Call for additional units"},
		RequiredResources:     []string{"Ambulance", "Fire truck", "Police unit"},
		EstimatedResponseTime: 8,
		EscalationNeeded:      true,
		ConfidenceScore:       60,
	}
}

// DefaultResources возвращает ресурсы по умолчанию для уровня серьезности
func DefaultResources(severity models.Severity) []string {
	if resources, ok := defaultResourcesMap[severity]; ok {
		return append([]string(nil), resources...)
	}
	return []string{"Standard ambulance"}
}

// FallbackDispatchPlan возвращает фиксированный план диспетчеризации
func FallbackDispatchPlan() models.DispatchPlan {
	return models.DispatchPlan{
		PrimaryDispatch: models.DispatchUnit{Unit: "Unit-1", ETA: "5 minutes"},
		BackupDispatch:  models.DispatchUnit{Unit: "Unit-2", ETA: "8 minutes"},
		CoordinationNotes: []string{
			"Scene assessment priority",
			"Communication with caller",
			"Traffic management",
		},
		PublicSafetyAlerts: []string{"Road closure notice"},
		TrafficManagement:  []string{"Redirect traffic"},
	}
}
