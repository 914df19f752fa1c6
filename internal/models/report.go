package models

import "time"

// Severity - уровень серьезности инцидента
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid проверяет, что значение является допустимым уровнем серьезности
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// EmergencyReport представляет поступившее сообщение о чрезвычайной ситуации
type EmergencyReport struct {
	IncidentType      string         `json:"incident_type"`
	Location          string         `json:"location"`
	Description       string         `json:"description"`
	Severity          Severity       `json:"severity"`
	Timestamp         string         `json:"timestamp,omitempty"`
	ContactInfo       string         `json:"contact_info,omitempty"`
	AdditionalDetails map[string]any `json:"additional_details,omitempty"`
}

// EnsureTimestamp проставляет текущее время UTC, если отметка не была передана
func (r *EmergencyReport) EnsureTimestamp(now time.Time) {
	if r.Timestamp == "" {
		r.Timestamp = now.UTC().Format(time.RFC3339)
	}
}

// MergeDetails выполняет поверхностное слияние новых данных в additional_details.
// Если исходная карта отсутствует, additional_details становится равной details.
func (r *EmergencyReport) MergeDetails(details map[string]any) {
	if r.AdditionalDetails == nil {
		r.AdditionalDetails = make(map[string]any, len(details))
	}
	for k, v := range details {
		r.AdditionalDetails[k] = v
	}
}
