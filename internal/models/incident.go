package models

import (
	"errors"
	"time"
)

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	StatusActive     IncidentStatus = "ACTIVE"
	StatusInProgress IncidentStatus = "IN_PROGRESS"
	StatusResolved   IncidentStatus = "RESOLVED"
	StatusCancelled  IncidentStatus = "CANCELLED"
)

var (
	// ErrIncidentNotFound возвращается, когда инцидент с указанным id отсутствует в хранилище
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrInvalidStatus возвращается, когда статус не входит в перечисление
	ErrInvalidStatus = errors.New("invalid incident status")
	// ErrInvalidTransition возвращается при недопустимом переходе между статусами
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Valid проверяет, что значение входит в перечисление статусов
func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInProgress, StatusResolved, StatusCancelled:
		return true
	}
	return false
}

// statusTransitions - таблица допустимых переходов между статусами.
// RESOLVED и CANCELLED - терминальные состояния.
var statusTransitions = map[IncidentStatus][]IncidentStatus{
	StatusActive:     {StatusInProgress, StatusResolved, StatusCancelled},
	StatusInProgress: {StatusResolved, StatusCancelled},
	StatusResolved:   {},
	StatusCancelled:  {},
}

// CanTransitionTo проверяет допустимость перехода из текущего статуса в next
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Incident - отслеживаемый инцидент: исходное сообщение плюс текущий AI-анализ и статус
type Incident struct {
	ID            string          `json:"incident_id"`
	Report        EmergencyReport `json:"report"`
	Status        IncidentStatus  `json:"status"`
	Analysis      AnalysisResult  `json:"ai_analysis"`
	DispatchPlan  DispatchPlan    `json:"dispatch_plan"`
	Resources     []string        `json:"resources_required"`
	PriorityScore int             `json:"priority_score"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IncidentSummary - краткое представление инцидента для списков
type IncidentSummary struct {
	IncidentID    string         `json:"incident_id"`
	PriorityScore int            `json:"priority_score"`
	Status        IncidentStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}
