package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/emergency_response_system/internal/jamai"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с хранилищем инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	List(ctx context.Context) ([]*models.IncidentSummary, error)
	UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) (*models.Incident, error)
	ReplaceAnalysis(ctx context.Context, incident *models.Incident) error
}

// AnalysisClient определяет контракт для удаленного AI-анализа инцидентов
type AnalysisClient interface {
	AnalyzeEmergency(ctx context.Context, report *models.EmergencyReport) (models.AnalysisResult, error)
	RecommendResources(ctx context.Context, incidentType string, severity models.Severity, location string) ([]string, error)
	GenerateDispatchPlan(ctx context.Context, analysis models.AnalysisResult, report *models.EmergencyReport) (models.DispatchPlan, error)
}

// IncidentService определяет контракт для бизнес-логики жизненного цикла инцидентов
type IncidentService interface {
	SubmitReport(ctx context.Context, report *models.EmergencyReport) (*models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	ActiveIncidents(ctx context.Context) ([]*models.IncidentSummary, error)
	UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) (*models.Incident, error)
	UpdateAnalysis(ctx context.Context, id string, details map[string]any) (*models.Incident, error)
}

type incidentService struct {
	repo      IncidentRepository
	analysis  AnalysisClient
	logger    *logrus.Logger
	publisher webhook.WebhookPublisher
}

func NewIncidentService(repo IncidentRepository, analysis AnalysisClient, logger *logrus.Logger, publisher webhook.WebhookPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		analysis:  analysis,
		logger:    logger,
		publisher: publisher,
	}
}

// SubmitReport обрабатывает поступившее сообщение: анализ, ресурсы, план
// диспетчеризации и создание инцидента со статусом ACTIVE
func (s *incidentService) SubmitReport(ctx context.Context, report *models.EmergencyReport) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "SubmitReport",
		"incident_type": report.IncidentType,
		"severity":      report.Severity,
	})
	log.Info("Processing emergency report")

	report.EnsureTimestamp(time.Now())

	analysis := s.analyzeReport(ctx, log, report)
	resources := s.recommendResources(ctx, log, report)
	plan := s.generateDispatchPlan(ctx, log, analysis, report)

	incident := &models.Incident{
		Report:        *report,
		Status:        models.StatusActive,
		Analysis:      analysis,
		DispatchPlan:  plan,
		Resources:     resources,
		PriorityScore: models.ClampPriority(analysis.RiskAssessment),
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	s.publishEvent(ctx, log, webhook.EventIncidentCreated, incident)

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return incident, nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ActiveIncidents возвращает краткий список всех отслеживаемых инцидентов
func (s *incidentService) ActiveIncidents(ctx context.Context) ([]*models.IncidentSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ActiveIncidents",
	})

	summaries, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(summaries)).Info("Incidents listed successfully")
	return summaries, nil
}

// UpdateStatus переводит инцидент в новый статус. Допустимость перехода
// проверяет хранилище под своей блокировкой, чтобы конкурирующие запросы
// не прошли проверку по устаревшему чтению.
func (s *incidentService) UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	if !status.Valid() {
		log.Warn("Rejected unknown incident status")
		return nil, fmt.Errorf("service: status %q: %w", status, models.ErrInvalidStatus)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrIncidentNotFound):
			log.WithError(err).Warn("Attempted to update status of a non-existent incident")
		case errors.Is(err, models.ErrInvalidTransition):
			log.WithError(err).Warn("Rejected illegal status transition")
		default:
			log.WithError(err).Error("Failed to update incident status in repository")
		}
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}

	s.publishEvent(ctx, log, webhook.EventStatusChanged, updated)

	log.Info("Incident status updated successfully")
	return updated, nil
}

// UpdateAnalysis вливает новые данные в сообщение и выполняет повторный анализ
func (s *incidentService) UpdateAnalysis(ctx context.Context, id string, details map[string]any) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateAnalysis",
		"incident_id": id,
	})
	log.Info("Attempting to update incident analysis")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update analysis of a non-existent incident")
		return nil, fmt.Errorf("service: incident %s not found for analysis update: %w", id, err)
	}

	incident.Report.MergeDetails(details)

	analysis := s.analyzeReport(ctx, log, &incident.Report)
	plan := s.generateDispatchPlan(ctx, log, analysis, &incident.Report)

	incident.Analysis = analysis
	incident.DispatchPlan = plan
	incident.PriorityScore = models.ClampPriority(analysis.RiskAssessment)

	if err := s.repo.ReplaceAnalysis(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to replace incident analysis in repository")
		return nil, fmt.Errorf("service: could not replace incident analysis: %w", err)
	}

	s.publishEvent(ctx, log, webhook.EventAnalysisUpdated, incident)

	log.Info("Incident analysis updated successfully")
	return incident, nil
}

// analyzeReport запрашивает анализ у JamAI и выбирает фолбэк при отказе.
// Отказ удаленного сервиса никогда не всплывает к вызывающему.
func (s *incidentService) analyzeReport(ctx context.Context, log *logrus.Entry, report *models.EmergencyReport) models.AnalysisResult {
	analysis, err := s.analysis.AnalyzeEmergency(ctx, report)
	if err == nil {
		return analysis
	}

	var malformed *jamai.MalformedResponseError
	if errors.As(err, &malformed) {
		log.WithError(err).Warn("JamAI returned unparseable analysis, using canned analysis")
		return jamai.CannedAnalysis()
	}

	log.WithError(err).Warn("JamAI analysis unavailable, using severity fallback")
	return jamai.FallbackAnalysis(report.Severity)
}

// recommendResources запрашивает ресурсы у JamAI, при отказе - таблица по умолчанию
func (s *incidentService) recommendResources(ctx context.Context, log *logrus.Entry, report *models.EmergencyReport) []string {
	resources, err := s.analysis.RecommendResources(ctx, report.IncidentType, report.Severity, report.Location)
	if err != nil {
		log.WithError(err).Warn("JamAI resource recommendation failed, using default resources")
		return jamai.DefaultResources(report.Severity)
	}
	return resources
}

// generateDispatchPlan запрашивает план диспетчеризации, при отказе - статический план
func (s *incidentService) generateDispatchPlan(ctx context.Context, log *logrus.Entry, analysis models.AnalysisResult, report *models.EmergencyReport) models.DispatchPlan {
	plan, err := s.analysis.GenerateDispatchPlan(ctx, analysis, report)
	if err != nil {
		log.WithError(err).Warn("JamAI dispatch plan generation failed, using static plan")
		return jamai.FallbackDispatchPlan()
	}
	return plan
}

// publishEvent отправляет событие жизненного цикла в очередь вебхуков.
// Ошибка публикации логируется и не влияет на результат операции.
func (s *incidentService) publishEvent(ctx context.Context, log *logrus.Entry, eventType string, incident *models.Incident) {
	if s.publisher == nil {
		return
	}

	event := webhook.NewIncidentEvent(eventType, incident)
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish incident event to webhook queue")
	}
}
