package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

// MemoryIncidentRepository - хранилище инцидентов в памяти процесса.
// Карта защищена единственным мьютексом, счетчик монотонно растет,
// инциденты никогда не удаляются. Через границу хранилища проходят
// только глубокие копии: карта деталей и срезы не разделяются между
// вызывающим и хранимым значением.
type MemoryIncidentRepository struct {
	mu        sync.Mutex
	incidents map[string]*models.Incident
	order     []string
	counter   int64
}

func NewMemoryIncidentRepository() service.IncidentRepository {
	return &MemoryIncidentRepository{
		incidents: make(map[string]*models.Incident),
	}
}

// cloneIncident возвращает глубокую копию инцидента: additional_details
// и все срезы копируются, чтобы мутации за пределами мьютекса не
// затрагивали хранимое значение
func cloneIncident(src *models.Incident) *models.Incident {
	dst := *src

	if src.Report.AdditionalDetails != nil {
		details := make(map[string]any, len(src.Report.AdditionalDetails))
		for k, v := range src.Report.AdditionalDetails {
			details[k] = v
		}
		dst.Report.AdditionalDetails = details
	}

	dst.Resources = append([]string(nil), src.Resources...)
	dst.Analysis.ImmediateActions = append([]string(nil), src.Analysis.ImmediateActions...)
	dst.Analysis.RequiredResources = append([]string(nil), src.Analysis.RequiredResources...)
	dst.DispatchPlan.CoordinationNotes = append([]string(nil), src.DispatchPlan.CoordinationNotes...)
	dst.DispatchPlan.PublicSafetyAlerts = append([]string(nil), src.DispatchPlan.PublicSafetyAlerts...)
	dst.DispatchPlan.TrafficManagement = append([]string(nil), src.DispatchPlan.TrafficManagement...)

	return &dst
}

// Create выделяет следующий номер счетчика, формирует id и сохраняет копию инцидента.
// Операция не может завершиться ошибкой.
func (r *MemoryIncidentRepository) Create(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.counter++
	incident.ID = fmt.Sprintf("INC-%s-%d", now.Format("20060102150405"), r.counter)
	incident.CreatedAt = now
	incident.UpdatedAt = now

	r.incidents[incident.ID] = cloneIncident(incident)
	r.order = append(r.order, incident.ID)
	return nil
}

// GetByID возвращает копию инцидента по его id
func (r *MemoryIncidentRepository) GetByID(_ context.Context, id string) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrIncidentNotFound)
	}

	return cloneIncident(stored), nil
}

// List возвращает краткие сведения об инцидентах в порядке создания
func (r *MemoryIncidentRepository) List(_ context.Context) ([]*models.IncidentSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := make([]*models.IncidentSummary, 0, len(r.order))
	for _, id := range r.order {
		incident := r.incidents[id]
		summaries = append(summaries, &models.IncidentSummary{
			IncidentID:    incident.ID,
			PriorityScore: incident.PriorityScore,
			Status:        incident.Status,
			CreatedAt:     incident.CreatedAt,
		})
	}
	return summaries, nil
}

// UpdateStatus проверяет допустимость перехода и перезаписывает статус
// инцидента. Проверка и запись выполняются под одним захватом мьютекса,
// поэтому конкурирующие обновления не могут увести инцидент из
// терминального состояния.
func (r *MemoryIncidentRepository) UpdateStatus(_ context.Context, id string, status models.IncidentStatus) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrIncidentNotFound)
	}

	if !stored.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("transition %s -> %s for incident %s: %w", stored.Status, status, id, models.ErrInvalidTransition)
	}

	stored.Status = status
	stored.UpdatedAt = time.Now().UTC()

	return cloneIncident(stored), nil
}

// ReplaceAnalysis замещает сообщение, анализ и план диспетчеризации инцидента
func (r *MemoryIncidentRepository) ReplaceAnalysis(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.incidents[incident.ID]
	if !ok {
		return fmt.Errorf("incident with id %s: %w", incident.ID, models.ErrIncidentNotFound)
	}

	replacement := cloneIncident(incident)
	replacement.Status = stored.Status
	replacement.CreatedAt = stored.CreatedAt
	replacement.UpdatedAt = time.Now().UTC()
	r.incidents[incident.ID] = replacement

	incident.CreatedAt = replacement.CreatedAt
	incident.UpdatedAt = replacement.UpdatedAt
	return nil
}
