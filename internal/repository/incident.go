package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

const incidentCacheTTL = 5 * time.Minute

// IncidentRepository - хранилище инцидентов в PostgreSQL с кэшем в Redis
type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// incidentRow - вспомогательная структура для сериализации jsonb колонок
type incidentRow struct {
	report   []byte
	analysis []byte
	plan     []byte
	res      []byte
}

func marshalIncident(incident *models.Incident) (*incidentRow, error) {
	report, err := json.Marshal(incident.Report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	analysis, err := json.Marshal(incident.Analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	plan, err := json.Marshal(incident.DispatchPlan)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dispatch plan: %w", err)
	}
	res, err := json.Marshal(incident.Resources)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resources: %w", err)
	}
	return &incidentRow{report: report, analysis: analysis, plan: plan, res: res}, nil
}

func (row *incidentRow) unmarshalInto(incident *models.Incident) error {
	if err := json.Unmarshal(row.report, &incident.Report); err != nil {
		return fmt.Errorf("failed to unmarshal report: %w", err)
	}
	if err := json.Unmarshal(row.analysis, &incident.Analysis); err != nil {
		return fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	if err := json.Unmarshal(row.plan, &incident.DispatchPlan); err != nil {
		return fmt.Errorf("failed to unmarshal dispatch plan: %w", err)
	}
	if err := json.Unmarshal(row.res, &incident.Resources); err != nil {
		return fmt.Errorf("failed to unmarshal resources: %w", err)
	}
	return nil
}

// Create создает новую запись об инциденте в бд.
// Номер счетчика выделяется из последовательности, id формируется по нему.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	var counter int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('incident_counter_seq');`).Scan(&counter); err != nil {
		return fmt.Errorf("failed to allocate incident counter: %w", err)
	}

	incident.ID = fmt.Sprintf("INC-%s-%d", time.Now().UTC().Format("20060102150405"), counter)

	row, err := marshalIncident(incident)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO incidents (id, counter, report, status, analysis, dispatch_plan, resources, priority_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		incident.ID,
		counter,
		row.report,
		incident.Status,
		row.analysis,
		row.plan,
		row.res,
		incident.PriorityScore,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его id, сначала пробуя кэш
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	if cached, err := r.getIncidentFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	incident := &models.Incident{}
	row := &incidentRow{}
	query := `
		SELECT
			id,
			report,
			status,
			analysis,
			dispatch_plan,
			resources,
			priority_score,
			created_at,
			updated_at
		FROM incidents
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&row.report,
		&incident.Status,
		&row.analysis,
		&row.plan,
		&row.res,
		&incident.PriorityScore,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}

	if err := row.unmarshalInto(incident); err != nil {
		return nil, err
	}

	// Ошибку записи кэша игнорируем: чтение из бд уже успешно
	_ = r.setIncidentCache(ctx, incident)

	return incident, nil
}

// List возвращает краткие сведения об инцидентах в порядке создания
func (r *IncidentRepository) List(ctx context.Context) ([]*models.IncidentSummary, error) {
	query := `
		SELECT
			id,
			priority_score,
			status,
			created_at
		FROM incidents
		ORDER BY counter ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	summaries := make([]*models.IncidentSummary, 0)
	for rows.Next() {
		summary := &models.IncidentSummary{}
		err := rows.Scan(
			&summary.IncidentID,
			&summary.PriorityScore,
			&summary.Status,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident summary row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return summaries, nil
}

// UpdateStatus проверяет допустимость перехода и перезаписывает статус
// инцидента. Текущий статус читается с блокировкой строки, поэтому
// конкурирующие обновления не могут увести инцидент из терминального
// состояния.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) (*models.Incident, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin status update transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current models.IncidentStatus
	err = tx.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1 FOR UPDATE;`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to read incident status: %w", err)
	}

	if !current.CanTransitionTo(status) {
		return nil, fmt.Errorf("transition %s -> %s for incident %s: %w", current, status, id, models.ErrInvalidTransition)
	}

	query := `
		UPDATE incidents SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	if _, err := tx.Exec(ctx, query, status, id); err != nil {
		return nil, fmt.Errorf("failed to update incident status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	if err := r.invalidateIncidentCache(ctx, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// ReplaceAnalysis замещает сообщение, анализ и план диспетчеризации инцидента
func (r *IncidentRepository) ReplaceAnalysis(ctx context.Context, incident *models.Incident) error {
	row, err := marshalIncident(incident)
	if err != nil {
		return err
	}

	query := `
		UPDATE incidents SET
			report = $1,
			analysis = $2,
			dispatch_plan = $3,
			resources = $4,
			priority_score = $5,
			updated_at = NOW()
		WHERE id = $6 RETURNING updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		row.report,
		row.analysis,
		row.plan,
		row.res,
		incident.PriorityScore,
		incident.ID,
	).Scan(&incident.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("incident with id %s: %w", incident.ID, models.ErrIncidentNotFound)
		}
		return fmt.Errorf("failed to replace incident analysis: %w", err)
	}

	return r.invalidateIncidentCache(ctx, incident.ID)
}

// getIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) getIncidentFromCache(ctx context.Context, id string) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// setIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) setIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID)
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// invalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) invalidateIncidentCache(ctx context.Context, id string) error {
	key := fmt.Sprintf("incident:%s", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
