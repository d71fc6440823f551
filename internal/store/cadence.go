package store

import (
	"context"
	"database/sql"
	"time"

	"cadence-workers/internal/common/errors"
	"cadence-workers/internal/common/logger"
	"cadence-workers/internal/models"

	"github.com/google/uuid"
)

// CadenceStore is the persistence gateway for cadence steps. Writes are
// all-or-nothing: the full ordered set commits in one transaction or none
// of it does.
//
// Concurrency contract: the table carries no per-lead uniqueness
// constraint. If two generations for the same lead race, both sets persist;
// callers must either serialize requests by lead identifier or read the
// latest cadence by created_at.
type CadenceStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewCadenceStore(db *sql.DB, log logger.Logger) *CadenceStore {
	return &CadenceStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "cadence-store"}),
	}
}

const insertStepQuery = `
	INSERT INTO cadence_steps
		(id, lead_id, user_id, step_number, channel, scheduled_at, template, completed, skipped, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// SaveCadence persists the ordered step set atomically and returns the
// rows with their storage-assigned identifiers.
func (s *CadenceStore) SaveCadence(ctx context.Context, steps []models.CadenceStep) ([]models.CadenceStep, error) {
	if len(steps) == 0 {
		return nil, errors.NewEmptyCadenceError()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.NewPersistenceError(err)
	}

	now := time.Now().UTC()
	persisted := make([]models.CadenceStep, len(steps))
	for i, step := range steps {
		step.ID = uuid.NewString()
		step.CreatedAt = now

		_, err := tx.ExecContext(ctx, insertStepQuery,
			step.ID, step.LeadID, step.UserID, step.Step, step.Channel,
			step.ScheduledAt, step.Template, step.Completed, step.Skipped, step.CreatedAt,
		)
		if err != nil {
			_ = tx.Rollback()
			return nil, errors.NewPersistenceError(err)
		}
		persisted[i] = step
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.NewPersistenceError(err)
	}

	s.logger.Info("cadence persisted", map[string]interface{}{
		"leadId":    steps[0].LeadID,
		"stepCount": len(steps),
	})

	return persisted, nil
}

const listStepsQuery = `
	SELECT id, lead_id, user_id, step_number, channel, scheduled_at, template, completed, skipped, created_at
	FROM cadence_steps
	WHERE lead_id = $1
	ORDER BY step_number, scheduled_at`

// ListCadence reads a lead's persisted steps back for confirmation.
func (s *CadenceStore) ListCadence(ctx context.Context, leadID string) ([]models.CadenceStep, error) {
	rows, err := s.db.QueryContext(ctx, listStepsQuery, leadID)
	if err != nil {
		return nil, errors.NewPersistenceError(err)
	}
	defer rows.Close()

	var steps []models.CadenceStep
	for rows.Next() {
		var step models.CadenceStep
		if err := rows.Scan(
			&step.ID, &step.LeadID, &step.UserID, &step.Step, &step.Channel,
			&step.ScheduledAt, &step.Template, &step.Completed, &step.Skipped, &step.CreatedAt,
		); err != nil {
			return nil, errors.NewPersistenceError(err)
		}
		steps = append(steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewPersistenceError(err)
	}

	return steps, nil
}
