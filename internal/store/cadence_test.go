package store

import (
	"context"
	"testing"
	"time"

	"cadence-workers/internal/common/errors"
	"cadence-workers/internal/common/logger"
	"cadence-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSteps() []models.CadenceStep {
	ref := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	return []models.CadenceStep{
		{LeadID: "lead-1", UserID: "user-1", Step: 1, Channel: "email", ScheduledAt: ref, Template: "intro"},
		{LeadID: "lead-1", UserID: "user-1", Step: 2, Channel: "phone", ScheduledAt: ref.AddDate(0, 0, 3), Template: "call"},
		{LeadID: "lead-1", UserID: "user-1", Step: 3, Channel: "other", ScheduledAt: ref.AddDate(0, 0, 7), Template: "general_followup"},
	}
}

func TestSaveCadence_AllOrNothingCommit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	steps := testSteps()

	mock.ExpectBegin()
	for range steps {
		mock.ExpectExec("INSERT INTO cadence_steps").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	s := NewCadenceStore(db, logger.NewNoOpLogger())
	persisted, err := s.SaveCadence(context.Background(), steps)

	require.NoError(t, err)
	require.Len(t, persisted, len(steps), "round-trip: persisted count equals validated count")
	for i, step := range persisted {
		assert.NotEmpty(t, step.ID, "storage-assigned identifier")
		assert.False(t, step.CreatedAt.IsZero())
		assert.Equal(t, steps[i].Channel, step.Channel)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCadence_RollbackOnMidInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	steps := testSteps()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO cadence_steps").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cadence_steps").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	s := NewCadenceStore(db, logger.NewNoOpLogger())
	persisted, err := s.SaveCadence(context.Background(), steps)

	require.Error(t, err)
	assert.Nil(t, persisted, "partial writes are not an acceptable outcome")
	assert.Equal(t, errors.ErrCodePersistenceFailed, errors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCadence_EmptyRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewCadenceStore(db, logger.NewNoOpLogger())
	_, err = s.SaveCadence(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeEmptyCadence, errors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet(), "no transaction opened for an empty set")
}

func TestListCadence(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "lead_id", "user_id", "step_number", "channel",
		"scheduled_at", "template", "completed", "skipped", "created_at",
	}).
		AddRow("id-1", "lead-1", "user-1", 1, "email", now, "intro", false, false, now).
		AddRow("id-2", "lead-1", "user-1", 2, "phone", now.AddDate(0, 0, 3), "call", false, false, now)

	mock.ExpectQuery("SELECT (.+) FROM cadence_steps").
		WithArgs("lead-1").
		WillReturnRows(rows)

	s := NewCadenceStore(db, logger.NewNoOpLogger())
	steps, err := s.ListCadence(context.Background(), "lead-1")

	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "email", steps[0].Channel)
	assert.Equal(t, 2, steps[1].Step)
	assert.NoError(t, mock.ExpectationsWereMet())
}
