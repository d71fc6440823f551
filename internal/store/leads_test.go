package store

import (
	"context"
	"encoding/json"
	"testing"

	"cadence-workers/internal/common/errors"
	"cadence-workers/internal/common/logger"
	"cadence-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leadColumns() []string {
	return []string{
		"id", "user_id", "name", "owner_name", "category", "city", "website",
		"phone", "email", "instagram", "facebook", "tiktok", "linkedin",
		"rating", "review_count", "lead_score", "ai_briefing",
	}
}

func leadRow() *sqlmock.Rows {
	return sqlmock.NewRows(leadColumns()).AddRow(
		"lead-1", "user-1", "Joe's Pizza", "Joe", "Restaurant", "Austin",
		"https://joes.example", "+1 555 0100", "joe@example.com",
		"@joespizza", "", "", "", 4.2, 87, 74, "busy lunch spot")
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestGetLead_ReadsFromPostgresAndCaches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr, rdb := setupRedis(t)

	mock.ExpectQuery("SELECT (.+) FROM leads").
		WithArgs("lead-1").
		WillReturnRows(leadRow())

	s := NewLeadStore(db, rdb, logger.NewNoOpLogger())
	lead, err := s.GetLead(context.Background(), "lead-1")

	require.NoError(t, err)
	assert.Equal(t, "Joe's Pizza", lead.Name)
	assert.Equal(t, "Austin", lead.City)
	assert.Equal(t, 4.2, lead.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())

	cached, err := mr.Get("lead:lead-1")
	require.NoError(t, err, "lead cached after the database read")
	var fromCache models.Lead
	require.NoError(t, json.Unmarshal([]byte(cached), &fromCache))
	assert.Equal(t, lead.ID, fromCache.ID)
}

func TestGetLead_CacheHitSkipsPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr, rdb := setupRedis(t)

	cached, _ := json.Marshal(&models.Lead{ID: "lead-1", Name: "Cached Pizza"})
	require.NoError(t, mr.Set("lead:lead-1", string(cached)))

	s := NewLeadStore(db, rdb, logger.NewNoOpLogger())
	lead, err := s.GetLead(context.Background(), "lead-1")

	require.NoError(t, err)
	assert.Equal(t, "Cached Pizza", lead.Name)
	assert.NoError(t, mock.ExpectationsWereMet(), "no database query on cache hit")
}

func TestGetLead_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM leads").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(leadColumns()))

	s := NewLeadStore(db, nil, logger.NewNoOpLogger())
	lead, err := s.GetLead(context.Background(), "ghost")

	require.Error(t, err)
	assert.Nil(t, lead)
	assert.Equal(t, errors.ErrCodeLeadNotFound, errors.CodeOf(err))
	assert.True(t, errors.IsClientError(err))
}

func TestGetLead_RedisDownDegradesToPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr, rdb := setupRedis(t)
	mr.Close() // cache unreachable

	mock.ExpectQuery("SELECT (.+) FROM leads").
		WithArgs("lead-1").
		WillReturnRows(leadRow())

	s := NewLeadStore(db, rdb, logger.NewNoOpLogger())
	lead, err := s.GetLead(context.Background(), "lead-1")

	require.NoError(t, err, "cache failures must not surface")
	assert.Equal(t, "lead-1", lead.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
