// Package store is the only code permitted to talk to the datastore: lead
// reads on one side, cadence persistence on the other.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"cadence-workers/internal/common/errors"
	"cadence-workers/internal/common/logger"
	"cadence-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

const leadCacheTTL = 10 * time.Minute

// LeadStore reads lead records through a redis cache backed by postgres.
// Cache failures degrade silently to the database read.
type LeadStore struct {
	db     *sql.DB
	redis  *redis.Client
	logger logger.Logger
}

func NewLeadStore(db *sql.DB, rdb *redis.Client, log logger.Logger) *LeadStore {
	return &LeadStore{
		db:     db,
		redis:  rdb,
		logger: log.WithFields(map[string]interface{}{"component": "lead-store"}),
	}
}

const leadQuery = `
	SELECT id, user_id, COALESCE(name, ''), COALESCE(owner_name, ''),
	       COALESCE(category, ''), COALESCE(city, ''), COALESCE(website, ''),
	       COALESCE(phone, ''), COALESCE(email, ''),
	       COALESCE(instagram, ''), COALESCE(facebook, ''),
	       COALESCE(tiktok, ''), COALESCE(linkedin, ''),
	       COALESCE(rating, 0), COALESCE(review_count, 0),
	       COALESCE(lead_score, 0), COALESCE(ai_briefing, '')
	FROM leads WHERE id = $1`

// GetLead fetches one lead by identifier. A missing row is a
// LEAD_NOT_FOUND client error.
func (s *LeadStore) GetLead(ctx context.Context, leadID string) (*models.Lead, error) {
	cacheKey := "lead:" + leadID
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var lead models.Lead
			if err := json.Unmarshal([]byte(val), &lead); err == nil {
				return &lead, nil
			}
		}
	}

	row := s.db.QueryRowContext(ctx, leadQuery, leadID)

	var lead models.Lead
	err := row.Scan(
		&lead.ID, &lead.UserID, &lead.Name, &lead.OwnerName,
		&lead.Category, &lead.City, &lead.Website,
		&lead.Phone, &lead.Email,
		&lead.Instagram, &lead.Facebook,
		&lead.TikTok, &lead.LinkedIn,
		&lead.Rating, &lead.ReviewCount,
		&lead.LeadScore, &lead.AIBriefing,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewLeadNotFoundError(leadID)
	}
	if err != nil {
		return nil, errors.NewPersistenceError(err)
	}

	if s.redis != nil {
		if data, err := json.Marshal(&lead); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, leadCacheTTL).Err(); err != nil {
				s.logger.Warn("lead cache write failed", map[string]interface{}{
					"leadId": leadID,
					"error":  err.Error(),
				})
			}
		}
	}

	return &lead, nil
}
