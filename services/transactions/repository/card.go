package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/database"
	"github.com/edupagos/backoffice/internal/pkg/logger"
	"github.com/edupagos/backoffice/internal/pkg/models"
)

// CardRepository resolves card configurations, serving the sat flag from a
// Redis cache when possible since it is consulted on every folio decision.
// The cache is best effort: a cold or unreachable cache falls through to
// the database.
type CardRepository struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewCardRepository creates a new card repository. cache may be nil.
func NewCardRepository(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *CardRepository {
	return &CardRepository{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

func cardCacheKey(id int64) string {
	return fmt.Sprintf("card:%d", id)
}

// GetByID retrieves a card configuration.
func (r *CardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, cardCacheKey(id)); err == nil {
			var card models.Card
			if err := json.Unmarshal([]byte(cached), &card); err == nil {
				return &card, nil
			}
		}
	}

	query := `SELECT id, name, code, sat, created_at, updated_at FROM cards WHERE id = $1`

	var card models.Card
	err := r.db.GetContext(ctx, &card, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("card %d: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	if r.cache != nil {
		ttl := time.Duration(r.cfg.Redis.CardTTLSeconds) * time.Second
		if data, err := json.Marshal(card); err == nil {
			if err := r.cache.Set(ctx, cardCacheKey(id), data, ttl); err != nil {
				logger.Warn("Failed to cache card", logger.Int64("card_id", id), logger.Err(err))
			}
		}
	}

	return &card, nil
}
