package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hexadigitall/platform/internal/app/models"
)

// AnalyticsRepository persists analytics events
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Insert stores a single event. Metadata is stored as jsonb.
func (r *AnalyticsRepository) Insert(ctx context.Context, event *models.Event) error {
	metadata := []byte("{}")
	if len(event.Metadata) > 0 {
		encoded, err := json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("error encoding event metadata: %w", err)
		}
		metadata = encoded
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO events (event_type, path, session_id, metadata)
		VALUES ($1, $2, $3, $4)`,
		event.Type, event.Path, event.SessionID, metadata)
	if err != nil {
		return fmt.Errorf("error inserting event: %w", err)
	}
	return nil
}
