package repository

import (
	"context"
	"fmt"

	"wellness-tracker/internal/data/entity"
	"wellness-tracker/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AffirmationRepository interface {
	Create(ctx context.Context, affirmation *entity.Affirmation) error
	FindRandom(ctx context.Context) (*entity.Affirmation, error)
	CountAll(ctx context.Context) (int64, error)
}

type affirmationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAffirmationRepository(db database.PgxIface, log *zap.Logger) AffirmationRepository {
	return &affirmationRepository{
		db:  db,
		log: log.With(zap.String("repository", "affirmation")),
	}
}

func (ar *affirmationRepository) Create(ctx context.Context, affirmation *entity.Affirmation) error {
	query := `
		INSERT INTO affirmations (id, category, text)
		VALUES ($1, $2, $3)
	`

	_, err := ar.db.Exec(ctx, query,
		affirmation.ID,
		affirmation.Category,
		affirmation.Text,
	)

	if err != nil {
		ar.log.Error("Failed to create affirmation", zap.Error(err))
		return fmt.Errorf("create affirmation: %w", err)
	}

	return nil
}

// FindRandom returns one random affirmation, nil when the table is empty
func (ar *affirmationRepository) FindRandom(ctx context.Context) (*entity.Affirmation, error) {
	query := `
		SELECT id, category, text
		FROM affirmations
		ORDER BY random()
		LIMIT 1
	`

	var affirmation entity.Affirmation
	err := ar.db.QueryRow(ctx, query).Scan(
		&affirmation.ID,
		&affirmation.Category,
		&affirmation.Text,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find random affirmation", zap.Error(err))
		return nil, fmt.Errorf("find random affirmation: %w", err)
	}

	return &affirmation, nil
}

func (ar *affirmationRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM affirmations`

	var count int64
	err := ar.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		ar.log.Error("Failed to count affirmations", zap.Error(err))
		return 0, fmt.Errorf("count affirmations: %w", err)
	}

	return count, nil
}
