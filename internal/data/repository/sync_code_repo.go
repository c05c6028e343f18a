package repository

import (
	"context"
	"fmt"

	"wellness-tracker/internal/data/entity"
	"wellness-tracker/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SyncCodeRepository interface {
	Create(ctx context.Context, code *entity.SyncCode) error
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.SyncCode, error)
	FindByCode(ctx context.Context, code string) (*entity.SyncCode, error)
	FindAll(ctx context.Context) ([]*entity.SyncCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
}

type syncCodeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSyncCodeRepository(db database.PgxIface, log *zap.Logger) SyncCodeRepository {
	return &syncCodeRepository{
		db:  db,
		log: log.With(zap.String("repository", "sync_code")),
	}
}

// Create appends a sync code row. Rows are never updated afterwards.
func (r *syncCodeRepository) Create(ctx context.Context, code *entity.SyncCode) error {
	query := `
		INSERT INTO sync_codes (id, code, owner_id, validity_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		code.ID,
		code.Code,
		code.OwnerID,
		code.ValidityMinutes,
		code.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create sync code",
			zap.Error(err),
			zap.String("owner_id", code.OwnerID),
		)
		return fmt.Errorf("create sync code for %s: %w", code.OwnerID, err)
	}

	return nil
}

// FindByOwner returns every sync code row for an owner, unordered.
func (r *syncCodeRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.SyncCode, error) {
	query := `
		SELECT id, code, owner_id, validity_minutes, created_at
		FROM sync_codes
		WHERE owner_id = $1
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find sync codes by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID),
		)
		return nil, fmt.Errorf("find sync codes for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return scanSyncCodes(rows)
}

// FindByCode returns at most one row for a code value. The code column
// has no uniqueness constraint (a cross-owner SHA-256 collision is
// accepted risk), so the oldest row is picked deterministically.
func (r *syncCodeRepository) FindByCode(ctx context.Context, code string) (*entity.SyncCode, error) {
	query := `
		SELECT id, code, owner_id, validity_minutes, created_at
		FROM sync_codes
		WHERE code = $1
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`

	var sc entity.SyncCode
	err := r.db.QueryRow(ctx, query, code).Scan(
		&sc.ID,
		&sc.Code,
		&sc.OwnerID,
		&sc.ValidityMinutes,
		&sc.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find sync code", zap.Error(err))
		return nil, fmt.Errorf("find sync code: %w", err)
	}

	return &sc, nil
}

// FindAll does a full scan. Only the cleanup job calls this.
func (r *syncCodeRepository) FindAll(ctx context.Context) ([]*entity.SyncCode, error) {
	query := `
		SELECT id, code, owner_id, validity_minutes, created_at
		FROM sync_codes
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list sync codes", zap.Error(err))
		return nil, fmt.Errorf("list sync codes: %w", err)
	}
	defer rows.Close()

	return scanSyncCodes(rows)
}

// Delete removes a sync code row. Deleting an already-removed row is
// not an error: the cleanup job and request handlers may race on the
// same row and the loser must not fail.
func (r *syncCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sync_codes WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete sync code",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete sync code %s: %w", id.String(), err)
	}

	return nil
}

// DeleteMany removes a batch of rows in one statement so a cleanup run
// commits as a single unit.
func (r *syncCodeRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM sync_codes WHERE id = ANY($1)`

	_, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to delete sync codes",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return fmt.Errorf("delete %d sync codes: %w", len(ids), err)
	}

	return nil
}

func scanSyncCodes(rows pgx.Rows) ([]*entity.SyncCode, error) {
	var codes []*entity.SyncCode
	for rows.Next() {
		var sc entity.SyncCode
		err := rows.Scan(
			&sc.ID,
			&sc.Code,
			&sc.OwnerID,
			&sc.ValidityMinutes,
			&sc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sync code row: %w", err)
		}
		codes = append(codes, &sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sync code rows: %w", err)
	}

	return codes, nil
}
