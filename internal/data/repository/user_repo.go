package repository

import (
	"context"
	"fmt"

	"wellness-tracker/internal/data/entity"
	"wellness-tracker/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, user_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.UserID,
		user.CreatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("user_id", user.UserID),
		)
		return fmt.Errorf("create user %s: %w", user.UserID, err)
	}

	return nil
}

// FindByUserID returns the user with the given identifier, nil if absent
func (ur *userRepository) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	query := `
		SELECT id, user_id, created_at
		FROM users
		WHERE user_id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.UserID,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}

	return &user, nil
}
