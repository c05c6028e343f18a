package usecase

import (
	"context"
	"fmt"
	"time"

	"wellness-tracker/internal/data/entity"
	"wellness-tracker/internal/data/repository"
	"wellness-tracker/internal/dto/response"
	"wellness-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context) (*response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

// Register creates an anonymous account. The returned user_id is the
// identifier devices present with every subsequent request.
func (s *userService) Register(ctx context.Context) (*response.UserResponse, error) {
	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		UserID: utils.GenerateUUIDString(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered", zap.String("user_id", user.UserID))

	return &response.UserResponse{UserID: user.UserID}, nil
}
