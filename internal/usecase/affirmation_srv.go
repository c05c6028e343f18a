package usecase

import (
	"context"
	"fmt"
	"time"

	"wellness-tracker/internal/data/entity"
	"wellness-tracker/internal/data/repository"
	"wellness-tracker/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fallbackAffirmation is served when the table is empty
const fallbackAffirmation = "You are amazing just as you are."

var sampleAffirmations = []string{
	"You are capable of amazing things.",
	"Today is filled with positive opportunities.",
	"You have the power to create change.",
	"Believe in yourself and all that you are.",
	"Your potential is limitless.",
	"You are worthy of love and respect.",
	"Embrace the glorious mess that you are.",
	"You are enough, just as you are.",
	"Your life is filled with purpose.",
	"You are resilient, strong, and brave.",
}

type AffirmationService interface {
	Random(ctx context.Context) (*response.AffirmationResponse, error)
	DailyData(ctx context.Context, date, userID string) (*response.DailyDataResponse, error)
	Seed(ctx context.Context) error
}

type affirmationService struct {
	affirmations repository.AffirmationRepository
	tasks        repository.TaskRepository
	users        repository.UserRepository
	log          *zap.Logger
}

func NewAffirmationService(
	affirmations repository.AffirmationRepository,
	tasks repository.TaskRepository,
	users repository.UserRepository,
	log *zap.Logger,
) AffirmationService {
	return &affirmationService{
		affirmations: affirmations,
		tasks:        tasks,
		users:        users,
		log:          log.With(zap.String("service", "affirmation")),
	}
}

func (s *affirmationService) Random(ctx context.Context) (*response.AffirmationResponse, error) {
	affirmation, err := s.affirmations.FindRandom(ctx)
	if err != nil {
		return nil, fmt.Errorf("find random affirmation: %w", err)
	}

	if affirmation == nil {
		return &response.AffirmationResponse{Text: fallbackAffirmation}, nil
	}

	return &response.AffirmationResponse{
		ID:   affirmation.ID.String(),
		Text: affirmation.Text,
	}, nil
}

// DailyData bundles a random affirmation with the user's tasks for a
// date. The date defaults to today when empty.
func (s *affirmationService) DailyData(ctx context.Context, date, userID string) (*response.DailyDataResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	user, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user %s: %w", userID, err)
	}
	if user == nil {
		return nil, ErrUnauthorizedOwner
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	text := fallbackAffirmation
	affirmation, err := s.affirmations.FindRandom(ctx)
	if err != nil {
		return nil, fmt.Errorf("find random affirmation: %w", err)
	}
	if affirmation != nil {
		text = affirmation.Text
	}

	tasks, err := s.tasks.FindByDateAndUser(ctx, date, userID)
	if err != nil {
		return nil, fmt.Errorf("find tasks for %s: %w", userID, err)
	}

	taskResponses := make([]response.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		taskResponses = append(taskResponses, response.TaskToResponse(task))
	}

	return &response.DailyDataResponse{
		Date:        date,
		Affirmation: text,
		Tasks:       taskResponses,
	}, nil
}

// Seed populates the stock affirmations once, on an empty table.
func (s *affirmationService) Seed(ctx context.Context) error {
	count, err := s.affirmations.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count affirmations: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, text := range sampleAffirmations {
		affirmation := &entity.Affirmation{
			ID:   uuid.New(),
			Text: text,
		}
		if err := s.affirmations.Create(ctx, affirmation); err != nil {
			return fmt.Errorf("seed affirmation: %w", err)
		}
	}

	s.log.Info("Seeded sample affirmations", zap.Int("count", len(sampleAffirmations)))

	return nil
}
