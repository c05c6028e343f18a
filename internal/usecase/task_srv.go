package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"wellness-tracker/internal/data/entity"
	"wellness-tracker/internal/data/repository"
	"wellness-tracker/internal/dto/request"
	"wellness-tracker/internal/dto/response"
	"wellness-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskService interface {
	Create(ctx context.Context, req *request.CreateTaskRequest, date string) (*response.TaskResponse, error)
	UpdateCompletion(ctx context.Context, taskID string, req *request.UpdateTaskRequest) (*response.TaskResponse, error)
	Delete(ctx context.Context, taskID, userID string) error
}

type taskService struct {
	tasks         repository.TaskRepository
	users         repository.UserRepository
	defaultUserID string
	log           *zap.Logger
}

func NewTaskService(
	tasks repository.TaskRepository,
	users repository.UserRepository,
	config *utils.Config,
	log *zap.Logger,
) TaskService {
	return &taskService{
		tasks:         tasks,
		users:         users,
		defaultUserID: config.App.DefaultUserID,
		log:           log.With(zap.String("service", "task")),
	}
}

func (s *taskService) Create(ctx context.Context, req *request.CreateTaskRequest, date string) (*response.TaskResponse, error) {
	// Trim then validate; the frontend enforces 3-100 chars as well
	req.TaskText = strings.TrimSpace(req.TaskText)
	if req.UserID == "" {
		req.UserID = s.defaultUserID
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create task validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	if err := s.requireUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	task := &entity.DailyTask{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		TaskText:    html.EscapeString(req.TaskText),
		Completed:   false,
		CreatedDate: date,
		UserID:      req.UserID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (s *taskService) UpdateCompletion(ctx context.Context, taskID string, req *request.UpdateTaskRequest) (*response.TaskResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update task validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(taskID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid task id", ErrInvalidInput)
	}

	if err := s.requireUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByIDAndUser(ctx, id, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("find task %s: %w", taskID, err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if err := s.tasks.UpdateCompleted(ctx, id, *req.Completed); err != nil {
		return nil, fmt.Errorf("update task %s: %w", taskID, err)
	}
	task.Completed = *req.Completed

	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (s *taskService) Delete(ctx context.Context, taskID, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	id, err := uuid.Parse(taskID)
	if err != nil {
		return fmt.Errorf("%w: invalid task id", ErrInvalidInput)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	task, err := s.tasks.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("find task %s: %w", taskID, err)
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}

	s.log.Info("Task deleted",
		zap.String("task_id", taskID),
		zap.String("user_id", userID))

	return nil
}

func (s *taskService) requireUser(ctx context.Context, userID string) error {
	user, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("check user %s: %w", userID, err)
	}
	if user == nil {
		return ErrUnauthorizedOwner
	}
	return nil
}
