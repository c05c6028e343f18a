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

type TaskRepository interface {
	Create(ctx context.Context, task *entity.DailyTask) error
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.DailyTask, error)
	FindByDateAndUser(ctx context.Context, date, userID string) ([]*entity.DailyTask, error)
	UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTaskRepository(db database.PgxIface, log *zap.Logger) TaskRepository {
	return &taskRepository{
		db:  db,
		log: log.With(zap.String("repository", "task")),
	}
}

func (tr *taskRepository) Create(ctx context.Context, task *entity.DailyTask) error {
	query := `
		INSERT INTO daily_tasks (id, task_text, completed, created_date, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := tr.db.Exec(ctx, query,
		task.ID,
		task.TaskText,
		task.Completed,
		task.CreatedDate,
		task.UserID,
		task.CreatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to create task",
			zap.Error(err),
			zap.String("user_id", task.UserID),
			zap.String("date", task.CreatedDate),
		)
		return fmt.Errorf("create task for %s: %w", task.UserID, err)
	}

	return nil
}

func (tr *taskRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.DailyTask, error) {
	query := `
		SELECT id, task_text, completed, created_date, user_id, created_at
		FROM daily_tasks
		WHERE id = $1 AND user_id = $2
	`

	var task entity.DailyTask
	err := tr.db.QueryRow(ctx, query, id, userID).Scan(
		&task.ID,
		&task.TaskText,
		&task.Completed,
		&task.CreatedDate,
		&task.UserID,
		&task.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find task",
			zap.Error(err),
			zap.String("task_id", id.String()),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find task %s: %w", id.String(), err)
	}

	return &task, nil
}

func (tr *taskRepository) FindByDateAndUser(ctx context.Context, date, userID string) ([]*entity.DailyTask, error) {
	query := `
		SELECT id, task_text, completed, created_date, user_id, created_at
		FROM daily_tasks
		WHERE created_date = $1 AND user_id = $2
		ORDER BY created_at ASC
	`

	rows, err := tr.db.Query(ctx, query, date, userID)
	if err != nil {
		tr.log.Error("Failed to find tasks by date",
			zap.Error(err),
			zap.String("date", date),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find tasks for %s on %s: %w", userID, date, err)
	}
	defer rows.Close()

	var tasks []*entity.DailyTask
	for rows.Next() {
		var task entity.DailyTask
		err := rows.Scan(
			&task.ID,
			&task.TaskText,
			&task.Completed,
			&task.CreatedDate,
			&task.UserID,
			&task.CreatedAt,
		)
		if err != nil {
			tr.log.Error("Failed to scan task row", zap.Error(err))
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}

	return tasks, nil
}

// UpdateCompleted is the only mutation a task supports: a typed update
// of the completed flag, nothing else is touched.
func (tr *taskRepository) UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	query := `
		UPDATE daily_tasks
		SET completed = $2
		WHERE id = $1
	`

	result, err := tr.db.Exec(ctx, query, id, completed)
	if err != nil {
		tr.log.Error("Failed to update task",
			zap.Error(err),
			zap.String("task_id", id.String()),
		)
		return fmt.Errorf("update task %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s not found", id.String())
	}

	return nil
}

func (tr *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM daily_tasks WHERE id = $1`

	result, err := tr.db.Exec(ctx, query, id)
	if err != nil {
		tr.log.Error("Failed to delete task",
			zap.Error(err),
			zap.String("task_id", id.String()),
		)
		return fmt.Errorf("delete task %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s not found", id.String())
	}

	return nil
}
