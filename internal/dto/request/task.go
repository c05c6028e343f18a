package request

type CreateTaskRequest struct {
	TaskText string `json:"task_text" validate:"required,min=3,max=100"`
	UserID   string `json:"user_id"`
}

type UpdateTaskRequest struct {
	Completed *bool  `json:"completed" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`
}

type CelebrateTaskRequest struct {
	CompletedTask string `json:"completed_task" validate:"required"`
}
