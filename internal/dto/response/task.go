package response

import "wellness-tracker/internal/data/entity"

type TaskResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type CelebrationResponse struct {
	Message string `json:"message"`
}

func TaskToResponse(task *entity.DailyTask) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Description: task.TaskText,
		Completed:   task.Completed,
	}
}
