package adaptor

import (
	"encoding/json"
	"net/http"

	"wellness-tracker/internal/dto/request"
	"wellness-tracker/internal/dto/response"
	"wellness-tracker/internal/usecase"
	"wellness-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TaskHandler struct {
	service   usecase.TaskService
	celebrate usecase.CelebrateService
	log       *zap.Logger
}

func NewTaskHandler(service usecase.TaskService, celebrate usecase.CelebrateService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service:   service,
		celebrate: celebrate,
		log:       log.With(zap.String("handler", "task")),
	}
}

// Create handles POST /api/tasks?date=YYYY-MM-DD
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	task, err := h.service.Create(r.Context(), &req, r.URL.Query().Get("date"))
	if err != nil {
		handleServiceError(w, h.log, err, "create task")
		return
	}

	utils.ResponseCreated(w, "Task created", task)
}

// Update handles PUT /api/tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	task, err := h.service.UpdateCompletion(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update task")
		return
	}

	utils.ResponseSuccess(w, "Task updated", task)
}

// Delete handles DELETE /api/tasks/{id}?user_id=
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		utils.ResponseBadRequest(w, "user_id is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		handleServiceError(w, h.log, err, "delete task")
		return
	}

	utils.ResponseSuccess(w, "Task deleted successfully", nil)
}

// Celebrate handles POST /api/celebrate-task
func (h *TaskHandler) Celebrate(w http.ResponseWriter, r *http.Request) {
	var req request.CelebrateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "completed_task is required", validationErrors)
		return
	}

	message := h.celebrate.Celebrate(r.Context(), req.CompletedTask)

	utils.ResponseSuccess(w, "Celebration generated", response.CelebrationResponse{Message: message})
}
