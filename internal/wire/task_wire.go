package wire

import (
	"wellness-tracker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTask(r chi.Router, taskHandler *adaptor.TaskHandler) {
	r.Post("/api/tasks", taskHandler.Create)
	r.Put("/api/tasks/{id}", taskHandler.Update)
	r.Delete("/api/tasks/{id}", taskHandler.Delete)
	r.Post("/api/celebrate-task", taskHandler.Celebrate)
}
