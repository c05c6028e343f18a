package adaptor

import (
	"wellness-tracker/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User        *UserHandler
	Task        *TaskHandler
	Affirmation *AffirmationHandler
	Sync        *SyncHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:        NewUserHandler(service.User, log),
		Task:        NewTaskHandler(service.Task, service.Celebrate, log),
		Affirmation: NewAffirmationHandler(service.Affirmation, log),
		Sync:        NewSyncHandler(service.Sync, log),
	}
}
