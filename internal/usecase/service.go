package usecase

import (
	"wellness-tracker/internal/data/repository"
	"wellness-tracker/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User        UserService
	Task        TaskService
	Affirmation AffirmationService
	Sync        SyncService
	Celebrate   CelebrateService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		User:        NewUserService(repo.User, log),
		Task:        NewTaskService(repo.Task, repo.User, config, log),
		Affirmation: NewAffirmationService(repo.Affirmation, repo.Task, repo.User, log),
		Sync:        NewSyncService(repo.User, repo.SyncCode, config, log),
		Celebrate:   NewCelebrateService(config, log),
	}
}
