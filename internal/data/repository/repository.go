package repository

import (
	"wellness-tracker/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Affirmation AffirmationRepository
	Task        TaskRepository
	SyncCode    SyncCodeRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Affirmation: NewAffirmationRepository(db, log),
		Task:        NewTaskRepository(db, log),
		SyncCode:    NewSyncCodeRepository(db, log),
	}
}
