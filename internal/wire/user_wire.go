package wire

import (
	"wellness-tracker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Post("/api/users", userHandler.Create)
}
