package wire

import (
	"wellness-tracker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSync(r chi.Router, syncHandler *adaptor.SyncHandler) {
	r.Post("/api/sync/generate-code", syncHandler.Generate)
	r.Post("/api/sync/validate-code", syncHandler.Validate)
}
