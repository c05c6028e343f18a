package wire

import (
	"wellness-tracker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAffirmation(r chi.Router, affirmationHandler *adaptor.AffirmationHandler) {
	r.Get("/api/affirmations", affirmationHandler.Random)
	r.Get("/api/daily-data", affirmationHandler.DailyData)
}
