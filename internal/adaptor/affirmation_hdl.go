package adaptor

import (
	"net/http"

	"wellness-tracker/internal/usecase"
	"wellness-tracker/pkg/utils"

	"go.uber.org/zap"
)

type AffirmationHandler struct {
	service usecase.AffirmationService
	log     *zap.Logger
}

func NewAffirmationHandler(service usecase.AffirmationService, log *zap.Logger) *AffirmationHandler {
	return &AffirmationHandler{
		service: service,
		log:     log.With(zap.String("handler", "affirmation")),
	}
}

// Random handles GET /api/affirmations
func (h *AffirmationHandler) Random(w http.ResponseWriter, r *http.Request) {
	affirmation, err := h.service.Random(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get affirmation")
		return
	}

	utils.ResponseSuccess(w, "Affirmation retrieved", affirmation)
}

// DailyData handles GET /api/daily-data?date=&user_id=
func (h *AffirmationHandler) DailyData(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		utils.ResponseBadRequest(w, "user_id is required", nil)
		return
	}

	data, err := h.service.DailyData(r.Context(), r.URL.Query().Get("date"), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get daily data")
		return
	}

	utils.ResponseSuccess(w, "Daily data retrieved", data)
}
