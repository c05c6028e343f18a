package adaptor

import (
	"encoding/json"
	"net/http"

	"wellness-tracker/internal/dto/request"
	"wellness-tracker/internal/dto/response"
	"wellness-tracker/internal/usecase"
	"wellness-tracker/pkg/utils"

	"go.uber.org/zap"
)

type SyncHandler struct {
	service usecase.SyncService
	log     *zap.Logger
}

func NewSyncHandler(service usecase.SyncService, log *zap.Logger) *SyncHandler {
	return &SyncHandler{
		service: service,
		log:     log.With(zap.String("handler", "sync")),
	}
}

// Generate handles POST /api/sync/generate-code
func (h *SyncHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateSyncCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "uuid is required", validationErrors)
		return
	}

	code, err := h.service.GenerateCode(r.Context(), req.UUID)
	if err != nil {
		handleServiceError(w, h.log, err, "generate sync code")
		return
	}

	utils.ResponseSuccess(w, "Sync code generated", response.SyncCodeResponse{SyncCode: code})
}

// Validate handles POST /api/sync/validate-code
func (h *SyncHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateSyncCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "sync_code is required", validationErrors)
		return
	}

	ownerID, err := h.service.ValidateCode(r.Context(), req.SyncCode, req.CurrentUUID)
	if err != nil {
		handleServiceError(w, h.log, err, "validate sync code")
		return
	}

	utils.ResponseSuccess(w, "Sync code validated", response.SyncOwnerResponse{UUID: ownerID})
}
