package adaptor

import (
	"errors"
	"net/http"

	"wellness-tracker/internal/usecase"
	"wellness-tracker/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service sentinels to HTTP responses. The
// three sync validation rejections share one generic message so a
// caller cannot probe whether a code exists.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorizedOwner):
		log.Warn(operation+" rejected - unknown user", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid user_id")

	case errors.Is(err, usecase.ErrCodeNotFound),
		errors.Is(err, usecase.ErrCodeExpired),
		errors.Is(err, usecase.ErrSelfPairing):
		log.Info(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid or expired sync code", nil)

	case errors.Is(err, usecase.ErrTaskNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Task not found or access denied")

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
