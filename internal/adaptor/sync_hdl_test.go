package adaptor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wellness-tracker/internal/adaptor"
	"wellness-tracker/internal/usecase"
	"wellness-tracker/pkg/utils"
)

type stubSyncService struct {
	generateCode string
	generateErr  error
	validateID   string
	validateErr  error
}

func (s *stubSyncService) GenerateCode(ctx context.Context, ownerID string) (string, error) {
	return s.generateCode, s.generateErr
}

func (s *stubSyncService) ValidateCode(ctx context.Context, code, currentOwnerID string) (string, error) {
	return s.validateID, s.validateErr
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec, envelope
}

func TestSyncGenerateSuccess(t *testing.T) {
	service := &stubSyncService{generateCode: strings.Repeat("ab", 32)}
	handler := adaptor.NewSyncHandler(service, zap.NewNop())

	rec, envelope := postJSON(t, handler.Generate, `{"uuid":"owner-a"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Status)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, service.generateCode, data["sync_code"])
}

func TestSyncGenerateUnknownOwner(t *testing.T) {
	service := &stubSyncService{generateErr: usecase.ErrUnauthorizedOwner}
	handler := adaptor.NewSyncHandler(service, zap.NewNop())

	rec, envelope := postJSON(t, handler.Generate, `{"uuid":"nobody"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, envelope.Status)
}

func TestSyncGenerateMissingUUID(t *testing.T) {
	handler := adaptor.NewSyncHandler(&stubSyncService{}, zap.NewNop())

	rec, _ := postJSON(t, handler.Generate, `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncValidateSuccess(t *testing.T) {
	service := &stubSyncService{validateID: "owner-a"}
	handler := adaptor.NewSyncHandler(service, zap.NewNop())

	rec, envelope := postJSON(t, handler.Validate, `{"sync_code":"abc123","current_uuid":"owner-b"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "owner-a", data["uuid"])
}

func TestSyncValidateRejectionsShareOneMessage(t *testing.T) {
	// Not-found, expired and self-pairing must be indistinguishable to
	// the caller so code existence cannot be probed.
	rejections := []error{
		usecase.ErrCodeNotFound,
		usecase.ErrCodeExpired,
		usecase.ErrSelfPairing,
	}

	var messages []string
	for _, rejection := range rejections {
		handler := adaptor.NewSyncHandler(&stubSyncService{validateErr: rejection}, zap.NewNop())
		rec, envelope := postJSON(t, handler.Validate, `{"sync_code":"abc123"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		messages = append(messages, envelope.Message)
	}

	require.Equal(t, messages[0], messages[1])
	require.Equal(t, messages[1], messages[2])
}

func TestSyncValidateStoreFailure(t *testing.T) {
	service := &stubSyncService{validateErr: context.DeadlineExceeded}
	handler := adaptor.NewSyncHandler(service, zap.NewNop())

	rec, _ := postJSON(t, handler.Validate, `{"sync_code":"abc123"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
