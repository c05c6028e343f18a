package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wellness-tracker/internal/data/entity"
	"wellness-tracker/internal/usecase"
	"wellness-tracker/pkg/utils"
)

// ==================== MOCKS ====================

type mockUserRepo struct {
	users map[string]bool
}

func newMockUserRepo(userIDs ...string) *mockUserRepo {
	users := make(map[string]bool)
	for _, id := range userIDs {
		users[id] = true
	}
	return &mockUserRepo{users: users}
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	m.users[user.UserID] = true
	return nil
}

func (m *mockUserRepo) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	if !m.users[userID] {
		return nil, nil
	}
	return &entity.User{UserID: userID}, nil
}

type mockSyncCodeRepo struct {
	mu          sync.Mutex
	records     []*entity.SyncCode
	findAllErr  error
	deleteCalls int
}

func (m *mockSyncCodeRepo) Create(ctx context.Context, code *entity.SyncCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *code
	m.records = append(m.records, &clone)
	return nil
}

func (m *mockSyncCodeRepo) FindByOwner(ctx context.Context, ownerID string) ([]*entity.SyncCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found []*entity.SyncCode
	for _, record := range m.records {
		if record.OwnerID == ownerID {
			found = append(found, record)
		}
	}
	return found, nil
}

func (m *mockSyncCodeRepo) FindByCode(ctx context.Context, code string) (*entity.SyncCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var oldest *entity.SyncCode
	for _, record := range m.records {
		if record.Code != code {
			continue
		}
		if oldest == nil || record.CreatedAt.Before(oldest.CreatedAt) {
			oldest = record
		}
	}
	return oldest, nil
}

func (m *mockSyncCodeRepo) FindAll(ctx context.Context) ([]*entity.SyncCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	return append([]*entity.SyncCode(nil), m.records...), nil
}

func (m *mockSyncCodeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteMany(ctx, []uuid.UUID{id})
}

func (m *mockSyncCodeRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []*entity.SyncCode
	for _, record := range m.records {
		if !drop[record.ID] {
			kept = append(kept, record)
		}
	}
	m.records = kept
	return nil
}

func (m *mockSyncCodeRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func (m *mockSyncCodeRepo) seed(owner, code string, validityMinutes int, createdAt time.Time) *entity.SyncCode {
	record := &entity.SyncCode{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: createdAt,
		},
		Code:            code,
		OwnerID:         owner,
		ValidityMinutes: validityMinutes,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return record
}

func newSyncService(users *mockUserRepo, codes *mockSyncCodeRepo) usecase.SyncService {
	config := &utils.Config{
		Sync: utils.SyncConfig{
			Secret:          "test-secret",
			ValidityMinutes: 15,
		},
	}
	return usecase.NewSyncService(users, codes, config, zap.NewNop())
}

// ==================== TESTS ====================

func TestGenerateThenValidateRoundTrip(t *testing.T) {
	users := newMockUserRepo("owner-a")
	codes := &mockSyncCodeRepo{}
	service := newSyncService(users, codes)
	ctx := context.Background()

	code, err := service.GenerateCode(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, code, 64)
	require.Equal(t, strings.ToLower(code), code)
	require.Equal(t, 1, codes.count())

	ownerID, err := service.ValidateCode(ctx, code, "")
	require.NoError(t, err)
	require.Equal(t, "owner-a", ownerID)
}

func TestGenerateCodeIdempotentWithinWindow(t *testing.T) {
	users := newMockUserRepo("owner-a")
	codes := &mockSyncCodeRepo{}
	service := newSyncService(users, codes)
	ctx := context.Background()

	first, err := service.GenerateCode(ctx, "owner-a")
	require.NoError(t, err)
	second, err := service.GenerateCode(ctx, "owner-a")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, codes.count(), "re-issuance inside a window must not add records")
}

func TestGenerateCodeUnknownOwner(t *testing.T) {
	users := newMockUserRepo("owner-a")
	codes := &mockSyncCodeRepo{}
	service := newSyncService(users, codes)

	_, err := service.GenerateCode(context.Background(), "nobody")
	require.ErrorIs(t, err, usecase.ErrUnauthorizedOwner)
	require.Equal(t, 0, codes.count(), "rejected issuance must write nothing")
}

func TestGenerateCodeEmptyOwner(t *testing.T) {
	service := newSyncService(newMockUserRepo(), &mockSyncCodeRepo{})

	_, err := service.GenerateCode(context.Background(), "   ")
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestGenerateCodeReplacesExpired(t *testing.T) {
	users := newMockUserRepo("owner-a")
	codes := &mockSyncCodeRepo{}
	codes.seed("owner-a", "stalecode", 1, time.Now().UTC().Add(-2*time.Minute))
	service := newSyncService(users, codes)

	code, err := service.GenerateCode(context.Background(), "owner-a")
	require.NoError(t, err)
	require.NotEqual(t, "stalecode", code)
	require.Equal(t, 2, codes.count(), "expired record stays until cleanup runs")
}

func TestValidateCodeNotFound(t *testing.T) {
	service := newSyncService(newMockUserRepo(), &mockSyncCodeRepo{})

	_, err := service.ValidateCode(context.Background(), "deadbeef", "")
	require.ErrorIs(t, err, usecase.ErrCodeNotFound)

	_, err = service.ValidateCode(context.Background(), "   ", "")
	require.ErrorIs(t, err, usecase.ErrCodeNotFound)
}

func TestValidateCodeExpired(t *testing.T) {
	codes := &mockSyncCodeRepo{}
	codes.seed("owner-a", "expiredcode", 1, time.Now().UTC().Add(-2*time.Minute))
	service := newSyncService(newMockUserRepo("owner-a"), codes)

	_, err := service.ValidateCode(context.Background(), "expiredcode", "")
	require.ErrorIs(t, err, usecase.ErrCodeExpired)
	require.Equal(t, 1, codes.count(), "validation must never delete records")
}

func TestValidateCodeSelfPairingRejected(t *testing.T) {
	users := newMockUserRepo("owner-a", "owner-b")
	codes := &mockSyncCodeRepo{}
	service := newSyncService(users, codes)
	ctx := context.Background()

	code, err := service.GenerateCode(ctx, "owner-a")
	require.NoError(t, err)

	_, err = service.ValidateCode(ctx, code, "owner-a")
	require.ErrorIs(t, err, usecase.ErrSelfPairing)

	ownerID, err := service.ValidateCode(ctx, code, "owner-b")
	require.NoError(t, err)
	require.Equal(t, "owner-a", ownerID)
}

func TestValidateCodeNormalizesInput(t *testing.T) {
	users := newMockUserRepo("owner-a")
	codes := &mockSyncCodeRepo{}
	service := newSyncService(users, codes)
	ctx := context.Background()

	code, err := service.GenerateCode(ctx, "owner-a")
	require.NoError(t, err)

	ownerID, err := service.ValidateCode(ctx, "  "+strings.ToUpper(code)+"\n", "")
	require.NoError(t, err)
	require.Equal(t, "owner-a", ownerID)
}
