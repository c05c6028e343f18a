package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wellness-tracker/internal/usecase"
)

func TestCleanupConvergesToNewestValidPerOwner(t *testing.T) {
	now := time.Now().UTC()
	codes := &mockSyncCodeRepo{}

	// owner-a: two expired, two valid; only the newest valid survives
	codes.seed("owner-a", "expired-1", 1, now.Add(-10*time.Minute))
	codes.seed("owner-a", "expired-2", 1, now.Add(-5*time.Minute))
	codes.seed("owner-a", "valid-old", 15, now.Add(-4*time.Minute))
	newest := codes.seed("owner-a", "valid-new", 15, now.Add(-1*time.Minute))

	// owner-b holds one valid record and must be untouched
	other := codes.seed("owner-b", "valid-b", 15, now.Add(-2*time.Minute))

	cleanup := usecase.NewSyncCleanup(codes, time.Minute, zap.NewNop())
	require.NoError(t, cleanup.RunOnce(context.Background()))

	remainingA, err := codes.FindByOwner(context.Background(), "owner-a")
	require.NoError(t, err)
	require.Len(t, remainingA, 1)
	require.Equal(t, newest.ID, remainingA[0].ID)

	remainingB, err := codes.FindByOwner(context.Background(), "owner-b")
	require.NoError(t, err)
	require.Len(t, remainingB, 1)
	require.Equal(t, other.ID, remainingB[0].ID)
}

func TestCleanupDeletesNothingWhenAllValid(t *testing.T) {
	now := time.Now().UTC()
	codes := &mockSyncCodeRepo{}
	codes.seed("owner-a", "valid-a", 15, now.Add(-1*time.Minute))
	codes.seed("owner-b", "valid-b", 15, now.Add(-2*time.Minute))

	cleanup := usecase.NewSyncCleanup(codes, time.Minute, zap.NewNop())
	require.NoError(t, cleanup.RunOnce(context.Background()))

	require.Equal(t, 2, codes.count())
	require.Equal(t, 0, codes.deleteCalls, "no delete statement for a no-op pass")
}

func TestCleanupPropagatesStoreFailure(t *testing.T) {
	codes := &mockSyncCodeRepo{findAllErr: errors.New("connection reset")}

	cleanup := usecase.NewSyncCleanup(codes, time.Minute, zap.NewNop())
	err := cleanup.RunOnce(context.Background())
	require.Error(t, err)
}

func TestCleanupStartStop(t *testing.T) {
	// A failing store must not crash the scheduler loop
	codes := &mockSyncCodeRepo{findAllErr: errors.New("connection reset")}

	cleanup := usecase.NewSyncCleanup(codes, 5*time.Millisecond, zap.NewNop())
	cleanup.Start()
	time.Sleep(25 * time.Millisecond)

	cleanup.Stop()
	cleanup.Stop() // second stop is a no-op
}
