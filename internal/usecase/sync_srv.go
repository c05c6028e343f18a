package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wellness-tracker/internal/data/entity"
	"wellness-tracker/internal/data/repository"
	"wellness-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SyncService interface {
	// GenerateCode issues a sync code for an owner. If a still-valid
	// code exists it is returned unchanged, so repeated calls inside
	// one validity window are idempotent.
	GenerateCode(ctx context.Context, ownerID string) (string, error)

	// ValidateCode resolves a sync code to the owner it was issued to.
	// currentOwnerID may be empty; when set it rejects pairing a
	// device with its own code.
	ValidateCode(ctx context.Context, code, currentOwnerID string) (string, error)
}

type syncService struct {
	users           repository.UserRepository
	codes           repository.SyncCodeRepository
	secret          string
	validityMinutes int
	log             *zap.Logger
}

func NewSyncService(
	users repository.UserRepository,
	codes repository.SyncCodeRepository,
	config *utils.Config,
	log *zap.Logger,
) SyncService {
	return &syncService{
		users:           users,
		codes:           codes,
		secret:          config.Sync.Secret,
		validityMinutes: config.Sync.ValidityMinutes,
		log:             log.With(zap.String("service", "sync")),
	}
}

func (s *syncService) GenerateCode(ctx context.Context, ownerID string) (string, error) {
	if strings.TrimSpace(ownerID) == "" {
		return "", ErrInvalidInput
	}

	// 1. Owner must already be registered
	user, err := s.users.FindByUserID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to check owner", zap.Error(err), zap.String("owner_id", ownerID))
		return "", fmt.Errorf("check owner %s: %w", ownerID, err)
	}
	if user == nil {
		return "", ErrUnauthorizedOwner
	}

	now := time.Now().UTC()

	// 2. Reuse an existing valid code if one is present. The cleanup
	// job may delete duplicates concurrently; we only read stored
	// values here, so a vanished row simply falls through to fresh
	// issuance on the next call.
	existing, err := s.codes.FindByOwner(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("find sync codes for %s: %w", ownerID, err)
	}
	for _, rec := range existing {
		if !syncCodeExpired(rec, now) {
			return rec.Code, nil
		}
	}

	// 3. Derive a fresh code for the current time window
	code, err := utils.GenerateSyncCode(ownerID, s.validityMinutes, now, s.secret)
	if err != nil {
		return "", fmt.Errorf("generate sync code: %w", err)
	}

	// Stored lowercase so lookups stay case-insensitive
	record := &entity.SyncCode{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Code:            strings.ToLower(code),
		OwnerID:         ownerID,
		ValidityMinutes: s.validityMinutes,
	}

	if err := s.codes.Create(ctx, record); err != nil {
		return "", fmt.Errorf("store sync code for %s: %w", ownerID, err)
	}

	s.log.Info("Sync code issued",
		zap.String("owner_id", ownerID),
		zap.Int("validity_minutes", s.validityMinutes))

	return record.Code, nil
}

func (s *syncService) ValidateCode(ctx context.Context, code, currentOwnerID string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return "", ErrCodeNotFound
	}

	record, err := s.codes.FindByCode(ctx, normalized)
	if err != nil {
		return "", fmt.Errorf("find sync code: %w", err)
	}
	if record == nil {
		return "", ErrCodeNotFound
	}

	// A device may not pair with its own code
	if currentOwnerID != "" && record.OwnerID == currentOwnerID {
		return "", ErrSelfPairing
	}

	// Expiry here is advisory; physical removal is the cleanup job's job
	if syncCodeExpired(record, time.Now().UTC()) {
		return "", ErrCodeExpired
	}

	s.log.Info("Sync code validated", zap.String("owner_id", record.OwnerID))

	return record.OwnerID, nil
}

// syncCodeExpired reports whether the record's age exceeds its validity.
// A record exactly at the boundary still counts as valid. Timestamps are
// compared in UTC.
func syncCodeExpired(record *entity.SyncCode, now time.Time) bool {
	age := now.Sub(record.CreatedAt.UTC())
	return age > time.Duration(record.ValidityMinutes)*time.Minute
}
