package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

// ==================== SYNC CODE ====================

// GenerateSyncCode derives a deterministic pairing code for an owner.
// The timestamp is quantized down to the start of its current
// validityMinutes-long window, so every call inside the same window
// yields the same 64-char lowercase hex digest. Nothing random goes in:
// the code is SHA-256(secret || ownerID || windowStart).
func GenerateSyncCode(ownerID string, validityMinutes int, at time.Time, secret string) (string, error) {
	if ownerID == "" {
		return "", errors.New("owner id is required for sync code generation")
	}
	if validityMinutes <= 0 {
		return "", errors.New("validity minutes must be positive")
	}

	windowStart := QuantizeToWindow(at, validityMinutes)

	raw := secret + ownerID + windowStart.Format(time.RFC3339)
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:]), nil
}

// QuantizeToWindow floors t to the start of its validityMinutes-long
// window: seconds and sub-seconds are zeroed and the minute is floored
// to the largest multiple of validityMinutes not exceeding it.
func QuantizeToWindow(t time.Time, validityMinutes int) time.Time {
	t = t.UTC()
	minute := t.Minute() - t.Minute()%validityMinutes
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, time.UTC)
}
