package utils_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wellness-tracker/pkg/utils"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestGenerateSyncCodeDeterministic(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 7, 33, 120, time.UTC)

	first, err := utils.GenerateSyncCode("owner-a", 15, at, "secret")
	require.NoError(t, err)
	second, err := utils.GenerateSyncCode("owner-a", 15, at, "secret")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Regexp(t, hexPattern, first)
}

func TestGenerateSyncCodeWindowSensitivity(t *testing.T) {
	early := time.Date(2025, 3, 10, 12, 5, 0, 0, time.UTC)
	lateSameWindow := time.Date(2025, 3, 10, 12, 14, 59, 0, time.UTC)
	nextWindow := time.Date(2025, 3, 10, 12, 15, 0, 0, time.UTC)

	a, err := utils.GenerateSyncCode("owner-a", 15, early, "secret")
	require.NoError(t, err)
	b, err := utils.GenerateSyncCode("owner-a", 15, lateSameWindow, "secret")
	require.NoError(t, err)
	c, err := utils.GenerateSyncCode("owner-a", 15, nextWindow, "secret")
	require.NoError(t, err)

	require.Equal(t, a, b, "timestamps inside one window must share a code")
	require.NotEqual(t, a, c, "adjacent windows must produce different codes")
}

func TestGenerateSyncCodeDependsOnInputs(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 5, 0, 0, time.UTC)

	base, err := utils.GenerateSyncCode("owner-a", 15, at, "secret")
	require.NoError(t, err)

	otherOwner, err := utils.GenerateSyncCode("owner-b", 15, at, "secret")
	require.NoError(t, err)
	require.NotEqual(t, base, otherOwner)

	otherSecret, err := utils.GenerateSyncCode("owner-a", 15, at, "another-secret")
	require.NoError(t, err)
	require.NotEqual(t, base, otherSecret)
}

func TestGenerateSyncCodeNonUTCTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	local := time.Date(2025, 3, 10, 19, 6, 11, 0, loc)
	utc := local.UTC()

	a, err := utils.GenerateSyncCode("owner-a", 15, local, "secret")
	require.NoError(t, err)
	b, err := utils.GenerateSyncCode("owner-a", 15, utc, "secret")
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestGenerateSyncCodeRejectsBadInput(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 5, 0, 0, time.UTC)

	_, err := utils.GenerateSyncCode("", 15, at, "secret")
	require.Error(t, err)

	_, err = utils.GenerateSyncCode("owner-a", 0, at, "secret")
	require.Error(t, err)
}

func TestQuantizeToWindow(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 44, 59, 999, time.UTC)

	window := utils.QuantizeToWindow(at, 15)
	require.Equal(t, time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC), window)

	window = utils.QuantizeToWindow(at, 1)
	require.Equal(t, time.Date(2025, 3, 10, 12, 44, 0, 0, time.UTC), window)
}
