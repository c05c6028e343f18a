package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"wellness-tracker/internal/data/entity"
	"wellness-tracker/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SyncCleanup is the background job that keeps the sync_codes table
// bounded: expired rows are deleted and when an owner holds more than
// one valid code, only the newest survives. It is constructed and
// started by the process entry point; tests drive RunOnce directly.
type SyncCleanup struct {
	codes    repository.SyncCodeRepository
	interval time.Duration
	log      *zap.Logger

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewSyncCleanup(codes repository.SyncCodeRepository, interval time.Duration, log *zap.Logger) *SyncCleanup {
	return &SyncCleanup{
		codes:    codes,
		interval: interval,
		log:      log.With(zap.String("job", "sync_cleanup")),
		done:     make(chan struct{}),
	}
}

// Start launches the ticker goroutine. A failed run is logged and
// swallowed; the next tick re-evaluates everything from scratch.
func (c *SyncCleanup) Start() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		c.log.Info("Sync code cleanup started", zap.Duration("interval", c.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				if err := c.RunOnce(ctx); err != nil {
					c.log.Error("Sync code cleanup run failed", zap.Error(err))
				}
				cancel()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop terminates the ticker goroutine and waits for an in-flight run
// to finish. Safe to call more than once.
func (c *SyncCleanup) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
	c.wg.Wait()
	c.log.Info("Sync code cleanup stopped")
}

// RunOnce executes a single cleanup pass. All deletions of a pass go
// through one batched statement, so a pass either commits as a unit or
// is abandoned.
func (c *SyncCleanup) RunOnce(ctx context.Context) error {
	all, err := c.codes.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load sync codes: %w", err)
	}

	now := time.Now().UTC()

	// Group by owner to resolve duplicates per user
	byOwner := make(map[string][]*entity.SyncCode)
	for _, record := range all {
		byOwner[record.OwnerID] = append(byOwner[record.OwnerID], record)
	}

	var toDelete []uuid.UUID
	expiredCount := 0
	duplicateCount := 0

	for _, records := range byOwner {
		var valid []*entity.SyncCode
		for _, record := range records {
			if syncCodeExpired(record, now) {
				toDelete = append(toDelete, record.ID)
				expiredCount++
			} else {
				valid = append(valid, record)
			}
		}

		// More than one valid code: keep the newest, drop the rest
		if len(valid) > 1 {
			sort.Slice(valid, func(i, j int) bool {
				return valid[i].CreatedAt.After(valid[j].CreatedAt)
			})
			for _, record := range valid[1:] {
				toDelete = append(toDelete, record.ID)
				duplicateCount++
			}
		}
	}

	if len(toDelete) == 0 {
		c.log.Debug("Sync code cleanup: nothing to remove",
			zap.Int("total", len(all)),
			zap.Int("owners", len(byOwner)))
		return nil
	}

	if err := c.codes.DeleteMany(ctx, toDelete); err != nil {
		return fmt.Errorf("delete sync codes: %w", err)
	}

	c.log.Info("Sync code cleanup complete",
		zap.Int("expired", expiredCount),
		zap.Int("duplicates", duplicateCount),
		zap.Int("remaining", len(all)-len(toDelete)))

	return nil
}
