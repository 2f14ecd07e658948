package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/store"
)

// SnapshotSaver persists and restores named snapshots
type SnapshotSaver interface {
	Create(availability model.Availability, schedule []model.ScheduleEntry, description string) (string, error)
	Load(id string) (*store.SaveDocument, error)
}

// SaveSnapshot records the current availability calendar, together
// with an optional generated schedule, as a named snapshot
func SaveSnapshot(ctx context.Context, st AvailabilityStore, saves SnapshotSaver, logger *zap.Logger, description string, schedule []model.ScheduleEntry) (string, error) {
	availability, err := st.LoadAvailability()
	if err != nil {
		return "", fmt.Errorf("failed to load availability: %w", err)
	}
	if availability == nil {
		return "", fmt.Errorf("no availability calendar exists; nothing to save")
	}

	id, err := saves.Create(availability, schedule, description)
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot: %w", err)
	}

	logger.Info("Snapshot saved",
		zap.String("id", id),
		zap.Int("dates", len(availability)))
	return id, nil
}

// RestoreSnapshot replaces the availability calendar with a snapshot's
// contents and reconciles it against the current roster
func RestoreSnapshot(ctx context.Context, st Store, saves SnapshotSaver, logger *zap.Logger, id string) error {
	doc, err := saves.Load(id)
	if err != nil {
		return err
	}

	if err := st.SaveAvailability(doc.Availability); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}

	logger.Info("Snapshot restored",
		zap.String("id", id),
		zap.String("created_at", doc.Metadata.CreatedAt))

	// the roster may have changed since the snapshot was taken
	if _, err := SyncAvailability(ctx, st, logger); err != nil {
		return fmt.Errorf("post-restore sync failed: %w", err)
	}
	return nil
}
