package draft

import (
	"encoding/json"
	"fmt"
	"time"

	"dental_lab/internal/domain/entities"
)

const (
	// SnapshotKey is the single local-storage key holding the draft snapshot.
	SnapshotKey = "dental-lab:work-order-draft"
	// SnapshotVersion tags the snapshot layout.
	SnapshotVersion = 1

	AutosaveDelay  = 2000 * time.Millisecond
	MaxSnapshotAge = 24 * time.Hour
)

// Snapshot is the serialized draft written to local storage.
type Snapshot struct {
	Version int                     `json:"version"`
	SavedAt time.Time               `json:"saved_at"`
	Draft   entities.WorkOrderDraft `json:"draft"`
}

func encodeSnapshot(d entities.WorkOrderDraft, savedAt time.Time) ([]byte, error) {
	return json.Marshal(Snapshot{Version: SnapshotVersion, SavedAt: savedAt, Draft: d})
}

func decodeSnapshot(raw []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if snap.Draft.Items == nil {
		snap.Draft.Items = []entities.LineItem{}
	}
	return snap, nil
}
