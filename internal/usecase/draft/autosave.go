package draft

import (
	"context"
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/metrics"
	"dental_lab/internal/scheduler"
	"dental_lab/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// autosaver persists draft snapshots on a best-effort basis. Storage failures
// are logged and swallowed; they never reach the user.
type autosaver struct {
	store     interfaces.ILocalStorage
	debouncer scheduler.Debouncer
	now       func() time.Time
	log       *logrus.Entry
}

// schedule replaces any pending save with one that fires after AutosaveDelay.
func (a *autosaver) schedule(save func()) {
	a.debouncer.Schedule(AutosaveDelay, save)
}

func (a *autosaver) cancel() {
	a.debouncer.Cancel()
}

func (a *autosaver) pending() bool {
	return a.debouncer.Pending()
}

func (a *autosaver) write(ctx context.Context, d entities.WorkOrderDraft, trigger string) {
	raw, err := encodeSnapshot(d, a.now().UTC())
	if err != nil {
		a.log.WithError(err).WithField("trigger", trigger).Warn("draft snapshot encode failed")
		metrics.SnapshotWrites.WithLabelValues(trigger, "error").Inc()
		return
	}
	if err := a.store.Set(ctx, SnapshotKey, raw); err != nil {
		a.log.WithError(err).WithField("trigger", trigger).Warn("draft snapshot write failed")
		metrics.SnapshotWrites.WithLabelValues(trigger, "error").Inc()
		return
	}
	metrics.SnapshotWrites.WithLabelValues(trigger, "ok").Inc()
	a.log.WithFields(logrus.Fields{"trigger": trigger, "items": len(d.Items), "bytes": len(raw)}).Debug("draft snapshot saved")
}

// read returns the stored snapshot. Missing, unreadable and undecodable
// snapshots all come back as found=false; the last two are also removed.
func (a *autosaver) read(ctx context.Context) (Snapshot, bool) {
	raw, found, err := a.store.Get(ctx, SnapshotKey)
	if err != nil {
		a.log.WithError(err).Warn("draft snapshot read failed")
		return Snapshot{}, false
	}
	if !found {
		return Snapshot{}, false
	}
	snap, err := decodeSnapshot(raw)
	if err != nil {
		a.log.WithError(err).Warn("discarding unreadable draft snapshot")
		a.remove(ctx)
		return Snapshot{}, false
	}
	return snap, true
}

func (a *autosaver) remove(ctx context.Context) {
	if err := a.store.Remove(ctx, SnapshotKey); err != nil {
		a.log.WithError(err).Warn("draft snapshot remove failed")
	}
}
