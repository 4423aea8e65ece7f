package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dental_lab/internal/adapter/http/handlers/mocks"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/infrastructure/localstorage"
	"dental_lab/internal/logger"
	"dental_lab/internal/scheduler"
	"dental_lab/internal/usecase"
	"dental_lab/internal/usecase/draft"

	"github.com/fatih/color"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	catalog    *mocks.MockICatalogUseCase
	directory  *mocks.MockIDirectoryUseCase
	workOrders *mocks.MockIWorkOrderUseCase
	store      *localstorage.MemoryStore
	now        time.Time
	connects   int
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	color.NoColor = true
	ctrl := gomock.NewController(t)
	return &cliFixture{
		catalog:    mocks.NewMockICatalogUseCase(ctrl),
		directory:  mocks.NewMockIDirectoryUseCase(ctrl),
		workOrders: mocks.NewMockIWorkOrderUseCase(ctrl),
		store:      localstorage.NewMemoryStore(),
		now:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (f *cliFixture) factory(ctx context.Context) (Services, func(), error) {
	f.connects++
	registry := draft.NewRegistry(draft.Dependencies{
		Submitter: f.workOrders,
		Logger:    logger.Discard(),
		Now:       func() time.Time { return f.now },
	}, f.store.ForOwner, func() scheduler.Debouncer { return scheduler.NewManualDebouncer() })
	svc := Services{Catalog: f.catalog, Directory: f.directory, WorkOrders: f.workOrders, Drafts: registry}
	return svc, func() { registry.CloseAll(context.Background()) }, nil
}

func (f *cliFixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(f.factory)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCatalogCommands(t *testing.T) {
	t.Run("template then import", func(t *testing.T) {
		f := newCLIFixture(t)
		path := filepath.Join(t.TempDir(), "catalogo.xlsx")

		if _, err := f.run(t, "", "catalog", "template", path); err != nil {
			t.Fatalf("template: %v", err)
		}
		if f.connects != 0 {
			t.Fatalf("template must not connect to storage")
		}

		f.catalog.EXPECT().ImportServices(gomock.Any(), "lab-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, rows []usecase.CatalogImportRow) (usecase.CatalogImportResult, error) {
				if len(rows) != 1 || rows[0].Category != entities.CategoryCorona {
					t.Fatalf("unexpected rows: %+v", rows)
				}
				return usecase.CatalogImportResult{
					Created:  []entities.Service{{ID: "s1", Name: rows[0].Name}},
					Rejected: []usecase.CatalogImportRejection{{Row: 9, Name: "dup", Reason: "ya existe"}},
				}, nil
			})

		out, err := f.run(t, "", "catalog", "import", path, "--owner", "lab-1")
		if err != nil {
			t.Fatalf("import: %v", err)
		}
		if !strings.Contains(out, "1 services imported") || !strings.Contains(out, "row 9 dup: ya existe") {
			t.Fatalf("unexpected output: %s", out)
		}
	})

	t.Run("import needs owner", func(t *testing.T) {
		f := newCLIFixture(t)
		if _, err := f.run(t, "", "catalog", "import", "x.xlsx"); !errors.Is(err, errOwnerRequired) {
			t.Fatalf("expected errOwnerRequired, got %v", err)
		}
	})
}

func TestOrdersCommands(t *testing.T) {
	received := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	order := entities.WorkOrder{
		ID:           "wo-1",
		ClinicID:     "c1",
		DentistID:    "d1",
		PatientName:  "Ana Pérez",
		ReceivedDate: received,
		Status:       entities.WorkOrderStatusPendiente,
		TotalPrice:   1250000,
	}

	t.Run("export csv with filters", func(t *testing.T) {
		f := newCLIFixture(t)
		path := filepath.Join(t.TempDir(), "ordenes.csv")
		want := usecase.WorkOrderFilter{
			Status: entities.WorkOrderStatusPendiente,
			From:   received,
			To:     received.Add(24*time.Hour - time.Nanosecond),
		}
		f.workOrders.EXPECT().ListWorkOrders(gomock.Any(), "lab-1", want).Return([]entities.WorkOrder{order}, nil)
		f.directory.EXPECT().Names(gomock.Any(), "lab-1").Return(usecase.DirectoryNames{
			Clinics:  map[string]string{"c1": "Clínica Sonrisas"},
			Dentists: map[string]string{"d1": "Dra. Rojas"},
		}, nil)

		out, err := f.run(t, "", "orders", "export", path, "--owner", "lab-1", "--format", "csv",
			"--status", "pendiente", "--from", "2026-03-01", "--to", "2026-03-01")
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if !strings.Contains(out, "1 work orders written") {
			t.Fatalf("unexpected output: %s", out)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !strings.Contains(string(raw), "Clínica Sonrisas") {
			t.Fatalf("csv missing clinic name: %s", raw)
		}
	})

	t.Run("export rejects unknown format", func(t *testing.T) {
		f := newCLIFixture(t)
		if _, err := f.run(t, "", "orders", "export", "x.pdf", "--owner", "lab-1", "--format", "pdf"); err == nil {
			t.Fatalf("expected error")
		}
		if f.connects != 0 {
			t.Fatalf("invalid flags must not connect")
		}
	})

	t.Run("orphans table", func(t *testing.T) {
		f := newCLIFixture(t)
		f.workOrders.EXPECT().FindOrphans(gomock.Any(), "lab-1").Return([]entities.WorkOrder{order}, nil)

		out, err := f.run(t, "", "orders", "orphans", "--owner", "lab-1")
		if err != nil {
			t.Fatalf("orphans: %v", err)
		}
		if !strings.Contains(out, "wo-1") || !strings.Contains(out, "$ 1.250.000") {
			t.Fatalf("unexpected output: %s", out)
		}
	})

	t.Run("advance delivered order", func(t *testing.T) {
		f := newCLIFixture(t)
		f.workOrders.EXPECT().AdvanceStatus(gomock.Any(), "lab-1", "wo-1").Return(entities.WorkOrder{}, usecase.ErrWorkOrderDelivered)

		_, err := f.run(t, "", "orders", "advance", "wo-1", "--owner", "lab-1")
		if !errors.Is(err, usecase.ErrWorkOrderDelivered) {
			t.Fatalf("expected ErrWorkOrderDelivered, got %v", err)
		}
	})

	t.Run("advance", func(t *testing.T) {
		f := newCLIFixture(t)
		advanced := order
		advanced.Status = entities.WorkOrderStatusProduccion
		f.workOrders.EXPECT().AdvanceStatus(gomock.Any(), "lab-1", "wo-1").Return(advanced, nil)

		out, err := f.run(t, "", "orders", "advance", "wo-1", "--owner", "lab-1")
		if err != nil || !strings.Contains(out, "wo-1 is now produccion") {
			t.Fatalf("unexpected result %q: %v", out, err)
		}
	})
}

func seedSnapshot(t *testing.T, f *cliFixture, patient string, savedAt time.Time) {
	t.Helper()
	d := entities.NewWorkOrderDraft()
	d.PatientName = patient
	raw, err := json.Marshal(draft.Snapshot{Version: draft.SnapshotVersion, SavedAt: savedAt, Draft: d})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := f.store.ForOwner("lab-1").Set(context.Background(), draft.SnapshotKey, raw); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestDraftCommands(t *testing.T) {
	t.Run("check recovers on yes", func(t *testing.T) {
		f := newCLIFixture(t)
		seedSnapshot(t, f, "Ana Pérez", f.now.Add(-time.Hour))

		out, err := f.run(t, "s\n", "draft", "check", "--owner", "lab-1")
		if err != nil {
			t.Fatalf("check: %v", err)
		}
		if !strings.Contains(out, "Recover it?") || !strings.Contains(out, draft.RecoveredNotice+": Ana Pérez") {
			t.Fatalf("unexpected output: %s", out)
		}
	})

	t.Run("check discards on no", func(t *testing.T) {
		f := newCLIFixture(t)
		seedSnapshot(t, f, "Ana Pérez", f.now.Add(-time.Hour))

		out, err := f.run(t, "n\n", "draft", "check", "--owner", "lab-1")
		if err != nil || !strings.Contains(out, "Saved draft discarded.") {
			t.Fatalf("unexpected result %q: %v", out, err)
		}
	})

	t.Run("check without snapshot", func(t *testing.T) {
		f := newCLIFixture(t)
		out, err := f.run(t, "", "draft", "check", "--owner", "lab-1")
		if err != nil || !strings.Contains(out, "No unsaved work.") {
			t.Fatalf("unexpected result %q: %v", out, err)
		}
	})

	t.Run("clear needs --yes", func(t *testing.T) {
		f := newCLIFixture(t)
		seedSnapshot(t, f, "Ana Pérez", f.now.Add(-time.Hour))

		if _, err := f.run(t, "", "draft", "clear", "--owner", "lab-1"); !errors.Is(err, draft.ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
		if _, found, _ := f.store.ForOwner("lab-1").Get(context.Background(), draft.SnapshotKey); !found {
			t.Fatalf("snapshot must survive an unconfirmed clear")
		}

		if _, err := f.run(t, "", "draft", "clear", "--owner", "lab-1", "--yes"); err != nil {
			t.Fatalf("clear: %v", err)
		}
		raw, found, _ := f.store.ForOwner("lab-1").Get(context.Background(), draft.SnapshotKey)
		if found {
			var snap draft.Snapshot
			if err := json.Unmarshal(raw, &snap); err != nil || !snap.Draft.IsPristine() {
				t.Fatalf("expected no snapshot or a pristine one, got %s", raw)
			}
		}
	})
}
