package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/logger"
	"dental_lab/internal/scheduler"
	"dental_lab/internal/usecase/interfaces"
	mock_interfaces "dental_lab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	sets    int
	failSet error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.sets++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

type submitFunc func(ctx context.Context, ownerID string, d entities.WorkOrderDraft) (entities.SubmissionReceipt, error)

func (f submitFunc) Submit(ctx context.Context, ownerID string, d entities.WorkOrderDraft) (entities.SubmissionReceipt, error) {
	return f(ctx, ownerID, d)
}

type fixture struct {
	session   *Session
	store     *memStore
	debouncer *scheduler.ManualDebouncer
	catalog   *mock_interfaces.MockICatalogRepository
	directory *mock_interfaces.MockIDirectoryRepository
	now       time.Time
	submit    submitFunc
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()
	f := &fixture{
		store:     newMemStore(),
		debouncer: scheduler.NewManualDebouncer(),
		catalog:   mock_interfaces.NewMockICatalogRepository(ctrl),
		directory: mock_interfaces.NewMockIDirectoryRepository(ctrl),
		now:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	ids := 0
	f.session = NewSession("owner-1", Dependencies{
		Catalog:   f.catalog,
		Directory: f.directory,
		Submitter: submitFunc(func(ctx context.Context, ownerID string, d entities.WorkOrderDraft) (entities.SubmissionReceipt, error) {
			if f.submit == nil {
				t.Fatalf("unexpected submit")
			}
			return f.submit(ctx, ownerID, d)
		}),
		Storage:   f.store,
		Debouncer: f.debouncer,
		Logger:    logger.Discard(),
		Now:       func() time.Time { return f.now },
		NewID: func() string {
			ids++
			return fmt.Sprintf("item-%d", ids)
		},
	})
	return f
}

func (f *fixture) start(t *testing.T) {
	t.Helper()
	if _, err := f.session.Start(context.Background(), Answer(false)); err != nil {
		t.Fatalf("start: %v", err)
	}
}

func (f *fixture) seed(t *testing.T, d entities.WorkOrderDraft, savedAt time.Time) {
	t.Helper()
	raw, err := encodeSnapshot(d, savedAt)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.store.data[SnapshotKey] = raw
}

func (f *fixture) stored(t *testing.T) Snapshot {
	t.Helper()
	raw, ok, _ := f.store.Get(context.Background(), SnapshotKey)
	if !ok {
		t.Fatalf("expected a stored snapshot")
	}
	snap, err := decodeSnapshot(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return snap
}

func sampleDraft() entities.WorkOrderDraft {
	d := entities.NewWorkOrderDraft()
	d.ClinicID = "c1"
	d.DentistID = "d1"
	d.PatientName = "Ana Pérez"
	d.PatientTaxID = "12.345.678-9"
	d.Mode = entities.DraftModeDetailed
	d.SearchText = "zir"
	d.Material.Tooth = "21"
	d.Material.AuxiliaryMaterials = []string{"Disco"}
	d.Items = []entities.LineItem{
		{
			ID:        "i1",
			Service:   entities.CatalogServiceRef{ServiceID: "f2", Name: "Corona Zirconia", Category: entities.CategoryCorona},
			Quantity:  2,
			Tooth:     "11",
			UnitPrice: 250000,
		},
		{
			ID:           "i2",
			Service:      entities.AdHocServiceRef{ID: "detallado-1", Name: "PMMA - Diente 12", Configuration: entities.DefaultMaterialConfiguration()},
			Quantity:     1,
			Tooth:        "12",
			UnitPrice:    65000,
			Observations: "provisional",
		},
	}
	d.UpdatedAt = time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
	return d
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestSession_Start(t *testing.T) {
	t.Run("no snapshot starts empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)

		res, err := f.session.Start(context.Background(), ConfirmFunc(func(context.Context, RecoveryPrompt) bool {
			t.Fatalf("confirm must not be called")
			return false
		}))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Outcome != OutcomeEmpty || res.Prompted {
			t.Fatalf("expected empty without prompt, got %+v", res)
		}
		if !f.session.View().Started {
			t.Fatalf("expected session started")
		}
	})

	t.Run("snapshot older than 24h is discarded silently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.seed(t, sampleDraft(), f.now.Add(-MaxSnapshotAge-time.Second))

		res, err := f.session.Start(context.Background(), ConfirmFunc(func(context.Context, RecoveryPrompt) bool {
			t.Fatalf("confirm must not be called for a stale snapshot")
			return true
		}))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Outcome != OutcomeExpired || res.Prompted {
			t.Fatalf("expected expired, got %+v", res)
		}
		if f.store.has(SnapshotKey) {
			t.Fatalf("expected stale snapshot removed")
		}
		if !f.session.View().Draft.IsPristine() {
			t.Fatalf("expected empty draft")
		}
	})

	t.Run("snapshot exactly 24h old still prompts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.seed(t, sampleDraft(), f.now.Add(-MaxSnapshotAge))

		res, _ := f.session.Start(context.Background(), Answer(false))
		if !res.Prompted {
			t.Fatalf("expected prompt, got %+v", res)
		}
	})

	t.Run("accepting restores every field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		want := sampleDraft()
		f.seed(t, want, f.now.Add(-time.Hour))

		var got RecoveryPrompt
		res, err := f.session.Start(context.Background(), ConfirmFunc(func(_ context.Context, p RecoveryPrompt) bool {
			got = p
			return true
		}))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Outcome != OutcomeRestored || res.Notice != RecoveredNotice {
			t.Fatalf("expected restored with notice, got %+v", res)
		}
		if got.PatientName != "Ana Pérez" || got.ItemCount != 2 || got.Total != 565000 {
			t.Fatalf("unexpected prompt %+v", got)
		}
		if mustJSON(t, f.session.View().Draft) != mustJSON(t, want) {
			t.Fatalf("restored draft differs:\n got %s\nwant %s", mustJSON(t, f.session.View().Draft), mustJSON(t, want))
		}
		if !f.store.has(SnapshotKey) {
			t.Fatalf("restoring must keep the snapshot")
		}
	})

	t.Run("declining discards the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.seed(t, sampleDraft(), f.now.Add(-time.Minute))

		res, _ := f.session.Start(context.Background(), Answer(false))
		if res.Outcome != OutcomeDeclined || !res.Prompted {
			t.Fatalf("expected declined, got %+v", res)
		}
		if f.store.has(SnapshotKey) {
			t.Fatalf("expected snapshot removed")
		}
		if !f.session.View().Draft.IsPristine() {
			t.Fatalf("expected empty draft")
		}
	})

	t.Run("pristine or corrupt snapshots are treated as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.seed(t, entities.NewWorkOrderDraft(), f.now)

		res, _ := f.session.Start(context.Background(), nil)
		if res.Outcome != OutcomeEmpty || res.Prompted {
			t.Fatalf("expected empty, got %+v", res)
		}
		if f.store.has(SnapshotKey) {
			t.Fatalf("expected pristine snapshot removed")
		}

		g := newFixture(t, ctrl)
		g.store.data[SnapshotKey] = []byte("{not json")
		res, _ = g.session.Start(context.Background(), nil)
		if res.Outcome != OutcomeEmpty {
			t.Fatalf("expected empty, got %+v", res)
		}
		if g.store.has(SnapshotKey) {
			t.Fatalf("expected corrupt snapshot removed")
		}
	})

	t.Run("second start is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.start(t)
		res, _ := f.session.Start(context.Background(), nil)
		if res.Outcome != OutcomeAlreadyStarted {
			t.Fatalf("expected already started, got %+v", res)
		}
	})
}

func TestSession_PendingRecovery(t *testing.T) {
	t.Run("reports the prompt without consuming the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.seed(t, sampleDraft(), f.now.Add(-time.Hour))

		prompt, ok := f.session.PendingRecovery(context.Background())
		if !ok || prompt.PatientName != "Ana Pérez" || prompt.ItemCount != 2 || prompt.Total != 565000 {
			t.Fatalf("unexpected prompt %+v ok=%v", prompt, ok)
		}
		if !f.store.has(SnapshotKey) || f.session.View().Started {
			t.Fatalf("expected snapshot kept and session not started")
		}
	})

	t.Run("nothing to ask", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)

		if _, ok := f.session.PendingRecovery(context.Background()); ok {
			t.Fatalf("expected no prompt without snapshot")
		}
		f.seed(t, sampleDraft(), f.now.Add(-MaxSnapshotAge-time.Minute))
		if _, ok := f.session.PendingRecovery(context.Background()); ok {
			t.Fatalf("expected no prompt for a stale snapshot")
		}
		f.seed(t, sampleDraft(), f.now)
		f.start(t)
		if _, ok := f.session.PendingRecovery(context.Background()); ok {
			t.Fatalf("expected no prompt once started")
		}
	})
}

func TestSession_Autosave(t *testing.T) {
	t.Run("mutations before startup never touch storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.seed(t, sampleDraft(), f.now.Add(-time.Hour))

		if err := f.session.SetPatient("Otro", ""); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.debouncer.Scheduled() != 0 {
			t.Fatalf("expected no scheduled save")
		}
		if f.stored(t).Draft.PatientName != "Ana Pérez" {
			t.Fatalf("snapshot must be untouched before startup")
		}
	})

	t.Run("a burst of edits collapses into one write of the final state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.start(t)

		for _, name := range []string{"A", "An", "Ana"} {
			if err := f.session.SetPatient(name, ""); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		}
		if f.store.sets != 0 {
			t.Fatalf("expected no write before the delay elapses")
		}
		if !f.session.View().AutosavePending {
			t.Fatalf("expected pending autosave")
		}
		if f.debouncer.Delay() != AutosaveDelay {
			t.Fatalf("expected delay %v, got %v", AutosaveDelay, f.debouncer.Delay())
		}
		if !f.debouncer.Fire() {
			t.Fatalf("expected a pending task")
		}
		if f.store.sets != 1 {
			t.Fatalf("expected exactly one write, got %d", f.store.sets)
		}
		snap := f.stored(t)
		if snap.Draft.PatientName != "Ana" || !snap.SavedAt.Equal(f.now) || snap.Version != SnapshotVersion {
			t.Fatalf("unexpected snapshot %+v", snap)
		}
	})

	t.Run("storage failures are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.start(t)
		f.store.failSet = errors.New("quota exceeded")

		if err := f.session.SetPatient("Ana", ""); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		f.debouncer.Fire()
		if f.session.View().Draft.PatientName != "Ana" {
			t.Fatalf("expected draft kept in memory")
		}
	})

	t.Run("unload saves immediately and closes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.start(t)
		_ = f.session.SetPatient("Ana", "")

		f.session.Unload(context.Background())
		if f.store.sets != 1 || f.stored(t).Draft.PatientName != "Ana" {
			t.Fatalf("expected immediate save on unload")
		}
		if f.debouncer.Pending() {
			t.Fatalf("expected pending save cancelled")
		}
		if err := f.session.SetPatient("x", ""); !errors.Is(err, ErrSessionClosed) {
			t.Fatalf("expected ErrSessionClosed, got %v", err)
		}
	})

	t.Run("unload before startup writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.session.Unload(context.Background())
		if f.store.sets != 0 {
			t.Fatalf("expected no write")
		}
	})
}

func TestSession_Selection(t *testing.T) {
	t.Run("changing clinic clears the dentist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		ctx := context.Background()

		f.directory.EXPECT().GetClinic(gomock.Any(), "owner-1", "c1").Return(entities.Clinic{ID: "c1"}, nil)
		f.directory.EXPECT().GetClinic(gomock.Any(), "owner-1", "c2").Return(entities.Clinic{ID: "c2"}, nil)
		f.directory.EXPECT().GetDentist(gomock.Any(), "owner-1", "d1").Return(entities.Dentist{ID: "d1", ClinicID: "c1"}, nil)

		if err := f.session.SelectClinic(ctx, "c1"); err != nil {
			t.Fatalf("select clinic: %v", err)
		}
		if err := f.session.SelectDentist(ctx, "d1"); err != nil {
			t.Fatalf("select dentist: %v", err)
		}
		if err := f.session.SelectClinic(ctx, "c2"); err != nil {
			t.Fatalf("select clinic: %v", err)
		}
		d := f.session.View().Draft
		if d.ClinicID != "c2" || d.DentistID != "" {
			t.Fatalf("expected dentist cleared, got %+v", d)
		}
	})

	t.Run("dentist of another clinic is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		ctx := context.Background()

		f.directory.EXPECT().GetClinic(gomock.Any(), "owner-1", "c1").Return(entities.Clinic{ID: "c1"}, nil)
		f.directory.EXPECT().GetDentist(gomock.Any(), "owner-1", "d9").Return(entities.Dentist{ID: "d9", ClinicID: "c2"}, nil)

		_ = f.session.SelectClinic(ctx, "c1")
		err := f.session.SelectDentist(ctx, "d9")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "dentist_id" {
			t.Fatalf("expected dentist_id validation error, got %v", err)
		}
	})

	t.Run("dentist requires a clinic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)

		err := f.session.SelectDentist(context.Background(), "d1")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "clinic_id" {
			t.Fatalf("expected clinic_id validation error, got %v", err)
		}
	})

	t.Run("unknown clinic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.directory.EXPECT().GetClinic(gomock.Any(), "owner-1", "nope").Return(entities.Clinic{}, nil)

		if err := f.session.SelectClinic(context.Background(), "nope"); !errors.Is(err, ErrClinicNotFound) {
			t.Fatalf("expected ErrClinicNotFound, got %v", err)
		}
	})
}

func TestSession_AddSimpleLineItem(t *testing.T) {
	svc := entities.Service{ID: "f2", Name: "Corona Zirconia", Price: 250000, Category: entities.CategoryCorona, Active: true}

	t.Run("requires a patient name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)

		_, err := f.session.AddSimpleLineItem(context.Background(), SimpleItemInput{ServiceID: "f2", Quantity: 1})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "patient_name" {
			t.Fatalf("expected patient_name validation error, got %v", err)
		}
		if len(f.session.View().Draft.Items) != 0 {
			t.Fatalf("expected no items")
		}
	})

	t.Run("inactive service is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		_ = f.session.SetPatient("Ana", "")
		inactive := svc
		inactive.Active = false
		f.catalog.EXPECT().GetByID(gomock.Any(), "owner-1", "f2").Return(inactive, nil)

		if _, err := f.session.AddSimpleLineItem(context.Background(), SimpleItemInput{ServiceID: "f2", Quantity: 1}); !errors.Is(err, ErrServiceInactive) {
			t.Fatalf("expected ErrServiceInactive, got %v", err)
		}
	})

	t.Run("uses the card input and resets it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		_ = f.session.SetPatient("Ana", "")
		f.catalog.EXPECT().GetByID(gomock.Any(), "owner-1", "f2").Return(svc, nil)

		if err := f.session.SetCardInput("f2", 3, "11"); err != nil {
			t.Fatalf("set card input: %v", err)
		}
		item, err := f.session.AddSimpleLineItem(context.Background(), SimpleItemInput{ServiceID: "f2"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if item.Quantity != 3 || item.Tooth != "11" || item.UnitPrice != 250000 {
			t.Fatalf("unexpected item %+v", item)
		}
		if got := f.session.CardInput("f2"); got != (CardInput{Quantity: 1}) {
			t.Fatalf("expected card input reset, got %+v", got)
		}
		if f.session.View().Total != 750000 {
			t.Fatalf("expected total 750000, got %d", f.session.View().Total)
		}
	})

	t.Run("views are isolated copies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		_ = f.session.SetPatient("Ana", "")
		f.catalog.EXPECT().GetByID(gomock.Any(), "owner-1", "f2").Return(svc, nil)
		_, _ = f.session.AddSimpleLineItem(context.Background(), SimpleItemInput{ServiceID: "f2", Quantity: 1})

		v := f.session.View()
		v.Draft.Items[0].Quantity = 99
		v.Draft.Items = append(v.Draft.Items, entities.LineItem{ID: "x"})
		if got := f.session.View().Draft.Items; len(got) != 1 || got[0].Quantity != 1 {
			t.Fatalf("session state leaked through view: %+v", got)
		}
	})

	t.Run("rejects quantities above the line limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		_ = f.session.SetPatient("Ana", "")

		// No catalog expectation: the quantity is rejected before any lookup.
		_, err := f.session.AddSimpleLineItem(context.Background(), SimpleItemInput{ServiceID: "f2", Quantity: 1 << 46})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "quantity" {
			t.Fatalf("expected quantity validation error, got %v", err)
		}
		if err := f.session.SetCardInput("f2", entities.MaxLineItemQuantity+1, ""); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected card input rejection, got %v", err)
		}
		if v := f.session.View(); len(v.Draft.Items) != 0 || v.Total != 0 {
			t.Fatalf("expected an untouched draft, got %+v", v.Draft.Items)
		}
	})

	t.Run("rejects a non-positive card quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		if err := f.session.SetCardInput("f2", 0, ""); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestSession_CapturedPriceSurvivesCatalogEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)
	_ = f.session.SetPatient("Ana", "")

	svc := entities.Service{ID: "f2", Name: "Corona Zirconia", Price: 250000, Category: entities.CategoryCorona, Active: true}
	repriced := svc
	repriced.Price = 310000
	gomock.InOrder(
		f.catalog.EXPECT().GetByID(gomock.Any(), "owner-1", "f2").Return(svc, nil),
		f.catalog.EXPECT().GetByID(gomock.Any(), "owner-1", "f2").Return(repriced, nil),
	)

	first, err := f.session.AddSimpleLineItem(context.Background(), SimpleItemInput{ServiceID: "f2", Quantity: 2})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := f.session.AddSimpleLineItem(context.Background(), SimpleItemInput{ServiceID: "f2", Quantity: 1}); err != nil {
		t.Fatalf("second add: %v", err)
	}

	v := f.session.View()
	if len(v.Draft.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(v.Draft.Items))
	}
	if v.Draft.Items[0].ID != first.ID || v.Draft.Items[0].UnitPrice != 250000 {
		t.Fatalf("first item lost its captured price: %+v", v.Draft.Items[0])
	}
	if v.Draft.Items[1].UnitPrice != 310000 {
		t.Fatalf("second item should take the new price: %+v", v.Draft.Items[1])
	}
	if v.Total != 250000*2+310000 {
		t.Fatalf("unexpected total %d", v.Total)
	}
}

func TestSession_TotalTracksEveryEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)
	_ = f.session.SetPatient("Ana", "")

	services := map[string]entities.Service{
		"f2": {ID: "f2", Name: "Corona Zirconia", Price: 250000, Category: entities.CategoryCorona, Active: true},
		"p1": {ID: "p1", Name: "Puente 3 piezas", Price: 480000, Category: entities.CategoryPuente, Active: true},
	}
	f.catalog.EXPECT().GetByID(gomock.Any(), "owner-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, id string) (entities.Service, error) {
			return services[id], nil
		},
	).AnyTimes()

	detailed := func(tooth string, implant bool) func() error {
		return func() error {
			cfg := entities.DefaultMaterialConfiguration()
			cfg.Tooth = tooth
			cfg.ImplantBased = implant
			cfg.AuxiliaryMaterials = []string{"Troquel"}
			_, err := f.session.AddDetailedLineItem(cfg)
			return err
		}
	}
	simple := func(id string, qty int) func() error {
		return func() error {
			_, err := f.session.AddSimpleLineItem(context.Background(), SimpleItemInput{ServiceID: id, Quantity: qty})
			return err
		}
	}
	removeAt := func(i int) func() error {
		return func() error {
			return f.session.RemoveLineItem(f.session.View().Draft.Items[i].ID)
		}
	}

	steps := []struct {
		name string
		do   func() error
	}{
		{"simple f2 x1", simple("f2", 1)},
		{"detailed 15", detailed("15", true)},
		{"simple p1 x3", simple("p1", 3)},
		{"remove first", removeAt(0)},
		{"detailed 21", detailed("21", false)},
		{"simple f2 x4", simple("f2", 4)},
		{"remove middle", removeAt(1)},
		{"remove last", removeAt(2)},
	}
	for _, step := range steps {
		if err := step.do(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		v := f.session.View()
		var want int64
		units := 0
		for _, it := range v.Draft.Items {
			want += it.UnitPrice * int64(it.Quantity)
			units += it.Quantity
		}
		if v.Total != want || v.UnitCount != units {
			t.Fatalf("%s: total %d/%d units, want %d/%d", step.name, v.Total, v.UnitCount, want, units)
		}
	}
}

func TestSession_AddDetailedLineItem(t *testing.T) {
	t.Run("rejections leave the draft untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		_ = f.session.SetMode(entities.DraftModeDetailed)

		noTooth := entities.DefaultMaterialConfiguration()
		noTooth.AuxiliaryMaterials = []string{"Disco"}
		_, err := f.session.AddDetailedLineItem(noTooth)
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "tooth" {
			t.Fatalf("expected tooth validation error, got %v", err)
		}

		noAux := entities.DefaultMaterialConfiguration()
		noAux.Tooth = "15"
		_, err = f.session.AddDetailedLineItem(noAux)
		if !errors.As(err, &vErr) || vErr.Field != "auxiliary_materials" {
			t.Fatalf("expected auxiliary_materials validation error, got %v", err)
		}

		d := f.session.View().Draft
		if len(d.Items) != 0 || d.Mode != entities.DraftModeDetailed {
			t.Fatalf("expected untouched draft, got %+v", d)
		}
	})

	t.Run("catalog item plus detailed item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.start(t)
		_ = f.session.SetPatient("Ana", "")
		f.catalog.EXPECT().GetByID(gomock.Any(), "owner-1", "f2").
			Return(entities.Service{ID: "f2", Name: "Corona", Price: 250000, Active: true}, nil)
		if _, err := f.session.AddSimpleLineItem(context.Background(), SimpleItemInput{ServiceID: "f2", Quantity: 1}); err != nil {
			t.Fatalf("add simple: %v", err)
		}

		_ = f.session.SetMode(entities.DraftModeDetailed)
		cfg := entities.DefaultMaterialConfiguration()
		cfg.Tooth = "15"
		cfg.ImplantBased = true
		cfg.AuxiliaryMaterials = []string{"Disco"}
		_ = f.session.UpdateMaterialConfiguration(cfg)

		item, err := f.session.AddDetailedLineItem(cfg)
		if err != nil {
			t.Fatalf("add detailed: %v", err)
		}
		if item.UnitPrice != 220000 || item.Quantity != 1 || item.Tooth != "15" {
			t.Fatalf("unexpected item %+v", item)
		}
		ref, ok := item.Service.(entities.AdHocServiceRef)
		if !ok {
			t.Fatalf("expected ad-hoc service, got %T", item.Service)
		}
		if ref.ID != fmt.Sprintf("detallado-%d", f.now.UnixMilli()) || ref.Name != "Zirconia - Diente 15" {
			t.Fatalf("unexpected ref %+v", ref)
		}
		if item.Observations != cfg.Describe() {
			t.Fatalf("unexpected observations %q", item.Observations)
		}

		v := f.session.View()
		if v.Total != 470000 {
			t.Fatalf("expected total 470000, got %d", v.Total)
		}
		if v.Draft.Mode != entities.DraftModeSimple {
			t.Fatalf("expected simple mode, got %s", v.Draft.Mode)
		}
		if mustJSON(t, v.Draft.Material) != mustJSON(t, entities.DefaultMaterialConfiguration()) {
			t.Fatalf("expected material reset, got %+v", v.Draft.Material)
		}
	})
}

func TestSession_RemoveLineItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	cfg := entities.DefaultMaterialConfiguration()
	cfg.Tooth = "15"
	cfg.AuxiliaryMaterials = []string{"Disco"}
	item, _ := f.session.AddDetailedLineItem(cfg)

	if err := f.session.RemoveLineItem("missing"); !errors.Is(err, ErrLineItemNotFound) {
		t.Fatalf("expected ErrLineItemNotFound, got %v", err)
	}
	if err := f.session.RemoveLineItem(item.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v := f.session.View(); len(v.Draft.Items) != 0 || v.Total != 0 {
		t.Fatalf("expected empty draft, got %+v", v)
	}
}

func TestSession_ClearAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)
	f.start(t)
	_ = f.session.SetPatient("Ana", "")
	f.debouncer.Fire()
	_ = f.session.SetPatient("Ana María", "")

	if err := f.session.ClearAll(context.Background(), false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if f.session.View().Draft.PatientName != "Ana María" {
		t.Fatalf("unconfirmed clear must not change the draft")
	}

	scheduled := f.debouncer.Scheduled()
	if err := f.session.ClearAll(context.Background(), true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !f.session.View().Draft.IsPristine() {
		t.Fatalf("expected pristine draft")
	}
	if f.store.has(SnapshotKey) {
		t.Fatalf("expected snapshot removed")
	}
	if f.debouncer.Pending() || f.debouncer.Scheduled() != scheduled {
		t.Fatalf("clearing must cancel the pending save and schedule none")
	}
}

func TestSession_Finalize(t *testing.T) {
	t.Run("failure keeps draft and snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.start(t)
		_ = f.session.SetPatient("Ana", "")
		f.debouncer.Fire()
		f.submit = func(context.Context, string, entities.WorkOrderDraft) (entities.SubmissionReceipt, error) {
			return entities.SubmissionReceipt{}, errors.New("db down")
		}

		if _, err := f.session.Finalize(context.Background()); err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down, got %v", err)
		}
		if f.session.View().Draft.PatientName != "Ana" || !f.store.has(SnapshotKey) {
			t.Fatalf("expected draft and snapshot kept")
		}
	})

	t.Run("success clears draft and snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t, ctrl)
		f.start(t)
		_ = f.session.SetPatient("Ana", "")
		f.debouncer.Fire()
		_ = f.session.SetPatient("Ana B", "")

		var submitted entities.WorkOrderDraft
		f.submit = func(_ context.Context, ownerID string, d entities.WorkOrderDraft) (entities.SubmissionReceipt, error) {
			if ownerID != "owner-1" {
				t.Fatalf("unexpected owner %s", ownerID)
			}
			submitted = d
			return entities.SubmissionReceipt{WorkOrder: entities.WorkOrder{ID: "wo-1"}, PatientName: d.PatientName}, nil
		}

		receipt, err := f.session.Finalize(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if receipt.WorkOrder.ID != "wo-1" || submitted.PatientName != "Ana B" {
			t.Fatalf("unexpected receipt %+v", receipt)
		}
		if !f.session.View().Draft.IsPristine() || f.store.has(SnapshotKey) {
			t.Fatalf("expected draft and snapshot cleared")
		}
		if f.debouncer.Fire() {
			t.Fatalf("expected no pending save after submission")
		}
	})
}

func TestSession_FinalizeInFlight(t *testing.T) {
	setup := func(t *testing.T, ctrl *gomock.Controller) (*fixture, chan struct{}, chan struct{}) {
		f := newFixture(t, ctrl)
		f.start(t)
		_ = f.session.SetPatient("Ana", "")
		d := sampleDraft()
		f.session.mu.Lock()
		f.session.draft.Items = d.Items
		f.session.mu.Unlock()

		entered := make(chan struct{})
		release := make(chan struct{})
		f.submit = func(context.Context, string, entities.WorkOrderDraft) (entities.SubmissionReceipt, error) {
			close(entered)
			<-release
			return entities.SubmissionReceipt{WorkOrder: entities.WorkOrder{ID: "wo-1"}}, nil
		}
		return f, entered, release
	}
	finalize := func(f *fixture) chan error {
		done := make(chan error, 1)
		go func() {
			_, err := f.session.Finalize(context.Background())
			done <- err
		}()
		return done
	}
	waitDone := func(t *testing.T, done chan error) {
		t.Helper()
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("finalize: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("finalize did not return")
		}
	}

	t.Run("session stays usable while submitting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f, entered, release := setup(t, ctrl)
		done := finalize(f)
		<-entered

		viewed := make(chan View, 1)
		go func() { viewed <- f.session.View() }()
		select {
		case v := <-viewed:
			if len(v.Draft.Items) != 2 {
				t.Fatalf("expected the draft still visible, got %+v", v.Draft.Items)
			}
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("View blocked while a submission was in flight")
		}

		if _, err := f.session.Finalize(context.Background()); !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}

		close(release)
		waitDone(t, done)
		if !f.session.View().Draft.IsPristine() {
			t.Fatalf("expected a cleared draft")
		}
	})

	t.Run("edits made while submitting are kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f, entered, release := setup(t, ctrl)
		done := finalize(f)
		<-entered

		cfg := entities.DefaultMaterialConfiguration()
		cfg.Tooth = "36"
		cfg.AuxiliaryMaterials = []string{"Troquel"}
		added, err := f.session.AddDetailedLineItem(cfg)
		if err != nil {
			t.Fatalf("add during submission: %v", err)
		}

		close(release)
		waitDone(t, done)

		v := f.session.View()
		if len(v.Draft.Items) != 1 || v.Draft.Items[0].ID != added.ID {
			t.Fatalf("expected only the new item to remain, got %+v", v.Draft.Items)
		}
		if v.Total != added.UnitPrice {
			t.Fatalf("unexpected total %d", v.Total)
		}
		if !f.debouncer.Fire() {
			t.Fatalf("expected the kept edits to be saved")
		}
		if snap := f.stored(t); len(snap.Draft.Items) != 1 {
			t.Fatalf("expected snapshot of the kept edits, got %+v", snap.Draft.Items)
		}
	})

	t.Run("clear during submission wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f, entered, release := setup(t, ctrl)
		done := finalize(f)
		<-entered

		if err := f.session.ClearAll(context.Background(), true); err != nil {
			t.Fatalf("clear: %v", err)
		}
		_ = f.session.SetPatient("Luis", "")

		close(release)
		waitDone(t, done)
		if got := f.session.View().Draft; got.PatientName != "Luis" || len(got.Items) != 0 {
			t.Fatalf("expected the post-clear draft untouched, got %+v", got)
		}
	})
}

func TestRegistry(t *testing.T) {
	stores := map[string]*memStore{}
	reg := NewRegistry(Dependencies{Logger: logger.Discard()}, func(ownerID string) interfaces.ILocalStorage {
		s := newMemStore()
		stores[ownerID] = s
		return s
	}, func() scheduler.Debouncer { return scheduler.NewManualDebouncer() })

	a, created := reg.Open("a")
	if !created {
		t.Fatalf("expected new session")
	}
	again, created := reg.Open("a")
	if created || again != a {
		t.Fatalf("expected the same session")
	}
	if _, ok := reg.Get("b"); ok {
		t.Fatalf("expected no session for b")
	}

	if _, err := a.Start(context.Background(), nil); err != nil {
		t.Fatalf("start: %v", err)
	}
	_ = a.SetPatient("Ana", "")
	if !reg.Close(context.Background(), "a") {
		t.Fatalf("expected close to find the session")
	}
	if stores["a"].sets != 1 {
		t.Fatalf("expected unload save on close")
	}
	if reg.Close(context.Background(), "a") {
		t.Fatalf("expected session forgotten")
	}
}

func TestSession_StorageFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock_interfaces.NewMockILocalStorage(ctrl)
	debouncer := scheduler.NewManualDebouncer()
	session := NewSession("owner-1", Dependencies{
		Catalog:   mock_interfaces.NewMockICatalogRepository(ctrl),
		Directory: mock_interfaces.NewMockIDirectoryRepository(ctrl),
		Storage:   storage,
		Debouncer: debouncer,
		Logger:    logger.Discard(),
		Now:       func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) },
	})

	storage.EXPECT().Get(gomock.Any(), SnapshotKey).Return(nil, false, errors.New("disk unavailable"))
	res, err := session.Start(context.Background(), Answer(true))
	if err != nil {
		t.Fatalf("unreadable storage must not fail start: %v", err)
	}
	if res.Outcome != OutcomeEmpty {
		t.Fatalf("expected empty start, got %s", res.Outcome)
	}

	if err := session.SetPatient("Ana", ""); err != nil {
		t.Fatalf("set patient: %v", err)
	}
	storage.EXPECT().Set(gomock.Any(), SnapshotKey, gomock.Any()).Return(errors.New("disk full"))
	if !debouncer.Fire() {
		t.Fatalf("expected a pending save")
	}
	if session.View().Draft.PatientName != "Ana" {
		t.Fatalf("a failed save must leave the draft untouched")
	}
}

func TestRegistry_ExpireIdle(t *testing.T) {
	clock := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	stores := map[string]*memStore{}
	reg := NewRegistry(Dependencies{
		Logger: logger.Discard(),
		Now:    func() time.Time { return clock },
	}, func(ownerID string) interfaces.ILocalStorage {
		s := newMemStore()
		stores[ownerID] = s
		return s
	}, func() scheduler.Debouncer { return scheduler.NewManualDebouncer() })

	open := func(owner string) *Session {
		s, _ := reg.Open(owner)
		if _, err := s.Start(context.Background(), nil); err != nil {
			t.Fatalf("start %s: %v", owner, err)
		}
		return s
	}
	idle := open("idle")
	_ = idle.SetPatient("Ana", "")
	busy := open("busy")

	clock = clock.Add(20 * time.Minute)
	_ = open("recent").View()

	busy.mu.Lock()
	busy.submitting = true
	busy.mu.Unlock()

	clock = clock.Add(15 * time.Minute)
	if n := reg.ExpireIdle(context.Background(), clock, 30*time.Minute); n != 1 {
		t.Fatalf("expected one expired session, got %d", n)
	}
	if _, ok := reg.Get("idle"); ok {
		t.Fatalf("expected the idle session forgotten")
	}
	if stores["idle"].sets != 1 || !stores["idle"].has(SnapshotKey) {
		t.Fatalf("expected the idle session saved on expiry")
	}
	if err := idle.SetPatient("Luis", ""); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected the expired session closed, got %v", err)
	}
	for _, owner := range []string{"busy", "recent"} {
		if _, ok := reg.Get(owner); !ok {
			t.Fatalf("expected %s to stay open", owner)
		}
	}
}
