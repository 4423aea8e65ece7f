// Package draft implements work-order composition: the in-memory draft of one
// user, its autosave/recovery protocol and the hand-off to submission.
package draft

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/domain/pricing"
	"dental_lab/internal/metrics"
	"dental_lab/internal/scheduler"
	"dental_lab/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrLineItemNotFound     = errors.New("line item not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceInactive      = errors.New("service is inactive")
	ErrClinicNotFound       = errors.New("clinic not found")
	ErrDentistNotFound      = errors.New("dentist not found")
	ErrTechnicianNotFound   = errors.New("technician not found")
	ErrSessionClosed        = errors.New("draft session closed")
	ErrSubmissionInFlight   = errors.New("draft submission already in progress")
)

// Submitter persists a finished draft.
type Submitter interface {
	Submit(ctx context.Context, ownerID string, d entities.WorkOrderDraft) (entities.SubmissionReceipt, error)
}

// Dependencies wires a Session. Zero-valued optional fields get defaults.
type Dependencies struct {
	Catalog    interfaces.ICatalogRepository
	Directory  interfaces.IDirectoryRepository
	Submitter  Submitter
	Storage    interfaces.ILocalStorage
	Debouncer  scheduler.Debouncer
	Calculator *pricing.Calculator
	Logger     *logrus.Logger
	Now        func() time.Time
	NewID      func() string
}

// CardInput is the transient quantity/tooth entered on one catalog card.
// It is not part of the draft and is not persisted.
type CardInput struct {
	Quantity int    `json:"quantity"`
	Tooth    string `json:"tooth"`
}

func defaultCardInput() CardInput {
	return CardInput{Quantity: 1}
}

// SimpleItemInput adds a catalog service to the draft.
type SimpleItemInput struct {
	ServiceID    string
	Quantity     int
	Tooth        string
	Observations string
}

type StartOutcome string

const (
	OutcomeEmpty          StartOutcome = "empty"
	OutcomeExpired        StartOutcome = "expired"
	OutcomeRestored       StartOutcome = "restored"
	OutcomeDeclined       StartOutcome = "declined"
	OutcomeAlreadyStarted StartOutcome = "already_started"
)

// RecoveredNotice is shown once after a snapshot was restored.
const RecoveredNotice = "Previous work recovered"

type StartResult struct {
	Outcome  StartOutcome `json:"outcome"`
	Prompted bool         `json:"prompted"`
	Notice   string       `json:"notice,omitempty"`
}

// View is a read-only copy of the session state.
type View struct {
	Draft           entities.WorkOrderDraft `json:"draft"`
	Total           int64                   `json:"total"`
	UnitCount       int                     `json:"unit_count"`
	CardInputs      map[string]CardInput    `json:"card_inputs"`
	Started         bool                    `json:"started"`
	AutosavePending bool                    `json:"autosave_pending"`
}

// Session is one page lifetime of the work-order builder for one owner.
//
// Every draft mutation schedules a debounced snapshot save once the startup
// check has completed. Before that, mutations never touch storage so a snapshot
// that has not been looked at cannot be overwritten.
type Session struct {
	ownerID   string
	catalog   interfaces.ICatalogRepository
	directory interfaces.IDirectoryRepository
	submitter Submitter
	calc      *pricing.Calculator
	autosave  *autosaver
	now       func() time.Time
	newID     func() string
	log       *logrus.Entry

	mu         sync.Mutex
	draft      entities.WorkOrderDraft
	cardInputs map[string]CardInput
	started    bool
	closed     bool
	submitting bool

	// saveGen invalidates debounced saves queued before a reset.
	saveGen    uint64
	// rev counts draft mutations.
	rev        uint64
	lastActive time.Time
}

func NewSession(ownerID string, deps Dependencies) *Session {
	if deps.Debouncer == nil {
		deps.Debouncer = scheduler.NewTimerDebouncer()
	}
	if deps.Calculator == nil {
		deps.Calculator = pricing.NewCalculator(pricing.DefaultTable())
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	log := deps.Logger.WithFields(logrus.Fields{"component": "draft", "owner_id": ownerID})

	return &Session{
		ownerID:   ownerID,
		catalog:   deps.Catalog,
		directory: deps.Directory,
		submitter: deps.Submitter,
		calc:      deps.Calculator,
		autosave: &autosaver{
			store:     deps.Storage,
			debouncer: deps.Debouncer,
			now:       deps.Now,
			log:       log,
		},
		now:        deps.Now,
		newID:      deps.NewID,
		log:        log,
		draft:      entities.NewWorkOrderDraft(),
		cardInputs: map[string]CardInput{},
		lastActive: deps.Now(),
	}
}

func (s *Session) OwnerID() string {
	return s.ownerID
}

// Start runs the startup check once per session.
//
// No snapshot: start empty. Snapshot older than MaxSnapshotAge or holding an
// empty draft: discard it silently. Otherwise ask confirm; on yes every draft
// field is restored from the snapshot, on no the snapshot is discarded.
func (s *Session) Start(ctx context.Context, confirm Confirmer) (StartResult, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return StartResult{}, ErrSessionClosed
	}
	if s.started {
		s.mu.Unlock()
		return StartResult{Outcome: OutcomeAlreadyStarted}, nil
	}
	s.mu.Unlock()

	res := s.startupCheck(ctx, confirm)
	metrics.DraftRecoveries.WithLabelValues(string(res.outcome)).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	if res.outcome == OutcomeRestored {
		s.draft = res.snapshot.Draft
		s.cardInputs = map[string]CardInput{}
	}
	s.started = true
	s.lastActive = s.now()
	s.log.WithField("outcome", res.outcome).Info("draft startup check completed")

	out := StartResult{Outcome: res.outcome, Prompted: res.prompted}
	if res.outcome == OutcomeRestored {
		out.Notice = RecoveredNotice
	}
	return out, nil
}

// PendingRecovery reports the prompt Start would show, without touching the
// snapshot. ok is false once started or when Start would not ask.
func (s *Session) PendingRecovery(ctx context.Context) (prompt RecoveryPrompt, ok bool) {
	s.mu.Lock()
	started, closed := s.started, s.closed
	s.mu.Unlock()
	if started || closed {
		return RecoveryPrompt{}, false
	}

	snap, found := s.autosave.read(ctx)
	if !found || s.now().Sub(snap.SavedAt) > MaxSnapshotAge || snap.Draft.IsPristine() {
		return RecoveryPrompt{}, false
	}
	return promptFor(snap), true
}

func promptFor(snap Snapshot) RecoveryPrompt {
	return RecoveryPrompt{
		SavedAt:     snap.SavedAt,
		PatientName: snap.Draft.PatientName,
		ItemCount:   len(snap.Draft.Items),
		Total:       snap.Draft.Total(),
	}
}

type startupResult struct {
	outcome  StartOutcome
	prompted bool
	snapshot Snapshot
}

func (s *Session) startupCheck(ctx context.Context, confirm Confirmer) startupResult {
	snap, found := s.autosave.read(ctx)
	if !found {
		return startupResult{outcome: OutcomeEmpty}
	}

	age := s.now().Sub(snap.SavedAt)
	if age > MaxSnapshotAge {
		s.log.WithField("age", age.String()).Info("discarding stale draft snapshot")
		s.autosave.remove(ctx)
		return startupResult{outcome: OutcomeExpired}
	}
	if snap.Draft.IsPristine() {
		s.autosave.remove(ctx)
		return startupResult{outcome: OutcomeEmpty}
	}

	if confirm != nil && confirm.ConfirmRecovery(ctx, promptFor(snap)) {
		return startupResult{outcome: OutcomeRestored, prompted: true, snapshot: snap}
	}
	s.autosave.remove(ctx)
	return startupResult{outcome: OutcomeDeclined, prompted: true}
}

// mutate applies fn to the draft and schedules an autosave. fn returning an
// error leaves the draft untouched.
func (s *Session) mutate(fn func(d *entities.WorkOrderDraft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	next := s.draft.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	next.UpdatedAt = s.now().UTC()
	s.draft = next
	s.rev++
	s.lastActive = s.now()
	s.scheduleSaveLocked()
	return nil
}

func (s *Session) scheduleSaveLocked() {
	if !s.started {
		return
	}
	gen := s.saveGen
	s.autosave.schedule(func() { s.debouncedSave(gen) })
}

// debouncedSave checks the generation and writes under one lock hold; no reset
// lands in between.
func (s *Session) debouncedSave(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.saveGen {
		return
	}
	s.autosave.write(context.Background(), s.draft.Clone(), "debounce")
}

// SelectClinic sets the clinic and always clears the dentist, whose list is
// clinic-scoped. An empty id clears the clinic.
func (s *Session) SelectClinic(ctx context.Context, clinicID string) error {
	clinicID = strings.TrimSpace(clinicID)
	if clinicID != "" {
		c, err := s.directory.GetClinic(ctx, s.ownerID, clinicID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return ErrClinicNotFound
		}
	}
	return s.mutate(func(d *entities.WorkOrderDraft) error {
		d.ClinicID = clinicID
		d.DentistID = ""
		return nil
	})
}

// SelectDentist requires a selected clinic and a dentist belonging to it.
func (s *Session) SelectDentist(ctx context.Context, dentistID string) error {
	dentistID = strings.TrimSpace(dentistID)
	if dentistID == "" {
		return s.mutate(func(d *entities.WorkOrderDraft) error {
			d.DentistID = ""
			return nil
		})
	}

	clinicID := s.View().Draft.ClinicID
	if clinicID == "" {
		return entities.NewValidationError("clinic_id", "select a clinic first")
	}
	dentist, err := s.directory.GetDentist(ctx, s.ownerID, dentistID)
	if err != nil {
		return err
	}
	if dentist.ID == "" {
		return ErrDentistNotFound
	}

	return s.mutate(func(d *entities.WorkOrderDraft) error {
		// The clinic may have changed while the dentist was being looked up.
		if dentist.ClinicID != d.ClinicID {
			return entities.NewValidationError("dentist_id", "dentist does not belong to the selected clinic")
		}
		d.DentistID = dentist.ID
		return nil
	})
}

func (s *Session) SelectTechnician(ctx context.Context, technicianID string) error {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID != "" {
		tech, err := s.directory.GetTechnician(ctx, s.ownerID, technicianID)
		if err != nil {
			return err
		}
		if tech.ID == "" {
			return ErrTechnicianNotFound
		}
	}
	return s.mutate(func(d *entities.WorkOrderDraft) error {
		d.TechnicianID = technicianID
		return nil
	})
}

func (s *Session) SetPatient(name, taxID string) error {
	return s.mutate(func(d *entities.WorkOrderDraft) error {
		d.PatientName = name
		d.PatientTaxID = strings.TrimSpace(taxID)
		return nil
	})
}

func (s *Session) SetMode(mode entities.DraftMode) error {
	if mode != entities.DraftModeSimple && mode != entities.DraftModeDetailed {
		return entities.NewValidationError("mode", "unknown mode")
	}
	return s.mutate(func(d *entities.WorkOrderDraft) error {
		d.Mode = mode
		return nil
	})
}

// SetFilters stores the catalog category filter and search text. An empty
// category means every category.
func (s *Session) SetFilters(category entities.Category, search string) error {
	if category != "" && !category.Valid() {
		return entities.NewValidationError("category", "unknown category")
	}
	return s.mutate(func(d *entities.WorkOrderDraft) error {
		d.CategoryFilter = category
		d.SearchText = search
		return nil
	})
}

func (s *Session) UpdateMaterialConfiguration(cfg entities.MaterialConfiguration) error {
	return s.mutate(func(d *entities.WorkOrderDraft) error {
		d.Material = cfg.Clone()
		if d.Material.AuxiliaryMaterials == nil {
			d.Material.AuxiliaryMaterials = []string{}
		}
		return nil
	})
}

// SetCardInput remembers the quantity/tooth typed on a catalog card.
func (s *Session) SetCardInput(serviceID string, quantity int, tooth string) error {
	if err := entities.ValidateQuantity(quantity); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cardInputs[serviceID] = CardInput{Quantity: quantity, Tooth: tooth}
	s.lastActive = s.now()
	return nil
}

// CardInput returns the card input of a service, or the defaults.
func (s *Session) CardInput(serviceID string) CardInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in, ok := s.cardInputs[serviceID]; ok {
		return in
	}
	return defaultCardInput()
}

// AddSimpleLineItem appends a catalog service priced at its current catalog
// price. A zero quantity falls back to the card input of that service. The card
// input is reset to its defaults afterwards.
func (s *Session) AddSimpleLineItem(ctx context.Context, in SimpleItemInput) (entities.LineItem, error) {
	if strings.TrimSpace(s.View().Draft.PatientName) == "" {
		return entities.LineItem{}, entities.NewValidationError("patient_name", "enter the patient name before adding services")
	}

	card := s.CardInput(in.ServiceID)
	if in.Quantity == 0 {
		in.Quantity = card.Quantity
	}
	if in.Tooth == "" {
		in.Tooth = card.Tooth
	}
	if err := entities.ValidateQuantity(in.Quantity); err != nil {
		return entities.LineItem{}, err
	}

	svc, err := s.catalog.GetByID(ctx, s.ownerID, in.ServiceID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if svc.ID == "" {
		return entities.LineItem{}, ErrServiceNotFound
	}
	if !svc.Active {
		return entities.LineItem{}, ErrServiceInactive
	}

	item := entities.LineItem{
		ID:           s.newID(),
		Service:      entities.CatalogServiceRef{ServiceID: svc.ID, Name: svc.Name, Category: svc.Category},
		Quantity:     in.Quantity,
		Tooth:        strings.TrimSpace(in.Tooth),
		UnitPrice:    svc.Price,
		Observations: strings.TrimSpace(in.Observations),
	}
	err = s.mutate(func(d *entities.WorkOrderDraft) error {
		if strings.TrimSpace(d.PatientName) == "" {
			return entities.NewValidationError("patient_name", "enter the patient name before adding services")
		}
		d.Items = append(d.Items, item)
		return nil
	})
	if err != nil {
		return entities.LineItem{}, err
	}

	s.mu.Lock()
	delete(s.cardInputs, in.ServiceID)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"service_id": svc.ID, "quantity": item.Quantity, "unit_price": item.UnitPrice}).Debug("line item added")
	return item, nil
}

// AddDetailedLineItem prices cfg and appends it as an ad-hoc service. On
// success the material configuration is reset and the draft leaves detailed
// mode. On failure nothing changes.
func (s *Session) AddDetailedLineItem(cfg entities.MaterialConfiguration) (entities.LineItem, error) {
	cfg = cfg.Clone()
	cfg.Tooth = strings.TrimSpace(cfg.Tooth)
	if err := cfg.ValidateForItem(); err != nil {
		return entities.LineItem{}, err
	}

	now := s.now()
	price := s.calc.Price(cfg)
	item := entities.LineItem{
		ID: s.newID(),
		Service: entities.AdHocServiceRef{
			ID:            fmt.Sprintf("detallado-%d", now.UnixMilli()),
			Name:          fmt.Sprintf("%s - Diente %s", cfg.Material, cfg.Tooth),
			Configuration: cfg,
		},
		Quantity:     1,
		Tooth:        cfg.Tooth,
		UnitPrice:    price,
		Observations: cfg.Describe(),
	}

	err := s.mutate(func(d *entities.WorkOrderDraft) error {
		d.Items = append(d.Items, item)
		d.Material = entities.DefaultMaterialConfiguration()
		d.Mode = entities.DraftModeSimple
		return nil
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	s.log.WithFields(logrus.Fields{"material": cfg.Material, "tooth": cfg.Tooth, "unit_price": price}).Debug("detailed line item added")
	return item, nil
}

func (s *Session) RemoveLineItem(itemID string) error {
	return s.mutate(func(d *entities.WorkOrderDraft) error {
		for i, it := range d.Items {
			if it.ID == itemID {
				d.Items = append(d.Items[:i], d.Items[i+1:]...)
				return nil
			}
		}
		return ErrLineItemNotFound
	})
}

// ClearAll resets the draft to its defaults and deletes the snapshot. The
// caller must pass the user's explicit confirmation.
func (s *Session) ClearAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.resetLocked(ctx)
	s.log.Info("draft cleared")
	return nil
}

func (s *Session) resetLocked(ctx context.Context) {
	s.autosave.cancel()
	s.saveGen++
	s.draft = entities.NewWorkOrderDraft()
	s.cardInputs = map[string]CardInput{}
	s.autosave.remove(ctx)
}

// Finalize submits the draft. On success the draft and snapshot are cleared;
// on failure both are left as they were so the user can retry.
//
// The session is not locked while the submission is in flight. Edits made in
// the meantime survive a successful submission; only the submitted line items
// are dropped from the draft. A ClearAll in the meantime wins.
func (s *Session) Finalize(ctx context.Context) (entities.SubmissionReceipt, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entities.SubmissionReceipt{}, ErrSessionClosed
	}
	if s.submitting {
		s.mu.Unlock()
		return entities.SubmissionReceipt{}, ErrSubmissionInFlight
	}
	s.submitting = true
	submitted := s.draft.Clone()
	gen, rev := s.saveGen, s.rev
	s.mu.Unlock()

	receipt, err := s.submitter.Submit(ctx, s.ownerID, submitted)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	s.lastActive = s.now()
	if err != nil {
		s.log.WithError(err).Warn("work order submission failed")
		return entities.SubmissionReceipt{}, err
	}
	s.settleSubmittedLocked(ctx, submitted, gen, rev)
	s.log.WithFields(logrus.Fields{"work_order_id": receipt.WorkOrder.ID, "total": receipt.Total}).Info("work order submitted")
	return receipt, nil
}

func (s *Session) settleSubmittedLocked(ctx context.Context, submitted entities.WorkOrderDraft, gen, rev uint64) {
	if gen != s.saveGen {
		return
	}
	if rev == s.rev {
		s.resetLocked(ctx)
		return
	}

	sent := make(map[string]struct{}, len(submitted.Items))
	for _, it := range submitted.Items {
		sent[it.ID] = struct{}{}
	}
	next := s.draft.Clone()
	kept := next.Items[:0]
	for _, it := range next.Items {
		if _, ok := sent[it.ID]; !ok {
			kept = append(kept, it)
		}
	}
	next.Items = kept
	next.UpdatedAt = s.now().UTC()
	s.draft = next
	s.rev++
	s.log.WithField("kept_items", len(kept)).Info("draft edited during submission; keeping the edits")

	if s.closed {
		s.autosave.write(ctx, s.draft.Clone(), "unload")
		return
	}
	s.scheduleSaveLocked()
}

// Unload saves immediately, bypassing the debounce, and closes the session.
// Nothing is written when the startup check never completed.
func (s *Session) Unload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.autosave.cancel()
	if s.started {
		s.autosave.write(ctx, s.draft.Clone(), "unload")
	}
	s.closed = true
}

// IdleSince reports when the session was last used. ok is false while a
// submission is in flight.
func (s *Session) IdleSince() (at time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive, !s.submitting
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = s.now()
	inputs := make(map[string]CardInput, len(s.cardInputs))
	for k, v := range s.cardInputs {
		inputs[k] = v
	}
	return View{
		Draft:           s.draft.Clone(),
		Total:           s.draft.Total(),
		UnitCount:       s.draft.UnitCount(),
		CardInputs:      inputs,
		Started:         s.started,
		AutosavePending: s.autosave.pending(),
	}
}
