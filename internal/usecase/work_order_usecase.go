package usecase

import (
	"context"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/metrics"
	"dental_lab/internal/usecase/interfaces"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrWorkOrderNotFound   = errors.New("work order not found")
	ErrInvalidWorkOrderID  = errors.New("invalid work order id")
	ErrInvalidStatus       = errors.New("invalid work order status")
	ErrWorkOrderDelivered  = errors.New("work order already delivered")
	ErrStatusConflict      = errors.New("work order status changed concurrently")
	ErrWorkOrderIncomplete = errors.New("work order saved without its services")
	ErrInvalidDateRange    = errors.New("invalid date range")
)

// WorkOrderFilter narrows the work-order list. Zero fields match everything;
// From and To are inclusive bounds on the received date.
type WorkOrderFilter struct {
	ClinicID string
	Status   entities.WorkOrderStatus
	From     time.Time
	To       time.Time
}

// WorkOrderDetail is a work order with its per-unit service rows.
type WorkOrderDetail struct {
	WorkOrder entities.WorkOrder          `json:"work_order"`
	Services  []entities.WorkOrderService `json:"services"`
}

// IWorkOrderUseCase turns drafts into persisted work orders and moves them
// through production.
//
//   - Submit: validate, price, write parent and per-unit rows
//   - AdvanceStatus: pendiente -> produccion -> terminado -> entregado
//   - FindOrphans: parents left without rows by a failed second insert

type IWorkOrderUseCase interface {
	Submit(ctx context.Context, ownerID string, d entities.WorkOrderDraft) (entities.SubmissionReceipt, error)
	AdvanceStatus(ctx context.Context, ownerID, id string) (entities.WorkOrder, error)
	ListWorkOrders(ctx context.Context, ownerID string, f WorkOrderFilter) ([]entities.WorkOrder, error)
	GetWorkOrder(ctx context.Context, ownerID, id string) (WorkOrderDetail, error)
	FindOrphans(ctx context.Context, ownerID string) ([]entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo   interfaces.IWorkOrderRepository
	events interfaces.IEventPublisher
	log    *logrus.Entry
	now    func() time.Time
	newID  func() string
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

// NewWorkOrderUseCase wires the use case. events may be nil.
func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, events interfaces.IEventPublisher, log *logrus.Logger) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		repo:   repo,
		events: events,
		log:    log.WithField("component", "work_order"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Submit persists a draft as one parent work order plus one row per unit of
// every line item. Nothing is written when validation fails.
//
// When the repository can write atomically and the order fits in one
// transaction, parent and rows go together. Otherwise they are two dependent
// inserts; a failure of the second leaves the parent behind, which is logged
// and later reported by FindOrphans.
func (u *WorkOrderUseCase) Submit(ctx context.Context, ownerID string, d entities.WorkOrderDraft) (entities.SubmissionReceipt, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.SubmissionReceipt{}, ErrInvalidOwnerID
	}
	if err := d.ValidateForSubmission(); err != nil {
		metrics.WorkOrderSubmissions.WithLabelValues("invalid").Inc()
		return entities.SubmissionReceipt{}, err
	}

	started := time.Now()
	defer func() { metrics.WorkOrderSubmissionDuration.Observe(time.Since(started).Seconds()) }()

	order := u.buildWorkOrder(ownerID, d)
	rows := u.buildServiceRows(order, d.Items)
	log := u.log.WithFields(logrus.Fields{
		"owner_id":      ownerID,
		"work_order_id": order.ID,
		"items":         len(d.Items),
		"units":         len(rows),
		"total":         order.TotalPrice,
	})

	atomic := false
	if tx, ok := u.repo.(interfaces.ITransactionalWorkOrderWriter); ok && len(rows)+1 <= tx.MaxItems() {
		created, err := tx.CreateWithServices(ctx, order, rows)
		if err != nil {
			log.WithError(err).Error("work order transactional write failed")
			metrics.WorkOrderSubmissions.WithLabelValues("error").Inc()
			return entities.SubmissionReceipt{}, err
		}
		order = created
		atomic = true
	} else {
		created, err := u.repo.Create(ctx, order)
		if err != nil {
			log.WithError(err).Error("work order insert failed")
			metrics.WorkOrderSubmissions.WithLabelValues("error").Inc()
			return entities.SubmissionReceipt{}, err
		}
		order = created
		if err := u.repo.CreateServices(ctx, rows); err != nil {
			log.WithError(err).Error("work order services insert failed; parent left without services")
			metrics.WorkOrderSubmissions.WithLabelValues("orphaned").Inc()
			return entities.SubmissionReceipt{}, fmt.Errorf("%w: %w", ErrWorkOrderIncomplete, err)
		}
	}

	metrics.WorkOrderSubmissions.WithLabelValues("ok").Inc()
	log.WithField("atomic", atomic).Info("work order submitted")

	u.publishCreated(ctx, order, len(rows))

	return entities.SubmissionReceipt{
		WorkOrder:   order,
		PatientName: order.PatientName,
		Total:       order.TotalPrice,
		ItemCount:   len(d.Items),
		UnitCount:   len(rows),
		Atomic:      atomic,
	}, nil
}

func (u *WorkOrderUseCase) buildWorkOrder(ownerID string, d entities.WorkOrderDraft) entities.WorkOrder {
	now := u.now().UTC()
	received := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var technician *string
	if id := strings.TrimSpace(d.TechnicianID); id != "" {
		technician = &id
	}

	observations := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		observations = append(observations, it.EffectiveObservations())
	}

	return entities.WorkOrder{
		ID:                u.newID(),
		OwnerID:           ownerID,
		ClinicID:          d.ClinicID,
		DentistID:         d.DentistID,
		TechnicianID:      technician,
		PatientName:       strings.TrimSpace(d.PatientName),
		PatientTaxID:      strings.TrimSpace(d.PatientTaxID),
		ReceivedDate:      received,
		EstimatedDelivery: received.AddDate(0, 0, entities.DeliveryLeadDays),
		Status:            entities.WorkOrderStatusPendiente,
		TotalPrice:        d.Total(),
		Observations:      strings.Join(observations, "\n"),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (u *WorkOrderUseCase) buildServiceRows(order entities.WorkOrder, items []entities.LineItem) []entities.WorkOrderService {
	rows := make([]entities.WorkOrderService, 0, len(items))
	for _, it := range items {
		for i := 0; i < it.Quantity; i++ {
			rows = append(rows, entities.WorkOrderService{
				ID:           u.newID(),
				WorkOrderID:  order.ID,
				OwnerID:      order.OwnerID,
				ServiceID:    it.Service.RefID(),
				ServiceName:  it.Service.RefName(),
				UnitPrice:    it.UnitPrice,
				Tooth:        it.Tooth,
				Observations: it.Observations,
				CreatedAt:    order.CreatedAt,
			})
		}
	}
	return rows
}

// AdvanceStatus moves the order exactly one step forward. The update is
// conditional on the status read, so two concurrent advances cannot skip a step.
func (u *WorkOrderUseCase) AdvanceStatus(ctx context.Context, ownerID, id string) (entities.WorkOrder, error) {
	ownerID, id = strings.TrimSpace(ownerID), strings.TrimSpace(id)
	if ownerID == "" {
		return entities.WorkOrder{}, ErrInvalidOwnerID
	}
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	current, err := u.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if current.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	next, ok := current.Status.Next()
	if !ok {
		return entities.WorkOrder{}, ErrWorkOrderDelivered
	}

	updated, err := u.repo.UpdateStatus(ctx, ownerID, id, current.Status, next)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrStatusConflict
	}

	metrics.StatusTransitions.WithLabelValues(string(next)).Inc()
	u.log.WithFields(logrus.Fields{"work_order_id": id, "from": current.Status, "to": next}).Info("work order status advanced")

	if u.events != nil {
		ev := entities.WorkOrderStatusChangedEvent{
			WorkOrderID: id,
			OwnerID:     ownerID,
			From:        current.Status,
			To:          next,
			EventTime:   u.now().UTC(),
		}
		if err := u.events.PublishWorkOrderStatusChanged(ctx, ev); err != nil {
			u.log.WithError(err).WithField("work_order_id", id).Warn("status changed event publish failed")
		}
	}
	return updated, nil
}

// ListWorkOrders returns the owner's orders matching f, newest first.
func (u *WorkOrderUseCase) ListWorkOrders(ctx context.Context, ownerID string, f WorkOrderFilter) ([]entities.WorkOrder, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return nil, ErrInvalidDateRange
	}

	all, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.WorkOrder, 0, len(all))
	for _, o := range all {
		if f.ClinicID != "" && o.ClinicID != f.ClinicID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if !f.From.IsZero() && o.ReceivedDate.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && o.ReceivedDate.After(f.To) {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *WorkOrderUseCase) GetWorkOrder(ctx context.Context, ownerID, id string) (WorkOrderDetail, error) {
	ownerID, id = strings.TrimSpace(ownerID), strings.TrimSpace(id)
	if ownerID == "" {
		return WorkOrderDetail{}, ErrInvalidOwnerID
	}
	if id == "" {
		return WorkOrderDetail{}, ErrInvalidWorkOrderID
	}

	o, err := u.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return WorkOrderDetail{}, err
	}
	if o.ID == "" {
		return WorkOrderDetail{}, ErrWorkOrderNotFound
	}
	rows, err := u.repo.ListServices(ctx, o.ID)
	if err != nil {
		return WorkOrderDetail{}, err
	}
	return WorkOrderDetail{WorkOrder: o, Services: rows}, nil
}

// FindOrphans lists work orders that have no service rows. It only reports;
// nothing is deleted or repaired.
func (u *WorkOrderUseCase) FindOrphans(ctx context.Context, ownerID string) ([]entities.WorkOrder, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}

	all, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	orphans := []entities.WorkOrder{}
	for _, o := range all {
		rows, err := u.repo.ListServices(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			orphans = append(orphans, o)
		}
	}
	if len(orphans) > 0 {
		u.log.WithFields(logrus.Fields{"owner_id": ownerID, "orphans": len(orphans)}).Warn("work orders without services found")
	}
	return orphans, nil
}

func (u *WorkOrderUseCase) publishCreated(ctx context.Context, o entities.WorkOrder, units int) {
	if u.events == nil {
		return
	}
	ev := entities.WorkOrderCreatedEvent{
		WorkOrderID: o.ID,
		OwnerID:     o.OwnerID,
		ClinicID:    o.ClinicID,
		PatientName: o.PatientName,
		TotalPrice:  o.TotalPrice,
		UnitCount:   units,
		CreatedAt:   o.CreatedAt,
		EventTime:   u.now().UTC(),
	}
	if err := u.events.PublishWorkOrderCreated(ctx, ev); err != nil {
		u.log.WithError(err).WithField("work_order_id", o.ID).Warn("work order created event publish failed")
	}
}
