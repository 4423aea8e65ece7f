package interfaces

import (
	"context"
	"dental_lab/internal/domain/entities"
)

// IWorkOrderRepository persists work orders and their per-unit service rows.
//
// Submission writes the parent with Create and then the children with
// CreateServices. Stores that can do both in one transaction also implement
// ITransactionalWorkOrderWriter.

type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	CreateServices(ctx context.Context, rows []entities.WorkOrderService) error
	GetByID(ctx context.Context, ownerID, id string) (entities.WorkOrder, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.WorkOrder, error)
	ListServices(ctx context.Context, workOrderID string) ([]entities.WorkOrderService, error)
	// UpdateStatus moves the order from one status to another. It returns a zero
	// value when the order does not exist or is no longer in status from.
	UpdateStatus(ctx context.Context, ownerID, id string, from, to entities.WorkOrderStatus) (entities.WorkOrder, error)
	CountByStatus(ctx context.Context, ownerID string, status entities.WorkOrderStatus) (int, error)
}

// ITransactionalWorkOrderWriter writes a parent and its rows atomically.
// MaxItems is the largest number of records (parent included) one call accepts.
type ITransactionalWorkOrderWriter interface {
	CreateWithServices(ctx context.Context, o entities.WorkOrder, rows []entities.WorkOrderService) (entities.WorkOrder, error)
	MaxItems() int
}
