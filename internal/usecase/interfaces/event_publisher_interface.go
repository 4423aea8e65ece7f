package interfaces

import (
	"context"
	"dental_lab/internal/domain/entities"
)

// IEventPublisher announces work-order lifecycle changes to other systems.

type IEventPublisher interface {
	PublishWorkOrderCreated(ctx context.Context, e entities.WorkOrderCreatedEvent) error
	PublishWorkOrderStatusChanged(ctx context.Context, e entities.WorkOrderStatusChangedEvent) error
}
