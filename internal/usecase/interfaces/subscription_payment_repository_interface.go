package interfaces

import (
	"context"
	"dental_lab/internal/domain/entities"
)

// ISubscriptionPaymentRepository abstracts DynamoDB persistence for SubscriptionPayment.

type ISubscriptionPaymentRepository interface {
	Create(ctx context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error)
	GetByID(ctx context.Context, id string) (entities.SubscriptionPayment, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.SubscriptionPayment, error)
}
