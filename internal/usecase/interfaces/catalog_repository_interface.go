package interfaces

import (
	"context"
	"dental_lab/internal/domain/entities"
)

// ICatalogRepository abstracts persistence of the priced service catalog.
//
// Lookups return a zero-value Service (empty ID) when nothing matches.

type ICatalogRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Service, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.Service, error)
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	UpdatePrice(ctx context.Context, ownerID, id string, price int64) (entities.Service, error)
	SetActive(ctx context.Context, ownerID, id string, active bool) (entities.Service, error)
	CountActive(ctx context.Context, ownerID string) (int, error)
}
