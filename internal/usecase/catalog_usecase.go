package usecase

import (
	"context"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/interfaces"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidOwnerID      = errors.New("invalid owner id")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidServiceName  = errors.New("invalid service name")
	ErrInvalidServicePrice = errors.New("invalid service price")
	ErrInvalidCategory     = errors.New("invalid category")
)

// ServiceFilter narrows the active catalog. Empty fields match everything.
// Search is a case-insensitive substring of the service name or of its
// category label.
type ServiceFilter struct {
	Category entities.Category
	Search   string
}

// ICatalogUseCase reads the active catalog for the work-order builder and
// edits it for the import flow and the operator CLI.

type ICatalogUseCase interface {
	ListActiveServices(ctx context.Context, ownerID string, f ServiceFilter) ([]entities.Service, error)
	CreateService(ctx context.Context, ownerID, name string, category entities.Category, price int64) (entities.Service, error)
	UpdateServicePrice(ctx context.Context, ownerID, id string, price int64) (entities.Service, error)
	DeactivateService(ctx context.Context, ownerID, id string) (entities.Service, error)
	ImportServices(ctx context.Context, ownerID string, rows []CatalogImportRow) (CatalogImportResult, error)
}

// CatalogImportRow is one parsed spreadsheet row. Row is the 1-based sheet row.
type CatalogImportRow struct {
	Row      int
	Name     string
	Category entities.Category
	Price    int64
}

type CatalogImportRejection struct {
	Row    int    `json:"row"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

type CatalogImportResult struct {
	Created  []entities.Service       `json:"created"`
	Rejected []CatalogImportRejection `json:"rejected"`
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
	log  *logrus.Entry
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, log *logrus.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: log.WithField("component", "catalog")}
}

func (u *CatalogUseCase) ListActiveServices(ctx context.Context, ownerID string, f ServiceFilter) ([]entities.Service, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	if f.Category != "" && !f.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	all, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]entities.Service, 0, len(all))
	for _, s := range all {
		if !s.Active {
			continue
		}
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Category.Label()), search) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (u *CatalogUseCase) CreateService(ctx context.Context, ownerID, name string, category entities.Category, price int64) (entities.Service, error) {
	ownerID = strings.TrimSpace(ownerID)
	name = strings.TrimSpace(name)
	if ownerID == "" {
		return entities.Service{}, ErrInvalidOwnerID
	}
	if name == "" {
		return entities.Service{}, ErrInvalidServiceName
	}
	if !category.Valid() {
		return entities.Service{}, ErrInvalidCategory
	}
	if price <= 0 {
		return entities.Service{}, ErrInvalidServicePrice
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Price:     price,
		Category:  category,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	u.log.WithFields(logrus.Fields{"owner_id": ownerID, "service_id": created.ID}).Info("service created")
	return created, nil
}

// UpdateServicePrice changes the catalog price. Line items already added to a
// draft keep the price they were captured with.
func (u *CatalogUseCase) UpdateServicePrice(ctx context.Context, ownerID, id string, price int64) (entities.Service, error) {
	ownerID, id = strings.TrimSpace(ownerID), strings.TrimSpace(id)
	if ownerID == "" {
		return entities.Service{}, ErrInvalidOwnerID
	}
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if price <= 0 {
		return entities.Service{}, ErrInvalidServicePrice
	}

	updated, err := u.repo.UpdatePrice(ctx, ownerID, id, price)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

// DeactivateService soft-deletes a service so historical work orders still
// resolve it.
func (u *CatalogUseCase) DeactivateService(ctx context.Context, ownerID, id string) (entities.Service, error) {
	ownerID, id = strings.TrimSpace(ownerID), strings.TrimSpace(id)
	if ownerID == "" {
		return entities.Service{}, ErrInvalidOwnerID
	}
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	updated, err := u.repo.SetActive(ctx, ownerID, id, false)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	u.log.WithFields(logrus.Fields{"owner_id": ownerID, "service_id": id}).Info("service deactivated")
	return updated, nil
}

// ImportServices creates one service per row. Rows failing validation are
// rejected and the import continues; a storage error aborts it and returns
// what was created so far.
func (u *CatalogUseCase) ImportServices(ctx context.Context, ownerID string, rows []CatalogImportRow) (CatalogImportResult, error) {
	if strings.TrimSpace(ownerID) == "" {
		return CatalogImportResult{}, ErrInvalidOwnerID
	}

	res := CatalogImportResult{Created: []entities.Service{}, Rejected: []CatalogImportRejection{}}
	for _, row := range rows {
		created, err := u.CreateService(ctx, ownerID, row.Name, row.Category, row.Price)
		switch {
		case errors.Is(err, ErrInvalidServiceName), errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidServicePrice):
			res.Rejected = append(res.Rejected, CatalogImportRejection{Row: row.Row, Name: row.Name, Reason: err.Error()})
		case err != nil:
			return res, err
		default:
			res.Created = append(res.Created, created)
		}
	}
	u.log.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"created":  len(res.Created),
		"rejected": len(res.Rejected),
	}).Info("catalog import finished")
	return res, nil
}
