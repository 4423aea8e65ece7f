package response

import (
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"
)

type ServiceResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Active        bool      `json:"active"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Price:         s.Price,
		Category:      string(s.Category),
		CategoryLabel: s.Category.Label(),
		Active:        s.Active,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromServices(list []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}

type CatalogImportResponse struct {
	Created  []ServiceResponse                `json:"created"`
	Rejected []usecase.CatalogImportRejection `json:"rejected"`
}

// FromCatalogImport merges rows rejected while parsing with rows the use case
// rejected.
func FromCatalogImport(res usecase.CatalogImportResult, parseRejected []usecase.CatalogImportRejection) CatalogImportResponse {
	rejected := append([]usecase.CatalogImportRejection{}, parseRejected...)
	rejected = append(rejected, res.Rejected...)
	return CatalogImportResponse{Created: FromServices(res.Created), Rejected: rejected}
}
