package interfaces

import (
	"context"
	"dental_lab/internal/domain/entities"
)

// IDirectoryRepository reads clinics, dentists and technicians.
// Lookups return zero values when nothing matches.

type IDirectoryRepository interface {
	ListClinics(ctx context.Context, ownerID string) ([]entities.Clinic, error)
	GetClinic(ctx context.Context, ownerID, id string) (entities.Clinic, error)
	ListDentistsByClinic(ctx context.Context, ownerID, clinicID string) ([]entities.Dentist, error)
	GetDentist(ctx context.Context, ownerID, id string) (entities.Dentist, error)
	ListTechnicians(ctx context.Context, ownerID string) ([]entities.Technician, error)
	GetTechnician(ctx context.Context, ownerID, id string) (entities.Technician, error)
	CountClinics(ctx context.Context, ownerID string) (int, error)
	CountDentists(ctx context.Context, ownerID string) (int, error)
	CountTechnicians(ctx context.Context, ownerID string) (int, error)
}
