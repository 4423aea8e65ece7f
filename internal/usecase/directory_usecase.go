package usecase

import (
	"context"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/interfaces"
	"errors"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	ErrClinicNotFound  = errors.New("clinic not found")
	ErrInvalidClinicID = errors.New("invalid clinic id")
)

// IDirectoryUseCase lists the people a work order is addressed to.

type IDirectoryUseCase interface {
	ListClinics(ctx context.Context, ownerID string) ([]entities.Clinic, error)
	ListDentists(ctx context.Context, ownerID, clinicID string) ([]entities.Dentist, error)
	ListTechnicians(ctx context.Context, ownerID string) ([]entities.Technician, error)
	Names(ctx context.Context, ownerID string) (DirectoryNames, error)
}

// DirectoryNames resolves ids to display names for exports and reports.
type DirectoryNames struct {
	Clinics     map[string]string
	Dentists    map[string]string
	Technicians map[string]string
}

func lookup(m map[string]string, id string) string {
	if name, ok := m[id]; ok {
		return name
	}
	return id
}

// Clinic returns the clinic name, or the id itself when unknown.
func (n DirectoryNames) Clinic(id string) string { return lookup(n.Clinics, id) }

func (n DirectoryNames) Dentist(id string) string { return lookup(n.Dentists, id) }

// Technician returns "" for an unassigned order.
func (n DirectoryNames) Technician(id *string) string {
	if id == nil {
		return ""
	}
	return lookup(n.Technicians, *id)
}

type DirectoryUseCase struct {
	repo interfaces.IDirectoryRepository
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

func NewDirectoryUseCase(repo interfaces.IDirectoryRepository) *DirectoryUseCase {
	return &DirectoryUseCase{repo: repo}
}

func (u *DirectoryUseCase) ListClinics(ctx context.Context, ownerID string) ([]entities.Clinic, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	clinics, err := u.repo.ListClinics(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(clinics, func(i, j int) bool { return clinics[i].Name < clinics[j].Name })
	return clinics, nil
}

// ListDentists returns the dentists of one clinic; the list is always
// clinic-scoped.
func (u *DirectoryUseCase) ListDentists(ctx context.Context, ownerID, clinicID string) ([]entities.Dentist, error) {
	ownerID, clinicID = strings.TrimSpace(ownerID), strings.TrimSpace(clinicID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	if clinicID == "" {
		return nil, ErrInvalidClinicID
	}

	clinic, err := u.repo.GetClinic(ctx, ownerID, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic.ID == "" {
		return nil, ErrClinicNotFound
	}

	dentists, err := u.repo.ListDentistsByClinic(ctx, ownerID, clinicID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(dentists, func(i, j int) bool { return dentists[i].Name < dentists[j].Name })
	return dentists, nil
}

func (u *DirectoryUseCase) ListTechnicians(ctx context.Context, ownerID string) ([]entities.Technician, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	techs, err := u.repo.ListTechnicians(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(techs, func(i, j int) bool { return techs[i].Name < techs[j].Name })
	return techs, nil
}

// Names loads the whole directory of an owner. Dentists are fetched per clinic
// concurrently.
func (u *DirectoryUseCase) Names(ctx context.Context, ownerID string) (DirectoryNames, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return DirectoryNames{}, ErrInvalidOwnerID
	}

	names := DirectoryNames{
		Clinics:     map[string]string{},
		Dentists:    map[string]string{},
		Technicians: map[string]string{},
	}

	clinics, err := u.repo.ListClinics(ctx, ownerID)
	if err != nil {
		return DirectoryNames{}, err
	}
	for _, c := range clinics {
		names.Clinics[c.ID] = c.Name
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		techs, err := u.repo.ListTechnicians(gctx, ownerID)
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		for _, t := range techs {
			names.Technicians[t.ID] = t.Name
		}
		return nil
	})
	for _, c := range clinics {
		g.Go(func() error {
			dentists, err := u.repo.ListDentistsByClinic(gctx, ownerID, c.ID)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			for _, d := range dentists {
				names.Dentists[d.ID] = d.Name
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DirectoryNames{}, err
	}
	return names, nil
}
