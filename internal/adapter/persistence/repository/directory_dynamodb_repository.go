package repository

import (
	"context"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/interfaces"
)

const dentistsClinicIDIndex = "clinic_id-index"

type clinicItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	Name      string `dynamodbav:"name"`
	TaxID     string `dynamodbav:"tax_id,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type dentistItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	ClinicID  string `dynamodbav:"clinic_id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type technicianItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	Name      string `dynamodbav:"name"`
	Specialty string `dynamodbav:"specialty,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// DirectoryTables names the three directory tables.
type DirectoryTables struct {
	Clinics     string
	Dentists    string
	Technicians string
}

// DirectoryDynamoRepository reads clinics, dentists and technicians.
//
// Table requirements (all three):
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Dentists additionally need clinic_id-index (PK: clinic_id).

type DirectoryDynamoRepository struct {
	ddb    DynamoAPI
	tables DirectoryTables
}

var _ interfaces.IDirectoryRepository = (*DirectoryDynamoRepository)(nil)

func NewDirectoryDynamoRepository(ddb DynamoAPI, tables DirectoryTables) *DirectoryDynamoRepository {
	return &DirectoryDynamoRepository{ddb: ddb, tables: tables}
}

func (r *DirectoryDynamoRepository) ListClinics(ctx context.Context, ownerID string) ([]entities.Clinic, error) {
	var items []clinicItem
	if err := queryAll(ctx, r.ddb, eqIndexInput(r.tables.Clinics, ownerIDIndex, "owner_id", ownerID), &items); err != nil {
		return nil, err
	}
	out := make([]entities.Clinic, 0, len(items))
	for _, it := range items {
		out = append(out, fromClinicItem(it))
	}
	return out, nil
}

func (r *DirectoryDynamoRepository) GetClinic(ctx context.Context, ownerID, id string) (entities.Clinic, error) {
	var it clinicItem
	found, err := getItem(ctx, r.ddb, r.tables.Clinics, id, &it)
	if err != nil || !found || it.OwnerID != ownerID {
		return entities.Clinic{}, err
	}
	return fromClinicItem(it), nil
}

func (r *DirectoryDynamoRepository) ListDentistsByClinic(ctx context.Context, ownerID, clinicID string) ([]entities.Dentist, error) {
	var items []dentistItem
	if err := queryAll(ctx, r.ddb, eqIndexInput(r.tables.Dentists, dentistsClinicIDIndex, "clinic_id", clinicID), &items); err != nil {
		return nil, err
	}
	out := make([]entities.Dentist, 0, len(items))
	for _, it := range items {
		if it.OwnerID != ownerID {
			continue
		}
		out = append(out, fromDentistItem(it))
	}
	return out, nil
}

func (r *DirectoryDynamoRepository) GetDentist(ctx context.Context, ownerID, id string) (entities.Dentist, error) {
	var it dentistItem
	found, err := getItem(ctx, r.ddb, r.tables.Dentists, id, &it)
	if err != nil || !found || it.OwnerID != ownerID {
		return entities.Dentist{}, err
	}
	return fromDentistItem(it), nil
}

func (r *DirectoryDynamoRepository) ListTechnicians(ctx context.Context, ownerID string) ([]entities.Technician, error) {
	var items []technicianItem
	if err := queryAll(ctx, r.ddb, eqIndexInput(r.tables.Technicians, ownerIDIndex, "owner_id", ownerID), &items); err != nil {
		return nil, err
	}
	out := make([]entities.Technician, 0, len(items))
	for _, it := range items {
		out = append(out, fromTechnicianItem(it))
	}
	return out, nil
}

func (r *DirectoryDynamoRepository) GetTechnician(ctx context.Context, ownerID, id string) (entities.Technician, error) {
	var it technicianItem
	found, err := getItem(ctx, r.ddb, r.tables.Technicians, id, &it)
	if err != nil || !found || it.OwnerID != ownerID {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

func (r *DirectoryDynamoRepository) CountClinics(ctx context.Context, ownerID string) (int, error) {
	return countAll(ctx, r.ddb, eqIndexInput(r.tables.Clinics, ownerIDIndex, "owner_id", ownerID))
}

func (r *DirectoryDynamoRepository) CountDentists(ctx context.Context, ownerID string) (int, error) {
	return countAll(ctx, r.ddb, eqIndexInput(r.tables.Dentists, ownerIDIndex, "owner_id", ownerID))
}

func (r *DirectoryDynamoRepository) CountTechnicians(ctx context.Context, ownerID string) (int, error) {
	return countAll(ctx, r.ddb, eqIndexInput(r.tables.Technicians, ownerIDIndex, "owner_id", ownerID))
}

func fromClinicItem(it clinicItem) entities.Clinic {
	return entities.Clinic{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		Name:      it.Name,
		TaxID:     it.TaxID,
		Phone:     it.Phone,
		Address:   it.Address,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func fromDentistItem(it dentistItem) entities.Dentist {
	return entities.Dentist{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		ClinicID:  it.ClinicID,
		Name:      it.Name,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func fromTechnicianItem(it technicianItem) entities.Technician {
	return entities.Technician{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		Name:      it.Name,
		Specialty: it.Specialty,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
