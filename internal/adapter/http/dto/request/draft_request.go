package request

import "dental_lab/internal/domain/entities"

// StartDraftRequest answers the recovery prompt. A nil Recover means the client
// has not asked the user yet.
type StartDraftRequest struct {
	Recover *bool `json:"recover"`
}

// SelectionRequest changes only the fields that are present. An empty string
// clears the selection.
type SelectionRequest struct {
	ClinicID     *string `json:"clinic_id"`
	DentistID    *string `json:"dentist_id"`
	TechnicianID *string `json:"technician_id"`
}

type PatientRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

type ModeRequest struct {
	Mode entities.DraftMode `json:"mode" binding:"required"`
}

type FiltersRequest struct {
	Category entities.Category `json:"category"`
	Search   string            `json:"search"`
}

type CardInputRequest struct {
	Quantity int    `json:"quantity" binding:"max=100"`
	Tooth    string `json:"tooth"`
}

// AddItemRequest adds a catalog service. Zero Quantity and empty Tooth fall back
// to the card input of that service.
type AddItemRequest struct {
	ServiceID    string `json:"service_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"min=0,max=100"`
	Tooth        string `json:"tooth"`
	Observations string `json:"observations"`
}
