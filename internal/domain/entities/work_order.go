package entities

import "time"

// WorkOrderStatus is the production state of a submitted work order.
//
// Transitions are strictly linear, one step per user action:
// pendiente -> produccion -> terminado -> entregado.
type WorkOrderStatus string

const (
	WorkOrderStatusPendiente  WorkOrderStatus = "pendiente"
	WorkOrderStatusProduccion WorkOrderStatus = "produccion"
	WorkOrderStatusTerminado  WorkOrderStatus = "terminado"
	WorkOrderStatusEntregado  WorkOrderStatus = "entregado"
)

func WorkOrderStatuses() []WorkOrderStatus {
	return []WorkOrderStatus{
		WorkOrderStatusPendiente,
		WorkOrderStatusProduccion,
		WorkOrderStatusTerminado,
		WorkOrderStatusEntregado,
	}
}

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusPendiente, WorkOrderStatusProduccion, WorkOrderStatusTerminado, WorkOrderStatusEntregado:
		return true
	}
	return false
}

func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusEntregado
}

// Next returns the following status. ok is false at the terminal state and for
// unknown values.
func (s WorkOrderStatus) Next() (next WorkOrderStatus, ok bool) {
	switch s {
	case WorkOrderStatusPendiente:
		return WorkOrderStatusProduccion, true
	case WorkOrderStatusProduccion:
		return WorkOrderStatusTerminado, true
	case WorkOrderStatusTerminado:
		return WorkOrderStatusEntregado, true
	}
	return "", false
}

// DeliveryLeadDays is the gap between reception and estimated delivery.
const DeliveryLeadDays = 7

// WorkOrder is the persisted parent record of a submitted draft.
type WorkOrder struct {
	ID                string          `json:"id"`
	OwnerID           string          `json:"owner_id"`
	ClinicID          string          `json:"clinic_id"`
	DentistID         string          `json:"dentist_id"`
	TechnicianID      *string         `json:"technician_id"`
	PatientName       string          `json:"patient_name"`
	PatientTaxID      string          `json:"patient_tax_id"`
	ReceivedDate      time.Time       `json:"received_date"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	Status            WorkOrderStatus `json:"status"`
	TotalPrice        int64           `json:"total_price"`
	Observations      string          `json:"observations"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// WorkOrderService is one unit of a line item: a line with quantity 3 is stored as
// three rows.
type WorkOrderService struct {
	ID           string    `json:"id"`
	WorkOrderID  string    `json:"work_order_id"`
	OwnerID      string    `json:"owner_id"`
	ServiceID    string    `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	UnitPrice    int64     `json:"unit_price"`
	Tooth        string    `json:"tooth"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
}

// SubmissionReceipt summarizes a successful submission for the confirmation message.
type SubmissionReceipt struct {
	WorkOrder   WorkOrder `json:"work_order"`
	PatientName string    `json:"patient_name"`
	Total       int64     `json:"total"`
	ItemCount   int       `json:"item_count"`
	UnitCount   int       `json:"unit_count"`
	Atomic      bool      `json:"atomic"`
}
