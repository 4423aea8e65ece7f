package response

import (
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"
)

type WorkOrderResponse struct {
	ID                string    `json:"id"`
	ClinicID          string    `json:"clinic_id"`
	DentistID         string    `json:"dentist_id"`
	TechnicianID      *string   `json:"technician_id"`
	PatientName       string    `json:"patient_name"`
	PatientTaxID      string    `json:"patient_tax_id,omitempty"`
	ReceivedDate      string    `json:"received_date"`
	EstimatedDelivery string    `json:"estimated_delivery"`
	Status            string    `json:"status"`
	NextStatus        string    `json:"next_status,omitempty"`
	TotalPrice        int64     `json:"total_price"`
	Observations      string    `json:"observations"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	next, _ := o.Status.Next()
	return WorkOrderResponse{
		ID:                o.ID,
		ClinicID:          o.ClinicID,
		DentistID:         o.DentistID,
		TechnicianID:      o.TechnicianID,
		PatientName:       o.PatientName,
		PatientTaxID:      o.PatientTaxID,
		ReceivedDate:      o.ReceivedDate.Format("2006-01-02"),
		EstimatedDelivery: o.EstimatedDelivery.Format("2006-01-02"),
		Status:            string(o.Status),
		NextStatus:        string(next),
		TotalPrice:        o.TotalPrice,
		Observations:      o.Observations,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromWorkOrders(list []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromWorkOrder(o))
	}
	return out
}

type WorkOrderServiceResponse struct {
	ID           string `json:"id"`
	ServiceID    string `json:"service_id"`
	ServiceName  string `json:"service_name"`
	UnitPrice    int64  `json:"unit_price"`
	Tooth        string `json:"tooth"`
	Observations string `json:"observations"`
}

type WorkOrderDetailResponse struct {
	WorkOrderResponse
	Services []WorkOrderServiceResponse `json:"services"`
}

func FromWorkOrderDetail(d usecase.WorkOrderDetail) WorkOrderDetailResponse {
	services := make([]WorkOrderServiceResponse, 0, len(d.Services))
	for _, s := range d.Services {
		services = append(services, WorkOrderServiceResponse{
			ID:           s.ID,
			ServiceID:    s.ServiceID,
			ServiceName:  s.ServiceName,
			UnitPrice:    s.UnitPrice,
			Tooth:        s.Tooth,
			Observations: s.Observations,
		})
	}
	return WorkOrderDetailResponse{WorkOrderResponse: FromWorkOrder(d.WorkOrder), Services: services}
}
