package entities

import "time"

type WorkOrderCreatedEvent struct {
	WorkOrderID string    `json:"work_order_id"`
	OwnerID     string    `json:"owner_id"`
	ClinicID    string    `json:"clinic_id"`
	PatientName string    `json:"patient_name"`
	TotalPrice  int64     `json:"total_price"`
	UnitCount   int       `json:"unit_count"`
	CreatedAt   time.Time `json:"created_at"`
	EventTime   time.Time `json:"event_time"`
}

type WorkOrderStatusChangedEvent struct {
	WorkOrderID string          `json:"work_order_id"`
	OwnerID     string          `json:"owner_id"`
	From        WorkOrderStatus `json:"from"`
	To          WorkOrderStatus `json:"to"`
	EventTime   time.Time       `json:"event_time"`
}
