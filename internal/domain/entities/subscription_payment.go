package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado  PaymentStatus = "aprobado"
	PaymentStatusRechazado PaymentStatus = "rechazado"
)

// SubscriptionPlan is the lab's subscription tier.
type SubscriptionPlan string

const (
	PlanBasico      SubscriptionPlan = "basico"
	PlanProfesional SubscriptionPlan = "profesional"
	PlanLaboratorio SubscriptionPlan = "laboratorio"
)

var planPrices = map[SubscriptionPlan]int64{
	PlanBasico:      99000,
	PlanProfesional: 199000,
	PlanLaboratorio: 349000,
}

// Price returns the monthly price of the plan; ok is false for unknown plans.
func (p SubscriptionPlan) Price() (int64, bool) {
	v, ok := planPrices[p]
	return v, ok
}

// SubscriptionPayment is a subscription charge persisted with the provider payload.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (owner_id-index): owner_id
//
// ProviderPayloadRaw keeps the provider body as received for audit; ProviderPayload
// is the parsed form.
type SubscriptionPayment struct {
	ID      string           `json:"id"`
	OwnerID string           `json:"owner_id"`
	Plan    SubscriptionPlan `json:"plan"`
	Amount  int64            `json:"amount"`
	Date    time.Time        `json:"date"`
	Status  PaymentStatus    `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
