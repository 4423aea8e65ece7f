package response

import (
	"encoding/json"
	"time"

	"dental_lab/internal/domain/entities"
)

type SubscriptionPaymentResponse struct {
	PaymentID       string          `json:"payment_id"`
	Plan            string          `json:"plan"`
	Amount          int64           `json:"amount"`
	Date            time.Time       `json:"date"`
	Status          string          `json:"status"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
}

func FromSubscriptionPayment(p entities.SubscriptionPayment) SubscriptionPaymentResponse {
	return SubscriptionPaymentResponse{
		PaymentID:       p.ID,
		Plan:            string(p.Plan),
		Amount:          p.Amount,
		Date:            p.Date,
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayloadRaw,
	}
}

func FromSubscriptionPayments(list []entities.SubscriptionPayment) []SubscriptionPaymentResponse {
	out := make([]SubscriptionPaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromSubscriptionPayment(p))
	}
	return out
}
