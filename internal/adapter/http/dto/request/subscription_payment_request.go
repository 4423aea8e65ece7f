package request

import "encoding/json"

type SubscriptionPaymentRequest struct {
	Plan      string          `json:"plan" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
