package usecase

import (
	"context"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/interfaces"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrSubscriptionPaymentNotFound    = errors.New("subscription payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPlan                    = errors.New("invalid subscription plan")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ISubscriptionPaymentUseCase charges the laboratory's subscription plan
// through the payment gateway and keeps the provider response.

type ISubscriptionPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, ownerID string, plan entities.SubscriptionPlan, mpPayload json.RawMessage) (entities.SubscriptionPayment, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.SubscriptionPayment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.SubscriptionPayment, error)
}

type SubscriptionPaymentUseCase struct {
	repo     interfaces.ISubscriptionPaymentRepository
	gateway  interfaces.IPaymentGateway
	mockMode bool
	payer    PayerDefaults
	log      *logrus.Entry
}

// PayerDefaults fill the payer of sandbox payments when the client sent none.
type PayerDefaults struct {
	Email string
}

var _ ISubscriptionPaymentUseCase = (*SubscriptionPaymentUseCase)(nil)

// NewSubscriptionPaymentUseCase wires the use case. In mock mode payload
// checks are relaxed; the gateway itself decides whether it calls the provider.
func NewSubscriptionPaymentUseCase(repo interfaces.ISubscriptionPaymentRepository, gateway interfaces.IPaymentGateway, mockMode bool, payer PayerDefaults, log *logrus.Logger) *SubscriptionPaymentUseCase {
	return &SubscriptionPaymentUseCase{
		repo:     repo,
		gateway:  gateway,
		mockMode: mockMode,
		payer:    payer,
		log:      log.WithField("component", "subscription_payment"),
	}
}

func (u *SubscriptionPaymentUseCase) CreateAndApprove(ctx context.Context, ownerID string, plan entities.SubscriptionPlan, mpPayload json.RawMessage) (entities.SubscriptionPayment, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.SubscriptionPayment{}, ErrInvalidOwnerID
	}
	amount, ok := plan.Price()
	if !ok {
		return entities.SubscriptionPayment{}, ErrInvalidPlan
	}
	log := u.log.WithFields(logrus.Fields{"owner_id": ownerID, "plan": plan})

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.mockMode {
			log.Warn("invalid payment payload")
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.SubscriptionPayment{}, ErrPaymentGatewayNotConfigured
	}

	var req map[string]any
	if err := json.Unmarshal(mpPayload, &req); err != nil || req == nil {
		log.WithError(err).Warn("payment payload is not an object")
		return entities.SubscriptionPayment{}, ErrInvalidMPPayload
	}
	if !u.mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
		u.ensurePayer(req)
		if !hasPayer(req) {
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = ownerID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Plan %s", plan)
	}
	// The plan table is the source of truth for the amount.
	req["transaction_amount"] = amount
	payload, err := json.Marshal(req)
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.WithError(err).Error("payment gateway failed")
		return entities.SubscriptionPayment{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Warn("provider response is not json")
	}

	p := entities.SubscriptionPayment{
		ID:                 providerID,
		OwnerID:            ownerID,
		Plan:               plan,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.WithError(err).WithField("payment_id", p.ID).Error("subscription payment create failed")
		return entities.SubscriptionPayment{}, err
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "status": created.Status}).Info("subscription payment recorded")
	return created, nil
}

func (u *SubscriptionPaymentUseCase) GetByID(ctx context.Context, ownerID, id string) (entities.SubscriptionPayment, error) {
	ownerID, id = strings.TrimSpace(ownerID), strings.TrimSpace(id)
	if ownerID == "" {
		return entities.SubscriptionPayment{}, ErrInvalidOwnerID
	}
	if id == "" {
		return entities.SubscriptionPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}
	// Payments of another owner are reported as missing.
	if p.ID == "" || p.OwnerID != ownerID {
		return entities.SubscriptionPayment{}, ErrSubscriptionPaymentNotFound
	}
	return p, nil
}

func (u *SubscriptionPaymentUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.SubscriptionPayment, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwnerID(ctx, ownerID)
}

func (u *SubscriptionPaymentUseCase) ensurePayer(req map[string]any) {
	v, ok := req["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		req["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.payer.Email != "" {
		payer["email"] = u.payer.Email
	}
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprobado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRechazado
	}
	return entities.PaymentStatusPendiente
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}
