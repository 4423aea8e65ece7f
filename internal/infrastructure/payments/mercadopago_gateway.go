package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dental_lab/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *logrus.Entry
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. In mock mode no SDK client is created
// and every payment is approved locally.
func NewMercadoPagoGateway(accessToken string, mockMode bool, log *logrus.Logger) (*MercadoPagoGateway, error) {
	entry := log.WithField("component", "payment_gateway")
	if mockMode {
		entry.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: entry, now: time.Now}, nil
	}

	if accessToken == "" {
		entry.Error("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		entry.WithError(err).Error("failed creating sdk config")
		return nil, err
	}
	entry.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: entry, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.WithField("payload_len", len(requestPayload)).Debug("create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.WithError(err).Warn("payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.WithError(err).Error("sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.WithFields(logrus.Fields{
		"provider_payment_id": resp.ID,
		"provider_status":     resp.Status,
	}).Info("create success")

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockCreate echoes the request back with an approved status.
func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	g.log.WithField("provider_payment_id", id).Info("mock create success")
	return id, "approved", b, nil
}
