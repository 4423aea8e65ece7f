package repository

import (
	"context"
	"encoding/json"
	"sort"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/interfaces"
)

type subscriptionPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	OwnerID            string                 `dynamodbav:"owner_id"`
	Plan               string                 `dynamodbav:"plan"`
	Amount             int64                  `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// SubscriptionPaymentDynamoRepository persists SubscriptionPayment entities.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)

type SubscriptionPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubscriptionPaymentRepository = (*SubscriptionPaymentDynamoRepository)(nil)

func NewSubscriptionPaymentDynamoRepository(ddb DynamoAPI, tableName string) *SubscriptionPaymentDynamoRepository {
	return &SubscriptionPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SubscriptionPaymentDynamoRepository) Create(ctx context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toSubscriptionPaymentItem(p)); err != nil {
		return entities.SubscriptionPayment{}, err
	}
	return p, nil
}

func (r *SubscriptionPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.SubscriptionPayment, error) {
	var it subscriptionPaymentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.SubscriptionPayment{}, err
	}
	return fromSubscriptionPaymentItem(it), nil
}

// ListByOwnerID returns the owner's payments, newest first.
func (r *SubscriptionPaymentDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.SubscriptionPayment, error) {
	var items []subscriptionPaymentItem
	if err := queryAll(ctx, r.ddb, eqIndexInput(r.tableName, ownerIDIndex, "owner_id", ownerID), &items); err != nil {
		return nil, err
	}
	out := make([]entities.SubscriptionPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromSubscriptionPaymentItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func toSubscriptionPaymentItem(p entities.SubscriptionPayment) subscriptionPaymentItem {
	return subscriptionPaymentItem{
		ID:                 p.ID,
		OwnerID:            p.OwnerID,
		Plan:               string(p.Plan),
		Amount:             p.Amount,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromSubscriptionPaymentItem(it subscriptionPaymentItem) entities.SubscriptionPayment {
	return entities.SubscriptionPayment{
		ID:                 it.ID,
		OwnerID:            it.OwnerID,
		Plan:               entities.SubscriptionPlan(it.Plan),
		Amount:             it.Amount,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: json.RawMessage(it.ProviderPayloadRaw),
	}
}
