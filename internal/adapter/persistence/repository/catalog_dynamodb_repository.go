package repository

import (
	"context"
	"errors"
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type serviceItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	Name      string `dynamodbav:"name"`
	Price     int64  `dynamodbav:"price"`
	Category  string `dynamodbav:"category"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)

type CatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CatalogDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Service, error) {
	var items []serviceItem
	if err := queryAll(ctx, r.ddb, eqIndexInput(r.tableName, ownerIDIndex, "owner_id", ownerID), &items); err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

// GetByID returns a zero Service when id is unknown or belongs to another owner.
func (r *CatalogDynamoRepository) GetByID(ctx context.Context, ownerID, id string) (entities.Service, error) {
	var it serviceItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found || it.OwnerID != ownerID {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toServiceItem(s)); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *CatalogDynamoRepository) UpdatePrice(ctx context.Context, ownerID, id string, price int64) (entities.Service, error) {
	return r.update(ctx, ownerID, id, "#price", "price", &types.AttributeValueMemberN{Value: formatInt(price)})
}

func (r *CatalogDynamoRepository) SetActive(ctx context.Context, ownerID, id string, active bool) (entities.Service, error) {
	return r.update(ctx, ownerID, id, "#active", "active", &types.AttributeValueMemberBOOL{Value: active})
}

func (r *CatalogDynamoRepository) CountActive(ctx context.Context, ownerID string) (int, error) {
	in := eqIndexInput(r.tableName, ownerIDIndex, "owner_id", ownerID)
	in.FilterExpression = aws.String("#active = :active")
	in.ExpressionAttributeNames["#active"] = "active"
	in.ExpressionAttributeValues[":active"] = &types.AttributeValueMemberBOOL{Value: true}
	return countAll(ctx, r.ddb, in)
}

// update sets one attribute. A missing item or an owner mismatch returns a
// zero Service.
func (r *CatalogDynamoRepository) update(ctx context.Context, ownerID, id, nameRef, attr string, value types.AttributeValue) (entities.Service, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner_id"),
		UpdateExpression:    aws.String("SET " + nameRef + " = :value, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value":      value,
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":owner_id":   &types.AttributeValueMemberS{Value: ownerID},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{nameRef: attr, "#updated_at": "updated_at"},
			map[string]string{"#id": "id", "#owner_id": "owner_id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		Price:     s.Price,
		Category:  string(s.Category),
		Active:    s.Active,
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		Name:      it.Name,
		Price:     it.Price,
		Category:  entities.Category(it.Category),
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
