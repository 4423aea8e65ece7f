package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	workOrderServicesOrderIndex = "work_order_id-index"
	dateLayout                  = "2006-01-02"

	// DynamoDB limits.
	batchWriteLimit    = 25
	transactWriteLimit = 100
)

var ErrUnprocessedItems = errors.New("dynamodb left items unprocessed")

type workOrderItem struct {
	ID                string `dynamodbav:"id"`
	OwnerID           string `dynamodbav:"owner_id"`
	ClinicID          string `dynamodbav:"clinic_id"`
	DentistID         string `dynamodbav:"dentist_id"`
	TechnicianID      string `dynamodbav:"technician_id,omitempty"`
	PatientName       string `dynamodbav:"patient_name"`
	PatientTaxID      string `dynamodbav:"patient_tax_id,omitempty"`
	ReceivedDate      string `dynamodbav:"received_date"`
	EstimatedDelivery string `dynamodbav:"estimated_delivery"`
	Status            string `dynamodbav:"status"`
	TotalPrice        int64  `dynamodbav:"total_price"`
	Observations      string `dynamodbav:"observations,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

type workOrderServiceItem struct {
	ID           string `dynamodbav:"id"`
	WorkOrderID  string `dynamodbav:"work_order_id"`
	OwnerID      string `dynamodbav:"owner_id"`
	ServiceID    string `dynamodbav:"service_id"`
	ServiceName  string `dynamodbav:"service_name"`
	UnitPrice    int64  `dynamodbav:"unit_price"`
	Tooth        string `dynamodbav:"tooth,omitempty"`
	Observations string `dynamodbav:"observations,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// WorkOrderTables names the parent and child tables.
type WorkOrderTables struct {
	WorkOrders        string
	WorkOrderServices string
}

// WorkOrderDynamoRepository persists work orders and their per-unit rows.
//
// Table requirements:
//   - work orders: PK id, GSI owner_id-index (PK: owner_id)
//   - work order services: PK id, GSI work_order_id-index (PK: work_order_id)

type WorkOrderDynamoRepository struct {
	ddb    DynamoAPI
	tables WorkOrderTables
}

var (
	_ interfaces.IWorkOrderRepository          = (*WorkOrderDynamoRepository)(nil)
	_ interfaces.ITransactionalWorkOrderWriter = (*WorkOrderDynamoRepository)(nil)
)

func NewWorkOrderDynamoRepository(ddb DynamoAPI, tables WorkOrderTables) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{ddb: ddb, tables: tables}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	if err := putNew(ctx, r.ddb, r.tables.WorkOrders, toWorkOrderItem(o)); err != nil {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

// CreateServices bulk-inserts rows in batches. Items DynamoDB leaves
// unprocessed are reported as ErrUnprocessedItems, not retried.
func (r *WorkOrderDynamoRepository) CreateServices(ctx context.Context, rows []entities.WorkOrderService) error {
	for start := 0; start < len(rows); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(rows))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, row := range rows[start:end] {
			av, err := attributevalue.MarshalMap(toWorkOrderServiceItem(row))
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tables.WorkOrderServices: reqs},
		})
		if err != nil {
			return err
		}
		if n := len(out.UnprocessedItems[r.tables.WorkOrderServices]); n > 0 {
			return fmt.Errorf("%w: %d of %d rows", ErrUnprocessedItems, n, len(rows))
		}
	}
	return nil
}

// CreateWithServices writes the parent and every row in one transaction.
func (r *WorkOrderDynamoRepository) CreateWithServices(ctx context.Context, o entities.WorkOrder, rows []entities.WorkOrderService) (entities.WorkOrder, error) {
	if len(rows)+1 > transactWriteLimit {
		return entities.WorkOrder{}, fmt.Errorf("transaction too large: %d items", len(rows)+1)
	}

	parent, err := attributevalue.MarshalMap(toWorkOrderItem(o))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	items := make([]types.TransactWriteItem, 0, len(rows)+1)
	items = append(items, newPut(r.tables.WorkOrders, parent))
	for _, row := range rows {
		av, err := attributevalue.MarshalMap(toWorkOrderServiceItem(row))
		if err != nil {
			return entities.WorkOrder{}, err
		}
		items = append(items, newPut(r.tables.WorkOrderServices, av))
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) MaxItems() int {
	return transactWriteLimit
}

func newPut(table string, item map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(table),
			Item:                     item,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, ownerID, id string) (entities.WorkOrder, error) {
	var it workOrderItem
	found, err := getItem(ctx, r.ddb, r.tables.WorkOrders, id, &it)
	if err != nil || !found || it.OwnerID != ownerID {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.WorkOrder, error) {
	var items []workOrderItem
	if err := queryAll(ctx, r.ddb, eqIndexInput(r.tables.WorkOrders, ownerIDIndex, "owner_id", ownerID), &items); err != nil {
		return nil, err
	}
	out := make([]entities.WorkOrder, 0, len(items))
	for _, it := range items {
		out = append(out, fromWorkOrderItem(it))
	}
	return out, nil
}

func (r *WorkOrderDynamoRepository) ListServices(ctx context.Context, workOrderID string) ([]entities.WorkOrderService, error) {
	var items []workOrderServiceItem
	in := eqIndexInput(r.tables.WorkOrderServices, workOrderServicesOrderIndex, "work_order_id", workOrderID)
	if err := queryAll(ctx, r.ddb, in, &items); err != nil {
		return nil, err
	}
	out := make([]entities.WorkOrderService, 0, len(items))
	for _, it := range items {
		out = append(out, fromWorkOrderServiceItem(it))
	}
	return out, nil
}

// UpdateStatus is conditional on the current status being from; a failed
// condition returns a zero WorkOrder.
func (r *WorkOrderDynamoRepository) UpdateStatus(ctx context.Context, ownerID, id string, from, to entities.WorkOrderStatus) (entities.WorkOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.WorkOrders),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner_id AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#owner_id":   "owner_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id":   &types.AttributeValueMemberS{Value: ownerID},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) CountByStatus(ctx context.Context, ownerID string, status entities.WorkOrderStatus) (int, error) {
	in := eqIndexInput(r.tables.WorkOrders, ownerIDIndex, "owner_id", ownerID)
	in.FilterExpression = aws.String("#status = :status")
	in.ExpressionAttributeNames["#status"] = "status"
	in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	return countAll(ctx, r.ddb, in)
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:                o.ID,
		OwnerID:           o.OwnerID,
		ClinicID:          o.ClinicID,
		DentistID:         o.DentistID,
		PatientName:       o.PatientName,
		PatientTaxID:      o.PatientTaxID,
		ReceivedDate:      o.ReceivedDate.UTC().Format(dateLayout),
		EstimatedDelivery: o.EstimatedDelivery.UTC().Format(dateLayout),
		Status:            string(o.Status),
		TotalPrice:        o.TotalPrice,
		Observations:      o.Observations,
		CreatedAt:         formatTime(o.CreatedAt),
		UpdatedAt:         formatTime(o.UpdatedAt),
	}
	if o.TechnicianID != nil {
		it.TechnicianID = *o.TechnicianID
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	received, _ := time.Parse(dateLayout, it.ReceivedDate)
	delivery, _ := time.Parse(dateLayout, it.EstimatedDelivery)
	o := entities.WorkOrder{
		ID:                it.ID,
		OwnerID:           it.OwnerID,
		ClinicID:          it.ClinicID,
		DentistID:         it.DentistID,
		PatientName:       it.PatientName,
		PatientTaxID:      it.PatientTaxID,
		ReceivedDate:      received,
		EstimatedDelivery: delivery,
		Status:            entities.WorkOrderStatus(it.Status),
		TotalPrice:        it.TotalPrice,
		Observations:      it.Observations,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.TechnicianID != "" {
		tech := it.TechnicianID
		o.TechnicianID = &tech
	}
	return o
}

func toWorkOrderServiceItem(s entities.WorkOrderService) workOrderServiceItem {
	return workOrderServiceItem{
		ID:           s.ID,
		WorkOrderID:  s.WorkOrderID,
		OwnerID:      s.OwnerID,
		ServiceID:    s.ServiceID,
		ServiceName:  s.ServiceName,
		UnitPrice:    s.UnitPrice,
		Tooth:        s.Tooth,
		Observations: s.Observations,
		CreatedAt:    formatTime(s.CreatedAt),
	}
}

func fromWorkOrderServiceItem(it workOrderServiceItem) entities.WorkOrderService {
	return entities.WorkOrderService{
		ID:           it.ID,
		WorkOrderID:  it.WorkOrderID,
		OwnerID:      it.OwnerID,
		ServiceID:    it.ServiceID,
		ServiceName:  it.ServiceName,
		UnitPrice:    it.UnitPrice,
		Tooth:        it.Tooth,
		Observations: it.Observations,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
