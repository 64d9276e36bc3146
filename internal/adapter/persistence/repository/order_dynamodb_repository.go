package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"nct_portal/internal/domain/entities"
	"nct_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersPhoneIndex       = "phone-index"
)

type attachmentItem struct {
	Name string `dynamodbav:"name"`
	URL  string `dynamodbav:"url"`
}

type orderItem struct {
	ID             string `dynamodbav:"id"`
	CustomerID     int64  `dynamodbav:"customer_id,omitempty"`
	CustomerName   string `dynamodbav:"customer_name"`
	Phone          string `dynamodbav:"phone"`
	CustomerStatus string `dynamodbav:"customer_status,omitempty"`
	ProfileID      string `dynamodbav:"profile_id,omitempty"`

	Services         []string `dynamodbav:"services,omitempty"`
	ServiceType      string   `dynamodbav:"service_type,omitempty"`
	DocumentTypes    []string `dynamodbav:"document_types,omitempty"`
	Languages        []string `dynamodbav:"languages,omitempty"`
	Pages            int      `dynamodbav:"pages"`
	Words            int      `dynamodbav:"words"`
	Certification    bool     `dynamodbav:"certification"`
	NumDocs          int      `dynamodbav:"num_docs"`
	Insurance        []string `dynamodbav:"insurance,omitempty"`
	InsuranceCount   int      `dynamodbav:"insurance_count"`
	AdditionalCopies int      `dynamodbav:"additional_copies"`
	DeliveryMethod   string   `dynamodbav:"delivery_method,omitempty"`
	RushTranslation  bool     `dynamodbav:"rush_translation"`

	Status         string `dynamodbav:"status"`
	PaymentStatus  string `dynamodbav:"payment_status"`
	PaymentMethod  string `dynamodbav:"payment_method,omitempty"`
	FinalQuotation int64  `dynamodbav:"final_quotation"`

	Notes     string           `dynamodbav:"notes,omitempty"`
	Documents []attachmentItem `dynamodbav:"documents,omitempty"`
	Channel   string           `dynamodbav:"channel,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: phone-index (PK: phone)
//
// Admin queries scan with a filter expression; order volume is small enough
// that a scan with a paging cursor beats maintaining status GSIs.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByPhone(ctx context.Context, phone string) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersPhoneIndex),
			KeyConditionExpression: aws.String("phone = :phone"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":phone": &types.AttributeValueMemberS{Value: phone},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Query scans with a filter expression and a cursor. The cursor is the id of
// the last item of the previous page, opaque to callers.
func (r *OrderDynamoRepository) Query(ctx context.Context, filter entities.OrderFilter, pageSize int, cursor string) (entities.OrderPage, error) {
	filterExpr, values, names := buildOrderFilter(filter)

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(int32(pageSize)),
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeValues = values
		input.ExpressionAttributeNames = names
	}
	if cursor != "" {
		input.ExclusiveStartKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cursor},
		}
	}

	page := entities.OrderPage{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return entities.OrderPage{}, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return entities.OrderPage{}, err
			}
			page.Orders = append(page.Orders, fromOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return page, nil
		}
		if lastID, ok := out.LastEvaluatedKey["id"].(*types.AttributeValueMemberS); ok {
			page.NextCursor = lastID.Value
		}
		// The filter runs after the page limit, so a page can come back short
		// while the table still has matches. Keep scanning until it fills.
		if len(page.Orders) >= pageSize {
			page.HasMore = true
			return page, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) Update(ctx context.Context, id string, upd interfaces.OrderUpdate) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	if upd.Status != nil {
		expr += ", #status = :status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*upd.Status)}
		names["#status"] = "status"
	}
	if upd.PaymentStatus != nil {
		expr += ", #payment_status = :payment_status"
		values[":payment_status"] = &types.AttributeValueMemberS{Value: string(*upd.PaymentStatus)}
		names["#payment_status"] = "payment_status"
	}
	if upd.PaymentMethod != nil {
		expr += ", #payment_method = :payment_method"
		values[":payment_method"] = &types.AttributeValueMemberS{Value: *upd.PaymentMethod}
		names["#payment_method"] = "payment_method"
	}
	if upd.FinalQuotation != nil {
		expr += ", #final_quotation = :final_quotation"
		values[":final_quotation"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*upd.FinalQuotation, 10)}
		names["#final_quotation"] = "final_quotation"
	}
	if upd.Notes != nil {
		expr += ", #notes = :notes"
		values[":notes"] = &types.AttributeValueMemberS{Value: *upd.Notes}
		names["#notes"] = "notes"
	}

	return r.updateItem(ctx, id, expr, values, names)
}

func (r *OrderDynamoRepository) AppendDocuments(ctx context.Context, id string, docs []entities.Attachment) (entities.Order, error) {
	items := make([]attachmentItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, attachmentItem{Name: d.Name, URL: d.URL})
	}
	list, err := attributevalue.MarshalList(items)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := "SET #documents = list_append(if_not_exists(#documents, :empty), :docs), #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":docs":       &types.AttributeValueMemberL{Value: list},
		":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#documents":  "documents",
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	return r.updateItem(ctx, id, expr, values, names)
}

func (r *OrderDynamoRepository) updateItem(
	ctx context.Context,
	id, expr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func buildOrderFilter(filter entities.OrderFilter) (string, map[string]types.AttributeValue, map[string]string) {
	expr := ""
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	and := func(clause string) {
		if expr != "" {
			expr += " AND "
		}
		expr += clause
	}

	if filter.Status != "" {
		and("#status = :status")
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		names["#status"] = "status"
	}
	if filter.PaymentStatus != "" {
		and("#payment_status = :payment_status")
		values[":payment_status"] = &types.AttributeValueMemberS{Value: string(filter.PaymentStatus)}
		names["#payment_status"] = "payment_status"
	}
	if !filter.DateFrom.IsZero() {
		and("#created_at >= :date_from")
		values[":date_from"] = &types.AttributeValueMemberS{Value: filter.DateFrom.UTC().Format(time.RFC3339Nano)}
		names["#created_at"] = "created_at"
	}
	if !filter.DateTo.IsZero() {
		and("#created_at <= :date_to")
		values[":date_to"] = &types.AttributeValueMemberS{Value: filter.DateTo.UTC().Format(time.RFC3339Nano)}
		names["#created_at"] = "created_at"
	}
	return expr, values, names
}

func toOrderItem(o entities.Order) orderItem {
	docs := make([]attachmentItem, 0, len(o.Documents))
	for _, d := range o.Documents {
		docs = append(docs, attachmentItem{Name: d.Name, URL: d.URL})
	}
	return orderItem{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		Phone:          o.Phone,
		CustomerStatus: o.CustomerStatus,
		ProfileID:      o.ProfileID,

		Services:         o.Services,
		ServiceType:      o.ServiceType,
		DocumentTypes:    o.DocumentTypes,
		Languages:        o.Languages,
		Pages:            o.Pages,
		Words:            o.Words,
		Certification:    o.Certification,
		NumDocs:          o.NumDocs,
		Insurance:        o.Insurance,
		InsuranceCount:   o.InsuranceCount,
		AdditionalCopies: o.AdditionalCopies,
		DeliveryMethod:   o.DeliveryMethod,
		RushTranslation:  o.RushTranslation,

		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		PaymentMethod:  o.PaymentMethod,
		FinalQuotation: o.FinalQuotation,

		Notes:     o.Notes,
		Documents: docs,
		Channel:   o.Channel,

		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	docs := make([]entities.Attachment, 0, len(it.Documents))
	for _, d := range it.Documents {
		docs = append(docs, entities.Attachment{Name: d.Name, URL: d.URL})
	}
	return entities.Order{
		ID:             it.ID,
		CustomerID:     it.CustomerID,
		CustomerName:   it.CustomerName,
		Phone:          it.Phone,
		CustomerStatus: it.CustomerStatus,
		ProfileID:      it.ProfileID,

		Services:         it.Services,
		ServiceType:      it.ServiceType,
		DocumentTypes:    it.DocumentTypes,
		Languages:        it.Languages,
		Pages:            it.Pages,
		Words:            it.Words,
		Certification:    it.Certification,
		NumDocs:          it.NumDocs,
		Insurance:        it.Insurance,
		InsuranceCount:   it.InsuranceCount,
		AdditionalCopies: it.AdditionalCopies,
		DeliveryMethod:   it.DeliveryMethod,
		RushTranslation:  it.RushTranslation,

		Status:         entities.OrderStatus(it.Status),
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		PaymentMethod:  it.PaymentMethod,
		FinalQuotation: it.FinalQuotation,

		Notes:     it.Notes,
		Documents: docs,
		Channel:   it.Channel,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
