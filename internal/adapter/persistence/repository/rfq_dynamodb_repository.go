package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRFQsTableName = "rfqs"

type rfqItem struct {
	ID               string   `dynamodbav:"id"`
	RFQReference     string   `dynamodbav:"rfq_reference,omitempty"`
	CustomerName     string   `dynamodbav:"customer_name,omitempty"`
	CustomerEmail    string   `dynamodbav:"customer_email,omitempty"`
	Subject          string   `dynamodbav:"subject,omitempty"`
	Status           string   `dynamodbav:"status"`
	ShippingMode     string   `dynamodbav:"shipping_mode,omitempty"`
	Origin           string   `dynamodbav:"origin,omitempty"`
	Destination      string   `dynamodbav:"destination,omitempty"`
	IsDangerousGoods bool     `dynamodbav:"is_dangerous_goods"`
	Urgency          string   `dynamodbav:"urgency"`
	TotalWeightKG    *float64 `dynamodbav:"total_weight_kg,omitempty"`

	RateID        string   `dynamodbav:"rate_id,omitempty"`
	RateAmount    *float64 `dynamodbav:"rate_amount,omitempty"`
	RateCurrency  string   `dynamodbav:"rate_currency,omitempty"`
	EstimatedCost *float64 `dynamodbav:"estimated_cost,omitempty"`

	OdooSaleOrderID     *int   `dynamodbav:"odoo_sale_order_id,omitempty"`
	OdooQuotationNumber string `dynamodbav:"odoo_quotation_number,omitempty"`

	EmailFilePath string `dynamodbav:"email_file_path,omitempty"`
	AssignedAgent string `dynamodbav:"assigned_agent,omitempty"`

	SLATargetHours int    `dynamodbav:"sla_target_hours"`
	SLADeadlineAt  string `dynamodbav:"sla_deadline_at"`
	SLABreached    bool   `dynamodbav:"sla_breached"`
	SLABreachedAt  string `dynamodbav:"sla_breached_at,omitempty"`

	ReceivedAt         string `dynamodbav:"received_at"`
	ParsingCompletedAt string `dynamodbav:"parsing_completed_at,omitempty"`
	RateFoundAt        string `dynamodbav:"rate_found_at,omitempty"`
	QuoteDraftedAt     string `dynamodbav:"quote_drafted_at,omitempty"`
	QuoteSentAt        string `dynamodbav:"quote_sent_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Version   int64  `dynamodbav:"version"`
}

// RFQDynamoRepository persists RFQ workflow records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - version attribute guards every update (optimistic concurrency)
//
// UpdateWithAudit writes the record and its audit entries in one
// TransactWriteItems call so a transition and its trail never diverge.
type RFQDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	auditTableName string
}

var _ interfaces.IRFQRepository = (*RFQDynamoRepository)(nil)

func NewRFQDynamoRepository(ddb *dynamodb.Client) *RFQDynamoRepository {
	return &RFQDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("RFQS_TABLE", defaultRFQsTableName),
		auditTableName: getenvDefault("AUDIT_LOG_TABLE", defaultAuditTableName),
	}
}

func (r *RFQDynamoRepository) Create(ctx context.Context, rfq entities.RFQ) (entities.RFQ, error) {
	it := toRFQItem(rfq)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RFQ{}, err
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
		return entities.RFQ{}, err
	}
	return rfq, nil
}

func (r *RFQDynamoRepository) GetByID(ctx context.Context, id string) (entities.RFQ, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RFQ{}, err
	}
	if len(out.Item) == 0 {
		return entities.RFQ{}, nil
	}

	var it rfqItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RFQ{}, err
	}
	return fromRFQItem(it), nil
}

func (r *RFQDynamoRepository) List(ctx context.Context, f interfaces.RFQFilter) ([]entities.RFQ, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if f.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}
	if f.Urgency != "" {
		conds = append(conds, "#urgency = :urgency")
		names["#urgency"] = "urgency"
		values[":urgency"] = &types.AttributeValueMemberS{Value: string(f.Urgency)}
	}
	if len(conds) > 0 {
		input.FilterExpression = aws.String(strings.Join(conds, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	rfqs := []entities.RFQ{}
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it rfqItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rfqs = append(rfqs, fromRFQItem(it))
		}
	}
	return rfqs, nil
}

// UpdateWithAudit commits the mutated record and its audit entries in one
// transaction. The record put is conditioned on the previously read version
// (the caller passes the already-incremented one), so the loser of a
// concurrent write observes ErrVersionConflict with nothing committed.
func (r *RFQDynamoRepository) UpdateWithAudit(ctx context.Context, rfq entities.RFQ, entries []entities.AuditLogEntry) (entities.RFQ, error) {
	av, err := attributevalue.MarshalMap(toRFQItem(rfq))
	if err != nil {
		return entities.RFQ{}, err
	}

	items := make([]types.TransactWriteItem, 0, len(entries)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id) AND #version = :prev"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prev": &types.AttributeValueMemberN{Value: strconv.FormatInt(rfq.Version-1, 10)},
			},
		},
	})
	for _, e := range entries {
		eav, err := attributevalue.MarshalMap(toAuditItem(e))
		if err != nil {
			return entities.RFQ{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.auditTableName),
				Item:      eav,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.RFQ{}, interfaces.ErrVersionConflict
				}
			}
		}
		return entities.RFQ{}, err
	}
	return rfq, nil
}

func toRFQItem(rfq entities.RFQ) rfqItem {
	return rfqItem{
		ID:               rfq.ID,
		RFQReference:     rfq.RFQReference,
		CustomerName:     rfq.CustomerName,
		CustomerEmail:    rfq.CustomerEmail,
		Subject:          rfq.Subject,
		Status:           string(rfq.Status),
		ShippingMode:     string(rfq.ShippingMode),
		Origin:           rfq.Origin,
		Destination:      rfq.Destination,
		IsDangerousGoods: rfq.IsDangerousGoods,
		Urgency:          string(rfq.Urgency),
		TotalWeightKG:    rfq.TotalWeightKG,

		RateID:        rfq.RateID,
		RateAmount:    rfq.RateAmount,
		RateCurrency:  rfq.RateCurrency,
		EstimatedCost: rfq.EstimatedCost,

		OdooSaleOrderID:     rfq.OdooSaleOrderID,
		OdooQuotationNumber: rfq.OdooQuotationNumber,

		EmailFilePath: rfq.EmailFilePath,
		AssignedAgent: rfq.AssignedAgent,

		SLATargetHours: rfq.SLATargetHours,
		SLADeadlineAt:  rfq.SLADeadlineAt.UTC().Format(time.RFC3339Nano),
		SLABreached:    rfq.SLABreached,
		SLABreachedAt:  formatOptionalTime(rfq.SLABreachedAt),

		ReceivedAt:         rfq.ReceivedAt.UTC().Format(time.RFC3339Nano),
		ParsingCompletedAt: formatOptionalTime(rfq.ParsingCompletedAt),
		RateFoundAt:        formatOptionalTime(rfq.RateFoundAt),
		QuoteDraftedAt:     formatOptionalTime(rfq.QuoteDraftedAt),
		QuoteSentAt:        formatOptionalTime(rfq.QuoteSentAt),

		CreatedAt: rfq.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: rfq.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:   rfq.Version,
	}
}

func fromRFQItem(it rfqItem) entities.RFQ {
	deadline, _ := time.Parse(time.RFC3339Nano, it.SLADeadlineAt)
	receivedAt, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.RFQ{
		ID:               it.ID,
		RFQReference:     it.RFQReference,
		CustomerName:     it.CustomerName,
		CustomerEmail:    it.CustomerEmail,
		Subject:          it.Subject,
		Status:           entities.RFQStatus(it.Status),
		ShippingMode:     entities.TransportMode(it.ShippingMode),
		Origin:           it.Origin,
		Destination:      it.Destination,
		IsDangerousGoods: it.IsDangerousGoods,
		Urgency:          entities.Urgency(it.Urgency),
		TotalWeightKG:    it.TotalWeightKG,

		RateID:        it.RateID,
		RateAmount:    it.RateAmount,
		RateCurrency:  it.RateCurrency,
		EstimatedCost: it.EstimatedCost,

		OdooSaleOrderID:     it.OdooSaleOrderID,
		OdooQuotationNumber: it.OdooQuotationNumber,

		EmailFilePath: it.EmailFilePath,
		AssignedAgent: it.AssignedAgent,

		SLATargetHours: it.SLATargetHours,
		SLADeadlineAt:  deadline,
		SLABreached:    it.SLABreached,
		SLABreachedAt:  parseOptionalTime(it.SLABreachedAt),

		ReceivedAt:         receivedAt,
		ParsingCompletedAt: parseOptionalTime(it.ParsingCompletedAt),
		RateFoundAt:        parseOptionalTime(it.RateFoundAt),
		QuoteDraftedAt:     parseOptionalTime(it.QuoteDraftedAt),
		QuoteSentAt:        parseOptionalTime(it.QuoteSentAt),

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Version:   it.Version,
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
