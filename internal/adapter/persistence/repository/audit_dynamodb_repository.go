package repository

import (
	"context"
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditTableName = "rfq_audit_log"

type auditItem struct {
	RFQID     string `dynamodbav:"rfq_id"`
	Seq       int64  `dynamodbav:"seq"`
	Event     string `dynamodbav:"event"`
	OldValue  string `dynamodbav:"old_value,omitempty"`
	NewValue  string `dynamodbav:"new_value,omitempty"`
	Timestamp string `dynamodbav:"timestamp"`
}

// AuditLogDynamoRepository reads and appends the per-RFQ audit trail.
//
// Table requirements:
//   - PK: rfq_id (string)
//   - SK: seq (number)
//
// Entries are write-once. Transitions write through the RFQ repository's
// transaction; Append exists for the intake record only.
type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOG_TABLE", defaultAuditTableName),
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, e entities.AuditLogEntry) error {
	av, err := attributevalue.MarshalMap(toAuditItem(e))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rfq_id) AND attribute_not_exists(#seq)"),
		ExpressionAttributeNames: map[string]string{
			"#rfq_id": "rfq_id",
			"#seq":    "seq",
		},
	})
	return err
}

// ListByRFQ returns the trail in seq order, oldest first.
func (r *AuditLogDynamoRepository) ListByRFQ(ctx context.Context, rfqID string) ([]entities.AuditLogEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("rfq_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: rfqID},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditLogEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it auditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromAuditItem(it))
	}
	return entries, nil
}

func toAuditItem(e entities.AuditLogEntry) auditItem {
	return auditItem{
		RFQID:     e.RFQID,
		Seq:       e.Seq,
		Event:     e.Event,
		OldValue:  e.OldValue,
		NewValue:  e.NewValue,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func fromAuditItem(it auditItem) entities.AuditLogEntry {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.AuditLogEntry{
		RFQID:     it.RFQID,
		Seq:       it.Seq,
		Event:     it.Event,
		OldValue:  it.OldValue,
		NewValue:  it.NewValue,
		Timestamp: ts,
	}
}
