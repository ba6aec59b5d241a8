package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRatesTableName = "rates"

type rateItem struct {
	ID              string   `dynamodbav:"id"`
	CarrierName     string   `dynamodbav:"carrier_name"`
	Mode            string   `dynamodbav:"mode"`
	OriginPort      string   `dynamodbav:"origin_port"`
	DestinationPort string   `dynamodbav:"destination_port"`
	Currency        string   `dynamodbav:"currency"`
	RatePerUnit     float64  `dynamodbav:"rate_per_unit"`
	Unit            string   `dynamodbav:"unit"`
	MinimumCharge   *float64 `dynamodbav:"minimum_charge,omitempty"`
	DGSurchargePct  *float64 `dynamodbav:"dg_surcharge_pct,omitempty"`
	ValidFrom       string   `dynamodbav:"valid_from"`
	ValidTo         string   `dynamodbav:"valid_to"`
	Source          string   `dynamodbav:"source"`
	Notes           string   `dynamodbav:"notes,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// RateDynamoRepository persists carrier rates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// ACTIVE/EXPIRED is never stored; it derives from the validity window at
// read time, so no sweep is needed when valid_to passes.
type RateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateRepository = (*RateDynamoRepository)(nil)

func NewRateDynamoRepository(ddb *dynamodb.Client) *RateDynamoRepository {
	return &RateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATES_TABLE", defaultRatesTableName),
	}
}

func (r *RateDynamoRepository) Create(ctx context.Context, rate entities.Rate) (entities.Rate, error) {
	it := toRateItem(rate)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Rate{}, err
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
		return entities.Rate{}, err
	}
	return rate, nil
}

func (r *RateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Rate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Rate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Rate{}, nil
	}

	var it rateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Rate{}, err
	}
	return fromRateItem(it), nil
}

// List scans the catalog applying the filter server-side. The catalog is
// small (hundreds of lanes), so a filtered scan beats maintaining GSIs per
// query dimension.
func (r *RateDynamoRepository) List(ctx context.Context, f interfaces.RateFilter) ([]entities.Rate, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if f.Mode != "" {
		conds = append(conds, "#mode = :mode")
		names["#mode"] = "mode"
		values[":mode"] = &types.AttributeValueMemberS{Value: string(f.Mode)}
	}
	if f.Origin != "" {
		conds = append(conds, "#origin_port = :origin")
		names["#origin_port"] = "origin_port"
		values[":origin"] = &types.AttributeValueMemberS{Value: f.Origin}
	}
	if f.Destination != "" {
		conds = append(conds, "#destination_port = :destination")
		names["#destination_port"] = "destination_port"
		values[":destination"] = &types.AttributeValueMemberS{Value: f.Destination}
	}
	if len(conds) > 0 {
		input.FilterExpression = aws.String(strings.Join(conds, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	rates := []entities.Rate{}
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it rateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rates = append(rates, fromRateItem(it))
		}
	}
	return rates, nil
}

func (r *RateDynamoRepository) Update(ctx context.Context, updated entities.Rate) (entities.Rate, error) {
	it := toRateItem(updated)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Rate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Rate{}, nil
		}
		return entities.Rate{}, err
	}
	return updated, nil
}

func toRateItem(rate entities.Rate) rateItem {
	return rateItem{
		ID:              rate.ID,
		CarrierName:     rate.CarrierName,
		Mode:            string(rate.Mode),
		OriginPort:      rate.OriginPort,
		DestinationPort: rate.DestinationPort,
		Currency:        rate.Currency,
		RatePerUnit:     rate.RatePerUnit,
		Unit:            string(rate.Unit),
		MinimumCharge:   rate.MinimumCharge,
		DGSurchargePct:  rate.DGSurchargePct,
		ValidFrom:       rate.ValidFrom.UTC().Format(time.RFC3339Nano),
		ValidTo:         rate.ValidTo.UTC().Format(time.RFC3339Nano),
		Source:          rate.Source,
		Notes:           rate.Notes,
		CreatedAt:       rate.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       rate.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRateItem(it rateItem) entities.Rate {
	validFrom, _ := time.Parse(time.RFC3339Nano, it.ValidFrom)
	validTo, _ := time.Parse(time.RFC3339Nano, it.ValidTo)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Rate{
		ID:              it.ID,
		CarrierName:     it.CarrierName,
		Mode:            entities.TransportMode(it.Mode),
		OriginPort:      it.OriginPort,
		DestinationPort: it.DestinationPort,
		Currency:        it.Currency,
		RatePerUnit:     it.RatePerUnit,
		Unit:            entities.RateUnit(it.Unit),
		MinimumCharge:   it.MinimumCharge,
		DGSurchargePct:  it.DGSurchargePct,
		ValidFrom:       validFrom,
		ValidTo:         validTo,
		Source:          it.Source,
		Notes:           it.Notes,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
