package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/storage"
)

// RefundCredits adds cost back to the monthly bucket only and appends a single
// ledger entry of +cost, in one DynamoDB transaction. Refunds restore free
// usage; they do not reconstruct the bucket mix the spend was drawn from.
// The ledger entry id is derived from the reference and reason, so competing
// refund attempts for the same spend collapse into one: the losers get
// ErrAlreadyRefunded and the wallet is credited exactly once.
func (s *Store) RefundCredits(ctx context.Context, accountID string, cost int64, reason, referenceID string) error {
	if cost <= 0 {
		return fmt.Errorf("refund cost must be positive, got %d", cost)
	}

	now := time.Now()
	entry := models.LedgerEntry{
		EntryID:     ledgerEntryID(referenceID, reason),
		AccountID:   accountID,
		Amount:      cost,
		Reason:      reason,
		ReferenceID: referenceID,
		CreatedAt:   now,
	}
	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	// An unconditional add needs no CAS loop; the wallet must simply exist.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Credit the monthly bucket.
				Update: &types.Update{
					TableName: aws.String(s.WalletsTableName),
					Key: map[string]types.AttributeValue{
						"account_id": &types.AttributeValueMemberS{Value: accountID},
					},
					UpdateExpression:    aws.String("SET monthly = monthly + :amount, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("attribute_exists(account_id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", cost)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
						":now":    nowAV,
					},
				},
			},
			{
				// Operation 2: Append the refund to the ledger.
				Put: &types.Put{
					TableName:           aws.String(s.LedgerTableName),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		if cancellationAt(err, 1) {
			return fmt.Errorf("refund for %s: %w", referenceID, storage.ErrAlreadyRefunded)
		}
		if isConditionalCheckFailure(err) {
			return fmt.Errorf("wallet for account ID %s: %w", accountID, storage.ErrWalletNotFound)
		}
		return fmt.Errorf("failed to execute refund transaction: %w", err)
	}

	return nil
}
