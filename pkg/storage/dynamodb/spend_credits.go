package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/storage"
)

// maxSpendAttempts bounds the CAS retry loop when concurrent spends race on
// the same wallet version.
const maxSpendAttempts = 3

// SpendCredits atomically deducts cost from the wallet's buckets in priority
// order (monthly, then rollover, then topup) and appends a single ledger entry
// of -cost, in one DynamoDB transaction. The wallet update is guarded by an
// optimistic version check; on a version race the snapshot is re-read and the
// deduction recomputed. The ledger entry id is derived from the reference and
// reason, so a redelivered spend for the same reference is rejected with
// ErrDuplicateSpend instead of charging the wallet twice.
func (s *Store) SpendCredits(ctx context.Context, accountID string, cost int64, reason, referenceID string) (*models.Wallet, error) {
	if cost <= 0 {
		return nil, fmt.Errorf("spend cost must be positive, got %d", cost)
	}

	for attempt := 0; attempt < maxSpendAttempts; attempt++ {
		// 1. Read the wallet snapshot the deduction will be computed against.
		wallet, err := s.GetWallet(ctx, accountID)
		if err != nil {
			return nil, err
		}

		// 2. Compute the priority-ordered bucket split. Expired rollover is
		// never spendable; the stale remainder stays on the row until the
		// billing-period reset rewrites it.
		rollover := spendableRollover(wallet, time.Now())
		if wallet.Monthly+rollover+wallet.Topup < cost {
			return nil, storage.ErrInsufficientFunds
		}
		fromMonthly := min64(wallet.Monthly, cost)
		fromRollover := min64(rollover, cost-fromMonthly)
		fromTopup := cost - fromMonthly - fromRollover

		now := time.Now()
		entry := models.LedgerEntry{
			EntryID:     ledgerEntryID(referenceID, reason),
			AccountID:   accountID,
			Amount:      -cost,
			Reason:      reason,
			ReferenceID: referenceID,
			CreatedAt:   now,
		}
		entryAV, err := attributevalue.MarshalMap(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal ledger entry: %w", err)
		}
		nowAV, err := attributevalue.Marshal(now)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
		}

		// 3. Construct the TransactWriteItems input: one conditional wallet
		// update plus one ledger append.
		input := &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{
					// Operation 1: Deduct from the wallet's buckets.
					Update: &types.Update{
						TableName: aws.String(s.WalletsTableName),
						Key: map[string]types.AttributeValue{
							"account_id": &types.AttributeValueMemberS{Value: accountID},
						},
						UpdateExpression:    aws.String("SET monthly = monthly - :dm, rollover = rollover - :dr, topup = topup - :dt, version = version + :inc, updated_at = :now"),
						ConditionExpression: aws.String("version = :version AND monthly >= :dm AND rollover >= :dr AND topup >= :dt"),
						ExpressionAttributeValues: map[string]types.AttributeValue{
							":dm":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", fromMonthly)},
							":dr":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", fromRollover)},
							":dt":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", fromTopup)},
							":inc":     &types.AttributeValueMemberN{Value: "1"},
							":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
							":now":     nowAV,
						},
					},
				},
				{
					// Operation 2: Append the spend to the ledger.
					Put: &types.Put{
						TableName:           aws.String(s.LedgerTableName),
						Item:                entryAV,
						ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
					},
				},
			},
		}

		// 4. Execute the transaction. A rejected ledger append means this
		// reference already paid; a rejected wallet update is a lost version
		// race, retried with a fresh snapshot.
		_, err = s.Client.TransactWriteItems(ctx, input)
		if err != nil {
			if cancellationAt(err, 1) {
				return nil, fmt.Errorf("spend for %s: %w", referenceID, storage.ErrDuplicateSpend)
			}
			if isConditionalCheckFailure(err) {
				continue
			}
			return nil, fmt.Errorf("failed to execute spend transaction: %w", err)
		}

		wallet.Monthly -= fromMonthly
		wallet.Rollover -= fromRollover
		wallet.Topup -= fromTopup
		wallet.Version++
		wallet.UpdatedAt = now
		return wallet, nil
	}

	return nil, fmt.Errorf("spend for account %s did not converge after %d attempts", accountID, maxSpendAttempts)
}

// spendableRollover returns the rollover balance usable at the given time.
func spendableRollover(wallet *models.Wallet, at time.Time) int64 {
	if wallet.RolloverExpiresAt != nil && at.After(*wallet.RolloverExpiresAt) {
		return 0
	}
	return wallet.Rollover
}

// ledgerEntryID derives a deterministic ledger id from the reference and
// reason, so retried spends and refunds collapse into a single entry.
func ledgerEntryID(referenceID, reason string) string {
	return referenceID + "-" + reason
}

// cancellationAt reports whether a transact-write was canceled because the
// conditional check of the item at the given index did not hold.
func cancellationAt(err error, index int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || index >= len(tce.CancellationReasons) {
		return false
	}
	code := tce.CancellationReasons[index].Code
	return code != nil && *code == "ConditionalCheckFailed"
}

// isConditionalCheckFailure reports whether a transact-write failed because one
// of its conditional checks did not hold.
func isConditionalCheckFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
