package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListLedgerEntries(t *testing.T) {
	entries := []models.LedgerEntry{
		{EntryID: "e2", AccountID: "acct-1", Amount: 150, Reason: "job_refund", ReferenceID: "job-1"},
		{EntryID: "e1", AccountID: "acct-1", Amount: -150, Reason: "generation", ReferenceID: "job-1"},
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var entriesAV []map[string]types.AttributeValue
		for _, e := range entries {
			av, err := attributevalue.MarshalMap(e)
			assert.NoError(t, err)
			entriesAV = append(entriesAV, av)
		}

		var captured *dynamodb.QueryInput
		mockClient.On("Query", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.QueryInput)
			}).
			Return(&dynamodb.QueryOutput{Items: entriesAV}, nil)

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		retrieved, err := store.ListLedgerEntries(context.Background(), "acct-1", 20)

		assert.NoError(t, err)
		assert.Len(t, retrieved, 2)
		assert.False(t, *captured.ScanIndexForward, "entries should be newest first")
		assert.Equal(t, int32(20), *captured.Limit)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.ListLedgerEntries(context.Background(), "acct-1", 20)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query ledger table")
	})
}

func TestGetStuckJobs(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		stuck := models.Job{Id: "job-1", AccountId: "acct-1", Status: models.PROCESSING, Cost: 150}
		stuckAV, _ := attributevalue.MarshalMap(stuck)

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{stuckAV}}, nil)

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		jobs, err := store.GetStuckJobs(context.Background(), 0)

		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		assert.Equal(t, "job-1", jobs[0].Id)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.GetStuckJobs(context.Background(), 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query for stuck jobs")
	})
}
