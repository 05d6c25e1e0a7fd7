package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/storage"
	"github.com/clipframe/clipframe/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateJob(t *testing.T) {
	job := &models.Job{Id: "job-1", AccountId: "acct-1", Status: models.PENDING, Cost: 150}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		created, err := store.CreateJob(context.Background(), job)

		assert.NoError(t, err)
		assert.Equal(t, "job-1", created.Id)
		assert.False(t, created.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.CreateJob(context.Background(), job)

		assert.ErrorIs(t, err, storage.ErrJobAlreadyExists)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.CreateJob(context.Background(), job)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create job in DynamoDB")
	})
}

func TestGetJob(t *testing.T) {
	job := &models.Job{Id: "job-1", AccountId: "acct-1", Status: models.PROCESSING}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		jobAV, _ := attributevalue.MarshalMap(job)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: jobAV}, nil)

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		retrieved, err := store.GetJob(context.Background(), "job-1", "acct-1")

		assert.NoError(t, err)
		assert.Equal(t, job.Id, retrieved.Id)
		assert.Equal(t, models.PROCESSING, retrieved.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.GetJob(context.Background(), "job-1", "acct-1")

		assert.ErrorIs(t, err, storage.ErrJobNotFound)
	})

	t.Run("Wrong Account Looks Like Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		jobAV, _ := attributevalue.MarshalMap(job)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: jobAV}, nil)

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.GetJob(context.Background(), "job-1", "acct-2")

		assert.ErrorIs(t, err, storage.ErrJobNotFound)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.GetJob(context.Background(), "job-1", "acct-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get job from DynamoDB")
	})
}

func TestUpdateJob(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		updatedStatus := models.PROCESSING
		progress := int32(40)
		message := "generating code"
		updated := models.Job{Id: "job-1", AccountId: "acct-1", Status: updatedStatus, Progress: progress, Message: message}
		updatedAV, _ := attributevalue.MarshalMap(updated)

		mockClient := new(mocks.DynamoDBAPI)
		var captured *dynamodb.UpdateItemInput
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.UpdateItemInput)
			}).
			Return(&dynamodb.UpdateItemOutput{Attributes: updatedAV}, nil)

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		job, err := store.UpdateJob(context.Background(), "job-1", storage.JobUpdate{
			Status:   &updatedStatus,
			Progress: &progress,
			Message:  &message,
		})

		assert.NoError(t, err)
		assert.Equal(t, updatedStatus, job.Status)
		assert.Equal(t, progress, job.Progress)

		// The guard only permits writes while the job is pending or processing,
		// and a progress write may never move the number backward.
		assert.Contains(t, *captured.ConditionExpression, ":pending")
		assert.Contains(t, *captured.ConditionExpression, ":processing")
		assert.Contains(t, *captured.ConditionExpression, "progress <= :progress")
	})

	t.Run("Progress Guard Only Applies To Progress Writes", func(t *testing.T) {
		message := "still working"

		mockClient := new(mocks.DynamoDBAPI)
		var captured *dynamodb.UpdateItemInput
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.UpdateItemInput)
			}).
			Return(&dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{}}, nil)

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.UpdateJob(context.Background(), "job-1", storage.JobUpdate{Message: &message})

		assert.NoError(t, err)
		assert.NotContains(t, *captured.ConditionExpression, "progress")
	})

	t.Run("Terminal Job Is Immutable", func(t *testing.T) {
		failedStatus := models.FAILED
		terminal := models.Job{Id: "job-1", AccountId: "acct-1", Status: models.COMPLETE, Progress: 100}
		terminalAV, _ := attributevalue.MarshalMap(terminal)

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{Item: terminalAV})

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.UpdateJob(context.Background(), "job-1", storage.JobUpdate{Status: &failedStatus})

		assert.ErrorIs(t, err, storage.ErrJobTerminal)
	})

	t.Run("Guard Failure Without Old Row Reads As Terminal", func(t *testing.T) {
		progress := int32(40)

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.UpdateJob(context.Background(), "job-1", storage.JobUpdate{Progress: &progress})

		assert.ErrorIs(t, err, storage.ErrJobTerminal)
	})

	t.Run("Stale Progress Write Is Outpaced", func(t *testing.T) {
		// Another delivery already pushed the live job to 40; writing 25 back
		// would make a poller see progress move backward.
		ahead := models.Job{Id: "job-1", AccountId: "acct-1", Status: models.PROCESSING, Progress: 40}
		aheadAV, _ := attributevalue.MarshalMap(ahead)
		progress := int32(25)

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{Item: aheadAV})

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.UpdateJob(context.Background(), "job-1", storage.JobUpdate{Progress: &progress})

		assert.ErrorIs(t, err, storage.ErrJobOutpaced)
	})

	t.Run("Storage Error", func(t *testing.T) {
		progress := int32(80)

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		_, err := store.UpdateJob(context.Background(), "job-1", storage.JobUpdate{Progress: &progress})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update job in DynamoDB")
	})
}

func TestAttachVerification(t *testing.T) {
	verification := &models.Verification{SSIMScore: 0.97, Verdict: models.VerdictPass}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var captured *dynamodb.UpdateItemInput
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.UpdateItemInput)
			}).
			Return(&dynamodb.UpdateItemOutput{}, nil)

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		err := store.AttachVerification(context.Background(), "job-1", verification)

		assert.NoError(t, err)
		// The verdict attaches to completed jobs only; it never flips status.
		assert.Contains(t, *captured.ConditionExpression, ":complete")
		assert.NotContains(t, *captured.UpdateExpression, "#status =")
	})

	t.Run("Not Complete", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, "jobs", "wallets", "ledger", "")
		err := store.AttachVerification(context.Background(), "job-1", verification)

		assert.ErrorIs(t, err, storage.ErrJobNotFound)
	})
}
