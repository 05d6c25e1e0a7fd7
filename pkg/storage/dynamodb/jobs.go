package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/storage"
)

// jobRetention controls the TTL stamped on job rows.
const jobRetention = 30 * 24 * time.Hour

// CreateJob persists a new job record. The conditional put makes id reuse a
// hard failure rather than a silent overwrite.
func (s *Store) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	job.TTL = now.Add(jobRetention).Unix()

	jobAV, err := attributevalue.MarshalMap(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.JobsTableName),
		Item:                jobAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("job %s: %w", job.Id, storage.ErrJobAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create job in DynamoDB: %w", err)
	}

	return job, nil
}

// GetJob retrieves a job from DynamoDB by its ID, scoped to the owning account.
func (s *Store) GetJob(ctx context.Context, jobID, accountID string) (*models.Job, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": jobID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.JobsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get job from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("job %s: %w", jobID, storage.ErrJobNotFound)
	}

	var job models.Job
	if err := attributevalue.UnmarshalMap(result.Item, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}

	// Ownership check: a job belonging to another account looks exactly like a
	// missing job to the caller.
	if job.AccountId != accountID {
		return nil, fmt.Errorf("job %s: %w", jobID, storage.ErrJobNotFound)
	}

	return &job, nil
}

// UpdateJob merges the partial update into the job record. The conditional
// expression refuses the write once the job is terminal, so complete/failed
// are absorbing states. A progress write also carries a monotonicity guard:
// progress never moves backward on a live job, even when duplicate deliveries
// interleave, and a write rejected on that clause maps to ErrJobOutpaced.
func (s *Store) UpdateJob(ctx context.Context, jobID string, update storage.JobUpdate) (*models.Job, error) {
	setClauses := []string{"updated_at = :now"}
	names := map[string]string{"#status": "status"}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	values := map[string]types.AttributeValue{
		":now":        nowAV,
		":pending":    &types.AttributeValueMemberS{Value: string(models.PENDING)},
		":processing": &types.AttributeValueMemberS{Value: string(models.PROCESSING)},
	}

	setValue := func(name, placeholder string, v interface{}) error {
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", name, err)
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = %s", name, placeholder))
		values[placeholder] = av
		return nil
	}

	if update.Status != nil {
		av, err := attributevalue.Marshal(*update.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal status: %w", err)
		}
		setClauses = append(setClauses, "#status = :status")
		values[":status"] = av
	}
	if update.Progress != nil {
		if err := setValue("progress", ":progress", *update.Progress); err != nil {
			return nil, err
		}
	}
	if update.Message != nil {
		if err := setValue("message", ":message", *update.Message); err != nil {
			return nil, err
		}
	}
	if update.Result != nil {
		if err := setValue("#result", ":result", update.Result); err != nil {
			return nil, err
		}
		names["#result"] = "result"
	}
	if update.ErrorCode != nil {
		if err := setValue("error_code", ":error_code", *update.ErrorCode); err != nil {
			return nil, err
		}
	}
	if update.ErrorMessage != nil {
		if err := setValue("error_message", ":error_message", *update.ErrorMessage); err != nil {
			return nil, err
		}
	}
	if update.CompletedAt != nil {
		if err := setValue("completed_at", ":completed_at", *update.CompletedAt); err != nil {
			return nil, err
		}
	}

	condition := "attribute_exists(id) AND (#status = :pending OR #status = :processing)"
	if update.Progress != nil {
		condition += " AND (attribute_not_exists(progress) OR progress <= :progress)"
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.JobsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
		UpdateExpression:                    aws.String("SET " + strings.Join(setClauses, ", ")),
		ConditionExpression:                 aws.String(condition),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("job %s: %w", jobID, guardFailure(condCheckFailed))
		}
		return nil, fmt.Errorf("failed to update job in DynamoDB: %w", err)
	}

	var job models.Job
	if err := attributevalue.UnmarshalMap(result.Attributes, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated job: %w", err)
	}

	return &job, nil
}

// guardFailure classifies a rejected job write using the old row returned with
// the conditional failure: a terminal row is immutable, a live row means a
// concurrent writer is further along. Without the old row the terminal guard
// is assumed, which callers treat as "someone else owns this job" either way.
func guardFailure(ccf *types.ConditionalCheckFailedException) error {
	if len(ccf.Item) == 0 {
		return storage.ErrJobTerminal
	}
	var old models.Job
	if err := attributevalue.UnmarshalMap(ccf.Item, &old); err != nil {
		return storage.ErrJobTerminal
	}
	if old.Status == models.PENDING || old.Status == models.PROCESSING {
		return storage.ErrJobOutpaced
	}
	return storage.ErrJobTerminal
}

// AttachVerification stores an advisory QA verdict on a completed job. This is
// the one write allowed after a terminal transition; it cannot touch status.
func (s *Store) AttachVerification(ctx context.Context, jobID string, v *models.Verification) error {
	vAV, err := attributevalue.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal verification: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.JobsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
		UpdateExpression:    aws.String("SET verification = :verification, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :complete"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":verification": vAV,
			":now":          nowAV,
			":complete":     &types.AttributeValueMemberS{Value: string(models.COMPLETE)},
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("job %s: %w", jobID, storage.ErrJobNotFound)
		}
		return fmt.Errorf("failed to attach verification in DynamoDB: %w", err)
	}

	return nil
}
