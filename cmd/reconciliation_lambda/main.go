package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/orchestrator"
	"github.com/clipframe/clipframe/pkg/storage"
	dydbstore "github.com/clipframe/clipframe/pkg/storage/dynamodb"
)

var store storage.Storage

// stuckJobThreshold is how long a job may sit in processing before the sweep
// declares its worker dead.
const stuckJobThreshold = 20 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)

	jobsTable := os.Getenv("DYNAMODB_JOBS_TABLE_NAME")
	walletsTable := os.Getenv("DYNAMODB_WALLETS_TABLE_NAME")
	ledgerTable := os.Getenv("DYNAMODB_LEDGER_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	store = dydbstore.New(dbClient, jobsTable, walletsTable, ledgerTable, connectionsTable)
}

// HandleRequest is triggered by an EventBridge Schedule. A worker killed
// mid-flight leaves its job in processing forever; this sweep times those jobs
// out and gives the credits back.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation sweep for stuck jobs...")

	stuckJobs, err := store.GetStuckJobs(ctx, stuckJobThreshold)
	if err != nil {
		log.Printf("ERROR: failed to get stuck jobs: %v", err)
		return err
	}

	if len(stuckJobs) == 0 {
		log.Println("No stuck jobs found.")
		return nil
	}

	log.Printf("Found %d stuck jobs. Timing them out...", len(stuckJobs))

	for _, job := range stuckJobs {
		if err := timeOutJob(ctx, &job); err != nil {
			log.Printf("ERROR: failed to time out job %s: %v", job.Id, err)
			// Continue to the next job, don't let one failure stop the whole batch.
			continue
		}
	}

	log.Println("Reconciliation sweep finished.")
	return nil
}

// timeOutJob fails one stuck job and refunds its spend. Winning the terminal
// write is what grants refund responsibility, so a job that finished between
// the query and the update is skipped without a refund.
func timeOutJob(ctx context.Context, job *models.Job) error {
	now := time.Now()
	status := models.FAILED
	message := "Failed"
	errorCode := models.ErrCodeTimeout
	errorMessage := "job did not finish within the processing window"

	_, err := store.UpdateJob(ctx, job.Id, storage.JobUpdate{
		Status:       &status,
		Message:      &message,
		ErrorCode:    &errorCode,
		ErrorMessage: &errorMessage,
		CompletedAt:  &now,
	})
	if err != nil {
		if errors.Is(err, storage.ErrJobTerminal) {
			log.Printf("Job %s reached a terminal state on its own, skipping", job.Id)
			return nil
		}
		return err
	}

	if err := store.RefundCredits(ctx, job.AccountId, job.Cost, orchestrator.ReasonGenerationRefund, job.Id); err != nil {
		if errors.Is(err, storage.ErrAlreadyRefunded) {
			log.Printf("Job %s was already refunded, skipping", job.Id)
			return nil
		}
		// The job is already failed; a lost refund is found again by pairing
		// ledger entries on the job id.
		log.Printf("ERROR: failed to refund credits for job %s: %v", job.Id, err)
		return err
	}

	log.Printf("Timed out job %s and refunded %d credits to %s", job.Id, job.Cost, job.AccountId)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
