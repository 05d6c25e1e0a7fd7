package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/clipframe/clipframe/pkg/jobcache"
	"github.com/clipframe/clipframe/pkg/modelclient"
	"github.com/clipframe/clipframe/pkg/notify"
	"github.com/clipframe/clipframe/pkg/orchestrator"
	"github.com/clipframe/clipframe/pkg/qa"
	"github.com/clipframe/clipframe/pkg/scheduler"
	dydbstore "github.com/clipframe/clipframe/pkg/storage/dynamodb"
	"github.com/clipframe/clipframe/pkg/surveyor"
)

var orch *orchestrator.Orchestrator

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	jobsTable := os.Getenv("DYNAMODB_JOBS_TABLE_NAME")
	walletsTable := os.Getenv("DYNAMODB_WALLETS_TABLE_NAME")
	ledgerTable := os.Getenv("DYNAMODB_LEDGER_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	if jobsTable == "" || walletsTable == "" || ledgerTable == "" || connectionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dydbstore.New(dbClient, jobsTable, walletsTable, ledgerTable, connectionsTable)

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	cache := jobcache.NewRedisCache(redis.NewClient(&redis.Options{Addr: redisAddr}), 24*time.Hour)

	client := modelclient.New(os.Getenv("MODEL_API_URL"), os.Getenv("MODEL_API_KEY"), 60*time.Second)

	surveyorMode := surveyor.ModeSequential
	if os.Getenv("SURVEYOR_MODE") == string(surveyor.ModeParallel) {
		surveyorMode = surveyor.ModeParallel
	}

	var publisher notify.Publisher = &notify.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		publisher, err = notify.NewPublisher(store, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	// The worker never enqueues, so it carries no scheduler.
	orch = orchestrator.New(orchestrator.Config{
		Jobs:              store,
		Wallets:           store,
		Cache:             cache,
		Generator:         client,
		Surveyor:          surveyor.New(client, surveyorMode, logger),
		Verifier:          qa.New(client, modelclient.NewHTTPFetcher(30*time.Second), logger),
		Publisher:         publisher,
		GenerationTimeout: 60 * time.Second,
		Logger:            logger,
	})
}

// HandleRequest processes SQS messages and runs each job to a terminal state.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var msg scheduler.JobMessage
		if err := json.Unmarshal([]byte(message.Body), &msg); err != nil {
			log.Printf("ERROR: failed to unmarshal job from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		log.Printf("Executing job %s", msg.JobID)

		if err := orch.Execute(ctx, &msg); err != nil {
			log.Printf("ERROR: failed to execute job %s: %v", msg.JobID, err)
			// In a production system, persistent failures would be sent to a DLQ.
			return err
		}

		log.Printf("Finished job %s", msg.JobID)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
