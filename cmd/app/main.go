package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/clipframe/clipframe/pkg/blobstore"
	"github.com/clipframe/clipframe/pkg/handlers"
	"github.com/clipframe/clipframe/pkg/handlers/jobs"
	"github.com/clipframe/clipframe/pkg/handlers/ledger"
	"github.com/clipframe/clipframe/pkg/handlers/wallets"
	"github.com/clipframe/clipframe/pkg/handlers/websockets"
	"github.com/clipframe/clipframe/pkg/jobcache"
	"github.com/clipframe/clipframe/pkg/notify"
	"github.com/clipframe/clipframe/pkg/orchestrator"
	"github.com/clipframe/clipframe/pkg/scheduler"
	dydbstore "github.com/clipframe/clipframe/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
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

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	// Redis-backed fast mirror for job polling.
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	cache := jobcache.NewRedisCache(redisClient, 24*time.Hour)

	// S3-backed blob store for source frames.
	s3Bucket := os.Getenv("S3_BUCKET_NAME")
	if s3Bucket == "" {
		log.Fatal("S3_BUCKET_NAME environment variable not set")
	}
	uploader := blobstore.NewS3Store(s3.NewFromConfig(cfg), s3Bucket, os.Getenv("S3_BASE_URL"))

	// Optional push channel for job progress.
	var publisher notify.Publisher = &notify.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		publisher, err = notify.NewPublisher(store, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	// The HTTP process only creates and enqueues; everything past Submit runs
	// on the generation worker.
	orch := orchestrator.New(orchestrator.Config{
		Jobs:      store,
		Wallets:   store,
		Cache:     cache,
		Scheduler: sqsScheduler,
		Publisher: publisher,
		Logger:    logger,
	})

	router := handlers.NewRouter(handlers.Handlers{
		Jobs:       jobs.NewJobsHandler(orch, store, cache, uploader),
		Wallets:    wallets.NewWalletsHandler(store),
		Ledger:     ledger.NewLedgerHandler(store),
		WebSockets: websockets.NewHandler(store),
	}, logger)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
