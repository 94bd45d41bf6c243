package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"follower-tracker/handlers"
	"follower-tracker/kvstore"
	middleware "follower-tracker/middlewares"
	"follower-tracker/pubsub"
	"follower-tracker/queue"

	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
)

func main() {
	// To initialize Sentry's handler, you need to initialize Sentry itself beforehand
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("SENTRY_DSN"),
		TracesSampleRate: 1.0,
	}); err != nil {
		fmt.Printf("Sentry initialization failed: %v\n", err)
	}
	sentryHandler := sentryhttp.New(sentryhttp.Options{})
	defer sentry.Flush(2 * time.Second)

	// Redis is optional: without it the rate limiter passes everything
	// through and no snapshot_stored events are published.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisStore, err := kvstore.NewRedisStore(redisURL, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		middleware.RateLimitRedisStore = redisStore
		handlers.PS = pubsub.NewPubSub(redisStore)
	}

	queue.StartWorker()

	// Initialize the router
	r := mux.NewRouter()

	r.Use(middleware.LoggingMiddleware)
	r.Use(sentryHandler.Handle)
	r.Use(middleware.SentryAlertMiddleware)
	r.Use(middleware.ResponseTimeMiddleware)

	// Each /update fans out to two third-party APIs; keep triggers modest.
	r.Handle("/update", middleware.APIRateLimitMiddleware(10)(http.HandlerFunc(handlers.UpdateHandler))).Methods("GET")
	r.HandleFunc("/latest", handlers.LatestHandler).Methods("GET")
	r.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Server is running on http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
