package main

import (
	"context"
	"log"
	"time"

	"github.com/Conceptual-Machines/promptgram/internal/api"
	apimiddleware "github.com/Conceptual-Machines/promptgram/internal/api/middleware"
	"github.com/Conceptual-Machines/promptgram/internal/config"
	"github.com/Conceptual-Machines/promptgram/internal/grammar"
	"github.com/Conceptual-Machines/promptgram/internal/metrics"
	"github.com/Conceptual-Machines/promptgram/internal/prompt"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout = 2 * time.Second
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "promptgram@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            !cfg.IsProduction(),
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	grammars, err := prompt.NewLoader(cfg.Grammars).LoadAll()
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to load grammars:", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = grammar.RandomSeed(); err != nil {
			log.Fatal("Failed to seed random source:", err)
		}
	}
	log.Printf("🎲 Random source seeded with %d", seed)

	cloudwatch, err := metrics.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to create metrics client:", err)
	}
	sentryMetrics := metrics.NewSentryMetrics()
	stats := metrics.NewStats()

	generationRecorders := metrics.Multi{stats, sentryMetrics}
	requestRecorders := []apimiddleware.RequestRecorder{sentryMetrics}
	if cloudwatch.Enabled() {
		generationRecorders = append(generationRecorders, cloudwatch)
		requestRecorders = append(requestRecorders, cloudwatch)
	}

	svc := prompt.NewService(grammars, grammar.NewLockedSource(seed), generationRecorders)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.SetupRouter(cfg, api.Deps{
		Service:   svc,
		Stats:     stats,
		Recorders: requestRecorders,
	}, GetVersion())

	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}
