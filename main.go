package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pathakanu/myAssistant/internal/api"
	"github.com/pathakanu/myAssistant/internal/assistant"
	"github.com/pathakanu/myAssistant/internal/config"
	"github.com/pathakanu/myAssistant/internal/database"
	"github.com/pathakanu/myAssistant/internal/format"
	"github.com/pathakanu/myAssistant/internal/metrics"
	myopenai "github.com/pathakanu/myAssistant/internal/openai"
	"github.com/pathakanu/myAssistant/internal/reminder"
	"github.com/pathakanu/myAssistant/internal/twilio"
)

func main() {
	logger := log.New(os.Stdout, "[assistant] ", log.LstdFlags|log.Lshortfile)
	cfg := config.Load()
	gin.SetMode(gin.ReleaseMode)

	store, err := newStore(cfg, logger)
	if err != nil {
		logger.Fatalf("store init failed: %v", err)
	}

	openAIClient := myopenai.New(myopenai.Config{
		APIKey:       cfg.OpenAIAPIKey,
		Model:        cfg.OpenAIModel,
		SystemPrompt: cfg.Locale.SystemPrompt,
		Timeout:      cfg.AITimeout,
	})
	var ai assistant.Responder
	if openAIClient.Enabled() {
		ai = openAIClient
		logger.Printf("openai: chat replies via %s", cfg.OpenAIModel)
	} else {
		logger.Printf("openai: OPENAI_API_KEY not set, using canned replies")
	}

	render := format.New(cfg.Locale, cfg.LocalTimezone).ReminderDue
	twilioNotifier := twilio.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber, cfg.NotifyWhatsAppTo, render, logger)
	var notifier assistant.Notifier
	if twilioNotifier.Configured() {
		notifier = twilioNotifier
	} else {
		logger.Printf("twilio: not configured, due reminders will only be logged")
	}

	m := metrics.New()
	reminderAssistant := assistant.New(assistant.Options{
		Store:    store,
		Locale:   cfg.Locale,
		Location: cfg.LocalTimezone,
		AI:       ai,
		Notifier: notifier,
		Metrics:  m,
		Logger:   logger,
		CatchUp:  cfg.SweepCatchUp,
	})
	if err := reminderAssistant.StartScheduler(cfg.SweepSchedule); err != nil {
		logger.Fatalf("scheduler start: %v", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(reminderAssistant, cfg.Locale, m, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("server starting on :%s (store=%s, locale=%s)", cfg.Port, cfg.StoreBackend, cfg.Locale.Name)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	waitForShutdown(server, reminderAssistant, logger)
}

func newStore(cfg *config.Config, logger *log.Logger) (reminder.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.Open(cfg.DatabaseURL, "", logger)
		if err != nil {
			return nil, err
		}
		return database.NewStore(db), nil
	case config.BackendSQLite:
		db, err := database.Open("", cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return database.NewStore(db), nil
	default:
		logger.Printf("store: in-memory, reminders are lost on restart")
		return reminder.NewMemoryStore(), nil
	}
}

func waitForShutdown(server *http.Server, reminderAssistant *assistant.Assistant, logger *log.Logger) {
	stopCtx := make(chan os.Signal, 1)
	signal.Notify(stopCtx, syscall.SIGINT, syscall.SIGTERM)
	<-stopCtx
	logger.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Printf("server shutdown error: %v", err)
	}
	reminderAssistant.StopScheduler()
}
