// Command remindd runs the WhatsApp reminder agent.
//
// It receives messages on a Twilio webhook, extracts a task and target time
// with an LLM, stores the reminder in SQLite and schedules a one-shot job
// that announces the reminder locally and messages the requester back.
//
// Usage:
//
//	./remindd                      # Start with default config
//	./remindd -config agent.yaml   # Start with an explicit config file
//
// Environment:
//
//	TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_WHATSAPP_NUMBER
//	DEEPSEEK_API_KEY
//	REMINDER_DB_PATH
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"remindagent/internal/config"
	"remindagent/internal/llm"
	"remindagent/internal/notify"
	"remindagent/internal/parser"
	"remindagent/internal/reminder"
	"remindagent/internal/scheduler"
	"remindagent/internal/voice"
	"remindagent/internal/webhook"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	flag.Parse()

	// Optional .env alongside the binary; absence is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[main] skipping .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		if cfg.Provider == config.ProviderDeepSeek {
			fmt.Fprintf(os.Stderr, "Tip: Set DEEPSEEK_API_KEY environment variable or add it to config file\n")
		}
		os.Exit(1)
	}

	store, err := reminder.NewStore(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating provider: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()

	var speaker voice.Speaker = voice.Nop{}
	if cfg.Voice.Enabled {
		speaker = voice.NewSpeaker(cfg.Voice.Command)
	}

	var sender notify.MessageSender
	if cfg.TwilioConfigured() {
		sender = notify.NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.WhatsAppNumber)
	}

	dispatcher := notify.NewDispatcher(speaker, sender)
	sched := scheduler.New(dispatcher, nil, time.Duration(cfg.Scheduler.Tick)*time.Second)
	service := reminder.NewService(store, sched, nil)

	llmParser := parser.NewLLMParser(provider, cfg.Model.Name, cfg.Model.MaxTokens, cfg.Model.Temperature)
	srv := webhook.NewServer(llmParser, service)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := sched.Run(ctx); err != nil {
			log.Printf("[main] scheduler error: %v", err)
		}
	}()

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[main] shutdown error: %v", err)
		}
	}()

	log.Println("[main] 🚀 WhatsApp Reminder Agent starting...")
	log.Printf("[main] 📱 Twilio configured: %t", sender != nil)
	log.Printf("[main] Listening on %s", cfg.Server.Addr)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}

	log.Println("[main] Stopped.")
}
