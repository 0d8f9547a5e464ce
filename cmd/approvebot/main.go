package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/ericfisherdev/approvebot/internal/adapter/driven/github"
	slackadapter "github.com/ericfisherdev/approvebot/internal/adapter/driven/slack"
	sqliteadapter "github.com/ericfisherdev/approvebot/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/approvebot/internal/adapter/driving/http"
	"github.com/ericfisherdev/approvebot/internal/application"
	"github.com/ericfisherdev/approvebot/internal/config"
	"github.com/ericfisherdev/approvebot/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"rules_path", cfg.RulesPath,
		"db_path", cfg.DBPath,
		"notifications", cfg.SlackWebhookURL != "",
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Resolve the acting identity; failure here is startup-fatal.
	ghClient := githubadapter.NewClient(cfg.GitHubToken)
	identity, err := ghClient.ResolveIdentity(ctx)
	if err != nil {
		return err
	}
	slog.Info("acting identity resolved", "identity", identity)

	// 4. Load and validate the trigger rules.
	rules, err := config.LoadRules(cfg.RulesPath, identity)
	if err != nil {
		return err
	}
	slog.Info("rules loaded",
		"trigger_phrases", len(rules.TriggerPhrases),
		"quick_trigger_phrases", len(rules.QuickTriggerPhrases),
		"approval_messages", len(rules.ApprovalMessages),
		"delay_min_seconds", rules.DelayBounds.MinSeconds,
		"delay_max_seconds", rules.DelayBounds.MaxSeconds,
	)

	evaluator, err := application.NewEvaluator(rules)
	if err != nil {
		return err
	}

	// 5. Open the audit-log database and run migrations.
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	if err := db.Migrate(); err != nil {
		return err
	}
	slog.Info("audit database ready", "path", cfg.DBPath)

	// 6. Wire the notifier (nil when no channel is configured).
	var notifier driven.Notifier
	if cfg.SlackWebhookURL != "" {
		notifier = slackadapter.NewSender(cfg.SlackWebhookURL)
	} else {
		slog.Info("no notification channel configured, outcome reports will be logged only")
	}

	// 7. Create the approval service and HTTP surface.
	outcomes := sqliteadapter.NewApprovalRepo(db)
	svc := application.NewApprovalService(
		rules,
		evaluator,
		application.SystemRand(),
		ghClient,
		notifier,
		outcomes,
		slog.Default(),
	)

	handler := httphandler.NewHandler(svc, outcomes, identity, cfg.WebhookSecret, slog.Default())
	mux := httphandler.NewServeMux(handler, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("approvebot started", "identity", identity, "listen_addr", cfg.ListenAddr)

	// 8. Wait for shutdown signal. Deferred approvals whose timers have not
	// fired yet are abandoned here; this is a best-effort automation, not a
	// durable job system.
	<-ctx.Done()
	slog.Info("shutting down, pending delayed approvals are abandoned")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
