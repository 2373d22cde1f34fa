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

	"github.com/DevanshuTiwaskar/portfolio/internal/config"
	"github.com/DevanshuTiwaskar/portfolio/internal/handler"
	"github.com/DevanshuTiwaskar/portfolio/internal/logging"
	"github.com/DevanshuTiwaskar/portfolio/internal/mailer"
	"github.com/DevanshuTiwaskar/portfolio/internal/repository"
	"github.com/DevanshuTiwaskar/portfolio/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load configuration", "error", err)
	}

	logCloser := logging.Setup(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logCloser.Close()

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	store := openStore(cfg.DB)
	defer store.Close()

	// 未設定の場合はログ出力のみの送信者に切り替える
	sender := mailer.New(cfg.Mail.ResendAPIKey)
	from := mailer.FromAddress(cfg.Mail.From, cfg.Mail.AdminEmail)

	contactService := service.NewContactService(store, sender, service.ContactOptions{
		AdminEmail:     cfg.Mail.AdminEmail,
		From:           from,
		Policy:         cfg.Mail.Policy,
		PersistTimeout: cfg.DB.Timeout,
		EmailTimeout:   cfg.Mail.Timeout,
	})

	h := handler.New(store, handler.OriginPolicy{
		Allowed:  cfg.Server.AllowedOrigins,
		Suffixes: cfg.Server.AllowedOriginSuffixes,
	})
	router := handler.NewRouter(h,
		handler.NewContactHandler(contactService),
		handler.NewMailHandler(sender, cfg.Mail.AdminEmail, from),
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// a submission may wait on the store and then on the email provider
		WriteTimeout: cfg.DB.Timeout + cfg.Mail.Timeout + 5*time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "notify_policy", cfg.Mail.Policy)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// openStore connects to the configured database. A missing or unreachable
// database never stops the server: requests fail at call time instead.
func openStore(cfg config.DBConfig) repository.Store {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repository.Open(ctx, cfg.URL)
	if err != nil {
		slog.Warn("invalid database configuration, contact messages cannot be stored", "error", err)
		return repository.UnconfiguredStore{}
	}
	if cfg.URL == "" {
		return store
	}
	if err := store.Ping(ctx); err != nil {
		slog.Warn("database unreachable at startup", "error", err)
		return store
	}
	if !cfg.AutoMigrate {
		return store
	}

	n, err := store.Migrate(ctx)
	if err != nil {
		slog.Warn("database migration failed", "error", err)
	} else {
		slog.Info("database ready", "migrations_applied", n)
	}
	return store
}
