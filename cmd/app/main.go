package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"telegram-gift-certificates/internal/application"
	"telegram-gift-certificates/internal/config"
	"telegram-gift-certificates/internal/dialog"
	tele "telegram-gift-certificates/internal/infra/adapters/telegram"
	pg "telegram-gift-certificates/internal/infra/db/postgres"
	"telegram-gift-certificates/internal/infra/i18n"
	"telegram-gift-certificates/internal/infra/logging"
	red "telegram-gift-certificates/internal/infra/redis"
	"telegram-gift-certificates/internal/infra/web"
	"telegram-gift-certificates/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "developer mode (console logs, noop sender)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("developer mode enabled")
	}

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connect failed")
	}
	defer redisClient.Close()

	rateLimiter := red.NewRateLimiter(redisClient)
	locker := red.NewLocker(redisClient)
	sessionRepo := red.NewSessionRepo(redisClient, cfg.Redis.SessionTTL)

	// ---- Repositories ----
	catalogRepo := pg.NewCatalogRepo(pool)
	orderRepo := pg.NewOrderRepo(pool)
	certRepo := pg.NewCertificateRepo(pool)
	faqRepo := pg.NewFAQRepo(pool)
	ticketRepo := pg.NewTicketRepo(pool)
	contentRepo := pg.NewContentRepo(pool)

	// ---- Use cases ----
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, catalogRepo, logger)
	certUC := usecase.NewCertificateUseCase(certRepo, catalogRepo, locker, logger)
	supportUC := usecase.NewSupportUseCase(ticketRepo, logger)
	faqUC := usecase.NewFAQUseCase(faqRepo)
	contentUC := usecase.NewContentUseCase(contentRepo)

	store := application.NewStorefront(catalogUC, orderUC, certUC, supportUC, faqUC, contentUC)

	// ---- Localization ----
	bundle, err := i18n.NewBundle()
	if err != nil {
		logger.Fatal().Err(err).Msg("locale load failed")
	}

	// ---- Telegram ----
	var sender dialog.Sender
	var adapter *tele.RealBotAdapter
	if cfg.Runtime.Dev {
		sender = tele.NewNoopBotAdapter(logger)
	} else {
		// The adapter needs the dispatcher and the dispatcher's machine
		// needs the sender, so the real adapter is built first and the
		// dispatcher attached below.
		adapter, err = tele.NewRealBotAdapter(cfg, nil, rateLimiter, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("telegram connect failed")
		}
		sender = adapter
	}

	machine := dialog.NewMachine(sender, store, bundle, logger)
	dispatcher := dialog.NewDispatcher(sessionRepo, machine, logger)

	if adapter != nil {
		adapter.AttachDispatcher(dispatcher)
		if strings.ToLower(cfg.Bot.Mode) != "" && strings.ToLower(cfg.Bot.Mode) != "polling" {
			logger.Warn().Str("mode", cfg.Bot.Mode).Msg("bot mode not implemented, falling back to polling")
		}
		go func() {
			if err := adapter.StartPolling(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msg("telegram polling stopped")
			}
		}()
	}

	// ---- HTTP ops surface ----
	auth := web.NewAuthManager(&cfg.Web, !cfg.Runtime.Dev)
	srv := web.NewServer(orderUC, supportUC, auth, cfg.Web.AdminSecret, logger)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Web.Port),
		Handler: srv.Router(),
	}
	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("http listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	if adapter != nil {
		adapter.StopPolling()
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
	cancel()
}
