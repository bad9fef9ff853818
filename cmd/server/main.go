package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/domain/repository"
	"guesthouse-ops-service/internal/infrastructure/config"
	"guesthouse-ops-service/internal/infrastructure/persistence"
	"guesthouse-ops-service/internal/infrastructure/router"
	"guesthouse-ops-service/internal/interface/httpapi"
	repo "guesthouse-ops-service/internal/interface/repository"
	"guesthouse-ops-service/internal/usecase"
	"guesthouse-ops-service/pkg/logger"
	"guesthouse-ops-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Guesthouse Ops Service", "version", cfg.AppVersion, "timezone", cfg.Timezone)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("guesthouse", prometheus.DefaultRegisterer)

	// Schedule feed
	var limiter *rate.Limiter
	if cfg.PMSRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.PMSRateLimit), cfg.PMSRateLimit)
	}
	pms := repo.NewPMSScheduleRepository(cfg.PMSBaseURL, cfg.PMSAccommoID, cfg.PMSTimeout, limiter, log)
	schedules := repo.NewCachedScheduleRepository(pms, cfg.CacheFresh, cfg.CacheRetain, log)

	// Send ledger
	var ledgerRepo repository.LedgerRepository
	switch cfg.LedgerBackend {
	case config.LedgerRedis:
		log.Info("Connecting to Redis", "addr", cfg.RedisAddr)
		redisClient, err := persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisClient.Close()
		ledgerRepo = repo.NewRedisLedgerRepository(redisClient, cfg.LedgerTTL)
	case config.LedgerMongo:
		log.Info("Connecting to MongoDB")
		mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword, cfg.MongoDB)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}()
		ledgerRepo = repo.NewMongoLedgerRepository(mongoDB, log)
	default:
		log.Warn("Using in-memory send ledger; sent rooms are lost on restart")
		ledgerRepo = repo.NewMemoryLedgerRepository()
	}

	// Room catalog and send audit log
	rooms := repo.NewStaticRoomRepository(entity.DefaultRooms())
	var sendLogs repository.SendLogRepository
	if cfg.PostgresURI != "" {
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		if err := repo.Migrate(ctx, gormDB, entity.DefaultRooms()); err != nil {
			log.Fatal("Failed to migrate PostgreSQL", "error", err)
		}
		rooms = repo.NewGormRoomRepository(gormDB)
		sendLogs = repo.NewGormSendLogRepository(gormDB)
	}

	// Notification senders
	senders := router.NewSenderRouter(log)
	solapi := repo.NewSolapiMessageRepository(cfg.SolapiURL, cfg.SolapiAPIKey, cfg.SolapiAPISecret, cfg.SendTimeout, log)
	senders.Register(usecase.NewSenderAdapter(solapi, "solapi", []string{usecase.ChannelSMS}))

	var handlerOpts []httpapi.Option
	if cfg.WebhookURL != "" {
		webhook := repo.NewWebhookMessageRepository(cfg.WebhookURL, cfg.WebhookAPIKey, cfg.SendTimeout, log)
		senders.Register(usecase.NewSenderAdapter(webhook, "webhook", []string{usecase.ChannelWebhook}))
		handlerOpts = append(handlerOpts, httpapi.WithPinger(webhook))
	}
	if senders.GetHandler(cfg.NotifyChannel) == nil {
		log.Warn("Notify channel has no sender; check-in sends will fail", "channel", cfg.NotifyChannel, "senders", senders.Len())
	}

	// Use cases
	clock := func() time.Time { return time.Now().In(cfg.Location) }
	reports := usecase.NewReportService(schedules, rooms, m, log)
	messenger := usecase.NewCheckInMessenger(
		schedules,
		rooms,
		usecase.NewSendLedger(ledgerRepo),
		senders,
		sendLogs,
		m,
		log,
		usecase.CheckInConfig{
			Channel:  cfg.NotifyChannel,
			From:     cfg.SolapiFrom,
			NotifyTo: cfg.NotifyTo,
			Contact:  cfg.CheckInContact,
		},
	)
	messages := usecase.NewMessageService(senders, cfg.NotifyChannel, log)
	refresher := usecase.NewFeedRefresher(schedules, reports, clock, log)

	// Start feed refresher in a goroutine
	if cfg.RefreshInterval > 0 {
		go refresher.Run(ctx, cfg.RefreshInterval)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	httpapi.NewHandler(reports, messenger, messages, refresher, cfg.Location, log, handlerOpts...).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	log.Info("Guesthouse Ops Service stopped")
}
