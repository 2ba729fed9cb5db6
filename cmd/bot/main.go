package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gameday/internal/common/clock"
	"github.com/KirkDiggler/gameday/internal/common/firebase"
	"github.com/KirkDiggler/gameday/internal/common/uuid"
	"github.com/KirkDiggler/gameday/internal/config"
	"github.com/KirkDiggler/gameday/internal/drive"
	"github.com/KirkDiggler/gameday/internal/handlers/api"
	"github.com/KirkDiggler/gameday/internal/handlers/discord"
	"github.com/KirkDiggler/gameday/internal/log"
	"github.com/KirkDiggler/gameday/internal/metrics"
	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/pacing"
	gameDayRepo "github.com/KirkDiggler/gameday/internal/repositories/game_day"
	supporterRepo "github.com/KirkDiggler/gameday/internal/repositories/supporter"
	gameService "github.com/KirkDiggler/gameday/internal/services/game"
	messagingService "github.com/KirkDiggler/gameday/internal/services/messaging"
	supporterService "github.com/KirkDiggler/gameday/internal/services/supporter"
)

const shutdownTimeout = 10 * time.Second

// stores is the remote store pair selected by STORE_DRIVER
type stores struct {
	gameDay   gameDayRepo.Repository
	supporter supporterRepo.Repository
	close     func() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	if err := log.Init(cfg.Development); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	remote, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open stores", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() {
		if err := remote.close(); err != nil {
			log.Warn("Error closing store", zap.Error(err))
		}
	}()

	gameDayStore := remote.gameDay
	if cfg.LocalCachePath != "" {
		gameDayStore, err = withLocalCache(gameDayStore, cfg.LocalCachePath)
		if err != nil {
			log.Fatal("Failed to open local cache", zap.String("path", cfg.LocalCachePath), zap.Error(err))
		}
		log.Info("Local cache enabled", zap.String("path", cfg.LocalCachePath))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.New(registry)
	if err != nil {
		log.Fatal("Failed to register metrics", zap.Error(err))
	}

	pacingConfig := pacing.DefaultConfig()
	pacingConfig.StartHour = cfg.WindowStartHour
	pacingConfig.EndHour = cfg.WindowEndHour
	pacer, err := pacing.New(pacingConfig)
	if err != nil {
		log.Fatal("Failed to create pacing calculator", zap.Error(err))
	}

	machine, err := drive.New(nil)
	if err != nil {
		log.Fatal("Failed to create drive machine", zap.Error(err))
	}

	appClock := clock.New(cfg.Location)
	uuidGenerator := uuid.New()
	categories := models.DefaultCategories()

	gameSvc, err := gameService.New(&gameService.Config{
		Categories:    categories,
		Pacing:        pacer,
		Drive:         machine,
		Repository:    gameDayStore,
		Clock:         appClock,
		UUIDGenerator: uuidGenerator,
		Metrics:       recorder,
	})
	if err != nil {
		log.Fatal("Failed to create game service", zap.Error(err))
	}

	supporterSvc, err := supporterService.New(&supporterService.Config{
		Repository:    remote.supporter,
		Clock:         appClock,
		UUIDGenerator: uuidGenerator,
		Metrics:       recorder,
		PostInterval:  cfg.SupporterPostInterval,
		PostBurst:     cfg.SupporterPostBurst,
	})
	if err != nil {
		log.Fatal("Failed to create supporter service", zap.Error(err))
	}

	messagingSvc, err := messagingService.NewService(&messagingService.ServiceConfig{})
	if err != nil {
		log.Fatal("Failed to create messaging service", zap.Error(err))
	}

	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		command, err := discord.NewGamedayCommand(&discord.GamedayCommandConfig{
			GameService:      gameSvc,
			SupporterService: supporterSvc,
			MessagingService: messagingSvc,
			Categories:       categories,
			GoalBonusPoints:  machine.Rules().GoalBonusPoints,
			IsAdmin:          cfg.IsAdmin,
		})
		if err != nil {
			log.Fatal("Failed to create gameday command", zap.Error(err))
		}

		bot, err = discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.ApplicationID,
			GuildID:       cfg.GuildID,
			Commands:      []discord.CommandHandler{command},
		})
		if err != nil {
			log.Fatal("Failed to create Discord bot", zap.Error(err))
		}

		if err := bot.Start(); err != nil {
			log.Fatal("Failed to start Discord bot", zap.Error(err))
		}
	}

	var httpServer *http.Server
	if cfg.HTTPAddr != "" {
		server, err := api.New(&api.Config{
			GameService:       gameSvc,
			SupporterService:  supporterSvc,
			Clock:             appClock,
			Metrics:           recorder,
			MetricsHandler:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			AdminPasswordHash: cfg.AdminPasswordHash,
			AdminTokenSecret:  cfg.AdminTokenSecret,
			AdminTokenTTL:     cfg.AdminTokenTTL,
			AllowedOrigins:    cfg.AllowedOrigins,
		})
		if err != nil {
			log.Fatal("Failed to create API server", zap.Error(err))
		}

		httpServer = server.NewHTTPServer(cfg.HTTPAddr)
		go func() {
			log.Info("API listening", zap.String("addr", cfg.HTTPAddr))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("API server stopped", zap.Error(err))
				stop()
			}
		}()
	}

	log.Info("Game day is running",
		zap.String("store", cfg.StoreDriver),
		zap.String("time_zone", cfg.Location.String()),
		zap.Bool("discord", bot != nil),
		zap.Bool("api", httpServer != nil),
	)

	<-ctx.Done()
	log.Info("Shutting down")

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("Error stopping API server", zap.Error(err))
		}
		cancel()
	}

	if bot != nil {
		if err := bot.Stop(); err != nil {
			log.Warn("Error stopping bot", zap.Error(err))
		}
	}

	log.Info("Game day has been shut down")
}

// openStores connects the remote game day and supporter stores
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverFirestore:
		client, err := firebase.NewFirestore(ctx, &firebase.Config{
			ProjectID:       cfg.FirebaseProjectID,
			CredentialsJSON: cfg.FirebaseCredentialsJSON,
			CredentialsFile: cfg.FirebaseCredentialsFile,
		})
		if err != nil {
			return nil, err
		}

		gameDay, err := gameDayRepo.NewFirestore(&gameDayRepo.FirestoreConfig{Client: client})
		if err != nil {
			return nil, err
		}

		board, err := supporterRepo.NewFirestore(&supporterRepo.FirestoreConfig{Client: client})
		if err != nil {
			return nil, err
		}

		return &stores{gameDay: gameDay, supporter: board, close: client.Close}, nil

	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		gameDay, err := gameDayRepo.NewRedis(&gameDayRepo.Config{RedisClient: redisClient})
		if err != nil {
			_ = redisClient.Close()
			return nil, err
		}

		board, err := supporterRepo.NewRedis(&supporterRepo.Config{RedisClient: redisClient})
		if err != nil {
			_ = redisClient.Close()
			return nil, err
		}

		return &stores{gameDay: gameDay, supporter: board, close: redisClient.Close}, nil
	}
}

// withLocalCache writes through to a SQLite cache that serves reads when the remote store fails
func withLocalCache(primary gameDayRepo.Repository, path string) (gameDayRepo.Repository, error) {
	db, err := gameDayRepo.OpenSQLite(path)
	if err != nil {
		return nil, err
	}

	cache, err := gameDayRepo.NewSQLite(&gameDayRepo.SQLiteConfig{DB: db})
	if err != nil {
		return nil, fmt.Errorf("local cache: %w", err)
	}

	repo, err := gameDayRepo.NewFallback(&gameDayRepo.FallbackConfig{Primary: primary, Cache: cache})
	if err != nil {
		return nil, err
	}

	return repo, nil
}
