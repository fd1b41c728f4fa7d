package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zippyy/deck-tracker-go/internal/config"
	"github.com/zippyy/deck-tracker-go/internal/events"
	"github.com/zippyy/deck-tracker-go/internal/hs"
	"github.com/zippyy/deck-tracker-go/internal/logreader"
	"github.com/zippyy/deck-tracker-go/internal/repository"
	"github.com/zippyy/deck-tracker-go/internal/server"
	"github.com/zippyy/deck-tracker-go/internal/session"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting deck tracker",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bus := events.NewBus()
	sink := events.NewPublisher(bus, logger)

	game := hs.NewGame()
	sess := session.New(ctx, game, sink, logger)

	if cfg.Database.Enabled {
		db, err := repository.NewDB(ctx, cfg.Database, logger)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		stats := db.Stats()
		logger.Info("database connection pool initialized",
			zap.Int32("total_conns", stats.TotalConns()),
			zap.Int32("idle_conns", stats.IdleConns()),
		)

		matchRepo := repository.NewMatchRepository(db)
		if err := matchRepo.EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to prepare schema", zap.Error(err))
		}
		repository.NewRecorder(bus, matchRepo, func() repository.Match {
			g := sess.Game()
			return repository.Match{
				ID:            sess.MatchID,
				PlayerName:    g.Player.Name,
				OpponentName:  g.Opponent.Name,
				PlayerClass:   g.Player.Class,
				OpponentClass: g.Opponent.Class,
			}
		}, logger)
		logger.Info("match recorder initialized")
	}

	if cfg.Server.WebSocket.Enabled {
		hub := server.NewHub(bus, logger)
		go func() {
			if wsErr := server.Start(ctx, cfg.Server.WebSocket, hub, logger); wsErr != nil {
				logger.Error("websocket server error", zap.Error(wsErr))
			}
		}()
	}

	watcher := logreader.NewPowerWatcher(cfg.Watcher.LogDirectory, cfg.Watcher.PollInterval, logger)
	lines, err := watcher.Watch(ctx)
	if err != nil {
		logger.Fatal("failed to start log watcher", zap.Error(err))
	}

	logger.Info("deck tracker initialized",
		zap.String("log_directory", cfg.Watcher.LogDirectory),
		zap.String("websocket_address", cfg.Server.WebSocket.Address),
	)

	for line := range lines {
		sess.HandleLine(line.Channel, line.Text)
	}

	logger.Info("deck tracker stopped")
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
