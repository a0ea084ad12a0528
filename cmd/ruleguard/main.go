package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/RuleGuard/pkg/config"
	"github.com/NeuralTrust/RuleGuard/pkg/dependency_container"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/RuleGuard/pkg/infra/logger"
	_ "github.com/NeuralTrust/RuleGuard/pkg/infra/migrations"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/RuleGuard/pkg/server"
	"github.com/NeuralTrust/RuleGuard/pkg/server/router"
	"github.com/NeuralTrust/RuleGuard/pkg/version"
	"github.com/joho/godotenv"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	if err := config.Load(configPath()); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	switch command() {
	case "version":
		fmt.Println(version.GetInfo().String())
		return
	case "token":
		if err := printAdminToken(cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger, closeLogger, err := infraLogger.NewLogger(infraLogger.Options{
		Level:   cfg.Server.LogLevel,
		File:    cfg.Server.LogFile,
		Console: true,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogger()

	logger.WithField("version", version.GetInfo().Version).Info("starting ruleguard")

	var db *database.DB
	if cfg.Database.Enabled {
		db, err = database.NewDB(logger, &database.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			DBName:       cfg.Database.DBName,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		})
		if err != nil {
			logger.WithError(err).Fatal("failed to initialize database")
		}
		defer func() { _ = db.Close() }()
	}

	if cfg.Metrics.Enabled {
		prometheus.Initialize(prometheus.MetricsConfig{
			EnableLatency:  cfg.Metrics.EnableLatency,
			EnablePerRoute: cfg.Metrics.EnablePerRoute,
		})
	}

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize dependencies")
	}
	container.Start()
	defer container.Close()

	srv := server.NewAPIServer(server.APIServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewRuleGuardRouter(container.MiddlewareTransport, container.HandlerTransport, swaggerFile),
		},
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.WithError(err).Error("server failed")
		}
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("shutting down server")
		if err := srv.Shutdown(); err != nil {
			logger.WithError(err).Error("error shutting down server")
		}
	}
	logger.Info("server gracefully stopped")
}

// printAdminToken mints a bearer token for the admin routes.
func printAdminToken(cfg *config.Config) error {
	if cfg.Server.SecretKey == "" {
		return fmt.Errorf("server.secret_key must be set to issue admin tokens")
	}
	subject := "admin"
	if len(os.Args) > 2 {
		subject = os.Args[2]
	}
	token, err := jwt.NewJwtManager(cfg.Server.SecretKey, jwt.DefaultTokenTTL).CreateToken(subject)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	fmt.Println(token)
	return nil
}

func command() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "serve"
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "./config"
}
