package dependency_container

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/config"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/vectorindex"
	handlers "github.com/NeuralTrust/RuleGuard/pkg/handlers/http"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/cache"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/database"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/embedding/factory"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/events"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/events/kafka"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/events/postgres"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/judge"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
	providersFactory "github.com/NeuralTrust/RuleGuard/pkg/infra/providers/factory"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/repository"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/vectorindex/memory"
	redisIndex "github.com/NeuralTrust/RuleGuard/pkg/infra/vectorindex/redis"
	"github.com/NeuralTrust/RuleGuard/pkg/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	BackendRedis  = "redis"
	BackendMemory = "memory"

	embeddingHTTPTimeout = 15 * time.Second
	indexCreateTimeout   = 10 * time.Second
)

type Container struct {
	RedisClient         *redis.Client
	RuleStore           rule.Store
	Judge               moderation.Judge
	Orchestrator        *moderation.Orchestrator
	ModerationService   moderation.Service
	EventsWorker        events.Worker
	JWTManager          jwt.Manager
	MiddlewareTransport *middleware.Transport
	HandlerTransport    *handlers.HandlerTransport

	eventWorkers int
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	// DB is optional; without it the postgres event exporter cannot be built.
	DB *database.DB
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	httpClient := httpx.NewFastHTTPClient(httpx.WithTimeout(embeddingHTTPTimeout))

	var redisClient *redis.Client
	if cfg.VectorIndex.Backend == BackendRedis {
		client, err := cache.NewRedisClient(cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		redisClient = client
	}

	// embeddings
	embedder, err := factory.NewServiceLocator(logger, httpClient).GetService(factory.Config{
		Provider:  cfg.Embedding.Provider,
		Model:     cfg.Embedding.Model,
		ApiKey:    cfg.Embedding.ApiKey,
		BaseURL:   cfg.Embedding.BaseURL,
		Dimension: cfg.Embedding.Dimension,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding provider: %w", err)
	}
	embedder = cache.NewEmbeddingCache(logger, embedder, redisClient, cfg.Embedding.Provider+"/"+cfg.Embedding.Model)

	// rule store
	index, err := newVectorIndex(cfg, logger, redisClient, embedder)
	if err != nil {
		return nil, err
	}
	ruleStore := repository.NewRuleRepository(logger, index)

	// events
	publisher, workers, err := newEventsWorker(cfg, logger, di.DB)
	if err != nil {
		return nil, err
	}

	// judge
	ruleJudge, err := judge.NewProviderJudge(logger, providersFactory.NewProviderLocator(), judge.Config{
		Provider:           cfg.Judge.Provider,
		Model:              cfg.Judge.Model,
		MaxTokens:          cfg.Judge.MaxTokens,
		Temperature:        cfg.Judge.Temperature,
		Credentials:        judgeCredentials(cfg.Judge),
		Options:            cfg.Judge.Options,
		BreakerTimeout:     cfg.Judge.BreakerTimeout,
		BreakerMaxFailures: cfg.Judge.BreakerMaxFailures,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize judge: %w", err)
	}

	orchestrator := moderation.NewOrchestrator(logger, ruleStore, ruleJudge, publisher, cfg.Moderation.TopK)
	moderationService := moderation.NewService(logger, ruleStore, orchestrator, publisher)

	jwtManager := jwt.NewJwtManager(cfg.Server.SecretKey, jwt.DefaultTokenTTL)

	middlewareTransport := &middleware.Transport{
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware: middleware.NewCORSGlobalMiddleware(
			cfg.Cors.AllowOrigins,
			cfg.Cors.AllowMethods,
			cfg.Cors.AllowHeaders,
		),
		AuthMiddleware: middleware.NewAuthMiddleware(logger, cfg.Auth.Scopes()),
	}
	if cfg.Metrics.Enabled {
		middlewareTransport.MetricsMiddleware = middleware.NewMetricsMiddleware(prometheus.MetricsConfig{
			EnableLatency:  cfg.Metrics.EnableLatency,
			EnablePerRoute: cfg.Metrics.EnablePerRoute,
		})
	}
	if cfg.Server.SecretKey != "" {
		middlewareTransport.AdminAuthMiddleware = middleware.NewAdminAuthMiddleware(logger, jwtManager)
	} else {
		logger.Warn("server secret key is empty, admin routes are disabled")
	}

	handlerTransport := &handlers.HandlerTransport{
		StatusHandler:         handlers.NewStatusHandler(),
		HealthHandler:         handlers.NewHealthHandler(),
		GetVersionHandler:     handlers.NewGetVersionHandler(),
		AddRuleHandler:        handlers.NewAddRuleHandler(logger, moderationService),
		UpdateRuleHandler:     handlers.NewUpdateRuleHandler(logger, moderationService),
		DeleteRuleHandler:     handlers.NewDeleteRuleHandler(logger, moderationService),
		ListRulesHandler:      handlers.NewListRulesHandler(logger, moderationService),
		ModerateHandler:       handlers.NewModerateHandler(logger, moderationService, cfg.Moderation.JudgeTimeout),
		ListScopeRulesHandler: handlers.NewListScopeRulesHandler(logger, moderationService),
	}

	return &Container{
		RedisClient:         redisClient,
		RuleStore:           ruleStore,
		Judge:               ruleJudge,
		Orchestrator:        orchestrator,
		ModerationService:   moderationService,
		EventsWorker:        publisher,
		JWTManager:          jwtManager,
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		eventWorkers:        workers,
	}, nil
}

// Start launches background workers.
func (c *Container) Start() {
	c.EventsWorker.StartWorkers(c.eventWorkers)
}

// Close drains pending events and releases connections.
func (c *Container) Close() {
	c.EventsWorker.Shutdown()
	if c.RedisClient != nil {
		_ = c.RedisClient.Close()
	}
}

func newVectorIndex(
	cfg *config.Config,
	logger *logrus.Logger,
	client *redis.Client,
	embedder embedding.Creator,
) (vectorindex.Index, error) {
	switch cfg.VectorIndex.Backend {
	case BackendMemory:
		logger.Warn("using in-memory vector index, rules are lost on restart")
		return memory.NewIndex(logger, embedder), nil
	case BackendRedis:
		indexCfg := redisIndex.Config{
			IndexName: cfg.VectorIndex.IndexName,
			Dimension: cfg.Embedding.Dimension,
			ListLimit: cfg.VectorIndex.ListLimit,
			Recreate:  cfg.VectorIndex.Recreate,
		}
		ctx, cancel := context.WithTimeout(context.Background(), indexCreateTimeout)
		defer cancel()
		if err := redisIndex.NewIndexCreator(client, logger).CreateIndex(ctx, indexCfg); err != nil {
			return nil, fmt.Errorf("failed to create vector index: %w", err)
		}
		return redisIndex.NewIndex(client, logger, embedder, indexCfg), nil
	default:
		return nil, fmt.Errorf("unsupported vector index backend: %s", cfg.VectorIndex.Backend)
	}
}

func newEventsWorker(cfg *config.Config, logger *logrus.Logger, db *database.DB) (events.Worker, int, error) {
	if !cfg.Events.Enabled {
		return events.NewWorker(logger, nil, cfg.Events.BufferSize), 0, nil
	}

	var gormDB *gorm.DB
	if db != nil {
		gormDB = db.DB
	}
	locator := events.NewExporterLocator(
		events.WithFactory(kafka.NewKafkaExporter()),
		events.WithFactory(postgres.NewPostgresExporter(gormDB)),
	)
	exporters, err := locator.Build(cfg.Events.Exporters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to initialize event exporters: %w", err)
	}
	logger.WithField("exporters", len(exporters)).Info("moderation events enabled")
	return events.NewWorker(logger, exporters, cfg.Events.BufferSize), cfg.Events.Workers, nil
}

func judgeCredentials(cfg config.JudgeConfig) providers.Credentials {
	creds := providers.Credentials{ApiKey: cfg.ApiKey}
	if cfg.Azure.Endpoint != "" || cfg.Azure.UseIdentity {
		creds.Azure = &providers.AzureCredentials{
			Endpoint:    cfg.Azure.Endpoint,
			ApiVersion:  cfg.Azure.ApiVersion,
			UseIdentity: cfg.Azure.UseIdentity,
		}
	}
	if cfg.Bedrock.Region != "" || cfg.Bedrock.UseRole {
		creds.AwsBedrock = &providers.AwsBedrockCredentials{
			AccessKey:    cfg.Bedrock.AccessKey,
			SecretKey:    cfg.Bedrock.SecretKey,
			SessionToken: cfg.Bedrock.SessionToken,
			Region:       cfg.Bedrock.Region,
			UseRole:      cfg.Bedrock.UseRole,
			RoleARN:      cfg.Bedrock.RoleARN,
		}
	}
	return creds
}
