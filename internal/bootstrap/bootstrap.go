package bootstrap

import (
	"context"
	"fmt"

	analyticsHandler "loyalty-server/internal/analytics/handler"
	analyticsProcessor "loyalty-server/internal/analytics/processor"
	"loyalty-server/internal/api"
	authHandler "loyalty-server/internal/auth/handler"
	authProcessor "loyalty-server/internal/auth/processor"
	campaignHandler "loyalty-server/internal/campaign/handler"
	campaignProcessor "loyalty-server/internal/campaign/processor"
	kafkaClient "loyalty-server/internal/clients/kafka"
	redisClient "loyalty-server/internal/clients/redis"
	"loyalty-server/internal/config"
	"loyalty-server/internal/events"
	"loyalty-server/internal/jobs"
	ledgerHandler "loyalty-server/internal/ledger/handler"
	ledgerProcessor "loyalty-server/internal/ledger/processor"
	"loyalty-server/internal/notifications"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/ratelimit"
	redemptionHandler "loyalty-server/internal/redemption/handler"
	redemptionProcessor "loyalty-server/internal/redemption/processor"
	"loyalty-server/internal/retry"
	rewardsHandler "loyalty-server/internal/rewards/handler"
	rewardsProcessor "loyalty-server/internal/rewards/processor"
	"loyalty-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Storer
	Logger *observability.Logger

	// Processors
	Ledger     *ledgerProcessor.LedgerProcessor
	Rewards    *rewardsProcessor.RewardProcessor
	Redemption *redemptionProcessor.RedemptionProcessor
	Campaigns  *campaignProcessor.CampaignProcessor
	Analytics  *analyticsProcessor.AnalyticsProcessor
	Auth       *authProcessor.AuthProcessor

	// Notifications
	Queue      notifications.Queue
	Dispatcher *notifications.Dispatcher

	// Handlers
	Handlers api.Handlers

	// Clients (for cleanup)
	RedisClient           *redisClient.Client
	TransactionLog        *store.TransactionLogDB
	EventsProducer        *kafkaClient.Producer
	NotificationsProducer *kafkaClient.Producer
	JobClient             *jobs.Client
}

// Initialize sets up all application dependencies.
// Redis off selects the in-process store; Kafka and Postgres are used only when configured.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	if err := deps.initStore(ctx, cfg); err != nil {
		deps.Cleanup()
		return nil, err
	}

	policy := retry.Policy{Attempts: cfg.Ledger.ReadRetries, Backoff: cfg.Ledger.RetryBackoff}

	// Kafka producers
	var publisher *events.Publisher
	if cfg.Kafka.Enabled() {
		deps.EventsProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.EventsTopic,
		}, logger)
		publisher = events.NewPublisher(deps.EventsProducer, logger)
	}

	// Outbound notification queue
	if cfg.Dispatch.Queue == config.DispatchQueueKafka {
		deps.NotificationsProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.NotificationsTopic,
		}, logger)
		deps.Queue = notifications.NewKafkaQueue(deps.NotificationsProducer)
	} else {
		deps.Queue = notifications.NewStoreQueue(deps.Store)
	}
	deps.Dispatcher = notifications.NewDispatcher(deps.Store, deps.Queue, cfg.Dispatch.Concurrency, policy, logger)

	var trigger campaignProcessor.DispatchTrigger = deps.Dispatcher
	if cfg.Dispatch.Async {
		deps.JobClient = jobs.NewClient(cfg.Redis.Addr(), logger)
		trigger = deps.JobClient
	}

	// Processors
	ledgerProc := ledgerProcessor.New(deps.Store, publisher, policy, logger)
	rewardsProc := rewardsProcessor.New(deps.Store, policy, logger)
	redemptionProc := redemptionProcessor.New(deps.Store, publisher, policy, logger)
	campaignProc := campaignProcessor.New(deps.Store, trigger, publisher, policy, logger)
	analyticsProc := analyticsProcessor.New(deps.Store, policy, cfg.Ledger.ScanSubstringMatch, logger)
	authProc := authProcessor.New(cfg.Auth.JWTSecret, logger)

	deps.Ledger = &ledgerProc
	deps.Rewards = &rewardsProc
	deps.Redemption = &redemptionProc
	deps.Campaigns = &campaignProc
	deps.Analytics = &analyticsProc
	deps.Auth = &authProc

	var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter()
	if deps.RedisClient.IsEnabled() {
		limiter = ratelimit.NewRedisLimiter(deps.RedisClient.GetClient())
	}

	// Handlers
	deps.Handlers = api.Handlers{
		Auth:          authHandler.New(authProc, logger),
		Ledger:        ledgerHandler.New(ledgerProc, logger),
		Rewards:       rewardsHandler.New(rewardsProc, logger),
		Redemption:    redemptionHandler.New(redemptionProc, logger),
		Campaign:      campaignHandler.New(campaignProc, logger),
		Analytics:     analyticsHandler.New(analyticsProc, logger),
		Notifications: notifications.NewHandler(deps.Queue, logger),
		RateLimit:     ratelimit.NewService(limiter, cfg.RateLimit.RequestsPerMinute, logger),
	}

	return deps, nil
}

func (d *Dependencies) initStore(ctx context.Context, cfg *config.Config) error {
	var base store.Storer
	if cfg.Redis.Enabled {
		client, err := redisClient.NewClient(cfg.Redis, d.Logger)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		d.RedisClient = client
		base = store.NewRedisStore(client.GetClient(), cfg.Ledger.StoreTimeout)
	} else {
		d.Logger.Warn(ctx, "redis disabled, using the in-process store")
		base = store.NewMemoryStore()
	}

	if !cfg.Database.Enabled() {
		d.Store = base
		return nil
	}

	txLog, err := store.NewTransactionLogDB(cfg.Database.ConnectionString(), cfg.Ledger.StoreTimeout, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	d.TransactionLog = txLog
	if err := txLog.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare transaction log schema: %w", err)
	}
	d.Store = store.WithTransactionLog(base, txLog)
	return nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.JobClient != nil {
		d.JobClient.Close()
	}
	if d.EventsProducer != nil {
		d.EventsProducer.Close()
	}
	if d.NotificationsProducer != nil {
		d.NotificationsProducer.Close()
	}
	if d.TransactionLog != nil {
		d.TransactionLog.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
}
