package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"loyalty-server/internal/bootstrap"
	"loyalty-server/internal/config"
	"loyalty-server/internal/jobs"
	"loyalty-server/internal/jobs/workers"
	"loyalty-server/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Redis.Enabled {
		log.Fatal("the background worker needs REDIS_ENABLED=true")
	}

	logger.Info(ctx, "Starting background worker server...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	campaignWorker := workers.NewCampaignWorker(deps.Store, deps.Dispatcher, deps.Campaigns, logger)

	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			jobs.QueueHigh:    6,
			jobs.QueueDefault: 3,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error(observability.WithFields(ctx, observability.Field{Key: "task_type", Value: task.Type()}), "task failed", err)
		}),
		Logger: &asynqLogger{logger: logger},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCampaignDispatch, campaignWorker.ProcessDispatchTask)
	mux.HandleFunc(jobs.TypeCampaignPromote, campaignWorker.ProcessPromoteTask)

	// Periodic promotion sweep
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: &asynqLogger{logger: logger},
	})
	if cfg.Scheduler.PromotionInterval > 0 {
		promoteTask, err := jobs.NewCampaignPromoteTask(jobs.CampaignPromotePayload{Limit: 100})
		if err != nil {
			logger.Fatal(ctx, "failed to create promote task", err)
		}
		cronspec := fmt.Sprintf("@every %s", cfg.Scheduler.PromotionInterval)
		if _, err := scheduler.Register(cronspec, promoteTask); err != nil {
			logger.Fatal(ctx, "failed to register promotion sweep", err)
		}
	}
	if err := scheduler.Start(); err != nil {
		logger.Fatal(ctx, "failed to start scheduler", err)
	}
	defer scheduler.Shutdown()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))
		if err := srv.Run(mux); err != nil {
			logger.Fatal(ctx, "failed to run worker server", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(context.Background(), fmt.Sprint(args...), nil)
}
