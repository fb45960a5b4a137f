package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/finwise/emi-engine/internal/config"
	"github.com/finwise/emi-engine/internal/service"
)

// The scheduler periodically flushes memoized loan summaries so that changes
// to business limits or engine behavior cannot keep serving stale entries
// past the flush horizon.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.RedisEnabled() {
		logger.Fatal("REDIS_HOST must be set for the cache flush scheduler")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	location, err := time.LoadLocation(cfg.Flush.Timezone)
	if err != nil {
		logger.Fatal("Invalid FLUSH_TIMEZONE", zap.Error(err))
	}

	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	_, err = c.AddFunc(cfg.Flush.CronSpec, func() {
		if err := flushSummaryCache(context.Background(), redisClient, logger); err != nil {
			logger.Error("Cache flush failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Fatal("Failed to schedule cache flush job", zap.Error(err))
	}

	c.Start()
	logger.Info("Cache flush scheduler started", zap.String("spec", cfg.Flush.CronSpec))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down scheduler...")
	c.Stop()
	logger.Info("Scheduler stopped")
}

func flushSummaryCache(ctx context.Context, client *redis.Client, logger *zap.Logger) error {
	var deleted int64

	iter := client.Scan(ctx, 0, service.CacheKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return err
	}

	logger.Info("Flushed summary cache", zap.Int64("deleted", deleted))
	return nil
}
