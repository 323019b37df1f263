package cron

import (
	"context"
	"log"
	"time"

	"lensbook/config"
	"lensbook/services/reminder"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderSweep = "reminder:sweep"

// InitReminderWorker runs the async worker and the periodic sweep scheduler
// in the background.
func InitReminderWorker(sweep *reminder.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSweep, handleSweepTask(sweep))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Enqueue the sweep on a fixed schedule.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, nil)
		task := asynq.NewTask(TypeReminderSweep, nil)
		if _, err := scheduler.Register(config.AppConfig.ReminderSweepInterval, task); err != nil {
			log.Fatalf("[ReminderWorker] failed to register sweep schedule: %v", err)
		}
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[ReminderWorker] sweep scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSweepTask(sweep *reminder.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		sent, err := sweep.ProcessReminders(ctx, config.AppConfig.ReminderHoursAhead)
		if err != nil {
			log.Printf("[ReminderSweep] sweep failed: %v", err)
			return err
		}
		log.Printf("[ReminderSweep] sent %d reminders", sent)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
