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

	"github.com/jmhart/voicetally/internal/common/clock"
	"github.com/jmhart/voicetally/internal/common/uuid"
	"github.com/jmhart/voicetally/internal/config"
	"github.com/jmhart/voicetally/internal/handlers/discord"
	"github.com/jmhart/voicetally/internal/repositories/session"
	"github.com/jmhart/voicetally/internal/scheduler"
	"github.com/jmhart/voicetally/internal/services/reporter"
	"github.com/jmhart/voicetally/internal/services/tracker"
)

func main() {
	// Local development convenience, a missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	systemClock := clock.New()

	// Initialize tracker service
	trackerSvc, err := tracker.New(&tracker.Config{
		SessionRepo: sessionRepo,
		Clock:       systemClock,
		UUID:        uuid.New(),
		Timezone:    cfg.Timezone,
	})
	if err != nil {
		log.Fatalf("Failed to create tracker service: %v", err)
	}

	// Initialize reporter service
	reporterSvc, err := reporter.New(&reporter.Config{
		Tracker: trackerSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create reporter service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:                    cfg.DiscordToken,
		ApplicationID:            cfg.ApplicationID,
		GuildID:                  cfg.GuildID,
		TrackedVoiceChannelID:    cfg.TrackedVoiceChannelID,
		ReportChannelID:          cfg.ReportChannelID,
		Timezone:                 cfg.Timezone,
		ReportNowCooldownSeconds: cfg.ReportNowCooldownSeconds,
		Tracker:                  trackerSvc,
		Reporter:                 reporterSvc,
		SessionRepo:              sessionRepo,
		Clock:                    systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Initialize the midnight scheduler
	sched, err := scheduler.New(&scheduler.Config{
		Clock:    systemClock,
		Timezone: cfg.Timezone,
		Callback: bot.OnMidnight,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()
	go sched.Run(schedCtx)

	log.Printf("Next daily report at %s", sched.NextWakeup().Format(time.RFC3339))

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	schedCancel()

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
