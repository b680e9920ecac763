package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the bot needs from the environment
type Config struct {
	// DiscordToken authenticates the gateway connection
	DiscordToken string

	// ApplicationID is the bot's application ID; falls back to the
	// session user ID when empty
	ApplicationID string

	// GuildID is the single guild the bot operates in
	GuildID string

	// TrackedVoiceChannelID is the voice channel presence is tracked for
	TrackedVoiceChannelID string

	// ReportChannelID is the text channel daily reports are posted to
	ReportChannelID string

	// TimezoneName is the configured IANA timezone identifier
	TimezoneName string

	// Timezone is the loaded location local days are computed in
	Timezone *time.Location

	// ReportNowCooldownSeconds is the global /report-now cooldown
	ReportNowCooldownSeconds int64

	// RedisAddr is the session store address
	RedisAddr string

	// RedisPassword is the session store password, empty for none
	RedisPassword string
}

// Load reads and validates the configuration from the environment
func Load() (*Config, error) {
	token, err := requiredEnv("DISCORD_TOKEN")
	if err != nil {
		return nil, err
	}

	guildID, err := requiredEnv("GUILD_ID")
	if err != nil {
		return nil, err
	}

	trackedChannelID, err := requiredEnv("TRACKED_VOICE_CHANNEL_ID")
	if err != nil {
		return nil, err
	}

	reportChannelID, err := requiredEnv("REPORT_CHANNEL_ID")
	if err != nil {
		return nil, err
	}

	tzName, err := requiredEnv("TIMEZONE")
	if err != nil {
		return nil, err
	}

	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone in TIMEZONE: %q", tzName)
	}

	cooldownRaw := getEnv("REPORT_NOW_COOLDOWN_SECONDS", "3600")
	cooldown, err := strconv.ParseInt(cooldownRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("REPORT_NOW_COOLDOWN_SECONDS must be an integer, got %q", cooldownRaw)
	}
	if cooldown <= 0 {
		return nil, fmt.Errorf("REPORT_NOW_COOLDOWN_SECONDS must be positive, got %d", cooldown)
	}

	return &Config{
		DiscordToken:             token,
		ApplicationID:            os.Getenv("APPLICATION_ID"),
		GuildID:                  guildID,
		TrackedVoiceChannelID:    trackedChannelID,
		ReportChannelID:          reportChannelID,
		TimezoneName:             tzName,
		Timezone:                 tz,
		ReportNowCooldownSeconds: cooldown,
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:            os.Getenv("REDIS_PASSWORD"),
	}, nil
}

// requiredEnv returns the value of a required environment variable
func requiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("missing required environment variable: %s", key)
	}
	return value, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
