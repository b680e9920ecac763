package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/jmhart/voicetally/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	openSessionKeyPrefix = "open_session:"
	openSessionsSetKey   = "open_sessions"
	dailyTotalsKeyPrefix = "daily_totals:"
	metaKeyPrefix        = "meta:"
)

// ErrSessionNotFound is returned when a user has no open session
var ErrSessionNotFound = errors.New("open session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveOpenSession persists an open session to Redis
func (r *redisRepository) SaveOpenSession(ctx context.Context, input *SaveOpenSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session
	if sess.UserID == "" {
		return errors.New("session user ID cannot be empty")
	}

	// Marshal the session to JSON
	sessionJSON, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Save the session and track the user in the open-sessions set
	pipe := r.client.TxPipeline()
	sessionKey := fmt.Sprintf("%s%s", openSessionKeyPrefix, sess.UserID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)
	pipe.SAdd(ctx, openSessionsSetKey, sess.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save open session: %w", err)
	}

	return nil
}

// GetOpenSession retrieves a user's open session from Redis
func (r *redisRepository) GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", openSessionKeyPrefix, input.UserID)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// ListOpenSessions retrieves all open sessions from Redis
func (r *redisRepository) ListOpenSessions(ctx context.Context) (*ListOpenSessionsOutput, error) {
	userIDs, err := r.client.SMembers(ctx, openSessionsSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get open session user IDs: %w", err)
	}

	if len(userIDs) == 0 {
		return &ListOpenSessionsOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	// Fetch all session records in one round trip
	pipe := r.client.Pipeline()
	sessionCommands := make(map[string]*redis.StringCmd)

	for _, userID := range userIDs {
		sessionKey := fmt.Sprintf("%s%s", openSessionKeyPrefix, userID)
		sessionCommands[userID] = pipe.Get(ctx, sessionKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get open sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(userIDs))
	for userID, cmd := range sessionCommands {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Session was closed between listing the set and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get open session for %s: %w", userID, err)
		}

		var sess models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session for %s: %w", userID, err)
		}

		sessions = append(sessions, &sess)
	}

	return &ListOpenSessionsOutput{
		Sessions: sessions,
	}, nil
}

// DeleteOpenSession removes a user's open session from Redis
func (r *redisRepository) DeleteOpenSession(ctx context.Context, input *DeleteOpenSessionInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	sessionKey := fmt.Sprintf("%s%s", openSessionKeyPrefix, input.UserID)
	pipe.Del(ctx, sessionKey)
	pipe.SRem(ctx, openSessionsSetKey, input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete open session: %w", err)
	}

	return nil
}

// CloseSession atomically deletes a user's open session and folds the
// given slices into the daily totals. The whole write commits or none
// of it does, so a failure cannot strand a closed session with missing
// totals.
func (r *redisRepository) CloseSession(ctx context.Context, input *CloseSessionInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	sessionKey := fmt.Sprintf("%s%s", openSessionKeyPrefix, input.UserID)
	pipe.Del(ctx, sessionKey)
	pipe.SRem(ctx, openSessionsSetKey, input.UserID)

	for _, slice := range input.Slices {
		if slice.Seconds <= 0 {
			continue
		}
		totalsKey := fmt.Sprintf("%s%s", dailyTotalsKeyPrefix, slice.Day)
		pipe.HIncrBy(ctx, totalsKey, input.UserID, slice.Seconds)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	return nil
}

// AddDailySeconds adds seconds to a user's total for one local day
func (r *redisRepository) AddDailySeconds(ctx context.Context, input *AddDailySecondsInput) error {
	if input == nil || input.UserID == "" || input.Day == "" {
		return errors.New("input, user ID and day cannot be empty")
	}

	// Ignore empty or negative spans so callers can pass raw calculations safely
	if input.Seconds <= 0 {
		return nil
	}

	totalsKey := fmt.Sprintf("%s%s", dailyTotalsKeyPrefix, input.Day)
	if err := r.client.HIncrBy(ctx, totalsKey, input.UserID, input.Seconds).Err(); err != nil {
		return fmt.Errorf("failed to add daily seconds: %w", err)
	}

	return nil
}

// GetDailySeconds retrieves one user's total for one local day
func (r *redisRepository) GetDailySeconds(ctx context.Context, input *GetDailySecondsInput) (int64, error) {
	if input == nil || input.UserID == "" || input.Day == "" {
		return 0, errors.New("input, user ID and day cannot be empty")
	}

	totalsKey := fmt.Sprintf("%s%s", dailyTotalsKeyPrefix, input.Day)
	value, err := r.client.HGet(ctx, totalsKey, input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get daily seconds: %w", err)
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse daily seconds: %w", err)
	}

	return seconds, nil
}

// GetDailyTotals retrieves all totals for one local day
func (r *redisRepository) GetDailyTotals(ctx context.Context, input *GetDailyTotalsInput) (*GetDailyTotalsOutput, error) {
	if input == nil || input.Day == "" {
		return nil, errors.New("input and day cannot be empty")
	}

	totalsKey := fmt.Sprintf("%s%s", dailyTotalsKeyPrefix, input.Day)
	fields, err := r.client.HGetAll(ctx, totalsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get daily totals: %w", err)
	}

	totals := make([]*models.DailyTotal, 0, len(fields))
	for userID, value := range fields {
		seconds, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse daily total for %s: %w", userID, err)
		}

		totals = append(totals, &models.DailyTotal{
			Day:     input.Day,
			UserID:  userID,
			Seconds: seconds,
		})
	}

	// Seconds descending, then user ID ascending for a stable report order
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Seconds != totals[j].Seconds {
			return totals[i].Seconds > totals[j].Seconds
		}
		return totals[i].UserID < totals[j].UserID
	})

	return &GetDailyTotalsOutput{
		Totals: totals,
	}, nil
}

// GetMeta retrieves a marker value from Redis
func (r *redisRepository) GetMeta(ctx context.Context, input *GetMetaInput) (string, error) {
	if input == nil || input.Key == "" {
		return "", errors.New("input and key cannot be empty")
	}

	metaKey := fmt.Sprintf("%s%s", metaKeyPrefix, input.Key)
	value, err := r.client.Get(ctx, metaKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get meta %s: %w", input.Key, err)
	}

	return value, nil
}

// SetMeta stores a marker value in Redis
func (r *redisRepository) SetMeta(ctx context.Context, input *SetMetaInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	metaKey := fmt.Sprintf("%s%s", metaKeyPrefix, input.Key)
	if err := r.client.Set(ctx, metaKey, input.Value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set meta %s: %w", input.Key, err)
	}

	return nil
}
