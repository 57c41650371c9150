package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tlowery/flint/internal/models"
)

const (
	// Key prefix for Redis
	userKeyPrefix = "user:"

	// Hash fields
	experienceField = "experience"
	coinsField      = "coins"
)

// debitScript atomically checks the balance and decrements it, so two
// concurrent purchases can never both succeed on one balance.
var debitScript = redis.NewScript(`
local coins = tonumber(redis.call('HGET', KEYS[1], 'coins') or '0')
local amount = tonumber(ARGV[1])
if coins < amount then
	return -1
end
return redis.call('HINCRBY', KEYS[1], 'coins', -amount)
`)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
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

// Touch credits one experience point and one coin, creating the record if needed
func (r *redisRepository) Touch(ctx context.Context, input *TouchInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf("%s%s", userKeyPrefix, input.UserID)

	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, userKey, experienceField, 1)
	pipe.HIncrBy(ctx, userKey, coinsField, 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to touch user: %w", err)
	}

	return nil
}

// GetUser retrieves a user's record
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf("%s%s", userKeyPrefix, input.UserID)

	fields, err := r.client.HGetAll(ctx, userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrUserNotFound
	}

	user := &models.User{ID: input.UserID}
	if _, err := fmt.Sscanf(fields[experienceField], "%d", &user.Experience); err != nil {
		return nil, fmt.Errorf("failed to parse experience: %w", err)
	}
	if _, err := fmt.Sscanf(fields[coinsField], "%d", &user.Coins); err != nil {
		return nil, fmt.Errorf("failed to parse coins: %w", err)
	}

	return user, nil
}

// Debit removes coins from a user's balance
func (r *redisRepository) Debit(ctx context.Context, input *DebitInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if input.Amount < 0 {
		return errors.New("amount cannot be negative")
	}

	userKey := fmt.Sprintf("%s%s", userKeyPrefix, input.UserID)

	remaining, err := debitScript.Run(ctx, r.client, []string{userKey}, input.Amount).Int()
	if err != nil {
		return fmt.Errorf("failed to debit user: %w", err)
	}

	if remaining < 0 {
		return ErrInsufficientFunds
	}

	return nil
}
