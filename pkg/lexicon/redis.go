package lexicon

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig describes how to reach a Redis server holding word sets.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL in the form "redis://:password@localhost:6379/0".
	Key            string        `env:"CAESAR_REDIS_KEY" envDefault:"lexicon:english"`   // Key of the Redis set with one member per word.
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// RedisClient is the subset of the go-redis client used by RedisSource.
type RedisClient interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// RedisSource loads words stored as members of a Redis set.
type RedisSource struct {
	client RedisClient
	key    string
}

// NewRedisSource returns a source reading the set stored at key.
func NewRedisSource(client RedisClient, key string) *RedisSource {
	return &RedisSource{client: client, key: key}
}

func (s *RedisSource) Name() string { return "redis:" + s.key }

// Load fetches every member of the set.
func (s *RedisSource) Load(ctx context.Context) (*Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	members, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Join(ErrLoadCancelled, err)
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	lex := New(members...)
	if lex.Len() == 0 {
		return nil, ErrEmptyLexicon
	}
	return lex, nil
}

// DialRedis connects to Redis, retrying up to cfg.RetryAttempts times.
func DialRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	attempts := max(cfg.RetryAttempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
