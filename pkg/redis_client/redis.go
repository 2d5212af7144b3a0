package redis_client

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/journeyplanner/pkg/config"
)

const connectAttempts = 10
const connectInterval = 2 * time.Second

// Connect opens a client for cfg and waits for Redis to answer a PING, retrying while
// it starts up. The caller owns the returned client.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	options := &redis.Options{
		Addr: cfg.Address,
		DB:   cfg.Database,
	}
	if cfg.Password != "" {
		options.Password = cfg.Password
	}

	client := redis.NewClient(options)

	if err := waitForReady(ctx, client, backoff.NewConstantBackOff(connectInterval)); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

func waitForReady(ctx context.Context, client *redis.Client, policy backoff.BackOff) error {
	attempt := 0

	ping := func() error {
		attempt++
		err := client.Ping(ctx).Err()
		if err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Str("address", client.Options().Addr).
				Msg("Waiting for Redis to be ready")
		}
		return err
	}

	retryPolicy := backoff.WithContext(backoff.WithMaxRetries(policy, connectAttempts-1), ctx)
	if err := backoff.Retry(ping, retryPolicy); err != nil {
		return errors.Wrapf(err, "redis at %s did not become ready", client.Options().Addr)
	}

	log.Info().Str("address", client.Options().Addr).Msg("Connected to Redis")

	return nil
}
