package database

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisHelper stays nil when no redis URL is configured; callers fall
// back to the in-process cache.
var RedisHelper *redisUtil

type redisUtil struct {
	client *redis.Client
	ctx    context.Context
}

func InitRedis(url string) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal().Msgf("Invalid Redis URL: %v", err)
	}

	if opts.TLSConfig == nil {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	redisClient := redis.NewClient(opts)
	ctx := context.Background()

	_, err = redisClient.Ping(ctx).Result()
	if err != nil {
		log.Fatal().Msgf("Could not connect to Redis: %v", err)
	}

	log.Info().Msg("Connected to Redis")

	RedisHelper = &redisUtil{
		client: redisClient,
		ctx:    ctx,
	}
}

func (r *redisUtil) Set(key string, value interface{}, expiration time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	err = r.client.Set(r.ctx, key, payload, expiration).Err()
	if err != nil {
		log.Warn().Msgf("Redis SET error [%s]: %v", key, err)
	}
	return err
}

// GetAsStruct unmarshals a cached JSON value into target. The bool
// reports a hit; a missing key is not an error.
func (r *redisUtil) GetAsStruct(key string, target interface{}) (bool, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		log.Warn().Msgf("Redis GET error [%s]: %v", key, err)
		return false, err
	}
	if err := json.Unmarshal([]byte(val), target); err != nil {
		return false, err
	}
	return true, nil
}
