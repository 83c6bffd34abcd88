package service

import (
	"context"
	"time"

	"covid19-tracker-service/internal/diseaseapi"

	"emperror.dev/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const responseCachePrefix = "covid19:response:"

// ResponseCache keeps upstream response bodies in redis for a short TTL so
// sessions and replicas share them. Redis errors degrade to cache misses.
type ResponseCache interface {
	diseaseapi.BodyCache
	Clear(ctx context.Context) (int, error)
}

type redisResponseCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisResponseCache(redisClient *redis.Client, ttl time.Duration) ResponseCache {
	return &redisResponseCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (r *redisResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := r.redisClient.Get(ctx, responseCachePrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).WithField("key", key).Warn("Failed reading response cache")
		}
		return nil, false
	}
	return body, true
}

func (r *redisResponseCache) Set(ctx context.Context, key string, body []byte) {
	if r.ttl <= 0 {
		return
	}
	if err := r.redisClient.Set(ctx, responseCachePrefix+key, body, r.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Failed writing response cache")
	}
}

// Clear removes every cached response and returns how many were dropped.
// Keys are collected before any are deleted so the scan cursor stays valid.
func (r *redisResponseCache) Clear(ctx context.Context) (int, error) {
	batchSize := 1000

	var keys []string
	iter := r.redisClient.Scan(ctx, 0, responseCachePrefix+"*", int64(batchSize)).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, errors.WrapIf(err, "failed to scan cached responses")
	}

	// Execute deletes in batches
	count := 0
	for start := 0; start < len(keys); start += batchSize {
		end := start + batchSize
		if end > len(keys) {
			end = len(keys)
		}

		pipeline := r.redisClient.Pipeline()
		for _, key := range keys[start:end] {
			pipeline.Del(ctx, key)
		}
		if _, err := pipeline.Exec(ctx); err != nil {
			return count, errors.WrapIf(err, "failed to execute pipeline")
		}
		count += end - start
	}

	logrus.Infof("Cleared %d cached responses", count)
	return count, nil
}
