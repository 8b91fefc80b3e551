/*
 * Copyright (c) 2025, CampusHQ LLC. (https://campushq.io).
 *
 * CampusHQ LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campushq/campus/internal/system/config"
)

// RemoteStoreInterface defines the operations of the remote cache store adapter.
//
// Implementations report failures through the error kinds defined in this
// package; they never panic and never block longer than the configured
// operation timeout.
type RemoteStoreInterface interface {
	// IsAvailable reports whether the store is configured for use.
	IsAvailable() bool
	// TestConnection performs a live round trip and returns its latency.
	TestConnection(ctx context.Context) (time.Duration, error)
	// Get returns the value for the key and whether it was found.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores the value under the key with the given TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
	// DeleteByPattern removes all keys matching a trailing wildcard pattern
	// and returns the number of keys removed.
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
}

// redisStore is the Redis backed implementation of RemoteStoreInterface.
type redisStore struct {
	client    *redis.Client
	keyPrefix string
	opTimeout time.Duration
}

// NewRedisStore creates a remote store adapter from the given configuration.
// When the store is disabled or has no address, the adapter is created in an
// unavailable state and every operation reports ErrRemoteUnavailable.
func NewRedisStore(cfg config.RedisConfig) RemoteStoreInterface {
	store := &redisStore{
		keyPrefix: cfg.KeyPrefix,
		opTimeout: time.Duration(cfg.OperationTimeout) * time.Second,
	}
	if store.keyPrefix == "" {
		store.keyPrefix = defaultKeyPrefix
	}
	if store.opTimeout <= 0 {
		store.opTimeout = defaultOperationTimeout
	}

	if !cfg.Enabled || cfg.Address == "" {
		return store
	}

	opts := &redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	store.client = redis.NewClient(opts)
	return store
}

// newRedisStoreWithClient wraps an existing client. Used by tests.
func newRedisStoreWithClient(client *redis.Client, keyPrefix string, opTimeout time.Duration) RemoteStoreInterface {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	if opTimeout <= 0 {
		opTimeout = defaultOperationTimeout
	}
	return &redisStore{
		client:    client,
		keyPrefix: keyPrefix,
		opTimeout: opTimeout,
	}
}

// IsAvailable reports whether the store is configured for use.
func (rs *redisStore) IsAvailable() bool {
	return rs.client != nil
}

// TestConnection pings the remote store and returns the round trip latency.
func (rs *redisStore) TestConnection(ctx context.Context) (time.Duration, error) {
	if rs.client == nil {
		return 0, ErrRemoteUnavailable
	}

	opCtx, cancel := rs.operationContext(ctx)
	defer cancel()

	start := time.Now()
	if err := rs.client.Ping(opCtx).Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	return time.Since(start), nil
}

// Get returns the value for the key and whether it was found.
func (rs *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if rs.client == nil {
		return "", false, ErrRemoteUnavailable
	}

	opCtx, cancel := rs.operationContext(ctx)
	defer cancel()

	value, err := rs.client.Get(opCtx, rs.prefixed(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrRemoteReadFailed, err)
	}
	return value, true, nil
}

// Set stores the value under the key with the given TTL.
func (rs *redisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if rs.client == nil {
		return ErrRemoteUnavailable
	}

	opCtx, cancel := rs.operationContext(ctx)
	defer cancel()

	if err := rs.client.Set(opCtx, rs.prefixed(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteWriteFailed, err)
	}
	return nil
}

// Delete removes the key.
func (rs *redisStore) Delete(ctx context.Context, key string) error {
	if rs.client == nil {
		return ErrRemoteUnavailable
	}

	opCtx, cancel := rs.operationContext(ctx)
	defer cancel()

	if err := rs.client.Del(opCtx, rs.prefixed(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteWriteFailed, err)
	}
	return nil
}

// DeleteByPattern enumerates keys matching the pattern with SCAN and removes
// them. Only a single trailing wildcard is supported; any other wildcard
// placement is rejected with ErrInvalidPattern.
func (rs *redisStore) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	if rs.client == nil {
		return 0, ErrRemoteUnavailable
	}
	if err := validatePattern(pattern); err != nil {
		return 0, err
	}

	opCtx, cancel := rs.operationContext(ctx)
	defer cancel()

	keys := make([]string, 0)
	iter := rs.client.Scan(opCtx, 0, rs.prefixed(pattern), scanBatchSize).Iterator()
	for iter.Next(opCtx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPatternEnumerationFailed, err)
	}

	if len(keys) == 0 {
		return 0, nil
	}

	deleted, err := rs.client.Del(opCtx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPatternEnumerationFailed, err)
	}
	return int(deleted), nil
}

// operationContext derives a per operation timeout context.
func (rs *redisStore) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, rs.opTimeout)
}

// prefixed maps a logical key into the application namespace.
func (rs *redisStore) prefixed(key string) string {
	return rs.keyPrefix + ":" + key
}

// validatePattern ensures the pattern carries exactly one wildcard, at the end.
func validatePattern(pattern string) error {
	if pattern == "" {
		return ErrInvalidPattern
	}
	if !strings.HasSuffix(pattern, "*") {
		return ErrInvalidPattern
	}
	if strings.Count(pattern, "*") != 1 {
		return ErrInvalidPattern
	}
	return nil
}
