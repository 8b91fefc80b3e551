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

// Package cache provides the fail open read-through cache used by the domain services.
//
// The facade never surfaces an internal failure to a caller: read errors
// collapse to misses, write and invalidation errors collapse to logged no-ops.
// Callers cannot distinguish a missing key from an unavailable remote store
// through the return values; that distinction is available only through the
// stats and status surfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/campushq/campus/internal/system/config"
	"github.com/campushq/campus/internal/system/log"
)

const loggerComponentName = "CacheService"

// CacheServiceInterface defines the public cache facade.
type CacheServiceInterface interface {
	// GetCache returns the cached JSON value for the key, or (nil, false) on
	// a miss or any internal failure.
	GetCache(ctx context.Context, key string) (json.RawMessage, bool)
	// SetCache stores the value under the key. A non positive TTL selects the
	// default TTL. Failures are swallowed.
	SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration)
	// InvalidateCache removes a single key. Failures are swallowed.
	InvalidateCache(ctx context.Context, key string)
	// InvalidateCachePattern removes all keys matching a trailing wildcard
	// pattern. Failures are swallowed.
	InvalidateCachePattern(ctx context.Context, pattern string)
	// ClearCache removes every key in the application namespace and resets
	// the operation counters.
	ClearCache(ctx context.Context)
	// GetCacheStats returns the aggregate operation counters.
	GetCacheStats() Stats
	// GetCacheOperations returns up to limit recent operations, newest first.
	// A non positive limit returns the whole retained window.
	GetCacheOperations(limit int) []OperationRecord
	// GetDebugLogs returns the retained diagnostic lines, oldest first.
	GetDebugLogs() []string
	// IsAvailable reports whether the remote store is configured.
	IsAvailable() bool
	// TestConnection performs a live remote round trip and returns its latency.
	TestConnection(ctx context.Context) (time.Duration, error)
}

// cacheService is the default implementation of CacheServiceInterface.
type cacheService struct {
	store      RemoteStoreInterface
	opLog      *operationLog
	debugLog   *debugLog
	defaultTTL time.Duration
}

var (
	serviceInstance CacheServiceInterface
	serviceOnce     sync.Once
)

// GetCacheService returns the process wide cache service, wiring the remote
// store adapter from the runtime configuration on first use.
func GetCacheService() CacheServiceInterface {
	serviceOnce.Do(func() {
		cacheConfig := config.GetCampusRuntime().Config.Cache
		serviceInstance = NewCacheService(NewRedisStore(cacheConfig.Redis), cacheConfig)
	})
	return serviceInstance
}

// ResetCacheService resets the process wide cache service.
// This should only be used in tests to reset the singleton state.
func ResetCacheService() {
	serviceInstance = nil
	serviceOnce = sync.Once{}
}

// NewCacheService creates a cache service backed by the given remote store.
// The store is an explicit dependency so callers can construct isolated
// instances with their own adapters.
func NewCacheService(store RemoteStoreInterface, cacheConfig config.CacheConfig) CacheServiceInterface {
	defaultTTL := time.Duration(cacheConfig.DefaultTTL) * time.Second
	if defaultTTL <= 0 {
		defaultTTL = defaultCacheTTL
	}

	cs := &cacheService{
		store:      store,
		opLog:      newOperationLog(cacheConfig.OperationLogSize),
		debugLog:   newDebugLog(cacheConfig.DebugLogSize),
		defaultTTL: defaultTTL,
	}

	if store == nil || !store.IsAvailable() {
		cs.debugLog.addf("remote store not configured; cache operating in pass-through mode")
	}
	return cs
}

// GetCache returns the cached JSON value for the key.
func (cs *cacheService) GetCache(ctx context.Context, key string) (json.RawMessage, bool) {
	start := time.Now()

	value, found, err := cs.store.Get(ctx, key)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		// An unavailable remote store is not an error condition: the read
		// short-circuits to a plain miss and only the debug trail notes it.
		if errors.Is(err, ErrRemoteUnavailable) {
			cs.opLog.record(cs.newRecord(key, ResultMiss, duration))
		} else {
			cs.recordError(key, duration)
		}
		cs.logSwallowedError("GET", key, err)
		return nil, false
	}

	if !found {
		cs.opLog.record(cs.newRecord(key, ResultMiss, duration))
		return nil, false
	}

	if !json.Valid([]byte(value)) {
		cs.recordError(key, duration)
		cs.debugLog.addf("GET %s returned a corrupt entry; invalidating", key)
		if delErr := cs.store.Delete(ctx, key); delErr != nil {
			cs.logSwallowedError("DELETE", key, delErr)
		}
		return nil, false
	}

	cs.opLog.record(cs.newRecord(key, ResultHit, duration))
	return json.RawMessage(value), true
}

// SetCache stores the value under the key.
func (cs *cacheService) SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = cs.defaultTTL
	}

	payload, err := json.Marshal(value)
	if err != nil {
		cs.recordError(key, 0)
		cs.debugLog.addf("SET %s failed to serialize value: %v", key, err)
		return
	}

	start := time.Now()
	if err := cs.store.Set(ctx, key, string(payload), ttl); err != nil {
		cs.recordFailure(key, time.Since(start).Milliseconds(), err)
		cs.logSwallowedError("SET", key, err)
	}
}

// InvalidateCache removes a single key.
func (cs *cacheService) InvalidateCache(ctx context.Context, key string) {
	start := time.Now()
	if err := cs.store.Delete(ctx, key); err != nil {
		cs.recordFailure(key, time.Since(start).Milliseconds(), err)
		cs.logSwallowedError("INVALIDATE", key, err)
		return
	}
	cs.debugLog.addf("INVALIDATE %s", key)
}

// InvalidateCachePattern removes all keys matching a trailing wildcard pattern.
func (cs *cacheService) InvalidateCachePattern(ctx context.Context, pattern string) {
	start := time.Now()
	deleted, err := cs.store.DeleteByPattern(ctx, pattern)
	if err != nil {
		cs.recordFailure(pattern, time.Since(start).Milliseconds(), err)
		cs.logSwallowedError("INVALIDATE_PATTERN", pattern, err)
		return
	}
	cs.debugLog.addf("INVALIDATE PATTERN %s removed %d keys", pattern, deleted)
}

// ClearCache removes every key in the application namespace and resets the
// operation counters. The debug log keeps its trail.
func (cs *cacheService) ClearCache(ctx context.Context) {
	deleted, err := cs.store.DeleteByPattern(ctx, "*")
	if err != nil {
		cs.logSwallowedError("CLEAR", "*", err)
		return
	}
	cs.opLog.clear()
	cs.debugLog.addf("CACHE CLEARED; removed %d keys", deleted)
}

// GetCacheStats returns the aggregate operation counters.
func (cs *cacheService) GetCacheStats() Stats {
	return cs.opLog.stats()
}

// GetCacheOperations returns up to limit recent operations, newest first.
func (cs *cacheService) GetCacheOperations(limit int) []OperationRecord {
	return cs.opLog.recent(limit)
}

// GetDebugLogs returns the retained diagnostic lines, oldest first.
func (cs *cacheService) GetDebugLogs() []string {
	return cs.debugLog.all()
}

// IsAvailable reports whether the remote store is configured.
func (cs *cacheService) IsAvailable() bool {
	return cs.store.IsAvailable()
}

// TestConnection performs a live remote round trip and returns its latency.
func (cs *cacheService) TestConnection(ctx context.Context) (time.Duration, error) {
	return cs.store.TestConnection(ctx)
}

func (cs *cacheService) newRecord(key string, result OperationResult, durationMs int64) OperationRecord {
	return OperationRecord{
		Key:        key,
		Result:     result,
		DurationMs: durationMs,
		Source:     sourceRemoteStore,
		Timestamp:  time.Now().UTC(),
	}
}

func (cs *cacheService) recordError(key string, durationMs int64) {
	cs.opLog.record(cs.newRecord(key, ResultError, durationMs))
}

// recordFailure records a failed write side operation. An unavailable remote
// store leaves no record at all; the cache is in pass-through mode, not failing.
func (cs *cacheService) recordFailure(key string, durationMs int64, err error) {
	if errors.Is(err, ErrRemoteUnavailable) {
		return
	}
	cs.recordError(key, durationMs)
}

// logSwallowedError records a collapsed internal failure in the debug trail.
// An unavailable store is routine, so it logs at debug level only.
func (cs *cacheService) logSwallowedError(operation, key string, err error) {
	cs.debugLog.addf("%s %s failed: %v", operation, key, err)

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	if errors.Is(err, ErrRemoteUnavailable) {
		logger.Debug("Cache operation skipped, remote store unavailable",
			log.String("operation", operation), log.String("key", key))
		return
	}
	logger.Warn("Cache operation failed", log.String("operation", operation),
		log.String("key", key), log.Error(err))
}

// GetCacheAs returns the cached value for the key decoded into T. A value
// that does not decode as T is invalidated and treated as a miss.
func GetCacheAs[T any](ctx context.Context, svc CacheServiceInterface, key string) (T, bool) {
	var out T

	raw, found := svc.GetCache(ctx, key)
	if !found {
		return out, false
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Warn("Cached value does not match the expected shape",
			log.String("key", key), log.Error(err))
		svc.InvalidateCache(ctx, key)

		var zero T
		return zero, false
	}
	return out, true
}
