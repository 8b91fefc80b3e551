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

// Package cachemock provides a mock implementation of the cache service for testing.
package cachemock

import (
	"context"
	"encoding/json"
	"time"

	"github.com/campushq/campus/internal/system/cache"
)

// MockCacheService is a mock implementation of the CacheServiceInterface.
// The zero value behaves like a cache that always misses and accepts writes.
type MockCacheService struct {
	// MockGetCache defines the behavior for the GetCache method.
	MockGetCache func(ctx context.Context, key string) (json.RawMessage, bool)

	// MockSetCache defines the behavior for the SetCache method.
	MockSetCache func(ctx context.Context, key string, value interface{}, ttl time.Duration)

	// MockTestConnection defines the behavior for the TestConnection method.
	MockTestConnection func(ctx context.Context) (time.Duration, error)

	// MockIsAvailable defines the behavior for the IsAvailable method.
	MockIsAvailable func() bool

	// GetCalls tracks the keys passed to GetCache.
	GetCalls []string

	// SetCalls tracks the arguments passed to SetCache.
	SetCalls []struct {
		Key   string
		Value interface{}
		TTL   time.Duration
	}

	// InvalidatedKeys tracks the keys passed to InvalidateCache.
	InvalidatedKeys []string

	// InvalidatedPatterns tracks the patterns passed to InvalidateCachePattern.
	InvalidatedPatterns []string

	// ClearCalls tracks the calls to ClearCache.
	ClearCalls int
}

// GetCache mocks the GetCache method of the CacheServiceInterface.
func (m *MockCacheService) GetCache(ctx context.Context, key string) (json.RawMessage, bool) {
	m.GetCalls = append(m.GetCalls, key)

	if m.MockGetCache != nil {
		return m.MockGetCache(ctx, key)
	}
	return nil, false
}

// SetCache mocks the SetCache method of the CacheServiceInterface.
func (m *MockCacheService) SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	m.SetCalls = append(m.SetCalls, struct {
		Key   string
		Value interface{}
		TTL   time.Duration
	}{key, value, ttl})

	if m.MockSetCache != nil {
		m.MockSetCache(ctx, key, value, ttl)
	}
}

// InvalidateCache mocks the InvalidateCache method of the CacheServiceInterface.
func (m *MockCacheService) InvalidateCache(ctx context.Context, key string) {
	m.InvalidatedKeys = append(m.InvalidatedKeys, key)
}

// InvalidateCachePattern mocks the InvalidateCachePattern method of the CacheServiceInterface.
func (m *MockCacheService) InvalidateCachePattern(ctx context.Context, pattern string) {
	m.InvalidatedPatterns = append(m.InvalidatedPatterns, pattern)
}

// ClearCache mocks the ClearCache method of the CacheServiceInterface.
func (m *MockCacheService) ClearCache(ctx context.Context) {
	m.ClearCalls++
}

// GetCacheStats mocks the GetCacheStats method of the CacheServiceInterface.
func (m *MockCacheService) GetCacheStats() cache.Stats {
	return cache.Stats{}
}

// GetCacheOperations mocks the GetCacheOperations method of the CacheServiceInterface.
func (m *MockCacheService) GetCacheOperations(limit int) []cache.OperationRecord {
	return nil
}

// GetDebugLogs mocks the GetDebugLogs method of the CacheServiceInterface.
func (m *MockCacheService) GetDebugLogs() []string {
	return nil
}

// IsAvailable mocks the IsAvailable method of the CacheServiceInterface.
func (m *MockCacheService) IsAvailable() bool {
	if m.MockIsAvailable != nil {
		return m.MockIsAvailable()
	}
	return true
}

// TestConnection mocks the TestConnection method of the CacheServiceInterface.
func (m *MockCacheService) TestConnection(ctx context.Context) (time.Duration, error) {
	if m.MockTestConnection != nil {
		return m.MockTestConnection(ctx)
	}
	return 0, nil
}
