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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/campushq/campus/internal/system/config"
)

type CacheStatusHandlerTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	service CacheServiceInterface
	handler *StatusHandler
}

func TestCacheStatusHandlerSuite(t *testing.T) {
	suite.Run(t, new(CacheStatusHandlerTestSuite))
}

func (suite *CacheStatusHandlerTestSuite) SetupTest() {
	config.ResetCampusRuntime()
	err := config.InitializeCampusRuntime(suite.T().TempDir(), &config.Config{
		Cache: config.CacheConfig{
			Redis: config.RedisConfig{
				Enabled:  true,
				Address:  "localhost:6379",
				Password: "secret",
			},
		},
	})
	suite.Require().NoError(err)

	suite.mr = miniredis.RunT(suite.T())
	client := redis.NewClient(&redis.Options{Addr: suite.mr.Addr()})
	store := newRedisStoreWithClient(client, "campus", 2*time.Second)
	suite.service = NewCacheService(store, config.CacheConfig{})
	suite.handler = NewStatusHandler(suite.service)
}

func (suite *CacheStatusHandlerTestSuite) TearDownTest() {
	config.ResetCampusRuntime()
}

func (suite *CacheStatusHandlerTestSuite) getStatus() (*httptest.ResponseRecorder, StatusResponse) {
	req := httptest.NewRequest(http.MethodGet, "/api/cache/status", nil)
	rr := httptest.NewRecorder()
	suite.handler.HandleStatusRequest(rr, req)

	var statusResponse StatusResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &statusResponse))
	return rr, statusResponse
}

func (suite *CacheStatusHandlerTestSuite) TestStatusWithConnectedStore() {
	ctx := context.Background()
	suite.service.SetCache(ctx, "admin:stats:global", map[string]int{"totalSchools": 4}, time.Minute)
	_, found := suite.service.GetCache(ctx, "admin:stats:global")
	assert.True(suite.T(), found)
	_, found = suite.service.GetCache(ctx, "admin:stats:missing")
	assert.False(suite.T(), found)

	rr, statusResponse := suite.getStatus()
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Equal(suite.T(), "application/json", rr.Header().Get("Content-Type"))

	assert.True(suite.T(), statusResponse.Redis.Available)
	assert.True(suite.T(), statusResponse.Redis.Connected)
	assert.Equal(suite.T(), healthStatusHealthy, statusResponse.Redis.Health)
	assert.Equal(suite.T(), connectionStatusConnected, statusResponse.Redis.Status)
	assert.GreaterOrEqual(suite.T(), statusResponse.Redis.AvgLatency, 0.0)

	assert.Equal(suite.T(), int64(1), statusResponse.Cache.Hits)
	assert.Equal(suite.T(), int64(1), statusResponse.Cache.Misses)
	assert.Equal(suite.T(), 50.0, statusResponse.Cache.HitRate)

	assert.Equal(suite.T(), int64(2), statusResponse.Operations.Total)
	assert.Len(suite.T(), statusResponse.Operations.Recent, 2)
	assert.Equal(suite.T(), "admin:stats:missing", statusResponse.Operations.Recent[0].Key)
	assert.Contains(suite.T(), statusResponse.Operations.ByPattern, "admin:stats")

	assert.True(suite.T(), statusResponse.Environment.RedisEnabled)
	assert.True(suite.T(), statusResponse.Environment.HasRedisURL)
	assert.True(suite.T(), statusResponse.Environment.HasRedisToken)
	assert.False(suite.T(), statusResponse.Environment.IsServerless)
}

func (suite *CacheStatusHandlerTestSuite) TestStatusFieldNames() {
	rr, _ := suite.getStatus()

	var body map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	for _, key := range []string{"redis", "cache", "operations", "recentLogs", "environment"} {
		assert.Contains(suite.T(), body, key)
	}

	var redisBlock map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(body["redis"], &redisBlock))
	for _, key := range []string{"available", "connected", "health", "status", "avgLatency"} {
		assert.Contains(suite.T(), redisBlock, key)
	}

	var cacheBlock map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(body["cache"], &cacheBlock))
	for _, key := range []string{"hitRate", "totalOperations", "hits", "misses", "errors"} {
		assert.Contains(suite.T(), cacheBlock, key)
	}

	var operationsBlock map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(body["operations"], &operationsBlock))
	for _, key := range []string{"recent", "total", "byPattern"} {
		assert.Contains(suite.T(), operationsBlock, key)
	}

	var environmentBlock map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(body["environment"], &environmentBlock))
	for _, key := range []string{"redisEnabled", "hasRedisUrl", "hasRedisToken", "isServerless"} {
		assert.Contains(suite.T(), environmentBlock, key)
	}
}

func (suite *CacheStatusHandlerTestSuite) TestStatusWithUnconfiguredStore() {
	suite.service = NewCacheService(NewRedisStore(config.RedisConfig{}), config.CacheConfig{})
	suite.handler = NewStatusHandler(suite.service)

	rr, statusResponse := suite.getStatus()
	assert.Equal(suite.T(), http.StatusOK, rr.Code)

	assert.False(suite.T(), statusResponse.Redis.Available)
	assert.False(suite.T(), statusResponse.Redis.Connected)
	assert.Equal(suite.T(), healthStatusNotConfigured, statusResponse.Redis.Health)
	assert.Equal(suite.T(), connectionStatusDisabled, statusResponse.Redis.Status)
	assert.Equal(suite.T(), -1.0, statusResponse.Redis.AvgLatency)
}

func (suite *CacheStatusHandlerTestSuite) TestStatusWithUnreachableStore() {
	suite.mr.Close()

	rr, statusResponse := suite.getStatus()
	assert.Equal(suite.T(), http.StatusOK, rr.Code)

	assert.True(suite.T(), statusResponse.Redis.Available)
	assert.False(suite.T(), statusResponse.Redis.Connected)
	assert.Equal(suite.T(), healthStatusUnhealthy, statusResponse.Redis.Health)
	assert.Equal(suite.T(), connectionStatusDisconnected, statusResponse.Redis.Status)
	assert.Equal(suite.T(), -1.0, statusResponse.Redis.AvgLatency)
}

func (suite *CacheStatusHandlerTestSuite) TestClearRequest() {
	ctx := context.Background()
	suite.service.SetCache(ctx, "school:1:profile", "value", time.Minute)
	_, _ = suite.service.GetCache(ctx, "school:1:profile")

	req := httptest.NewRequest(http.MethodPost, "/api/cache/clear", nil)
	rr := httptest.NewRecorder()
	suite.handler.HandleClearRequest(rr, req)

	assert.Equal(suite.T(), http.StatusOK, rr.Code)

	var clearResponse ClearResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &clearResponse))
	assert.True(suite.T(), clearResponse.Cleared)

	assert.Empty(suite.T(), suite.mr.Keys())
	assert.Equal(suite.T(), int64(0), suite.service.GetCacheStats().TotalOperations)
}
