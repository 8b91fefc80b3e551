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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/config"
	"github.com/campushq/campus/internal/system/database/client"
	dbmodel "github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/database/provider"
	"github.com/campushq/campus/internal/system/healthcheck/model"
	"github.com/campushq/campus/tests/mocks/databasemock"
)

// stubCacheService is a minimal CacheServiceInterface implementation for
// driving the cache probe from tests.
type stubCacheService struct {
	available bool
	latency   time.Duration
	connErr   error
}

func (s *stubCacheService) GetCache(ctx context.Context, key string) (json.RawMessage, bool) {
	return nil, false
}

func (s *stubCacheService) SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
}

func (s *stubCacheService) InvalidateCache(ctx context.Context, key string) {}

func (s *stubCacheService) InvalidateCachePattern(ctx context.Context, pattern string) {}

func (s *stubCacheService) ClearCache(ctx context.Context) {}

func (s *stubCacheService) GetCacheStats() cache.Stats { return cache.Stats{} }

func (s *stubCacheService) GetCacheOperations(limit int) []cache.OperationRecord { return nil }

func (s *stubCacheService) GetDebugLogs() []string { return nil }

func (s *stubCacheService) IsAvailable() bool { return s.available }

func (s *stubCacheService) TestConnection(ctx context.Context) (time.Duration, error) {
	return s.latency, s.connErr
}

type HealthCheckServiceTestSuite struct {
	suite.Suite
	service        *HealthCheckService
	mockDBProvider *databasemock.MockDBProvider
	mockCampusDB   *databasemock.MockDBClient
	mockRuntimeDB  *databasemock.MockDBClient
	cacheService   *stubCacheService
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	suite.mockCampusDB = &databasemock.MockDBClient{}
	suite.mockRuntimeDB = &databasemock.MockDBClient{}

	// Capture the clients locally so background probes never touch the
	// mocks of a later test.
	campusDB := suite.mockCampusDB
	runtimeDB := suite.mockRuntimeDB
	suite.mockDBProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			switch dbName {
			case provider.DBNameCampus:
				return campusDB, nil
			case provider.DBNameRuntime:
				return runtimeDB, nil
			}
			return nil, fmt.Errorf("unexpected database name: %s", dbName)
		},
	}

	suite.cacheService = &stubCacheService{available: true, latency: 3 * time.Millisecond}
	suite.service = &HealthCheckService{
		DBProvider:   suite.mockDBProvider,
		CacheService: suite.cacheService,
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadiness() {
	testCases := []struct {
		name           string
		campusDBErr    error
		runtimeDBErr   error
		cacheAvailable bool
		cacheConnErr   error
		expectedStatus model.Status
		expectedByName map[string]model.Status
	}{
		{
			name:           "AllServicesUp",
			cacheAvailable: true,
			expectedStatus: model.StatusUp,
			expectedByName: map[string]model.Status{
				"CampusDB":  model.StatusUp,
				"RuntimeDB": model.StatusUp,
				"Cache":     model.StatusUp,
			},
		},
		{
			name:           "CampusDBDown",
			campusDBErr:    errors.New("database error"),
			cacheAvailable: true,
			expectedStatus: model.StatusDown,
			expectedByName: map[string]model.Status{
				"CampusDB":  model.StatusDown,
				"RuntimeDB": model.StatusUp,
				"Cache":     model.StatusUp,
			},
		},
		{
			name:           "RuntimeDBDown",
			runtimeDBErr:   errors.New("database error"),
			cacheAvailable: true,
			expectedStatus: model.StatusDown,
			expectedByName: map[string]model.Status{
				"CampusDB":  model.StatusUp,
				"RuntimeDB": model.StatusDown,
				"Cache":     model.StatusUp,
			},
		},
		{
			name:           "BothDBsDown",
			campusDBErr:    errors.New("database error"),
			runtimeDBErr:   errors.New("database error"),
			cacheAvailable: true,
			expectedStatus: model.StatusDown,
			expectedByName: map[string]model.Status{
				"CampusDB":  model.StatusDown,
				"RuntimeDB": model.StatusDown,
				"Cache":     model.StatusUp,
			},
		},
		{
			name:           "CacheUnreachable",
			cacheAvailable: true,
			cacheConnErr:   errors.New("connection refused"),
			expectedStatus: model.StatusDown,
			expectedByName: map[string]model.Status{
				"CampusDB":  model.StatusUp,
				"RuntimeDB": model.StatusUp,
				"Cache":     model.StatusDown,
			},
		},
		{
			name:           "CacheDisabledDoesNotDegradeServer",
			cacheAvailable: false,
			expectedStatus: model.StatusUp,
			expectedByName: map[string]model.Status{
				"CampusDB":  model.StatusUp,
				"RuntimeDB": model.StatusUp,
				"Cache":     model.StatusDisabled,
			},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			campusErr := tc.campusDBErr
			suite.mockCampusDB.MockQuery = func(query dbmodel.DBQuery,
				args ...interface{}) ([]map[string]interface{}, error) {
				if campusErr != nil {
					return nil, campusErr
				}
				return []map[string]interface{}{{"total": int64(12)}}, nil
			}

			runtimeErr := tc.runtimeDBErr
			suite.mockRuntimeDB.MockQuery = func(query dbmodel.DBQuery,
				args ...interface{}) ([]map[string]interface{}, error) {
				if runtimeErr != nil {
					return nil, runtimeErr
				}
				return []map[string]interface{}{{"total": int64(3)}}, nil
			}

			suite.cacheService.available = tc.cacheAvailable
			suite.cacheService.connErr = tc.cacheConnErr

			serverStatus := suite.service.CheckReadiness()

			assert.Equal(t, tc.expectedStatus, serverStatus.Status, "Server status should match expected")
			assert.Len(t, serverStatus.ServiceStatus, 3, "All dependencies should be reported")

			reported := make(map[string]model.Status)
			for _, svc := range serverStatus.ServiceStatus {
				reported[svc.ServiceName] = svc.Status
			}
			assert.Equal(t, tc.expectedByName, reported, "Per-service statuses should match expected")
		})
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessDBRetrievalError() {
	suite.mockDBProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return nil, errors.New("failed to get database client")
	}

	serverStatus := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, serverStatus.Status, "Server status should be DOWN")
	assert.Len(suite.T(), serverStatus.ServiceStatus, 3, "All dependencies should be reported")

	for _, status := range serverStatus.ServiceStatus {
		switch status.ServiceName {
		case "CampusDB", "RuntimeDB":
			assert.Equal(suite.T(), model.StatusDown, status.Status,
				"%s should be DOWN", status.ServiceName)
		case "Cache":
			assert.Equal(suite.T(), model.StatusUp, status.Status, "Cache should still be probed")
		}
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessProbesConfiguredQueries() {
	suite.service.CheckReadiness()

	assert.Len(suite.T(), suite.mockCampusDB.QueryCalls, 1)
	assert.Equal(suite.T(), queryCampusDBTable.ID, suite.mockCampusDB.QueryCalls[0].Query.ID)

	assert.Len(suite.T(), suite.mockRuntimeDB.QueryCalls, 1)
	assert.Equal(suite.T(), queryRuntimeDBTable.ID, suite.mockRuntimeDB.QueryCalls[0].Query.ID)
}

func (suite *HealthCheckServiceTestSuite) TestCheckHealthReusesFreshResult() {
	first := suite.service.CheckHealth(context.Background())
	second := suite.service.CheckHealth(context.Background())

	assert.Equal(suite.T(), model.StatusUp, first.Status)
	assert.Equal(suite.T(), first, second, "Second call should serve the stored result")
	assert.Len(suite.T(), suite.mockCampusDB.QueryCalls, 1, "Dependencies should be probed once")
	assert.Len(suite.T(), suite.mockRuntimeDB.QueryCalls, 1, "Dependencies should be probed once")
}

func (suite *HealthCheckServiceTestSuite) TestCheckHealthRefreshesAfterTTL() {
	suite.service.CheckHealth(context.Background())

	suite.service.mu.Lock()
	suite.service.lastProbe = time.Now().Add(-healthResultTTL - time.Second)
	suite.service.mu.Unlock()

	suite.service.CheckHealth(context.Background())

	assert.Len(suite.T(), suite.mockCampusDB.QueryCalls, 2, "Stale result should trigger a new probe")
}

func (suite *HealthCheckServiceTestSuite) TestCheckHealthAnswersFromLastKnownWhenProbeIsSlow() {
	first := suite.service.CheckHealth(context.Background())
	assert.Equal(suite.T(), model.StatusUp, first.Status)

	suite.service.mu.Lock()
	suite.service.lastProbe = time.Now().Add(-healthResultTTL - time.Second)
	suite.service.mu.Unlock()

	suite.mockCampusDB.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		time.Sleep(500 * time.Millisecond)
		return nil, errors.New("database timeout")
	}

	start := time.Now()
	status := suite.service.CheckHealth(context.Background())
	elapsed := time.Since(start)

	assert.Equal(suite.T(), model.StatusUp, status.Status, "Slow probe should fall back to the last known view")
	assert.Less(suite.T(), elapsed, 400*time.Millisecond, "Response should not wait for the slow probe")
}

func (suite *HealthCheckServiceTestSuite) TestCheckHealthWithoutHistoryReportsDown() {
	suite.mockCampusDB.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		time.Sleep(500 * time.Millisecond)
		return nil, errors.New("database timeout")
	}

	status := suite.service.CheckHealth(context.Background())

	assert.Equal(suite.T(), model.StatusDown, status.Status)
	assert.Empty(suite.T(), status.ServiceStatus)
}

func (suite *HealthCheckServiceTestSuite) TestCheckHealthHonorsCanceledContext() {
	suite.mockCampusDB.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		time.Sleep(300 * time.Millisecond)
		return []map[string]interface{}{{"total": int64(1)}}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	status := suite.service.CheckHealth(ctx)

	assert.Equal(suite.T(), model.StatusDown, status.Status)
	assert.Less(suite.T(), time.Since(start), 200*time.Millisecond,
		"Canceled request should not wait for the probe")
}

func (suite *HealthCheckServiceTestSuite) TestGetHealthCheckServiceSingleton() {
	config.ResetCampusRuntime()
	err := config.InitializeCampusRuntime(suite.T().TempDir(), &config.Config{})
	assert.NoError(suite.T(), err)
	cache.ResetCacheService()

	instance = nil
	once = sync.Once{}
	defer func() {
		instance = nil
		once = sync.Once{}
		cache.ResetCacheService()
		config.ResetCampusRuntime()
	}()

	svc1 := GetHealthCheckService()
	svc2 := GetHealthCheckService()

	assert.NotNil(suite.T(), svc1)
	assert.Same(suite.T(), svc1, svc2, "GetHealthCheckService should return the same instance")
}
