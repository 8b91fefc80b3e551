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

// Package service provides health check-related business logic and operations.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/campushq/campus/internal/system/cache"
	dbmodel "github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/database/provider"
	"github.com/campushq/campus/internal/system/healthcheck/model"
	"github.com/campushq/campus/internal/system/log"
)

const (
	// healthResultTTL is how long a completed probe result is served without
	// re-probing the dependencies.
	healthResultTTL = 5 * time.Second
	// healthResponseDeadline bounds how long a health request waits for an
	// in-flight probe before answering with the last known view.
	healthResponseDeadline = 200 * time.Millisecond
)

var (
	instance *HealthCheckService
	once     sync.Once
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() model.ServerStatus
	CheckHealth(ctx context.Context) model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider   provider.DBProviderInterface
	CacheService cache.CacheServiceInterface

	mu         sync.Mutex
	lastStatus model.ServerStatus
	lastProbe  time.Time
	hasResult  bool
}

// GetHealthCheckService returns a singleton instance of HealthCheckService.
func GetHealthCheckService() HealthCheckServiceInterface {
	once.Do(func() {
		instance = &HealthCheckService{
			DBProvider:   provider.GetDBProvider(),
			CacheService: cache.GetCacheService(),
		}
	})
	return instance
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness() model.ServerStatus {
	campusDBStatus := model.ServiceStatus{
		ServiceName: "CampusDB",
		Status:      hcs.checkDatabaseStatus(provider.DBNameCampus, queryCampusDBTable),
	}

	runtimeDBStatus := model.ServiceStatus{
		ServiceName: "RuntimeDB",
		Status:      hcs.checkDatabaseStatus(provider.DBNameRuntime, queryRuntimeDBTable),
	}

	cacheStatus := hcs.checkCacheStatus()

	status := model.StatusUp
	for _, svc := range []model.ServiceStatus{campusDBStatus, runtimeDBStatus, cacheStatus} {
		if svc.Status == model.StatusDown {
			status = model.StatusDown
		}
	}

	return model.ServerStatus{
		Status: status,
		ServiceStatus: []model.ServiceStatus{
			campusDBStatus,
			runtimeDBStatus,
			cacheStatus,
		},
	}
}

// CheckHealth returns the aggregated health view. Completed probe results are
// reused for healthResultTTL, and a probe that does not finish within the
// response deadline falls back to the last known view so the endpoint never
// blocks its caller.
func (hcs *HealthCheckService) CheckHealth(ctx context.Context) model.ServerStatus {
	if status, ok := hcs.cachedStatus(); ok {
		return status
	}

	resultChan := make(chan model.ServerStatus, 1)
	go func() {
		status := hcs.CheckReadiness()
		hcs.storeStatus(status)
		resultChan <- status
	}()

	select {
	case status := <-resultChan:
		return status
	case <-time.After(healthResponseDeadline):
		return hcs.lastKnownStatus()
	case <-ctx.Done():
		return hcs.lastKnownStatus()
	}
}

// cachedStatus returns the stored probe result while it is still fresh.
func (hcs *HealthCheckService) cachedStatus() (model.ServerStatus, bool) {
	hcs.mu.Lock()
	defer hcs.mu.Unlock()

	if hcs.hasResult && time.Since(hcs.lastProbe) < healthResultTTL {
		return hcs.lastStatus, true
	}
	return model.ServerStatus{}, false
}

func (hcs *HealthCheckService) storeStatus(status model.ServerStatus) {
	hcs.mu.Lock()
	defer hcs.mu.Unlock()

	hcs.lastStatus = status
	hcs.lastProbe = time.Now()
	hcs.hasResult = true
}

// lastKnownStatus returns the previous view even when stale, or a degraded
// placeholder when no probe has completed yet.
func (hcs *HealthCheckService) lastKnownStatus() model.ServerStatus {
	hcs.mu.Lock()
	defer hcs.mu.Unlock()

	if hcs.hasResult {
		return hcs.lastStatus
	}
	return model.ServerStatus{
		Status:        model.StatusDown,
		ServiceStatus: []model.ServiceStatus{},
	}
}

// checkDatabaseStatus checks the status of the specified database with the specified query.
func (hcs *HealthCheckService) checkDatabaseStatus(dbname string, query dbmodel.DBQuery) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.DBProvider.GetDBClient(dbname)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.StatusDown
	}

	_, err = dbClient.Query(query)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}

// checkCacheStatus probes the remote cache store. A store that is not
// configured reports as disabled and does not affect the overall status.
func (hcs *HealthCheckService) checkCacheStatus() model.ServiceStatus {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	cacheStatus := model.ServiceStatus{ServiceName: "Cache"}
	if !hcs.CacheService.IsAvailable() {
		cacheStatus.Status = model.StatusDisabled
		return cacheStatus
	}

	if _, err := hcs.CacheService.TestConnection(context.Background()); err != nil {
		logger.Error("Cache connectivity check failed", log.Error(err))
		cacheStatus.Status = model.StatusDown
		return cacheStatus
	}

	cacheStatus.Status = model.StatusUp
	return cacheStatus
}
