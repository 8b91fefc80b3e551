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
	"math"
	"net/http"
	"os"

	"github.com/campushq/campus/internal/system/config"
	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/log"
)

// serverlessEnvVars are environment variables set by managed serverless
// platforms. Presence of any of them marks the runtime as serverless.
var serverlessEnvVars = []string{
	"AWS_LAMBDA_FUNCTION_NAME",
	"FUNCTION_TARGET",
	"K_SERVICE",
	"VERCEL",
}

// StatusHandler serves the cache diagnostics endpoints.
type StatusHandler struct {
	service CacheServiceInterface
}

// NewStatusHandler creates a new instance of StatusHandler.
func NewStatusHandler(service CacheServiceInterface) *StatusHandler {
	return &StatusHandler{
		service: service,
	}
}

// HandleStatusRequest handles the cache status request.
func (sh *StatusHandler) HandleStatusRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheStatusHandler"))

	statusResponse := sh.buildStatusResponse(r.Context())

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(statusResponse); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// HandleClearRequest handles the cache clear request.
func (sh *StatusHandler) HandleClearRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheStatusHandler"))

	sh.service.ClearCache(r.Context())
	logger.Info("Cache cleared")

	clearResponse := ClearResponse{
		Cleared: true,
		Message: "Cache cleared",
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(clearResponse); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// buildStatusResponse assembles the full diagnostics snapshot. Connectivity
// is probed live so the report reflects the remote store as it is now, not
// as it was when the service started.
func (sh *StatusHandler) buildStatusResponse(ctx context.Context) StatusResponse {
	available := sh.service.IsAvailable()

	connected := false
	avgLatency := float64(-1)
	if available {
		if latency, err := sh.service.TestConnection(ctx); err == nil {
			connected = true
			avgLatency = math.Round(float64(latency.Microseconds())/10) / 100
		}
	}

	health := healthStatusNotConfigured
	connectionStatus := connectionStatusDisabled
	switch {
	case connected:
		health = healthStatusHealthy
		connectionStatus = connectionStatusConnected
	case available:
		health = healthStatusUnhealthy
		connectionStatus = connectionStatusDisconnected
	}

	stats := sh.service.GetCacheStats()
	records := sh.service.GetCacheOperations(0)
	recentRecords := records
	if len(recentRecords) > recentOperationCount {
		recentRecords = recentRecords[:recentOperationCount]
	}

	debugLines := sh.service.GetDebugLogs()
	if len(debugLines) > recentDebugLogCount {
		debugLines = debugLines[len(debugLines)-recentDebugLogCount:]
	}

	return StatusResponse{
		Redis: RedisStatus{
			Available:  available,
			Connected:  connected,
			Health:     health,
			Status:     connectionStatus,
			AvgLatency: avgLatency,
		},
		Cache: stats,
		Operations: OperationsStatus{
			Recent:    recentRecords,
			Total:     stats.TotalOperations,
			ByPattern: patternBreakdown(records),
		},
		RecentLogs:  debugLines,
		Environment: getEnvironmentStatus(),
	}
}

// getEnvironmentStatus reports configuration presence only; secret values
// never leave the config.
func getEnvironmentStatus() EnvironmentStatus {
	redisConfig := config.GetCampusRuntime().Config.Cache.Redis
	return EnvironmentStatus{
		RedisEnabled:  redisConfig.Enabled,
		HasRedisURL:   redisConfig.Address != "",
		HasRedisToken: redisConfig.Password != "",
		IsServerless:  isServerlessRuntime(),
	}
}

func isServerlessRuntime() bool {
	for _, name := range serverlessEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}
