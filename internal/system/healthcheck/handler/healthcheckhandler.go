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

// Package handler provides HTTP handlers for managing health check related API requests.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/healthcheck/model"
	"github.com/campushq/campus/internal/system/healthcheck/provider"
	"github.com/campushq/campus/internal/system/log"
)

// HealthCheckHandler defines the handler for managing health check API requests.
type HealthCheckHandler struct {
	Provider provider.HealthCheckProviderInterface
}

// NewHealthCheckHandler creates a new instance of HealthCheckHandler.
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{
		Provider: provider.NewHealthCheckProvider(),
	}
}

// HandleLivenessRequest handles the health check liveness request.
func (hch *HealthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))
	w.WriteHeader(http.StatusOK)
	logger.Debug("Health Check Liveness response sent")
}

// HandleReadinessRequest handles the health check readiness request.
func (hch *HealthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))

	healthcheckService := hch.Provider.GetHealthCheckService()
	serverstatus := healthcheckService.CheckReadiness()

	if serverstatus.Status != model.StatusUp {
		logger.Error("Readiness check failed", log.String("serverstatus", string(serverstatus.Status)))
	} else {
		logger.Debug("Readiness check passed", log.String("serverstatus", string(serverstatus.Status)))
	}

	hch.writeServerStatus(w, serverstatus, logger)
	logger.Debug("Health Check Readiness response sent")
}

// HandleHealthRequest handles the aggregated health request. The underlying
// service caches probe results and answers from the last known view when a
// probe runs long, so this endpoint stays responsive even when a dependency
// is timing out.
func (hch *HealthCheckHandler) HandleHealthRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))

	healthcheckService := hch.Provider.GetHealthCheckService()
	serverstatus := healthcheckService.CheckHealth(r.Context())

	if serverstatus.Status != model.StatusUp {
		logger.Error("Health check reported degraded status",
			log.String("serverstatus", string(serverstatus.Status)))
	}

	hch.writeServerStatus(w, serverstatus, logger)
	logger.Debug("Health Check response sent")
}

func (hch *HealthCheckHandler) writeServerStatus(w http.ResponseWriter, serverstatus model.ServerStatus,
	logger *log.Logger) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	if serverstatus.Status != model.StatusUp {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if err := json.NewEncoder(w).Encode(serverstatus); err != nil {
		logger.Error("Error while encoding server status", log.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
