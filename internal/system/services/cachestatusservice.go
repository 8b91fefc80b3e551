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

package services

import (
	"net/http"

	"github.com/campushq/campus/internal/auth"
	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/config"
	"github.com/campushq/campus/internal/system/middleware"
	"github.com/campushq/campus/internal/user"
)

// CacheStatusService defines the service for the cache diagnostics endpoints.
// The routes require an admin session and are rate limited per client.
type CacheStatusService struct {
	statusHandler *cache.StatusHandler
	rateLimiter   *middleware.RateLimiter
}

// NewCacheStatusService creates a new instance of CacheStatusService.
func NewCacheStatusService(mux *http.ServeMux) ServiceInterface {
	instance := &CacheStatusService{
		statusHandler: cache.NewStatusHandler(cache.GetCacheService()),
		rateLimiter: middleware.NewRateLimiter(
			config.GetCampusRuntime().Config.Cache.StatusRateLimit),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the CacheStatusService. Handlers are
// wrapped rate limiter first, then session auth, so an over-limit client is
// rejected with 429 before its credentials are checked.
func (c *CacheStatusService) RegisterRoutes(mux *http.ServeMux) {
	adminRoles := []string{string(user.RoleSuperAdmin), string(user.RoleAdmin)}

	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/cache/status",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))
	statusPattern, statusHandler := auth.WithSessionAuth("GET /api/cache/status",
		c.statusHandler.HandleStatusRequest, adminRoles...)
	statusPattern, statusHandler = middleware.WithRateLimit(statusPattern, statusHandler, c.rateLimiter)
	mux.HandleFunc(middleware.WithCORS(statusPattern, statusHandler, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/cache/clear",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
	clearPattern, clearHandler := auth.WithSessionAuth("POST /api/cache/clear",
		c.statusHandler.HandleClearRequest, adminRoles...)
	clearPattern, clearHandler = middleware.WithRateLimit(clearPattern, clearHandler, c.rateLimiter)
	mux.HandleFunc(middleware.WithCORS(clearPattern, clearHandler, opts2))
}
