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

// Package dashboard provides aggregate statistics for the role-scoped dashboards.
// It is the primary consumer of the read-through cache.
package dashboard

import (
	"net/http"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/middleware"
)

// Initialize initializes the dashboard vertical and registers its routes.
func Initialize(mux *http.ServeMux, schoolService school.SchoolServiceInterface) DashboardServiceInterface {
	dashboardService := newDashboardService(schoolService, cache.GetCacheService())
	dashboardHandler := newDashboardHandler(dashboardService)
	registerRoutes(mux, dashboardHandler)

	return dashboardService
}

// registerRoutes registers the routes for dashboard statistics operations.
func registerRoutes(mux *http.ServeMux, dashboardHandler *dashboardHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /dashboard/admin/stats",
		dashboardHandler.HandleAdminStatsRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /dashboard/admin/stats",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))

	mux.HandleFunc(middleware.WithCORS("GET /dashboard/admin/enrollment-trends",
		dashboardHandler.HandleEnrollmentTrendsRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /dashboard/admin/enrollment-trends",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))

	mux.HandleFunc(middleware.WithCORS("GET /dashboard/schools/{id}/stats",
		dashboardHandler.HandleSchoolStatsRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /dashboard/schools/{id}/stats",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
