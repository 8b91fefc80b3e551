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

// Package schedule provides class timetable management functionality.
package schedule

import (
	"net/http"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/middleware"
	"github.com/campushq/campus/internal/user"
)

// Initialize initializes the schedule service and registers its routes.
func Initialize(mux *http.ServeMux, userService user.UserServiceInterface,
	schoolService school.SchoolServiceInterface) ScheduleServiceInterface {
	scheduleService := newScheduleService(userService, schoolService, cache.GetCacheService())
	scheduleHandler := newScheduleHandler(scheduleService)
	registerRoutes(mux, scheduleHandler)
	return scheduleService
}

// registerRoutes registers the routes for timetable management operations.
func registerRoutes(mux *http.ServeMux, scheduleHandler *scheduleHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /schools/{id}/schedule",
		scheduleHandler.HandleEntryPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /schools/{id}/schedule",
		scheduleHandler.HandleEntryListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schools/{id}/schedule",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /schools/{id}/schedule/{entryID}",
		scheduleHandler.HandleEntryPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /schools/{id}/schedule/{entryID}",
		scheduleHandler.HandleEntryDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schools/{id}/schedule/{entryID}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /schools/{id}/classes/{classID}/timetable",
		scheduleHandler.HandleTimetableGetRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schools/{id}/classes/{classID}/timetable",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))
}
