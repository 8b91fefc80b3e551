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

// Package school provides school and class management functionality.
package school

import (
	"net/http"

	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/middleware"
)

// Initialize initializes the school vertical and registers its routes.
func Initialize(mux *http.ServeMux) SchoolServiceInterface {
	schoolService := newSchoolService(cache.GetCacheService())
	schoolHandler := newSchoolHandler(schoolService)
	registerRoutes(mux, schoolHandler)

	return schoolService
}

// registerRoutes registers the routes for school and class management operations.
func registerRoutes(mux *http.ServeMux, schoolHandler *schoolHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /schools", schoolHandler.HandleSchoolPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /schools", schoolHandler.HandleSchoolListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schools",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /schools/{id}", schoolHandler.HandleSchoolGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /schools/{id}", schoolHandler.HandleSchoolPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /schools/{id}", schoolHandler.HandleSchoolDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schools/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))

	mux.HandleFunc(middleware.WithCORS("POST /schools/{id}/classes", schoolHandler.HandleClassPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /schools/{id}/classes", schoolHandler.HandleClassListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schools/{id}/classes",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	mux.HandleFunc(middleware.WithCORS("GET /schools/{id}/classes/{classID}",
		schoolHandler.HandleClassGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /schools/{id}/classes/{classID}",
		schoolHandler.HandleClassPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /schools/{id}/classes/{classID}",
		schoolHandler.HandleClassDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schools/{id}/classes/{classID}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
