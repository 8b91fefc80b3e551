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

// Package enrollment provides student enrollment management functionality.
package enrollment

import (
	"net/http"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/middleware"
	"github.com/campushq/campus/internal/user"
)

// Initialize initializes the enrollment service and registers its routes.
func Initialize(mux *http.ServeMux, userService user.UserServiceInterface,
	schoolService school.SchoolServiceInterface) EnrollmentServiceInterface {
	enrollmentService := newEnrollmentService(userService, schoolService, cache.GetCacheService())
	enrollmentHandler := newEnrollmentHandler(enrollmentService)
	registerRoutes(mux, enrollmentHandler)
	return enrollmentService
}

// registerRoutes registers the routes for enrollment operations.
func registerRoutes(mux *http.ServeMux, enrollmentHandler *enrollmentHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /enrollments",
		enrollmentHandler.HandleEnrollmentPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /enrollments",
		enrollmentHandler.HandleEnrollmentListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /enrollments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /enrollments/{id}/status",
		enrollmentHandler.HandleEnrollmentStatusPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /enrollments/{id}",
		enrollmentHandler.HandleEnrollmentDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /enrollments/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /enrollments/{id}/status",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
