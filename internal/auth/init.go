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

// Package auth provides login, session, and token based authentication
// functionality.
package auth

import (
	"net/http"

	"github.com/campushq/campus/internal/system/config"
	"github.com/campushq/campus/internal/system/middleware"
	"github.com/campushq/campus/internal/user"
)

// Initialize initializes the auth service and registers its routes.
func Initialize(mux *http.ServeMux, userService user.UserServiceInterface) AuthServiceInterface {
	authService := newAuthService(userService)
	setAuthService(authService)
	authHandler := newAuthHandler(authService)
	registerRoutes(mux, authHandler)
	return authService
}

// registerRoutes registers the routes for authentication operations.
func registerRoutes(mux *http.ServeMux, authHandler *authHandler) {
	optsCSRF := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /auth/csrf", authHandler.HandleCSRFTokenRequest, optsCSRF))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /auth/csrf", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, optsCSRF))

	optsLogin := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	loginLimiter := middleware.NewRateLimiter(config.GetCampusRuntime().Config.Auth.LoginRateLimit)
	loginPattern, loginHandler := middleware.WithRateLimit("POST /auth/login",
		authHandler.HandleLoginRequest, loginLimiter)
	mux.HandleFunc(middleware.WithCORS(loginPattern, loginHandler, optsLogin))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, optsLogin))

	optsMe := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /auth/me", authHandler.HandleMeRequest, optsMe))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, optsMe))

	optsLogout := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /auth/logout", authHandler.HandleLogoutRequest, optsLogout))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, optsLogout))
}
