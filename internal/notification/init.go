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

// Package notification provides announcement and message sender management functionality.
package notification

import (
	"net/http"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/middleware"
)

// Initialize initializes the notification services and registers their routes.
func Initialize(mux *http.ServeMux, schoolService school.SchoolServiceInterface) NotificationServiceInterface {
	store := newNotificationStore()
	notificationService := newNotificationService(store, schoolService)
	senderService := newSenderService(store)
	notificationHandler := newNotificationHandler(notificationService, senderService)
	registerRoutes(mux, notificationHandler)
	return notificationService
}

// registerRoutes registers the routes for announcement and sender management operations.
func registerRoutes(mux *http.ServeMux, notificationHandler *notificationHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /notifications",
		notificationHandler.HandleAnnouncementPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /notifications",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /notifications/{id}",
		notificationHandler.HandleAnnouncementGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /notifications/{id}",
		notificationHandler.HandleAnnouncementDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /notifications/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /notifications/{id}/attempts",
		notificationHandler.HandleDispatchAttemptListRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /notifications/{id}/attempts",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))
	mux.HandleFunc(middleware.WithCORS("GET /schools/{id}/notifications",
		notificationHandler.HandleAnnouncementListRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /schools/{id}/notifications",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))

	opts4 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /notification-senders/message",
		notificationHandler.HandleSenderPostRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("GET /notification-senders/message",
		notificationHandler.HandleSenderListRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /notification-senders/message",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts4))

	opts5 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /notification-senders/message/{id}",
		notificationHandler.HandleSenderGetRequest, opts5))
	mux.HandleFunc(middleware.WithCORS("PUT /notification-senders/message/{id}",
		notificationHandler.HandleSenderPutRequest, opts5))
	mux.HandleFunc(middleware.WithCORS("DELETE /notification-senders/message/{id}",
		notificationHandler.HandleSenderDeleteRequest, opts5))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /notification-senders/message/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts5))
}
