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

// Package story provides success story management functionality.
package story

import (
	"net/http"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/middleware"
)

// Initialize initializes the story service and registers its routes.
func Initialize(mux *http.ServeMux, schoolService school.SchoolServiceInterface) StoryServiceInterface {
	storyService := newStoryService(schoolService, cache.GetCacheService())
	storyHandler := newStoryHandler(storyService)
	registerRoutes(mux, storyHandler)
	return storyService
}

// registerRoutes registers the routes for story management operations.
func registerRoutes(mux *http.ServeMux, storyHandler *storyHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /stories", storyHandler.HandleStoryPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /stories", storyHandler.HandleStoryListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /stories",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	optsPublic := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /stories/published",
		storyHandler.HandleStoryPublishedListRequest, optsPublic))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /stories/published",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, optsPublic))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /stories/{id}", storyHandler.HandleStoryGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /stories/{id}", storyHandler.HandleStoryPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /stories/{id}", storyHandler.HandleStoryDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /stories/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /stories/{id}/publish",
		storyHandler.HandleStoryPublishRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /stories/{id}/publish",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))
	mux.HandleFunc(middleware.WithCORS("POST /stories/{id}/unpublish",
		storyHandler.HandleStoryUnpublishRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /stories/{id}/unpublish",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))
}
