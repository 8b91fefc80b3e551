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

// Package managers provides functionality for managing and registering system services.
package managers

import (
	"net/http"

	"github.com/campushq/campus/internal/auth"
	"github.com/campushq/campus/internal/dashboard"
	"github.com/campushq/campus/internal/enrollment"
	"github.com/campushq/campus/internal/notification"
	"github.com/campushq/campus/internal/schedule"
	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/story"
	"github.com/campushq/campus/internal/system/services"
	"github.com/campushq/campus/internal/user"
)

// ServiceManagerInterface defines the interface for managing services.
type ServiceManagerInterface interface {
	RegisterServices() error
}

// ServiceManager implements the ServiceManagerInterface and is responsible for registering services.
type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {
	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices registers all the services with the provided HTTP multiplexer.
// The verticals are initialized in dependency order: school first, then user,
// then auth, then everything that builds on them.
func (sm *ServiceManager) RegisterServices() error {
	// Register the health service.
	services.NewHealthCheckService(sm.mux)

	// Register the cache diagnostics service.
	services.NewCacheStatusService(sm.mux)

	schoolService := school.Initialize(sm.mux)
	userService := user.Initialize(sm.mux, schoolService)
	auth.Initialize(sm.mux, userService)

	enrollment.Initialize(sm.mux, userService, schoolService)
	schedule.Initialize(sm.mux, userService, schoolService)
	story.Initialize(sm.mux, schoolService)
	dashboard.Initialize(sm.mux, schoolService)
	notification.Initialize(sm.mux, schoolService)

	return nil
}
