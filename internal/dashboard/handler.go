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

package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/error/apierror"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
)

const handlerLoggerComponentName = "DashboardHandler"

// dashboardHandler is the handler for dashboard statistics operations.
type dashboardHandler struct {
	dashboardService DashboardServiceInterface
}

// newDashboardHandler creates a new instance of dashboardHandler.
func newDashboardHandler(dashboardService DashboardServiceInterface) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

// HandleAdminStatsRequest handles the platform-wide statistics request.
func (dh *dashboardHandler) HandleAdminStatsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	stats, svcErr := dh.dashboardService.GetAdminStats(r.Context())
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleSchoolStatsRequest handles the per-school statistics request.
func (dh *dashboardHandler) HandleSchoolStatsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	stats, svcErr := dh.dashboardService.GetSchoolStats(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleEnrollmentTrendsRequest handles the enrollment trend series request.
func (dh *dashboardHandler) HandleEnrollmentTrendsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	months := 0
	if monthsParam := r.URL.Query().Get("months"); monthsParam != "" {
		parsed, err := strconv.Atoi(monthsParam)
		if err != nil {
			writeServiceErrorResponse(w, &ErrorInvalidMonths, logger)
			return
		}
		months = parsed
	}

	trends, svcErr := dh.dashboardService.GetEnrollmentTrends(r.Context(), months)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(trends); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// writeServiceErrorResponse writes an error response based on the service error type.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	}
	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
	}
}

// getClientErrorStatusCode maps client error codes to HTTP status codes.
func getClientErrorStatusCode(code string) int {
	switch code {
	case ErrorSchoolNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
