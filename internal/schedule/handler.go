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

package schedule

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/error/apierror"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	sysutils "github.com/campushq/campus/internal/system/utils"
)

const handlerLoggerComponentName = "ScheduleHandler"

// scheduleHandler is the handler for timetable management operations.
type scheduleHandler struct {
	scheduleService ScheduleServiceInterface
}

// newScheduleHandler creates a new instance of scheduleHandler.
func newScheduleHandler(scheduleService ScheduleServiceInterface) *scheduleHandler {
	return &scheduleHandler{
		scheduleService: scheduleService,
	}
}

// HandleEntryPostRequest handles the timetable entry creation request.
func (sh *scheduleHandler) HandleEntryPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[EntryRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	entry, svcErr := sh.scheduleService.CreateEntry(r.Context(), r.PathValue("id"), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(entry); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Schedule entry POST response sent", log.String("entryID", entry.ID))
}

// HandleEntryListRequest handles the timetable entry list request.
func (sh *scheduleHandler) HandleEntryListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	entries, svcErr := sh.scheduleService.ListEntries(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleEntryPutRequest handles the timetable entry update request.
func (sh *scheduleHandler) HandleEntryPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[EntryRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	entry, svcErr := sh.scheduleService.UpdateEntry(r.Context(), r.PathValue("id"),
		r.PathValue("entryID"), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(entry); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Schedule entry PUT response sent", log.String("entryID", entry.ID))
}

// HandleEntryDeleteRequest handles the timetable entry delete request.
func (sh *scheduleHandler) HandleEntryDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	svcErr := sh.scheduleService.DeleteEntry(r.Context(), r.PathValue("id"), r.PathValue("entryID"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleTimetableGetRequest handles the class timetable request.
func (sh *scheduleHandler) HandleTimetableGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	timetable, svcErr := sh.scheduleService.GetTimetable(r.Context(), r.PathValue("id"),
		r.PathValue("classID"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(timetable); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// writeDecodeErrorResponse writes an error response for a malformed request body.
func writeDecodeErrorResponse(w http.ResponseWriter, err error, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        ErrorInvalidRequestFormat.Code,
		Message:     ErrorInvalidRequestFormat.Error,
		Description: "Failed to parse request body: " + err.Error(),
	}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
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
	case ErrorEntryNotFound.Code, ErrorClassNotFound.Code, ErrorTeacherNotFound.Code:
		return http.StatusNotFound
	case ErrorScheduleConflict.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
