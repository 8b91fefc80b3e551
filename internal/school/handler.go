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

package school

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/error/apierror"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	sysutils "github.com/campushq/campus/internal/system/utils"
)

const handlerLoggerComponentName = "SchoolHandler"

// schoolHandler is the handler for school and class management operations.
type schoolHandler struct {
	schoolService SchoolServiceInterface
}

// newSchoolHandler creates a new instance of schoolHandler.
func newSchoolHandler(schoolService SchoolServiceInterface) *schoolHandler {
	return &schoolHandler{
		schoolService: schoolService,
	}
}

// HandleSchoolPostRequest handles the school creation request.
func (sh *schoolHandler) HandleSchoolPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[SchoolRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	school, svcErr := sh.schoolService.CreateSchool(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(school); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("School POST response sent", log.String("schoolID", school.ID))
}

// HandleSchoolListRequest handles the school list request.
func (sh *schoolHandler) HandleSchoolListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	schools, svcErr := sh.schoolService.GetSchoolList(r.Context())
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(schools); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleSchoolGetRequest handles the school get request.
func (sh *schoolHandler) HandleSchoolGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	school, svcErr := sh.schoolService.GetSchool(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(school); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleSchoolPutRequest handles the school update request.
func (sh *schoolHandler) HandleSchoolPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[SchoolRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	school, svcErr := sh.schoolService.UpdateSchool(r.Context(), r.PathValue("id"), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(school); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("School PUT response sent", log.String("schoolID", school.ID))
}

// HandleSchoolDeleteRequest handles the school delete request.
func (sh *schoolHandler) HandleSchoolDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	svcErr := sh.schoolService.DeleteSchool(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleClassPostRequest handles the class creation request.
func (sh *schoolHandler) HandleClassPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[ClassRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	class, svcErr := sh.schoolService.CreateClass(r.Context(), r.PathValue("id"), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(class); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Class POST response sent", log.String("classID", class.ID))
}

// HandleClassListRequest handles the class list request.
func (sh *schoolHandler) HandleClassListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	classes, svcErr := sh.schoolService.GetClassList(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(classes); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleClassGetRequest handles the class get request.
func (sh *schoolHandler) HandleClassGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	class, svcErr := sh.schoolService.GetClass(r.Context(), r.PathValue("id"), r.PathValue("classID"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(class); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleClassPutRequest handles the class update request.
func (sh *schoolHandler) HandleClassPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[ClassRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	class, svcErr := sh.schoolService.UpdateClass(r.Context(), r.PathValue("id"), r.PathValue("classID"), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(class); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Class PUT response sent", log.String("classID", class.ID))
}

// HandleClassDeleteRequest handles the class delete request.
func (sh *schoolHandler) HandleClassDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	svcErr := sh.schoolService.DeleteClass(r.Context(), r.PathValue("id"), r.PathValue("classID"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
	case ErrorSchoolNotFound.Code, ErrorClassNotFound.Code:
		return http.StatusNotFound
	case ErrorSchoolAlreadyExists.Code, ErrorClassAlreadyExists.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
