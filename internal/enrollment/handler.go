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

package enrollment

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/error/apierror"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	sysutils "github.com/campushq/campus/internal/system/utils"
)

const handlerLoggerComponentName = "EnrollmentHandler"

// enrollmentHandler is the handler for enrollment operations.
type enrollmentHandler struct {
	enrollmentService EnrollmentServiceInterface
}

// newEnrollmentHandler creates a new instance of enrollmentHandler.
func newEnrollmentHandler(enrollmentService EnrollmentServiceInterface) *enrollmentHandler {
	return &enrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

// HandleEnrollmentPostRequest handles the enroll request.
func (eh *enrollmentHandler) HandleEnrollmentPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[EnrollRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	enrollment, svcErr := eh.enrollmentService.Enroll(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(enrollment); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleEnrollmentListRequest handles the list enrollments request. The list
// is filtered by exactly one of the class_id or student_id query parameters.
func (eh *enrollmentHandler) HandleEnrollmentListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	query := r.URL.Query()
	classID := query.Get("class_id")
	studentID := query.Get("student_id")

	var enrollments []Enrollment
	var svcErr *serviceerror.ServiceError
	switch {
	case classID != "":
		enrollments, svcErr = eh.enrollmentService.ListByClass(r.Context(), classID)
	case studentID != "":
		enrollments, svcErr = eh.enrollmentService.ListByStudent(r.Context(), studentID)
	default:
		svcErr = &ErrorMissingListFilter
	}
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(enrollments); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleEnrollmentStatusPutRequest handles the update enrollment status request.
func (eh *enrollmentHandler) HandleEnrollmentStatusPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	enrollmentID := r.PathValue("id")
	request, err := sysutils.DecodeJSONBody[UpdateStatusRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	enrollment, svcErr := eh.enrollmentService.UpdateStatus(r.Context(), enrollmentID, request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(enrollment); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleEnrollmentDeleteRequest handles the withdraw request.
func (eh *enrollmentHandler) HandleEnrollmentDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	enrollmentID := r.PathValue("id")
	if svcErr := eh.enrollmentService.Withdraw(r.Context(), enrollmentID); svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeDecodeErrorResponse writes an invalid request format error response.
func writeDecodeErrorResponse(w http.ResponseWriter, err error, logger *log.Logger) {
	logger.Error("Failed to decode request body", log.Error(err))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        ErrorInvalidRequestFormat.Code,
		Message:     ErrorInvalidRequestFormat.Error,
		Description: "Failed to parse request body: " + err.Error(),
	}
	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeServiceErrorResponse writes an error response derived from the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	if svcErr.Type == serviceerror.ClientErrorType {
		w.WriteHeader(getClientErrorStatusCode(svcErr.Code))
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// getClientErrorStatusCode maps client error codes to HTTP status codes.
func getClientErrorStatusCode(code string) int {
	switch code {
	case ErrorEnrollmentNotFound.Code, ErrorStudentNotFound.Code, ErrorClassNotFound.Code:
		return http.StatusNotFound
	case ErrorDuplicateEnrollment.Code, ErrorClassFull.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
