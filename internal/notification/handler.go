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

package notification

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/error/apierror"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	sysutils "github.com/campushq/campus/internal/system/utils"
)

const handlerLoggerComponentName = "NotificationHandler"

// notificationHandler is the handler for announcement and sender management operations.
type notificationHandler struct {
	notificationService NotificationServiceInterface
	senderService       SenderServiceInterface
}

// newNotificationHandler creates a new instance of notificationHandler.
func newNotificationHandler(notificationService NotificationServiceInterface,
	senderService SenderServiceInterface) *notificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		senderService:       senderService,
	}
}

// HandleAnnouncementPostRequest handles the announcement creation request.
func (nh *notificationHandler) HandleAnnouncementPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[AnnouncementRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	announcement, svcErr := nh.notificationService.CreateAnnouncement(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(announcement); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Announcement POST response sent", log.String("announcementID", announcement.ID))
}

// HandleAnnouncementGetRequest handles the announcement get request.
func (nh *notificationHandler) HandleAnnouncementGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	announcement, svcErr := nh.notificationService.GetAnnouncement(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(announcement); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleAnnouncementListRequest handles the per-school announcement list request.
func (nh *notificationHandler) HandleAnnouncementListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	announcements, svcErr := nh.notificationService.ListAnnouncements(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(announcements); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleAnnouncementDeleteRequest handles the announcement delete request.
func (nh *notificationHandler) HandleAnnouncementDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	svcErr := nh.notificationService.DeleteAnnouncement(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDispatchAttemptListRequest handles the dispatch attempt list request.
func (nh *notificationHandler) HandleDispatchAttemptListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	attempts, svcErr := nh.notificationService.ListDispatchAttempts(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(attempts); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleSenderPostRequest handles the message sender creation request.
func (nh *notificationHandler) HandleSenderPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[SenderRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	sender, svcErr := nh.senderService.CreateSender(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(sender); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Sender POST response sent", log.String("senderID", sender.ID))
}

// HandleSenderListRequest handles the message sender list request.
func (nh *notificationHandler) HandleSenderListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	senders, svcErr := nh.senderService.ListSenders(r.Context())
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(senders); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleSenderGetRequest handles the message sender get request.
func (nh *notificationHandler) HandleSenderGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	sender, svcErr := nh.senderService.GetSender(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sender); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleSenderPutRequest handles the message sender update request.
func (nh *notificationHandler) HandleSenderPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[SenderRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	sender, svcErr := nh.senderService.UpdateSender(r.Context(), r.PathValue("id"), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sender); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Sender PUT response sent", log.String("senderID", sender.ID))
}

// HandleSenderDeleteRequest handles the message sender delete request.
func (nh *notificationHandler) HandleSenderDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	svcErr := nh.senderService.DeleteSender(r.Context(), r.PathValue("id"))
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
	case ErrorAnnouncementNotFound.Code, ErrorSchoolNotFound.Code, ErrorSenderNotFound.Code:
		return http.StatusNotFound
	case ErrorDuplicateSenderName.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
