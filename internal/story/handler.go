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

package story

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/error/apierror"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	sysutils "github.com/campushq/campus/internal/system/utils"
)

const handlerLoggerComponentName = "StoryHandler"

// storyHandler is the handler for story management operations.
type storyHandler struct {
	storyService StoryServiceInterface
}

// newStoryHandler creates a new instance of storyHandler.
func newStoryHandler(storyService StoryServiceInterface) *storyHandler {
	return &storyHandler{
		storyService: storyService,
	}
}

// HandleStoryPostRequest handles the story creation request.
func (sh *storyHandler) HandleStoryPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[StoryRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	story, svcErr := sh.storyService.CreateStory(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(story); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Story POST response sent", log.String("storyID", story.ID))
}

// HandleStoryListRequest handles the per-school story list request.
func (sh *storyHandler) HandleStoryListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	stories, svcErr := sh.storyService.ListBySchool(r.Context(), r.URL.Query().Get("school_id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stories); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleStoryPublishedListRequest handles the public published-story list request.
func (sh *storyHandler) HandleStoryPublishedListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	limit, offset, svcErr := parsePaginationParams(r.URL.Query())
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	response, svcErr := sh.storyService.ListPublished(r.Context(), limit, offset)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleStoryGetRequest handles the story get request.
func (sh *storyHandler) HandleStoryGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	story, svcErr := sh.storyService.GetStory(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(story); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// HandleStoryPutRequest handles the story update request.
func (sh *storyHandler) HandleStoryPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[StoryRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	story, svcErr := sh.storyService.UpdateStory(r.Context(), r.PathValue("id"), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(story); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Story PUT response sent", log.String("storyID", story.ID))
}

// HandleStoryPublishRequest handles the story publish request.
func (sh *storyHandler) HandleStoryPublishRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	story, svcErr := sh.storyService.PublishStory(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(story); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Story publish response sent", log.String("storyID", story.ID))
}

// HandleStoryUnpublishRequest handles the story unpublish request.
func (sh *storyHandler) HandleStoryUnpublishRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	story, svcErr := sh.storyService.UnpublishStory(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(story); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}

	logger.Debug("Story unpublish response sent", log.String("storyID", story.ID))
}

// HandleStoryDeleteRequest handles the story delete request.
func (sh *storyHandler) HandleStoryDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	svcErr := sh.storyService.DeleteStory(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parsePaginationParams extracts the limit and offset query parameters.
func parsePaginationParams(query url.Values) (int, int, *serviceerror.ServiceError) {
	limit := 0
	offset := 0

	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, &ErrorInvalidLimit
		}
		limit = parsed
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil {
			return 0, 0, &ErrorInvalidOffset
		}
		offset = parsed
	}

	if limit == 0 {
		limit = serverconst.DefaultPageSize
	}
	return limit, offset, nil
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
	case ErrorStoryNotFound.Code, ErrorSchoolNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
