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
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cache"
	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	"github.com/campushq/campus/internal/system/utils"
)

const loggerComponentName = "StoryService"

// StoryServiceInterface defines the interface for story management operations.
type StoryServiceInterface interface {
	CreateStory(ctx context.Context, request *StoryRequest) (*Story, *serviceerror.ServiceError)
	UpdateStory(ctx context.Context, storyID string, request *StoryRequest) (*Story, *serviceerror.ServiceError)
	PublishStory(ctx context.Context, storyID string) (*Story, *serviceerror.ServiceError)
	UnpublishStory(ctx context.Context, storyID string) (*Story, *serviceerror.ServiceError)
	DeleteStory(ctx context.Context, storyID string) *serviceerror.ServiceError
	GetStory(ctx context.Context, storyID string) (*Story, *serviceerror.ServiceError)
	ListBySchool(ctx context.Context, schoolID string) ([]Story, *serviceerror.ServiceError)
	ListPublished(ctx context.Context, limit, offset int) (*StoryListResponse, *serviceerror.ServiceError)
}

// storyService is the default implementation of StoryServiceInterface.
type storyService struct {
	storyStore    storyStoreInterface
	schoolService school.SchoolServiceInterface
	cacheService  cache.CacheServiceInterface
}

// newStoryService creates a new instance of storyService.
func newStoryService(schoolService school.SchoolServiceInterface,
	cacheService cache.CacheServiceInterface) StoryServiceInterface {
	return &storyService{
		storyStore:    newStoryStore(),
		schoolService: schoolService,
		cacheService:  cacheService,
	}
}

// CreateStory creates a new story in draft status.
func (ss *storyService) CreateStory(ctx context.Context, request *StoryRequest) (*Story,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request == nil || strings.TrimSpace(request.SchoolID) == "" ||
		strings.TrimSpace(request.Title) == "" || strings.TrimSpace(request.Content) == "" ||
		strings.TrimSpace(request.AuthorName) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	if _, svcErr := ss.schoolService.GetSchool(ctx, request.SchoolID); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorSchoolNotFound
		}
		return nil, &ErrorInternalServerError
	}

	now := time.Now().UTC().Format(time.RFC3339)
	story := Story{
		ID:         utils.GenerateUUID(),
		SchoolID:   request.SchoolID,
		Title:      strings.TrimSpace(request.Title),
		Content:    request.Content,
		AuthorName: strings.TrimSpace(request.AuthorName),
		Status:     StoryStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := ss.storyStore.CreateStory(story); err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to create story", err,
			log.String("schoolID", request.SchoolID))
	}

	ss.cacheService.InvalidateCachePattern(ctx, storiesCachePattern)
	logger.Debug("Successfully created story", log.String("storyID", story.ID))
	return &story, nil
}

// UpdateStory updates the title, content, and author of a story. The school and
// publication status are untouched.
func (ss *storyService) UpdateStory(ctx context.Context, storyID string, request *StoryRequest) (*Story,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(storyID) == "" {
		return nil, &ErrorInvalidStoryID
	}
	if request == nil || strings.TrimSpace(request.Title) == "" ||
		strings.TrimSpace(request.Content) == "" || strings.TrimSpace(request.AuthorName) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	story, svcErr := ss.loadStory(logger, storyID)
	if svcErr != nil {
		return nil, svcErr
	}

	story.Title = strings.TrimSpace(request.Title)
	story.Content = request.Content
	story.AuthorName = strings.TrimSpace(request.AuthorName)
	story.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ss.storyStore.UpdateStory(story); err != nil {
		if errors.Is(err, ErrStoryNotFound) {
			return nil, &ErrorStoryNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to update story", err,
			log.String("storyID", storyID))
	}

	ss.cacheService.InvalidateCachePattern(ctx, storiesCachePattern)
	return story, nil
}

// PublishStory marks a story as published and stamps the publication time.
// Publishing an already published story is a no-op.
func (ss *storyService) PublishStory(ctx context.Context, storyID string) (*Story,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(storyID) == "" {
		return nil, &ErrorInvalidStoryID
	}

	story, svcErr := ss.loadStory(logger, storyID)
	if svcErr != nil {
		return nil, svcErr
	}
	if story.Status == StoryStatusPublished {
		return story, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	story.Status = StoryStatusPublished
	story.PublishedAt = now
	story.UpdatedAt = now

	if err := ss.storyStore.UpdateStory(story); err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to publish story", err,
			log.String("storyID", storyID))
	}

	ss.cacheService.InvalidateCachePattern(ctx, storiesCachePattern)
	logger.Debug("Successfully published story", log.String("storyID", story.ID))
	return story, nil
}

// UnpublishStory reverts a story to draft status and clears the publication
// time. Unpublishing a draft story is a no-op.
func (ss *storyService) UnpublishStory(ctx context.Context, storyID string) (*Story,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(storyID) == "" {
		return nil, &ErrorInvalidStoryID
	}

	story, svcErr := ss.loadStory(logger, storyID)
	if svcErr != nil {
		return nil, svcErr
	}
	if story.Status == StoryStatusDraft {
		return story, nil
	}

	story.Status = StoryStatusDraft
	story.PublishedAt = ""
	story.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ss.storyStore.UpdateStory(story); err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to unpublish story", err,
			log.String("storyID", storyID))
	}

	ss.cacheService.InvalidateCachePattern(ctx, storiesCachePattern)
	return story, nil
}

// DeleteStory deletes a story. The operation is idempotent.
func (ss *storyService) DeleteStory(ctx context.Context, storyID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(storyID) == "" {
		return &ErrorInvalidStoryID
	}

	if _, err := ss.storyStore.GetStoryByID(storyID); err != nil {
		if errors.Is(err, ErrStoryNotFound) {
			return nil
		}
		return logErrorAndReturnServerError(logger, "Failed to retrieve story", err,
			log.String("storyID", storyID))
	}

	if err := ss.storyStore.DeleteStory(storyID); err != nil {
		return logErrorAndReturnServerError(logger, "Failed to delete story", err,
			log.String("storyID", storyID))
	}

	ss.cacheService.InvalidateCachePattern(ctx, storiesCachePattern)
	return nil
}

// GetStory retrieves a story by ID.
func (ss *storyService) GetStory(ctx context.Context, storyID string) (*Story, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(storyID) == "" {
		return nil, &ErrorInvalidStoryID
	}
	return ss.loadStory(logger, storyID)
}

// ListBySchool retrieves every story of a school, drafts included.
func (ss *storyService) ListBySchool(ctx context.Context, schoolID string) ([]Story,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	stories, err := ss.storyStore.GetStoriesBySchool(schoolID)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve stories", err,
			log.String("schoolID", schoolID))
	}
	return stories, nil
}

// ListPublished returns one page of the public published-story listing. Pages
// are read-through cached per (offset, limit) pair.
func (ss *storyService) ListPublished(ctx context.Context, limit, offset int) (*StoryListResponse,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validatePaginationParams(limit, offset); svcErr != nil {
		return nil, svcErr
	}

	cacheKey := publishedStoriesCacheKey(offset, limit)
	if cached, ok := cache.GetCacheAs[StoryListResponse](ctx, ss.cacheService, cacheKey); ok {
		return &cached, nil
	}

	totalResults, err := ss.storyStore.GetPublishedStoryCount()
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to count published stories", err)
	}

	stories, err := ss.storyStore.GetPublishedStories(limit, offset)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve published stories", err)
	}

	response := &StoryListResponse{
		TotalResults: totalResults,
		StartIndex:   offset + 1,
		Count:        len(stories),
		Stories:      stories,
		Links:        buildPaginationLinks("/stories/published", limit, offset, totalResults),
	}

	ss.cacheService.SetCache(ctx, cacheKey, *response, publishedStoriesCacheTTL)
	return response, nil
}

// loadStory retrieves a story by ID and maps store errors to service errors.
func (ss *storyService) loadStory(logger *log.Logger, storyID string) (*Story, *serviceerror.ServiceError) {
	story, err := ss.storyStore.GetStoryByID(storyID)
	if err != nil {
		if errors.Is(err, ErrStoryNotFound) {
			return nil, &ErrorStoryNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve story", err,
			log.String("storyID", storyID))
	}
	return story, nil
}

// validatePaginationParams validates the limit and offset query parameters.
func validatePaginationParams(limit, offset int) *serviceerror.ServiceError {
	if limit < 1 || limit > serverconst.MaxPageSize {
		return &ErrorInvalidLimit
	}
	if offset < 0 {
		return &ErrorInvalidOffset
	}
	return nil
}

// buildPaginationLinks constructs pagination links for a list response.
func buildPaginationLinks(path string, limit, offset, totalResults int) []Link {
	links := make([]Link, 0, 4)

	if offset > 0 {
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=0&limit=%d", path, limit),
			Rel:  "first",
		})

		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=%d&limit=%d", path, prevOffset, limit),
			Rel:  "prev",
		})
	}

	if offset+limit < totalResults {
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=%d&limit=%d", path, offset+limit, limit),
			Rel:  "next",
		})
	}

	if totalResults > 0 {
		lastPageOffset := ((totalResults - 1) / limit) * limit
		if offset < lastPageOffset {
			links = append(links, Link{
				Href: fmt.Sprintf("%s?offset=%d&limit=%d", path, lastPageOffset, limit),
				Rel:  "last",
			})
		}
	}

	return links
}

// logErrorAndReturnServerError logs the error and returns a generic server error.
func logErrorAndReturnServerError(logger *log.Logger, message string, err error,
	additionalFields ...log.Field) *serviceerror.ServiceError {
	fields := append(additionalFields, log.Error(err))
	logger.Error(message, fields...)
	return &ErrorInternalServerError
}
