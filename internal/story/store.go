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
	"fmt"
	"strconv"

	"github.com/campushq/campus/internal/system/database/provider"
	"github.com/campushq/campus/internal/system/log"
)

// storyStoreInterface defines the interface for story store operations.
type storyStoreInterface interface {
	CreateStory(story Story) error
	GetStoryByID(storyID string) (*Story, error)
	GetStoriesBySchool(schoolID string) ([]Story, error)
	GetPublishedStories(limit, offset int) ([]Story, error)
	GetPublishedStoryCount() (int, error)
	UpdateStory(story *Story) error
	DeleteStory(storyID string) error
}

// storyStore is the default implementation of storyStoreInterface.
type storyStore struct {
	dbProvider provider.DBProviderInterface
}

// newStoryStore creates a new instance of storyStore.
func newStoryStore() storyStoreInterface {
	return &storyStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateStory persists a new story.
func (ss *storyStore) CreateStory(story Story) error {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateStory, story.ID, story.SchoolID, story.Title, story.Content,
		story.AuthorName, string(story.Status), story.PublishedAt, story.CreatedAt, story.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetStoryByID retrieves a story by ID.
func (ss *storyStore) GetStoryByID(storyID string) (*Story, error) {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetStoryByID, storyID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrStoryNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	story, err := buildStoryFromResultRow(results[0])
	if err != nil {
		return nil, fmt.Errorf("failed to build story from result row: %w", err)
	}
	return story, nil
}

// GetStoriesBySchool retrieves the stories of a school, newest first.
func (ss *storyStore) GetStoriesBySchool(schoolID string) ([]Story, error) {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetStoriesBySchool, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return buildStoriesFromResultRows(results)
}

// GetPublishedStories retrieves one page of published stories, newest first.
func (ss *storyStore) GetPublishedStories(limit, offset int) ([]Story, error) {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetPublishedStories, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return buildStoriesFromResultRows(results)
}

// GetPublishedStoryCount retrieves the total count of published stories.
func (ss *storyStore) GetPublishedStoryCount() (int, error) {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetPublishedStoryCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("count query returned no results")
	}

	return parseCountResult(results[0])
}

// UpdateStory updates a story by ID.
func (ss *storyStore) UpdateStory(story *Story) error {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateStoryByID, story.ID, story.Title, story.Content,
		story.AuthorName, string(story.Status), story.PublishedAt, story.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrStoryNotFound
	}
	return nil
}

// DeleteStory deletes a story by ID. The operation is idempotent.
func (ss *storyStore) DeleteStory(storyID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "StoryStore"))

	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeleteStoryByID, storyID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		logger.Debug("Story not found with id: " + storyID)
	}
	return nil
}

// buildStoriesFromResultRows constructs stories from database result rows.
func buildStoriesFromResultRows(results []map[string]interface{}) ([]Story, error) {
	stories := make([]Story, 0, len(results))
	for _, row := range results {
		story, err := buildStoryFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build story from result row: %w", err)
		}
		stories = append(stories, *story)
	}
	return stories, nil
}

// buildStoryFromResultRow constructs a Story from a database result row.
func buildStoryFromResultRow(row map[string]interface{}) (*Story, error) {
	storyID, err := rowString(row, "story_id")
	if err != nil {
		return nil, err
	}
	schoolID, err := rowString(row, "school_id")
	if err != nil {
		return nil, err
	}
	title, err := rowString(row, "title")
	if err != nil {
		return nil, err
	}
	content, err := rowString(row, "content")
	if err != nil {
		return nil, err
	}
	authorName, err := rowString(row, "author_name")
	if err != nil {
		return nil, err
	}
	status, err := rowString(row, "status")
	if err != nil {
		return nil, err
	}
	publishedAt, err := rowString(row, "published_at")
	if err != nil {
		return nil, err
	}
	createdAt, err := rowString(row, "created_at")
	if err != nil {
		return nil, err
	}
	updatedAt, err := rowString(row, "updated_at")
	if err != nil {
		return nil, err
	}

	return &Story{
		ID:          storyID,
		SchoolID:    schoolID,
		Title:       title,
		Content:     content,
		AuthorName:  authorName,
		Status:      StoryStatus(status),
		PublishedAt: publishedAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// parseCountResult extracts the total count from a count query result row.
func parseCountResult(row map[string]interface{}) (int, error) {
	total, ok := row["total"]
	if !ok {
		return 0, fmt.Errorf("total count not found in query result")
	}

	switch v := total.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		count, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("failed to parse total count: %w", err)
		}
		return count, nil
	default:
		return 0, fmt.Errorf("unexpected type for total count: %T", total)
	}
}

// rowString extracts a string column from a result row.
func rowString(row map[string]interface{}, column string) (string, error) {
	switch value := row[column].(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case []byte:
		return string(value), nil
	default:
		return "", fmt.Errorf("failed to parse %s as string", column)
	}
}
