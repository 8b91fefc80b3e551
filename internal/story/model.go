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

// Story represents a success story published by a school.
type Story struct {
	ID          string      `json:"id"`
	SchoolID    string      `json:"school_id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	AuthorName  string      `json:"author_name"`
	Status      StoryStatus `json:"status"`
	PublishedAt string      `json:"published_at,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// StoryRequest represents the request payload for creating or updating a story.
// The school of a story is fixed at creation and cannot be changed afterwards.
type StoryRequest struct {
	SchoolID   string `json:"school_id,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
}

// StoryListResponse represents the response payload for a paginated story list.
type StoryListResponse struct {
	TotalResults int     `json:"totalResults"`
	StartIndex   int     `json:"startIndex"`
	Count        int     `json:"count"`
	Stories      []Story `json:"stories"`
	Links        []Link  `json:"links"`
}

// Link represents a hypermedia link in a paginated response.
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}
