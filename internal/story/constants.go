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
	"time"
)

// StoryStatus represents the publication status of a story.
type StoryStatus string

const (
	// StoryStatusDraft represents a story that is not publicly visible.
	StoryStatusDraft StoryStatus = "draft"
	// StoryStatusPublished represents a story listed on the public site.
	StoryStatusPublished StoryStatus = "published"
)

// publishedStoriesCacheTTL is the TTL applied to cached published-story pages.
const publishedStoriesCacheTTL = 300 * time.Second

// storiesCachePattern matches every cached story entry.
const storiesCachePattern = "stories:*"

// publishedStoriesCacheKey returns the cache key holding one page of the
// public published-story listing.
func publishedStoriesCacheKey(offset, limit int) string {
	return fmt.Sprintf("stories:published:p%d:n%d", offset, limit)
}
