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

import "github.com/campushq/campus/internal/system/database/model"

var (
	// queryCreateStory is the query to create a new story.
	queryCreateStory = model.DBQuery{
		ID: "STQ-STORY_MGT-01",
		Query: "INSERT INTO STORY (STORY_ID, SCHOOL_ID, TITLE, CONTENT, AUTHOR_NAME, STATUS, PUBLISHED_AT, " +
			"CREATED_AT, UPDATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
	}
	// queryGetStoryByID is the query to get a story by story ID.
	queryGetStoryByID = model.DBQuery{
		ID: "STQ-STORY_MGT-02",
		Query: "SELECT STORY_ID, SCHOOL_ID, TITLE, CONTENT, AUTHOR_NAME, STATUS, PUBLISHED_AT, CREATED_AT, " +
			"UPDATED_AT FROM STORY WHERE STORY_ID = $1",
	}
	// queryGetStoriesBySchool is the query to get the stories of a school.
	queryGetStoriesBySchool = model.DBQuery{
		ID: "STQ-STORY_MGT-03",
		Query: "SELECT STORY_ID, SCHOOL_ID, TITLE, CONTENT, AUTHOR_NAME, STATUS, PUBLISHED_AT, CREATED_AT, " +
			"UPDATED_AT FROM STORY WHERE SCHOOL_ID = $1 ORDER BY CREATED_AT DESC",
	}
	// queryGetPublishedStories is the query to get a page of published stories.
	queryGetPublishedStories = model.DBQuery{
		ID: "STQ-STORY_MGT-04",
		Query: "SELECT STORY_ID, SCHOOL_ID, TITLE, CONTENT, AUTHOR_NAME, STATUS, PUBLISHED_AT, CREATED_AT, " +
			"UPDATED_AT FROM STORY WHERE STATUS = 'published' ORDER BY PUBLISHED_AT DESC LIMIT $1 OFFSET $2",
	}
	// queryGetPublishedStoryCount is the query to get the total count of published stories.
	queryGetPublishedStoryCount = model.DBQuery{
		ID:    "STQ-STORY_MGT-05",
		Query: "SELECT COUNT(*) as total FROM STORY WHERE STATUS = 'published'",
	}
	// queryUpdateStoryByID is the query to update a story by story ID.
	queryUpdateStoryByID = model.DBQuery{
		ID: "STQ-STORY_MGT-06",
		Query: "UPDATE STORY SET TITLE = $2, CONTENT = $3, AUTHOR_NAME = $4, STATUS = $5, PUBLISHED_AT = $6, " +
			"UPDATED_AT = $7 WHERE STORY_ID = $1",
	}
	// queryDeleteStoryByID is the query to delete a story by story ID.
	queryDeleteStoryByID = model.DBQuery{
		ID:    "STQ-STORY_MGT-07",
		Query: "DELETE FROM STORY WHERE STORY_ID = $1",
	}
)
