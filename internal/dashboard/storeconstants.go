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

package dashboard

import "github.com/campushq/campus/internal/system/database/model"

var (
	// queryCountSchools is the query to count all schools.
	queryCountSchools = model.DBQuery{
		ID:    "DSQ-DASH_MGT-01",
		Query: "SELECT COUNT(*) as total FROM SCHOOL",
	}
	// queryCountUsersByRole is the query to count users with a given role.
	queryCountUsersByRole = model.DBQuery{
		ID:    "DSQ-DASH_MGT-02",
		Query: "SELECT COUNT(*) as total FROM \"USER\" WHERE ROLE = $1",
	}
	// queryCountClasses is the query to count all classes.
	queryCountClasses = model.DBQuery{
		ID:    "DSQ-DASH_MGT-03",
		Query: "SELECT COUNT(*) as total FROM CLASS",
	}
	// queryCountActiveEnrollments is the query to count active enrollments.
	queryCountActiveEnrollments = model.DBQuery{
		ID:    "DSQ-DASH_MGT-04",
		Query: "SELECT COUNT(*) as total FROM ENROLLMENT WHERE STATUS = 'active'",
	}
	// queryCountPublishedStories is the query to count published stories.
	queryCountPublishedStories = model.DBQuery{
		ID:    "DSQ-DASH_MGT-05",
		Query: "SELECT COUNT(*) as total FROM STORY WHERE STATUS = 'published'",
	}
	// queryCountUsersByRoleAndSchool is the query to count users with a given role in a school.
	queryCountUsersByRoleAndSchool = model.DBQuery{
		ID:    "DSQ-DASH_MGT-06",
		Query: "SELECT COUNT(*) as total FROM \"USER\" WHERE ROLE = $1 AND SCHOOL_ID = $2",
	}
	// queryCountClassesBySchool is the query to count the classes of a school.
	queryCountClassesBySchool = model.DBQuery{
		ID:    "DSQ-DASH_MGT-07",
		Query: "SELECT COUNT(*) as total FROM CLASS WHERE SCHOOL_ID = $1",
	}
	// queryCountActiveEnrollmentsBySchool is the query to count the active enrollments of a school.
	queryCountActiveEnrollmentsBySchool = model.DBQuery{
		ID:    "DSQ-DASH_MGT-08",
		Query: "SELECT COUNT(*) as total FROM ENROLLMENT WHERE STATUS = 'active' AND SCHOOL_ID = $1",
	}
	// queryCountPublishedStoriesBySchool is the query to count the published stories of a school.
	queryCountPublishedStoriesBySchool = model.DBQuery{
		ID:    "DSQ-DASH_MGT-09",
		Query: "SELECT COUNT(*) as total FROM STORY WHERE STATUS = 'published' AND SCHOOL_ID = $1",
	}
	// queryMonthlyEnrollmentCounts is the query to count enrollments grouped by
	// calendar month. Enrollment timestamps are stored as RFC 3339 strings, so
	// the first seven characters give the YYYY-MM bucket.
	queryMonthlyEnrollmentCounts = model.DBQuery{
		ID: "DSQ-DASH_MGT-10",
		Query: "SELECT SUBSTR(ENROLLED_AT, 1, 7) as month, COUNT(*) as total FROM ENROLLMENT " +
			"WHERE ENROLLED_AT >= $1 GROUP BY SUBSTR(ENROLLED_AT, 1, 7) ORDER BY month",
	}
)
