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

package schedule

import "github.com/campushq/campus/internal/system/database/model"

var (
	// queryCreateScheduleEntry is the query to create a new timetable entry.
	queryCreateScheduleEntry = model.DBQuery{
		ID: "SDQ-SCHEDULE_MGT-01",
		Query: "INSERT INTO SCHEDULE_ENTRY (ENTRY_ID, SCHOOL_ID, CLASS_ID, TEACHER_ID, SUBJECT, DAY_OF_WEEK, " +
			"START_TIME, END_TIME, ROOM, CREATED_AT, UPDATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
	}
	// queryGetScheduleEntryByID is the query to get a timetable entry by entry ID.
	queryGetScheduleEntryByID = model.DBQuery{
		ID: "SDQ-SCHEDULE_MGT-02",
		Query: "SELECT ENTRY_ID, SCHOOL_ID, CLASS_ID, TEACHER_ID, SUBJECT, DAY_OF_WEEK, START_TIME, END_TIME, " +
			"ROOM, CREATED_AT, UPDATED_AT FROM SCHEDULE_ENTRY WHERE ENTRY_ID = $1",
	}
	// queryGetScheduleEntriesByClass is the query to get the timetable entries of a class.
	queryGetScheduleEntriesByClass = model.DBQuery{
		ID: "SDQ-SCHEDULE_MGT-03",
		Query: "SELECT ENTRY_ID, SCHOOL_ID, CLASS_ID, TEACHER_ID, SUBJECT, DAY_OF_WEEK, START_TIME, END_TIME, " +
			"ROOM, CREATED_AT, UPDATED_AT FROM SCHEDULE_ENTRY WHERE CLASS_ID = $1 " +
			"ORDER BY DAY_OF_WEEK, START_TIME",
	}
	// queryGetScheduleEntriesBySchool is the query to get the timetable entries of a school.
	queryGetScheduleEntriesBySchool = model.DBQuery{
		ID: "SDQ-SCHEDULE_MGT-04",
		Query: "SELECT ENTRY_ID, SCHOOL_ID, CLASS_ID, TEACHER_ID, SUBJECT, DAY_OF_WEEK, START_TIME, END_TIME, " +
			"ROOM, CREATED_AT, UPDATED_AT FROM SCHEDULE_ENTRY WHERE SCHOOL_ID = $1 " +
			"ORDER BY DAY_OF_WEEK, START_TIME",
	}
	// queryGetConflictCandidates is the query to get the entries of a day that
	// share a class or teacher with a new entry.
	queryGetConflictCandidates = model.DBQuery{
		ID: "SDQ-SCHEDULE_MGT-05",
		Query: "SELECT ENTRY_ID, SCHOOL_ID, CLASS_ID, TEACHER_ID, SUBJECT, DAY_OF_WEEK, START_TIME, END_TIME, " +
			"ROOM, CREATED_AT, UPDATED_AT FROM SCHEDULE_ENTRY WHERE DAY_OF_WEEK = $1 " +
			"AND (CLASS_ID = $2 OR TEACHER_ID = $3)",
	}
	// queryUpdateScheduleEntryByID is the query to update a timetable entry by entry ID.
	queryUpdateScheduleEntryByID = model.DBQuery{
		ID: "SDQ-SCHEDULE_MGT-06",
		Query: "UPDATE SCHEDULE_ENTRY SET CLASS_ID = $2, TEACHER_ID = $3, SUBJECT = $4, DAY_OF_WEEK = $5, " +
			"START_TIME = $6, END_TIME = $7, ROOM = $8, UPDATED_AT = $9 WHERE ENTRY_ID = $1",
	}
	// queryDeleteScheduleEntryByID is the query to delete a timetable entry by entry ID.
	queryDeleteScheduleEntryByID = model.DBQuery{
		ID:    "SDQ-SCHEDULE_MGT-07",
		Query: "DELETE FROM SCHEDULE_ENTRY WHERE ENTRY_ID = $1",
	}
)
