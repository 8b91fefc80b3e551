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

// Entry represents a single timetable slot of a class.
type Entry struct {
	ID        string `json:"id"`
	SchoolID  string `json:"school_id"`
	ClassID   string `json:"class_id"`
	TeacherID string `json:"teacher_id"`
	Subject   string `json:"subject"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EntryRequest represents the request payload for creating or updating a
// timetable entry.
type EntryRequest struct {
	ClassID   string `json:"class_id"`
	TeacherID string `json:"teacher_id"`
	Subject   string `json:"subject"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room,omitempty"`
}

// TimetableDay groups the timetable entries of a single day of the week.
type TimetableDay struct {
	DayOfWeek int     `json:"day_of_week"`
	Entries   []Entry `json:"entries"`
}

// Timetable is the week view of a class, grouped by day of the week.
type Timetable struct {
	SchoolID string         `json:"school_id"`
	ClassID  string         `json:"class_id"`
	Days     []TimetableDay `json:"days"`
}
