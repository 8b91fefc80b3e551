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

// AdminStats holds platform-wide aggregate counts for the admin dashboard.
type AdminStats struct {
	Schools           int `json:"schools"`
	Students          int `json:"students"`
	Teachers          int `json:"teachers"`
	Classes           int `json:"classes"`
	ActiveEnrollments int `json:"active_enrollments"`
	PublishedStories  int `json:"published_stories"`
}

// SchoolStats holds aggregate counts scoped to a single school.
type SchoolStats struct {
	SchoolID          string `json:"school_id"`
	Students          int    `json:"students"`
	Teachers          int    `json:"teachers"`
	Classes           int    `json:"classes"`
	ActiveEnrollments int    `json:"active_enrollments"`
	PublishedStories  int    `json:"published_stories"`
}

// TrendPoint is a single month on an enrollment trend chart. Month uses the
// YYYY-MM format.
type TrendPoint struct {
	Month       string `json:"month"`
	Enrollments int    `json:"enrollments"`
}

// EnrollmentTrends is a chart series of monthly enrollment counts ending at
// the current month.
type EnrollmentTrends struct {
	Months int          `json:"months"`
	Points []TrendPoint `json:"points"`
}
