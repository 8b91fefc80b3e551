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

package enrollment

// Enrollment represents a student's enrollment in a class.
type Enrollment struct {
	ID         string           `json:"id"`
	StudentID  string           `json:"student_id"`
	ClassID    string           `json:"class_id"`
	SchoolID   string           `json:"school_id"`
	Status     EnrollmentStatus `json:"status"`
	EnrolledAt string           `json:"enrolled_at"`
}

// EnrollRequest represents the request body for enrolling a student in a class.
type EnrollRequest struct {
	StudentID string `json:"student_id"`
	ClassID   string `json:"class_id"`
	SchoolID  string `json:"school_id"`
}

// UpdateStatusRequest represents the request body for updating an enrollment status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
