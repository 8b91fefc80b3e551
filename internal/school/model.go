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

package school

// School represents a school registered in the system.
type School struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Address   string       `json:"address,omitempty"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Status    SchoolStatus `json:"status"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

// Class represents a class that belongs to a school.
type Class struct {
	ID                string `json:"id"`
	SchoolID          string `json:"school_id"`
	Name              string `json:"name"`
	GradeLevel        int    `json:"grade_level"`
	HomeroomTeacherID string `json:"homeroom_teacher_id,omitempty"`
	Capacity          int    `json:"capacity"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// SchoolRequest represents the request payload for creating or updating a school.
type SchoolRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Status  string `json:"status,omitempty"`
}

// ClassRequest represents the request payload for creating or updating a class.
type ClassRequest struct {
	Name              string `json:"name"`
	GradeLevel        int    `json:"grade_level"`
	HomeroomTeacherID string `json:"homeroom_teacher_id,omitempty"`
	Capacity          int    `json:"capacity"`
}
