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

package user

// User represents a user account. Credentials are stored separately and are
// never part of this structure.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	SchoolID  string     `json:"school_id,omitempty"`
	Status    UserStatus `json:"status"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// CreateUserRequest represents the request payload for creating a user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	SchoolID string `json:"school_id,omitempty"`
	Password string `json:"password"`
}

// UpdateUserRequest represents the request payload for updating a user.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	SchoolID string `json:"school_id,omitempty"`
	Status   string `json:"status,omitempty"`
}

// UserListResponse represents the response payload for a paginated user list.
type UserListResponse struct {
	TotalResults int    `json:"totalResults"`
	StartIndex   int    `json:"startIndex"`
	Count        int    `json:"count"`
	Users        []User `json:"users"`
	Links        []Link `json:"links"`
}

// Link represents a hypermedia link in a paginated response.
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

// credentialDTO carries the stored credential hash and salt of a user.
type credentialDTO struct {
	Hash string
	Salt string
}
