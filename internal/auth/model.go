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

package auth

import (
	"github.com/campushq/campus/internal/user"
)

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	CSRFToken string `json:"csrf_token"`
}

// LoginResponse represents the successful login response.
type LoginResponse struct {
	Token        string    `json:"token"`
	User         user.User `json:"user"`
	RedirectPath string    `json:"redirectPath"`
}

// CSRFTokenResponse represents the response for a CSRF token request.
type CSRFTokenResponse struct {
	Token string `json:"token"`
}

// Principal represents the authenticated caller resolved from a bearer token.
type Principal struct {
	UserID    string
	Role      string
	SchoolID  string
	SessionID string
}

// sessionData holds the server side state of a login session.
type sessionData struct {
	UserID   string
	Role     string
	SchoolID string
}
