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
	"time"

	"github.com/campushq/campus/internal/user"
)

const (
	// csrfTokenValidity is the lifetime of an issued CSRF token.
	csrfTokenValidity = 10 * time.Minute
	// defaultSessionValidity is used when no session validity period is configured.
	defaultSessionValidity = 30 * time.Minute

	// claimRole is the JWT claim carrying the user role.
	claimRole = "role"
	// claimSchoolID is the JWT claim carrying the school affiliation.
	claimSchoolID = "school_id"
	// claimSessionID is the JWT claim carrying the server side session identifier.
	claimSessionID = "jti"

	// defaultRedirectPath is returned when no role specific dashboard exists.
	defaultRedirectPath = "/dashboard"
)

// roleRedirectPaths maps user roles to their post-login dashboard paths.
var roleRedirectPaths = map[user.Role]string{
	user.RoleSuperAdmin: "/dashboard/super-admin",
	user.RoleAdmin:      "/dashboard/admin",
	user.RoleTeacher:    "/dashboard/teacher",
	user.RoleStudent:    "/dashboard/student",
}
