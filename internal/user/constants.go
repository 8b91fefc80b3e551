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

import (
	"fmt"
	"slices"
)

// Role represents the role of a user within the system.
type Role string

const (
	// RoleSuperAdmin represents a platform operator with access to every school.
	RoleSuperAdmin Role = "superadmin"
	// RoleAdmin represents a school administrator.
	RoleAdmin Role = "admin"
	// RoleTeacher represents a teaching staff member.
	RoleTeacher Role = "teacher"
	// RoleStudent represents an enrolled student.
	RoleStudent Role = "student"
)

// supportedRoles lists all the supported user roles.
var supportedRoles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleTeacher,
	RoleStudent,
}

// IsValidRole reports whether the given role is one of the supported user roles.
func IsValidRole(role Role) bool {
	return slices.Contains(supportedRoles, role)
}

// UserStatus represents the status of a user account.
type UserStatus string

const (
	// UserStatusActive represents an account that may sign in.
	UserStatusActive UserStatus = "active"
	// UserStatusDisabled represents an account that is blocked from signing in.
	UserStatusDisabled UserStatus = "disabled"
)

// supportedUserStatuses lists all the supported user statuses.
var supportedUserStatuses = []UserStatus{
	UserStatusActive,
	UserStatusDisabled,
}

// adminStatsCachePattern matches the cached dashboard statistics.
const adminStatsCachePattern = "admin:stats:*"

// schoolCachePattern returns the cache pattern covering all entries of a school.
func schoolCachePattern(schoolID string) string {
	return fmt.Sprintf("school:%s:*", schoolID)
}
