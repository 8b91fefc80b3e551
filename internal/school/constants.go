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

import (
	"fmt"
	"time"
)

// SchoolStatus represents the operational status of a school.
type SchoolStatus string

const (
	// SchoolStatusActive represents a school that is in operation.
	SchoolStatusActive SchoolStatus = "active"
	// SchoolStatusInactive represents a school that has been deactivated.
	SchoolStatusInactive SchoolStatus = "inactive"
)

// supportedSchoolStatuses lists all the supported school statuses.
var supportedSchoolStatuses = []SchoolStatus{
	SchoolStatusActive,
	SchoolStatusInactive,
}

const (
	// minGradeLevel is the lowest grade level a class may declare.
	minGradeLevel = 1
	// maxGradeLevel is the highest grade level a class may declare.
	maxGradeLevel = 13
)

// schoolProfileCacheTTL is the TTL applied to cached school profiles.
const schoolProfileCacheTTL = 300 * time.Second

// adminStatsCachePattern matches the aggregate dashboard statistic entries.
const adminStatsCachePattern = "admin:stats:*"

// schoolProfileCacheKey returns the cache key holding the profile of a school.
func schoolProfileCacheKey(schoolID string) string {
	return fmt.Sprintf("school:%s:profile", schoolID)
}

// schoolCachePattern matches every cache entry scoped to a school.
func schoolCachePattern(schoolID string) string {
	return fmt.Sprintf("school:%s:*", schoolID)
}
