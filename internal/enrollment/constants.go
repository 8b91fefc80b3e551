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

import "fmt"

// EnrollmentStatus represents the status of an enrollment.
type EnrollmentStatus string

const (
	// EnrollmentStatusActive indicates an ongoing enrollment.
	EnrollmentStatusActive EnrollmentStatus = "active"
	// EnrollmentStatusCompleted indicates a finished enrollment.
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	// EnrollmentStatusWithdrawn indicates an enrollment the student left.
	EnrollmentStatusWithdrawn EnrollmentStatus = "withdrawn"
)

// supportedEnrollmentStatuses lists the enrollment statuses accepted by the service.
var supportedEnrollmentStatuses = []EnrollmentStatus{
	EnrollmentStatusActive,
	EnrollmentStatusCompleted,
	EnrollmentStatusWithdrawn,
}

const (
	// adminStatsCachePattern matches the cached dashboard statistics.
	adminStatsCachePattern = "admin:stats:*"
	// adminTrendsCachePattern matches the cached enrollment trend series.
	adminTrendsCachePattern = "admin:trends:*"
)

// schoolCachePattern returns the cache pattern covering all entries of a school.
func schoolCachePattern(schoolID string) string {
	return fmt.Sprintf("school:%s:*", schoolID)
}
