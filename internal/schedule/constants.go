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

import (
	"fmt"
	"time"
)

const (
	// minDayOfWeek is Monday per ISO 8601 day numbering.
	minDayOfWeek = 1
	// maxDayOfWeek is Sunday per ISO 8601 day numbering.
	maxDayOfWeek = 7
)

// timetableCacheTTL is the TTL applied to cached class timetables.
const timetableCacheTTL = 600 * time.Second

// timetableCacheKey returns the cache key holding the timetable of a class.
func timetableCacheKey(schoolID, classID string) string {
	return fmt.Sprintf("school:%s:schedule:%s", schoolID, classID)
}

// scheduleCachePattern matches every cached timetable of a school.
func scheduleCachePattern(schoolID string) string {
	return fmt.Sprintf("school:%s:schedule:*", schoolID)
}
