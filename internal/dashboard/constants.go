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

import (
	"fmt"
	"time"
)

const (
	// minTrendMonths and maxTrendMonths bound the enrollment trend window.
	minTrendMonths = 1
	maxTrendMonths = 24
	// defaultTrendMonths is used when the request does not specify a window.
	defaultTrendMonths = 6
)

const (
	adminStatsCacheKey = "admin:stats:global"

	adminStatsCacheTTL       = 300 * time.Second
	schoolStatsCacheTTL      = 300 * time.Second
	enrollmentTrendsCacheTTL = 900 * time.Second
)

// schoolStatsCacheKey returns the cache key for a school's aggregate counts.
func schoolStatsCacheKey(schoolID string) string {
	return fmt.Sprintf("school:%s:stats", schoolID)
}

// enrollmentTrendsCacheKey returns the cache key for an enrollment trend
// series covering the given number of months.
func enrollmentTrendsCacheKey(months int) string {
	return fmt.Sprintf("admin:trends:enrollment:%d", months)
}
