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

package cache

import "time"

const (
	// defaultCacheTTL is the TTL applied when SetCache is called without a positive TTL.
	defaultCacheTTL = 60 * time.Second
	// defaultOperationLogSize is the capacity of the operation log ring buffer.
	defaultOperationLogSize = 500
	// defaultDebugLogSize is the capacity of the debug log ring buffer.
	defaultDebugLogSize = 200
	// defaultOperationTimeout bounds a single remote store round trip.
	defaultOperationTimeout = 2 * time.Second
	// defaultKeyPrefix namespaces every key written by this application.
	defaultKeyPrefix = "campus"
	// recentOperationCount is the number of operations reported by the status endpoint.
	recentOperationCount = 20
	// recentDebugLogCount is the number of debug lines reported by the status endpoint.
	recentDebugLogCount = 20
	// scanBatchSize is the COUNT hint used when enumerating keys with SCAN.
	scanBatchSize = 100
)

// sourceRemoteStore identifies the backing store in operation records.
const sourceRemoteStore = "RemoteStore"

const (
	healthStatusHealthy       = "healthy"
	healthStatusUnhealthy     = "unhealthy"
	healthStatusNotConfigured = "not_configured"

	connectionStatusConnected    = "connected"
	connectionStatusDisconnected = "disconnected"
	connectionStatusDisabled     = "disabled"
)
