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

import (
	"strings"
	"time"
)

// OperationResult classifies the outcome of a recorded cache operation.
type OperationResult string

const (
	// ResultHit denotes a read that found a live entry.
	ResultHit OperationResult = "HIT"
	// ResultMiss denotes a read that found no entry.
	ResultMiss OperationResult = "MISS"
	// ResultError denotes an operation that failed inside the cache subsystem.
	ResultError OperationResult = "ERROR"
)

// OperationRecord captures a single cache operation for diagnostics.
type OperationRecord struct {
	Key        string          `json:"key"`
	Result     OperationResult `json:"result"`
	DurationMs int64           `json:"durationMs"`
	Source     string          `json:"source"`
	Timestamp  time.Time       `json:"timestamp"`
}

// Stats holds the aggregate cache counters derived from the operation log.
type Stats struct {
	Hits            int64   `json:"hits"`
	Misses          int64   `json:"misses"`
	Errors          int64   `json:"errors"`
	TotalOperations int64   `json:"totalOperations"`
	HitRate         float64 `json:"hitRate"`
}

// PatternStats holds the per key pattern breakdown of recent operations.
type PatternStats struct {
	Count         int     `json:"count"`
	Hits          int     `json:"hits"`
	Misses        int     `json:"misses"`
	AvgDurationMs float64 `json:"avgDurationMs"`
}

// RedisStatus describes the remote store connectivity for the status endpoint.
type RedisStatus struct {
	Available  bool    `json:"available"`
	Connected  bool    `json:"connected"`
	Health     string  `json:"health"`
	Status     string  `json:"status"`
	AvgLatency float64 `json:"avgLatency"`
}

// OperationsStatus groups the operation log view for the status endpoint.
type OperationsStatus struct {
	Recent    []OperationRecord       `json:"recent"`
	Total     int64                   `json:"total"`
	ByPattern map[string]PatternStats `json:"byPattern"`
}

// EnvironmentStatus reports cache related configuration presence without exposing secrets.
type EnvironmentStatus struct {
	RedisEnabled  bool `json:"redisEnabled"`
	HasRedisURL   bool `json:"hasRedisUrl"`
	HasRedisToken bool `json:"hasRedisToken"`
	IsServerless  bool `json:"isServerless"`
}

// StatusResponse is the body returned by the cache status endpoint.
type StatusResponse struct {
	Redis       RedisStatus       `json:"redis"`
	Cache       Stats             `json:"cache"`
	Operations  OperationsStatus  `json:"operations"`
	RecentLogs  []string          `json:"recentLogs"`
	Environment EnvironmentStatus `json:"environment"`
}

// ClearResponse is the body returned by the cache clear endpoint.
type ClearResponse struct {
	Cleared bool   `json:"cleared"`
	Message string `json:"message"`
}

// patternOf groups a logical key by its first two colon separated segments.
// Keys with fewer than two segments group under the whole key.
func patternOf(key string) string {
	segments := strings.SplitN(key, ":", 3)
	if len(segments) < 2 {
		return key
	}
	return segments[0] + ":" + segments[1]
}
