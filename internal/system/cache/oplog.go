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
	"fmt"
	"math"
	"sync"
	"time"
)

// operationLog is a fixed capacity ring buffer of cache operation records.
//
// The ring keeps the most recent records for diagnostics; the monotonic
// counters keep the full totals and reset only on clear. Writes advance a
// modulo index, so recording stays O(1) at any fill level.
type operationLog struct {
	mu       sync.RWMutex
	records  []OperationRecord
	capacity int
	next     int
	size     int

	hits   int64
	misses int64
	errors int64
}

func newOperationLog(capacity int) *operationLog {
	if capacity <= 0 {
		capacity = defaultOperationLogSize
	}
	return &operationLog{
		records:  make([]OperationRecord, capacity),
		capacity: capacity,
	}
}

// record appends an operation record, overwriting the oldest entry when full.
func (l *operationLog) record(rec OperationRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records[l.next] = rec
	l.next = (l.next + 1) % l.capacity
	if l.size < l.capacity {
		l.size++
	}

	switch rec.Result {
	case ResultHit:
		l.hits++
	case ResultMiss:
		l.misses++
	case ResultError:
		l.errors++
	}
}

// recent returns up to n records, newest first.
func (l *operationLog) recent(n int) []OperationRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 || n > l.size {
		n = l.size
	}

	out := make([]OperationRecord, 0, n)
	for i := 1; i <= n; i++ {
		idx := (l.next - i + l.capacity) % l.capacity
		out = append(out, l.records[idx])
	}
	return out
}

// stats returns the aggregate counters. HitRate is a percentage of reads that
// were hits; errors do not count against it.
func (l *operationLog) stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Stats{
		Hits:            l.hits,
		Misses:          l.misses,
		Errors:          l.errors,
		TotalOperations: l.hits + l.misses + l.errors,
	}

	reads := l.hits + l.misses
	if reads > 0 {
		rate := float64(l.hits) / float64(reads) * 100
		s.HitRate = math.Round(rate*100) / 100
	}
	return s
}

// patternBreakdown aggregates operation records by key pattern.
func patternBreakdown(records []OperationRecord) map[string]PatternStats {
	byPattern := make(map[string]PatternStats)
	totals := make(map[string]int64)

	for _, rec := range records {
		pattern := patternOf(rec.Key)

		ps := byPattern[pattern]
		ps.Count++
		switch rec.Result {
		case ResultHit:
			ps.Hits++
		case ResultMiss:
			ps.Misses++
		}
		byPattern[pattern] = ps
		totals[pattern] += rec.DurationMs
	}

	for pattern, ps := range byPattern {
		avg := float64(totals[pattern]) / float64(ps.Count)
		ps.AvgDurationMs = math.Round(avg*100) / 100
		byPattern[pattern] = ps
	}
	return byPattern
}

// clear drops all records and resets the counters.
func (l *operationLog) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = make([]OperationRecord, l.capacity)
	l.next = 0
	l.size = 0
	l.hits = 0
	l.misses = 0
	l.errors = 0
}

// debugLog is a fixed capacity ring buffer of timestamped diagnostic lines.
type debugLog struct {
	mu       sync.Mutex
	lines    []string
	capacity int
	next     int
	size     int
}

func newDebugLog(capacity int) *debugLog {
	if capacity <= 0 {
		capacity = defaultDebugLogSize
	}
	return &debugLog{
		lines:    make([]string, capacity),
		capacity: capacity,
	}
}

// addf records a formatted line prefixed with the current UTC timestamp.
func (d *debugLog) addf(format string, args ...interface{}) {
	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.lines[d.next] = line
	d.next = (d.next + 1) % d.capacity
	if d.size < d.capacity {
		d.size++
	}
}

// all returns the retained lines, oldest first.
func (d *debugLog) all() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, 0, d.size)
	for i := 0; i < d.size; i++ {
		idx := (d.next - d.size + i + d.capacity) % d.capacity
		out = append(out, d.lines[idx])
	}
	return out
}
