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

package middleware

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/campushq/campus/internal/system/config"
	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/error/apierror"
	"github.com/campushq/campus/internal/system/log"
)

const (
	defaultRateLimitMaxRequests   = 60
	defaultRateLimitWindowSeconds = 60

	// staleBucketAge is how long an idle client bucket is kept before the
	// next sweep drops it.
	staleBucketAge = 10 * time.Minute
	sweepInterval  = time.Minute
)

var errorTooManyRequests = apierror.ErrorResponse{
	Code:        "RTL-4290",
	Message:     "Too many requests",
	Description: "The rate limit for this resource has been exceeded. Try again later.",
}

// tokenBucket tracks the refillable request budget of a single client.
type tokenBucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimiter applies a token bucket per client key. The bucket capacity is
// the configured request count and it refills continuously over the window.
type RateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*tokenBucket
	capacity   float64
	refillRate float64
	retryAfter int
	lastSweep  time.Time
}

// NewRateLimiter creates a rate limiter from the given configuration.
// Missing values fall back to 60 requests per 60 second window.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	maxRequests := cfg.MaxRequests
	if maxRequests <= 0 {
		maxRequests = defaultRateLimitMaxRequests
	}
	windowSeconds := cfg.WindowSeconds
	if windowSeconds <= 0 {
		windowSeconds = defaultRateLimitWindowSeconds
	}

	refillRate := float64(maxRequests) / float64(windowSeconds)
	return &RateLimiter{
		buckets:    make(map[string]*tokenBucket),
		capacity:   float64(maxRequests),
		refillRate: refillRate,
		retryAfter: int(math.Ceil(1 / refillRate)),
		lastSweep:  time.Now(),
	}
}

// Allow reports whether the client identified by key may proceed, consuming
// one token when it may.
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > sweepInterval {
		rl.sweep(now)
	}

	bucket, exists := rl.buckets[key]
	if !exists {
		bucket = &tokenBucket{tokens: rl.capacity, lastRefill: now}
		rl.buckets[key] = bucket
	}

	elapsed := now.Sub(bucket.lastRefill)
	bucket.tokens = math.Min(rl.capacity, bucket.tokens+elapsed.Seconds()*rl.refillRate)
	bucket.lastRefill = now

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true
	}
	return false
}

// sweep drops buckets idle long enough to have refilled completely.
// Callers must hold the mutex.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, bucket := range rl.buckets {
		if now.Sub(bucket.lastRefill) > staleBucketAge {
			delete(rl.buckets, key)
		}
	}
	rl.lastSweep = now
}

// WithRateLimit wraps an HTTP handler with per client rate limiting.
// It returns the pattern and wrapped handler that can be registered with http.ServeMux.
func WithRateLimit(pattern string, handler http.HandlerFunc, limiter *RateLimiter) (string, http.HandlerFunc) {
	return pattern, func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(clientKey(r)) {
			logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RateLimitMiddleware"))
			logger.Debug("Request rejected by rate limiter", log.String("path", r.URL.Path))

			w.Header().Set("Retry-After", strconv.Itoa(limiter.retryAfter))
			w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
			w.WriteHeader(http.StatusTooManyRequests)

			if encodeErr := json.NewEncoder(w).Encode(errorTooManyRequests); encodeErr != nil {
				logger.Error("Error encoding error response", log.Error(encodeErr))
			}
			return
		}
		handler(w, r)
	}
}

// clientKey derives the limiter bucket key for a request. Behind a proxy the
// first address in X-Forwarded-For identifies the client.
func clientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx >= 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
