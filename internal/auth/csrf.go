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
	"sync"
	"time"

	"github.com/campushq/campus/internal/system/utils"
)

// csrfTokenStore keeps issued CSRF tokens in memory. Tokens are single use
// and expire after the configured validity period.
type csrfTokenStore struct {
	tokens   map[string]time.Time
	validity time.Duration
	mu       sync.Mutex
}

// newCSRFTokenStore creates a CSRF token store with the given validity period.
func newCSRFTokenStore(validity time.Duration) *csrfTokenStore {
	return &csrfTokenStore{
		tokens:   make(map[string]time.Time),
		validity: validity,
	}
}

// Issue generates a new CSRF token and records its expiry. Expired tokens
// are purged on each issue to keep the store bounded.
func (cts *csrfTokenStore) Issue() string {
	token := utils.GenerateUUID()

	cts.mu.Lock()
	defer cts.mu.Unlock()

	now := time.Now()
	for existing, expiry := range cts.tokens {
		if !now.Before(expiry) {
			delete(cts.tokens, existing)
		}
	}

	cts.tokens[token] = now.Add(cts.validity)
	return token
}

// Consume validates and removes a CSRF token. It returns true only when the
// token exists and has not expired; a token can be consumed at most once.
func (cts *csrfTokenStore) Consume(token string) bool {
	if token == "" {
		return false
	}

	cts.mu.Lock()
	defer cts.mu.Unlock()

	expiry, exists := cts.tokens[token]
	if !exists {
		return false
	}
	delete(cts.tokens, token)

	return time.Now().Before(expiry)
}
