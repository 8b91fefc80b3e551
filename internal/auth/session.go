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
)

// sessionStoreEntry represents an entry in the session store.
type sessionStoreEntry struct {
	data       sessionData
	expiryTime time.Time
}

// sessionStore keeps login sessions in memory with a sliding expiry. Each
// successful lookup extends the session by the configured validity period.
type sessionStore struct {
	sessions map[string]sessionStoreEntry
	validity time.Duration
	mu       sync.RWMutex
}

// newSessionStore creates a session store with the given validity period.
func newSessionStore(validity time.Duration) *sessionStore {
	if validity <= 0 {
		validity = defaultSessionValidity
	}
	return &sessionStore{
		sessions: make(map[string]sessionStoreEntry),
		validity: validity,
	}
}

// Add stores a session under the given session ID.
func (ss *sessionStore) Add(sessionID string, data sessionData) {
	if sessionID == "" {
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.sessions[sessionID] = sessionStoreEntry{
		data:       data,
		expiryTime: time.Now().Add(ss.validity),
	}
}

// Get retrieves a session by session ID. Expired sessions are removed and
// live sessions have their expiry extended.
func (ss *sessionStore) Get(sessionID string) (sessionData, bool) {
	if sessionID == "" {
		return sessionData{}, false
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	entry, exists := ss.sessions[sessionID]
	if !exists {
		return sessionData{}, false
	}
	if !time.Now().Before(entry.expiryTime) {
		delete(ss.sessions, sessionID)
		return sessionData{}, false
	}

	entry.expiryTime = time.Now().Add(ss.validity)
	ss.sessions[sessionID] = entry
	return entry.data, true
}

// Remove deletes a session by session ID.
func (ss *sessionStore) Remove(sessionID string) {
	if sessionID == "" {
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, sessionID)
}

// Clear removes all sessions from the store.
func (ss *sessionStore) Clear() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.sessions = make(map[string]sessionStoreEntry)
}
