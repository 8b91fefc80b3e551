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
	"errors"

	"github.com/campushq/campus/internal/system/error/serviceerror"
)

// Internal error kinds produced by the remote store adapter. They never cross
// the facade boundary; the facade collapses them to misses and no-ops.
var (
	// ErrRemoteUnavailable is returned when the remote store is not configured or not reachable.
	ErrRemoteUnavailable = errors.New("remote cache store is unavailable")
	// ErrRemoteReadFailed is returned when a read operation against the remote store fails.
	ErrRemoteReadFailed = errors.New("remote cache read failed")
	// ErrRemoteWriteFailed is returned when a write or delete operation against the remote store fails.
	ErrRemoteWriteFailed = errors.New("remote cache write failed")
	// ErrPatternEnumerationFailed is returned when enumerating keys for a pattern fails.
	ErrPatternEnumerationFailed = errors.New("remote cache pattern enumeration failed")

	// ErrInvalidPattern is returned for wildcard patterns other than a single trailing wildcard.
	ErrInvalidPattern = errors.New("only trailing wildcard patterns are supported")
)

// Errors returned by the cache status API.
var (
	// ErrorInternalServerError is the error returned when a status request cannot be served.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "CAC-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
