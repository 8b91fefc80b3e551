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
	"context"
	"net/http"
	"sync"

	"github.com/campushq/campus/internal/system/log"
)

// principalContextKey is the context key under which the authenticated
// principal is stored.
type principalContextKey struct{}

var (
	authServiceInstance AuthServiceInterface
	authServiceMu       sync.RWMutex
)

// setAuthService sets the package level auth service used by the middleware.
func setAuthService(service AuthServiceInterface) {
	authServiceMu.Lock()
	defer authServiceMu.Unlock()
	authServiceInstance = service
}

// GetAuthService returns the initialized auth service instance.
func GetAuthService() AuthServiceInterface {
	authServiceMu.RLock()
	defer authServiceMu.RUnlock()
	return authServiceInstance
}

// WithSessionAuth wraps a handler with bearer token and session validation.
// When roles are given, the session role must be one of them. The resolved
// principal is stored in the request context.
func WithSessionAuth(pattern string, next http.HandlerFunc, roles ...string) (string, http.HandlerFunc) {
	return pattern, func(w http.ResponseWriter, r *http.Request) {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SessionAuthMiddleware"))

		service := GetAuthService()
		if service == nil {
			logger.Error("Auth service is not initialized")
			writeServiceErrorResponse(w, &ErrorInternalServerError, logger)
			return
		}

		token, ok := extractBearerToken(r)
		if !ok {
			writeServiceErrorResponse(w, &ErrorMissingAuthorization, logger)
			return
		}

		principal, svcErr := service.Authenticate(r.Context(), token, roles...)
		if svcErr != nil {
			writeServiceErrorResponse(w, svcErr, logger)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), principalContextKey{}, principal)))
	}
}

// PrincipalFromContext returns the authenticated principal stored in the
// context by WithSessionAuth.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(*Principal)
	return principal, ok
}
