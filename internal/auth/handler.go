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
	"encoding/json"
	"net/http"
	"strings"

	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/error/apierror"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	sysutils "github.com/campushq/campus/internal/system/utils"
)

const handlerLoggerComponentName = "AuthHandler"

// authHandler is the handler for authentication operations.
type authHandler struct {
	authService AuthServiceInterface
}

// newAuthHandler creates a new instance of authHandler.
func newAuthHandler(authService AuthServiceInterface) *authHandler {
	return &authHandler{
		authService: authService,
	}
}

// HandleCSRFTokenRequest handles the CSRF token request.
func (ah *authHandler) HandleCSRFTokenRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	tokenResponse, svcErr := ah.authService.GetCSRFToken(r.Context())
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tokenResponse); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleLoginRequest handles the login request.
func (ah *authHandler) HandleLoginRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[LoginRequest](r)
	if err != nil {
		writeDecodeErrorResponse(w, err, logger)
		return
	}

	loginResponse, svcErr := ah.authService.Login(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(loginResponse); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleMeRequest handles the current user request.
func (ah *authHandler) HandleMeRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	token, ok := extractBearerToken(r)
	if !ok {
		writeServiceErrorResponse(w, &ErrorMissingAuthorization, logger)
		return
	}

	currentUser, svcErr := ah.authService.GetCurrentUser(r.Context(), token)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(currentUser); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleLogoutRequest handles the logout request.
func (ah *authHandler) HandleLogoutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	token, ok := extractBearerToken(r)
	if !ok {
		writeServiceErrorResponse(w, &ErrorMissingAuthorization, logger)
		return
	}

	if svcErr := ah.authService.Logout(r.Context(), token); svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// extractBearerToken extracts the bearer token from the Authorization header.
func extractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get(serverconst.AuthorizationHeaderName)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], serverconst.TokenTypeBearer) {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// writeDecodeErrorResponse writes an invalid request format error response.
func writeDecodeErrorResponse(w http.ResponseWriter, err error, logger *log.Logger) {
	logger.Error("Failed to decode request body", log.Error(err))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        ErrorInvalidRequestFormat.Code,
		Message:     ErrorInvalidRequestFormat.Error,
		Description: "Failed to parse request body: " + err.Error(),
	}
	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeServiceErrorResponse writes an error response derived from the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	if svcErr.Type == serviceerror.ClientErrorType {
		w.WriteHeader(getClientErrorStatusCode(svcErr.Code))
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// getClientErrorStatusCode maps client error codes to HTTP status codes.
func getClientErrorStatusCode(code string) int {
	switch code {
	case ErrorInvalidCredentials.Code, ErrorMissingAuthorization.Code,
		ErrorInvalidToken.Code, ErrorSessionExpired.Code:
		return http.StatusUnauthorized
	case ErrorInvalidCSRFToken.Code, ErrorInsufficientPermissions.Code, ErrorAccountDisabled.Code:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
