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
	"slices"
	"time"

	"github.com/campushq/campus/internal/system/config"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/jwt"
	"github.com/campushq/campus/internal/system/log"
	"github.com/campushq/campus/internal/system/utils"
	"github.com/campushq/campus/internal/user"
)

const loggerComponentName = "AuthService"

// AuthServiceInterface defines the interface for the authentication service.
type AuthServiceInterface interface {
	GetCSRFToken(ctx context.Context) (*CSRFTokenResponse, *serviceerror.ServiceError)
	Login(ctx context.Context, request *LoginRequest) (*LoginResponse, *serviceerror.ServiceError)
	Authenticate(ctx context.Context, bearerToken string, roles ...string) (*Principal,
		*serviceerror.ServiceError)
	GetCurrentUser(ctx context.Context, bearerToken string) (*user.User, *serviceerror.ServiceError)
	Logout(ctx context.Context, bearerToken string) *serviceerror.ServiceError
}

// authService is the default implementation of AuthServiceInterface.
type authService struct {
	userService user.UserServiceInterface
	jwtService  jwt.JWTServiceInterface
	sessions    *sessionStore
	csrfTokens  *csrfTokenStore
}

// newAuthService creates a new instance of authService.
func newAuthService(userService user.UserServiceInterface) AuthServiceInterface {
	authConfig := config.GetCampusRuntime().Config.Auth
	sessionValidity := time.Duration(authConfig.Session.ValidityPeriod) * time.Second

	return &authService{
		userService: userService,
		jwtService:  jwt.GetJWTService(),
		sessions:    newSessionStore(sessionValidity),
		csrfTokens:  newCSRFTokenStore(csrfTokenValidity),
	}
}

// GetCSRFToken issues a new single use CSRF token for the login form.
func (as *authService) GetCSRFToken(ctx context.Context) (*CSRFTokenResponse, *serviceerror.ServiceError) {
	return &CSRFTokenResponse{Token: as.csrfTokens.Issue()}, nil
}

// Login verifies the CSRF token and the user credentials, creates a login
// session, and issues a signed JWT referencing the session.
func (as *authService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request == nil {
		return nil, &ErrorInvalidRequestFormat
	}
	if !as.csrfTokens.Consume(request.CSRFToken) {
		return nil, &ErrorInvalidCSRFToken
	}

	authenticatedUser, svcErr := as.userService.VerifyCredentials(ctx, request.Email, request.Password)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ServerErrorType {
			return nil, &ErrorInternalServerError
		}
		if svcErr.Code == user.ErrorUserDisabled.Code {
			return nil, &ErrorAccountDisabled
		}
		return nil, &ErrorInvalidCredentials
	}

	sessionID := utils.GenerateUUID()
	as.sessions.Add(sessionID, sessionData{
		UserID:   authenticatedUser.ID,
		Role:     string(authenticatedUser.Role),
		SchoolID: authenticatedUser.SchoolID,
	})

	claims := map[string]interface{}{
		claimRole:      string(authenticatedUser.Role),
		claimSchoolID:  authenticatedUser.SchoolID,
		claimSessionID: sessionID,
	}
	validityPeriod := config.GetCampusRuntime().Config.Auth.JWT.ValidityPeriod
	token, _, err := as.jwtService.GenerateJWT(authenticatedUser.ID, "", "", validityPeriod, claims)
	if err != nil {
		as.sessions.Remove(sessionID)
		logger.Error("Failed to generate JWT for login", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("User logged in", log.String("userID", authenticatedUser.ID),
		log.String("role", string(authenticatedUser.Role)))

	return &LoginResponse{
		Token:        token,
		User:         *authenticatedUser,
		RedirectPath: redirectPathForRole(authenticatedUser.Role),
	}, nil
}

// Authenticate validates the bearer token and resolves the login session it
// references. When roles are given, the session role must be one of them.
func (as *authService) Authenticate(ctx context.Context, bearerToken string, roles ...string) (*Principal,
	*serviceerror.ServiceError) {
	if bearerToken == "" {
		return nil, &ErrorMissingAuthorization
	}

	if err := as.jwtService.VerifyJWT(bearerToken, "", jwt.GetJWTTokenIssuer()); err != nil {
		return nil, &ErrorInvalidToken
	}

	claims, err := jwt.DecodeJWTPayload(bearerToken)
	if err != nil {
		return nil, &ErrorInvalidToken
	}
	sessionID, ok := claims[claimSessionID].(string)
	if !ok || sessionID == "" {
		return nil, &ErrorInvalidToken
	}

	session, found := as.sessions.Get(sessionID)
	if !found {
		return nil, &ErrorSessionExpired
	}

	if len(roles) > 0 && !slices.Contains(roles, session.Role) {
		return nil, &ErrorInsufficientPermissions
	}

	return &Principal{
		UserID:    session.UserID,
		Role:      session.Role,
		SchoolID:  session.SchoolID,
		SessionID: sessionID,
	}, nil
}

// GetCurrentUser returns the user bound to the bearer token's session.
func (as *authService) GetCurrentUser(ctx context.Context, bearerToken string) (*user.User,
	*serviceerror.ServiceError) {
	principal, svcErr := as.Authenticate(ctx, bearerToken)
	if svcErr != nil {
		return nil, svcErr
	}

	currentUser, svcErr := as.userService.GetUser(ctx, principal.UserID)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ServerErrorType {
			return nil, &ErrorInternalServerError
		}
		// The account behind the session no longer exists.
		as.sessions.Remove(principal.SessionID)
		return nil, &ErrorSessionExpired
	}
	return currentUser, nil
}

// Logout terminates the login session referenced by the bearer token. The
// operation is idempotent for already terminated sessions.
func (as *authService) Logout(ctx context.Context, bearerToken string) *serviceerror.ServiceError {
	if bearerToken == "" {
		return &ErrorMissingAuthorization
	}

	if err := as.jwtService.VerifyJWT(bearerToken, "", jwt.GetJWTTokenIssuer()); err != nil {
		return &ErrorInvalidToken
	}

	claims, err := jwt.DecodeJWTPayload(bearerToken)
	if err != nil {
		return &ErrorInvalidToken
	}
	sessionID, ok := claims[claimSessionID].(string)
	if !ok || sessionID == "" {
		return &ErrorInvalidToken
	}

	as.sessions.Remove(sessionID)
	return nil
}

// redirectPathForRole resolves the dashboard path for the given role.
func redirectPathForRole(role user.Role) string {
	if path, ok := roleRedirectPaths[role]; ok {
		return path
	}
	return defaultRedirectPath
}
