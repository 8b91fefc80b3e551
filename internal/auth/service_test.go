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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/campushq/campus/internal/system/config"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/user"
	"github.com/campushq/campus/tests/mocks/jwtmock"
	"github.com/campushq/campus/tests/mocks/usermock"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUser *usermock.MockUserService
	mockJWT  *jwtmock.MockJWTService
	service  *authService
	ctx      context.Context
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) SetupTest() {
	config.ResetCampusRuntime()
	err := config.InitializeCampusRuntime("", &config.Config{
		Auth: config.AuthConfig{
			JWT:     config.JWTConfig{Issuer: "campus-test", ValidityPeriod: 3600},
			Session: config.SessionConfig{ValidityPeriod: 1800},
		},
	})
	suite.Require().NoError(err)

	suite.mockUser = &usermock.MockUserService{}
	suite.mockJWT = &jwtmock.MockJWTService{}
	suite.service = &authService{
		userService: suite.mockUser,
		jwtService:  suite.mockJWT,
		sessions:    newSessionStore(30 * time.Minute),
		csrfTokens:  newCSRFTokenStore(10 * time.Minute),
	}
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	config.ResetCampusRuntime()
}

func (suite *AuthServiceTestSuite) activeUser() *user.User {
	return &user.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Name:     "Admin User",
		Role:     user.RoleAdmin,
		SchoolID: "school-1",
		Status:   user.UserStatusActive,
	}
}

// login performs a full login against the service and returns the response.
func (suite *AuthServiceTestSuite) login() *LoginResponse {
	suite.mockUser.MockVerifyCredentials = func(ctx context.Context, email, password string) (*user.User,
		*serviceerror.ServiceError) {
		return suite.activeUser(), nil
	}

	csrfResponse, svcErr := suite.service.GetCSRFToken(suite.ctx)
	suite.Require().Nil(svcErr)

	loginResponse, svcErr := suite.service.Login(suite.ctx, &LoginRequest{
		Email:     "admin@example.com",
		Password:  "correct-password",
		CSRFToken: csrfResponse.Token,
	})
	suite.Require().Nil(svcErr)
	suite.Require().NotNil(loginResponse)
	return loginResponse
}

func (suite *AuthServiceTestSuite) TestGetCSRFToken() {
	tokenResponse, svcErr := suite.service.GetCSRFToken(suite.ctx)

	suite.Nil(svcErr)
	suite.NotNil(tokenResponse)
	suite.NotEmpty(tokenResponse.Token)
}

func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	loginResponse := suite.login()

	suite.NotEmpty(loginResponse.Token)
	suite.Equal("user-1", loginResponse.User.ID)
	suite.Equal("/dashboard/admin", loginResponse.RedirectPath)

	suite.Require().Len(suite.mockJWT.GenerateJWTCalls, 1)
	generated := suite.mockJWT.GenerateJWTCalls[0]
	suite.Equal("user-1", generated.Sub)
	suite.Equal("admin", generated.Claims[claimRole])
	suite.Equal("school-1", generated.Claims[claimSchoolID])

	// The JWT references a live server side session.
	sessionID, ok := generated.Claims[claimSessionID].(string)
	suite.Require().True(ok)
	session, found := suite.service.sessions.Get(sessionID)
	suite.True(found)
	suite.Equal("user-1", session.UserID)
	suite.Equal("admin", session.Role)
}

func (suite *AuthServiceTestSuite) TestLoginRedirectPaths() {
	testCases := []struct {
		role         user.Role
		redirectPath string
	}{
		{role: user.RoleSuperAdmin, redirectPath: "/dashboard/super-admin"},
		{role: user.RoleAdmin, redirectPath: "/dashboard/admin"},
		{role: user.RoleTeacher, redirectPath: "/dashboard/teacher"},
		{role: user.RoleStudent, redirectPath: "/dashboard/student"},
	}

	for _, tc := range testCases {
		suite.T().Run(string(tc.role), func(t *testing.T) {
			suite.SetupTest()
			suite.mockUser.MockVerifyCredentials = func(ctx context.Context, email, password string) (
				*user.User, *serviceerror.ServiceError) {
				authenticatedUser := suite.activeUser()
				authenticatedUser.Role = tc.role
				return authenticatedUser, nil
			}

			csrfResponse, svcErr := suite.service.GetCSRFToken(suite.ctx)
			suite.Require().Nil(svcErr)

			loginResponse, svcErr := suite.service.Login(suite.ctx, &LoginRequest{
				Email:     "someone@example.com",
				Password:  "correct-password",
				CSRFToken: csrfResponse.Token,
			})

			suite.Nil(svcErr)
			suite.Require().NotNil(loginResponse)
			suite.Equal(tc.redirectPath, loginResponse.RedirectPath)
		})
	}
}

func (suite *AuthServiceTestSuite) TestLoginCSRFTokenIsSingleUse() {
	suite.mockUser.MockVerifyCredentials = func(ctx context.Context, email, password string) (*user.User,
		*serviceerror.ServiceError) {
		return suite.activeUser(), nil
	}

	csrfResponse, svcErr := suite.service.GetCSRFToken(suite.ctx)
	suite.Require().Nil(svcErr)

	request := &LoginRequest{
		Email:     "admin@example.com",
		Password:  "correct-password",
		CSRFToken: csrfResponse.Token,
	}

	_, svcErr = suite.service.Login(suite.ctx, request)
	suite.Nil(svcErr)

	loginResponse, svcErr := suite.service.Login(suite.ctx, request)
	suite.Nil(loginResponse)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidCSRFToken.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestLoginFailures() {
	testCases := []struct {
		name          string
		setupMocks    func()
		request       func() *LoginRequest
		expectedError *serviceerror.ServiceError
	}{
		{
			name:          "NilRequest",
			request:       func() *LoginRequest { return nil },
			expectedError: &ErrorInvalidRequestFormat,
		},
		{
			name: "MissingCSRFToken",
			request: func() *LoginRequest {
				return &LoginRequest{Email: "admin@example.com", Password: "pass"}
			},
			expectedError: &ErrorInvalidCSRFToken,
		},
		{
			name: "ForgedCSRFToken",
			request: func() *LoginRequest {
				return &LoginRequest{Email: "admin@example.com", Password: "pass",
					CSRFToken: "forged-token"}
			},
			expectedError: &ErrorInvalidCSRFToken,
		},
		{
			name: "InvalidCredentials",
			request: func() *LoginRequest {
				csrfResponse, _ := suite.service.GetCSRFToken(suite.ctx)
				return &LoginRequest{Email: "admin@example.com", Password: "wrong",
					CSRFToken: csrfResponse.Token}
			},
			expectedError: &ErrorInvalidCredentials,
		},
		{
			name: "DisabledAccount",
			setupMocks: func() {
				suite.mockUser.MockVerifyCredentials = func(ctx context.Context, email,
					password string) (*user.User, *serviceerror.ServiceError) {
					return nil, &user.ErrorUserDisabled
				}
			},
			request: func() *LoginRequest {
				csrfResponse, _ := suite.service.GetCSRFToken(suite.ctx)
				return &LoginRequest{Email: "admin@example.com", Password: "correct",
					CSRFToken: csrfResponse.Token}
			},
			expectedError: &ErrorAccountDisabled,
		},
		{
			name: "VerificationServerError",
			setupMocks: func() {
				suite.mockUser.MockVerifyCredentials = func(ctx context.Context, email,
					password string) (*user.User, *serviceerror.ServiceError) {
					return nil, &user.ErrorInternalServerError
				}
			},
			request: func() *LoginRequest {
				csrfResponse, _ := suite.service.GetCSRFToken(suite.ctx)
				return &LoginRequest{Email: "admin@example.com", Password: "correct",
					CSRFToken: csrfResponse.Token}
			},
			expectedError: &ErrorInternalServerError,
		},
		{
			name: "JWTGenerationFailure",
			setupMocks: func() {
				suite.mockUser.MockVerifyCredentials = func(ctx context.Context, email,
					password string) (*user.User, *serviceerror.ServiceError) {
					return suite.activeUser(), nil
				}
				suite.mockJWT.MockGenerateJWT = func(sub, aud, iss string, validityPeriod int64,
					claims map[string]interface{}) (string, int64, error) {
					return "", 0, errors.New("signing failed")
				}
			},
			request: func() *LoginRequest {
				csrfResponse, _ := suite.service.GetCSRFToken(suite.ctx)
				return &LoginRequest{Email: "admin@example.com", Password: "correct",
					CSRFToken: csrfResponse.Token}
			},
			expectedError: &ErrorInternalServerError,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.SetupTest()
			if tc.setupMocks != nil {
				tc.setupMocks()
			}

			loginResponse, svcErr := suite.service.Login(suite.ctx, tc.request())

			suite.Nil(loginResponse)
			suite.Require().NotNil(svcErr)
			suite.Equal(tc.expectedError.Code, svcErr.Code)
		})
	}
}

func (suite *AuthServiceTestSuite) TestAuthenticateSuccess() {
	loginResponse := suite.login()

	principal, svcErr := suite.service.Authenticate(suite.ctx, loginResponse.Token)

	suite.Nil(svcErr)
	suite.Require().NotNil(principal)
	suite.Equal("user-1", principal.UserID)
	suite.Equal("admin", principal.Role)
	suite.Equal("school-1", principal.SchoolID)
	suite.NotEmpty(principal.SessionID)
}

func (suite *AuthServiceTestSuite) TestAuthenticateWithAllowedRole() {
	loginResponse := suite.login()

	principal, svcErr := suite.service.Authenticate(suite.ctx, loginResponse.Token,
		"superadmin", "admin")

	suite.Nil(svcErr)
	suite.NotNil(principal)
}

func (suite *AuthServiceTestSuite) TestAuthenticateWithDisallowedRole() {
	loginResponse := suite.login()

	principal, svcErr := suite.service.Authenticate(suite.ctx, loginResponse.Token, "superadmin")

	suite.Nil(principal)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInsufficientPermissions.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestAuthenticateFailures() {
	testCases := []struct {
		name          string
		token         func() string
		setupMocks    func()
		expectedError *serviceerror.ServiceError
	}{
		{
			name:          "EmptyToken",
			token:         func() string { return "" },
			expectedError: &ErrorMissingAuthorization,
		},
		{
			name: "SignatureVerificationFailure",
			token: func() string {
				return suite.login().Token
			},
			setupMocks: func() {
				suite.mockJWT.MockVerifyJWT = func(jwtToken, expectedAud, expectedIss string) error {
					return errors.New("invalid signature")
				}
			},
			expectedError: &ErrorInvalidToken,
		},
		{
			name:          "MalformedToken",
			token:         func() string { return "not-a-jwt" },
			expectedError: &ErrorInvalidToken,
		},
		{
			name: "TerminatedSession",
			token: func() string {
				loginResponse := suite.login()
				suite.service.sessions.Clear()
				return loginResponse.Token
			},
			expectedError: &ErrorSessionExpired,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.SetupTest()
			token := tc.token()
			if tc.setupMocks != nil {
				tc.setupMocks()
			}

			principal, svcErr := suite.service.Authenticate(suite.ctx, token)

			suite.Nil(principal)
			suite.Require().NotNil(svcErr)
			suite.Equal(tc.expectedError.Code, svcErr.Code)
		})
	}
}

func (suite *AuthServiceTestSuite) TestGetCurrentUserSuccess() {
	loginResponse := suite.login()
	suite.mockUser.MockGetUser = func(ctx context.Context, userID string) (*user.User,
		*serviceerror.ServiceError) {
		suite.Equal("user-1", userID)
		return suite.activeUser(), nil
	}

	currentUser, svcErr := suite.service.GetCurrentUser(suite.ctx, loginResponse.Token)

	suite.Nil(svcErr)
	suite.Require().NotNil(currentUser)
	suite.Equal("user-1", currentUser.ID)
}

func (suite *AuthServiceTestSuite) TestGetCurrentUserDeletedAccount() {
	loginResponse := suite.login()
	suite.mockUser.MockGetUser = func(ctx context.Context, userID string) (*user.User,
		*serviceerror.ServiceError) {
		return nil, &user.ErrorUserNotFound
	}

	currentUser, svcErr := suite.service.GetCurrentUser(suite.ctx, loginResponse.Token)

	suite.Nil(currentUser)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorSessionExpired.Code, svcErr.Code)

	// The orphaned session is terminated as well.
	principal, svcErr := suite.service.Authenticate(suite.ctx, loginResponse.Token)
	suite.Nil(principal)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorSessionExpired.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestLogoutTerminatesSession() {
	loginResponse := suite.login()

	svcErr := suite.service.Logout(suite.ctx, loginResponse.Token)
	suite.Nil(svcErr)

	principal, svcErr := suite.service.Authenticate(suite.ctx, loginResponse.Token)
	suite.Nil(principal)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorSessionExpired.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestLogoutIsIdempotent() {
	loginResponse := suite.login()

	suite.Nil(suite.service.Logout(suite.ctx, loginResponse.Token))
	suite.Nil(suite.service.Logout(suite.ctx, loginResponse.Token))
}

func (suite *AuthServiceTestSuite) TestLogoutFailures() {
	svcErr := suite.service.Logout(suite.ctx, "")
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorMissingAuthorization.Code, svcErr.Code)

	svcErr = suite.service.Logout(suite.ctx, "not-a-jwt")
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidToken.Code, svcErr.Code)
}
