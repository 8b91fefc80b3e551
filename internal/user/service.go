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

package user

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cache"
	serverconst "github.com/campushq/campus/internal/system/constants"
	"github.com/campushq/campus/internal/system/crypto/hash"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	sysutils "github.com/campushq/campus/internal/system/utils"
)

const loggerComponentName = "UserService"

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserServiceInterface defines the interface for the user service.
type UserServiceInterface interface {
	CreateUser(ctx context.Context, request *CreateUserRequest) (*User, *serviceerror.ServiceError)
	GetUser(ctx context.Context, userID string) (*User, *serviceerror.ServiceError)
	GetUserByEmail(ctx context.Context, email string) (*User, *serviceerror.ServiceError)
	GetUserList(ctx context.Context, schoolID, role string, limit, offset int) (*UserListResponse,
		*serviceerror.ServiceError)
	UpdateUser(ctx context.Context, userID string, request *UpdateUserRequest) (*User, *serviceerror.ServiceError)
	DeleteUser(ctx context.Context, userID string) *serviceerror.ServiceError
	VerifyCredentials(ctx context.Context, email, password string) (*User, *serviceerror.ServiceError)
}

// userService is the default implementation of UserServiceInterface.
type userService struct {
	userStore     userStoreInterface
	schoolService school.SchoolServiceInterface
	cacheService  cache.CacheServiceInterface
}

// newUserService creates a new instance of userService.
func newUserService(schoolService school.SchoolServiceInterface,
	cacheService cache.CacheServiceInterface) UserServiceInterface {
	return &userService{
		userStore:     newUserStore(),
		schoolService: schoolService,
		cacheService:  cacheService,
	}
}

// CreateUser creates a new user with the hashed credential.
func (us *userService) CreateUser(ctx context.Context, request *CreateUserRequest) (*User,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	svcErr := us.validateCreateUserRequest(ctx, request)
	if svcErr != nil {
		return nil, svcErr
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if _, err := us.userStore.GetUserByEmail(email); err == nil {
		return nil, &ErrorUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, logErrorAndReturnServerError(logger, "Failed to check user existence", err)
	}

	salt, err := hash.GenerateSalt()
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to generate credential salt", err)
	}
	credentialHash, err := hash.HashStringWithSalt(request.Password, salt)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to hash credential", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user := User{
		ID:        sysutils.GenerateUUID(),
		Email:     email,
		Name:      strings.TrimSpace(request.Name),
		Role:      Role(request.Role),
		SchoolID:  request.SchoolID,
		Status:    UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := us.userStore.CreateUser(user, credentialDTO{Hash: credentialHash, Salt: salt}); err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to create user", err,
			log.String("email", log.MaskString(email)))
	}

	us.invalidateUserCaches(ctx, user.SchoolID)
	logger.Debug("Successfully created user", log.String("userID", user.ID))
	return &user, nil
}

// GetUser retrieves a user by user ID.
func (us *userService) GetUser(ctx context.Context, userID string) (*User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(userID) == "" {
		return nil, &ErrorInvalidUserID
	}

	user, err := us.userStore.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, &ErrorUserNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve user", err,
			log.String("userID", userID))
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email address.
func (us *userService) GetUserByEmail(ctx context.Context, email string) (*User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, &ErrorInvalidEmail
	}

	user, err := us.userStore.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, &ErrorUserNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve user", err,
			log.String("email", log.MaskString(email)))
	}
	return user, nil
}

// GetUserList retrieves a page of users with optional school and role filtering.
func (us *userService) GetUserList(ctx context.Context, schoolID, role string, limit, offset int) (
	*UserListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validatePaginationParams(limit, offset); svcErr != nil {
		return nil, svcErr
	}
	if role != "" && !slices.Contains(supportedRoles, Role(role)) {
		return nil, &ErrorInvalidRole
	}

	totalCount, err := us.userStore.GetUserCount(schoolID, role)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve user count", err)
	}

	users, err := us.userStore.GetUserList(schoolID, role, limit, offset)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve user list", err)
	}

	return &UserListResponse{
		TotalResults: totalCount,
		StartIndex:   offset + 1,
		Count:        len(users),
		Users:        users,
		Links:        buildPaginationLinks("/users", limit, offset, totalCount),
	}, nil
}

// UpdateUser updates an existing user.
func (us *userService) UpdateUser(ctx context.Context, userID string, request *UpdateUserRequest) (*User,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(userID) == "" {
		return nil, &ErrorInvalidUserID
	}

	existing, err := us.userStore.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, &ErrorUserNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve user", err,
			log.String("userID", userID))
	}

	svcErr := us.validateUpdateUserRequest(ctx, request)
	if svcErr != nil {
		return nil, svcErr
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if email != existing.Email {
		if conflicting, err := us.userStore.GetUserByEmail(email); err == nil {
			if conflicting.ID != userID {
				return nil, &ErrorUserAlreadyExists
			}
		} else if !errors.Is(err, ErrUserNotFound) {
			return nil, logErrorAndReturnServerError(logger, "Failed to check user existence", err)
		}
	}

	status := existing.Status
	if request.Status != "" {
		status = UserStatus(request.Status)
	}

	user := &User{
		ID:        userID,
		Email:     email,
		Name:      strings.TrimSpace(request.Name),
		Role:      Role(request.Role),
		SchoolID:  request.SchoolID,
		Status:    status,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := us.userStore.UpdateUser(user); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, &ErrorUserNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to update user", err,
			log.String("userID", userID))
	}

	us.invalidateUserCaches(ctx, existing.SchoolID, user.SchoolID)
	return user, nil
}

// DeleteUser deletes a user by user ID. The operation is idempotent.
func (us *userService) DeleteUser(ctx context.Context, userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(userID) == "" {
		return &ErrorInvalidUserID
	}

	existing, err := us.userStore.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return logErrorAndReturnServerError(logger, "Failed to retrieve user", err,
			log.String("userID", userID))
	}

	if err := us.userStore.DeleteUser(userID); err != nil {
		return logErrorAndReturnServerError(logger, "Failed to delete user", err,
			log.String("userID", userID))
	}

	us.invalidateUserCaches(ctx, existing.SchoolID)
	return nil
}

// VerifyCredentials verifies the given email and password against the stored credential.
// The account status is only revealed after the credential check succeeds.
func (us *userService) VerifyCredentials(ctx context.Context, email, password string) (*User,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, &ErrorInvalidCredentials
	}

	user, credential, err := us.userStore.GetUserWithCredentialByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, &ErrorInvalidCredentials
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve user credential", err,
			log.String("email", log.MaskString(email)))
	}

	computedHash, err := hash.HashStringWithSalt(password, credential.Salt)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to hash credential", err)
	}
	if subtle.ConstantTimeCompare([]byte(computedHash), []byte(credential.Hash)) != 1 {
		logger.Debug("Credential verification failed", log.String("email", log.MaskString(email)))
		return nil, &ErrorInvalidCredentials
	}

	if user.Status == UserStatusDisabled {
		return nil, &ErrorUserDisabled
	}
	return user, nil
}

// invalidateUserCaches invalidates the dashboard statistics affected by a user
// mutation, together with the cached entries of every school the user touched.
func (us *userService) invalidateUserCaches(ctx context.Context, schoolIDs ...string) {
	us.cacheService.InvalidateCachePattern(ctx, adminStatsCachePattern)

	seen := make(map[string]struct{}, len(schoolIDs))
	for _, schoolID := range schoolIDs {
		if schoolID == "" {
			continue
		}
		if _, ok := seen[schoolID]; ok {
			continue
		}
		seen[schoolID] = struct{}{}
		us.cacheService.InvalidateCachePattern(ctx, schoolCachePattern(schoolID))
	}
}

// validateCreateUserRequest validates the create user request.
func (us *userService) validateCreateUserRequest(ctx context.Context,
	request *CreateUserRequest) *serviceerror.ServiceError {
	if request == nil {
		return &ErrorInvalidRequestFormat
	}
	if !emailRegex.MatchString(strings.TrimSpace(request.Email)) {
		return &ErrorInvalidEmail
	}
	if strings.TrimSpace(request.Name) == "" {
		return &ErrorInvalidUserName
	}
	if !slices.Contains(supportedRoles, Role(request.Role)) {
		return &ErrorInvalidRole
	}
	if request.Password == "" {
		return &ErrorMissingPassword
	}
	return us.validateSchoolAffiliation(ctx, request.SchoolID)
}

// validateUpdateUserRequest validates the update user request.
func (us *userService) validateUpdateUserRequest(ctx context.Context,
	request *UpdateUserRequest) *serviceerror.ServiceError {
	if request == nil {
		return &ErrorInvalidRequestFormat
	}
	if !emailRegex.MatchString(strings.TrimSpace(request.Email)) {
		return &ErrorInvalidEmail
	}
	if strings.TrimSpace(request.Name) == "" {
		return &ErrorInvalidUserName
	}
	if !slices.Contains(supportedRoles, Role(request.Role)) {
		return &ErrorInvalidRole
	}
	if request.Status != "" && !slices.Contains(supportedUserStatuses, UserStatus(request.Status)) {
		return &ErrorInvalidStatus
	}
	return us.validateSchoolAffiliation(ctx, request.SchoolID)
}

// validateSchoolAffiliation verifies that the referenced school exists when a school ID is given.
func (us *userService) validateSchoolAffiliation(ctx context.Context, schoolID string) *serviceerror.ServiceError {
	if schoolID == "" {
		return nil
	}
	if _, svcErr := us.schoolService.GetSchool(ctx, schoolID); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return &ErrorSchoolNotFound
		}
		return &ErrorInternalServerError
	}
	return nil
}

// validatePaginationParams validates the limit and offset pagination parameters.
func validatePaginationParams(limit, offset int) *serviceerror.ServiceError {
	if limit < 1 || limit > serverconst.MaxPageSize {
		return &ErrorInvalidLimit
	}
	if offset < 0 {
		return &ErrorInvalidOffset
	}
	return nil
}

// buildPaginationLinks constructs pagination links for a list response.
func buildPaginationLinks(path string, limit, offset, totalResults int) []Link {
	links := make([]Link, 0, 4)

	if offset > 0 {
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=0&limit=%d", path, limit),
			Rel:  "first",
		})

		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=%d&limit=%d", path, prevOffset, limit),
			Rel:  "prev",
		})
	}

	if offset+limit < totalResults {
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=%d&limit=%d", path, offset+limit, limit),
			Rel:  "next",
		})
	}

	if totalResults > 0 {
		lastPageOffset := ((totalResults - 1) / limit) * limit
		if offset < lastPageOffset {
			links = append(links, Link{
				Href: fmt.Sprintf("%s?offset=%d&limit=%d", path, lastPageOffset, limit),
				Rel:  "last",
			})
		}
	}

	return links
}

// logErrorAndReturnServerError logs the error and returns a generic server error.
func logErrorAndReturnServerError(logger *log.Logger, message string, err error,
	additionalFields ...log.Field) *serviceerror.ServiceError {
	fields := append(additionalFields, log.Error(err))
	logger.Error(message, fields...)
	return &ErrorInternalServerError
}
