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

// Package usermock provides a mock implementation of the user service for testing.
package usermock

import (
	"context"

	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/user"
)

// MockUserService is a configurable mock implementation of user.UserServiceInterface.
// Unset function fields make every lookup fail with a user-not-found error and
// every mutation succeed with a zero-value result.
type MockUserService struct {
	MockCreateUser func(ctx context.Context, request *user.CreateUserRequest) (*user.User,
		*serviceerror.ServiceError)
	MockGetUser        func(ctx context.Context, userID string) (*user.User, *serviceerror.ServiceError)
	MockGetUserByEmail func(ctx context.Context, email string) (*user.User, *serviceerror.ServiceError)
	MockGetUserList    func(ctx context.Context, schoolID, role string, limit, offset int) (
		*user.UserListResponse, *serviceerror.ServiceError)
	MockUpdateUser func(ctx context.Context, userID string, request *user.UpdateUserRequest) (*user.User,
		*serviceerror.ServiceError)
	MockDeleteUser        func(ctx context.Context, userID string) *serviceerror.ServiceError
	MockVerifyCredentials func(ctx context.Context, email, password string) (*user.User,
		*serviceerror.ServiceError)

	GetUserCalls           []string
	VerifyCredentialsCalls []struct {
		Email    string
		Password string
	}
}

// CreateUser calls the configured mock function or returns an empty user.
func (m *MockUserService) CreateUser(ctx context.Context, request *user.CreateUserRequest) (*user.User,
	*serviceerror.ServiceError) {
	if m.MockCreateUser != nil {
		return m.MockCreateUser(ctx, request)
	}
	return &user.User{}, nil
}

// GetUser calls the configured mock function or returns a user-not-found error.
func (m *MockUserService) GetUser(ctx context.Context, userID string) (*user.User,
	*serviceerror.ServiceError) {
	m.GetUserCalls = append(m.GetUserCalls, userID)
	if m.MockGetUser != nil {
		return m.MockGetUser(ctx, userID)
	}
	return nil, &user.ErrorUserNotFound
}

// GetUserByEmail calls the configured mock function or returns a user-not-found error.
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*user.User,
	*serviceerror.ServiceError) {
	if m.MockGetUserByEmail != nil {
		return m.MockGetUserByEmail(ctx, email)
	}
	return nil, &user.ErrorUserNotFound
}

// GetUserList calls the configured mock function or returns an empty list response.
func (m *MockUserService) GetUserList(ctx context.Context, schoolID, role string, limit, offset int) (
	*user.UserListResponse, *serviceerror.ServiceError) {
	if m.MockGetUserList != nil {
		return m.MockGetUserList(ctx, schoolID, role, limit, offset)
	}
	return &user.UserListResponse{Users: []user.User{}}, nil
}

// UpdateUser calls the configured mock function or returns an empty user.
func (m *MockUserService) UpdateUser(ctx context.Context, userID string,
	request *user.UpdateUserRequest) (*user.User, *serviceerror.ServiceError) {
	if m.MockUpdateUser != nil {
		return m.MockUpdateUser(ctx, userID, request)
	}
	return &user.User{}, nil
}

// DeleteUser calls the configured mock function or succeeds.
func (m *MockUserService) DeleteUser(ctx context.Context, userID string) *serviceerror.ServiceError {
	if m.MockDeleteUser != nil {
		return m.MockDeleteUser(ctx, userID)
	}
	return nil
}

// VerifyCredentials calls the configured mock function or returns an
// invalid-credentials error.
func (m *MockUserService) VerifyCredentials(ctx context.Context, email, password string) (*user.User,
	*serviceerror.ServiceError) {
	m.VerifyCredentialsCalls = append(m.VerifyCredentialsCalls, struct {
		Email    string
		Password string
	}{Email: email, Password: password})
	if m.MockVerifyCredentials != nil {
		return m.MockVerifyCredentials(ctx, email, password)
	}
	return nil, &user.ErrorInvalidCredentials
}
