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

// Package schoolmock provides a mock implementation of the school service for testing.
package schoolmock

import (
	"context"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/error/serviceerror"
)

// MockSchoolService is a configurable mock implementation of school.SchoolServiceInterface.
// Unset function fields make every lookup fail with the matching not-found error and
// every mutation succeed with a zero-value result.
type MockSchoolService struct {
	MockCreateSchool func(ctx context.Context, request *school.SchoolRequest) (*school.School,
		*serviceerror.ServiceError)
	MockGetSchool     func(ctx context.Context, schoolID string) (*school.School, *serviceerror.ServiceError)
	MockGetSchoolList func(ctx context.Context) ([]school.School, *serviceerror.ServiceError)
	MockUpdateSchool  func(ctx context.Context, schoolID string, request *school.SchoolRequest) (*school.School,
		*serviceerror.ServiceError)
	MockDeleteSchool func(ctx context.Context, schoolID string) *serviceerror.ServiceError
	MockCreateClass  func(ctx context.Context, schoolID string, request *school.ClassRequest) (*school.Class,
		*serviceerror.ServiceError)
	MockGetClass     func(ctx context.Context, schoolID, classID string) (*school.Class, *serviceerror.ServiceError)
	MockGetClassList func(ctx context.Context, schoolID string) ([]school.Class, *serviceerror.ServiceError)
	MockUpdateClass  func(ctx context.Context, schoolID, classID string,
		request *school.ClassRequest) (*school.Class, *serviceerror.ServiceError)
	MockDeleteClass func(ctx context.Context, schoolID, classID string) *serviceerror.ServiceError

	GetSchoolCalls []string
	GetClassCalls  []struct {
		SchoolID string
		ClassID  string
	}
}

// CreateSchool calls the configured mock function or returns an empty school.
func (m *MockSchoolService) CreateSchool(ctx context.Context, request *school.SchoolRequest) (*school.School,
	*serviceerror.ServiceError) {
	if m.MockCreateSchool != nil {
		return m.MockCreateSchool(ctx, request)
	}
	return &school.School{}, nil
}

// GetSchool calls the configured mock function or returns a school-not-found error.
func (m *MockSchoolService) GetSchool(ctx context.Context, schoolID string) (*school.School,
	*serviceerror.ServiceError) {
	m.GetSchoolCalls = append(m.GetSchoolCalls, schoolID)
	if m.MockGetSchool != nil {
		return m.MockGetSchool(ctx, schoolID)
	}
	return nil, &school.ErrorSchoolNotFound
}

// GetSchoolList calls the configured mock function or returns an empty list.
func (m *MockSchoolService) GetSchoolList(ctx context.Context) ([]school.School, *serviceerror.ServiceError) {
	if m.MockGetSchoolList != nil {
		return m.MockGetSchoolList(ctx)
	}
	return []school.School{}, nil
}

// UpdateSchool calls the configured mock function or returns an empty school.
func (m *MockSchoolService) UpdateSchool(ctx context.Context, schoolID string,
	request *school.SchoolRequest) (*school.School, *serviceerror.ServiceError) {
	if m.MockUpdateSchool != nil {
		return m.MockUpdateSchool(ctx, schoolID, request)
	}
	return &school.School{}, nil
}

// DeleteSchool calls the configured mock function or succeeds.
func (m *MockSchoolService) DeleteSchool(ctx context.Context, schoolID string) *serviceerror.ServiceError {
	if m.MockDeleteSchool != nil {
		return m.MockDeleteSchool(ctx, schoolID)
	}
	return nil
}

// CreateClass calls the configured mock function or returns an empty class.
func (m *MockSchoolService) CreateClass(ctx context.Context, schoolID string,
	request *school.ClassRequest) (*school.Class, *serviceerror.ServiceError) {
	if m.MockCreateClass != nil {
		return m.MockCreateClass(ctx, schoolID, request)
	}
	return &school.Class{}, nil
}

// GetClass calls the configured mock function or returns a class-not-found error.
func (m *MockSchoolService) GetClass(ctx context.Context, schoolID, classID string) (*school.Class,
	*serviceerror.ServiceError) {
	m.GetClassCalls = append(m.GetClassCalls, struct {
		SchoolID string
		ClassID  string
	}{SchoolID: schoolID, ClassID: classID})
	if m.MockGetClass != nil {
		return m.MockGetClass(ctx, schoolID, classID)
	}
	return nil, &school.ErrorClassNotFound
}

// GetClassList calls the configured mock function or returns an empty list.
func (m *MockSchoolService) GetClassList(ctx context.Context, schoolID string) ([]school.Class,
	*serviceerror.ServiceError) {
	if m.MockGetClassList != nil {
		return m.MockGetClassList(ctx, schoolID)
	}
	return []school.Class{}, nil
}

// UpdateClass calls the configured mock function or returns an empty class.
func (m *MockSchoolService) UpdateClass(ctx context.Context, schoolID, classID string,
	request *school.ClassRequest) (*school.Class, *serviceerror.ServiceError) {
	if m.MockUpdateClass != nil {
		return m.MockUpdateClass(ctx, schoolID, classID, request)
	}
	return &school.Class{}, nil
}

// DeleteClass calls the configured mock function or succeeds.
func (m *MockSchoolService) DeleteClass(ctx context.Context, schoolID, classID string) *serviceerror.ServiceError {
	if m.MockDeleteClass != nil {
		return m.MockDeleteClass(ctx, schoolID, classID)
	}
	return nil
}
