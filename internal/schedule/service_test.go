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

package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/user"
	"github.com/campushq/campus/tests/mocks/cachemock"
	"github.com/campushq/campus/tests/mocks/schoolmock"
	"github.com/campushq/campus/tests/mocks/usermock"
)

// mockScheduleStore is a configurable mock implementation of
// scheduleStoreInterface. Unset function fields make lookups fail with
// ErrEntryNotFound, lists return empty slices, and mutations succeed.
type mockScheduleStore struct {
	CreateEntryFunc           func(entry Entry) error
	GetEntryByIDFunc          func(entryID string) (*Entry, error)
	GetEntriesByClassFunc     func(classID string) ([]Entry, error)
	GetEntriesBySchoolFunc    func(schoolID string) ([]Entry, error)
	GetConflictCandidatesFunc func(dayOfWeek int, classID, teacherID string) ([]Entry, error)
	UpdateEntryFunc           func(entry *Entry) error
	DeleteEntryFunc           func(entryID string) error

	CreateEntryCalls []Entry
	UpdateEntryCalls []Entry
	DeleteEntryCalls []string
	ClassListCalls   []string
}

func (m *mockScheduleStore) CreateEntry(entry Entry) error {
	m.CreateEntryCalls = append(m.CreateEntryCalls, entry)
	if m.CreateEntryFunc != nil {
		return m.CreateEntryFunc(entry)
	}
	return nil
}

func (m *mockScheduleStore) GetEntryByID(entryID string) (*Entry, error) {
	if m.GetEntryByIDFunc != nil {
		return m.GetEntryByIDFunc(entryID)
	}
	return nil, ErrEntryNotFound
}

func (m *mockScheduleStore) GetEntriesByClass(classID string) ([]Entry, error) {
	m.ClassListCalls = append(m.ClassListCalls, classID)
	if m.GetEntriesByClassFunc != nil {
		return m.GetEntriesByClassFunc(classID)
	}
	return []Entry{}, nil
}

func (m *mockScheduleStore) GetEntriesBySchool(schoolID string) ([]Entry, error) {
	if m.GetEntriesBySchoolFunc != nil {
		return m.GetEntriesBySchoolFunc(schoolID)
	}
	return []Entry{}, nil
}

func (m *mockScheduleStore) GetConflictCandidates(dayOfWeek int, classID, teacherID string) ([]Entry, error) {
	if m.GetConflictCandidatesFunc != nil {
		return m.GetConflictCandidatesFunc(dayOfWeek, classID, teacherID)
	}
	return []Entry{}, nil
}

func (m *mockScheduleStore) UpdateEntry(entry *Entry) error {
	m.UpdateEntryCalls = append(m.UpdateEntryCalls, *entry)
	if m.UpdateEntryFunc != nil {
		return m.UpdateEntryFunc(entry)
	}
	return nil
}

func (m *mockScheduleStore) DeleteEntry(entryID string) error {
	m.DeleteEntryCalls = append(m.DeleteEntryCalls, entryID)
	if m.DeleteEntryFunc != nil {
		return m.DeleteEntryFunc(entryID)
	}
	return nil
}

type ScheduleServiceTestSuite struct {
	suite.Suite
	mockStore  *mockScheduleStore
	mockUser   *usermock.MockUserService
	mockSchool *schoolmock.MockSchoolService
	mockCache  *cachemock.MockCacheService
	service    *scheduleService
	ctx        context.Context
}

func TestScheduleServiceSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.mockStore = &mockScheduleStore{}
	suite.mockUser = &usermock.MockUserService{}
	suite.mockSchool = &schoolmock.MockSchoolService{}
	suite.mockCache = &cachemock.MockCacheService{}
	suite.service = &scheduleService{
		scheduleStore: suite.mockStore,
		userService:   suite.mockUser,
		schoolService: suite.mockSchool,
		cacheService:  suite.mockCache,
	}
	suite.ctx = context.Background()
}

func (suite *ScheduleServiceTestSuite) allowEntryPrereqs() {
	suite.mockSchool.MockGetClass = func(ctx context.Context, schoolID, classID string) (*school.Class,
		*serviceerror.ServiceError) {
		return &school.Class{ID: classID, SchoolID: schoolID, Name: "Grade 10 - A"}, nil
	}
	suite.mockUser.MockGetUser = func(ctx context.Context, userID string) (*user.User,
		*serviceerror.ServiceError) {
		return &user.User{ID: userID, Role: user.RoleTeacher, Name: "Kumari Jayasinghe"}, nil
	}
}

func (suite *ScheduleServiceTestSuite) validEntryRequest() *EntryRequest {
	return &EntryRequest{
		ClassID:   "class-1",
		TeacherID: "teacher-1",
		Subject:   "Mathematics",
		DayOfWeek: 2,
		StartTime: "09:00",
		EndTime:   "10:00",
		Room:      "B-12",
	}
}

func (suite *ScheduleServiceTestSuite) TestCreateEntrySuccess() {
	suite.allowEntryPrereqs()

	entry, svcErr := suite.service.CreateEntry(suite.ctx, "school-1", suite.validEntryRequest())

	suite.Require().Nil(svcErr)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.ID)
	suite.Equal("school-1", entry.SchoolID)
	suite.Equal("class-1", entry.ClassID)
	suite.Equal("teacher-1", entry.TeacherID)
	suite.Equal(2, entry.DayOfWeek)
	suite.Equal("09:00", entry.StartTime)
	suite.Equal("10:00", entry.EndTime)
	suite.NotEmpty(entry.CreatedAt)
	suite.Equal(entry.CreatedAt, entry.UpdatedAt)

	suite.Require().Len(suite.mockStore.CreateEntryCalls, 1)
	suite.Equal([]string{"school:school-1:schedule:*"}, suite.mockCache.InvalidatedPatterns)
}

func (suite *ScheduleServiceTestSuite) TestCreateEntryAllowsAdjacentSlots() {
	suite.allowEntryPrereqs()
	suite.mockStore.GetConflictCandidatesFunc = func(dayOfWeek int, classID, teacherID string) ([]Entry,
		error) {
		return []Entry{
			{ID: "entry-existing", ClassID: classID, TeacherID: teacherID, DayOfWeek: dayOfWeek,
				StartTime: "08:00", EndTime: "09:00"},
		}, nil
	}

	entry, svcErr := suite.service.CreateEntry(suite.ctx, "school-1", suite.validEntryRequest())

	suite.Require().Nil(svcErr)
	suite.NotNil(entry)
}

func (suite *ScheduleServiceTestSuite) TestCreateEntryFailures() {
	overlapping := func(classID, teacherID string) func(int, string, string) ([]Entry, error) {
		return func(dayOfWeek int, _, _ string) ([]Entry, error) {
			return []Entry{
				{ID: "entry-existing", ClassID: classID, TeacherID: teacherID, DayOfWeek: dayOfWeek,
					StartTime: "09:30", EndTime: "10:30"},
			}, nil
		}
	}

	testCases := []struct {
		name          string
		schoolID      string
		mutate        func(request *EntryRequest)
		nilRequest    bool
		setupMocks    func()
		expectedError *serviceerror.ServiceError
	}{
		{
			name:          "NilRequest",
			schoolID:      "school-1",
			nilRequest:    true,
			expectedError: &ErrorInvalidRequestFormat,
		},
		{
			name:          "BlankSchoolID",
			schoolID:      " ",
			expectedError: &ErrorInvalidRequestFormat,
		},
		{
			name:     "BlankSubject",
			schoolID: "school-1",
			mutate: func(request *EntryRequest) {
				request.Subject = "  "
			},
			expectedError: &ErrorInvalidRequestFormat,
		},
		{
			name:     "DayBelowRange",
			schoolID: "school-1",
			mutate: func(request *EntryRequest) {
				request.DayOfWeek = 0
			},
			expectedError: &ErrorInvalidDayOfWeek,
		},
		{
			name:     "DayAboveRange",
			schoolID: "school-1",
			mutate: func(request *EntryRequest) {
				request.DayOfWeek = 8
			},
			expectedError: &ErrorInvalidDayOfWeek,
		},
		{
			name:     "UnpaddedStartTime",
			schoolID: "school-1",
			mutate: func(request *EntryRequest) {
				request.StartTime = "9:00"
			},
			expectedError: &ErrorInvalidTimeFormat,
		},
		{
			name:     "InvalidEndMinutes",
			schoolID: "school-1",
			mutate: func(request *EntryRequest) {
				request.EndTime = "10:60"
			},
			expectedError: &ErrorInvalidTimeFormat,
		},
		{
			name:     "StartAfterEnd",
			schoolID: "school-1",
			mutate: func(request *EntryRequest) {
				request.StartTime = "11:00"
				request.EndTime = "10:00"
			},
			expectedError: &ErrorInvalidTimeOrdering,
		},
		{
			name:     "StartEqualsEnd",
			schoolID: "school-1",
			mutate: func(request *EntryRequest) {
				request.StartTime = "10:00"
				request.EndTime = "10:00"
			},
			expectedError: &ErrorInvalidTimeOrdering,
		},
		{
			name:          "ClassNotFound",
			schoolID:      "school-1",
			expectedError: &ErrorClassNotFound,
		},
		{
			name:     "TeacherNotFound",
			schoolID: "school-1",
			setupMocks: func() {
				suite.mockSchool.MockGetClass = func(ctx context.Context, schoolID,
					classID string) (*school.Class, *serviceerror.ServiceError) {
					return &school.Class{ID: classID, SchoolID: schoolID}, nil
				}
			},
			expectedError: &ErrorTeacherNotFound,
		},
		{
			name:     "AssigneeNotATeacher",
			schoolID: "school-1",
			setupMocks: func() {
				suite.allowEntryPrereqs()
				suite.mockUser.MockGetUser = func(ctx context.Context, userID string) (*user.User,
					*serviceerror.ServiceError) {
					return &user.User{ID: userID, Role: user.RoleStudent}, nil
				}
			},
			expectedError: &ErrorNotATeacher,
		},
		{
			name:     "ClassOverlap",
			schoolID: "school-1",
			setupMocks: func() {
				suite.allowEntryPrereqs()
				suite.mockStore.GetConflictCandidatesFunc = overlapping("class-1", "teacher-other")
			},
			expectedError: &ErrorScheduleConflict,
		},
		{
			name:     "TeacherOverlap",
			schoolID: "school-1",
			setupMocks: func() {
				suite.allowEntryPrereqs()
				suite.mockStore.GetConflictCandidatesFunc = overlapping("class-other", "teacher-1")
			},
			expectedError: &ErrorScheduleConflict,
		},
		{
			name:     "ConflictLookupFailure",
			schoolID: "school-1",
			setupMocks: func() {
				suite.allowEntryPrereqs()
				suite.mockStore.GetConflictCandidatesFunc = func(dayOfWeek int, classID,
					teacherID string) ([]Entry, error) {
					return nil, errors.New("query failed")
				}
			},
			expectedError: &ErrorInternalServerError,
		},
		{
			name:     "CreateFailure",
			schoolID: "school-1",
			setupMocks: func() {
				suite.allowEntryPrereqs()
				suite.mockStore.CreateEntryFunc = func(entry Entry) error {
					return errors.New("insert failed")
				}
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

			var request *EntryRequest
			if !tc.nilRequest {
				request = suite.validEntryRequest()
				if tc.mutate != nil {
					tc.mutate(request)
				}
			}

			entry, svcErr := suite.service.CreateEntry(suite.ctx, tc.schoolID, request)

			suite.Nil(entry)
			suite.Require().NotNil(svcErr)
			suite.Equal(tc.expectedError.Code, svcErr.Code)
			suite.Empty(suite.mockCache.InvalidatedPatterns)
		})
	}
}

func (suite *ScheduleServiceTestSuite) TestUpdateEntrySuccess() {
	suite.allowEntryPrereqs()
	suite.mockStore.GetEntryByIDFunc = func(entryID string) (*Entry, error) {
		return &Entry{ID: entryID, SchoolID: "school-1", ClassID: "class-1", TeacherID: "teacher-1",
			Subject: "Mathematics", DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00",
			CreatedAt: "2025-01-06T08:00:00Z", UpdatedAt: "2025-01-06T08:00:00Z"}, nil
	}
	// The existing slot comes back as a conflict candidate and must be skipped.
	suite.mockStore.GetConflictCandidatesFunc = func(dayOfWeek int, classID, teacherID string) ([]Entry,
		error) {
		return []Entry{
			{ID: "entry-1", ClassID: classID, TeacherID: teacherID, DayOfWeek: dayOfWeek,
				StartTime: "09:00", EndTime: "10:00"},
		}, nil
	}

	request := suite.validEntryRequest()
	request.StartTime = "09:30"
	request.EndTime = "10:30"
	entry, svcErr := suite.service.UpdateEntry(suite.ctx, "school-1", "entry-1", request)

	suite.Require().Nil(svcErr)
	suite.Require().NotNil(entry)
	suite.Equal("entry-1", entry.ID)
	suite.Equal("09:30", entry.StartTime)
	suite.Equal("2025-01-06T08:00:00Z", entry.CreatedAt)
	suite.NotEqual(entry.CreatedAt, entry.UpdatedAt)
	suite.Require().Len(suite.mockStore.UpdateEntryCalls, 1)
	suite.Equal([]string{"school:school-1:schedule:*"}, suite.mockCache.InvalidatedPatterns)
}

func (suite *ScheduleServiceTestSuite) TestUpdateEntryFailures() {
	testCases := []struct {
		name          string
		entryID       string
		setupMocks    func()
		expectedError *serviceerror.ServiceError
	}{
		{
			name:          "EmptyEntryID",
			entryID:       "",
			expectedError: &ErrorInvalidEntryID,
		},
		{
			name:          "EntryNotFound",
			entryID:       "missing",
			expectedError: &ErrorEntryNotFound,
		},
		{
			name:    "EntryBelongsToAnotherSchool",
			entryID: "entry-1",
			setupMocks: func() {
				suite.mockStore.GetEntryByIDFunc = func(entryID string) (*Entry, error) {
					return &Entry{ID: entryID, SchoolID: "school-2"}, nil
				}
			},
			expectedError: &ErrorEntryNotFound,
		},
		{
			name:    "OverlapWithAnotherEntry",
			entryID: "entry-1",
			setupMocks: func() {
				suite.allowEntryPrereqs()
				suite.mockStore.GetEntryByIDFunc = func(entryID string) (*Entry, error) {
					return &Entry{ID: entryID, SchoolID: "school-1"}, nil
				}
				suite.mockStore.GetConflictCandidatesFunc = func(dayOfWeek int, classID,
					teacherID string) ([]Entry, error) {
					return []Entry{
						{ID: "entry-2", ClassID: classID, DayOfWeek: dayOfWeek,
							StartTime: "09:30", EndTime: "10:30"},
					}, nil
				}
			},
			expectedError: &ErrorScheduleConflict,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.SetupTest()
			if tc.setupMocks != nil {
				tc.setupMocks()
			}

			entry, svcErr := suite.service.UpdateEntry(suite.ctx, "school-1", tc.entryID,
				suite.validEntryRequest())

			suite.Nil(entry)
			suite.Require().NotNil(svcErr)
			suite.Equal(tc.expectedError.Code, svcErr.Code)
			suite.Empty(suite.mockCache.InvalidatedPatterns)
		})
	}
}

func (suite *ScheduleServiceTestSuite) TestDeleteEntrySuccess() {
	suite.mockStore.GetEntryByIDFunc = func(entryID string) (*Entry, error) {
		return &Entry{ID: entryID, SchoolID: "school-1"}, nil
	}

	svcErr := suite.service.DeleteEntry(suite.ctx, "school-1", "entry-1")

	suite.Nil(svcErr)
	suite.Equal([]string{"entry-1"}, suite.mockStore.DeleteEntryCalls)
	suite.Equal([]string{"school:school-1:schedule:*"}, suite.mockCache.InvalidatedPatterns)
}

func (suite *ScheduleServiceTestSuite) TestDeleteEntryIsIdempotentWhenMissing() {
	svcErr := suite.service.DeleteEntry(suite.ctx, "school-1", "missing")

	suite.Nil(svcErr)
	suite.Empty(suite.mockStore.DeleteEntryCalls)
	suite.Empty(suite.mockCache.InvalidatedPatterns)
}

func (suite *ScheduleServiceTestSuite) TestDeleteEntrySkipsForeignSchool() {
	suite.mockStore.GetEntryByIDFunc = func(entryID string) (*Entry, error) {
		return &Entry{ID: entryID, SchoolID: "school-2"}, nil
	}

	svcErr := suite.service.DeleteEntry(suite.ctx, "school-1", "entry-1")

	suite.Nil(svcErr)
	suite.Empty(suite.mockStore.DeleteEntryCalls)
}

func (suite *ScheduleServiceTestSuite) TestListEntriesSuccess() {
	suite.mockStore.GetEntriesBySchoolFunc = func(schoolID string) ([]Entry, error) {
		return []Entry{
			{ID: "entry-1", SchoolID: schoolID, DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"},
			{ID: "entry-2", SchoolID: schoolID, DayOfWeek: 3, StartTime: "10:00", EndTime: "11:00"},
		}, nil
	}

	entries, svcErr := suite.service.ListEntries(suite.ctx, "school-1")

	suite.Require().Nil(svcErr)
	suite.Len(entries, 2)
}

func (suite *ScheduleServiceTestSuite) TestListEntriesWithBlankSchoolID() {
	entries, svcErr := suite.service.ListEntries(suite.ctx, "  ")

	suite.Nil(entries)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidRequestFormat.Code, svcErr.Code)
}

func (suite *ScheduleServiceTestSuite) TestGetTimetableCacheMiss() {
	suite.allowEntryPrereqs()
	suite.mockStore.GetEntriesByClassFunc = func(classID string) ([]Entry, error) {
		return []Entry{
			{ID: "entry-1", ClassID: classID, DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"},
			{ID: "entry-2", ClassID: classID, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
			{ID: "entry-3", ClassID: classID, DayOfWeek: 4, StartTime: "10:00", EndTime: "11:00"},
		}, nil
	}

	timetable, svcErr := suite.service.GetTimetable(suite.ctx, "school-1", "class-1")

	suite.Require().Nil(svcErr)
	suite.Require().NotNil(timetable)
	suite.Equal("school-1", timetable.SchoolID)
	suite.Equal("class-1", timetable.ClassID)
	suite.Require().Len(timetable.Days, 7)
	suite.Equal(1, timetable.Days[0].DayOfWeek)
	suite.Len(timetable.Days[0].Entries, 2)
	suite.Empty(timetable.Days[1].Entries)
	suite.Len(timetable.Days[3].Entries, 1)
	suite.Equal("entry-3", timetable.Days[3].Entries[0].ID)

	suite.Equal([]string{"school:school-1:schedule:class-1"}, suite.mockCache.GetCalls)
	suite.Require().Len(suite.mockCache.SetCalls, 1)
	suite.Equal("school:school-1:schedule:class-1", suite.mockCache.SetCalls[0].Key)
	suite.Equal(timetableCacheTTL, suite.mockCache.SetCalls[0].TTL)
}

func (suite *ScheduleServiceTestSuite) TestGetTimetableCacheHit() {
	cached := Timetable{
		SchoolID: "school-1",
		ClassID:  "class-1",
		Days: []TimetableDay{
			{DayOfWeek: 1, Entries: []Entry{{ID: "entry-1", DayOfWeek: 1}}},
		},
	}
	raw, err := json.Marshal(cached)
	suite.Require().NoError(err)
	suite.mockCache.MockGetCache = func(ctx context.Context, key string) (json.RawMessage, bool) {
		return raw, true
	}

	timetable, svcErr := suite.service.GetTimetable(suite.ctx, "school-1", "class-1")

	suite.Require().Nil(svcErr)
	suite.Require().NotNil(timetable)
	suite.Equal(cached, *timetable)
	suite.Empty(suite.mockStore.ClassListCalls)
	suite.Empty(suite.mockSchool.GetClassCalls)
	suite.Empty(suite.mockCache.SetCalls)
}

func (suite *ScheduleServiceTestSuite) TestGetTimetableClassNotFound() {
	timetable, svcErr := suite.service.GetTimetable(suite.ctx, "school-1", "missing")

	suite.Nil(timetable)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorClassNotFound.Code, svcErr.Code)
}

func (suite *ScheduleServiceTestSuite) TestTimesOverlap() {
	testCases := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		expected bool
	}{
		{name: "PartialOverlap", aStart: "09:00", aEnd: "10:00", bStart: "09:30", bEnd: "10:30", expected: true},
		{name: "Containment", aStart: "09:00", aEnd: "12:00", bStart: "10:00", bEnd: "11:00", expected: true},
		{name: "Identical", aStart: "09:00", aEnd: "10:00", bStart: "09:00", bEnd: "10:00", expected: true},
		{name: "BackToBack", aStart: "09:00", aEnd: "10:00", bStart: "10:00", bEnd: "11:00", expected: false},
		{name: "Disjoint", aStart: "08:00", aEnd: "09:00", bStart: "13:00", bEnd: "14:00", expected: false},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.Equal(tc.expected, timesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			suite.Equal(tc.expected, timesOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}
