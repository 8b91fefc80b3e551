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
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	"github.com/campushq/campus/internal/system/utils"
	"github.com/campushq/campus/internal/user"
)

const loggerComponentName = "ScheduleService"

// timeRegex matches 24-hour HH:MM times.
var timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ScheduleServiceInterface defines the interface for timetable management operations.
type ScheduleServiceInterface interface {
	CreateEntry(ctx context.Context, schoolID string, request *EntryRequest) (*Entry, *serviceerror.ServiceError)
	UpdateEntry(ctx context.Context, schoolID, entryID string, request *EntryRequest) (*Entry,
		*serviceerror.ServiceError)
	DeleteEntry(ctx context.Context, schoolID, entryID string) *serviceerror.ServiceError
	ListEntries(ctx context.Context, schoolID string) ([]Entry, *serviceerror.ServiceError)
	GetTimetable(ctx context.Context, schoolID, classID string) (*Timetable, *serviceerror.ServiceError)
}

// scheduleService is the default implementation of ScheduleServiceInterface.
type scheduleService struct {
	scheduleStore scheduleStoreInterface
	userService   user.UserServiceInterface
	schoolService school.SchoolServiceInterface
	cacheService  cache.CacheServiceInterface
}

// newScheduleService creates a new instance of scheduleService.
func newScheduleService(userService user.UserServiceInterface,
	schoolService school.SchoolServiceInterface,
	cacheService cache.CacheServiceInterface) ScheduleServiceInterface {
	return &scheduleService{
		scheduleStore: newScheduleStore(),
		userService:   userService,
		schoolService: schoolService,
		cacheService:  cacheService,
	}
}

// CreateEntry creates a new timetable entry for a class.
func (ss *scheduleService) CreateEntry(ctx context.Context, schoolID string,
	request *EntryRequest) (*Entry, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := ss.validateEntryRequest(ctx, schoolID, request); svcErr != nil {
		return nil, svcErr
	}
	if svcErr := ss.checkForConflicts(request, ""); svcErr != nil {
		return nil, svcErr
	}

	now := time.Now().UTC().Format(time.RFC3339)
	entry := Entry{
		ID:        utils.GenerateUUID(),
		SchoolID:  schoolID,
		ClassID:   request.ClassID,
		TeacherID: request.TeacherID,
		Subject:   request.Subject,
		DayOfWeek: request.DayOfWeek,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Room:      request.Room,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ss.scheduleStore.CreateEntry(entry); err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to create schedule entry", err,
			log.String("classID", request.ClassID))
	}

	ss.cacheService.InvalidateCachePattern(ctx, scheduleCachePattern(schoolID))
	logger.Debug("Successfully created schedule entry", log.String("entryID", entry.ID))
	return &entry, nil
}

// UpdateEntry updates a timetable entry of a school.
func (ss *scheduleService) UpdateEntry(ctx context.Context, schoolID, entryID string,
	request *EntryRequest) (*Entry, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(entryID) == "" {
		return nil, &ErrorInvalidEntryID
	}

	existing, err := ss.scheduleStore.GetEntryByID(entryID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, &ErrorEntryNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve schedule entry", err,
			log.String("entryID", entryID))
	}
	if existing.SchoolID != schoolID {
		return nil, &ErrorEntryNotFound
	}

	if svcErr := ss.validateEntryRequest(ctx, schoolID, request); svcErr != nil {
		return nil, svcErr
	}
	if svcErr := ss.checkForConflicts(request, entryID); svcErr != nil {
		return nil, svcErr
	}

	entry := Entry{
		ID:        existing.ID,
		SchoolID:  existing.SchoolID,
		ClassID:   request.ClassID,
		TeacherID: request.TeacherID,
		Subject:   request.Subject,
		DayOfWeek: request.DayOfWeek,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Room:      request.Room,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := ss.scheduleStore.UpdateEntry(&entry); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, &ErrorEntryNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to update schedule entry", err,
			log.String("entryID", entryID))
	}

	ss.cacheService.InvalidateCachePattern(ctx, scheduleCachePattern(schoolID))
	return &entry, nil
}

// DeleteEntry deletes a timetable entry of a school. The operation is idempotent.
func (ss *scheduleService) DeleteEntry(ctx context.Context, schoolID, entryID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(entryID) == "" {
		return &ErrorInvalidEntryID
	}

	existing, err := ss.scheduleStore.GetEntryByID(entryID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil
		}
		return logErrorAndReturnServerError(logger, "Failed to retrieve schedule entry", err,
			log.String("entryID", entryID))
	}
	if existing.SchoolID != schoolID {
		return nil
	}

	if err := ss.scheduleStore.DeleteEntry(entryID); err != nil {
		return logErrorAndReturnServerError(logger, "Failed to delete schedule entry", err,
			log.String("entryID", entryID))
	}

	ss.cacheService.InvalidateCachePattern(ctx, scheduleCachePattern(schoolID))
	return nil
}

// ListEntries retrieves the timetable entries of a school.
func (ss *scheduleService) ListEntries(ctx context.Context, schoolID string) ([]Entry,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	entries, err := ss.scheduleStore.GetEntriesBySchool(schoolID)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve schedule entries", err,
			log.String("schoolID", schoolID))
	}
	return entries, nil
}

// GetTimetable returns the week view of a class grouped by day of the week.
// The view is read-through cached per class.
func (ss *scheduleService) GetTimetable(ctx context.Context, schoolID, classID string) (*Timetable,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" || strings.TrimSpace(classID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	cacheKey := timetableCacheKey(schoolID, classID)
	if cached, ok := cache.GetCacheAs[Timetable](ctx, ss.cacheService, cacheKey); ok {
		return &cached, nil
	}

	if _, svcErr := ss.schoolService.GetClass(ctx, schoolID, classID); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorClassNotFound
		}
		return nil, &ErrorInternalServerError
	}

	entries, err := ss.scheduleStore.GetEntriesByClass(classID)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve schedule entries", err,
			log.String("classID", classID))
	}

	timetable := buildTimetable(schoolID, classID, entries)
	ss.cacheService.SetCache(ctx, cacheKey, *timetable, timetableCacheTTL)
	return timetable, nil
}

// validateEntryRequest validates the shape of an entry request and verifies the
// referenced class and teacher.
func (ss *scheduleService) validateEntryRequest(ctx context.Context, schoolID string,
	request *EntryRequest) *serviceerror.ServiceError {
	if strings.TrimSpace(schoolID) == "" || request == nil ||
		strings.TrimSpace(request.ClassID) == "" || strings.TrimSpace(request.TeacherID) == "" ||
		strings.TrimSpace(request.Subject) == "" {
		return &ErrorInvalidRequestFormat
	}
	if request.DayOfWeek < minDayOfWeek || request.DayOfWeek > maxDayOfWeek {
		return &ErrorInvalidDayOfWeek
	}
	if !timeRegex.MatchString(request.StartTime) || !timeRegex.MatchString(request.EndTime) {
		return &ErrorInvalidTimeFormat
	}
	if request.StartTime >= request.EndTime {
		return &ErrorInvalidTimeOrdering
	}

	if _, svcErr := ss.schoolService.GetClass(ctx, schoolID, request.ClassID); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return &ErrorClassNotFound
		}
		return &ErrorInternalServerError
	}

	teacher, svcErr := ss.userService.GetUser(ctx, request.TeacherID)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return &ErrorTeacherNotFound
		}
		return &ErrorInternalServerError
	}
	if teacher.Role != user.RoleTeacher {
		return &ErrorNotATeacher
	}
	return nil
}

// checkForConflicts rejects entries that overlap with an existing entry for the
// same class or teacher on the same day. excludeEntryID skips the entry being
// updated.
func (ss *scheduleService) checkForConflicts(request *EntryRequest,
	excludeEntryID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	candidates, err := ss.scheduleStore.GetConflictCandidates(request.DayOfWeek, request.ClassID,
		request.TeacherID)
	if err != nil {
		return logErrorAndReturnServerError(logger, "Failed to check for schedule conflicts", err,
			log.String("classID", request.ClassID))
	}

	for _, candidate := range candidates {
		if candidate.ID == excludeEntryID {
			continue
		}
		if timesOverlap(request.StartTime, request.EndTime, candidate.StartTime, candidate.EndTime) {
			return &ErrorScheduleConflict
		}
	}
	return nil
}

// timesOverlap reports whether two half-open time ranges intersect. Zero-padded
// HH:MM strings order lexicographically.
func timesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// buildTimetable groups entries into the week view. Every day of the week is
// present so the client renders a stable grid.
func buildTimetable(schoolID, classID string, entries []Entry) *Timetable {
	days := make([]TimetableDay, 0, maxDayOfWeek)
	for day := minDayOfWeek; day <= maxDayOfWeek; day++ {
		dayEntries := make([]Entry, 0)
		for _, entry := range entries {
			if entry.DayOfWeek == day {
				dayEntries = append(dayEntries, entry)
			}
		}
		days = append(days, TimetableDay{DayOfWeek: day, Entries: dayEntries})
	}
	return &Timetable{
		SchoolID: schoolID,
		ClassID:  classID,
		Days:     days,
	}
}

// logErrorAndReturnServerError logs the error and returns a generic server error.
func logErrorAndReturnServerError(logger *log.Logger, message string, err error,
	additionalFields ...log.Field) *serviceerror.ServiceError {
	fields := append(additionalFields, log.Error(err))
	logger.Error(message, fields...)
	return &ErrorInternalServerError
}
