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

package school

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	"github.com/campushq/campus/internal/system/utils"
)

const loggerComponentName = "SchoolService"

// SchoolServiceInterface defines the interface for school and class management operations.
type SchoolServiceInterface interface {
	CreateSchool(ctx context.Context, request *SchoolRequest) (*School, *serviceerror.ServiceError)
	GetSchool(ctx context.Context, schoolID string) (*School, *serviceerror.ServiceError)
	GetSchoolList(ctx context.Context) ([]School, *serviceerror.ServiceError)
	UpdateSchool(ctx context.Context, schoolID string, request *SchoolRequest) (*School, *serviceerror.ServiceError)
	DeleteSchool(ctx context.Context, schoolID string) *serviceerror.ServiceError
	CreateClass(ctx context.Context, schoolID string, request *ClassRequest) (*Class, *serviceerror.ServiceError)
	GetClass(ctx context.Context, schoolID, classID string) (*Class, *serviceerror.ServiceError)
	GetClassList(ctx context.Context, schoolID string) ([]Class, *serviceerror.ServiceError)
	UpdateClass(ctx context.Context, schoolID, classID string,
		request *ClassRequest) (*Class, *serviceerror.ServiceError)
	DeleteClass(ctx context.Context, schoolID, classID string) *serviceerror.ServiceError
}

// schoolService is the default implementation of SchoolServiceInterface.
type schoolService struct {
	schoolStore  schoolStoreInterface
	cacheService cache.CacheServiceInterface
}

// newSchoolService creates a new instance of schoolService.
func newSchoolService(cacheService cache.CacheServiceInterface) SchoolServiceInterface {
	return &schoolService{
		schoolStore:  newSchoolStore(),
		cacheService: cacheService,
	}
}

// CreateSchool creates a new school.
func (ss *schoolService) CreateSchool(ctx context.Context,
	request *SchoolRequest) (*School, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	status, svcErr := validateSchoolRequest(request)
	if svcErr != nil {
		return nil, svcErr
	}

	existing, err := ss.schoolStore.GetSchoolByName(request.Name)
	if err != nil && !errors.Is(err, ErrSchoolNotFound) {
		return nil, logErrorAndReturnServerError(logger, "Failed to check school name uniqueness", err)
	}
	if existing != nil {
		return nil, &ErrorSchoolAlreadyExists
	}

	now := time.Now().UTC().Format(time.RFC3339)
	school := School{
		ID:        utils.GenerateUUID(),
		Name:      request.Name,
		Address:   request.Address,
		Email:     request.Email,
		Phone:     request.Phone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ss.schoolStore.CreateSchool(school); err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to create school", err)
	}

	ss.invalidateSchoolCaches(ctx, school.ID)

	logger.Debug("School created successfully", log.String("schoolID", school.ID))
	return &school, nil
}

// GetSchool retrieves a school by its ID. The school profile is served from
// the cache when present and read through to the database otherwise.
func (ss *schoolService) GetSchool(ctx context.Context, schoolID string) (*School, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidSchoolID
	}

	cacheKey := schoolProfileCacheKey(schoolID)
	if cached, ok := cache.GetCacheAs[School](ctx, ss.cacheService, cacheKey); ok {
		return &cached, nil
	}

	school, err := ss.schoolStore.GetSchoolByID(schoolID)
	if err != nil {
		if errors.Is(err, ErrSchoolNotFound) {
			return nil, &ErrorSchoolNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve school", err)
	}

	ss.cacheService.SetCache(ctx, cacheKey, *school, schoolProfileCacheTTL)

	return school, nil
}

// GetSchoolList retrieves the list of schools.
func (ss *schoolService) GetSchoolList(ctx context.Context) ([]School, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	schools, err := ss.schoolStore.GetSchoolList()
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to list schools", err)
	}

	return schools, nil
}

// UpdateSchool updates an existing school.
func (ss *schoolService) UpdateSchool(ctx context.Context, schoolID string,
	request *SchoolRequest) (*School, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidSchoolID
	}
	status, svcErr := validateSchoolRequest(request)
	if svcErr != nil {
		return nil, svcErr
	}

	existing, err := ss.schoolStore.GetSchoolByID(schoolID)
	if err != nil {
		if errors.Is(err, ErrSchoolNotFound) {
			return nil, &ErrorSchoolNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve school", err)
	}

	if request.Name != existing.Name {
		conflicting, err := ss.schoolStore.GetSchoolByName(request.Name)
		if err != nil && !errors.Is(err, ErrSchoolNotFound) {
			return nil, logErrorAndReturnServerError(logger, "Failed to check school name uniqueness", err)
		}
		if conflicting != nil && conflicting.ID != schoolID {
			return nil, &ErrorSchoolAlreadyExists
		}
	}

	updated := School{
		ID:        schoolID,
		Name:      request.Name,
		Address:   request.Address,
		Email:     request.Email,
		Phone:     request.Phone,
		Status:    status,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := ss.schoolStore.UpdateSchool(&updated); err != nil {
		if errors.Is(err, ErrSchoolNotFound) {
			return nil, &ErrorSchoolNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to update school", err)
	}

	ss.invalidateSchoolCaches(ctx, schoolID)

	logger.Debug("School updated successfully", log.String("schoolID", schoolID))
	return &updated, nil
}

// DeleteSchool deletes a school and its classes. Deleting a school that does
// not exist is a no-op.
func (ss *schoolService) DeleteSchool(ctx context.Context, schoolID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return &ErrorInvalidSchoolID
	}

	if err := ss.schoolStore.DeleteSchool(schoolID); err != nil {
		return logErrorAndReturnServerError(logger, "Failed to delete school", err)
	}

	ss.invalidateSchoolCaches(ctx, schoolID)

	logger.Debug("School deleted successfully", log.String("schoolID", schoolID))
	return nil
}

// CreateClass creates a new class under a school.
func (ss *schoolService) CreateClass(ctx context.Context, schoolID string,
	request *ClassRequest) (*Class, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidSchoolID
	}
	if svcErr := validateClassRequest(request); svcErr != nil {
		return nil, svcErr
	}

	if _, err := ss.schoolStore.GetSchoolByID(schoolID); err != nil {
		if errors.Is(err, ErrSchoolNotFound) {
			return nil, &ErrorSchoolNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve school", err)
	}

	existing, err := ss.schoolStore.GetClassBySchoolAndName(schoolID, request.Name)
	if err != nil && !errors.Is(err, ErrClassNotFound) {
		return nil, logErrorAndReturnServerError(logger, "Failed to check class name uniqueness", err)
	}
	if existing != nil {
		return nil, &ErrorClassAlreadyExists
	}

	now := time.Now().UTC().Format(time.RFC3339)
	class := Class{
		ID:                utils.GenerateUUID(),
		SchoolID:          schoolID,
		Name:              request.Name,
		GradeLevel:        request.GradeLevel,
		HomeroomTeacherID: request.HomeroomTeacherID,
		Capacity:          request.Capacity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := ss.schoolStore.CreateClass(class); err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to create class", err)
	}

	ss.invalidateSchoolCaches(ctx, schoolID)

	logger.Debug("Class created successfully", log.String("classID", class.ID),
		log.String("schoolID", schoolID))
	return &class, nil
}

// GetClass retrieves a class of a school by its ID.
func (ss *schoolService) GetClass(ctx context.Context, schoolID, classID string) (*Class, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidSchoolID
	}
	if strings.TrimSpace(classID) == "" {
		return nil, &ErrorInvalidClassID
	}

	class, err := ss.schoolStore.GetClassByID(schoolID, classID)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			return nil, &ErrorClassNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve class", err)
	}

	return class, nil
}

// GetClassList retrieves the classes of a school.
func (ss *schoolService) GetClassList(ctx context.Context, schoolID string) ([]Class, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidSchoolID
	}

	if _, err := ss.schoolStore.GetSchoolByID(schoolID); err != nil {
		if errors.Is(err, ErrSchoolNotFound) {
			return nil, &ErrorSchoolNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve school", err)
	}

	classes, err := ss.schoolStore.GetClassList(schoolID)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to list classes", err)
	}

	return classes, nil
}

// UpdateClass updates an existing class of a school.
func (ss *schoolService) UpdateClass(ctx context.Context, schoolID, classID string,
	request *ClassRequest) (*Class, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidSchoolID
	}
	if strings.TrimSpace(classID) == "" {
		return nil, &ErrorInvalidClassID
	}
	if svcErr := validateClassRequest(request); svcErr != nil {
		return nil, svcErr
	}

	existing, err := ss.schoolStore.GetClassByID(schoolID, classID)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			return nil, &ErrorClassNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve class", err)
	}

	if request.Name != existing.Name {
		conflicting, err := ss.schoolStore.GetClassBySchoolAndName(schoolID, request.Name)
		if err != nil && !errors.Is(err, ErrClassNotFound) {
			return nil, logErrorAndReturnServerError(logger, "Failed to check class name uniqueness", err)
		}
		if conflicting != nil && conflicting.ID != classID {
			return nil, &ErrorClassAlreadyExists
		}
	}

	updated := Class{
		ID:                classID,
		SchoolID:          schoolID,
		Name:              request.Name,
		GradeLevel:        request.GradeLevel,
		HomeroomTeacherID: request.HomeroomTeacherID,
		Capacity:          request.Capacity,
		CreatedAt:         existing.CreatedAt,
		UpdatedAt:         time.Now().UTC().Format(time.RFC3339),
	}

	if err := ss.schoolStore.UpdateClass(&updated); err != nil {
		if errors.Is(err, ErrClassNotFound) {
			return nil, &ErrorClassNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to update class", err)
	}

	ss.invalidateSchoolCaches(ctx, schoolID)

	logger.Debug("Class updated successfully", log.String("classID", classID),
		log.String("schoolID", schoolID))
	return &updated, nil
}

// DeleteClass deletes a class of a school. Deleting a class that does not
// exist is a no-op.
func (ss *schoolService) DeleteClass(ctx context.Context, schoolID, classID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return &ErrorInvalidSchoolID
	}
	if strings.TrimSpace(classID) == "" {
		return &ErrorInvalidClassID
	}

	if err := ss.schoolStore.DeleteClass(schoolID, classID); err != nil {
		return logErrorAndReturnServerError(logger, "Failed to delete class", err)
	}

	ss.invalidateSchoolCaches(ctx, schoolID)

	logger.Debug("Class deleted successfully", log.String("classID", classID),
		log.String("schoolID", schoolID))
	return nil
}

// invalidateSchoolCaches drops every cache entry scoped to the school along
// with the aggregate dashboard statistics.
func (ss *schoolService) invalidateSchoolCaches(ctx context.Context, schoolID string) {
	ss.cacheService.InvalidateCachePattern(ctx, schoolCachePattern(schoolID))
	ss.cacheService.InvalidateCachePattern(ctx, adminStatsCachePattern)
}

// validateSchoolRequest validates a school create or update request and
// resolves the requested status.
func validateSchoolRequest(request *SchoolRequest) (SchoolStatus, *serviceerror.ServiceError) {
	if request == nil {
		return "", &ErrorInvalidRequestFormat
	}
	if strings.TrimSpace(request.Name) == "" {
		return "", &ErrorInvalidSchoolName
	}

	status := SchoolStatus(request.Status)
	if request.Status == "" {
		status = SchoolStatusActive
	} else if !slices.Contains(supportedSchoolStatuses, status) {
		return "", &ErrorInvalidSchoolStatus
	}

	return status, nil
}

// validateClassRequest validates a class create or update request.
func validateClassRequest(request *ClassRequest) *serviceerror.ServiceError {
	if request == nil {
		return &ErrorInvalidRequestFormat
	}
	if strings.TrimSpace(request.Name) == "" {
		return &ErrorInvalidClassName
	}
	if request.GradeLevel < minGradeLevel || request.GradeLevel > maxGradeLevel {
		return &ErrorInvalidGradeLevel
	}
	if request.Capacity < 1 {
		return &ErrorInvalidCapacity
	}
	return nil
}

// logErrorAndReturnServerError logs the error and returns a server error.
func logErrorAndReturnServerError(
	logger *log.Logger,
	message string,
	err error,
	additionalFields ...log.Field,
) *serviceerror.ServiceError {
	fields := additionalFields
	if err != nil {
		fields = append(fields, log.Error(err))
	}
	logger.Error(message, fields...)
	return &ErrorInternalServerError
}
