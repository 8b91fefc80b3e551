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

package enrollment

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	"github.com/campushq/campus/internal/system/utils"
	"github.com/campushq/campus/internal/user"
)

const loggerComponentName = "EnrollmentService"

// EnrollmentServiceInterface defines the interface for the enrollment service.
type EnrollmentServiceInterface interface {
	Enroll(ctx context.Context, request *EnrollRequest) (*Enrollment, *serviceerror.ServiceError)
	UpdateStatus(ctx context.Context, enrollmentID string, request *UpdateStatusRequest) (*Enrollment,
		*serviceerror.ServiceError)
	Withdraw(ctx context.Context, enrollmentID string) *serviceerror.ServiceError
	ListByClass(ctx context.Context, classID string) ([]Enrollment, *serviceerror.ServiceError)
	ListByStudent(ctx context.Context, studentID string) ([]Enrollment, *serviceerror.ServiceError)
}

// enrollmentService is the default implementation of EnrollmentServiceInterface.
type enrollmentService struct {
	enrollmentStore enrollmentStoreInterface
	userService     user.UserServiceInterface
	schoolService   school.SchoolServiceInterface
	cacheService    cache.CacheServiceInterface
}

// newEnrollmentService creates a new instance of enrollmentService.
func newEnrollmentService(userService user.UserServiceInterface,
	schoolService school.SchoolServiceInterface,
	cacheService cache.CacheServiceInterface) EnrollmentServiceInterface {
	return &enrollmentService{
		enrollmentStore: newEnrollmentStore(),
		userService:     userService,
		schoolService:   schoolService,
		cacheService:    cacheService,
	}
}

// Enroll enrolls a student in a class. A student can have at most one active
// enrollment per class, and a class with a positive capacity rejects new
// enrollments once its active headcount reaches it.
func (es *enrollmentService) Enroll(ctx context.Context, request *EnrollRequest) (*Enrollment,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request == nil || strings.TrimSpace(request.StudentID) == "" ||
		strings.TrimSpace(request.ClassID) == "" || strings.TrimSpace(request.SchoolID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	student, svcErr := es.userService.GetUser(ctx, request.StudentID)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorStudentNotFound
		}
		return nil, &ErrorInternalServerError
	}
	if student.Role != user.RoleStudent {
		return nil, &ErrorNotAStudent
	}

	class, svcErr := es.schoolService.GetClass(ctx, request.SchoolID, request.ClassID)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorClassNotFound
		}
		return nil, &ErrorInternalServerError
	}

	if _, err := es.enrollmentStore.GetActiveEnrollment(request.StudentID, request.ClassID); err == nil {
		return nil, &ErrorDuplicateEnrollment
	} else if !errors.Is(err, ErrEnrollmentNotFound) {
		return nil, logErrorAndReturnServerError(logger, "Failed to check enrollment existence", err)
	}

	// A zero capacity means the class is unbounded.
	if class.Capacity > 0 {
		active, err := es.enrollmentStore.CountActiveEnrollmentsByClass(request.ClassID)
		if err != nil {
			return nil, logErrorAndReturnServerError(logger, "Failed to count class enrollments", err,
				log.String("classID", request.ClassID))
		}
		if active >= class.Capacity {
			return nil, &ErrorClassFull
		}
	}

	enrollment := Enrollment{
		ID:         utils.GenerateUUID(),
		StudentID:  request.StudentID,
		ClassID:    request.ClassID,
		SchoolID:   request.SchoolID,
		Status:     EnrollmentStatusActive,
		EnrolledAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := es.enrollmentStore.CreateEnrollment(enrollment); err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to create enrollment", err,
			log.String("studentID", request.StudentID), log.String("classID", request.ClassID))
	}

	es.invalidateEnrollmentCaches(ctx, enrollment.SchoolID)
	logger.Debug("Successfully created enrollment", log.String("enrollmentID", enrollment.ID))
	return &enrollment, nil
}

// UpdateStatus updates the status of an enrollment.
func (es *enrollmentService) UpdateStatus(ctx context.Context, enrollmentID string,
	request *UpdateStatusRequest) (*Enrollment, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(enrollmentID) == "" {
		return nil, &ErrorInvalidEnrollmentID
	}
	if request == nil || !slices.Contains(supportedEnrollmentStatuses, EnrollmentStatus(request.Status)) {
		return nil, &ErrorInvalidStatus
	}

	enrollment, err := es.enrollmentStore.GetEnrollmentByID(enrollmentID)
	if err != nil {
		if errors.Is(err, ErrEnrollmentNotFound) {
			return nil, &ErrorEnrollmentNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve enrollment", err,
			log.String("enrollmentID", enrollmentID))
	}

	status := EnrollmentStatus(request.Status)
	if err := es.enrollmentStore.UpdateEnrollmentStatus(enrollmentID, status); err != nil {
		if errors.Is(err, ErrEnrollmentNotFound) {
			return nil, &ErrorEnrollmentNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to update enrollment status", err,
			log.String("enrollmentID", enrollmentID))
	}

	enrollment.Status = status
	es.invalidateEnrollmentCaches(ctx, enrollment.SchoolID)
	return enrollment, nil
}

// Withdraw removes an enrollment. The operation is idempotent.
func (es *enrollmentService) Withdraw(ctx context.Context, enrollmentID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(enrollmentID) == "" {
		return &ErrorInvalidEnrollmentID
	}

	enrollment, err := es.enrollmentStore.GetEnrollmentByID(enrollmentID)
	if err != nil {
		if errors.Is(err, ErrEnrollmentNotFound) {
			return nil
		}
		return logErrorAndReturnServerError(logger, "Failed to retrieve enrollment", err,
			log.String("enrollmentID", enrollmentID))
	}

	if err := es.enrollmentStore.DeleteEnrollment(enrollmentID); err != nil {
		return logErrorAndReturnServerError(logger, "Failed to delete enrollment", err,
			log.String("enrollmentID", enrollmentID))
	}

	es.invalidateEnrollmentCaches(ctx, enrollment.SchoolID)
	return nil
}

// ListByClass retrieves the enrollments of a class.
func (es *enrollmentService) ListByClass(ctx context.Context, classID string) ([]Enrollment,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(classID) == "" {
		return nil, &ErrorMissingListFilter
	}

	enrollments, err := es.enrollmentStore.GetEnrollmentsByClass(classID)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve enrollments", err,
			log.String("classID", classID))
	}
	return enrollments, nil
}

// ListByStudent retrieves the enrollments of a student.
func (es *enrollmentService) ListByStudent(ctx context.Context, studentID string) ([]Enrollment,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(studentID) == "" {
		return nil, &ErrorMissingListFilter
	}

	enrollments, err := es.enrollmentStore.GetEnrollmentsByStudent(studentID)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve enrollments", err,
			log.String("studentID", studentID))
	}
	return enrollments, nil
}

// invalidateEnrollmentCaches invalidates the cached entries affected by an
// enrollment mutation: the owning school's entries, the dashboard statistics,
// and the enrollment trend series.
func (es *enrollmentService) invalidateEnrollmentCaches(ctx context.Context, schoolID string) {
	es.cacheService.InvalidateCachePattern(ctx, schoolCachePattern(schoolID))
	es.cacheService.InvalidateCachePattern(ctx, adminStatsCachePattern)
	es.cacheService.InvalidateCachePattern(ctx, adminTrendsCachePattern)
}

// logErrorAndReturnServerError logs the error and returns a generic server error.
func logErrorAndReturnServerError(logger *log.Logger, message string, err error,
	additionalFields ...log.Field) *serviceerror.ServiceError {
	fields := append(additionalFields, log.Error(err))
	logger.Error(message, fields...)
	return &ErrorInternalServerError
}
