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
	"fmt"
	"strconv"

	"github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/database/provider"
	"github.com/campushq/campus/internal/system/log"
)

// enrollmentStoreInterface defines the interface for enrollment persistence operations.
type enrollmentStoreInterface interface {
	CreateEnrollment(enrollment Enrollment) error
	GetEnrollmentByID(enrollmentID string) (*Enrollment, error)
	GetActiveEnrollment(studentID, classID string) (*Enrollment, error)
	GetEnrollmentsByClass(classID string) ([]Enrollment, error)
	GetEnrollmentsByStudent(studentID string) ([]Enrollment, error)
	CountActiveEnrollmentsByClass(classID string) (int, error)
	UpdateEnrollmentStatus(enrollmentID string, status EnrollmentStatus) error
	DeleteEnrollment(enrollmentID string) error
}

// enrollmentStore is the default implementation of enrollmentStoreInterface.
type enrollmentStore struct {
	dbProvider provider.DBProviderInterface
}

// newEnrollmentStore creates a new instance of enrollmentStore.
func newEnrollmentStore() enrollmentStoreInterface {
	return &enrollmentStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateEnrollment persists a new enrollment.
func (es *enrollmentStore) CreateEnrollment(enrollment Enrollment) error {
	dbClient, err := es.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateEnrollment, enrollment.ID, enrollment.StudentID,
		enrollment.ClassID, enrollment.SchoolID, string(enrollment.Status), enrollment.EnrolledAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetEnrollmentByID retrieves an enrollment by ID.
func (es *enrollmentStore) GetEnrollmentByID(enrollmentID string) (*Enrollment, error) {
	return es.getEnrollment(queryGetEnrollmentByID, enrollmentID)
}

// GetActiveEnrollment retrieves the active enrollment of a student in a class.
func (es *enrollmentStore) GetActiveEnrollment(studentID, classID string) (*Enrollment, error) {
	return es.getEnrollment(queryGetActiveEnrollment, studentID, classID)
}

// getEnrollment retrieves a single enrollment using the provided query and arguments.
func (es *enrollmentStore) getEnrollment(query model.DBQuery, args ...interface{}) (*Enrollment, error) {
	dbClient, err := es.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrEnrollmentNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	enrollment, err := buildEnrollmentFromResultRow(results[0])
	if err != nil {
		return nil, fmt.Errorf("failed to build enrollment from result row: %w", err)
	}
	return enrollment, nil
}

// GetEnrollmentsByClass retrieves the enrollments of a class.
func (es *enrollmentStore) GetEnrollmentsByClass(classID string) ([]Enrollment, error) {
	return es.listEnrollments(queryGetEnrollmentsByClass, classID)
}

// GetEnrollmentsByStudent retrieves the enrollments of a student.
func (es *enrollmentStore) GetEnrollmentsByStudent(studentID string) ([]Enrollment, error) {
	return es.listEnrollments(queryGetEnrollmentsByStudent, studentID)
}

// listEnrollments retrieves enrollments using the provided query and identifier.
func (es *enrollmentStore) listEnrollments(query model.DBQuery, identifier string) ([]Enrollment, error) {
	dbClient, err := es.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	enrollments := make([]Enrollment, 0, len(results))
	for _, row := range results {
		enrollment, err := buildEnrollmentFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build enrollment from result row: %w", err)
		}
		enrollments = append(enrollments, *enrollment)
	}
	return enrollments, nil
}

// CountActiveEnrollmentsByClass counts the active enrollments of a class.
func (es *enrollmentStore) CountActiveEnrollmentsByClass(classID string) (int, error) {
	dbClient, err := es.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCountActiveEnrollmentsByClass, classID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	switch value := results[0]["total"].(type) {
	case int64:
		return int(value), nil
	case int:
		return value, nil
	case string:
		return strconv.Atoi(value)
	default:
		return 0, fmt.Errorf("failed to parse total as int")
	}
}

// UpdateEnrollmentStatus updates the status of an enrollment.
func (es *enrollmentStore) UpdateEnrollmentStatus(enrollmentID string, status EnrollmentStatus) error {
	dbClient, err := es.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateEnrollmentStatus, enrollmentID, string(status))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

// DeleteEnrollment deletes an enrollment by ID. The operation is idempotent.
func (es *enrollmentStore) DeleteEnrollment(enrollmentID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EnrollmentStore"))

	dbClient, err := es.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeleteEnrollment, enrollmentID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		logger.Debug("enrollment not found with id: " + enrollmentID)
	}
	return nil
}

// buildEnrollmentFromResultRow constructs an Enrollment from a database result row.
func buildEnrollmentFromResultRow(row map[string]interface{}) (*Enrollment, error) {
	enrollmentID, err := rowString(row, "enrollment_id")
	if err != nil {
		return nil, err
	}
	studentID, err := rowString(row, "student_id")
	if err != nil {
		return nil, err
	}
	classID, err := rowString(row, "class_id")
	if err != nil {
		return nil, err
	}
	schoolID, err := rowString(row, "school_id")
	if err != nil {
		return nil, err
	}
	status, err := rowString(row, "status")
	if err != nil {
		return nil, err
	}
	enrolledAt, err := rowString(row, "enrolled_at")
	if err != nil {
		return nil, err
	}

	return &Enrollment{
		ID:         enrollmentID,
		StudentID:  studentID,
		ClassID:    classID,
		SchoolID:   schoolID,
		Status:     EnrollmentStatus(status),
		EnrolledAt: enrolledAt,
	}, nil
}

// rowString extracts a string column from a database result row.
func rowString(row map[string]interface{}, column string) (string, error) {
	value, ok := row[column]
	if !ok || value == nil {
		return "", nil
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to parse %s as string", column)
	}
}
