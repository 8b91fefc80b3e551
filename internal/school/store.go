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
	"errors"
	"fmt"
	"strconv"

	dbmodel "github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/database/provider"
	"github.com/campushq/campus/internal/system/log"
)

// schoolStoreInterface defines the interface for school store operations.
type schoolStoreInterface interface {
	CreateSchool(school School) error
	GetSchoolByID(schoolID string) (*School, error)
	GetSchoolByName(name string) (*School, error)
	GetSchoolList() ([]School, error)
	UpdateSchool(school *School) error
	DeleteSchool(schoolID string) error
	CreateClass(class Class) error
	GetClassByID(schoolID, classID string) (*Class, error)
	GetClassBySchoolAndName(schoolID, name string) (*Class, error)
	GetClassList(schoolID string) ([]Class, error)
	UpdateClass(class *Class) error
	DeleteClass(schoolID, classID string) error
}

// schoolStore is the default implementation of schoolStoreInterface.
type schoolStore struct {
	dbProvider provider.DBProviderInterface
}

// newSchoolStore creates a new instance of schoolStore.
func newSchoolStore() schoolStoreInterface {
	return &schoolStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateSchool handles the school creation in the database.
func (s *schoolStore) CreateSchool(school School) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateSchool, school.ID, school.Name, school.Address, school.Email,
		school.Phone, string(school.Status), school.CreatedAt, school.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetSchoolByID retrieves a specific school by its ID from the database.
func (s *schoolStore) GetSchoolByID(schoolID string) (*School, error) {
	return s.getSchool(queryGetSchoolByID, schoolID)
}

// GetSchoolByName retrieves a specific school by its name from the database.
func (s *schoolStore) GetSchoolByName(name string) (*School, error) {
	return s.getSchool(queryGetSchoolByName, name)
}

// getSchool retrieves a school based on the provided query and identifier.
func (s *schoolStore) getSchool(query dbmodel.DBQuery, identifier string) (*School, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrSchoolNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildSchoolFromResultRow(results[0])
}

// GetSchoolList retrieves the list of schools from the database.
func (s *schoolStore) GetSchoolList() ([]School, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetSchoolList)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	schools := make([]School, 0, len(results))
	for _, row := range results {
		school, err := buildSchoolFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build school from result row: %w", err)
		}
		schools = append(schools, *school)
	}

	return schools, nil
}

// UpdateSchool updates the school in the database.
func (s *schoolStore) UpdateSchool(school *School) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateSchoolByID, school.ID, school.Name, school.Address,
		school.Email, school.Phone, string(school.Status), school.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSchoolNotFound
	}

	return nil
}

// DeleteSchool deletes the school and its classes from the database.
func (s *schoolStore) DeleteSchool(schoolID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SchoolStore"))

	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(queryDeleteClassesBySchoolID.Query, schoolID); err != nil {
		retErr := fmt.Errorf("failed to execute query for deleting classes: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	result, err := tx.Exec(queryDeleteSchoolByID.Query, schoolID)
	if err != nil {
		retErr := fmt.Errorf("failed to execute query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	if err = tx.Commit(); err != nil {
		retErr := fmt.Errorf("failed to commit transaction: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected == 0 {
		logger.Debug("school not found with id: " + schoolID)
	}

	return nil
}

// CreateClass handles the class creation in the database.
func (s *schoolStore) CreateClass(class Class) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateClass, class.ID, class.SchoolID, class.Name, class.GradeLevel,
		class.HomeroomTeacherID, class.Capacity, class.CreatedAt, class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetClassByID retrieves a specific class of a school by its ID from the database.
func (s *schoolStore) GetClassByID(schoolID, classID string) (*Class, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetClassByID, classID, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrClassNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildClassFromResultRow(results[0])
}

// GetClassBySchoolAndName retrieves a specific class of a school by its name from the database.
func (s *schoolStore) GetClassBySchoolAndName(schoolID, name string) (*Class, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetClassBySchoolAndName, schoolID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrClassNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildClassFromResultRow(results[0])
}

// GetClassList retrieves the classes of a school from the database.
func (s *schoolStore) GetClassList(schoolID string) ([]Class, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetClassListBySchoolID, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	classes := make([]Class, 0, len(results))
	for _, row := range results {
		class, err := buildClassFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build class from result row: %w", err)
		}
		classes = append(classes, *class)
	}

	return classes, nil
}

// UpdateClass updates the class in the database.
func (s *schoolStore) UpdateClass(class *Class) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateClassByID, class.ID, class.SchoolID, class.Name,
		class.GradeLevel, class.HomeroomTeacherID, class.Capacity, class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrClassNotFound
	}

	return nil
}

// DeleteClass deletes the class from the database.
func (s *schoolStore) DeleteClass(schoolID, classID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SchoolStore"))

	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeleteClassByID, classID, schoolID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		logger.Debug("class not found with id: " + classID)
	}

	return nil
}

// buildSchoolFromResultRow builds a school from a database result row.
func buildSchoolFromResultRow(row map[string]interface{}) (*School, error) {
	schoolID, err := rowString(row, "school_id")
	if err != nil {
		return nil, err
	}
	name, err := rowString(row, "name")
	if err != nil {
		return nil, err
	}
	address, err := rowString(row, "address")
	if err != nil {
		return nil, err
	}
	email, err := rowString(row, "email")
	if err != nil {
		return nil, err
	}
	phone, err := rowString(row, "phone")
	if err != nil {
		return nil, err
	}
	status, err := rowString(row, "status")
	if err != nil {
		return nil, err
	}
	createdAt, err := rowString(row, "created_at")
	if err != nil {
		return nil, err
	}
	updatedAt, err := rowString(row, "updated_at")
	if err != nil {
		return nil, err
	}

	return &School{
		ID:        schoolID,
		Name:      name,
		Address:   address,
		Email:     email,
		Phone:     phone,
		Status:    SchoolStatus(status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// buildClassFromResultRow builds a class from a database result row.
func buildClassFromResultRow(row map[string]interface{}) (*Class, error) {
	classID, err := rowString(row, "class_id")
	if err != nil {
		return nil, err
	}
	schoolID, err := rowString(row, "school_id")
	if err != nil {
		return nil, err
	}
	name, err := rowString(row, "name")
	if err != nil {
		return nil, err
	}
	gradeLevel, err := rowInt(row, "grade_level")
	if err != nil {
		return nil, err
	}
	homeroomTeacherID, err := rowString(row, "homeroom_teacher_id")
	if err != nil {
		return nil, err
	}
	capacity, err := rowInt(row, "capacity")
	if err != nil {
		return nil, err
	}
	createdAt, err := rowString(row, "created_at")
	if err != nil {
		return nil, err
	}
	updatedAt, err := rowString(row, "updated_at")
	if err != nil {
		return nil, err
	}

	return &Class{
		ID:                classID,
		SchoolID:          schoolID,
		Name:              name,
		GradeLevel:        gradeLevel,
		HomeroomTeacherID: homeroomTeacherID,
		Capacity:          capacity,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

// rowString extracts a string column from a result row. Null columns yield an empty string.
func rowString(row map[string]interface{}, column string) (string, error) {
	switch value := row[column].(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case []byte:
		return string(value), nil
	default:
		return "", fmt.Errorf("failed to parse %s as string", column)
	}
}

// rowInt extracts an integer column from a result row.
func rowInt(row map[string]interface{}, column string) (int, error) {
	switch value := row[column].(type) {
	case nil:
		return 0, nil
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case float64:
		return int(value), nil
	case string:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("failed to parse %s as int: %w", column, err)
		}
		return parsed, nil
	case []byte:
		parsed, err := strconv.Atoi(string(value))
		if err != nil {
			return 0, fmt.Errorf("failed to parse %s as int: %w", column, err)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("failed to parse %s as int", column)
	}
}
