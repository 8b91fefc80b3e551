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
	"fmt"
	"strconv"

	"github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/database/provider"
	"github.com/campushq/campus/internal/system/log"
)

// scheduleStoreInterface defines the interface for schedule store operations.
type scheduleStoreInterface interface {
	CreateEntry(entry Entry) error
	GetEntryByID(entryID string) (*Entry, error)
	GetEntriesByClass(classID string) ([]Entry, error)
	GetEntriesBySchool(schoolID string) ([]Entry, error)
	GetConflictCandidates(dayOfWeek int, classID, teacherID string) ([]Entry, error)
	UpdateEntry(entry *Entry) error
	DeleteEntry(entryID string) error
}

// scheduleStore is the default implementation of scheduleStoreInterface.
type scheduleStore struct {
	dbProvider provider.DBProviderInterface
}

// newScheduleStore creates a new instance of scheduleStore.
func newScheduleStore() scheduleStoreInterface {
	return &scheduleStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateEntry persists a new timetable entry.
func (ss *scheduleStore) CreateEntry(entry Entry) error {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateScheduleEntry, entry.ID, entry.SchoolID, entry.ClassID,
		entry.TeacherID, entry.Subject, entry.DayOfWeek, entry.StartTime, entry.EndTime, entry.Room,
		entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetEntryByID retrieves a timetable entry by ID.
func (ss *scheduleStore) GetEntryByID(entryID string) (*Entry, error) {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetScheduleEntryByID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrEntryNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	entry, err := buildEntryFromResultRow(results[0])
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule entry from result row: %w", err)
	}
	return entry, nil
}

// GetEntriesByClass retrieves the timetable entries of a class ordered by day and start time.
func (ss *scheduleStore) GetEntriesByClass(classID string) ([]Entry, error) {
	return ss.listEntries(queryGetScheduleEntriesByClass, classID)
}

// GetEntriesBySchool retrieves the timetable entries of a school ordered by day and start time.
func (ss *scheduleStore) GetEntriesBySchool(schoolID string) ([]Entry, error) {
	return ss.listEntries(queryGetScheduleEntriesBySchool, schoolID)
}

// GetConflictCandidates retrieves the entries of a day that share a class or a
// teacher with the given identifiers.
func (ss *scheduleStore) GetConflictCandidates(dayOfWeek int, classID, teacherID string) ([]Entry, error) {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetConflictCandidates, dayOfWeek, classID, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	entries := make([]Entry, 0, len(results))
	for _, row := range results {
		entry, err := buildEntryFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build schedule entry from result row: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// listEntries retrieves timetable entries using the provided query and identifier.
func (ss *scheduleStore) listEntries(query model.DBQuery, identifier string) ([]Entry, error) {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	entries := make([]Entry, 0, len(results))
	for _, row := range results {
		entry, err := buildEntryFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build schedule entry from result row: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// UpdateEntry updates a timetable entry by ID.
func (ss *scheduleStore) UpdateEntry(entry *Entry) error {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateScheduleEntryByID, entry.ID, entry.ClassID,
		entry.TeacherID, entry.Subject, entry.DayOfWeek, entry.StartTime, entry.EndTime, entry.Room,
		entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteEntry deletes a timetable entry by ID. The operation is idempotent.
func (ss *scheduleStore) DeleteEntry(entryID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ScheduleStore"))

	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeleteScheduleEntryByID, entryID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		logger.Debug("Schedule entry not found with id: " + entryID)
	}
	return nil
}

// buildEntryFromResultRow constructs an Entry from a database result row.
func buildEntryFromResultRow(row map[string]interface{}) (*Entry, error) {
	entryID, err := rowString(row, "entry_id")
	if err != nil {
		return nil, err
	}
	schoolID, err := rowString(row, "school_id")
	if err != nil {
		return nil, err
	}
	classID, err := rowString(row, "class_id")
	if err != nil {
		return nil, err
	}
	teacherID, err := rowString(row, "teacher_id")
	if err != nil {
		return nil, err
	}
	subject, err := rowString(row, "subject")
	if err != nil {
		return nil, err
	}
	dayOfWeek, err := rowInt(row, "day_of_week")
	if err != nil {
		return nil, err
	}
	startTime, err := rowString(row, "start_time")
	if err != nil {
		return nil, err
	}
	endTime, err := rowString(row, "end_time")
	if err != nil {
		return nil, err
	}
	room, err := rowString(row, "room")
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

	return &Entry{
		ID:        entryID,
		SchoolID:  schoolID,
		ClassID:   classID,
		TeacherID: teacherID,
		Subject:   subject,
		DayOfWeek: dayOfWeek,
		StartTime: startTime,
		EndTime:   endTime,
		Room:      room,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// rowString extracts a string column from a result row.
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
