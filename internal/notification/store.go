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

package notification

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/campushq/campus/internal/system/cmodels"
	dbmodel "github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/database/provider"
)

// notificationStoreInterface defines the interface for announcement and
// message sender persistence operations. Announcements and senders live in
// the campus datasource; dispatch attempts live in the runtime datasource.
type notificationStoreInterface interface {
	CreateAnnouncement(announcement Announcement) error
	GetAnnouncementByID(announcementID string) (*Announcement, error)
	GetAnnouncementsBySchool(schoolID string) ([]Announcement, error)
	UpdateAnnouncementStatus(announcementID string, status AnnouncementStatus, updatedAt string) error
	DeleteAnnouncement(announcementID string) error

	CreateSender(sender MessageSender) error
	GetSenderByID(senderID string) (*MessageSender, error)
	GetSenderByName(name string) (*MessageSender, error)
	ListSenders() ([]MessageSender, error)
	UpdateSender(sender *MessageSender) error
	DeleteSender(senderID string) error

	CreateDispatchAttempt(attempt DispatchAttempt) error
	GetDispatchAttempts(announcementID string) ([]DispatchAttempt, error)
}

// notificationStore is the default implementation of notificationStoreInterface.
type notificationStore struct {
	dbProvider provider.DBProviderInterface
}

// newNotificationStore creates a new instance of notificationStore.
func newNotificationStore() notificationStoreInterface {
	return &notificationStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateAnnouncement persists a new announcement.
func (ns *notificationStore) CreateAnnouncement(announcement Announcement) error {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(queryCreateAnnouncement, announcement.ID, announcement.SchoolID,
		announcement.Title, announcement.Body, announcement.AudienceRole, string(announcement.Channel),
		string(announcement.Status), announcement.CreatedBy, announcement.CreatedAt,
		announcement.UpdatedAt); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetAnnouncementByID retrieves an announcement by id.
func (ns *notificationStore) GetAnnouncementByID(announcementID string) (*Announcement, error) {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetAnnouncementByID, announcementID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrAnnouncementNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results for announcement id: %s", announcementID)
	}
	return buildAnnouncementFromResultRow(results[0])
}

// GetAnnouncementsBySchool retrieves the announcements of a school, newest first.
func (ns *notificationStore) GetAnnouncementsBySchool(schoolID string) ([]Announcement, error) {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetAnnouncementsBySchool, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	announcements := make([]Announcement, 0, len(results))
	for _, row := range results {
		announcement, err := buildAnnouncementFromResultRow(row)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, *announcement)
	}
	return announcements, nil
}

// UpdateAnnouncementStatus updates the delivery status of an announcement.
func (ns *notificationStore) UpdateAnnouncementStatus(announcementID string, status AnnouncementStatus,
	updatedAt string) error {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateAnnouncementStatus, announcementID, string(status),
		updatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}

// DeleteAnnouncement deletes an announcement.
func (ns *notificationStore) DeleteAnnouncement(announcementID string) error {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(queryDeleteAnnouncement, announcementID); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// CreateSender persists a new message sender together with its properties.
// Secret property values must be encrypted by the caller before this point.
func (ns *notificationStore) CreateSender(sender MessageSender) error {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(queryCreateSender.Query, sender.ID, sender.Name, sender.Description,
		string(sender.Provider)); err != nil {
		retErr := fmt.Errorf("failed to execute sender insert query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	for _, prop := range sender.Properties {
		if _, err := tx.Exec(queryCreateSenderProperty.Query, sender.ID, prop.Name, prop.Value,
			boolToNum(prop.IsSecret)); err != nil {
			retErr := fmt.Errorf("failed to execute property insert query: %w", err)
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return retErr
		}
	}

	if err := tx.Commit(); err != nil {
		retErr := fmt.Errorf("failed to commit transaction: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}
	return nil
}

// GetSenderByID retrieves a message sender by id.
func (ns *notificationStore) GetSenderByID(senderID string) (*MessageSender, error) {
	return ns.getSender(queryGetSenderByID, senderID)
}

// GetSenderByName retrieves a message sender by name.
func (ns *notificationStore) GetSenderByName(name string) (*MessageSender, error) {
	return ns.getSender(queryGetSenderByName, name)
}

// getSender retrieves a single message sender using the provided query and identifier.
func (ns *notificationStore) getSender(query dbmodel.DBQuery, identifier string) (*MessageSender, error) {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrSenderNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results for sender: %s", identifier)
	}

	sender, err := buildSenderFromResultRow(results[0])
	if err != nil {
		return nil, err
	}
	properties, err := ns.getSenderProperties(sender.ID)
	if err != nil {
		return nil, err
	}
	sender.Properties = properties
	return sender, nil
}

// ListSenders retrieves all message senders with their properties.
func (ns *notificationStore) ListSenders() ([]MessageSender, error) {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetAllSenders)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	senders := make([]MessageSender, 0, len(results))
	for _, row := range results {
		sender, err := buildSenderFromResultRow(row)
		if err != nil {
			return nil, err
		}
		properties, err := ns.getSenderProperties(sender.ID)
		if err != nil {
			return nil, err
		}
		sender.Properties = properties
		senders = append(senders, *sender)
	}
	return senders, nil
}

// getSenderProperties retrieves the properties of a message sender.
func (ns *notificationStore) getSenderProperties(senderID string) ([]cmodels.Property, error) {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetSenderProperties, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	properties := make([]cmodels.Property, 0, len(results))
	for _, row := range results {
		name, err := rowString(row, "property_name")
		if err != nil {
			return nil, err
		}
		value, err := rowString(row, "property_value")
		if err != nil {
			return nil, err
		}
		isSecret, err := rowInt(row, "is_secret")
		if err != nil {
			return nil, err
		}

		property := cmodels.Property{Name: name, Value: value, IsSecret: isSecret != 0}
		if property.IsSecret {
			property.SetEncrypted(true)
		}
		properties = append(properties, property)
	}
	return properties, nil
}

// UpdateSender updates a message sender and replaces its properties.
func (ns *notificationStore) UpdateSender(sender *MessageSender) error {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := tx.Exec(queryUpdateSender.Query, sender.ID, sender.Name, sender.Description,
		string(sender.Provider))
	if err != nil {
		retErr := fmt.Errorf("failed to execute sender update query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	if _, err := tx.Exec(queryDeleteSenderProperties.Query, sender.ID); err != nil {
		retErr := fmt.Errorf("failed to execute property delete query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	for _, prop := range sender.Properties {
		if _, err := tx.Exec(queryCreateSenderProperty.Query, sender.ID, prop.Name, prop.Value,
			boolToNum(prop.IsSecret)); err != nil {
			retErr := fmt.Errorf("failed to execute property insert query: %w", err)
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return retErr
		}
	}

	if err := tx.Commit(); err != nil {
		retErr := fmt.Errorf("failed to commit transaction: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected == 0 {
		return ErrSenderNotFound
	}
	return nil
}

// DeleteSender deletes a message sender and its properties.
func (ns *notificationStore) DeleteSender(senderID string) error {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(queryDeleteSenderProperties.Query, senderID); err != nil {
		retErr := fmt.Errorf("failed to execute property delete query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	if _, err := tx.Exec(queryDeleteSender.Query, senderID); err != nil {
		retErr := fmt.Errorf("failed to execute sender delete query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	if err := tx.Commit(); err != nil {
		retErr := fmt.Errorf("failed to commit transaction: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}
	return nil
}

// CreateDispatchAttempt records a dispatch attempt in the runtime datasource.
func (ns *notificationStore) CreateDispatchAttempt(attempt DispatchAttempt) error {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(queryCreateDispatchAttempt, attempt.ID, attempt.AnnouncementID,
		attempt.Recipient, string(attempt.Status), attempt.Detail, attempt.AttemptedAt); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetDispatchAttempts retrieves the dispatch attempts of an announcement.
func (ns *notificationStore) GetDispatchAttempts(announcementID string) ([]DispatchAttempt, error) {
	dbClient, err := ns.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetDispatchAttempts, announcementID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	attempts := make([]DispatchAttempt, 0, len(results))
	for _, row := range results {
		attempt, err := buildDispatchAttemptFromResultRow(row)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *attempt)
	}
	return attempts, nil
}

// buildAnnouncementFromResultRow builds an announcement from a database result row.
func buildAnnouncementFromResultRow(row map[string]interface{}) (*Announcement, error) {
	announcementID, err := rowString(row, "announcement_id")
	if err != nil {
		return nil, err
	}
	schoolID, err := rowString(row, "school_id")
	if err != nil {
		return nil, err
	}
	title, err := rowString(row, "title")
	if err != nil {
		return nil, err
	}
	body, err := rowString(row, "body")
	if err != nil {
		return nil, err
	}
	audienceRole, err := rowString(row, "audience_role")
	if err != nil {
		return nil, err
	}
	channel, err := rowString(row, "channel")
	if err != nil {
		return nil, err
	}
	status, err := rowString(row, "status")
	if err != nil {
		return nil, err
	}
	createdBy, err := rowString(row, "created_by")
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

	return &Announcement{
		ID:           announcementID,
		SchoolID:     schoolID,
		Title:        title,
		Body:         body,
		AudienceRole: audienceRole,
		Channel:      Channel(channel),
		Status:       AnnouncementStatus(status),
		CreatedBy:    createdBy,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// buildSenderFromResultRow builds a message sender from a database result row.
func buildSenderFromResultRow(row map[string]interface{}) (*MessageSender, error) {
	senderID, err := rowString(row, "sender_id")
	if err != nil {
		return nil, err
	}
	name, err := rowString(row, "name")
	if err != nil {
		return nil, err
	}
	description, err := rowString(row, "description")
	if err != nil {
		return nil, err
	}
	providerType, err := rowString(row, "provider")
	if err != nil {
		return nil, err
	}

	return &MessageSender{
		ID:          senderID,
		Name:        name,
		Description: description,
		Provider:    ProviderType(providerType),
	}, nil
}

// buildDispatchAttemptFromResultRow builds a dispatch attempt from a database result row.
func buildDispatchAttemptFromResultRow(row map[string]interface{}) (*DispatchAttempt, error) {
	attemptID, err := rowString(row, "attempt_id")
	if err != nil {
		return nil, err
	}
	announcementID, err := rowString(row, "announcement_id")
	if err != nil {
		return nil, err
	}
	recipient, err := rowString(row, "recipient")
	if err != nil {
		return nil, err
	}
	status, err := rowString(row, "status")
	if err != nil {
		return nil, err
	}
	detail, err := rowString(row, "detail")
	if err != nil {
		return nil, err
	}
	attemptedAt, err := rowString(row, "attempted_at")
	if err != nil {
		return nil, err
	}

	return &DispatchAttempt{
		ID:             attemptID,
		AnnouncementID: announcementID,
		Recipient:      recipient,
		Status:         DispatchStatus(status),
		Detail:         detail,
		AttemptedAt:    attemptedAt,
	}, nil
}

// boolToNum converts a bool to the 0/1 integer representation stored in the database.
func boolToNum(value bool) int {
	if value {
		return 1
	}
	return 0
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
