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

package user

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/database/provider"
	"github.com/campushq/campus/internal/system/log"
)

// userStoreInterface defines the interface for user persistence operations.
type userStoreInterface interface {
	CreateUser(user User, credential credentialDTO) error
	GetUserByID(userID string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUserList(schoolID, role string, limit, offset int) ([]User, error)
	GetUserCount(schoolID, role string) (int, error)
	GetUserWithCredentialByEmail(email string) (*User, *credentialDTO, error)
	UpdateUser(user *User) error
	DeleteUser(userID string) error
}

// userStore is the default implementation of userStoreInterface.
type userStore struct {
	dbProvider provider.DBProviderInterface
}

// newUserStore creates a new instance of userStore.
func newUserStore() userStoreInterface {
	return &userStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateUser persists a new user together with the stored credential.
func (us *userStore) CreateUser(user User, credential credentialDTO) error {
	dbClient, err := us.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(queryCreateUser.Query, user.ID, user.Email, user.Name, string(user.Role),
		user.SchoolID, string(user.Status), user.CreatedAt, user.UpdatedAt); err != nil {
		retErr := fmt.Errorf("failed to execute user insert query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	if _, err := tx.Exec(queryCreateUserCredential.Query, user.ID, credential.Hash, credential.Salt); err != nil {
		retErr := fmt.Errorf("failed to execute credential insert query: %w", err)
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

// GetUserByID retrieves a user by user ID.
func (us *userStore) GetUserByID(userID string) (*User, error) {
	return us.getUser(queryGetUserByUserID, userID)
}

// GetUserByEmail retrieves a user by email address.
func (us *userStore) GetUserByEmail(email string) (*User, error) {
	return us.getUser(queryGetUserByEmail, email)
}

// getUser retrieves a single user using the provided query and identifier.
func (us *userStore) getUser(query model.DBQuery, identifier string) (*User, error) {
	dbClient, err := us.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrUserNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	user, err := buildUserFromResultRow(results[0])
	if err != nil {
		return nil, fmt.Errorf("failed to build user from result row: %w", err)
	}
	return user, nil
}

// GetUserList retrieves a page of users with optional school and role filtering.
func (us *userStore) GetUserList(schoolID, role string, limit, offset int) ([]User, error) {
	dbClient, err := us.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	query, args, err := buildUserListQuery(schoolID, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to build user list query: %w", err)
	}

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	users := make([]User, 0, len(results))
	for _, row := range results {
		user, err := buildUserFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build user from result row: %w", err)
		}
		users = append(users, *user)
	}
	return users, nil
}

// GetUserCount retrieves the total count of users with optional school and role filtering.
func (us *userStore) GetUserCount(schoolID, role string) (int, error) {
	dbClient, err := us.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	query, args, err := buildUserCountQuery(schoolID, role)
	if err != nil {
		return 0, fmt.Errorf("failed to build user count query: %w", err)
	}

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return parseCountResult(results[0])
}

// GetUserWithCredentialByEmail retrieves a user together with the stored credential by email address.
func (us *userStore) GetUserWithCredentialByEmail(email string) (*User, *credentialDTO, error) {
	dbClient, err := us.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetUserWithCredentialByEmail, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return nil, nil, ErrUserNotFound
	}
	if len(results) != 1 {
		return nil, nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	row := results[0]
	user, err := buildUserFromResultRow(row)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build user from result row: %w", err)
	}

	hash, err := rowString(row, "credential_hash")
	if err != nil {
		return nil, nil, err
	}
	salt, err := rowString(row, "salt")
	if err != nil {
		return nil, nil, err
	}

	return user, &credentialDTO{Hash: hash, Salt: salt}, nil
}

// UpdateUser updates an existing user.
func (us *userStore) UpdateUser(user *User) error {
	dbClient, err := us.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateUserByUserID, user.ID, user.Email, user.Name,
		string(user.Role), user.SchoolID, string(user.Status), user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser deletes a user and the stored credential.
func (us *userStore) DeleteUser(userID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserStore"))

	dbClient, err := us.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(queryDeleteUserCredential.Query, userID); err != nil {
		retErr := fmt.Errorf("failed to execute credential delete query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	result, err := tx.Exec(queryDeleteUserByUserID.Query, userID)
	if err != nil {
		retErr := fmt.Errorf("failed to execute user delete query: %w", err)
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

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected == 0 {
		logger.Debug("user not found with id: " + userID)
	}
	return nil
}

// buildUserFromResultRow constructs a User from a database result row.
func buildUserFromResultRow(row map[string]interface{}) (*User, error) {
	userID, err := rowString(row, "user_id")
	if err != nil {
		return nil, err
	}
	email, err := rowString(row, "email")
	if err != nil {
		return nil, err
	}
	name, err := rowString(row, "name")
	if err != nil {
		return nil, err
	}
	role, err := rowString(row, "role")
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
	createdAt, err := rowString(row, "created_at")
	if err != nil {
		return nil, err
	}
	updatedAt, err := rowString(row, "updated_at")
	if err != nil {
		return nil, err
	}

	return &User{
		ID:        userID,
		Email:     email,
		Name:      name,
		Role:      Role(role),
		SchoolID:  schoolID,
		Status:    UserStatus(status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// parseCountResult extracts the total count from a count query result row.
func parseCountResult(row map[string]interface{}) (int, error) {
	total, ok := row["total"]
	if !ok {
		return 0, fmt.Errorf("total count not found in query result")
	}

	switch v := total.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		count, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("failed to parse total count: %w", err)
		}
		return count, nil
	default:
		return 0, fmt.Errorf("unexpected type for total count: %T", total)
	}
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
