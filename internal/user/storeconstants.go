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
	"fmt"

	"github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/database/utils"
)

const (
	// schoolIDColumn represents the SCHOOL_ID column name in the database.
	schoolIDColumn = "SCHOOL_ID"
	// roleColumn represents the ROLE column name in the database.
	roleColumn = "ROLE"
)

var (
	// queryGetUserCount is the query to get the total count of users.
	queryGetUserCount = model.DBQuery{
		ID:    "ASQ-USER_MGT-01",
		Query: "SELECT COUNT(*) as total FROM \"USER\"",
	}
	// queryGetUserList is the query to get a list of users.
	queryGetUserList = model.DBQuery{
		ID: "ASQ-USER_MGT-02",
		Query: "SELECT USER_ID, EMAIL, NAME, ROLE, SCHOOL_ID, STATUS, CREATED_AT, UPDATED_AT FROM \"USER\" " +
			"ORDER BY EMAIL LIMIT $1 OFFSET $2",
	}
	// queryCreateUser is the query to create a new user.
	queryCreateUser = model.DBQuery{
		ID: "ASQ-USER_MGT-03",
		Query: "INSERT INTO \"USER\" (USER_ID, EMAIL, NAME, ROLE, SCHOOL_ID, STATUS, CREATED_AT, UPDATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}
	// queryGetUserByUserID is the query to get a user by user ID.
	queryGetUserByUserID = model.DBQuery{
		ID: "ASQ-USER_MGT-04",
		Query: "SELECT USER_ID, EMAIL, NAME, ROLE, SCHOOL_ID, STATUS, CREATED_AT, UPDATED_AT FROM \"USER\" " +
			"WHERE USER_ID = $1",
	}
	// queryGetUserByEmail is the query to get a user by email address.
	queryGetUserByEmail = model.DBQuery{
		ID: "ASQ-USER_MGT-05",
		Query: "SELECT USER_ID, EMAIL, NAME, ROLE, SCHOOL_ID, STATUS, CREATED_AT, UPDATED_AT FROM \"USER\" " +
			"WHERE EMAIL = $1",
	}
	// queryUpdateUserByUserID is the query to update a user by user ID.
	queryUpdateUserByUserID = model.DBQuery{
		ID: "ASQ-USER_MGT-06",
		Query: "UPDATE \"USER\" SET EMAIL = $2, NAME = $3, ROLE = $4, SCHOOL_ID = $5, STATUS = $6, " +
			"UPDATED_AT = $7 WHERE USER_ID = $1",
	}
	// queryDeleteUserByUserID is the query to delete a user by user ID.
	queryDeleteUserByUserID = model.DBQuery{
		ID:    "ASQ-USER_MGT-07",
		Query: "DELETE FROM \"USER\" WHERE USER_ID = $1",
	}
	// queryCreateUserCredential is the query to store the credential of a user.
	queryCreateUserCredential = model.DBQuery{
		ID:    "ASQ-USER_MGT-08",
		Query: "INSERT INTO CREDENTIAL (USER_ID, CREDENTIAL_HASH, SALT) VALUES ($1, $2, $3)",
	}
	// queryDeleteUserCredential is the query to delete the credential of a user.
	queryDeleteUserCredential = model.DBQuery{
		ID:    "ASQ-USER_MGT-09",
		Query: "DELETE FROM CREDENTIAL WHERE USER_ID = $1",
	}
	// queryGetUserWithCredentialByEmail is the query to get a user together with
	// the stored credential by email address.
	queryGetUserWithCredentialByEmail = model.DBQuery{
		ID: "ASQ-USER_MGT-10",
		Query: "SELECT U.USER_ID, U.EMAIL, U.NAME, U.ROLE, U.SCHOOL_ID, U.STATUS, U.CREATED_AT, U.UPDATED_AT, " +
			"C.CREDENTIAL_HASH, C.SALT FROM \"USER\" U INNER JOIN CREDENTIAL C ON U.USER_ID = C.USER_ID " +
			"WHERE U.EMAIL = $1",
	}
)

// listFilters maps the optional school and role filters to their columns.
func listFilters(schoolID, role string) map[string]interface{} {
	filters := make(map[string]interface{})
	if schoolID != "" {
		filters[schoolIDColumn] = schoolID
	}
	if role != "" {
		filters[roleColumn] = role
	}
	return filters
}

// buildUserListQuery constructs a query to get users with optional filtering.
func buildUserListQuery(schoolID, role string, limit, offset int) (model.DBQuery, []interface{}, error) {
	baseQuery := "SELECT USER_ID, EMAIL, NAME, ROLE, SCHOOL_ID, STATUS, CREATED_AT, UPDATED_AT FROM \"USER\""
	queryID := "ASQ-USER_MGT-11"

	filters := listFilters(schoolID, role)
	if len(filters) == 0 {
		return queryGetUserList, []interface{}{limit, offset}, nil
	}

	filterQuery, filterArgs, err := utils.BuildFilterQuery(queryID, baseQuery+" WHERE 1=1", filters)
	if err != nil {
		return model.DBQuery{}, nil, err
	}

	postgresQuery, err := buildPaginatedQuery(filterQuery.PostgresQuery, len(filterArgs), "$")
	if err != nil {
		return model.DBQuery{}, nil, err
	}
	sqliteQuery, err := buildPaginatedQuery(filterQuery.SQLiteQuery, len(filterArgs), "?")
	if err != nil {
		return model.DBQuery{}, nil, err
	}

	filterArgs = append(filterArgs, limit, offset)
	return model.DBQuery{
		ID:            queryID,
		Query:         postgresQuery,
		PostgresQuery: postgresQuery,
		SQLiteQuery:   sqliteQuery,
	}, filterArgs, nil
}

// buildPaginatedQuery constructs a paginated query string with ORDER BY, LIMIT, and OFFSET clauses.
func buildPaginatedQuery(baseQuery string, paramCount int, placeholder string) (string, error) {
	switch placeholder {
	case "?":
		return fmt.Sprintf("%s ORDER BY EMAIL LIMIT %s OFFSET %s",
			baseQuery, placeholder, placeholder), nil
	case "$":
		limitPlaceholder := fmt.Sprintf("%s%d", placeholder, paramCount+1)
		offsetPlaceholder := fmt.Sprintf("%s%d", placeholder, paramCount+2)
		return fmt.Sprintf("%s ORDER BY EMAIL LIMIT %s OFFSET %s",
			baseQuery, limitPlaceholder, offsetPlaceholder), nil
	}
	return "", fmt.Errorf("unsupported placeholder: %s", placeholder)
}

// buildUserCountQuery constructs a query to count users with optional filtering.
func buildUserCountQuery(schoolID, role string) (model.DBQuery, []interface{}, error) {
	baseQuery := "SELECT COUNT(*) as total FROM \"USER\""
	queryID := "ASQ-USER_MGT-12"

	filters := listFilters(schoolID, role)
	if len(filters) == 0 {
		return queryGetUserCount, []interface{}{}, nil
	}

	return utils.BuildFilterQuery(queryID, baseQuery+" WHERE 1=1", filters)
}
