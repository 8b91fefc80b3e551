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

package utils

import (
	"testing"

	"github.com/campushq/campus/internal/system/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testBaseQuery = "SELECT * FROM \"USER\" WHERE 1=1"

type QueryBuilderTestSuite struct {
	suite.Suite
}

func TestQueryBuilderSuite(t *testing.T) {
	suite.Run(t, new(QueryBuilderTestSuite))
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQuery() {
	queryID := "test_query"
	filters := map[string]interface{}{
		"ROLE":      "admin",
		"SCHOOL_ID": "school-1",
	}

	query, args, err := BuildFilterQuery(queryID, testBaseQuery, filters)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), queryID, query.ID)
	assert.Len(suite.T(), args, 2)

	// Args follow the sorted filter key order.
	assert.Equal(suite.T(), "admin", args[0])
	assert.Equal(suite.T(), "school-1", args[1])

	postgresQuery := query.GetQuery("postgres")
	assert.Contains(suite.T(), postgresQuery, testBaseQuery)
	assert.Contains(suite.T(), postgresQuery, "ROLE = $1")
	assert.Contains(suite.T(), postgresQuery, "SCHOOL_ID = $2")

	sqliteQuery := query.GetQuery("sqlite")
	assert.Contains(suite.T(), sqliteQuery, testBaseQuery)
	assert.Contains(suite.T(), sqliteQuery, "ROLE = ?")
	assert.Contains(suite.T(), sqliteQuery, "SCHOOL_ID = ?")

	// Unknown database types fall back to the PostgreSQL query.
	defaultQuery := query.GetQuery("unknown")
	assert.Equal(suite.T(), postgresQuery, defaultQuery)
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQueryWithEmptyFilters() {
	queryID := "empty_filters"
	filters := map[string]interface{}{}

	query, args, err := BuildFilterQuery(queryID, testBaseQuery, filters)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), queryID, query.ID)
	assert.Empty(suite.T(), args)

	postgresQuery := query.GetQuery("postgres")
	sqliteQuery := query.GetQuery("sqlite")
	assert.Equal(suite.T(), testBaseQuery, postgresQuery)
	assert.Equal(suite.T(), testBaseQuery, sqliteQuery)
	assert.Equal(suite.T(), testBaseQuery, query.Query)
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQueryWithInvalidFilterKey() {
	queryID := "invalid_filter_key"
	filters := map[string]interface{}{
		"VALID":              "value",
		"invalid-filter-key": "value", // Contains invalid character '-'
	}

	query, args, err := BuildFilterQuery(queryID, testBaseQuery, filters)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "invalid filter key")
	assert.Equal(suite.T(), model.DBQuery{}, query)
	assert.Nil(suite.T(), args)
}

func (suite *QueryBuilderTestSuite) TestValidateKey() {
	validKeys := []string{
		"name",
		"user_id",
		"role123",
		"UPPERCASE",
		"mixedCASE",
		"with_underscore",
		"_leading_underscore",
		"trailing_underscore_",
	}

	for _, key := range validKeys {
		err := validateKey(key)
		assert.NoError(suite.T(), err, "Key should be valid: %s", key)
	}
}

func (suite *QueryBuilderTestSuite) TestValidateKeyInvalid() {
	invalidKeys := []string{
		"space key",
		"hyphen-key",
		"special!char",
		"sql;injection",
		"quote'test",
		"double\"quote",
	}

	for _, key := range invalidKeys {
		err := validateKey(key)
		assert.Error(suite.T(), err, "Key should be invalid: %s", key)
		assert.Contains(suite.T(), err.Error(), "invalid characters")
	}
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQueryDatabaseSpecificQueries() {
	queryID := "db_specific_test"
	baseQuery := "SELECT USER_ID FROM \"USER\" WHERE 1=1"
	filters := map[string]interface{}{
		"EMAIL": "test@example.com",
		"NAME":  "Jane Perera",
	}

	query, args, err := BuildFilterQuery(queryID, baseQuery, filters)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), queryID, query.ID)
	assert.Len(suite.T(), args, 2)

	// Arguments follow the sorted key order (EMAIL, NAME).
	assert.Equal(suite.T(), "test@example.com", args[0])
	assert.Equal(suite.T(), "Jane Perera", args[1])

	postgresQuery := query.GetQuery("postgres")
	expectedPostgres := "SELECT USER_ID FROM \"USER\" WHERE 1=1" +
		" AND EMAIL = $1" +
		" AND NAME = $2"
	assert.Equal(suite.T(), expectedPostgres, postgresQuery)

	sqliteQuery := query.GetQuery("sqlite")
	expectedSQLite := "SELECT USER_ID FROM \"USER\" WHERE 1=1" +
		" AND EMAIL = ?" +
		" AND NAME = ?"
	assert.Equal(suite.T(), expectedSQLite, sqliteQuery)

	assert.Equal(suite.T(), expectedPostgres, query.PostgresQuery)
	assert.Equal(suite.T(), expectedSQLite, query.SQLiteQuery)
	assert.Equal(suite.T(), expectedPostgres, query.Query)
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQuerySingleFilter() {
	queryID := "single_filter"
	baseQuery := "SELECT * FROM ENROLLMENT WHERE STATUS = 'active'"
	filters := map[string]interface{}{
		"CLASS_ID": "class-1",
	}

	query, args, err := BuildFilterQuery(queryID, baseQuery, filters)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), args, 1)
	assert.Equal(suite.T(), "class-1", args[0])

	postgresQuery := query.GetQuery("postgres")
	expectedPostgres := "SELECT * FROM ENROLLMENT WHERE STATUS = 'active'" +
		" AND CLASS_ID = $1"
	assert.Equal(suite.T(), expectedPostgres, postgresQuery)

	sqliteQuery := query.GetQuery("sqlite")
	expectedSQLite := "SELECT * FROM ENROLLMENT WHERE STATUS = 'active'" +
		" AND CLASS_ID = ?"
	assert.Equal(suite.T(), expectedSQLite, sqliteQuery)
}
