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

package seeder

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	_ "modernc.org/sqlite"

	"github.com/campushq/campus/internal/system/config"
	"github.com/campushq/campus/internal/system/database/client"
	dbmodel "github.com/campushq/campus/internal/system/database/model"
)

// IntegrationTestSuite is the integration test suite for the seeder package.
type IntegrationTestSuite struct {
	suite.Suite
	db       *sql.DB
	dbClient client.DBClientInterface
	seeder   SeederInterface
}

// TestIntegrationTestSuite runs the integration test suite.
func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

// SetupSuite sets up the integration test suite.
func (suite *IntegrationTestSuite) SetupSuite() {
	config.ResetCampusRuntime()
	err := config.InitializeCampusRuntime("", &config.Config{
		UserStore: config.UserStore{
			DefaultUser: config.DefaultUser{
				Email:    "root@campushq.io",
				Password: "initial-pass",
				Name:     "Platform Operator",
			},
		},
	})
	suite.Require().NoError(err)

	db, err := sql.Open("sqlite", ":memory:")
	suite.Require().NoError(err)

	suite.db = db
	suite.dbClient = client.NewDBClient(dbmodel.NewDB(db), "sqlite")
	suite.seeder = NewDBSeeder(suite.dbClient)

	suite.createSchema()
}

// TearDownSuite cleans up after the integration test suite.
func (suite *IntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Close())
	}
	config.ResetCampusRuntime()
}

// createSchema creates the necessary database schema for testing.
func (suite *IntegrationTestSuite) createSchema() {
	tables := []string{
		`CREATE TABLE SCHOOL (
			SCHOOL_ID VARCHAR(36) PRIMARY KEY,
			NAME VARCHAR(255) NOT NULL,
			ADDRESS TEXT,
			EMAIL VARCHAR(255),
			PHONE VARCHAR(32),
			STATUS VARCHAR(16) NOT NULL,
			CREATED_AT TEXT,
			UPDATED_AT TEXT
		)`,
		`CREATE TABLE CLASS (
			CLASS_ID VARCHAR(36) PRIMARY KEY,
			SCHOOL_ID VARCHAR(36) NOT NULL,
			NAME VARCHAR(255) NOT NULL,
			GRADE_LEVEL INTEGER,
			HOMEROOM_TEACHER_ID VARCHAR(36),
			CAPACITY INTEGER,
			CREATED_AT TEXT,
			UPDATED_AT TEXT
		)`,
		`CREATE TABLE "USER" (
			USER_ID VARCHAR(36) PRIMARY KEY,
			EMAIL VARCHAR(255) UNIQUE NOT NULL,
			NAME VARCHAR(255),
			ROLE VARCHAR(32) NOT NULL,
			SCHOOL_ID VARCHAR(36),
			STATUS VARCHAR(16) NOT NULL,
			CREATED_AT TEXT,
			UPDATED_AT TEXT
		)`,
		`CREATE TABLE CREDENTIAL (
			USER_ID VARCHAR(36) PRIMARY KEY,
			CREDENTIAL_HASH TEXT NOT NULL,
			SALT TEXT NOT NULL
		)`,
	}

	for _, table := range tables {
		_, err := suite.db.Exec(table)
		assert.NoError(suite.T(), err, "Failed to create table")
	}
}

// TestSeedInitialData_Integration tests the complete seeding process.
func (suite *IntegrationTestSuite) TestSeedInitialData_Integration() {
	err := suite.seeder.SeedInitialData()
	suite.Require().NoError(err)

	suite.Equal(1, suite.countRows(`SELECT COUNT(*) FROM "USER"`), "Expected 1 seeded user")
	suite.Equal(1, suite.countRows("SELECT COUNT(*) FROM CREDENTIAL"), "Expected 1 credential")
	suite.Equal(1, suite.countRows("SELECT COUNT(*) FROM SCHOOL"), "Expected 1 demo school")
	suite.Equal(3, suite.countRows("SELECT COUNT(*) FROM CLASS"), "Expected 3 demo classes")

	var role, status string
	row := suite.db.QueryRow(`SELECT ROLE, STATUS FROM "USER" WHERE EMAIL = ?`, "root@campushq.io")
	suite.Require().NoError(row.Scan(&role, &status))
	suite.Equal("superadmin", role)
	suite.Equal("active", status)

	var credentialHash string
	row = suite.db.QueryRow("SELECT CREDENTIAL_HASH FROM CREDENTIAL")
	suite.Require().NoError(row.Scan(&credentialHash))
	suite.NotEqual("initial-pass", credentialHash,
		"the password must never be stored in clear")
}

// TestSeedInitialData_Idempotent tests that seeding twice does not duplicate rows.
func (suite *IntegrationTestSuite) TestSeedInitialData_Idempotent() {
	suite.Require().NoError(suite.seeder.SeedInitialData())
	suite.Require().NoError(suite.seeder.SeedInitialData())

	suite.Equal(1, suite.countRows(`SELECT COUNT(*) FROM "USER"`))
	suite.Equal(1, suite.countRows("SELECT COUNT(*) FROM SCHOOL"))
	suite.Equal(3, suite.countRows("SELECT COUNT(*) FROM CLASS"))
}

// countRows runs a count query against the raw database connection.
func (suite *IntegrationTestSuite) countRows(query string) int {
	var count int
	row := suite.db.QueryRow(query)
	suite.Require().NoError(row.Scan(&count))
	return count
}
