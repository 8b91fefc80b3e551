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
	"strconv"
	"time"

	"github.com/campushq/campus/internal/system/config"
	"github.com/campushq/campus/internal/system/crypto/hash"
	"github.com/campushq/campus/internal/system/database/client"
	"github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/log"
	"github.com/campushq/campus/internal/system/utils"
)

// SeederInterface defines the interface for seeding initial data.
type SeederInterface interface {
	SeedInitialData() error
}

// DBSeeder implements SeederInterface for database data seeding.
type DBSeeder struct {
	dbClient client.DBClientInterface
}

// NewDBSeeder creates a new instance of DBSeeder.
func NewDBSeeder(dbClient client.DBClientInterface) SeederInterface {
	return &DBSeeder{
		dbClient: dbClient,
	}
}

// SeedInitialData seeds the initial data into the database: the default super
// admin account from the configuration, and a demo school with classes when
// the school table is still empty. The operation is idempotent.
func (s *DBSeeder) SeedInitialData() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))
	logger.Info("Starting database seeding process")

	if err := s.seedDefaultSuperAdmin(); err != nil {
		logger.Error("Failed to seed default super admin", log.Error(err))
		return err
	}

	if err := s.seedDemoSchool(); err != nil {
		logger.Error("Failed to seed demo school", log.Error(err))
		return err
	}

	logger.Info("Database seeding process completed successfully")
	return nil
}

// seedDefaultSuperAdmin creates the configured default super admin account
// when no user with that email exists yet.
func (s *DBSeeder) seedDefaultSuperAdmin() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	defaultUser := config.GetCampusRuntime().Config.UserStore.DefaultUser
	if defaultUser.Email == "" || defaultUser.Password == "" {
		logger.Debug("No default user configured, skipping super admin seeding")
		return nil
	}

	countQuery := model.DBQuery{
		ID:    "SEED_COUNT_USERS_BY_EMAIL",
		Query: "SELECT COUNT(*) AS total FROM \"USER\" WHERE EMAIL = $1",
	}
	total, err := s.queryCount(countQuery, defaultUser.Email)
	if err != nil {
		return err
	}
	if total > 0 {
		logger.Debug("Default super admin already exists, skipping")
		return nil
	}

	salt, err := hash.GenerateSalt()
	if err != nil {
		return err
	}
	credentialHash, err := hash.HashStringWithSalt(defaultUser.Password, salt)
	if err != nil {
		return err
	}

	userID := utils.GenerateUUID()
	now := time.Now().UTC().Format(time.RFC3339)

	insertUserQuery := model.DBQuery{
		ID: "SEED_INSERT_USER",
		Query: "INSERT INTO \"USER\" (USER_ID, EMAIL, NAME, ROLE, SCHOOL_ID, STATUS, CREATED_AT, " +
			"UPDATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}
	if _, err := s.dbClient.Execute(insertUserQuery, userID, defaultUser.Email, defaultUser.Name,
		"superadmin", "", "active", now, now); err != nil {
		return err
	}

	insertCredentialQuery := model.DBQuery{
		ID:    "SEED_INSERT_CREDENTIAL",
		Query: "INSERT INTO CREDENTIAL (USER_ID, CREDENTIAL_HASH, SALT) VALUES ($1, $2, $3)",
	}
	if _, err := s.dbClient.Execute(insertCredentialQuery, userID, credentialHash, salt); err != nil {
		return err
	}

	logger.Info("Seeded default super admin", log.String("email", log.MaskString(defaultUser.Email)))
	return nil
}

// seedDemoSchool seeds the demo school and its classes when no school exists.
func (s *DBSeeder) seedDemoSchool() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	countQuery := model.DBQuery{
		ID:    "SEED_COUNT_SCHOOLS",
		Query: "SELECT COUNT(*) AS total FROM SCHOOL",
	}
	total, err := s.queryCount(countQuery)
	if err != nil {
		return err
	}
	if total > 0 {
		logger.Debug("Schools already present, skipping demo school seeding")
		return nil
	}

	data := getSeedData()
	now := time.Now().UTC().Format(time.RFC3339)

	for _, school := range data.Schools {
		query := model.DBQuery{
			ID: "SEED_INSERT_SCHOOL",
			Query: "INSERT INTO SCHOOL (SCHOOL_ID, NAME, ADDRESS, EMAIL, PHONE, STATUS, CREATED_AT, " +
				"UPDATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		}
		if _, err := s.dbClient.Execute(query, school.SchoolID, school.Name, school.Address,
			school.Email, school.Phone, school.Status, now, now); err != nil {
			return err
		}
		logger.Debug("Seeded school", log.String("schoolID", school.SchoolID),
			log.String("name", school.Name))
	}

	for _, class := range data.Classes {
		query := model.DBQuery{
			ID: "SEED_INSERT_CLASS",
			Query: "INSERT INTO CLASS (CLASS_ID, SCHOOL_ID, NAME, GRADE_LEVEL, HOMEROOM_TEACHER_ID, " +
				"CAPACITY, CREATED_AT, UPDATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		}
		if _, err := s.dbClient.Execute(query, class.ClassID, class.SchoolID, class.Name,
			class.GradeLevel, "", class.Capacity, now, now); err != nil {
			return err
		}
		logger.Debug("Seeded class", log.String("classID", class.ClassID),
			log.String("name", class.Name))
	}

	return nil
}

// queryCount runs a count query and parses the single "total" column.
func (s *DBSeeder) queryCount(query model.DBQuery, args ...interface{}) (int, error) {
	results, err := s.dbClient.Query(query, args...)
	if err != nil {
		return 0, err
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
		return 0, nil
	}
}
