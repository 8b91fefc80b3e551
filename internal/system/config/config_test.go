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

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testResourceDir = "../../../tests/resources"

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) getFilePath(filename string) string {
	return filepath.Join(testResourceDir, filename)
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	configPath := suite.getFilePath("deployment.yaml")
	config, err := LoadConfig(configPath)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	// Verify server config
	assert.Equal(suite.T(), "localhost", config.Server.Hostname)
	assert.Equal(suite.T(), 8090, config.Server.Port)

	// Verify security config
	assert.Equal(suite.T(), "/path/to/cert.pem", config.Security.CertFile)
	assert.Equal(suite.T(), "/path/to/key.pem", config.Security.KeyFile)

	// Verify CORS config
	assert.Equal(suite.T(), []string{"https://portal.campushq.io", "http://localhost:3000"},
		config.CORS.AllowedOrigins)

	// Verify database config
	assert.Equal(suite.T(), "postgres", config.Database.Campus.Type)
	assert.Equal(suite.T(), "campususer", config.Database.Campus.Username)
	assert.Equal(suite.T(), "sqlite", config.Database.Runtime.Type)
	assert.Equal(suite.T(), "/data/runtime.db", config.Database.Runtime.Path)

	// Verify cache config
	assert.True(suite.T(), config.Cache.Redis.Enabled)
	assert.Equal(suite.T(), "localhost:6379", config.Cache.Redis.Address)
	assert.Equal(suite.T(), "campus", config.Cache.Redis.KeyPrefix)
	assert.Equal(suite.T(), 2, config.Cache.Redis.OperationTimeout)
	assert.Equal(suite.T(), 60, config.Cache.DefaultTTL)
	assert.Equal(suite.T(), 500, config.Cache.OperationLogSize)
	assert.Equal(suite.T(), 30, config.Cache.StatusRateLimit.MaxRequests)

	// Verify auth config
	assert.Equal(suite.T(), "campus", config.Auth.JWT.Issuer)
	assert.Equal(suite.T(), int64(3600), config.Auth.JWT.ValidityPeriod)
	assert.Equal(suite.T(), int64(1800), config.Auth.Session.ValidityPeriod)
	assert.Equal(suite.T(), 5, config.Auth.LoginRateLimit.MaxRequests)
	assert.Equal(suite.T(), 60, config.Auth.LoginRateLimit.WindowSeconds)

	// Verify default user config
	assert.Equal(suite.T(), "admin@campushq.io", config.UserStore.DefaultUser.Email)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	configPath := suite.getFilePath("non_existent_config.yaml")
	config, err := LoadConfig(configPath)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "no such file or directory")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	configPath := suite.getFilePath("invalid_deployment.yaml")

	config, err := LoadConfig(configPath)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}
