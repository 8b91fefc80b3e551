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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/campushq/campus/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the allowed origins for cross-origin requests.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Campus  DataSource `yaml:"campus"`
	Runtime DataSource `yaml:"runtime"`
}

// RedisConfig holds the remote cache store connection details.
type RedisConfig struct {
	Enabled          bool   `yaml:"enabled"`
	Address          string `yaml:"address"`
	Password         string `yaml:"password"`
	DB               int    `yaml:"db"`
	UseTLS           bool   `yaml:"use_tls"`
	KeyPrefix        string `yaml:"key_prefix"`
	DialTimeout      int    `yaml:"dial_timeout"`
	ReadTimeout      int    `yaml:"read_timeout"`
	WriteTimeout     int    `yaml:"write_timeout"`
	OperationTimeout int    `yaml:"operation_timeout"`
}

// RateLimitConfig holds the token bucket settings for a rate limited surface.
type RateLimitConfig struct {
	MaxRequests   int `yaml:"max_requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// CacheConfig holds the cache subsystem configuration details.
type CacheConfig struct {
	Redis            RedisConfig     `yaml:"redis"`
	DefaultTTL       int             `yaml:"default_ttl"`
	OperationLogSize int             `yaml:"operation_log_size"`
	DebugLogSize     int             `yaml:"debug_log_size"`
	StatusRateLimit  RateLimitConfig `yaml:"status_rate_limit"`
}

// DefaultUser holds the default super admin user seeded on first start.
type DefaultUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// UserStore holds the user store configuration details.
type UserStore struct {
	DefaultUser DefaultUser `yaml:"default_user"`
}

// JWTConfig holds the JWT configuration details.
type JWTConfig struct {
	Issuer         string `yaml:"issuer"`
	ValidityPeriod int64  `yaml:"validity_period"`
}

// SessionConfig holds the login session configuration details.
type SessionConfig struct {
	ValidityPeriod int64 `yaml:"validity_period"`
}

// AuthConfig holds the authentication configuration details.
type AuthConfig struct {
	JWT            JWTConfig       `yaml:"jwt"`
	Session        SessionConfig   `yaml:"session"`
	LoginRateLimit RateLimitConfig `yaml:"login_rate_limit"`
}

// CryptoConfig holds the cryptographic configuration details.
type CryptoConfig struct {
	Key string `yaml:"key"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server    ServerConfig   `yaml:"server"`
	Security  SecurityConfig `yaml:"security"`
	CORS      CORSConfig     `yaml:"cors"`
	Database  DatabaseConfig `yaml:"database"`
	Cache     CacheConfig    `yaml:"cache"`
	UserStore UserStore      `yaml:"user_store"`
	Auth      AuthConfig     `yaml:"auth"`
	Crypto    CryptoConfig   `yaml:"crypto"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
