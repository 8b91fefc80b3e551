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

import "sync"

// CertConfig holds the certificate details resolved at server startup.
type CertConfig struct {
	CertKid string
}

// CampusRuntime holds the runtime configuration for the Campus server.
type CampusRuntime struct {
	CampusHome string `yaml:"campus_home"`
	Config     Config `yaml:"config"`
	CertConfig CertConfig
}

// SetCertConfig stores the certificate details resolved at startup.
func (cr *CampusRuntime) SetCertConfig(certConfig CertConfig) {
	cr.CertConfig = certConfig
}

var (
	runtimeConfig *CampusRuntime
	once          sync.Once
)

// InitializeCampusRuntime initializes the CampusRuntime configuration.
func InitializeCampusRuntime(campusHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &CampusRuntime{
			CampusHome: campusHome,
			Config:     *config,
		}
	})

	return nil
}

// GetCampusRuntime returns the CampusRuntime configuration.
func GetCampusRuntime() *CampusRuntime {
	if runtimeConfig == nil {
		panic("CampusRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetCampusRuntime resets the CampusRuntime.
// This should only be used in tests to reset the singleton state.
func ResetCampusRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
