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

package healthcheckmock

import (
	"github.com/campushq/campus/internal/system/healthcheck/service"
)

// MockHealthCheckProvider is a mock implementation of the HealthCheckProviderInterface.
type MockHealthCheckProvider struct {
	// MockGetHealthCheckService defines the behavior for the GetHealthCheckService method.
	MockGetHealthCheckService func() service.HealthCheckServiceInterface
}

// GetHealthCheckService mocks the GetHealthCheckService method of the HealthCheckProviderInterface.
func (m *MockHealthCheckProvider) GetHealthCheckService() service.HealthCheckServiceInterface {
	if m.MockGetHealthCheckService != nil {
		return m.MockGetHealthCheckService()
	}
	return &MockHealthCheckService{}
}
