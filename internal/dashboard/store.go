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

package dashboard

import (
	"fmt"
	"strconv"

	"github.com/campushq/campus/internal/system/database/model"
	"github.com/campushq/campus/internal/system/database/provider"
)

// dashboardStoreInterface defines the aggregate count queries backing the
// dashboard endpoints.
type dashboardStoreInterface interface {
	CountSchools() (int, error)
	CountUsersByRole(role string) (int, error)
	CountClasses() (int, error)
	CountActiveEnrollments() (int, error)
	CountPublishedStories() (int, error)
	CountUsersByRoleAndSchool(role, schoolID string) (int, error)
	CountClassesBySchool(schoolID string) (int, error)
	CountActiveEnrollmentsBySchool(schoolID string) (int, error)
	CountPublishedStoriesBySchool(schoolID string) (int, error)
	GetMonthlyEnrollmentCounts(since string) (map[string]int, error)
}

// dashboardStore is the default implementation of dashboardStoreInterface.
type dashboardStore struct {
	dbProvider provider.DBProviderInterface
}

// newDashboardStore creates a new dashboard store instance.
func newDashboardStore() *dashboardStore {
	return &dashboardStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CountSchools returns the total number of schools.
func (ds *dashboardStore) CountSchools() (int, error) {
	return ds.runCountQuery(queryCountSchools)
}

// CountUsersByRole returns the number of users with the given role.
func (ds *dashboardStore) CountUsersByRole(role string) (int, error) {
	return ds.runCountQuery(queryCountUsersByRole, role)
}

// CountClasses returns the total number of classes.
func (ds *dashboardStore) CountClasses() (int, error) {
	return ds.runCountQuery(queryCountClasses)
}

// CountActiveEnrollments returns the number of enrollments in the active state.
func (ds *dashboardStore) CountActiveEnrollments() (int, error) {
	return ds.runCountQuery(queryCountActiveEnrollments)
}

// CountPublishedStories returns the number of published stories.
func (ds *dashboardStore) CountPublishedStories() (int, error) {
	return ds.runCountQuery(queryCountPublishedStories)
}

// CountUsersByRoleAndSchool returns the number of users with the given role in a school.
func (ds *dashboardStore) CountUsersByRoleAndSchool(role, schoolID string) (int, error) {
	return ds.runCountQuery(queryCountUsersByRoleAndSchool, role, schoolID)
}

// CountClassesBySchool returns the number of classes of a school.
func (ds *dashboardStore) CountClassesBySchool(schoolID string) (int, error) {
	return ds.runCountQuery(queryCountClassesBySchool, schoolID)
}

// CountActiveEnrollmentsBySchool returns the number of active enrollments of a school.
func (ds *dashboardStore) CountActiveEnrollmentsBySchool(schoolID string) (int, error) {
	return ds.runCountQuery(queryCountActiveEnrollmentsBySchool, schoolID)
}

// CountPublishedStoriesBySchool returns the number of published stories of a school.
func (ds *dashboardStore) CountPublishedStoriesBySchool(schoolID string) (int, error) {
	return ds.runCountQuery(queryCountPublishedStoriesBySchool, schoolID)
}

// GetMonthlyEnrollmentCounts returns enrollment counts keyed by YYYY-MM month
// for enrollments recorded at or after the given RFC 3339 timestamp.
func (ds *dashboardStore) GetMonthlyEnrollmentCounts(since string) (map[string]int, error) {
	dbClient, err := ds.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryMonthlyEnrollmentCounts, since)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	counts := make(map[string]int, len(results))
	for _, row := range results {
		month := rowString(row["month"])
		if month == "" {
			return nil, fmt.Errorf("missing month in enrollment count row")
		}
		total, err := parseCountResult(row)
		if err != nil {
			return nil, err
		}
		counts[month] = total
	}
	return counts, nil
}

// runCountQuery executes a count query and parses the single total column.
func (ds *dashboardStore) runCountQuery(query model.DBQuery, args ...interface{}) (int, error) {
	dbClient, err := ds.dbProvider.GetDBClient(provider.DBNameCampus)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
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

// parseCountResult extracts the total count from a count query result row.
func parseCountResult(row map[string]interface{}) (int, error) {
	switch total := row["total"].(type) {
	case int:
		return total, nil
	case int64:
		return int(total), nil
	case float64:
		return int(total), nil
	case string:
		count, err := strconv.Atoi(total)
		if err != nil {
			return 0, fmt.Errorf("failed to parse total count: %w", err)
		}
		return count, nil
	default:
		return 0, fmt.Errorf("unexpected type for total count: %T", total)
	}
}

// rowString converts a result row value to a string.
func rowString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
