// Package utils provides utility functions for database operations.
package utils

import (
	"fmt"
	"sort"

	"github.com/campushq/campus/internal/system/database/model"
)

// BuildFilterQuery constructs a query that narrows the base query with an
// equality condition per filter. Filter keys are column names; the base query
// must already carry a WHERE clause the conditions can be appended to.
func BuildFilterQuery(
	queryID string,
	baseQuery string,
	filters map[string]interface{},
) (model.DBQuery, []interface{}, error) {
	args := make([]interface{}, 0, len(filters))

	keys := make([]string, 0, len(filters))
	for key := range filters {
		if err := validateKey(key); err != nil {
			return model.DBQuery{}, nil, fmt.Errorf("invalid filter key: %w", err)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	postgresQuery := baseQuery
	sqliteQuery := baseQuery
	for i, key := range keys {
		postgresQuery += fmt.Sprintf(" AND %s = $%d", key, i+1)
		sqliteQuery += fmt.Sprintf(" AND %s = ?", key)
		args = append(args, filters[key])
	}

	resultQuery := model.DBQuery{
		ID:            queryID,
		Query:         postgresQuery,
		PostgresQuery: postgresQuery,
		SQLiteQuery:   sqliteQuery,
	}

	return resultQuery, args, nil
}

// validateKey ensures that the provided key contains only safe characters (alphanumeric and underscores).
func validateKey(key string) error {
	for _, char := range key {
		if !(char >= 'a' && char <= 'z' || char >= 'A' && char <= 'Z' ||
			char >= '0' && char <= '9' || char == '_' || char == '.') {
			return fmt.Errorf("key '%s' contains invalid characters", key)
		}
	}
	return nil
}
