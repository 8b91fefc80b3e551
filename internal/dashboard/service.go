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
	"context"
	"strings"
	"time"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cache"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	"github.com/campushq/campus/internal/user"
)

const loggerComponentName = "DashboardService"

// DashboardServiceInterface defines the interface for dashboard statistics operations.
type DashboardServiceInterface interface {
	GetAdminStats(ctx context.Context) (*AdminStats, *serviceerror.ServiceError)
	GetSchoolStats(ctx context.Context, schoolID string) (*SchoolStats, *serviceerror.ServiceError)
	GetEnrollmentTrends(ctx context.Context, months int) (*EnrollmentTrends, *serviceerror.ServiceError)
}

// dashboardService is the default implementation of DashboardServiceInterface.
type dashboardService struct {
	dashboardStore dashboardStoreInterface
	schoolService  school.SchoolServiceInterface
	cacheService   cache.CacheServiceInterface
}

// newDashboardService creates a new instance of dashboardService.
func newDashboardService(schoolService school.SchoolServiceInterface,
	cacheService cache.CacheServiceInterface) DashboardServiceInterface {
	return &dashboardService{
		dashboardStore: newDashboardStore(),
		schoolService:  schoolService,
		cacheService:   cacheService,
	}
}

// GetAdminStats returns platform-wide aggregate counts. The result is
// read-through cached; mutations in the domain verticals invalidate
// admin:stats:* to keep the window short.
func (ds *dashboardService) GetAdminStats(ctx context.Context) (*AdminStats, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if cached, ok := cache.GetCacheAs[AdminStats](ctx, ds.cacheService, adminStatsCacheKey); ok {
		return &cached, nil
	}

	stats := &AdminStats{}
	counters := []struct {
		target *int
		count  func() (int, error)
	}{
		{&stats.Schools, ds.dashboardStore.CountSchools},
		{&stats.Students, func() (int, error) {
			return ds.dashboardStore.CountUsersByRole(string(user.RoleStudent))
		}},
		{&stats.Teachers, func() (int, error) {
			return ds.dashboardStore.CountUsersByRole(string(user.RoleTeacher))
		}},
		{&stats.Classes, ds.dashboardStore.CountClasses},
		{&stats.ActiveEnrollments, ds.dashboardStore.CountActiveEnrollments},
		{&stats.PublishedStories, ds.dashboardStore.CountPublishedStories},
	}
	for _, counter := range counters {
		total, err := counter.count()
		if err != nil {
			logger.Error("Failed to aggregate admin statistics", log.Error(err))
			return nil, &ErrorInternalServerError
		}
		*counter.target = total
	}

	ds.cacheService.SetCache(ctx, adminStatsCacheKey, *stats, adminStatsCacheTTL)
	return stats, nil
}

// GetSchoolStats returns aggregate counts scoped to a single school.
func (ds *dashboardService) GetSchoolStats(ctx context.Context, schoolID string) (*SchoolStats,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	if _, svcErr := ds.schoolService.GetSchool(ctx, schoolID); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorSchoolNotFound
		}
		return nil, &ErrorInternalServerError
	}

	cacheKey := schoolStatsCacheKey(schoolID)
	if cached, ok := cache.GetCacheAs[SchoolStats](ctx, ds.cacheService, cacheKey); ok {
		return &cached, nil
	}

	stats := &SchoolStats{SchoolID: schoolID}
	counters := []struct {
		target *int
		count  func() (int, error)
	}{
		{&stats.Students, func() (int, error) {
			return ds.dashboardStore.CountUsersByRoleAndSchool(string(user.RoleStudent), schoolID)
		}},
		{&stats.Teachers, func() (int, error) {
			return ds.dashboardStore.CountUsersByRoleAndSchool(string(user.RoleTeacher), schoolID)
		}},
		{&stats.Classes, func() (int, error) {
			return ds.dashboardStore.CountClassesBySchool(schoolID)
		}},
		{&stats.ActiveEnrollments, func() (int, error) {
			return ds.dashboardStore.CountActiveEnrollmentsBySchool(schoolID)
		}},
		{&stats.PublishedStories, func() (int, error) {
			return ds.dashboardStore.CountPublishedStoriesBySchool(schoolID)
		}},
	}
	for _, counter := range counters {
		total, err := counter.count()
		if err != nil {
			logger.Error("Failed to aggregate school statistics", log.Error(err),
				log.String("schoolID", schoolID))
			return nil, &ErrorInternalServerError
		}
		*counter.target = total
	}

	ds.cacheService.SetCache(ctx, cacheKey, *stats, schoolStatsCacheTTL)
	return stats, nil
}

// GetEnrollmentTrends returns a chart series of monthly enrollment counts for
// the trailing window ending at the current month. Months without enrollments
// appear in the series with a zero count.
func (ds *dashboardService) GetEnrollmentTrends(ctx context.Context, months int) (*EnrollmentTrends,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if months == 0 {
		months = defaultTrendMonths
	}
	if months < minTrendMonths || months > maxTrendMonths {
		return nil, &ErrorInvalidMonths
	}

	cacheKey := enrollmentTrendsCacheKey(months)
	if cached, ok := cache.GetCacheAs[EnrollmentTrends](ctx, ds.cacheService, cacheKey); ok {
		return &cached, nil
	}

	now := time.Now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)

	counts, err := ds.dashboardStore.GetMonthlyEnrollmentCounts(windowStart.Format(time.RFC3339))
	if err != nil {
		logger.Error("Failed to aggregate enrollment trends", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	trends := &EnrollmentTrends{
		Months: months,
		Points: make([]TrendPoint, 0, months),
	}
	for i := 0; i < months; i++ {
		month := windowStart.AddDate(0, i, 0).Format("2006-01")
		trends.Points = append(trends.Points, TrendPoint{
			Month:       month,
			Enrollments: counts[month],
		})
	}

	ds.cacheService.SetCache(ctx, cacheKey, *trends, enrollmentTrendsCacheTTL)
	return trends, nil
}
