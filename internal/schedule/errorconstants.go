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

package schedule

import (
	"errors"

	"github.com/campushq/campus/internal/system/error/serviceerror"
)

// ErrEntryNotFound is returned by the store when a timetable entry does not exist.
var ErrEntryNotFound = errors.New("schedule entry not found")

// Client errors for schedule management operations.
var (
	// ErrorEntryNotFound is the error when the requested timetable entry is not found.
	ErrorEntryNotFound = serviceerror.ServiceError{
		Code:             "SDL-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Schedule entry not found",
		ErrorDescription: "The schedule entry with the specified id does not exist",
	}
	// ErrorInvalidEntryID is the error when the provided entry id is invalid.
	ErrorInvalidEntryID = serviceerror.ServiceError{
		Code:             "SDL-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The schedule entry id is required",
	}
	// ErrorInvalidRequestFormat is the error when the request payload is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "SDL-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is missing one or more required fields",
	}
	// ErrorInvalidDayOfWeek is the error when the day of week is out of range.
	ErrorInvalidDayOfWeek = serviceerror.ServiceError{
		Code:             "SDL-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid day of week",
		ErrorDescription: "The day of week must be between 1 (Monday) and 7 (Sunday)",
	}
	// ErrorInvalidTimeFormat is the error when a start or end time is malformed.
	ErrorInvalidTimeFormat = serviceerror.ServiceError{
		Code:             "SDL-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid time format",
		ErrorDescription: "The start and end times must use the 24-hour HH:MM format",
	}
	// ErrorInvalidTimeOrdering is the error when the start time is not before the end time.
	ErrorInvalidTimeOrdering = serviceerror.ServiceError{
		Code:             "SDL-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid time ordering",
		ErrorDescription: "The start time must be before the end time",
	}
	// ErrorClassNotFound is the error when the referenced class does not exist.
	ErrorClassNotFound = serviceerror.ServiceError{
		Code:             "SDL-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Class not found",
		ErrorDescription: "The class with the specified id does not exist in the given school",
	}
	// ErrorTeacherNotFound is the error when the referenced teacher does not exist.
	ErrorTeacherNotFound = serviceerror.ServiceError{
		Code:             "SDL-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "Teacher not found",
		ErrorDescription: "The teacher with the specified id does not exist",
	}
	// ErrorNotATeacher is the error when the referenced user is not a teacher.
	ErrorNotATeacher = serviceerror.ServiceError{
		Code:             "SDL-1009",
		Type:             serviceerror.ClientErrorType,
		Error:            "User is not a teacher",
		ErrorDescription: "Only users with the teacher role can be assigned to schedule entries",
	}
	// ErrorScheduleConflict is the error when the entry overlaps with an existing one.
	ErrorScheduleConflict = serviceerror.ServiceError{
		Code:             "SDL-1010",
		Type:             serviceerror.ClientErrorType,
		Error:            "Schedule conflict",
		ErrorDescription: "The entry overlaps with an existing entry for the same class or teacher on that day",
	}
)

// Server errors for schedule management operations.
var (
	// ErrorInternalServerError is the error when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "SDL-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
