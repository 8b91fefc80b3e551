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

package enrollment

import (
	"errors"

	"github.com/campushq/campus/internal/system/error/serviceerror"
)

// ErrEnrollmentNotFound is returned by the store when an enrollment does not exist.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// Client errors for enrollment operations.
var (
	// ErrorEnrollmentNotFound is the error returned when the enrollment is not found.
	ErrorEnrollmentNotFound = serviceerror.ServiceError{
		Code:             "ENR-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Enrollment not found",
		ErrorDescription: "The enrollment with the specified id does not exist",
	}
	// ErrorInvalidEnrollmentID is the error returned when the enrollment ID is invalid.
	ErrorInvalidEnrollmentID = serviceerror.ServiceError{
		Code:             "ENR-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid enrollment id",
		ErrorDescription: "The enrollment id is empty or invalid",
	}
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "ENR-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorStudentNotFound is the error returned when the referenced student does not exist.
	ErrorStudentNotFound = serviceerror.ServiceError{
		Code:             "ENR-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Student not found",
		ErrorDescription: "The referenced student does not exist",
	}
	// ErrorNotAStudent is the error returned when the referenced user is not a student.
	ErrorNotAStudent = serviceerror.ServiceError{
		Code:             "ENR-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Not a student",
		ErrorDescription: "Only users with the student role can be enrolled in a class",
	}
	// ErrorClassNotFound is the error returned when the referenced class does not exist.
	ErrorClassNotFound = serviceerror.ServiceError{
		Code:             "ENR-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Class not found",
		ErrorDescription: "The referenced class does not exist in the given school",
	}
	// ErrorDuplicateEnrollment is the error returned when an active enrollment already exists.
	ErrorDuplicateEnrollment = serviceerror.ServiceError{
		Code:             "ENR-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Duplicate enrollment",
		ErrorDescription: "The student already has an active enrollment in this class",
	}
	// ErrorInvalidStatus is the error returned when the enrollment status is unsupported.
	ErrorInvalidStatus = serviceerror.ServiceError{
		Code:             "ENR-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid status",
		ErrorDescription: "The enrollment status must be one of: active, completed, withdrawn",
	}
	// ErrorClassFull is the error returned when the class has reached its capacity.
	ErrorClassFull = serviceerror.ServiceError{
		Code:             "ENR-1010",
		Type:             serviceerror.ClientErrorType,
		Error:            "Class full",
		ErrorDescription: "The class has reached its enrollment capacity",
	}
	// ErrorMissingListFilter is the error returned when no list filter is provided.
	ErrorMissingListFilter = serviceerror.ServiceError{
		Code:             "ENR-1009",
		Type:             serviceerror.ClientErrorType,
		Error:            "Missing list filter",
		ErrorDescription: "Either class_id or student_id must be provided",
	}
)

// Server errors for enrollment operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "ENR-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
