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

package school

import (
	"errors"

	"github.com/campushq/campus/internal/system/error/serviceerror"
)

// ErrSchoolNotFound is returned when the school is not found in the system.
var ErrSchoolNotFound = errors.New("school not found")

// ErrClassNotFound is returned when the class is not found in the system.
var ErrClassNotFound = errors.New("class not found")

// Client errors for school management operations.
var (
	// ErrorSchoolNotFound is the error returned when a school is not found.
	ErrorSchoolNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1001",
		Error:            "School not found",
		ErrorDescription: "The requested school could not be found",
	}
	// ErrorInvalidSchoolID is the error returned when an invalid school ID is provided.
	ErrorInvalidSchoolID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1002",
		Error:            "Invalid school ID",
		ErrorDescription: "The provided school ID is invalid or empty",
	}
	// ErrorInvalidSchoolName is the error returned when an invalid school name is provided.
	ErrorInvalidSchoolName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1003",
		Error:            "Invalid school name",
		ErrorDescription: "The provided school name is invalid or empty",
	}
	// ErrorSchoolAlreadyExists is the error returned when a school with the same name already exists.
	ErrorSchoolAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1004",
		Error:            "School already exists",
		ErrorDescription: "A school with the same name already exists",
	}
	// ErrorInvalidSchoolStatus is the error returned when an invalid school status is provided.
	ErrorInvalidSchoolStatus = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1005",
		Error:            "Invalid school status",
		ErrorDescription: "The provided school status is not supported",
	}
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1006",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorClassNotFound is the error returned when a class is not found.
	ErrorClassNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1007",
		Error:            "Class not found",
		ErrorDescription: "The requested class could not be found in the school",
	}
	// ErrorInvalidClassID is the error returned when an invalid class ID is provided.
	ErrorInvalidClassID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1008",
		Error:            "Invalid class ID",
		ErrorDescription: "The provided class ID is invalid or empty",
	}
	// ErrorInvalidClassName is the error returned when an invalid class name is provided.
	ErrorInvalidClassName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1009",
		Error:            "Invalid class name",
		ErrorDescription: "The provided class name is invalid or empty",
	}
	// ErrorClassAlreadyExists is the error returned when a class with the same name already exists.
	ErrorClassAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1010",
		Error:            "Class already exists",
		ErrorDescription: "A class with the same name already exists in the school",
	}
	// ErrorInvalidGradeLevel is the error returned when an invalid grade level is provided.
	ErrorInvalidGradeLevel = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1011",
		Error:            "Invalid grade level",
		ErrorDescription: "The provided grade level is outside the supported range",
	}
	// ErrorInvalidCapacity is the error returned when an invalid class capacity is provided.
	ErrorInvalidCapacity = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SCH-1012",
		Error:            "Invalid capacity",
		ErrorDescription: "The provided class capacity must be a positive number",
	}
)

// Server errors for school management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SCH-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
