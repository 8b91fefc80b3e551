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

package user

import (
	"errors"

	"github.com/campushq/campus/internal/system/error/serviceerror"
)

// ErrUserNotFound is returned when the user is not found in the system.
var ErrUserNotFound = errors.New("user not found")

// Client errors for user management operations.
var (
	// ErrorUserNotFound is the error returned when a user is not found.
	ErrorUserNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1001",
		Error:            "User not found",
		ErrorDescription: "The requested user could not be found",
	}
	// ErrorInvalidUserID is the error returned when an invalid user ID is provided.
	ErrorInvalidUserID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1002",
		Error:            "Invalid user ID",
		ErrorDescription: "The provided user ID is invalid or empty",
	}
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1003",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidEmail is the error returned when an invalid email address is provided.
	ErrorInvalidEmail = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1004",
		Error:            "Invalid email address",
		ErrorDescription: "The provided email address is invalid or empty",
	}
	// ErrorInvalidUserName is the error returned when an invalid user name is provided.
	ErrorInvalidUserName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1005",
		Error:            "Invalid user name",
		ErrorDescription: "The provided user name is invalid or empty",
	}
	// ErrorInvalidRole is the error returned when an unsupported role is provided.
	ErrorInvalidRole = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1006",
		Error:            "Invalid role",
		ErrorDescription: "The provided role is not supported",
	}
	// ErrorInvalidStatus is the error returned when an unsupported status is provided.
	ErrorInvalidStatus = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1007",
		Error:            "Invalid status",
		ErrorDescription: "The provided user status is not supported",
	}
	// ErrorUserAlreadyExists is the error returned when a user with the same email already exists.
	ErrorUserAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1008",
		Error:            "User already exists",
		ErrorDescription: "A user with the same email address already exists",
	}
	// ErrorSchoolNotFound is the error returned when the referenced school does not exist.
	ErrorSchoolNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1009",
		Error:            "School not found",
		ErrorDescription: "The referenced school could not be found",
	}
	// ErrorMissingPassword is the error returned when no password is provided.
	ErrorMissingPassword = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1010",
		Error:            "Missing password",
		ErrorDescription: "A password is required to create a user",
	}
	// ErrorInvalidCredentials is the error returned when credential verification fails.
	ErrorInvalidCredentials = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1011",
		Error:            "Invalid credentials",
		ErrorDescription: "The provided email or password is incorrect",
	}
	// ErrorUserDisabled is the error returned when a disabled user attempts to authenticate.
	ErrorUserDisabled = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1012",
		Error:            "User disabled",
		ErrorDescription: "The user account has been disabled",
	}
	// ErrorInvalidLimit is the error returned when an invalid pagination limit is provided.
	ErrorInvalidLimit = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1013",
		Error:            "Invalid limit",
		ErrorDescription: "The provided pagination limit is invalid",
	}
	// ErrorInvalidOffset is the error returned when an invalid pagination offset is provided.
	ErrorInvalidOffset = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1014",
		Error:            "Invalid offset",
		ErrorDescription: "The provided pagination offset is invalid",
	}
)

// Server errors for user management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "USR-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
