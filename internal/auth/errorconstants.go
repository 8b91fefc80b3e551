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

package auth

import "github.com/campushq/campus/internal/system/error/serviceerror"

// Client errors for authentication operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "AUTH-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidCredentials is the error returned when the login credentials are incorrect.
	ErrorInvalidCredentials = serviceerror.ServiceError{
		Code:             "AUTH-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid credentials",
		ErrorDescription: "The provided email or password is incorrect",
	}
	// ErrorInvalidCSRFToken is the error returned when the CSRF token is missing or invalid.
	ErrorInvalidCSRFToken = serviceerror.ServiceError{
		Code:             "AUTH-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid CSRF token",
		ErrorDescription: "The CSRF token is missing, expired, or already used",
	}
	// ErrorMissingAuthorization is the error returned when the Authorization header is absent.
	ErrorMissingAuthorization = serviceerror.ServiceError{
		Code:             "AUTH-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Missing authorization",
		ErrorDescription: "The Authorization header is missing or malformed",
	}
	// ErrorInvalidToken is the error returned when the bearer token fails validation.
	ErrorInvalidToken = serviceerror.ServiceError{
		Code:             "AUTH-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid token",
		ErrorDescription: "The bearer token is invalid or expired",
	}
	// ErrorSessionExpired is the error returned when the login session no longer exists.
	ErrorSessionExpired = serviceerror.ServiceError{
		Code:             "AUTH-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Session expired",
		ErrorDescription: "The login session has expired or been terminated",
	}
	// ErrorInsufficientPermissions is the error returned when the user role is not allowed.
	ErrorInsufficientPermissions = serviceerror.ServiceError{
		Code:             "AUTH-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Insufficient permissions",
		ErrorDescription: "The authenticated user is not allowed to access this resource",
	}
	// ErrorAccountDisabled is the error returned when the user account is disabled.
	ErrorAccountDisabled = serviceerror.ServiceError{
		Code:             "AUTH-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "Account disabled",
		ErrorDescription: "The user account has been disabled",
	}
)

// Server errors for authentication operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "AUTH-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
