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

import "github.com/campushq/campus/internal/system/error/serviceerror"

// Client errors for dashboard operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "DSH-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body or parameters are malformed or contain invalid data",
	}
	// ErrorInvalidMonths is the error returned when the trend window is out of range.
	ErrorInvalidMonths = serviceerror.ServiceError{
		Code:             "DSH-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid months parameter",
		ErrorDescription: "The months parameter must be an integer between 1 and 24",
	}
	// ErrorSchoolNotFound is the error returned when the requested school does not exist.
	ErrorSchoolNotFound = serviceerror.ServiceError{
		Code:             "DSH-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "School not found",
		ErrorDescription: "The school with the specified id does not exist",
	}
)

// Server errors for dashboard operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "DSH-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
