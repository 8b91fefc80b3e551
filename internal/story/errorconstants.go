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

package story

import (
	"errors"

	"github.com/campushq/campus/internal/system/error/serviceerror"
)

// ErrStoryNotFound is returned by the store when a story does not exist.
var ErrStoryNotFound = errors.New("story not found")

// Client errors for story management operations.
var (
	// ErrorStoryNotFound is the error when the requested story is not found.
	ErrorStoryNotFound = serviceerror.ServiceError{
		Code:             "STY-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Story not found",
		ErrorDescription: "The story with the specified id does not exist",
	}
	// ErrorInvalidStoryID is the error when the provided story id is invalid.
	ErrorInvalidStoryID = serviceerror.ServiceError{
		Code:             "STY-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The story id is required",
	}
	// ErrorInvalidRequestFormat is the error when the request payload is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "STY-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is missing one or more required fields",
	}
	// ErrorSchoolNotFound is the error when the referenced school does not exist.
	ErrorSchoolNotFound = serviceerror.ServiceError{
		Code:             "STY-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "School not found",
		ErrorDescription: "The school with the specified id does not exist",
	}
	// ErrorInvalidLimit is the error when the provided limit parameter is invalid.
	ErrorInvalidLimit = serviceerror.ServiceError{
		Code:             "STY-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The limit parameter must be a positive integer no greater than the maximum page size",
	}
	// ErrorInvalidOffset is the error when the provided offset parameter is invalid.
	ErrorInvalidOffset = serviceerror.ServiceError{
		Code:             "STY-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The offset parameter must be a non-negative integer",
	}
)

// Server errors for story management operations.
var (
	// ErrorInternalServerError is the error when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "STY-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
