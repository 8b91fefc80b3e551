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

package notification

import (
	"errors"

	"github.com/campushq/campus/internal/system/error/serviceerror"
)

// Store level sentinel errors.
var (
	// ErrAnnouncementNotFound is returned when the announcement does not exist in the store.
	ErrAnnouncementNotFound = errors.New("announcement not found")
	// ErrSenderNotFound is returned when the message sender does not exist in the store.
	ErrSenderNotFound = errors.New("sender not found")
)

// Client errors for notification operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "NOT-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body or parameters are malformed or contain invalid data",
	}
	// ErrorAnnouncementNotFound is the error returned when the requested announcement does not exist.
	ErrorAnnouncementNotFound = serviceerror.ServiceError{
		Code:             "NOT-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Announcement not found",
		ErrorDescription: "The announcement with the specified id does not exist",
	}
	// ErrorSchoolNotFound is the error returned when the target school does not exist.
	ErrorSchoolNotFound = serviceerror.ServiceError{
		Code:             "NOT-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "School not found",
		ErrorDescription: "The school with the specified id does not exist",
	}
	// ErrorInvalidChannel is the error returned when the announcement channel is not supported.
	ErrorInvalidChannel = serviceerror.ServiceError{
		Code:             "NOT-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid channel",
		ErrorDescription: "The announcement channel must be one of: in_app, sms",
	}
	// ErrorInvalidAudienceRole is the error returned when the audience role filter is not supported.
	ErrorInvalidAudienceRole = serviceerror.ServiceError{
		Code:             "NOT-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid audience role",
		ErrorDescription: "The audience role must be one of the supported user roles",
	}
	// ErrorSenderNotFound is the error returned when the named message sender does not exist.
	ErrorSenderNotFound = serviceerror.ServiceError{
		Code:             "NOT-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Message sender not found",
		ErrorDescription: "The message sender with the specified id or name does not exist",
	}
	// ErrorInvalidProvider is the error returned when the sender provider is not supported.
	ErrorInvalidProvider = serviceerror.ServiceError{
		Code:             "NOT-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid provider",
		ErrorDescription: "The message provider must be one of: custom, twilio, vonage",
	}
	// ErrorInvalidSenderProperties is the error returned when the sender properties fail validation.
	ErrorInvalidSenderProperties = serviceerror.ServiceError{
		Code:             "NOT-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid sender properties",
		ErrorDescription: "The sender properties are incomplete or invalid for the selected provider",
	}
	// ErrorDuplicateSenderName is the error returned when a sender with the same name already exists.
	ErrorDuplicateSenderName = serviceerror.ServiceError{
		Code:             "NOT-1009",
		Type:             serviceerror.ClientErrorType,
		Error:            "Duplicate sender name",
		ErrorDescription: "A message sender with the same name already exists",
	}
	// ErrorMissingRecipients is the error returned when an SMS announcement has no recipients.
	ErrorMissingRecipients = serviceerror.ServiceError{
		Code:             "NOT-1010",
		Type:             serviceerror.ClientErrorType,
		Error:            "Missing recipients",
		ErrorDescription: "An SMS announcement requires a sender name and at least one recipient number",
	}
)

// Server errors for notification operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "NOT-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
