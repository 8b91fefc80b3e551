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
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/campushq/campus/internal/system/cmodels"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	"github.com/campushq/campus/internal/system/utils"
)

const senderLoggerComponentName = "MessageSenderService"

// SenderServiceInterface defines the interface for message sender management operations.
type SenderServiceInterface interface {
	CreateSender(ctx context.Context, request *SenderRequest) (*MessageSender, *serviceerror.ServiceError)
	GetSender(ctx context.Context, senderID string) (*MessageSender, *serviceerror.ServiceError)
	ListSenders(ctx context.Context) ([]MessageSender, *serviceerror.ServiceError)
	UpdateSender(ctx context.Context, senderID string, request *SenderRequest) (*MessageSender,
		*serviceerror.ServiceError)
	DeleteSender(ctx context.Context, senderID string) *serviceerror.ServiceError
}

// senderService is the default implementation of SenderServiceInterface.
type senderService struct {
	store notificationStoreInterface
}

// newSenderService creates a new instance of senderService.
func newSenderService(store notificationStoreInterface) SenderServiceInterface {
	return &senderService{
		store: store,
	}
}

// CreateSender creates a new message sender. Secret property values are
// encrypted before they reach the store.
func (ss *senderService) CreateSender(ctx context.Context, request *SenderRequest) (*MessageSender,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, senderLoggerComponentName))

	sender, svcErr := ss.buildSender(logger, request)
	if svcErr != nil {
		return nil, svcErr
	}

	if existing, err := ss.store.GetSenderByName(sender.Name); err == nil && existing != nil {
		return nil, &ErrorDuplicateSenderName
	} else if err != nil && !errors.Is(err, ErrSenderNotFound) {
		return nil, logSenderErrorAndReturnServerError(logger, "Failed to check sender name", err)
	}

	sender.ID = utils.GenerateUUID()
	if err := ss.store.CreateSender(*sender); err != nil {
		return nil, logSenderErrorAndReturnServerError(logger, "Failed to create sender", err)
	}

	logger.Debug("Successfully created message sender", log.String("senderID", sender.ID))
	return redactSecrets(sender), nil
}

// GetSender retrieves a message sender by id with secret values redacted.
func (ss *senderService) GetSender(ctx context.Context, senderID string) (*MessageSender,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, senderLoggerComponentName))

	if strings.TrimSpace(senderID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	sender, err := ss.store.GetSenderByID(senderID)
	if err != nil {
		if errors.Is(err, ErrSenderNotFound) {
			return nil, &ErrorSenderNotFound
		}
		return nil, logSenderErrorAndReturnServerError(logger, "Failed to retrieve sender", err,
			log.String("senderID", senderID))
	}
	return redactSecrets(sender), nil
}

// ListSenders retrieves all message senders with secret values redacted.
func (ss *senderService) ListSenders(ctx context.Context) ([]MessageSender, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, senderLoggerComponentName))

	senders, err := ss.store.ListSenders()
	if err != nil {
		return nil, logSenderErrorAndReturnServerError(logger, "Failed to list senders", err)
	}

	redacted := make([]MessageSender, 0, len(senders))
	for i := range senders {
		redacted = append(redacted, *redactSecrets(&senders[i]))
	}
	return redacted, nil
}

// UpdateSender updates a message sender and replaces its properties.
func (ss *senderService) UpdateSender(ctx context.Context, senderID string, request *SenderRequest) (
	*MessageSender, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, senderLoggerComponentName))

	if strings.TrimSpace(senderID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	sender, svcErr := ss.buildSender(logger, request)
	if svcErr != nil {
		return nil, svcErr
	}

	if existing, err := ss.store.GetSenderByName(sender.Name); err == nil && existing != nil &&
		existing.ID != senderID {
		return nil, &ErrorDuplicateSenderName
	} else if err != nil && !errors.Is(err, ErrSenderNotFound) {
		return nil, logSenderErrorAndReturnServerError(logger, "Failed to check sender name", err)
	}

	sender.ID = senderID
	if err := ss.store.UpdateSender(sender); err != nil {
		if errors.Is(err, ErrSenderNotFound) {
			return nil, &ErrorSenderNotFound
		}
		return nil, logSenderErrorAndReturnServerError(logger, "Failed to update sender", err,
			log.String("senderID", senderID))
	}
	return redactSecrets(sender), nil
}

// DeleteSender deletes a message sender. The operation is idempotent.
func (ss *senderService) DeleteSender(ctx context.Context, senderID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, senderLoggerComponentName))

	if strings.TrimSpace(senderID) == "" {
		return &ErrorInvalidRequestFormat
	}

	if err := ss.store.DeleteSender(senderID); err != nil {
		return logSenderErrorAndReturnServerError(logger, "Failed to delete sender", err,
			log.String("senderID", senderID))
	}
	return nil
}

// buildSender validates a sender request and returns the sender with secret
// properties encrypted.
func (ss *senderService) buildSender(logger *log.Logger, request *SenderRequest) (*MessageSender,
	*serviceerror.ServiceError) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	providerType := ProviderType(strings.ToLower(strings.TrimSpace(request.Provider)))
	if !slices.Contains(supportedProviders, providerType) {
		return nil, &ErrorInvalidProvider
	}

	sender := &MessageSender{
		Name:        strings.TrimSpace(request.Name),
		Description: strings.TrimSpace(request.Description),
		Provider:    providerType,
		Properties:  make([]cmodels.Property, 0, len(request.Properties)),
	}
	for _, prop := range request.Properties {
		if strings.TrimSpace(prop.Name) == "" {
			return nil, &ErrorInvalidSenderProperties
		}
		property := cmodels.Property{
			Name:     strings.TrimSpace(prop.Name),
			Value:    prop.Value,
			IsSecret: prop.IsSecret,
		}
		if err := property.Encrypt(); err != nil {
			return nil, logSenderErrorAndReturnServerError(logger, "Failed to encrypt sender property", err)
		}
		sender.Properties = append(sender.Properties, property)
	}

	// Building a client validates the provider-specific property set without
	// any network traffic.
	if _, err := newMessageClient(sender); err != nil {
		logger.Debug("Sender property validation failed", log.Error(err))
		return nil, &ErrorInvalidSenderProperties
	}
	return sender, nil
}

// redactSecrets blanks secret property values for API responses.
func redactSecrets(sender *MessageSender) *MessageSender {
	redacted := *sender
	redacted.Properties = make([]cmodels.Property, 0, len(sender.Properties))
	for _, prop := range sender.Properties {
		if prop.IsSecret {
			prop.Value = ""
		}
		redacted.Properties = append(redacted.Properties, prop)
	}
	return &redacted
}

// logSenderErrorAndReturnServerError logs the error and returns a generic server error.
func logSenderErrorAndReturnServerError(logger *log.Logger, message string, err error,
	additionalFields ...log.Field) *serviceerror.ServiceError {
	fields := append(additionalFields, log.Error(err))
	logger.Error(message, fields...)
	return &ErrorInternalServerError
}
