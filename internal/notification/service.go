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
	"time"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/internal/system/log"
	"github.com/campushq/campus/internal/system/utils"
	"github.com/campushq/campus/internal/user"
)

const loggerComponentName = "NotificationService"

// NotificationServiceInterface defines the interface for announcement operations.
type NotificationServiceInterface interface {
	CreateAnnouncement(ctx context.Context, request *AnnouncementRequest) (*Announcement,
		*serviceerror.ServiceError)
	GetAnnouncement(ctx context.Context, announcementID string) (*Announcement, *serviceerror.ServiceError)
	ListAnnouncements(ctx context.Context, schoolID string) ([]Announcement, *serviceerror.ServiceError)
	DeleteAnnouncement(ctx context.Context, announcementID string) *serviceerror.ServiceError
	ListDispatchAttempts(ctx context.Context, announcementID string) ([]DispatchAttempt,
		*serviceerror.ServiceError)
}

// notificationService is the default implementation of NotificationServiceInterface.
type notificationService struct {
	store         notificationStoreInterface
	schoolService school.SchoolServiceInterface
	clientFactory messageClientFactory
}

// newNotificationService creates a new instance of notificationService.
func newNotificationService(store notificationStoreInterface,
	schoolService school.SchoolServiceInterface) NotificationServiceInterface {
	return &notificationService{
		store:         store,
		schoolService: schoolService,
		clientFactory: newMessageClient,
	}
}

// CreateAnnouncement creates a new announcement. In-app announcements are
// stored as sent immediately; SMS announcements are dispatched to every
// recipient through the named sender and each attempt is recorded.
func (ns *notificationService) CreateAnnouncement(ctx context.Context, request *AnnouncementRequest) (
	*Announcement, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request == nil || strings.TrimSpace(request.SchoolID) == "" ||
		strings.TrimSpace(request.Title) == "" || strings.TrimSpace(request.Body) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	channel := Channel(strings.ToLower(strings.TrimSpace(request.Channel)))
	if channel == "" {
		channel = ChannelInApp
	}
	if !slices.Contains(supportedChannels, channel) {
		return nil, &ErrorInvalidChannel
	}

	audienceRole := strings.ToLower(strings.TrimSpace(request.AudienceRole))
	if audienceRole != "" && !user.IsValidRole(user.Role(audienceRole)) {
		return nil, &ErrorInvalidAudienceRole
	}

	if _, svcErr := ns.schoolService.GetSchool(ctx, request.SchoolID); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorSchoolNotFound
		}
		return nil, &ErrorInternalServerError
	}

	var sender *MessageSender
	if channel == ChannelSMS {
		if strings.TrimSpace(request.SenderName) == "" || len(request.Recipients) == 0 {
			return nil, &ErrorMissingRecipients
		}
		stored, err := ns.store.GetSenderByName(strings.TrimSpace(request.SenderName))
		if err != nil {
			if errors.Is(err, ErrSenderNotFound) {
				return nil, &ErrorSenderNotFound
			}
			return nil, logErrorAndReturnServerError(logger, "Failed to retrieve sender", err)
		}
		sender = stored
	}

	now := time.Now().UTC().Format(time.RFC3339)
	announcement := &Announcement{
		ID:           utils.GenerateUUID(),
		SchoolID:     request.SchoolID,
		Title:        strings.TrimSpace(request.Title),
		Body:         request.Body,
		AudienceRole: audienceRole,
		Channel:      channel,
		Status:       AnnouncementStatusPending,
		CreatedBy:    strings.TrimSpace(request.CreatedBy),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if channel == ChannelInApp {
		// Nothing to dispatch for in-app announcements.
		announcement.Status = AnnouncementStatusSent
	}

	if err := ns.store.CreateAnnouncement(*announcement); err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to create announcement", err)
	}

	if channel == ChannelSMS {
		status := ns.dispatchSMS(logger, announcement, sender, request.Recipients)
		updatedAt := time.Now().UTC().Format(time.RFC3339)
		if err := ns.store.UpdateAnnouncementStatus(announcement.ID, status, updatedAt); err != nil {
			return nil, logErrorAndReturnServerError(logger, "Failed to update announcement status", err,
				log.String("announcementID", announcement.ID))
		}
		announcement.Status = status
		announcement.UpdatedAt = updatedAt
	}

	logger.Debug("Successfully created announcement", log.String("announcementID", announcement.ID),
		log.String("channel", string(channel)), log.String("status", string(announcement.Status)))
	return announcement, nil
}

// dispatchSMS sends the announcement body to every recipient and records one
// dispatch attempt per recipient. A provider failure for one recipient does
// not stop the remaining dispatches.
func (ns *notificationService) dispatchSMS(logger *log.Logger, announcement *Announcement,
	sender *MessageSender, recipients []string) AnnouncementStatus {
	client, err := ns.clientFactory(sender)
	if err != nil {
		logger.Error("Failed to build message client", log.Error(err),
			log.String("senderID", sender.ID))
		ns.recordAttempts(logger, announcement.ID, recipients, DispatchStatusFailed, err.Error())
		return AnnouncementStatusFailed
	}

	status := AnnouncementStatusSent
	for _, recipient := range recipients {
		recipient = strings.TrimSpace(recipient)
		if recipient == "" {
			continue
		}

		attempt := DispatchAttempt{
			ID:             utils.GenerateUUID(),
			AnnouncementID: announcement.ID,
			Recipient:      recipient,
			Status:         DispatchStatusSent,
			AttemptedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if sendErr := client.SendSMS(SMSData{To: recipient, Body: announcement.Body}); sendErr != nil {
			logger.Error("Failed to dispatch SMS", log.Error(sendErr),
				log.String("announcementID", announcement.ID),
				log.String("to", log.MaskString(recipient)))
			attempt.Status = DispatchStatusFailed
			attempt.Detail = sendErr.Error()
			status = AnnouncementStatusFailed
		}
		if err := ns.store.CreateDispatchAttempt(attempt); err != nil {
			logger.Error("Failed to record dispatch attempt", log.Error(err),
				log.String("announcementID", announcement.ID))
		}
	}
	return status
}

// recordAttempts records a uniform attempt outcome for every recipient.
func (ns *notificationService) recordAttempts(logger *log.Logger, announcementID string,
	recipients []string, status DispatchStatus, detail string) {
	for _, recipient := range recipients {
		recipient = strings.TrimSpace(recipient)
		if recipient == "" {
			continue
		}
		attempt := DispatchAttempt{
			ID:             utils.GenerateUUID(),
			AnnouncementID: announcementID,
			Recipient:      recipient,
			Status:         status,
			Detail:         detail,
			AttemptedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := ns.store.CreateDispatchAttempt(attempt); err != nil {
			logger.Error("Failed to record dispatch attempt", log.Error(err),
				log.String("announcementID", announcementID))
		}
	}
}

// GetAnnouncement retrieves an announcement by id.
func (ns *notificationService) GetAnnouncement(ctx context.Context, announcementID string) (
	*Announcement, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(announcementID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	announcement, err := ns.store.GetAnnouncementByID(announcementID)
	if err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			return nil, &ErrorAnnouncementNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve announcement", err,
			log.String("announcementID", announcementID))
	}
	return announcement, nil
}

// ListAnnouncements retrieves the announcements of a school, newest first.
func (ns *notificationService) ListAnnouncements(ctx context.Context, schoolID string) ([]Announcement,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(schoolID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	if _, svcErr := ns.schoolService.GetSchool(ctx, schoolID); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorSchoolNotFound
		}
		return nil, &ErrorInternalServerError
	}

	announcements, err := ns.store.GetAnnouncementsBySchool(schoolID)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to list announcements", err,
			log.String("schoolID", schoolID))
	}
	return announcements, nil
}

// DeleteAnnouncement deletes an announcement. The operation is idempotent.
func (ns *notificationService) DeleteAnnouncement(ctx context.Context, announcementID string) (
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(announcementID) == "" {
		return &ErrorInvalidRequestFormat
	}

	if err := ns.store.DeleteAnnouncement(announcementID); err != nil {
		return logErrorAndReturnServerError(logger, "Failed to delete announcement", err,
			log.String("announcementID", announcementID))
	}
	return nil
}

// ListDispatchAttempts retrieves the dispatch attempts of an announcement.
func (ns *notificationService) ListDispatchAttempts(ctx context.Context, announcementID string) (
	[]DispatchAttempt, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(announcementID) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	if _, err := ns.store.GetAnnouncementByID(announcementID); err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			return nil, &ErrorAnnouncementNotFound
		}
		return nil, logErrorAndReturnServerError(logger, "Failed to retrieve announcement", err,
			log.String("announcementID", announcementID))
	}

	attempts, err := ns.store.GetDispatchAttempts(announcementID)
	if err != nil {
		return nil, logErrorAndReturnServerError(logger, "Failed to list dispatch attempts", err,
			log.String("announcementID", announcementID))
	}
	return attempts, nil
}

// logErrorAndReturnServerError logs the error and returns a generic server error.
func logErrorAndReturnServerError(logger *log.Logger, message string, err error,
	additionalFields ...log.Field) *serviceerror.ServiceError {
	fields := append(additionalFields, log.Error(err))
	logger.Error(message, fields...)
	return &ErrorInternalServerError
}
