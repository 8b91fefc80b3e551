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
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/campushq/campus/internal/school"
	"github.com/campushq/campus/internal/system/cmodels"
	"github.com/campushq/campus/internal/system/error/serviceerror"
	"github.com/campushq/campus/tests/mocks/schoolmock"
)

// mockNotificationStore is a configurable mock implementation of
// notificationStoreInterface. Unset function fields return not-found errors
// for lookups and nil for writes.
type mockNotificationStore struct {
	GetAnnouncementByIDFunc      func(announcementID string) (*Announcement, error)
	GetAnnouncementsBySchoolFunc func(schoolID string) ([]Announcement, error)
	GetSenderByIDFunc            func(senderID string) (*MessageSender, error)
	GetSenderByNameFunc          func(name string) (*MessageSender, error)
	ListSendersFunc              func() ([]MessageSender, error)
	CreateAnnouncementFunc       func(announcement Announcement) error
	CreateDispatchAttemptFunc    func(attempt DispatchAttempt) error
	GetDispatchAttemptsFunc      func(announcementID string) ([]DispatchAttempt, error)

	CreatedAnnouncements []Announcement
	StatusUpdates        []AnnouncementStatus
	CreatedAttempts      []DispatchAttempt
	CreatedSenders       []MessageSender
	UpdatedSenders       []MessageSender
	DeletedSenders       []string
	DeletedAnnouncements []string
}

func (m *mockNotificationStore) CreateAnnouncement(announcement Announcement) error {
	m.CreatedAnnouncements = append(m.CreatedAnnouncements, announcement)
	if m.CreateAnnouncementFunc != nil {
		return m.CreateAnnouncementFunc(announcement)
	}
	return nil
}

func (m *mockNotificationStore) GetAnnouncementByID(announcementID string) (*Announcement, error) {
	if m.GetAnnouncementByIDFunc != nil {
		return m.GetAnnouncementByIDFunc(announcementID)
	}
	return nil, ErrAnnouncementNotFound
}

func (m *mockNotificationStore) GetAnnouncementsBySchool(schoolID string) ([]Announcement, error) {
	if m.GetAnnouncementsBySchoolFunc != nil {
		return m.GetAnnouncementsBySchoolFunc(schoolID)
	}
	return []Announcement{}, nil
}

func (m *mockNotificationStore) UpdateAnnouncementStatus(announcementID string,
	status AnnouncementStatus, updatedAt string) error {
	m.StatusUpdates = append(m.StatusUpdates, status)
	return nil
}

func (m *mockNotificationStore) DeleteAnnouncement(announcementID string) error {
	m.DeletedAnnouncements = append(m.DeletedAnnouncements, announcementID)
	return nil
}

func (m *mockNotificationStore) CreateSender(sender MessageSender) error {
	m.CreatedSenders = append(m.CreatedSenders, sender)
	return nil
}

func (m *mockNotificationStore) GetSenderByID(senderID string) (*MessageSender, error) {
	if m.GetSenderByIDFunc != nil {
		return m.GetSenderByIDFunc(senderID)
	}
	return nil, ErrSenderNotFound
}

func (m *mockNotificationStore) GetSenderByName(name string) (*MessageSender, error) {
	if m.GetSenderByNameFunc != nil {
		return m.GetSenderByNameFunc(name)
	}
	return nil, ErrSenderNotFound
}

func (m *mockNotificationStore) ListSenders() ([]MessageSender, error) {
	if m.ListSendersFunc != nil {
		return m.ListSendersFunc()
	}
	return []MessageSender{}, nil
}

func (m *mockNotificationStore) UpdateSender(sender *MessageSender) error {
	m.UpdatedSenders = append(m.UpdatedSenders, *sender)
	return nil
}

func (m *mockNotificationStore) DeleteSender(senderID string) error {
	m.DeletedSenders = append(m.DeletedSenders, senderID)
	return nil
}

func (m *mockNotificationStore) CreateDispatchAttempt(attempt DispatchAttempt) error {
	m.CreatedAttempts = append(m.CreatedAttempts, attempt)
	if m.CreateDispatchAttemptFunc != nil {
		return m.CreateDispatchAttemptFunc(attempt)
	}
	return nil
}

func (m *mockNotificationStore) GetDispatchAttempts(announcementID string) ([]DispatchAttempt, error) {
	if m.GetDispatchAttemptsFunc != nil {
		return m.GetDispatchAttemptsFunc(announcementID)
	}
	return []DispatchAttempt{}, nil
}

// fakeMessageClient records the messages handed to it and fails for the
// recipients listed in failFor.
type fakeMessageClient struct {
	name    string
	failFor map[string]bool
	sent    []SMSData
}

func (f *fakeMessageClient) GetName() string {
	return f.name
}

func (f *fakeMessageClient) SendSMS(sms SMSData) error {
	f.sent = append(f.sent, sms)
	if f.failFor[sms.To] {
		return errors.New("provider rejected the message")
	}
	return nil
}

type NotificationServiceTestSuite struct {
	suite.Suite
	mockStore  *mockNotificationStore
	mockSchool *schoolmock.MockSchoolService
	fakeClient *fakeMessageClient
	service    *notificationService
	ctx        context.Context
}

func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockStore = &mockNotificationStore{}
	suite.mockSchool = &schoolmock.MockSchoolService{}
	suite.fakeClient = &fakeMessageClient{name: "test-sender"}
	suite.service = &notificationService{
		store:         suite.mockStore,
		schoolService: suite.mockSchool,
		clientFactory: func(sender *MessageSender) (MessageClientInterface, error) {
			return suite.fakeClient, nil
		},
	}
	suite.ctx = context.Background()
}

func (suite *NotificationServiceTestSuite) allowSchoolLookup() {
	suite.mockSchool.MockGetSchool = func(ctx context.Context, schoolID string) (*school.School,
		*serviceerror.ServiceError) {
		return &school.School{ID: schoolID, Name: "Mahinda College"}, nil
	}
}

func (suite *NotificationServiceTestSuite) allowSenderLookup() {
	suite.mockStore.GetSenderByNameFunc = func(name string) (*MessageSender, error) {
		return &MessageSender{ID: "sender-1", Name: name, Provider: ProviderTypeCustom}, nil
	}
}

func (suite *NotificationServiceTestSuite) TestCreateInAppAnnouncementMarkedSent() {
	suite.allowSchoolLookup()

	announcement, svcErr := suite.service.CreateAnnouncement(suite.ctx, &AnnouncementRequest{
		SchoolID:  "school-1",
		Title:     "Sports meet",
		Body:      "The annual sports meet is on Friday.",
		Channel:   "in_app",
		CreatedBy: "user-1",
	})

	suite.Require().Nil(svcErr)
	suite.Require().NotNil(announcement)
	suite.Equal(AnnouncementStatusSent, announcement.Status)
	suite.Equal(ChannelInApp, announcement.Channel)
	suite.NotEmpty(announcement.ID)
	suite.Require().Len(suite.mockStore.CreatedAnnouncements, 1)
	suite.Empty(suite.mockStore.CreatedAttempts)
	suite.Empty(suite.fakeClient.sent)
}

func (suite *NotificationServiceTestSuite) TestCreateAnnouncementDefaultsToInApp() {
	suite.allowSchoolLookup()

	announcement, svcErr := suite.service.CreateAnnouncement(suite.ctx, &AnnouncementRequest{
		SchoolID: "school-1",
		Title:    "Holiday notice",
		Body:     "School is closed on Monday.",
	})

	suite.Require().Nil(svcErr)
	suite.Equal(ChannelInApp, announcement.Channel)
	suite.Equal(AnnouncementStatusSent, announcement.Status)
}

func (suite *NotificationServiceTestSuite) TestCreateAnnouncementValidation() {
	suite.allowSchoolLookup()

	testCases := []struct {
		name     string
		request  *AnnouncementRequest
		expected string
	}{
		{"NilRequest", nil, ErrorInvalidRequestFormat.Code},
		{"MissingTitle", &AnnouncementRequest{SchoolID: "school-1", Body: "b"},
			ErrorInvalidRequestFormat.Code},
		{"MissingBody", &AnnouncementRequest{SchoolID: "school-1", Title: "t"},
			ErrorInvalidRequestFormat.Code},
		{"InvalidChannel", &AnnouncementRequest{SchoolID: "school-1", Title: "t", Body: "b",
			Channel: "email"}, ErrorInvalidChannel.Code},
		{"InvalidAudienceRole", &AnnouncementRequest{SchoolID: "school-1", Title: "t", Body: "b",
			AudienceRole: "parent"}, ErrorInvalidAudienceRole.Code},
		{"SMSWithoutRecipients", &AnnouncementRequest{SchoolID: "school-1", Title: "t", Body: "b",
			Channel: "sms", SenderName: "test-sender"}, ErrorMissingRecipients.Code},
		{"SMSWithoutSender", &AnnouncementRequest{SchoolID: "school-1", Title: "t", Body: "b",
			Channel: "sms", Recipients: []string{"+94771234567"}}, ErrorMissingRecipients.Code},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			announcement, svcErr := suite.service.CreateAnnouncement(suite.ctx, tc.request)
			if announcement != nil {
				t.Error("expected no announcement for an invalid request")
			}
			if svcErr == nil || svcErr.Code != tc.expected {
				t.Errorf("expected error code %s, got %+v", tc.expected, svcErr)
			}
		})
	}
}

func (suite *NotificationServiceTestSuite) TestCreateAnnouncementUnknownSchool() {
	announcement, svcErr := suite.service.CreateAnnouncement(suite.ctx, &AnnouncementRequest{
		SchoolID: "missing",
		Title:    "t",
		Body:     "b",
	})

	suite.Nil(announcement)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorSchoolNotFound.Code, svcErr.Code)
	suite.Empty(suite.mockStore.CreatedAnnouncements)
}

func (suite *NotificationServiceTestSuite) TestCreateSMSAnnouncementDispatchesToAllRecipients() {
	suite.allowSchoolLookup()
	suite.allowSenderLookup()

	announcement, svcErr := suite.service.CreateAnnouncement(suite.ctx, &AnnouncementRequest{
		SchoolID:   "school-1",
		Title:      "Exam reminder",
		Body:       "Term tests begin next week.",
		Channel:    "sms",
		SenderName: "test-sender",
		Recipients: []string{"+94771234567", "+94777654321"},
	})

	suite.Require().Nil(svcErr)
	suite.Equal(AnnouncementStatusSent, announcement.Status)
	suite.Require().Len(suite.fakeClient.sent, 2)
	suite.Equal("Term tests begin next week.", suite.fakeClient.sent[0].Body)

	suite.Require().Len(suite.mockStore.CreatedAttempts, 2)
	for _, attempt := range suite.mockStore.CreatedAttempts {
		suite.Equal(DispatchStatusSent, attempt.Status)
		suite.Equal(announcement.ID, attempt.AnnouncementID)
	}
	suite.Equal([]AnnouncementStatus{AnnouncementStatusSent}, suite.mockStore.StatusUpdates)
}

func (suite *NotificationServiceTestSuite) TestCreateSMSAnnouncementPartialFailure() {
	suite.allowSchoolLookup()
	suite.allowSenderLookup()
	suite.fakeClient.failFor = map[string]bool{"+94777654321": true}

	announcement, svcErr := suite.service.CreateAnnouncement(suite.ctx, &AnnouncementRequest{
		SchoolID:   "school-1",
		Title:      "Exam reminder",
		Body:       "Term tests begin next week.",
		Channel:    "sms",
		SenderName: "test-sender",
		Recipients: []string{"+94771234567", "+94777654321"},
	})

	suite.Require().Nil(svcErr)
	suite.Equal(AnnouncementStatusFailed, announcement.Status)
	suite.Require().Len(suite.fakeClient.sent, 2, "one failure must not stop the remaining dispatches")

	suite.Require().Len(suite.mockStore.CreatedAttempts, 2)
	suite.Equal(DispatchStatusSent, suite.mockStore.CreatedAttempts[0].Status)
	suite.Equal(DispatchStatusFailed, suite.mockStore.CreatedAttempts[1].Status)
	suite.NotEmpty(suite.mockStore.CreatedAttempts[1].Detail)
	suite.Equal([]AnnouncementStatus{AnnouncementStatusFailed}, suite.mockStore.StatusUpdates)
}

func (suite *NotificationServiceTestSuite) TestCreateSMSAnnouncementUnknownSender() {
	suite.allowSchoolLookup()

	announcement, svcErr := suite.service.CreateAnnouncement(suite.ctx, &AnnouncementRequest{
		SchoolID:   "school-1",
		Title:      "t",
		Body:       "b",
		Channel:    "sms",
		SenderName: "missing",
		Recipients: []string{"+94771234567"},
	})

	suite.Nil(announcement)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorSenderNotFound.Code, svcErr.Code)
	suite.Empty(suite.mockStore.CreatedAnnouncements)
}

func (suite *NotificationServiceTestSuite) TestCreateSMSAnnouncementClientBuildFailure() {
	suite.allowSchoolLookup()
	suite.allowSenderLookup()
	suite.service.clientFactory = func(sender *MessageSender) (MessageClientInterface, error) {
		return nil, errors.New("incomplete sender configuration")
	}

	announcement, svcErr := suite.service.CreateAnnouncement(suite.ctx, &AnnouncementRequest{
		SchoolID:   "school-1",
		Title:      "t",
		Body:       "b",
		Channel:    "sms",
		SenderName: "test-sender",
		Recipients: []string{"+94771234567"},
	})

	suite.Require().Nil(svcErr)
	suite.Equal(AnnouncementStatusFailed, announcement.Status)
	suite.Require().Len(suite.mockStore.CreatedAttempts, 1)
	suite.Equal(DispatchStatusFailed, suite.mockStore.CreatedAttempts[0].Status)
}

func (suite *NotificationServiceTestSuite) TestGetAnnouncementNotFound() {
	announcement, svcErr := suite.service.GetAnnouncement(suite.ctx, "missing")

	suite.Nil(announcement)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorAnnouncementNotFound.Code, svcErr.Code)
}

func (suite *NotificationServiceTestSuite) TestListAnnouncementsBySchool() {
	suite.allowSchoolLookup()
	suite.mockStore.GetAnnouncementsBySchoolFunc = func(schoolID string) ([]Announcement, error) {
		return []Announcement{{ID: "ann-1", SchoolID: schoolID}}, nil
	}

	announcements, svcErr := suite.service.ListAnnouncements(suite.ctx, "school-1")

	suite.Require().Nil(svcErr)
	suite.Require().Len(announcements, 1)
	suite.Equal("ann-1", announcements[0].ID)
}

func (suite *NotificationServiceTestSuite) TestListDispatchAttempts() {
	suite.mockStore.GetAnnouncementByIDFunc = func(announcementID string) (*Announcement, error) {
		return &Announcement{ID: announcementID, Channel: ChannelSMS}, nil
	}
	suite.mockStore.GetDispatchAttemptsFunc = func(announcementID string) ([]DispatchAttempt, error) {
		return []DispatchAttempt{
			{ID: "att-1", AnnouncementID: announcementID, Status: DispatchStatusSent},
			{ID: "att-2", AnnouncementID: announcementID, Status: DispatchStatusFailed},
		}, nil
	}

	attempts, svcErr := suite.service.ListDispatchAttempts(suite.ctx, "ann-1")

	suite.Require().Nil(svcErr)
	suite.Require().Len(attempts, 2)
	suite.Equal(DispatchStatusFailed, attempts[1].Status)
}

func (suite *NotificationServiceTestSuite) TestListDispatchAttemptsUnknownAnnouncement() {
	attempts, svcErr := suite.service.ListDispatchAttempts(suite.ctx, "missing")

	suite.Nil(attempts)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorAnnouncementNotFound.Code, svcErr.Code)
}

func (suite *NotificationServiceTestSuite) TestDeleteAnnouncementIdempotent() {
	svcErr := suite.service.DeleteAnnouncement(suite.ctx, "ann-1")

	suite.Nil(svcErr)
	suite.Equal([]string{"ann-1"}, suite.mockStore.DeletedAnnouncements)
}

type SenderServiceTestSuite struct {
	suite.Suite
	mockStore *mockNotificationStore
	service   *senderService
	ctx       context.Context
}

func TestSenderServiceSuite(t *testing.T) {
	suite.Run(t, new(SenderServiceTestSuite))
}

func (suite *SenderServiceTestSuite) SetupTest() {
	suite.mockStore = &mockNotificationStore{}
	suite.service = &senderService{store: suite.mockStore}
	suite.ctx = context.Background()
}

// twilioProps returns a plaintext property set that passes Twilio validation.
func twilioProps() []cmodels.Property {
	return []cmodels.Property{
		{Name: "account_sid", Value: "AC0123456789abcdef0123456789abcdef"},
		{Name: "auth_token", Value: "token-value"},
		{Name: "sender_id", Value: "+15551234567"},
	}
}

func (suite *SenderServiceTestSuite) TestCreateSenderSuccess() {
	sender, svcErr := suite.service.CreateSender(suite.ctx, &SenderRequest{
		Name:       "school-sms",
		Provider:   "twilio",
		Properties: twilioProps(),
	})

	suite.Require().Nil(svcErr)
	suite.Require().NotNil(sender)
	suite.NotEmpty(sender.ID)
	suite.Equal(ProviderTypeTwilio, sender.Provider)
	suite.Require().Len(suite.mockStore.CreatedSenders, 1)
}

func (suite *SenderServiceTestSuite) TestCreateSenderDuplicateName() {
	suite.mockStore.GetSenderByNameFunc = func(name string) (*MessageSender, error) {
		return &MessageSender{ID: "sender-1", Name: name}, nil
	}

	sender, svcErr := suite.service.CreateSender(suite.ctx, &SenderRequest{
		Name:       "school-sms",
		Provider:   "twilio",
		Properties: twilioProps(),
	})

	suite.Nil(sender)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorDuplicateSenderName.Code, svcErr.Code)
	suite.Empty(suite.mockStore.CreatedSenders)
}

func (suite *SenderServiceTestSuite) TestCreateSenderInvalidProvider() {
	sender, svcErr := suite.service.CreateSender(suite.ctx, &SenderRequest{
		Name:     "school-sms",
		Provider: "smtp",
	})

	suite.Nil(sender)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidProvider.Code, svcErr.Code)
}

func (suite *SenderServiceTestSuite) TestCreateSenderInvalidProperties() {
	sender, svcErr := suite.service.CreateSender(suite.ctx, &SenderRequest{
		Name:     "school-sms",
		Provider: "twilio",
		Properties: []cmodels.Property{
			{Name: "account_sid", Value: "not-a-sid"},
			{Name: "auth_token", Value: "token-value"},
			{Name: "sender_id", Value: "+15551234567"},
		},
	})

	suite.Nil(sender)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidSenderProperties.Code, svcErr.Code)
}

func (suite *SenderServiceTestSuite) TestGetSenderRedactsSecrets() {
	suite.mockStore.GetSenderByIDFunc = func(senderID string) (*MessageSender, error) {
		return &MessageSender{
			ID:       senderID,
			Name:     "school-sms",
			Provider: ProviderTypeTwilio,
			Properties: []cmodels.Property{
				{Name: "account_sid", Value: "AC0123456789abcdef0123456789abcdef"},
				{Name: "auth_token", Value: "encrypted-token", IsSecret: true},
			},
		}, nil
	}

	sender, svcErr := suite.service.GetSender(suite.ctx, "sender-1")

	suite.Require().Nil(svcErr)
	suite.Require().Len(sender.Properties, 2)
	suite.Equal("AC0123456789abcdef0123456789abcdef", sender.Properties[0].Value)
	suite.Empty(sender.Properties[1].Value, "secret values must not leave the service")
}

func (suite *SenderServiceTestSuite) TestGetSenderNotFound() {
	sender, svcErr := suite.service.GetSender(suite.ctx, "missing")

	suite.Nil(sender)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorSenderNotFound.Code, svcErr.Code)
}

func (suite *SenderServiceTestSuite) TestUpdateSenderAllowsSameName() {
	suite.mockStore.GetSenderByNameFunc = func(name string) (*MessageSender, error) {
		return &MessageSender{ID: "sender-1", Name: name}, nil
	}

	sender, svcErr := suite.service.UpdateSender(suite.ctx, "sender-1", &SenderRequest{
		Name:       "school-sms",
		Provider:   "twilio",
		Properties: twilioProps(),
	})

	suite.Require().Nil(svcErr)
	suite.Equal("sender-1", sender.ID)
	suite.Require().Len(suite.mockStore.UpdatedSenders, 1)
}

func (suite *SenderServiceTestSuite) TestUpdateSenderNameTakenByOther() {
	suite.mockStore.GetSenderByNameFunc = func(name string) (*MessageSender, error) {
		return &MessageSender{ID: "sender-2", Name: name}, nil
	}

	sender, svcErr := suite.service.UpdateSender(suite.ctx, "sender-1", &SenderRequest{
		Name:       "school-sms",
		Provider:   "twilio",
		Properties: twilioProps(),
	})

	suite.Nil(sender)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorDuplicateSenderName.Code, svcErr.Code)
}

func (suite *SenderServiceTestSuite) TestDeleteSenderIdempotent() {
	svcErr := suite.service.DeleteSender(suite.ctx, "sender-1")

	suite.Nil(svcErr)
	suite.Equal([]string{"sender-1"}, suite.mockStore.DeletedSenders)
}
