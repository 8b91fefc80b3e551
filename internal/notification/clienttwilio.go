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
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	serverconst "github.com/campushq/campus/internal/system/constants"
	httpservice "github.com/campushq/campus/internal/system/http"
	"github.com/campushq/campus/internal/system/log"
)

const (
	twilioMessagesURL         = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"
	twilioLoggerComponentName = "TwilioClient"
	twilioAccountSIDRegex     = `^AC[0-9a-fA-F]{32}$`
)

// twilioClient implements the MessageClientInterface for sending messages via the Twilio API.
type twilioClient struct {
	name       string
	accountSID string
	authToken  string
	senderID   string
}

// newTwilioClient creates a new instance of twilioClient.
func newTwilioClient(sender *MessageSender) (MessageClientInterface, error) {
	accountSID, err := sender.resolveProperty(twilioPropKeyAccountSID)
	if err != nil {
		return nil, err
	}
	authToken, err := sender.resolveProperty(twilioPropKeyAuthToken)
	if err != nil {
		return nil, err
	}
	senderID, err := sender.resolveProperty(twilioPropKeySenderID)
	if err != nil {
		return nil, err
	}

	client := &twilioClient{
		name:       sender.Name,
		accountSID: accountSID,
		authToken:  authToken,
		senderID:   senderID,
	}
	if err := client.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate Twilio client: %w", err)
	}
	return client, nil
}

// GetName returns the name of the Twilio client.
func (c *twilioClient) GetName() string {
	return c.name
}

// validate checks if the Twilio client is properly configured.
func (c *twilioClient) validate() error {
	if c.accountSID == "" {
		return errors.New("Twilio account SID is required")
	}
	matched, err := regexp.MatchString(twilioAccountSIDRegex, c.accountSID)
	if err != nil {
		return fmt.Errorf("failed to validate Twilio account SID: %w", err)
	}
	if !matched {
		return errors.New("invalid Twilio account SID format")
	}

	if c.authToken == "" {
		return errors.New("Twilio auth token is required")
	}
	if c.senderID == "" {
		return errors.New("Twilio sender ID is required")
	}
	return nil
}

// SendSMS sends an SMS using the Twilio API.
func (c *twilioClient) SendSMS(sms SMSData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, twilioLoggerComponentName))
	logger.Debug("Sending SMS via Twilio", log.String("to", log.MaskString(sms.To)))

	requestURL := fmt.Sprintf(twilioMessagesURL, c.accountSID)
	formData := url.Values{}
	formData.Set("To", sms.To)
	formData.Set("From", c.senderID)
	formData.Set("Body", sms.Body)

	req, err := http.NewRequest(http.MethodPost, requestURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeFormURLEncoded)
	req.SetBasicAuth(c.accountSID, c.authToken)

	client := httpservice.NewHTTPClient()
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	logger.Debug("Received response from Twilio", log.Int("statusCode", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.Error("Failed to send SMS", log.Int("statusCode", resp.StatusCode),
			log.String("response", string(bodyBytes)))
		return fmt.Errorf("failed to send SMS, status code: %d", resp.StatusCode)
	}
	return nil
}
