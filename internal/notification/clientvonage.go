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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	serverconst "github.com/campushq/campus/internal/system/constants"
	httpservice "github.com/campushq/campus/internal/system/http"
	"github.com/campushq/campus/internal/system/log"
)

const (
	vonageMessagesURL         = "https://api.nexmo.com/v1/messages"
	vonageLoggerComponentName = "VonageClient"
)

// vonageClient implements the MessageClientInterface for sending messages via the Vonage API.
type vonageClient struct {
	name      string
	apiKey    string
	apiSecret string
	senderID  string
}

// newVonageClient creates a new instance of vonageClient.
func newVonageClient(sender *MessageSender) (MessageClientInterface, error) {
	apiKey, err := sender.resolveProperty(vonagePropKeyAPIKey)
	if err != nil {
		return nil, err
	}
	apiSecret, err := sender.resolveProperty(vonagePropKeyAPISecret)
	if err != nil {
		return nil, err
	}
	senderID, err := sender.resolveProperty(vonagePropKeySenderID)
	if err != nil {
		return nil, err
	}

	if apiKey == "" || apiSecret == "" || senderID == "" {
		return nil, errors.New("Vonage api_key, api_secret, and sender_id are required")
	}

	return &vonageClient{
		name:      sender.Name,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		senderID:  senderID,
	}, nil
}

// GetName returns the name of the Vonage client.
func (v *vonageClient) GetName() string {
	return v.name
}

// SendSMS sends an SMS using the Vonage API.
func (v *vonageClient) SendSMS(sms SMSData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, vonageLoggerComponentName))
	logger.Debug("Sending SMS via Vonage", log.String("to", log.MaskString(sms.To)))

	payload := map[string]interface{}{
		"message_type": "text",
		"channel":      "sms",
		"from":         v.senderID,
		"to":           formatE164(sms.To),
		"text":         sms.Body,
		"sms": map[string]interface{}{
			"encoding_type": "text",
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, vonageMessagesURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	req.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)
	req.SetBasicAuth(v.apiKey, v.apiSecret)

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

	logger.Debug("Received response from Vonage", log.Int("statusCode", resp.StatusCode))

	if resp.StatusCode != http.StatusAccepted {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.Error("Failed to send SMS", log.Int("statusCode", resp.StatusCode),
			log.String("response", string(bodyBytes)))
		return fmt.Errorf("failed to send SMS, status code: %d", resp.StatusCode)
	}
	return nil
}

// formatE164 strips the leading '+' or '00' prefix from a phone number as
// required by the Vonage API.
func formatE164(phoneNumber string) string {
	if len(phoneNumber) > 0 && phoneNumber[0] == '+' {
		return phoneNumber[1:]
	}
	if len(phoneNumber) > 1 && phoneNumber[0:2] == "00" {
		return phoneNumber[2:]
	}
	return phoneNumber
}
