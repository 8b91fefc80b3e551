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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	serverconst "github.com/campushq/campus/internal/system/constants"
	httpservice "github.com/campushq/campus/internal/system/http"
	"github.com/campushq/campus/internal/system/log"
)

const customClientLoggerComponentName = "CustomMessageClient"

// customClient implements the MessageClientInterface for sending messages via
// a custom webhook provider.
type customClient struct {
	name        string
	url         string
	httpMethod  string
	httpHeaders map[string]string
	contentType string
}

// newCustomClient creates a new instance of customClient.
func newCustomClient(sender *MessageSender) (MessageClientInterface, error) {
	endpoint, err := sender.resolveProperty(customPropKeyURL)
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		return nil, errors.New("custom provider URL is required")
	}

	httpMethod, err := sender.resolveProperty(customPropKeyHTTPMethod)
	if err != nil {
		return nil, err
	}
	if httpMethod == "" {
		httpMethod = http.MethodPost
	}

	contentType, err := sender.resolveProperty(customPropKeyContentType)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "JSON"
	}

	headersValue, err := sender.resolveProperty(customPropKeyHTTPHeaders)
	if err != nil {
		return nil, err
	}
	headers, err := parseHeaders(headersValue)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTTP headers: %w", err)
	}

	return &customClient{
		name:        sender.Name,
		url:         endpoint,
		httpMethod:  strings.ToUpper(httpMethod),
		httpHeaders: headers,
		contentType: strings.ToUpper(contentType),
	}, nil
}

// GetName returns the name of the custom client.
func (c *customClient) GetName() string {
	return c.name
}

// SendSMS sends an SMS through the custom webhook.
func (c *customClient) SendSMS(sms SMSData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, customClientLoggerComponentName))
	logger.Debug("Sending SMS via custom provider", log.String("to", log.MaskString(sms.To)))

	var req *http.Request
	var err error

	switch c.contentType {
	case "JSON":
		payload, marshalErr := json.Marshal(sms)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal JSON payload: %w", marshalErr)
		}
		req, err = http.NewRequest(c.httpMethod, c.url, strings.NewReader(string(payload)))
		if err != nil {
			return fmt.Errorf("failed to create HTTP request: %w", err)
		}
		req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	case "FORM":
		formData := url.Values{}
		formData.Set("to", sms.To)
		formData.Set("body", sms.Body)
		req, err = http.NewRequest(c.httpMethod, c.url, strings.NewReader(formData.Encode()))
		if err != nil {
			return fmt.Errorf("failed to create HTTP request: %w", err)
		}
		req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeFormURLEncoded)
	default:
		return fmt.Errorf("unsupported content type: %s", c.contentType)
	}

	for key, value := range c.httpHeaders {
		req.Header.Set(key, value)
	}

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

	logger.Debug("Received response from custom provider", log.Int("statusCode", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.Error("Failed to send SMS", log.Int("statusCode", resp.StatusCode),
			log.String("response", string(bodyBytes)))
		return fmt.Errorf("failed to send SMS, status code: %d", resp.StatusCode)
	}
	return nil
}

// parseHeaders parses a comma separated "Key: Value" list into a header map.
func parseHeaders(headersString string) (map[string]string, error) {
	headers := make(map[string]string)
	if strings.TrimSpace(headersString) == "" {
		return headers, nil
	}

	for _, header := range strings.Split(headersString, ",") {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid HTTP header format: %s", header)
		}
		headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return headers, nil
}
