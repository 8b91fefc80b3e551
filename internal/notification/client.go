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

import "fmt"

// MessageClientInterface defines the interface for provider-specific message clients.
type MessageClientInterface interface {
	// GetName returns the name of the sender the client was built from.
	GetName() string
	// SendSMS delivers a single SMS message through the provider.
	SendSMS(sms SMSData) error
}

// messageClientFactory builds a message client for a sender. The factory is a
// service dependency so tests can substitute a fake provider.
type messageClientFactory func(sender *MessageSender) (MessageClientInterface, error)

// newMessageClient builds the provider-specific client for the given sender.
func newMessageClient(sender *MessageSender) (MessageClientInterface, error) {
	switch sender.Provider {
	case ProviderTypeTwilio:
		return newTwilioClient(sender)
	case ProviderTypeVonage:
		return newVonageClient(sender)
	case ProviderTypeCustom:
		return newCustomClient(sender)
	default:
		return nil, fmt.Errorf("unsupported message provider: %s", sender.Provider)
	}
}
