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

// Channel represents the delivery channel of an announcement.
type Channel string

const (
	// ChannelInApp represents an announcement surfaced on the dashboards only.
	ChannelInApp Channel = "in_app"
	// ChannelSMS represents an announcement dispatched to recipients over SMS.
	ChannelSMS Channel = "sms"
)

// supportedChannels lists all the supported announcement channels.
var supportedChannels = []Channel{
	ChannelInApp,
	ChannelSMS,
}

// AnnouncementStatus represents the delivery status of an announcement.
type AnnouncementStatus string

const (
	// AnnouncementStatusPending represents an announcement that has not been dispatched yet.
	AnnouncementStatusPending AnnouncementStatus = "pending"
	// AnnouncementStatusSent represents an announcement delivered to every recipient.
	AnnouncementStatusSent AnnouncementStatus = "sent"
	// AnnouncementStatusFailed represents an announcement with at least one failed delivery.
	AnnouncementStatusFailed AnnouncementStatus = "failed"
)

// ProviderType represents the message provider backing a sender.
type ProviderType string

const (
	// ProviderTypeCustom represents a custom webhook message provider.
	ProviderTypeCustom ProviderType = "custom"
	// ProviderTypeTwilio represents the Twilio messaging provider.
	ProviderTypeTwilio ProviderType = "twilio"
	// ProviderTypeVonage represents the Vonage messaging provider.
	ProviderTypeVonage ProviderType = "vonage"
)

// supportedProviders lists all the supported message providers.
var supportedProviders = []ProviderType{
	ProviderTypeCustom,
	ProviderTypeTwilio,
	ProviderTypeVonage,
}

// Property keys for the Twilio provider.
const (
	twilioPropKeyAccountSID = "account_sid"
	twilioPropKeyAuthToken  = "auth_token"
	twilioPropKeySenderID   = "sender_id"
)

// Property keys for the Vonage provider.
const (
	vonagePropKeyAPIKey    = "api_key"
	vonagePropKeyAPISecret = "api_secret"
	vonagePropKeySenderID  = "sender_id"
)

// Property keys for the custom webhook provider.
const (
	customPropKeyURL         = "url"
	customPropKeyHTTPMethod  = "http_method"
	customPropKeyHTTPHeaders = "http_headers"
	customPropKeyContentType = "content_type"
)

// DispatchStatus represents the outcome of a single recipient dispatch attempt.
type DispatchStatus string

const (
	// DispatchStatusSent represents a successfully dispatched message.
	DispatchStatusSent DispatchStatus = "sent"
	// DispatchStatusFailed represents a dispatch attempt rejected by the provider.
	DispatchStatusFailed DispatchStatus = "failed"
)
