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

import "github.com/campushq/campus/internal/system/cmodels"

// Announcement represents a school-scoped announcement.
type Announcement struct {
	ID           string             `json:"id"`
	SchoolID     string             `json:"school_id"`
	Title        string             `json:"title"`
	Body         string             `json:"body"`
	AudienceRole string             `json:"audience_role,omitempty"`
	Channel      Channel            `json:"channel"`
	Status       AnnouncementStatus `json:"status"`
	CreatedBy    string             `json:"created_by"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

// AnnouncementRequest represents the request structure for creating an announcement.
type AnnouncementRequest struct {
	SchoolID     string   `json:"school_id"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	AudienceRole string   `json:"audience_role,omitempty"`
	Channel      string   `json:"channel"`
	CreatedBy    string   `json:"created_by"`
	SenderName   string   `json:"sender_name,omitempty"`
	Recipients   []string `json:"recipients,omitempty"`
}

// DispatchAttempt records one per-recipient delivery attempt of an SMS
// announcement. Attempts live in the runtime datasource.
type DispatchAttempt struct {
	ID             string         `json:"id"`
	AnnouncementID string         `json:"announcement_id"`
	Recipient      string         `json:"recipient"`
	Status         DispatchStatus `json:"status"`
	Detail         string         `json:"detail,omitempty"`
	AttemptedAt    string         `json:"attempted_at"`
}

// MessageSender represents a configured message provider used to dispatch
// SMS announcements. Secret property values are encrypted at rest.
type MessageSender struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Provider    ProviderType       `json:"provider"`
	Properties  []cmodels.Property `json:"properties"`
}

// SenderRequest represents the request structure for creating or updating a
// message sender.
type SenderRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Provider    string             `json:"provider"`
	Properties  []cmodels.Property `json:"properties"`
}

// SMSData represents a single SMS message handed to a message client.
type SMSData struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// resolveProperty returns the decrypted value of the named sender property,
// or an empty string when the property is absent.
func (ms *MessageSender) resolveProperty(name string) (string, error) {
	for i := range ms.Properties {
		if ms.Properties[i].Name == name {
			return ms.Properties[i].GetValue()
		}
	}
	return "", nil
}
