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

import "github.com/campushq/campus/internal/system/database/model"

var (
	// queryCreateAnnouncement is the query to create an announcement.
	queryCreateAnnouncement = model.DBQuery{
		ID: "NSQ-NOTIF_MGT-01",
		Query: "INSERT INTO ANNOUNCEMENT (ANNOUNCEMENT_ID, SCHOOL_ID, TITLE, BODY, AUDIENCE_ROLE, CHANNEL, " +
			"STATUS, CREATED_BY, CREATED_AT, UPDATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
	}
	// queryGetAnnouncementByID is the query to retrieve an announcement by id.
	queryGetAnnouncementByID = model.DBQuery{
		ID: "NSQ-NOTIF_MGT-02",
		Query: "SELECT ANNOUNCEMENT_ID, SCHOOL_ID, TITLE, BODY, AUDIENCE_ROLE, CHANNEL, STATUS, CREATED_BY, " +
			"CREATED_AT, UPDATED_AT FROM ANNOUNCEMENT WHERE ANNOUNCEMENT_ID = $1",
	}
	// queryGetAnnouncementsBySchool is the query to list the announcements of a school, newest first.
	queryGetAnnouncementsBySchool = model.DBQuery{
		ID: "NSQ-NOTIF_MGT-03",
		Query: "SELECT ANNOUNCEMENT_ID, SCHOOL_ID, TITLE, BODY, AUDIENCE_ROLE, CHANNEL, STATUS, CREATED_BY, " +
			"CREATED_AT, UPDATED_AT FROM ANNOUNCEMENT WHERE SCHOOL_ID = $1 ORDER BY CREATED_AT DESC",
	}
	// queryUpdateAnnouncementStatus is the query to update the delivery status of an announcement.
	queryUpdateAnnouncementStatus = model.DBQuery{
		ID:    "NSQ-NOTIF_MGT-04",
		Query: "UPDATE ANNOUNCEMENT SET STATUS = $2, UPDATED_AT = $3 WHERE ANNOUNCEMENT_ID = $1",
	}
	// queryDeleteAnnouncement is the query to delete an announcement.
	queryDeleteAnnouncement = model.DBQuery{
		ID:    "NSQ-NOTIF_MGT-05",
		Query: "DELETE FROM ANNOUNCEMENT WHERE ANNOUNCEMENT_ID = $1",
	}

	// queryCreateSender is the query to create a message sender.
	queryCreateSender = model.DBQuery{
		ID: "NSQ-NOTIF_MGT-06",
		Query: "INSERT INTO MESSAGE_SENDER (SENDER_ID, NAME, DESCRIPTION, PROVIDER) " +
			"VALUES ($1, $2, $3, $4)",
	}
	// queryCreateSenderProperty is the query to create a message sender property.
	queryCreateSenderProperty = model.DBQuery{
		ID: "NSQ-NOTIF_MGT-07",
		Query: "INSERT INTO MESSAGE_SENDER_PROPERTY (SENDER_ID, PROPERTY_NAME, PROPERTY_VALUE, IS_SECRET) " +
			"VALUES ($1, $2, $3, $4)",
	}
	// queryGetSenderByID is the query to retrieve a message sender by id.
	queryGetSenderByID = model.DBQuery{
		ID:    "NSQ-NOTIF_MGT-08",
		Query: "SELECT SENDER_ID, NAME, DESCRIPTION, PROVIDER FROM MESSAGE_SENDER WHERE SENDER_ID = $1",
	}
	// queryGetSenderByName is the query to retrieve a message sender by name.
	queryGetSenderByName = model.DBQuery{
		ID:    "NSQ-NOTIF_MGT-09",
		Query: "SELECT SENDER_ID, NAME, DESCRIPTION, PROVIDER FROM MESSAGE_SENDER WHERE NAME = $1",
	}
	// queryGetAllSenders is the query to list all message senders.
	queryGetAllSenders = model.DBQuery{
		ID:    "NSQ-NOTIF_MGT-10",
		Query: "SELECT SENDER_ID, NAME, DESCRIPTION, PROVIDER FROM MESSAGE_SENDER ORDER BY NAME",
	}
	// queryGetSenderProperties is the query to retrieve the properties of a message sender.
	queryGetSenderProperties = model.DBQuery{
		ID: "NSQ-NOTIF_MGT-11",
		Query: "SELECT PROPERTY_NAME, PROPERTY_VALUE, IS_SECRET FROM MESSAGE_SENDER_PROPERTY " +
			"WHERE SENDER_ID = $1",
	}
	// queryUpdateSender is the query to update a message sender.
	queryUpdateSender = model.DBQuery{
		ID:    "NSQ-NOTIF_MGT-12",
		Query: "UPDATE MESSAGE_SENDER SET NAME = $2, DESCRIPTION = $3, PROVIDER = $4 WHERE SENDER_ID = $1",
	}
	// queryDeleteSenderProperties is the query to delete the properties of a message sender.
	queryDeleteSenderProperties = model.DBQuery{
		ID:    "NSQ-NOTIF_MGT-13",
		Query: "DELETE FROM MESSAGE_SENDER_PROPERTY WHERE SENDER_ID = $1",
	}
	// queryDeleteSender is the query to delete a message sender.
	queryDeleteSender = model.DBQuery{
		ID:    "NSQ-NOTIF_MGT-14",
		Query: "DELETE FROM MESSAGE_SENDER WHERE SENDER_ID = $1",
	}

	// queryCreateDispatchAttempt is the query to record a dispatch attempt in the runtime datasource.
	queryCreateDispatchAttempt = model.DBQuery{
		ID: "NSQ-NOTIF_RT-01",
		Query: "INSERT INTO DISPATCH_ATTEMPT (ATTEMPT_ID, ANNOUNCEMENT_ID, RECIPIENT, STATUS, DETAIL, " +
			"ATTEMPTED_AT) VALUES ($1, $2, $3, $4, $5, $6)",
	}
	// queryGetDispatchAttempts is the query to list the dispatch attempts of an announcement.
	queryGetDispatchAttempts = model.DBQuery{
		ID: "NSQ-NOTIF_RT-02",
		Query: "SELECT ATTEMPT_ID, ANNOUNCEMENT_ID, RECIPIENT, STATUS, DETAIL, ATTEMPTED_AT " +
			"FROM DISPATCH_ATTEMPT WHERE ANNOUNCEMENT_ID = $1 ORDER BY ATTEMPTED_AT",
	}
)
