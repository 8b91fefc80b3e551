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

package enrollment

import "github.com/campushq/campus/internal/system/database/model"

var (
	// queryCreateEnrollment is the query to create a new enrollment.
	queryCreateEnrollment = model.DBQuery{
		ID: "ENQ-ENROLL_MGT-01",
		Query: "INSERT INTO ENROLLMENT (ENROLLMENT_ID, STUDENT_ID, CLASS_ID, SCHOOL_ID, STATUS, ENROLLED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6)",
	}
	// queryGetEnrollmentByID is the query to get an enrollment by ID.
	queryGetEnrollmentByID = model.DBQuery{
		ID: "ENQ-ENROLL_MGT-02",
		Query: "SELECT ENROLLMENT_ID, STUDENT_ID, CLASS_ID, SCHOOL_ID, STATUS, ENROLLED_AT FROM ENROLLMENT " +
			"WHERE ENROLLMENT_ID = $1",
	}
	// queryGetActiveEnrollment is the query to get the active enrollment of a student in a class.
	queryGetActiveEnrollment = model.DBQuery{
		ID: "ENQ-ENROLL_MGT-03",
		Query: "SELECT ENROLLMENT_ID, STUDENT_ID, CLASS_ID, SCHOOL_ID, STATUS, ENROLLED_AT FROM ENROLLMENT " +
			"WHERE STUDENT_ID = $1 AND CLASS_ID = $2 AND STATUS = 'active'",
	}
	// queryGetEnrollmentsByClass is the query to list the enrollments of a class.
	queryGetEnrollmentsByClass = model.DBQuery{
		ID: "ENQ-ENROLL_MGT-04",
		Query: "SELECT ENROLLMENT_ID, STUDENT_ID, CLASS_ID, SCHOOL_ID, STATUS, ENROLLED_AT FROM ENROLLMENT " +
			"WHERE CLASS_ID = $1 ORDER BY ENROLLED_AT",
	}
	// queryGetEnrollmentsByStudent is the query to list the enrollments of a student.
	queryGetEnrollmentsByStudent = model.DBQuery{
		ID: "ENQ-ENROLL_MGT-05",
		Query: "SELECT ENROLLMENT_ID, STUDENT_ID, CLASS_ID, SCHOOL_ID, STATUS, ENROLLED_AT FROM ENROLLMENT " +
			"WHERE STUDENT_ID = $1 ORDER BY ENROLLED_AT",
	}
	// queryUpdateEnrollmentStatus is the query to update the status of an enrollment.
	queryUpdateEnrollmentStatus = model.DBQuery{
		ID:    "ENQ-ENROLL_MGT-06",
		Query: "UPDATE ENROLLMENT SET STATUS = $2 WHERE ENROLLMENT_ID = $1",
	}
	// queryDeleteEnrollment is the query to delete an enrollment.
	queryDeleteEnrollment = model.DBQuery{
		ID:    "ENQ-ENROLL_MGT-07",
		Query: "DELETE FROM ENROLLMENT WHERE ENROLLMENT_ID = $1",
	}
	// queryCountActiveEnrollmentsByClass is the query to count the active enrollments of a class.
	queryCountActiveEnrollmentsByClass = model.DBQuery{
		ID:    "ENQ-ENROLL_MGT-08",
		Query: "SELECT COUNT(*) AS total FROM ENROLLMENT WHERE CLASS_ID = $1 AND STATUS = 'active'",
	}
)
