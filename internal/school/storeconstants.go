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

package school

import "github.com/campushq/campus/internal/system/database/model"

var (
	// queryCreateSchool is the query to create a new school.
	queryCreateSchool = model.DBQuery{
		ID: "SCQ-SCHOOL_MGT-01",
		Query: "INSERT INTO SCHOOL (SCHOOL_ID, NAME, ADDRESS, EMAIL, PHONE, STATUS, CREATED_AT, UPDATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}
	// queryGetSchoolByID is the query to get a school by school ID.
	queryGetSchoolByID = model.DBQuery{
		ID: "SCQ-SCHOOL_MGT-02",
		Query: "SELECT SCHOOL_ID, NAME, ADDRESS, EMAIL, PHONE, STATUS, CREATED_AT, UPDATED_AT FROM SCHOOL " +
			"WHERE SCHOOL_ID = $1",
	}
	// queryGetSchoolByName is the query to get a school by name.
	queryGetSchoolByName = model.DBQuery{
		ID: "SCQ-SCHOOL_MGT-03",
		Query: "SELECT SCHOOL_ID, NAME, ADDRESS, EMAIL, PHONE, STATUS, CREATED_AT, UPDATED_AT FROM SCHOOL " +
			"WHERE NAME = $1",
	}
	// queryGetSchoolList is the query to get a list of schools.
	queryGetSchoolList = model.DBQuery{
		ID: "SCQ-SCHOOL_MGT-04",
		Query: "SELECT SCHOOL_ID, NAME, ADDRESS, EMAIL, PHONE, STATUS, CREATED_AT, UPDATED_AT FROM SCHOOL " +
			"ORDER BY NAME",
	}
	// queryUpdateSchoolByID is the query to update a school by school ID.
	queryUpdateSchoolByID = model.DBQuery{
		ID: "SCQ-SCHOOL_MGT-05",
		Query: "UPDATE SCHOOL SET NAME = $2, ADDRESS = $3, EMAIL = $4, PHONE = $5, STATUS = $6, UPDATED_AT = $7 " +
			"WHERE SCHOOL_ID = $1",
	}
	// queryDeleteSchoolByID is the query to delete a school by school ID.
	queryDeleteSchoolByID = model.DBQuery{
		ID:    "SCQ-SCHOOL_MGT-06",
		Query: "DELETE FROM SCHOOL WHERE SCHOOL_ID = $1",
	}
	// queryDeleteClassesBySchoolID is the query to delete all classes of a school.
	queryDeleteClassesBySchoolID = model.DBQuery{
		ID:    "SCQ-SCHOOL_MGT-07",
		Query: "DELETE FROM CLASS WHERE SCHOOL_ID = $1",
	}
)

var (
	// queryCreateClass is the query to create a new class.
	queryCreateClass = model.DBQuery{
		ID: "SCQ-CLASS_MGT-01",
		Query: "INSERT INTO CLASS (CLASS_ID, SCHOOL_ID, NAME, GRADE_LEVEL, HOMEROOM_TEACHER_ID, CAPACITY, " +
			"CREATED_AT, UPDATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}
	// queryGetClassByID is the query to get a class of a school by class ID.
	queryGetClassByID = model.DBQuery{
		ID: "SCQ-CLASS_MGT-02",
		Query: "SELECT CLASS_ID, SCHOOL_ID, NAME, GRADE_LEVEL, HOMEROOM_TEACHER_ID, CAPACITY, CREATED_AT, " +
			"UPDATED_AT FROM CLASS WHERE CLASS_ID = $1 AND SCHOOL_ID = $2",
	}
	// queryGetClassBySchoolAndName is the query to get a class of a school by name.
	queryGetClassBySchoolAndName = model.DBQuery{
		ID: "SCQ-CLASS_MGT-03",
		Query: "SELECT CLASS_ID, SCHOOL_ID, NAME, GRADE_LEVEL, HOMEROOM_TEACHER_ID, CAPACITY, CREATED_AT, " +
			"UPDATED_AT FROM CLASS WHERE SCHOOL_ID = $1 AND NAME = $2",
	}
	// queryGetClassListBySchoolID is the query to get the classes of a school.
	queryGetClassListBySchoolID = model.DBQuery{
		ID: "SCQ-CLASS_MGT-04",
		Query: "SELECT CLASS_ID, SCHOOL_ID, NAME, GRADE_LEVEL, HOMEROOM_TEACHER_ID, CAPACITY, CREATED_AT, " +
			"UPDATED_AT FROM CLASS WHERE SCHOOL_ID = $1 ORDER BY GRADE_LEVEL, NAME",
	}
	// queryUpdateClassByID is the query to update a class of a school by class ID.
	queryUpdateClassByID = model.DBQuery{
		ID: "SCQ-CLASS_MGT-05",
		Query: "UPDATE CLASS SET NAME = $3, GRADE_LEVEL = $4, HOMEROOM_TEACHER_ID = $5, CAPACITY = $6, " +
			"UPDATED_AT = $7 WHERE CLASS_ID = $1 AND SCHOOL_ID = $2",
	}
	// queryDeleteClassByID is the query to delete a class of a school by class ID.
	queryDeleteClassByID = model.DBQuery{
		ID:    "SCQ-CLASS_MGT-06",
		Query: "DELETE FROM CLASS WHERE CLASS_ID = $1 AND SCHOOL_ID = $2",
	}
)
