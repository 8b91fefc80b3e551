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

package seeder

// seedData holds the demo data seeded into an empty database.
type seedData struct {
	Schools []SchoolSeedData `json:"schools"`
	Classes []ClassSeedData  `json:"classes"`
}

// SchoolSeedData represents school data to be seeded.
type SchoolSeedData struct {
	SchoolID string `json:"school_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// ClassSeedData represents class data to be seeded.
type ClassSeedData struct {
	ClassID    string `json:"class_id"`
	SchoolID   string `json:"school_id"`
	Name       string `json:"name"`
	GradeLevel int    `json:"grade_level"`
	Capacity   int    `json:"capacity"`
}
