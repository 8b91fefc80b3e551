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

// getSeedData returns the demo school data seeded when the database is empty.
func getSeedData() seedData {
	return seedData{
		Schools: []SchoolSeedData{
			{
				SchoolID: "456e8400-e29b-41d4-a716-446655440001",
				Name:     "Demo Central College",
				Address:  "24 Lake Road, Colombo 07",
				Email:    "office@demo-central.example",
				Phone:    "+94112345678",
				Status:   "active",
			},
		},
		Classes: []ClassSeedData{
			{
				ClassID:    "456e8400-e29b-41d4-a716-446655440002",
				SchoolID:   "456e8400-e29b-41d4-a716-446655440001",
				Name:       "Grade 6 - A",
				GradeLevel: 6,
				Capacity:   35,
			},
			{
				ClassID:    "456e8400-e29b-41d4-a716-446655440003",
				SchoolID:   "456e8400-e29b-41d4-a716-446655440001",
				Name:       "Grade 6 - B",
				GradeLevel: 6,
				Capacity:   35,
			},
			{
				ClassID:    "456e8400-e29b-41d4-a716-446655440004",
				SchoolID:   "456e8400-e29b-41d4-a716-446655440001",
				Name:       "Grade 7 - A",
				GradeLevel: 7,
				Capacity:   40,
			},
		},
	}
}
