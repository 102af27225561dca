// analytics_test.go
//
// Admissions desk: application intake, employee task workflow and lead follow-up service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of admissions-desk.
// admissions-desk is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// admissions-desk is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with admissions-desk.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/localnerve/admissions-desk/internal/models"
	"github.com/localnerve/admissions-desk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsGet(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	analytics := &Analytics{DB: db, Clock: testutil.FixedClock(&now)}

	canada := testutil.CreateCountry(t, db, "Canada", "CA")
	ireland := testutil.CreateCountry(t, db, "Ireland", "IE")
	program := testutil.CreateProgram(t, db, "MBA", canada.ID)

	ada := testutil.CreateUser(t, db, "Ada", "ada@example.com", models.RoleEmployee)
	bo := testutil.CreateUser(t, db, "Bo", "bo@example.com", models.RoleUser)
	testutil.AssignAdminRole(t, db, bo.ID, "Employee")
	plain := testutil.CreateUser(t, db, "Plain", "plain@example.com", models.RoleUser)

	appCA1 := testutil.CreateApplication(t, db, program.ID, &canada.ID, "ca1@example.com", now)
	appCA2 := testutil.CreateApplication(t, db, program.ID, &canada.ID, "ca2@example.com", now)
	appIE := testutil.CreateApplication(t, db, program.ID, &ireland.ID, "ie@example.com", now)

	// Ada: on time, aging, critical. Bo: aging. Completed and non-employee tasks are ignored.
	testutil.CreateTask(t, db, appCA1.ID, ada.ID, models.TaskStatusUnderProcess, now.Add(-time.Hour))
	testutil.CreateTask(t, db, appCA2.ID, ada.ID, models.TaskStatusUnderProcess, now.Add(-48*time.Hour))
	testutil.CreateTask(t, db, appIE.ID, ada.ID, models.TaskStatusUnderProcess, now.Add(-7*24*time.Hour))
	testutil.CreateTask(t, db, appIE.ID, bo.ID, models.TaskStatusUnderProcess, now.Add(-25*time.Hour))
	testutil.CreateTask(t, db, appCA2.ID, bo.ID, models.TaskStatusCompleted, now.Add(-30*24*time.Hour))
	testutil.CreateTask(t, db, appCA1.ID, plain.ID, models.TaskStatusUnderProcess, now.Add(-time.Hour))

	result, err := analytics.Get(context.Background())
	require.NoError(t, err)

	require.Len(t, result.EmployeeTasks, 2)
	assert.Equal(t, EmployeeWorkload{
		EmployeeUserID: ada.ID,
		EmployeeName:   "Ada",
		TaskCount:      3,
		AgingCounts:    AgingCounts{OnTime: 1, Aging: 1, Critical: 1},
	}, result.EmployeeTasks[0])
	assert.Equal(t, EmployeeWorkload{
		EmployeeUserID: bo.ID,
		EmployeeName:   "Bo",
		TaskCount:      1,
		AgingCounts:    AgingCounts{Aging: 1},
	}, result.EmployeeTasks[1])

	require.Len(t, result.CountryTasks, 2)
	assert.Equal(t, "Canada", result.CountryTasks[0].CountryName)
	assert.Equal(t, 2, result.CountryTasks[0].TaskCount)
	assert.Equal(t, "Ireland", result.CountryTasks[1].CountryName)
	assert.Equal(t, 2, result.CountryTasks[1].TaskCount)

	assert.Equal(t, AgingSummary{AgingCounts: AgingCounts{OnTime: 1, Aging: 2, Critical: 1}, Total: 4}, result.TaskAging)

	var countrySum, employeeSum int
	for _, c := range result.CountryTasks {
		countrySum += c.TaskCount
	}
	for _, e := range result.EmployeeTasks {
		employeeSum += e.TaskCount
	}
	assert.Equal(t, result.TaskAging.Total, countrySum)
	assert.Equal(t, result.TaskAging.Total, employeeSum)
}

func TestAnalyticsEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	result, err := (&Analytics{DB: db}).Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.EmployeeTasks)
	assert.NotNil(t, result.CountryTasks)
	assert.Zero(t, result.TaskAging.Total)
}

func TestAggregateOrderingUnknownAndCaps(t *testing.T) {
	now := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	fresh := now.Add(-time.Minute)

	var rows []openTaskRow
	id := uint64(1)
	for e := 1; e <= MaxAnalyticsEmployees+5; e++ {
		name := fmt.Sprintf("emp-%03d", e)
		country := uint64(e)
		countryName := fmt.Sprintf("country-%03d", e)
		rows = append(rows, openTaskRow{
			TaskID:         id,
			EmployeeUserID: uint64(e),
			EmployeeName:   &name,
			TaskUpdatedAt:  fresh,
			CountryID:      &country,
			CountryName:    &countryName,
		})
		id++
	}

	// emp-055 gets two extra tasks in an unknown country and leads the list
	busy := rows[len(rows)-1]
	for range 2 {
		extra := busy
		extra.TaskID = id
		extra.CountryID = nil
		extra.CountryName = nil
		rows = append(rows, extra)
		id++
	}

	// Tie on count is broken by name
	email := "zed@example.com"
	rows = append(rows, openTaskRow{TaskID: id, EmployeeUserID: 900, EmployeeEmail: &email, TaskUpdatedAt: fresh})

	result := aggregate(rows, now)

	require.Len(t, result.EmployeeTasks, MaxAnalyticsEmployees)
	assert.Equal(t, "emp-055", result.EmployeeTasks[0].EmployeeName)
	assert.Equal(t, 3, result.EmployeeTasks[0].TaskCount)
	assert.Equal(t, "emp-001", result.EmployeeTasks[1].EmployeeName)

	require.Len(t, result.CountryTasks, MaxAnalyticsCountries)
	assert.Equal(t, UnknownCountry, result.CountryTasks[0].CountryName)
	assert.Nil(t, result.CountryTasks[0].CountryID)
	assert.Equal(t, 3, result.CountryTasks[0].TaskCount)
	assert.Equal(t, "country-001", result.CountryTasks[1].CountryName)

	assert.Equal(t, len(rows), result.TaskAging.Total)
	assert.Equal(t, len(rows), result.TaskAging.OnTime)
}
