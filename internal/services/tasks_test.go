// tasks_test.go
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

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/localnerve/admissions-desk/internal/models"
	"github.com/localnerve/admissions-desk/internal/services"
	"github.com/localnerve/admissions-desk/internal/testutil"
	"github.com/localnerve/admissions-desk/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findTask(t *testing.T, rows []services.EmployeeTask, applicationID uint64) services.EmployeeTask {
	t.Helper()
	for _, row := range rows {
		if row.ApplicationID == applicationID {
			return row
		}
	}
	t.Fatalf("application %d not listed", applicationID)
	return services.EmployeeTask{}
}

func TestListForEmployeeScopedToGrants(t *testing.T) {
	f := newIntakeFixture(t)
	ctx := context.Background()
	ledger := &services.Tasks{DB: f.db, Clock: testutil.FixedClock(&f.now)}

	other := testutil.CreateCountry(t, f.db, "Ireland", "IE")
	visible := testutil.CreateApplication(t, f.db, f.program.ID, &f.country.ID, "one@example.com", f.now.Add(-2*time.Hour))
	newer := testutil.CreateApplication(t, f.db, f.program.ID, &f.country.ID, "two@example.com", f.now.Add(-time.Hour))
	testutil.CreateApplication(t, f.db, f.program.ID, &other.ID, "three@example.com", f.now)
	testutil.CreateApplication(t, f.db, f.program.ID, nil, "four@example.com", f.now)

	rows, err := ledger.ListForEmployee(ctx, f.employeeA.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, newer.ID, rows[0].ApplicationID)
	assert.Equal(t, visible.ID, rows[1].ApplicationID)

	for _, row := range rows {
		assert.Nil(t, row.TaskID)
		assert.Equal(t, f.employeeA.ID, row.EmployeeUserID)
		assert.Equal(t, models.TaskStatusUnderProcess, row.TaskStatus)
		require.NotNil(t, row.TaskAgingStatus)
		assert.Equal(t, services.AgingOnTime, *row.TaskAgingStatus)
		require.NotNil(t, row.CountryName)
		assert.Equal(t, "Canada", *row.CountryName)
	}

	none, err := ledger.ListForEmployee(ctx, testutil.CreateUser(t, f.db, "Nobody", "nobody@example.com", models.RoleEmployee).ID)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = ledger.ListForEmployee(ctx, 0)
	assert.True(t, types.IsValidation(err))
}

func TestListForEmployeeAgingBuckets(t *testing.T) {
	f := newIntakeFixture(t)
	ledger := &services.Tasks{DB: f.db, Clock: testutil.FixedClock(&f.now)}

	tests := []struct {
		email  string
		status string
		age    time.Duration
		want   *services.AgingBucket
	}{
		{"a@example.com", models.TaskStatusUnderProcess, 23*time.Hour + 59*time.Minute, bucket(services.AgingOnTime)},
		{"b@example.com", models.TaskStatusUnderProcess, 24*time.Hour + time.Minute, bucket(services.AgingAging)},
		{"c@example.com", models.TaskStatusUnderProcess, 5*24*time.Hour + 23*time.Hour + 59*time.Minute, bucket(services.AgingAging)},
		{"d@example.com", models.TaskStatusUnderProcess, 6*24*time.Hour + time.Minute, bucket(services.AgingCritical)},
		{"e@example.com", models.TaskStatusCompleted, 30 * 24 * time.Hour, nil},
	}

	ids := make([]uint64, len(tests))
	for i, tt := range tests {
		app := testutil.CreateApplication(t, f.db, f.program.ID, &f.country.ID, tt.email, f.now.Add(-60*24*time.Hour))
		testutil.CreateTask(t, f.db, app.ID, f.employeeA.ID, tt.status, f.now.Add(-tt.age))
		ids[i] = app.ID
	}

	rows, err := ledger.ListForEmployee(context.Background(), f.employeeA.ID)
	require.NoError(t, err)
	require.Len(t, rows, len(tests))

	for i, tt := range tests {
		row := findTask(t, rows, ids[i])
		assert.Equal(t, tt.status, row.TaskStatus, tt.email)
		assert.Equal(t, tt.want, row.TaskAgingStatus, tt.email)
	}
}

func TestListForEmployeeFallsBackToApplicationCreatedAt(t *testing.T) {
	f := newIntakeFixture(t)
	ledger := &services.Tasks{DB: f.db, Clock: testutil.FixedClock(&f.now)}

	app := testutil.CreateApplication(t, f.db, f.program.ID, &f.country.ID, "old@example.com", f.now.Add(-7*24*time.Hour))

	rows, err := ledger.ListForEmployee(context.Background(), f.employeeB.ID)
	require.NoError(t, err)
	row := findTask(t, rows, app.ID)
	assert.Nil(t, row.TaskID)
	assert.Equal(t, bucket(services.AgingCritical), row.TaskAgingStatus)
}

func TestUpdateTaskUpserts(t *testing.T) {
	f := newIntakeFixture(t)
	ctx := context.Background()
	ledger := &services.Tasks{DB: f.db, Clock: testutil.FixedClock(&f.now)}

	app := testutil.CreateApplication(t, f.db, f.program.ID, &f.country.ID, "upsert@example.com", f.now)

	created, err := ledger.Update(ctx, app.ID, f.outsider.ID, models.TaskStatusUnderProcess, nil)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusUnderProcess, created.TaskStatus)
	assert.Nil(t, created.TaskNotes)

	firstUpdatedAt := created.UpdatedAt
	f.now = f.now.Add(time.Minute)

	notes := "  Called the applicant  "
	updated, err := ledger.Update(ctx, app.ID, f.outsider.ID, models.TaskStatusCompleted, &notes)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.TaskStatusCompleted, updated.TaskStatus)
	require.NotNil(t, updated.TaskNotes)
	assert.Equal(t, "Called the applicant", *updated.TaskNotes)
	assert.True(t, updated.UpdatedAt.After(firstUpdatedAt), "updatedAt must increase")

	var count int64
	require.NoError(t, f.db.Model(&models.ApplicationTask{}).
		Where("application_id = ? AND employee_user_id = ?", app.ID, f.outsider.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateTaskErrors(t *testing.T) {
	f := newIntakeFixture(t)
	ctx := context.Background()
	ledger := &services.Tasks{DB: f.db, Clock: testutil.FixedClock(&f.now)}

	app := testutil.CreateApplication(t, f.db, f.program.ID, &f.country.ID, "err@example.com", f.now)

	_, err := ledger.Update(ctx, 0, f.employeeA.ID, models.TaskStatusCompleted, nil)
	assert.True(t, types.IsValidation(err))

	_, err = ledger.Update(ctx, app.ID, 0, models.TaskStatusCompleted, nil)
	assert.True(t, types.IsValidation(err))

	_, err = ledger.Update(ctx, app.ID, f.employeeA.ID, "done", nil)
	assert.True(t, types.IsValidation(err))

	_, err = ledger.Update(ctx, app.ID+100, f.employeeA.ID, models.TaskStatusCompleted, nil)
	assert.True(t, types.IsNotFound(err))

	var count int64
	require.NoError(t, f.db.Model(&models.ApplicationTask{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitUpdateListScenario(t *testing.T) {
	f := newIntakeFixture(t)
	ctx := context.Background()
	ledger := &services.Tasks{DB: f.db, Clock: testutil.FixedClock(&f.now)}

	result, err := f.intake.Submit(ctx, services.SubmitInput{
		ProgramID:     types.NewFlexID(f.program.ID),
		ApplicantName: "Kim",
		Email:         "kim@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, services.SubmissionCreated, result.Status)
	require.Len(t, f.tasks(t, result.ApplicationID), 2)

	f.now = f.now.Add(2 * time.Hour)
	notes := "Docs verified"
	_, err = ledger.Update(ctx, result.ApplicationID, f.employeeA.ID, models.TaskStatusCompleted, &notes)
	require.NoError(t, err)

	rows, err := ledger.ListForEmployee(ctx, f.employeeA.ID)
	require.NoError(t, err)
	row := findTask(t, rows, result.ApplicationID)
	assert.Equal(t, models.TaskStatusCompleted, row.TaskStatus)
	assert.Nil(t, row.TaskAgingStatus)
	require.NotNil(t, row.TaskNotes)
	assert.Equal(t, "Docs verified", *row.TaskNotes)

	// The other employee's task is untouched
	rows, err = ledger.ListForEmployee(ctx, f.employeeB.ID)
	require.NoError(t, err)
	row = findTask(t, rows, result.ApplicationID)
	assert.Equal(t, models.TaskStatusUnderProcess, row.TaskStatus)
	assert.Equal(t, bucket(services.AgingOnTime), row.TaskAgingStatus)
	assert.Nil(t, row.TaskNotes)
}

func bucket(b services.AgingBucket) *services.AgingBucket {
	return &b
}
