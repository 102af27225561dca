// tasks.go
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
	"errors"
	"fmt"
	"time"

	"github.com/localnerve/admissions-desk/internal/models"
	"github.com/localnerve/admissions-desk/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxEmployeeTasks bounds the employee task listing
const MaxEmployeeTasks = 500

// EmployeeTask is an application visible to an employee, joined with that
// employee's own task row when one exists.
type EmployeeTask struct {
	ApplicationID        uint64       `json:"applicationId"`
	ProgramID            uint64       `json:"programId"`
	ProgramName          *string      `json:"programName"`
	CountryID            *uint64      `json:"countryId"`
	CountryName          *string      `json:"countryName"`
	UserID               *uint64      `json:"userId"`
	ApplicantName        string       `json:"applicantName"`
	Email                string       `json:"email"`
	Phone                *string      `json:"phone"`
	ApplicationStatus    string       `json:"applicationStatus"`
	ApplicationCreatedAt time.Time    `json:"applicationCreatedAt"`
	TaskID               *uint64      `json:"taskId"`
	EmployeeUserID       uint64       `gorm:"-" json:"employeeUserId"`
	StoredTaskStatus     *string      `gorm:"column:task_status" json:"-"`
	TaskStatus           string       `gorm:"-" json:"taskStatus"`
	TaskNotes            *string      `json:"taskNotes"`
	TaskCreatedAt        *time.Time   `json:"taskCreatedAt"`
	TaskUpdatedAt        *time.Time   `json:"taskUpdatedAt"`
	TaskAgingStatus      *AgingBucket `gorm:"-" json:"taskAgingStatus"`
}

// Tasks manages the per-employee task ledger
type Tasks struct {
	DB     *gorm.DB
	Logger *zap.Logger
	Clock  Clock
}

// ListForEmployee returns every application in the employee's granted countries,
// newest first, with the employee's task state and aging bucket.
func (s *Tasks) ListForEmployee(ctx context.Context, employeeUserID uint64) ([]EmployeeTask, error) {
	if employeeUserID == 0 {
		return nil, types.NewValidationError("userId", "must be a positive integer")
	}

	granted := s.DB.Model(&models.UserCountryAccess{}).
		Select("country_id").
		Where("user_id = ?", employeeUserID)

	rows := make([]EmployeeTask, 0)
	err := s.DB.WithContext(ctx).
		Table("applications a").
		Select(`a.id AS application_id, a.program_id, p.name AS program_name,
			a.country_id, c.name AS country_name, a.user_id, a.applicant_name, a.email, a.phone,
			a.status AS application_status, a.created_at AS application_created_at,
			t.id AS task_id, t.task_status, t.task_notes,
			t.created_at AS task_created_at, t.updated_at AS task_updated_at`).
		Joins("LEFT JOIN application_tasks t ON t.application_id = a.id AND t.employee_user_id = ?", employeeUserID).
		Joins("LEFT JOIN programs p ON p.id = a.program_id").
		Joins("LEFT JOIN countries c ON c.id = a.country_id").
		Where("a.country_id IN (?)", granted).
		Order("a.created_at DESC").
		Order("a.id DESC").
		Limit(MaxEmployeeTasks).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks for employee %d: %w", employeeUserID, err)
	}

	now := s.Clock.now()
	for i := range rows {
		row := &rows[i]
		row.EmployeeUserID = employeeUserID
		row.TaskStatus = models.TaskStatusUnderProcess
		if row.StoredTaskStatus != nil && *row.StoredTaskStatus != "" {
			row.TaskStatus = *row.StoredTaskStatus
		}
		row.TaskAgingStatus = ClassifyTask(row.TaskStatus, row.TaskUpdatedAt, row.ApplicationCreatedAt, now)
	}
	return rows, nil
}

// TaskUpdate is the body of a task status change
type TaskUpdate struct {
	EmployeeUserID types.FlexID `json:"employeeUserId"`
	TaskStatus     string       `json:"taskStatus"`
	TaskNotes      *string      `json:"taskNotes"`
}

// ValidTaskStatus reports whether status is an accepted task status
func ValidTaskStatus(status string) bool {
	return status == models.TaskStatusUnderProcess || status == models.TaskStatusCompleted
}

// Update upserts the (application, employee) task, overwriting status and notes and
// restarting the aging clock. Access grants are not re-checked here.
func (s *Tasks) Update(ctx context.Context, applicationID, employeeUserID uint64, status string, notes *string) (*models.ApplicationTask, error) {
	if applicationID == 0 {
		return nil, types.NewValidationError("applicationId", "must be a positive integer")
	}
	if employeeUserID == 0 {
		return nil, types.NewValidationError("employeeUserId", "must be a positive integer")
	}
	if !ValidTaskStatus(status) {
		return nil, types.NewValidationError("taskStatus", "must be %q or %q", models.TaskStatusUnderProcess, models.TaskStatusCompleted)
	}

	db := s.DB.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Application{}).Where("id = ?", applicationID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check application %d: %w", applicationID, err)
	}
	if count == 0 {
		return nil, types.NewNotFoundError("application", applicationID)
	}

	now := s.Clock.now()
	task := models.ApplicationTask{
		ApplicationID:  applicationID,
		EmployeeUserID: employeeUserID,
		TaskStatus:     status,
		TaskNotes:      trimToNil(notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}, {Name: "employee_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"task_status", "task_notes", "updated_at"}),
	}).Create(&task).Error
	if err != nil {
		return nil, fmt.Errorf("upsert task: %w", err)
	}

	var stored models.ApplicationTask
	err = db.Where("application_id = ? AND employee_user_id = ?", applicationID, employeeUserID).Take(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NewNotFoundError("task", applicationID)
	}
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Info("task updated",
			zap.Uint64("applicationId", applicationID),
			zap.Uint64("employeeUserId", employeeUserID),
			zap.String("taskStatus", status))
	}
	return &stored, nil
}
