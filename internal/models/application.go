// application.go
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

package models

import (
	"time"
)

// ApplicationStatusSubmitted is the status of a freshly submitted application
const ApplicationStatusSubmitted = "submitted"

// Task status values
const (
	TaskStatusUnderProcess = "under_process"
	TaskStatusCompleted    = "completed"
)

// Application is a student's submission for one program.
// (program_id, email) is unique; a conflicting insert is the "already exists" outcome.
type Application struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProgramID          uint64    `gorm:"not null;index:idx_application_program_email,unique" json:"programId"`
	CountryID          *uint64   `gorm:"index" json:"countryId"`
	UserID             *uint64   `gorm:"index" json:"userId"`
	ApplicantName      string    `gorm:"size:255;not null" json:"applicantName"`
	Email              string    `gorm:"size:255;not null;index:idx_application_program_email,unique" json:"email"`
	Phone              *string   `gorm:"size:64" json:"phone"`
	CountryOfResidence *string   `gorm:"size:128" json:"countryOfResidence"`
	Statement          *string   `gorm:"type:text" json:"statement"`
	Notes              *string   `gorm:"type:text" json:"notes"`
	Status             string    `gorm:"size:64;not null;default:submitted" json:"status"`
	CreatedAt          time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ApplicationTask is one employee's work item for one application
type ApplicationTask struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicationID  uint64    `gorm:"not null;index:idx_task_application_employee,unique" json:"applicationId"`
	EmployeeUserID uint64    `gorm:"not null;index:idx_task_application_employee,unique;index" json:"employeeUserId"`
	TaskStatus     string    `gorm:"size:32;not null;default:under_process;index" json:"taskStatus"`
	TaskNotes      *string   `gorm:"type:text" json:"taskNotes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// LeadConversation is the CRM follow-up record for a user, one per user
type LeadConversation struct {
	ID                 uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             uint64     `gorm:"not null;uniqueIndex" json:"userId"`
	LookingFor         *string    `gorm:"type:text" json:"lookingFor"`
	ConversationStatus string     `gorm:"size:32;not null;default:new" json:"conversationStatus"`
	Notes              *string    `gorm:"type:text" json:"notes"`
	ReminderAt         *time.Time `json:"reminderAt"`
	ReminderDone       bool       `gorm:"not null" json:"reminderDone"`
	LastContactedAt    *time.Time `json:"lastContactedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// All returns every model managed by migrations, in dependency order
func All() []interface{} {
	return []interface{}{
		&User{},
		&AdminRole{},
		&UserAdminRole{},
		&Country{},
		&Program{},
		&UserCountryAccess{},
		&Application{},
		&ApplicationTask{},
		&LeadConversation{},
	}
}
