// db.go
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

// Package testutil provides an in-memory database and seed helpers for package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/admissions-desk/internal/database"
	"github.com/localnerve/admissions-desk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB creates a migrated in-memory SQLite database
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// FixedClock returns a clock that reports *now and can be moved by the test
func FixedClock(now *time.Time) func() time.Time {
	return func() time.Time { return *now }
}

// CreateUser creates a user with the given role
func CreateUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

// CreateCountry creates a country
func CreateCountry(t *testing.T, db *gorm.DB, name, code string) models.Country {
	t.Helper()
	country := models.Country{Name: name, Code: code}
	if err := db.Create(&country).Error; err != nil {
		t.Fatalf("Failed to create country %s: %v", name, err)
	}
	return country
}

// CreateProgram creates a program in countryID (0 for none)
func CreateProgram(t *testing.T, db *gorm.DB, name string, countryID uint64) models.Program {
	t.Helper()
	program := models.Program{Name: name}
	if countryID != 0 {
		program.CountryID = &countryID
	}
	if err := db.Create(&program).Error; err != nil {
		t.Fatalf("Failed to create program %s: %v", name, err)
	}
	return program
}

// GrantCountry gives userID access to countryID
func GrantCountry(t *testing.T, db *gorm.DB, userID, countryID uint64) {
	t.Helper()
	if err := db.Create(&models.UserCountryAccess{UserID: userID, CountryID: countryID}).Error; err != nil {
		t.Fatalf("Failed to grant country %d to user %d: %v", countryID, userID, err)
	}
}

// AssignAdminRole maps userID to the admin role roleKey, creating the role if needed
func AssignAdminRole(t *testing.T, db *gorm.DB, userID uint64, roleKey string) {
	t.Helper()
	var role models.AdminRole
	if err := db.Where(models.AdminRole{RoleKey: roleKey}).FirstOrCreate(&role).Error; err != nil {
		t.Fatalf("Failed to create admin role %s: %v", roleKey, err)
	}
	if err := db.Create(&models.UserAdminRole{UserID: userID, AdminRoleID: role.ID}).Error; err != nil {
		t.Fatalf("Failed to assign admin role %s: %v", roleKey, err)
	}
}

// CreateTask inserts a task row directly with the given status and timestamps
func CreateTask(t *testing.T, db *gorm.DB, applicationID, employeeUserID uint64, status string, updatedAt time.Time) models.ApplicationTask {
	t.Helper()
	task := models.ApplicationTask{
		ApplicationID:  applicationID,
		EmployeeUserID: employeeUserID,
		TaskStatus:     status,
		CreatedAt:      updatedAt,
		UpdatedAt:      updatedAt,
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}

// CreateApplication inserts an application row directly
func CreateApplication(t *testing.T, db *gorm.DB, programID uint64, countryID *uint64, email string, createdAt time.Time) models.Application {
	t.Helper()
	app := models.Application{
		ProgramID:     programID,
		CountryID:     countryID,
		ApplicantName: "Applicant " + email,
		Email:         email,
		Status:        models.ApplicationStatusSubmitted,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("Failed to create application: %v", err)
	}
	return app
}
