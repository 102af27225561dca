// intake.go
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
	"strings"

	"github.com/localnerve/admissions-desk/internal/models"
	"github.com/localnerve/admissions-desk/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Submission outcomes
const (
	SubmissionCreated = "created"
	SubmissionExists  = "exists"
)

// SubmitInput is the application submission body. Program and user may be given
// as an id field or as a nested object.
type SubmitInput struct {
	ProgramID          types.FlexID `json:"programId"`
	Program            types.FlexID `json:"program"`
	UserID             types.FlexID `json:"userId"`
	User               types.FlexID `json:"user"`
	CountryID          types.FlexID `json:"countryId"`
	ApplicantName      string       `json:"applicantName"`
	Email              string       `json:"email"`
	Phone              *string      `json:"phone"`
	CountryOfResidence *string      `json:"countryOfResidence"`
	Statement          *string      `json:"statement"`
	Notes              *string      `json:"notes"`
}

// SubmitResult is the outcome of a submission. Application is set only when created.
type SubmitResult struct {
	Status        string           `json:"status"`
	ApplicationID uint64           `json:"applicationId"`
	Application   *ApplicationView `json:"application,omitempty"`
}

// ApplicationView is an application with its program and country names
type ApplicationView struct {
	models.Application
	ProgramName *string `json:"programName"`
	CountryName *string `json:"countryName"`
}

// Intake accepts application submissions and fans out employee tasks
type Intake struct {
	DB     *gorm.DB
	Access *AccessGrants
	Logger *zap.Logger
	Clock  Clock
}

// pickID resolves the first supplied id among candidates, rejecting malformed values
func pickID(field string, candidates ...types.FlexID) (uint64, bool, error) {
	for _, c := range candidates {
		if !c.Present() {
			continue
		}
		if !c.Valid() {
			return 0, false, types.NewValidationError(field, "must be a positive integer")
		}
		return c.Uint64(), true, nil
	}
	return 0, false, nil
}

// Submit records an application. A repeat submission for the same program by the
// same email or user returns the existing application instead of a new row.
func (s *Intake) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	programID, ok, err := pickID("programId", in.ProgramID, in.Program)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.NewValidationError("programId", "is required")
	}
	applicantName := strings.TrimSpace(in.ApplicantName)
	if applicantName == "" {
		return nil, types.NewValidationError("applicantName", "is required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, types.NewValidationError("email", "is required")
	}
	userID, hasUser, err := pickID("userId", in.UserID, in.User)
	if err != nil {
		return nil, err
	}
	countryID, hasCountry, err := pickID("countryId", in.CountryID)
	if err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)

	if !hasUser {
		var user models.User
		err := db.Select("id").Where("LOWER(email) = ?", email).Take(&user).Error
		switch {
		case err == nil:
			userID, hasUser = user.ID, true
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("resolve user by email: %w", err)
		}
	}

	if !hasCountry {
		var program models.Program
		err := db.Select("id", "country_id").Take(&program, programID).Error
		switch {
		case err == nil && program.CountryID != nil:
			countryID, hasCountry = *program.CountryID, true
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("resolve program country: %w", err)
		}
	}

	if existingID, err := s.findExisting(ctx, programID, email, userID, hasUser); err != nil {
		return nil, err
	} else if existingID != 0 {
		return &SubmitResult{Status: SubmissionExists, ApplicationID: existingID}, nil
	}

	now := s.Clock.now()
	app := models.Application{
		ProgramID:          programID,
		ApplicantName:      applicantName,
		Email:              email,
		Phone:              trimToNil(in.Phone),
		CountryOfResidence: trimToNil(in.CountryOfResidence),
		Statement:          trimToNil(in.Statement),
		Notes:              trimToNil(in.Notes),
		Status:             models.ApplicationStatusSubmitted,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if hasUser {
		app.UserID = &userID
	}
	if hasCountry {
		app.CountryID = &countryID
	}

	// The unique (program_id, email) index turns a concurrent duplicate into a no-op insert
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "program_id"}, {Name: "email"}},
		DoNothing: true,
	}).Create(&app)
	if result.Error != nil {
		return nil, fmt.Errorf("insert application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		existingID, err := s.findExisting(ctx, programID, email, 0, false)
		if err != nil {
			return nil, err
		}
		return &SubmitResult{Status: SubmissionExists, ApplicationID: existingID}, nil
	}

	if hasCountry {
		// Best effort: the application stands even if fan-out fails
		if _, err := s.FanOutTasks(ctx, app.ID, countryID); err != nil {
			s.logger().Warn("task fan-out failed",
				zap.Uint64("applicationId", app.ID),
				zap.Uint64("countryId", countryID),
				zap.Error(err))
		}
	}

	view, err := s.Get(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Status: SubmissionCreated, ApplicationID: app.ID, Application: view}, nil
}

func (s *Intake) findExisting(ctx context.Context, programID uint64, email string, userID uint64, hasUser bool) (uint64, error) {
	query := s.DB.WithContext(ctx).Model(&models.Application{}).Where("program_id = ?", programID)
	if hasUser {
		query = query.Where(s.DB.Where("email = ?", email).Or("user_id = ?", userID))
	} else {
		query = query.Where("email = ?", email)
	}

	var ids []uint64
	if err := query.Order("id").Limit(1).Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("check existing application: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}

// FanOutTasks creates an under_process task for every employee granted countryID.
// Existing (application, employee) rows are left untouched, so it is safe to re-run.
// It returns the number of rows inserted.
func (s *Intake) FanOutTasks(ctx context.Context, applicationID, countryID uint64) (int64, error) {
	employees, err := s.Access.EmployeesForCountry(ctx, countryID)
	if err != nil {
		return 0, fmt.Errorf("list employees for country %d: %w", countryID, err)
	}
	if len(employees) == 0 {
		return 0, nil
	}

	now := s.Clock.now()
	tasks := make([]models.ApplicationTask, 0, len(employees))
	for _, employeeID := range employees {
		tasks = append(tasks, models.ApplicationTask{
			ApplicationID:  applicationID,
			EmployeeUserID: employeeID,
			TaskStatus:     models.TaskStatusUnderProcess,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	result := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}, {Name: "employee_user_id"}},
		DoNothing: true,
	}).Create(&tasks)
	if result.Error != nil {
		return 0, result.Error
	}

	s.logger().Info("task fan-out",
		zap.Uint64("applicationId", applicationID),
		zap.Int("employees", len(employees)),
		zap.Int64("inserted", result.RowsAffected))
	return result.RowsAffected, nil
}

// Get returns the application projection for id
func (s *Intake) Get(ctx context.Context, id uint64) (*ApplicationView, error) {
	var views []ApplicationView
	err := s.DB.WithContext(ctx).
		Table("applications a").
		Select("a.*, p.name AS program_name, c.name AS country_name").
		Joins("LEFT JOIN programs p ON p.id = a.program_id").
		Joins("LEFT JOIN countries c ON c.id = a.country_id").
		Where("a.id = ?", id).
		Limit(1).
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("load application %d: %w", id, err)
	}
	if len(views) == 0 {
		return nil, types.NewNotFoundError("application", id)
	}
	return &views[0], nil
}

func (s *Intake) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// trimToNil trims s and maps empty to nil
func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
