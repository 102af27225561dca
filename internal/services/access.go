// access.go
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
	"time"

	"github.com/localnerve/admissions-desk/internal/models"
	"gorm.io/gorm"
)

// Clock returns the current time. A nil Clock means time.Now in UTC.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// AccessGrants answers which countries an employee works and who the employees
// of a country are. The employee capability is the employee_users view.
type AccessGrants struct {
	DB *gorm.DB
}

// employeeUsers restricts a query to rows whose userColumn is an employee
func employeeUsers(userColumn string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN employee_users eu ON eu.user_id = " + userColumn)
	}
}

// CountriesFor returns the country ids granted to userID
func (s *AccessGrants) CountriesFor(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.DB.WithContext(ctx).
		Model(&models.UserCountryAccess{}).
		Where("user_id = ?", userID).
		Order("country_id").
		Pluck("country_id", &ids).Error
	return ids, err
}

// IsEmployee reports whether userID holds the employee capability
func (s *AccessGrants) IsEmployee(ctx context.Context, userID uint64) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Table("employee_users").
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

// EmployeesForCountry returns the ids of employees holding a grant for countryID
func (s *AccessGrants) EmployeesForCountry(ctx context.Context, countryID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.DB.WithContext(ctx).
		Table("user_country_access uca").
		Scopes(employeeUsers("uca.user_id")).
		Where("uca.country_id = ?", countryID).
		Order("uca.user_id").
		Pluck("uca.user_id", &ids).Error
	return ids, err
}
