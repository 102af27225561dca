// directory.go
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

// Role values stored in users.role
const (
	RoleUser     = "user"
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is a registered account. Owned by user management; read-only here.
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone     *string   `gorm:"size:64" json:"phone"`
	City      *string   `gorm:"size:128" json:"city"`
	Role      string    `gorm:"size:64;not null;default:user" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdminRole is a named console role such as "employee" or "manager"
type AdminRole struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleKey string `gorm:"size:64;not null;uniqueIndex" json:"roleKey"`
}

// UserAdminRole maps a user to an admin role
type UserAdminRole struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64 `gorm:"not null;index:idx_user_admin_role,unique" json:"userId"`
	AdminRoleID uint64 `gorm:"not null;index:idx_user_admin_role,unique" json:"adminRoleId"`
}

// Country is a destination country
type Country struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
	Code string `gorm:"size:8" json:"code"`
}

// Program is a catalog program. Only the columns this service reads are mapped.
type Program struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	CountryID *uint64 `gorm:"index" json:"countryId"`
}

// UserCountryAccess grants an employee visibility of applications in a country
type UserCountryAccess struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_country,unique" json:"userId"`
	CountryID uint64    `gorm:"not null;index:idx_user_country,unique;index" json:"countryId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the table name for UserCountryAccess
func (UserCountryAccess) TableName() string {
	return "user_country_access"
}
