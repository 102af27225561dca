// analytics.go
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
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/localnerve/admissions-desk/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// Result caps for the dashboard aggregates
const (
	MaxAnalyticsEmployees = 50
	MaxAnalyticsCountries = 20
)

// UnknownCountry labels tasks whose application has no country
const UnknownCountry = "Unknown"

// AgingCounts is a three bucket breakdown of open tasks
type AgingCounts struct {
	OnTime   int `json:"onTime"`
	Aging    int `json:"aging"`
	Critical int `json:"critical"`
}

func (a *AgingCounts) add(bucket AgingBucket) {
	switch bucket {
	case AgingOnTime:
		a.OnTime++
	case AgingAging:
		a.Aging++
	case AgingCritical:
		a.Critical++
	}
}

// EmployeeWorkload is the open task summary of one employee
type EmployeeWorkload struct {
	EmployeeUserID uint64 `json:"employeeUserId"`
	EmployeeName   string `json:"employeeName"`
	TaskCount      int    `json:"taskCount"`
	AgingCounts
}

// CountryWorkload is the open task count of one country
type CountryWorkload struct {
	CountryID   *uint64 `json:"countryId"`
	CountryName string  `json:"countryName"`
	TaskCount   int     `json:"taskCount"`
}

// AgingSummary is the aging breakdown over every open employee task
type AgingSummary struct {
	AgingCounts
	Total int `json:"total"`
}

// TaskAnalytics is the dashboard payload
type TaskAnalytics struct {
	EmployeeTasks []EmployeeWorkload `json:"employeeTasks"`
	CountryTasks  []CountryWorkload  `json:"countryTasks"`
	TaskAging     AgingSummary       `json:"taskAging"`
}

type openTaskRow struct {
	TaskID         uint64
	EmployeeUserID uint64
	EmployeeName   *string
	EmployeeEmail  *string
	TaskUpdatedAt  time.Time
	CountryID      *uint64
	CountryName    *string
}

// Analytics aggregates open employee tasks for dashboards
type Analytics struct {
	DB    *gorm.DB
	Clock Clock
}

// Get computes per-employee, per-country and global aging aggregates over tasks
// that are under process and owned by employees. Buckets use ClassifyElapsed on
// each task's updated_at, the same rule as the employee listing.
func (s *Analytics) Get(ctx context.Context) (*TaskAnalytics, error) {
	var rows []openTaskRow
	err := s.DB.WithContext(ctx).
		Clauses(hints.Comment("select", "task_analytics")).
		Table("application_tasks t").
		Select(`t.id AS task_id, t.employee_user_id, u.name AS employee_name, u.email AS employee_email,
			t.updated_at AS task_updated_at, a.country_id, c.name AS country_name`).
		Scopes(employeeUsers("t.employee_user_id")).
		Joins("JOIN users u ON u.id = t.employee_user_id").
		Joins("LEFT JOIN applications a ON a.id = t.application_id").
		Joins("LEFT JOIN countries c ON c.id = a.country_id").
		Where("t.task_status = ?", models.TaskStatusUnderProcess).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load open tasks: %w", err)
	}

	return aggregate(rows, s.Clock.now()), nil
}

type countryKey struct {
	id   uint64
	name string
}

func aggregate(rows []openTaskRow, now time.Time) *TaskAnalytics {
	result := &TaskAnalytics{
		EmployeeTasks: []EmployeeWorkload{},
		CountryTasks:  []CountryWorkload{},
	}

	employees := make(map[uint64]*EmployeeWorkload)
	countries := make(map[countryKey]*CountryWorkload)

	for _, row := range rows {
		bucket := ClassifyElapsed(now.Sub(row.TaskUpdatedAt))

		result.TaskAging.add(bucket)
		result.TaskAging.Total++

		emp, ok := employees[row.EmployeeUserID]
		if !ok {
			emp = &EmployeeWorkload{EmployeeUserID: row.EmployeeUserID, EmployeeName: displayName(row.EmployeeName, row.EmployeeEmail)}
			employees[row.EmployeeUserID] = emp
		}
		emp.TaskCount++
		emp.add(bucket)

		key := countryKey{name: UnknownCountry}
		if row.CountryID != nil {
			key.id = *row.CountryID
			if row.CountryName != nil && *row.CountryName != "" {
				key.name = *row.CountryName
			}
		}
		country, ok := countries[key]
		if !ok {
			country = &CountryWorkload{CountryName: key.name}
			if row.CountryID != nil {
				id := *row.CountryID
				country.CountryID = &id
			}
			countries[key] = country
		}
		country.TaskCount++
	}

	for _, emp := range employees {
		result.EmployeeTasks = append(result.EmployeeTasks, *emp)
	}
	slices.SortFunc(result.EmployeeTasks, func(a, b EmployeeWorkload) int {
		return cmp.Or(
			cmp.Compare(b.TaskCount, a.TaskCount),
			cmp.Compare(a.EmployeeName, b.EmployeeName),
			cmp.Compare(a.EmployeeUserID, b.EmployeeUserID),
		)
	})
	if len(result.EmployeeTasks) > MaxAnalyticsEmployees {
		result.EmployeeTasks = result.EmployeeTasks[:MaxAnalyticsEmployees]
	}

	for _, country := range countries {
		result.CountryTasks = append(result.CountryTasks, *country)
	}
	slices.SortFunc(result.CountryTasks, func(a, b CountryWorkload) int {
		return cmp.Or(
			cmp.Compare(b.TaskCount, a.TaskCount),
			cmp.Compare(a.CountryName, b.CountryName),
			cmp.Compare(idOrZero(a.CountryID), idOrZero(b.CountryID)),
		)
	})
	if len(result.CountryTasks) > MaxAnalyticsCountries {
		result.CountryTasks = result.CountryTasks[:MaxAnalyticsCountries]
	}

	return result
}

func displayName(name, email *string) string {
	if name != nil && *name != "" {
		return *name
	}
	if email != nil {
		return *email
	}
	return ""
}

func idOrZero(id *uint64) uint64 {
	if id == nil {
		return 0
	}
	return *id
}
