// aging.go
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
	"time"

	"github.com/localnerve/admissions-desk/internal/models"
)

// AgingBucket classifies how long an open task has gone without an update
type AgingBucket string

const (
	AgingOnTime   AgingBucket = "on_time"
	AgingAging    AgingBucket = "aging"
	AgingCritical AgingBucket = "critical"
)

// Bucket boundaries. Both are inclusive lower bounds of the longer bucket.
const (
	AgingAfter    = 24 * time.Hour
	CriticalAfter = 6 * 24 * time.Hour
)

// ClassifyElapsed maps time since the last update to a bucket.
// Negative elapsed (clock skew) counts as on time.
func ClassifyElapsed(elapsed time.Duration) AgingBucket {
	switch {
	case elapsed < AgingAfter:
		return AgingOnTime
	case elapsed < CriticalAfter:
		return AgingAging
	default:
		return AgingCritical
	}
}

// ClassifyTask returns the bucket for a task, or nil when the task is not under process.
// The reference point is the task's last update, else the application's creation time.
func ClassifyTask(taskStatus string, taskUpdatedAt *time.Time, applicationCreatedAt, now time.Time) *AgingBucket {
	if taskStatus != models.TaskStatusUnderProcess {
		return nil
	}
	reference := applicationCreatedAt
	if taskUpdatedAt != nil && !taskUpdatedAt.IsZero() {
		reference = *taskUpdatedAt
	}
	bucket := ClassifyElapsed(now.Sub(reference))
	return &bucket
}
