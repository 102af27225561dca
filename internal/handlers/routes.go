// routes.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers groups the route handlers mounted under /api
type Handlers struct {
	Applications *ApplicationHandler
	Leads        *LeadHandler
	Health       *HealthHandler
}

// RegisterRoutes mounts every route on api. The fixed employee-tasks and
// task-analytics paths are registered ahead of the numeric :id route.
func RegisterRoutes(api fiber.Router, h Handlers) {
	if h.Health != nil {
		api.Get("/health", h.Health.GetHealth)
	}

	applications := api.Group("/applications")
	applications.Post("/", h.Applications.SubmitApplication)
	applications.Get("/employee-tasks", h.Applications.ListEmployeeTasks)
	applications.Put("/employee-tasks/:applicationId", h.Applications.UpdateEmployeeTask)
	applications.Get("/task-analytics", h.Applications.GetTaskAnalytics)
	applications.Get("/:id<int>", h.Applications.GetApplication)

	leads := api.Group("/leadConversations")
	leads.Get("/", h.Leads.ListConversations)
	leads.Get("/:userId", h.Leads.GetConversation)
	leads.Put("/:userId", h.Leads.UpsertConversation)
}
