// applications.go
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
	"github.com/localnerve/admissions-desk/internal/services"
	"github.com/localnerve/admissions-desk/internal/types"
	"go.uber.org/zap"
)

// ApplicationHandler handles application intake, employee task and analytics routes
type ApplicationHandler struct {
	Intake    *services.Intake
	Tasks     *services.Tasks
	Analytics *services.Analytics
	Logger    *zap.Logger
}

// SubmitApplication handles POST /api/applications
// @Summary Submit an application
// @Description Records an application and fans out tasks to the employees of its country. A repeat submission returns the existing application id.
// @Tags Applications
// @Accept json
// @Produce json
// @Param application body services.SubmitInput true "Application"
// @Success 200 {object} services.SubmitResult "Application already exists"
// @Success 201 {object} services.SubmitResult "Application created"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *fiber.Ctx) error {
	var in services.SubmitInput
	if err := parseJSON(c, &in); err != nil {
		return respondError(c, h.Logger, "submitApplication", err)
	}

	result, err := h.Intake.Submit(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.Logger, "submitApplication", err)
	}

	status := fiber.StatusOK
	if result.Status == services.SubmissionCreated {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(result)
}

// GetApplication handles GET /api/applications/:id
// @Summary Get an application
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} services.ApplicationView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *fiber.Ctx) error {
	id, err := types.ParseID("id", c.Params("id"))
	if err != nil {
		return respondError(c, h.Logger, "getApplication", err)
	}

	view, err := h.Intake.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.Logger, "getApplication", err)
	}
	return c.JSON(view)
}

// ListEmployeeTasks handles GET /api/applications/employee-tasks?userId=
// @Summary List an employee's tasks
// @Description Applications in the employee's granted countries, newest first, with task state and aging bucket
// @Tags Tasks
// @Produce json
// @Param userId query int true "Employee user ID"
// @Success 200 {array} services.EmployeeTask
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /applications/employee-tasks [get]
func (h *ApplicationHandler) ListEmployeeTasks(c *fiber.Ctx) error {
	userID, err := types.ParseID("userId", c.Query("userId"))
	if err != nil {
		return respondError(c, h.Logger, "listEmployeeTasks", err)
	}

	rows, err := h.Tasks.ListForEmployee(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.Logger, "listEmployeeTasks", err)
	}
	return c.JSON(rows)
}

// UpdateEmployeeTask handles PUT /api/applications/employee-tasks/:applicationId
// @Summary Update an employee's task
// @Description Creates or updates the (application, employee) task and restarts its aging clock
// @Tags Tasks
// @Accept json
// @Produce json
// @Param applicationId path int true "Application ID"
// @Param task body services.TaskUpdate true "Task update"
// @Success 200 {object} models.ApplicationTask
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /applications/employee-tasks/{applicationId} [put]
func (h *ApplicationHandler) UpdateEmployeeTask(c *fiber.Ctx) error {
	applicationID, err := types.ParseID("applicationId", c.Params("applicationId"))
	if err != nil {
		return respondError(c, h.Logger, "updateEmployeeTask", err)
	}

	var in services.TaskUpdate
	if err := parseJSON(c, &in); err != nil {
		return respondError(c, h.Logger, "updateEmployeeTask", err)
	}
	if in.EmployeeUserID.Present() && !in.EmployeeUserID.Valid() {
		return respondError(c, h.Logger, "updateEmployeeTask",
			types.NewValidationError("employeeUserId", "must be a positive integer"))
	}

	task, err := h.Tasks.Update(c.UserContext(), applicationID, in.EmployeeUserID.Uint64(), in.TaskStatus, in.TaskNotes)
	if err != nil {
		return respondError(c, h.Logger, "updateEmployeeTask", err)
	}
	return c.JSON(task)
}

// GetTaskAnalytics handles GET /api/applications/task-analytics
// @Summary Task analytics
// @Description Open task counts per employee and per country with aging breakdowns
// @Tags Tasks
// @Produce json
// @Success 200 {object} services.TaskAnalytics
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /applications/task-analytics [get]
func (h *ApplicationHandler) GetTaskAnalytics(c *fiber.Ctx) error {
	result, err := h.Analytics.Get(c.UserContext())
	if err != nil {
		return respondError(c, h.Logger, "getTaskAnalytics", err)
	}
	return c.JSON(result)
}
