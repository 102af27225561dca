// leads.go
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

// LeadHandler handles lead conversation routes
type LeadHandler struct {
	Leads  *services.Leads
	Logger *zap.Logger
}

// ListConversations handles GET /api/leadConversations
// @Summary List lead conversations
// @Tags Leads
// @Produce json
// @Success 200 {array} services.ConversationView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /leadConversations [get]
func (h *LeadHandler) ListConversations(c *fiber.Ctx) error {
	rows, err := h.Leads.List(c.UserContext())
	if err != nil {
		return respondError(c, h.Logger, "listConversations", err)
	}
	return c.JSON(rows)
}

// GetConversation handles GET /api/leadConversations/:userId
// @Summary Get a lead conversation
// @Tags Leads
// @Produce json
// @Param userId path int true "Lead user ID"
// @Success 200 {object} services.ConversationView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /leadConversations/{userId} [get]
func (h *LeadHandler) GetConversation(c *fiber.Ctx) error {
	userID, err := types.ParseID("userId", c.Params("userId"))
	if err != nil {
		return respondError(c, h.Logger, "getConversation", err)
	}

	row, err := h.Leads.Get(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.Logger, "getConversation", err)
	}
	return c.JSON(row)
}

// UpsertConversation handles PUT /api/leadConversations/:userId
// @Summary Create or replace a lead conversation
// @Description Fields absent from the body are cleared. Unknown statuses are stored as "new".
// @Tags Leads
// @Accept json
// @Produce json
// @Param userId path int true "Lead user ID"
// @Param conversation body services.ConversationInput true "Conversation"
// @Success 200 {object} services.ConversationView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /leadConversations/{userId} [put]
func (h *LeadHandler) UpsertConversation(c *fiber.Ctx) error {
	userID, err := types.ParseID("userId", c.Params("userId"))
	if err != nil {
		return respondError(c, h.Logger, "upsertConversation", err)
	}

	var in services.ConversationInput
	if err := parseJSON(c, &in); err != nil {
		return respondError(c, h.Logger, "upsertConversation", err)
	}

	row, err := h.Leads.Upsert(c.UserContext(), userID, in)
	if err != nil {
		return respondError(c, h.Logger, "upsertConversation", err)
	}
	return c.JSON(row)
}
