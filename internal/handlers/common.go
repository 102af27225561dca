// common.go
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
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/admissions-desk/internal/middleware"
	"github.com/localnerve/admissions-desk/internal/types"
	"github.com/localnerve/admissions-desk/internal/utils"
	"go.uber.org/zap"
)

// respondError maps the service error taxonomy onto 400, 404 and 500.
// Unexpected errors are logged and never echoed to the caller.
func respondError(c *fiber.Ctx, log *zap.Logger, op string, err error) error {
	var ve *types.ValidationError
	if errors.As(err, &ve) {
		return utils.BadRequestResponse(c, ve.Error())
	}
	var nf *types.NotFoundError
	if errors.As(err, &nf) {
		return utils.NotFoundResponse(c, nf.Error())
	}

	if log != nil {
		log.Error("request failed",
			zap.String("op", op),
			zap.String("requestId", middleware.GetRequestID(c)),
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return utils.InternalErrorResponse(c)
}

// parseJSON decodes the request body into out. An empty body leaves out untouched.
func parseJSON(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return types.NewValidationError("", "invalid JSON body")
	}
	return nil
}
