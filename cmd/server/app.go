// app.go
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

package main

import (
	"errors"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/admissions-desk/internal/config"
	"github.com/localnerve/admissions-desk/internal/handlers"
	"github.com/localnerve/admissions-desk/internal/middleware"
	"github.com/localnerve/admissions-desk/internal/services"
	"github.com/localnerve/admissions-desk/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newApp builds the Fiber app with middleware and every route mounted
func newApp(cfg *config.Config, db *gorm.DB, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler(log),
		ReadTimeout:           cfg.RequestTimeout,
		WriteTimeout:          cfg.RequestTimeout,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestId} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("admissions_desk")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	access := &services.AccessGrants{DB: db}
	handlers.RegisterRoutes(api, handlers.Handlers{
		Applications: &handlers.ApplicationHandler{
			Intake:    &services.Intake{DB: db, Access: access, Logger: log},
			Tasks:     &services.Tasks{DB: db, Logger: log},
			Analytics: &services.Analytics{DB: db},
			Logger:    log,
		},
		Leads: &handlers.LeadHandler{
			Leads:  &services.Leads{DB: db},
			Logger: log,
		},
		Health: &handlers.HealthHandler{Config: cfg, DB: db, Logger: log},
	})

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "Resource not found")
	})

	return app
}

// errorHandler renders framework errors in the {error} shape. Only fiber errors
// carry their message to the caller.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var e *fiber.Error
		if errors.As(err, &e) {
			return utils.ErrorResponse(c, e.Message, e.Code)
		}

		log.Error("unhandled error",
			zap.String("requestId", middleware.GetRequestID(c)),
			zap.String("path", c.Path()),
			zap.Error(err))
		return utils.InternalErrorResponse(c)
	}
}
