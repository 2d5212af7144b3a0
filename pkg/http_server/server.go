package http_server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp returns a fiber app with the middleware every Travigo planner service shares
func NewApp(name string) *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})

	webApp.Use(NewLogger())
	webApp.Use(recover.New())
	webApp.Use(cors.New())

	return webApp
}

// ErrorHandler renders every error that escapes a handler as a JSON error body
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "An unexpected error occurred"

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		code = fiberError.Code
		message = fiberError.Message
	}

	switch code {
	case fiber.StatusNotFound:
		message = "Endpoint not found. Please check API documentation."
	case fiber.StatusMethodNotAllowed:
		message = "Method not allowed. Please check API documentation."
	}

	c.Status(code)
	return c.JSON(fiber.Map{
		"error": message,
	})
}
