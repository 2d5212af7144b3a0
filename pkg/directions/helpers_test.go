package directions

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/journeyplanner/pkg/http_server"
)

func newTestApp(service *Service) *fiber.App {
	app := http_server.NewApp("directions-test")
	service.Router(app)
	return app
}
