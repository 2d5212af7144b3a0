package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/journeyplanner/pkg/api/routes"
	"github.com/travigo/journeyplanner/pkg/http_server"
)

func NewApp(planner routes.JourneyPlanner) *fiber.App {
	webApp := http_server.NewApp("travigo-planner")

	webApp.Get("/version", routes.APIVersion)
	webApp.Get("/health", routes.Health)

	routes.PlannerRouter(webApp, planner)

	return webApp
}

func SetupServer(listen string, planner routes.JourneyPlanner) error {
	return NewApp(planner).Listen(listen)
}
