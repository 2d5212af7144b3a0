package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/journeyplanner/pkg/journeyplanner"
)

type JourneyPlanner interface {
	Plan(ctx context.Context, request journeyplanner.JourneyRequest) *journeyplanner.Outcome
}

func PlannerRouter(router fiber.Router, planner JourneyPlanner) {
	router.Get("/plan_journey", func(c *fiber.Ctx) error {
		return planJourney(c, planner)
	})
}

func planJourney(c *fiber.Ctx, planner JourneyPlanner) error {
	request := journeyplanner.ParseJourneyRequest(
		c.Query("origin"),
		c.Query("destination"),
		c.Query("passengerType"),
		c.Query("peakHour"),
	)

	outcome := planner.Plan(c.UserContext(), request)

	if outcome.Err != nil {
		c.SendStatus(outcome.Err.HTTPStatus())
		return c.JSON(fiber.Map{
			"error": outcome.Err.Error(),
			"kind":  outcome.Err.Kind,
		})
	}

	return c.JSON(outcome.Plan)
}
