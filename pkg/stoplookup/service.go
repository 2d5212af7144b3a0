package stoplookup

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

type Service struct {
	Resolver *Resolver
}

func (s *Service) Router(router fiber.Router) {
	router.Post("/bus_stop_lookup", s.lookupBusStops)
}

func (s *Service) lookupBusStops(c *fiber.Ctx) error {
	var directions ctdf.Directions
	if err := c.BodyParser(&directions); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Request body must be a directions response",
		})
	}

	matches, err := s.Resolver.Resolve(c.UserContext(), directions.Routes)
	if err != nil {
		c.SendStatus(collaborator.AsError(err).HTTPStatus())
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if len(matches) == 0 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "No public transport steps found",
		})
	}

	return c.JSON(fiber.Map{
		"transit_details": matches,
	})
}
