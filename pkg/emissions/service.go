package emissions

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

// Service is the emissions collaborator
type Service struct{}

func (s *Service) Router(router fiber.Router) {
	router.Get("/emission", s.getEmission)
	router.Post("/emission", s.calculateRouteEmissions)
}

func (s *Service) getEmission(c *fiber.Ctx) error {
	mode, err := ParseMode(c.Query("mode"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	// Unparseable distances fall through to the positive distance check
	distance, _ := strconv.ParseFloat(c.Query("distance"), 64)

	segment, err := Estimate(mode, distance)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(segment)
}

func (s *Service) calculateRouteEmissions(c *fiber.Ctx) error {
	var directions ctdf.Directions
	if err := c.BodyParser(&directions); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": "Invalid directions data format"})
	}

	if len(directions.Routes) == 0 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": NoRoutesMessage})
	}

	emissions, err := routeEmissions(directions.Routes, Estimate)
	if err != nil {
		log.Error().Err(err).Msg("Failed to calculate route emissions")

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"error": "Error processing emissions data: " + err.Error()})
	}

	return c.JSON(emissions)
}
