package fares

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// Service is the bus and train fare collaborator
type Service struct{}

func (s *Service) Router(router fiber.Router) {
	router.Get("/bus-fare", s.getBusFare)
	router.Get("/train-fare", s.getTrainFare)
	router.Get("/fare-info", s.getFareInfo)
	router.Get("/health", s.getHealth)
}

func missingParameters(c *fiber.Ctx, names ...string) []string {
	missing := []string{}
	for _, name := range names {
		if c.Query(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func badRequest(c *fiber.Ctx, body fiber.Map) error {
	c.SendStatus(fiber.StatusBadRequest)
	return c.JSON(body)
}

// parseCommonParameters returns the error body to answer with when the shared
// distance and passenger type parameters are invalid
func parseCommonParameters(c *fiber.Ctx) (float64, ctdf.PassengerType, fiber.Map) {
	distance, err := strconv.ParseFloat(c.Query("distance"), 64)
	if err != nil {
		return 0, "", fiber.Map{"error": "Distance must be a valid number"}
	}

	if distance < 0 {
		return 0, "", fiber.Map{"error": ErrNegativeDistance.Error()}
	}

	passengerType, err := ParsePassengerType(c.Query("passengerType"))
	if err != nil {
		return 0, "", fiber.Map{
			"error":           ErrInvalidPassengerType.Error(),
			"supported_types": ctdf.PassengerTypes,
		}
	}

	return distance, passengerType, nil
}

func (s *Service) getBusFare(c *fiber.Ctx) error {
	if missing := missingParameters(c, "distance", "passengerType", "busService"); len(missing) > 0 {
		return badRequest(c, fiber.Map{
			"error":   "Missing required parameters",
			"missing": missing,
		})
	}

	busService := c.Query("busService")
	if strings.TrimSpace(busService) == "" {
		return badRequest(c, fiber.Map{"error": "Bus service cannot be empty"})
	}

	distance, passengerType, invalid := parseCommonParameters(c)
	if invalid != nil {
		return badRequest(c, invalid)
	}

	fare, err := BusFare(distance, passengerType, busService)
	if err != nil {
		return badRequest(c, fiber.Map{"error": err.Error()})
	}

	isExpress := IsExpressService(busService)

	return c.JSON(ctdf.FareQuote{
		BusService:    busService,
		IsExpress:     &isExpress,
		Distance:      distance,
		PassengerType: passengerType,
		Fare:          fare,
		Currency:      ctdf.FareCurrency,
	})
}

func (s *Service) getTrainFare(c *fiber.Ctx) error {
	if missing := missingParameters(c, "distance", "passengerType", "peakHour"); len(missing) > 0 {
		return badRequest(c, fiber.Map{
			"error":   "Missing required parameters",
			"missing": missing,
		})
	}

	distance, passengerType, invalid := parseCommonParameters(c)
	if invalid != nil {
		return badRequest(c, invalid)
	}

	peakHour := ParsePeakHour(c.Query("peakHour"))

	fare, err := TrainFare(distance, passengerType, peakHour)
	if err != nil {
		return badRequest(c, fiber.Map{"error": err.Error()})
	}

	return c.JSON(ctdf.FareQuote{
		PeakHour:      &peakHour,
		Distance:      distance,
		PassengerType: passengerType,
		Fare:          fare,
		Currency:      ctdf.FareCurrency,
	})
}

func (s *Service) getFareInfo(c *fiber.Ctx) error {
	adult := busFareTable[ctdf.PassengerTypeAdult]

	return c.JSON(fiber.Map{
		"passengerTypes": ctdf.PassengerTypes,
		"expressBuses":   ExpressBusServices,
		"maxDistance":    DistanceBrackets[len(DistanceBrackets)-1],
		"minFare":        slices.Min(adult.Trunk),
		"maxFare":        slices.Max(adult.Express),
	})
}

func (s *Service) getHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "OK",
		"version": "1.0.0",
	})
}

// ParsePeakHour accepts true or 1, any other value is off-peak
func ParsePeakHour(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))

	return value == "true" || value == "1"
}
