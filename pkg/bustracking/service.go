package bustracking

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

// Service exposes the live arrival collaborator for single and batch queries
type Service struct {
	Pool    *collaborator.Pool
	Tracker *Tracker
}

type trackingRequest struct {
	TransitDetails []ctdf.StopMatch `json:"transit_details"`
}

func (s *Service) Router(router fiber.Router) {
	router.Get("/bus-tracking", s.getBusArrival)
	router.Post("/bus-tracking", s.postBusArrivals)
}

func (s *Service) getBusArrival(c *fiber.Ctx) error {
	busStopCode := c.Query("BusStopCode")
	serviceNo := c.Query("ServiceNo")

	if busStopCode == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": "Missing BusStopCode parameter"})
	}
	if serviceNo == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": "Missing ServiceNo parameter"})
	}

	session := s.Pool.Acquire()
	defer session.Release()

	var arrival ctdf.BusArrival
	err := session.Get(c.UserContext(), collaborator.ServiceBusArrival, url.Values{
		"BusStopCode": {busStopCode},
		"ServiceNo":   {serviceNo},
	}, &arrival)
	if err != nil {
		upstreamError := collaborator.AsError(err)

		status := fiber.StatusInternalServerError
		if upstreamError.StatusCode != 0 {
			status = upstreamError.StatusCode
		}

		c.SendStatus(status)
		return c.JSON(fiber.Map{"error": upstreamError.Error()})
	}

	return c.JSON(arrival)
}

func (s *Service) postBusArrivals(c *fiber.Ctx) error {
	var request trackingRequest
	if err := c.BodyParser(&request); err != nil || request.TransitDetails == nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": "Missing transit_details in request body"})
	}

	session := s.Pool.Acquire()
	defer session.Release()

	results, err := s.Tracker.Track(c.UserContext(), session, request.TransitDetails)
	if err != nil {
		c.SendStatus(collaborator.AsError(err).HTTPStatus())
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(ctdf.BusTracking{Results: results})
}
