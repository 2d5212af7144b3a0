package directions

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Service is the directions collaborator, a thin proxy over the Google Directions API
type Service struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func (s *Service) Router(router fiber.Router) {
	router.Get("/directions", s.getDirections)
}

func (s *Service) getDirections(c *fiber.Ctx) error {
	origin := c.Query("origin")
	destination := c.Query("destination")

	if origin == "" || destination == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Both origin and destination must be provided.",
		})
	}

	params := url.Values{
		"origin":      {origin},
		"destination": {destination},
		"key":         {s.APIKey},
		"mode":        {c.Query("mode", "driving")},
	}

	if departureTime := c.Query("departure_time"); departureTime != "" {
		params.Set("departure_time", departureTime)
	}
	if avoid := c.Query("avoid"); avoid != "" {
		params.Set("avoid", avoid)
	}

	if strings.EqualFold(c.Query("alternatives", "true"), "true") {
		params.Set("alternatives", "true")
	} else {
		params.Set("alternatives", "false")
	}

	body, statusCode, err := s.fetch(c, params)
	if err != nil || statusCode != http.StatusOK {
		log.Error().Err(err).Int("status", statusCode).Msg("Failed to fetch directions from Google Maps")

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error":       "Error fetching directions from Google Maps API",
			"status_code": statusCode,
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (s *Service) fetch(c *fiber.Ctx, params url.Values) ([]byte, int, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(c.UserContext(), http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "build directions request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "directions request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "read directions response")
	}

	return body, resp.StatusCode, nil
}
