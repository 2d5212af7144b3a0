package fares

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/journeyplanner/pkg/http_server"
)

func get(t *testing.T, target string) (int, map[string]any) {
	app := http_server.NewApp("fares-test")
	(&Service{}).Router(app)

	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return resp.StatusCode, body
}

func TestServiceBusFare(t *testing.T) {
	status, body := get(t, "/bus-fare?distance=5&passengerType=adult&busService=12e")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(200), body["fare"])
	assert.Equal(t, true, body["isExpress"])
	assert.Equal(t, "cents", body["currency"])
}

func TestServiceTrainFare(t *testing.T) {
	status, body := get(t, "/train-fare?distance=5&passengerType=Adult&peakHour=false")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(90), body["fare"])
	assert.Equal(t, false, body["peakHour"])
	assert.Equal(t, "adult", body["passengerType"])
}

func TestServiceRejectsBadRequests(t *testing.T) {
	tests := []struct {
		target string
		error  string
	}{
		{"/bus-fare?distance=5&passengerType=adult", "Missing required parameters"},
		{"/bus-fare?distance=abc&passengerType=adult&busService=7", "Distance must be a valid number"},
		{"/bus-fare?distance=-1&passengerType=adult&busService=7", "Distance cannot be negative"},
		{"/train-fare?distance=5&passengerType=senior&peakHour=true", "Invalid passenger type"},
	}

	for _, test := range tests {
		t.Run(test.target, func(t *testing.T) {
			status, body := get(t, test.target)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, test.error, body["error"])
		})
	}
}

func TestServiceFareInfo(t *testing.T) {
	status, body := get(t, "/fare-info")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 40.2, body["maxDistance"])
	assert.Equal(t, float64(119), body["minFare"])
	assert.Equal(t, float64(307), body["maxFare"])
}
