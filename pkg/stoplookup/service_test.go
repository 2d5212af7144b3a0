package stoplookup

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"github.com/travigo/journeyplanner/pkg/http_server"
)

func newTestApp(dataset Dataset) *fiber.App {
	app := http_server.NewApp("bus-stop-lookup-test")
	service := &Service{Resolver: &Resolver{Dataset: dataset}}
	service.Router(app)
	return app
}

func postLookup(t *testing.T, app *fiber.App, body string) (int, map[string]json.RawMessage) {
	req := httptest.NewRequest("POST", "/bus_stop_lookup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp.StatusCode, decoded
}

func TestServiceLookup(t *testing.T) {
	app := newTestApp(StaticDataset(SampleStops))

	status, body := postLookup(t, app, `{"routes": [{"legs": [{"steps": [{"travel_mode": "TRANSIT", "distance": {"value": 1000}, "transit_details": {"line": {"name": "12e", "vehicle": {"type": "BUS"}}, "departure_stop": {"name": "Victoria St", "location": {"lat": 1.2968, "lng": 103.8525}}}}]}]}]}`)

	assert.Equal(t, fiber.StatusOK, status)

	var matches []ctdf.StopMatch
	require.NoError(t, json.Unmarshal(body["transit_details"], &matches))
	assert.Equal(t, []ctdf.StopMatch{{BusStopCode: "01012", Description: "Victoria St", BusNumber: "12e"}}, matches)
}

func TestServiceNoTransit(t *testing.T) {
	app := newTestApp(StaticDataset(SampleStops))

	status, body := postLookup(t, app, `{"routes": [{"legs": [{"steps": [{"travel_mode": "WALKING", "distance": {"value": 1000}}]}]}]}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `"No public transport steps found"`, string(body["error"]))
}

func TestServiceDatasetMissing(t *testing.T) {
	app := newTestApp(StaticDataset(nil))

	status, _ := postLookup(t, app, `{"routes": [{"legs": [{"steps": [{"travel_mode": "TRANSIT", "distance": {"value": 1000}, "transit_details": {"line": {"name": "12e", "vehicle": {"type": "BUS"}}, "departure_stop": {"name": "Victoria St", "location": {"lat": 1.2968, "lng": 103.8525}}}}]}]}]}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
}
