package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"github.com/travigo/journeyplanner/pkg/journeyplanner"
)

type stubPlanner struct {
	requests []journeyplanner.JourneyRequest
	outcome  *journeyplanner.Outcome
}

func (s *stubPlanner) Plan(ctx context.Context, request journeyplanner.JourneyRequest) *journeyplanner.Outcome {
	s.requests = append(s.requests, request)

	if err := request.Validate(); err != nil {
		return &journeyplanner.Outcome{State: journeyplanner.StateValidationFailed, Err: collaborator.AsError(err)}
	}

	return s.outcome
}

func get(t *testing.T, planner *stubPlanner, target string) (int, map[string]json.RawMessage) {
	resp, err := NewApp(planner).Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return resp.StatusCode, body
}

func TestPlanJourneyMissingParameters(t *testing.T) {
	planner := &stubPlanner{}

	status, body := get(t, planner, "/plan_journey?origin=Bugis")

	assert.Equal(t, 400, status)
	assert.JSONEq(t, `"Both origin and destination parameters are required"`, string(body["error"]))
	assert.JSONEq(t, `"ValidationError"`, string(body["kind"]))
}

func TestPlanJourneyFailure(t *testing.T) {
	planner := &stubPlanner{
		outcome: &journeyplanner.Outcome{
			State: journeyplanner.StateAborted,
			Err:   collaborator.NewUpstreamFailure(collaborator.ServiceDirections, nil, "Directions API error: denied"),
		},
	}

	status, body := get(t, planner, "/plan_journey?origin=Bugis&destination=Changi")

	assert.Equal(t, 500, status)
	assert.JSONEq(t, `"Directions API error: denied"`, string(body["error"]))
	assert.JSONEq(t, `"UpstreamFailure"`, string(body["kind"]))
}

func TestPlanJourneySuccess(t *testing.T) {
	var directions ctdf.Directions
	require.NoError(t, json.Unmarshal([]byte(`{"status": "OK", "routes": [], "geocoded_waypoints": []}`), &directions))

	planner := &stubPlanner{
		outcome: &journeyplanner.Outcome{
			State: journeyplanner.StateAggregated,
			Plan: &ctdf.CompositeJourneyPlan{
				Directions: directions,
				FareCosts:  ctdf.FareCosts{AllRoutes: []ctdf.RouteFare{}, Currency: ctdf.FareCurrency},
				Emissions:  ctdf.Emissions{RouteEmissions: []ctdf.RouteEmissions{}},
				BusTracking: ctdf.BusTracking{
					Results: []ctdf.ArrivalResult{},
					Message: journeyplanner.NoTrackableServicesMessage,
				},
			},
		},
	}

	status, body := get(t, planner, "/plan_journey?origin=Bugis&destination=Changi&passengerType=Student&peakHour=1")

	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"status": "OK", "routes": [], "geocoded_waypoints": []}`, string(body["directions"]))
	assert.JSONEq(t, `{"all_routes": [], "currency": "cents", "parameters_used": {"passengerType": "", "peakHour": false}}`, string(body["fareCosts"]))
	assert.JSONEq(t, `{"routeEmissions": []}`, string(body["emissions"]))
	assert.JSONEq(t, `{"results": [], "message": "No bus or train services found for tracking"}`, string(body["busTracking"]))

	require.Len(t, planner.requests, 1)
	assert.Equal(t, journeyplanner.JourneyRequest{
		Origin:        "Bugis",
		Destination:   "Changi",
		PassengerType: ctdf.PassengerTypeStudent,
		PeakHour:      true,
	}, planner.requests[0])
}

func TestVersionAndHealth(t *testing.T) {
	status, body := get(t, &stubPlanner{}, "/version")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `"v0.1"`, string(body["version"]))

	status, body = get(t, &stubPlanner{}, "/health")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `"OK"`, string(body["status"]))
}

func TestUnknownRoute(t *testing.T) {
	status, body := get(t, &stubPlanner{}, "/unknown")

	assert.Equal(t, 404, status)
	assert.JSONEq(t, `"Endpoint not found. Please check API documentation."`, string(body["error"]))
}
