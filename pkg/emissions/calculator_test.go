package emissions

import (
	"context"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

// localSession answers emissions requests with Estimate
type localSession struct {
	calls []url.Values
	fail  bool
}

func (s *localSession) Get(ctx context.Context, service collaborator.Service, params url.Values, out any) error {
	s.calls = append(s.calls, params)

	if s.fail {
		return collaborator.NewUpstreamFailure(service, nil, "Emissions API error: down")
	}

	distance, _ := strconv.ParseFloat(params.Get("distance"), 64)
	segment, err := Estimate(ctdf.EmissionMode(params.Get("mode")), distance)
	if err != nil {
		return err
	}

	*out.(*ctdf.EmissionLine) = *segment
	return nil
}

func transitStep(vehicleType string, meters int) ctdf.Step {
	return ctdf.Step{
		TravelMode: "TRANSIT",
		Distance:   ctdf.Distance{Value: meters},
		TransitDetails: &ctdf.TransitDetails{
			Line: ctdf.TransitLine{
				Name:    "line",
				Vehicle: ctdf.TransitVehicle{Type: vehicleType},
			},
		},
	}
}

func TestCalculateEmissions(t *testing.T) {
	routes := []ctdf.Route{
		{Legs: []ctdf.Leg{{Steps: []ctdf.Step{
			{TravelMode: "WALKING", Distance: ctdf.Distance{Value: 800}},
			transitStep("BUS", 5000),
		}}}},
		{Legs: []ctdf.Leg{{Steps: []ctdf.Step{
			{TravelMode: "DRIVING", Distance: ctdf.Distance{Value: 10000}},
		}}}},
	}

	session := &localSession{}
	emissions, err := Calculator{}.CalculateEmissions(context.Background(), session, routes)

	require.NoError(t, err)
	assert.Equal(t, &ctdf.Emissions{
		RouteEmissions: []ctdf.RouteEmissions{
			{
				RouteIndex:     0,
				TotalEmissions: 0.905,
				Segments:       []ctdf.EmissionLine{{Mode: ctdf.EmissionModeBus, DistanceKM: 5, EmissionKgCO2: 0.905}},
			},
			{
				RouteIndex:     1,
				TotalEmissions: 2.92,
				Segments:       []ctdf.EmissionLine{{Mode: ctdf.EmissionModeCar, DistanceKM: 10, EmissionKgCO2: 2.92}},
			},
		},
	}, emissions)

	require.Len(t, session.calls, 2)
	assert.Equal(t, url.Values{"mode": {"bus"}, "distance": {"5"}}, session.calls[0])
}

func TestCalculateEmissionsWalkingOnly(t *testing.T) {
	routes := []ctdf.Route{
		{Legs: []ctdf.Leg{{Steps: []ctdf.Step{{TravelMode: "WALKING", Distance: ctdf.Distance{Value: 50000}}}}}},
	}

	session := &localSession{}
	emissions, err := Calculator{}.CalculateEmissions(context.Background(), session, routes)

	require.NoError(t, err)
	assert.Empty(t, session.calls)
	assert.Empty(t, emissions.RouteEmissions[0].Segments)
	assert.Equal(t, 0.0, emissions.RouteEmissions[0].TotalEmissions)
}

func TestCalculateEmissionsAbortsOnFailure(t *testing.T) {
	routes := []ctdf.Route{
		{Legs: []ctdf.Leg{{Steps: []ctdf.Step{transitStep("BUS", 1000), transitStep("SUBWAY", 1000)}}}},
	}

	session := &localSession{fail: true}
	emissions, err := Calculator{}.CalculateEmissions(context.Background(), session, routes)

	assert.Nil(t, emissions)
	assert.True(t, collaborator.IsKind(err, collaborator.ErrorKindUpstreamFailure))
	assert.Len(t, session.calls, 1)
}

func TestCalculateEmissionsNoRoutes(t *testing.T) {
	session := &localSession{}
	emissions, err := Calculator{}.CalculateEmissions(context.Background(), session, []ctdf.Route{})

	assert.Nil(t, emissions)
	assert.True(t, collaborator.IsKind(err, collaborator.ErrorKindUpstreamFailure))
	assert.Equal(t, NoRoutesMessage, err.Error())
	assert.Empty(t, session.calls)
}
