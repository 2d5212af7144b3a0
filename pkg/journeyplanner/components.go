package journeyplanner

import (
	"context"

	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

type DirectionsGateway interface {
	GetDirections(ctx context.Context, session collaborator.Session, origin string, destination string) (*ctdf.Directions, error)
}

type StopResolver interface {
	Resolve(ctx context.Context, routes []ctdf.Route) ([]ctdf.StopMatch, error)
}

type FareCalculator interface {
	CalculateFares(ctx context.Context, session collaborator.Session, routes []ctdf.Route, passengerType ctdf.PassengerType, peakHour bool) (*ctdf.FareCosts, error)
}

type EmissionsCalculator interface {
	CalculateEmissions(ctx context.Context, session collaborator.Session, routes []ctdf.Route) (*ctdf.Emissions, error)
}

type ArrivalTracker interface {
	Track(ctx context.Context, session collaborator.Session, matches []ctdf.StopMatch) ([]ctdf.ArrivalResult, error)
}
