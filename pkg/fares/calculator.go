package fares

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

// Calculator prices every transit step of every route through the fare collaborators
type Calculator struct{}

func (c Calculator) CalculateFares(ctx context.Context, session collaborator.Session, routes []ctdf.Route, passengerType ctdf.PassengerType, peakHour bool) (*ctdf.FareCosts, error) {
	fareCosts := &ctdf.FareCosts{
		AllRoutes: []ctdf.RouteFare{},
		Currency:  ctdf.FareCurrency,
		ParametersUsed: ctdf.FareParameters{
			PassengerType: passengerType,
			PeakHour:      peakHour,
		},
	}

	for _, route := range routes {
		routeFare := ctdf.RouteFare{
			FareBreakdown: []ctdf.FareLine{},
		}

		for _, leg := range route.Legs {
			for _, step := range leg.Steps {
				if step.Mode() != ctdf.TravelModeTransit {
					continue
				}

				fare, err := c.stepFare(ctx, session, &step, passengerType, peakHour)
				if err != nil {
					return nil, err
				}

				routeFare.TotalFare += fare
				routeFare.FareBreakdown = append(routeFare.FareBreakdown, ctdf.FareLine{
					Mode:          strings.ToUpper(step.VehicleType()),
					ServiceNumber: step.LineName(),
					DistanceKM:    step.DistanceKM(),
					Fare:          fare,
				})
			}
		}

		fareCosts.AllRoutes = append(fareCosts.AllRoutes, routeFare)
	}

	return fareCosts, nil
}

func (c Calculator) stepFare(ctx context.Context, session collaborator.Session, step *ctdf.Step, passengerType ctdf.PassengerType, peakHour bool) (int, error) {
	distance := strconv.FormatFloat(step.DistanceKM(), 'f', -1, 64)

	var quote ctdf.FareQuote

	switch ctdf.ClassifyVehicleType(step.VehicleType()) {
	case ctdf.TransportTypeBus:
		err := session.Get(ctx, collaborator.ServiceBusFare, url.Values{
			"distance":      {distance},
			"passengerType": {string(passengerType)},
			"busService":    {step.LineName()},
		}, &quote)
		if err != nil {
			return 0, err
		}
	case ctdf.TransportTypeRail:
		err := session.Get(ctx, collaborator.ServiceTrainFare, url.Values{
			"distance":      {distance},
			"passengerType": {string(passengerType)},
			"peakHour":      {strconv.FormatBool(peakHour)},
		}, &quote)
		if err != nil {
			return 0, err
		}
	default:
		return 0, nil
	}

	return quote.Fare, nil
}
