package stoplookup

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"github.com/travigo/journeyplanner/pkg/util"
)

// Resolver matches the first transit step of every leg to a physical stop
type Resolver struct {
	Dataset Dataset
}

func (r *Resolver) Resolve(ctx context.Context, routes []ctdf.Route) ([]ctdf.StopMatch, error) {
	matches := []ctdf.StopMatch{}

	// Loaded on the first bus step, routes without buses never touch the dataset
	var stops []ctdf.BusStop
	stopsLoaded := false

	for _, route := range routes {
		for _, leg := range route.Legs {
			for _, step := range leg.Steps {
				if step.Mode() != ctdf.TravelModeTransit || step.TransitDetails == nil {
					continue
				}

				transit := step.TransitDetails

				if ctdf.ClassifyVehicleType(transit.Line.Vehicle.Type) != ctdf.TransportTypeBus {
					matches = append(matches, ctdf.StopMatch{
						TrainLine: transit.Line.Name,
					})
					break
				}

				if !stopsLoaded {
					var err error
					stops, err = r.Dataset.Stops(ctx)
					if err != nil {
						return nil, err
					}
					stopsLoaded = true
				}

				busStopCode := ctdf.UnknownBusStopCode
				description := transit.DepartureStop.Name

				if nearest := NearestStop(stops, transit.DepartureStop.Location); nearest != nil {
					busStopCode = nearest.BusStopCode
					if description == "" {
						description = nearest.Description
					}
				} else {
					log.Warn().Msg("No bus stops available for search")
				}

				matches = append(matches, ctdf.StopMatch{
					BusStopCode: busStopCode,
					Description: description,
					BusNumber:   transit.Line.Name,
				})
				break
			}
		}
	}

	return matches, nil
}

// Distance is the great circle distance between two coordinates in kilometres
func Distance(from ctdf.Coordinate, to ctdf.Coordinate) float64 {
	return util.HaversineDistance(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

// NearestStop returns the stop closest to coordinate. Equal distances keep the stop
// that appears first in the dataset.
func NearestStop(stops []ctdf.BusStop, coordinate ctdf.Coordinate) *ctdf.BusStop {
	var nearest *ctdf.BusStop
	nearestDistance := 0.0

	for i := range stops {
		distance := Distance(coordinate, stops[i].Coordinate())

		if nearest == nil || distance < nearestDistance {
			nearest = &stops[i]
			nearestDistance = distance
		}
	}

	return nearest
}
