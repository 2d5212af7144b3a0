package emissions

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"github.com/travigo/journeyplanner/pkg/util"
)

// Factors are kg of CO2 emitted per km travelled
var Factors = map[ctdf.EmissionMode]float64{
	ctdf.EmissionModeCar:   0.292,
	ctdf.EmissionModeBus:   0.181,
	ctdf.EmissionModeTrain: 0.041,
}

const precision = 4

var ErrInvalidMode = errors.New("Invalid or missing 'mode' parameter")
var ErrInvalidDistance = errors.New("'distance' must be a positive number")

func ParseMode(value string) (ctdf.EmissionMode, error) {
	mode := ctdf.EmissionMode(strings.ToLower(strings.TrimSpace(value)))

	if _, exists := Factors[mode]; !exists {
		return "", ErrInvalidMode
	}

	return mode, nil
}

// Estimate returns the emissions of one segment rounded to 4 decimal places
func Estimate(mode ctdf.EmissionMode, distanceKM float64) (*ctdf.EmissionLine, error) {
	factor, exists := Factors[mode]
	if !exists {
		return nil, ErrInvalidMode
	}
	if !(distanceKM > 0) {
		return nil, ErrInvalidDistance
	}

	return &ctdf.EmissionLine{
		Mode:          mode,
		DistanceKM:    distanceKM,
		EmissionKgCO2: util.RoundTo(factor*distanceKM, precision),
	}, nil
}

// StepMode picks the emission mode of a step. Steps that emit nothing, walking,
// cycling or zero distance, report false.
func StepMode(step *ctdf.Step) (ctdf.EmissionMode, bool) {
	if step.DistanceKM() <= 0 {
		return "", false
	}

	switch step.Mode() {
	case ctdf.TravelModeDriving:
		return ctdf.EmissionModeCar, true
	case ctdf.TravelModeWalking, ctdf.TravelModeBicycling:
		return "", false
	case ctdf.TravelModeTransit:
		if ctdf.ClassifyVehicleType(step.VehicleType()) == ctdf.TransportTypeRail {
			return ctdf.EmissionModeTrain, true
		}
		return ctdf.EmissionModeBus, true
	default:
		return ctdf.EmissionModeBus, true
	}
}

type estimator func(mode ctdf.EmissionMode, distanceKM float64) (*ctdf.EmissionLine, error)

// routeEmissions walks every step of every route through estimate, stopping at the
// first failure
func routeEmissions(routes []ctdf.Route, estimate estimator) (*ctdf.Emissions, error) {
	emissions := &ctdf.Emissions{
		RouteEmissions: []ctdf.RouteEmissions{},
	}

	for routeIndex, route := range routes {
		summary := ctdf.RouteEmissions{
			RouteIndex: routeIndex,
			Segments:   []ctdf.EmissionLine{},
		}

		total := 0.0

		for _, leg := range route.Legs {
			for _, step := range leg.Steps {
				mode, emits := StepMode(&step)
				if !emits {
					continue
				}

				segment, err := estimate(mode, step.DistanceKM())
				if err != nil {
					return nil, err
				}

				summary.Segments = append(summary.Segments, ctdf.EmissionLine{
					Mode:          mode,
					DistanceKM:    step.DistanceKM(),
					EmissionKgCO2: segment.EmissionKgCO2,
				})
				total += segment.EmissionKgCO2
			}
		}

		summary.TotalEmissions = util.RoundTo(total, precision)
		emissions.RouteEmissions = append(emissions.RouteEmissions, summary)
	}

	return emissions, nil
}
