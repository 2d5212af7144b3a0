package bustracking

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

const MissingServiceMessage = "Bus stop code and service number are required"

// Tracker looks up live bus arrivals for stop matches. Results come back in the
// order of the matches they were built from.
type Tracker struct {
	// MaxConcurrency caps in flight arrival queries, zero uses GOMAXPROCS
	MaxConcurrency int
}

func (t *Tracker) Track(ctx context.Context, session collaborator.Session, matches []ctdf.StopMatch) ([]ctdf.ArrivalResult, error) {
	mapper := iter.Mapper[ctdf.StopMatch, ctdf.ArrivalResult]{
		MaxGoroutines: t.MaxConcurrency,
	}

	results := mapper.Map(matches, func(match *ctdf.StopMatch) ctdf.ArrivalResult {
		if match.IsTrain() {
			return ctdf.ArrivalResult{
				TransitType: ctdf.ArrivalTransitTypeTrain,
				TrainLine:   match.TrainLine,
				Message:     ctdf.TrainArrivalUnavailableMessage,
			}
		}

		return t.busArrival(ctx, session, match)
	})

	if err := ctx.Err(); err != nil {
		return nil, collaborator.NewUpstreamFailure(collaborator.ServiceBusArrival, err, "Bus tracking interrupted: %s", err)
	}

	return results, nil
}

func (t *Tracker) busArrival(ctx context.Context, session collaborator.Session, match *ctdf.StopMatch) ctdf.ArrivalResult {
	result := ctdf.ArrivalResult{
		TransitType: ctdf.ArrivalTransitTypeBus,
		BusNumber:   match.BusNumber,
		BusStopCode: match.BusStopCode,
		Description: match.Description,
	}

	if !match.IsBus() {
		result.Error = &ctdf.ItemError{Message: MissingServiceMessage}
		return result
	}

	var arrival ctdf.BusArrival
	err := session.Get(ctx, collaborator.ServiceBusArrival, url.Values{
		"BusStopCode": {match.BusStopCode},
		"ServiceNo":   {match.BusNumber},
	}, &arrival)

	if err != nil {
		log.Debug().Err(err).
			Str("bus", match.BusNumber).
			Str("stop", match.BusStopCode).
			Msg("Bus arrival query failed")

		result.Error = &ctdf.ItemError{
			Message:    fmt.Sprintf("Failed to fetch data for bus %s at stop %s", match.BusNumber, match.BusStopCode),
			StatusCode: collaborator.AsError(err).StatusCode,
		}
		return result
	}

	result.ArrivalData = &arrival
	return result
}
