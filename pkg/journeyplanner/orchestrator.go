package journeyplanner

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"github.com/travigo/journeyplanner/pkg/bustracking"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/config"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"github.com/travigo/journeyplanner/pkg/directions"
	"github.com/travigo/journeyplanner/pkg/emissions"
	"github.com/travigo/journeyplanner/pkg/fares"
	"github.com/travigo/journeyplanner/pkg/stoplookup"
)

type State string

const (
	StateInit              State = "INIT"
	StateValidationFailed  State = "VALIDATION_FAILED"
	StateDirectionsPending State = "DIRECTIONS_PENDING"
	StateAborted           State = "ABORTED"
	StateParallelPending   State = "PARALLEL_PENDING"
	StateAggregated        State = "AGGREGATED"
)

const NoTrackableServicesMessage = "No bus or train services found for tracking"

// Outcome is the terminal state of one journey request. Plan is only set when the
// request aggregated without any branch error.
type Outcome struct {
	State State
	Plan  *ctdf.CompositeJourneyPlan
	Err   *collaborator.Error

	// TrackingSkipped is set when stop lookup failed and arrivals were never queried
	TrackingSkipped bool
}

type Orchestrator struct {
	Sessions collaborator.SessionSource

	Directions DirectionsGateway
	Stops      StopResolver
	Fares      FareCalculator
	Emissions  EmissionsCalculator
	Tracker    ArrivalTracker
}

func NewOrchestrator(cfg config.AppConfig, dataset stoplookup.Dataset) *Orchestrator {
	return &Orchestrator{
		Sessions:   collaborator.NewPool(cfg.Collaborators.Endpoints(), cfg.Collaborators.Timeout),
		Directions: directions.Gateway{},
		Stops:      &stoplookup.Resolver{Dataset: dataset},
		Fares:      fares.Calculator{},
		Emissions:  emissions.Calculator{},
		Tracker:    &bustracking.Tracker{MaxConcurrency: cfg.Tracking.MaxConcurrency},
	}
}

type trackingBranch struct {
	tracking ctdf.BusTracking
	skipped  bool
	err      error
}

type fareBranch struct {
	fareCosts *ctdf.FareCosts
	err       error
}

type emissionsBranch struct {
	emissions *ctdf.Emissions
	err       error
}

func (o *Orchestrator) Plan(ctx context.Context, request JourneyRequest) *Outcome {
	logger := log.With().
		Str("origin", request.Origin).
		Str("destination", request.Destination).
		Logger()

	transition := func(state State) {
		logger.Debug().Str("state", string(state)).Msg("Journey plan state transition")
	}

	transition(StateInit)
	if err := request.Validate(); err != nil {
		transition(StateValidationFailed)
		return &Outcome{State: StateValidationFailed, Err: collaborator.AsError(err)}
	}

	session := o.Sessions.AcquireSession()
	defer session.Release()

	transition(StateDirectionsPending)

	var journeyDirections *ctdf.Directions
	err := guard(func() error {
		var err error
		journeyDirections, err = o.Directions.GetDirections(ctx, session, request.Origin, request.Destination)
		return err
	})
	if err != nil {
		transition(StateAborted)
		logger.Error().Err(err).Msg("Failed to get directions")
		return &Outcome{State: StateAborted, Err: collaborator.AsError(err)}
	}

	transition(StateParallelPending)

	routes := journeyDirections.Routes

	var tracking trackingBranch
	var fare fareBranch
	var emission emissionsBranch

	wg := conc.NewWaitGroup()
	wg.Go(func() {
		tracking = o.trackStops(ctx, session, routes)
	})
	wg.Go(func() {
		fare.err = guard(func() error {
			var err error
			fare.fareCosts, err = o.Fares.CalculateFares(ctx, session, routes, request.PassengerType, request.PeakHour)
			return err
		})
	})
	wg.Go(func() {
		emission.err = guard(func() error {
			var err error
			emission.emissions, err = o.Emissions.CalculateEmissions(ctx, session, routes)
			return err
		})
	})
	wg.Wait()

	transition(StateAggregated)

	for _, branchErr := range []error{tracking.err, fare.err, emission.err} {
		if branchErr != nil {
			logger.Error().Err(branchErr).Msg("Journey plan branch failed")
			return &Outcome{
				State:           StateAggregated,
				Err:             collaborator.AsError(branchErr),
				TrackingSkipped: tracking.skipped,
			}
		}
	}

	logger.Info().
		Int("routes", len(routes)).
		Int64("collaborator_calls", session.Calls()).
		Msg("Planned journey")

	return &Outcome{
		State: StateAggregated,
		Plan: &ctdf.CompositeJourneyPlan{
			Directions:  *journeyDirections,
			FareCosts:   *fare.fareCosts,
			Emissions:   *emission.emissions,
			BusTracking: tracking.tracking,
		},
	}
}

// trackStops resolves stops and then tracks them. Tracking is skipped when stop
// resolution fails and is empty when it finds nothing to track.
func (o *Orchestrator) trackStops(ctx context.Context, session collaborator.Session, routes []ctdf.Route) trackingBranch {
	var matches []ctdf.StopMatch
	err := guard(func() error {
		var err error
		matches, err = o.Stops.Resolve(ctx, routes)
		return err
	})
	if err != nil {
		log.Debug().Err(err).Msg("Tracking skipped due to stop lookup failure")
		return trackingBranch{skipped: true, err: err}
	}

	if len(matches) == 0 {
		return trackingBranch{
			tracking: ctdf.BusTracking{
				Results: []ctdf.ArrivalResult{},
				Message: NoTrackableServicesMessage,
			},
		}
	}

	var results []ctdf.ArrivalResult
	err = guard(func() error {
		var err error
		results, err = o.Tracker.Track(ctx, session, matches)
		return err
	})
	if err != nil {
		return trackingBranch{err: err}
	}

	return trackingBranch{
		tracking: ctdf.BusTracking{Results: results},
	}
}

// guard runs f, a panic inside it comes back as an UnexpectedError
func guard(f func() error) error {
	var err error

	var catcher panics.Catcher
	catcher.Try(func() { err = f() })

	if recovered := catcher.Recovered(); recovered != nil {
		return collaborator.NewUnexpectedError(recovered.AsError())
	}

	return err
}
