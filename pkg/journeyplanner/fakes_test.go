package journeyplanner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

type fakeDirections struct {
	calls      atomic.Int64
	directions *ctdf.Directions
	err        error
}

func (f *fakeDirections) GetDirections(ctx context.Context, session collaborator.Session, origin string, destination string) (*ctdf.Directions, error) {
	f.calls.Add(1)
	return f.directions, f.err
}

type fakeStops struct {
	calls   atomic.Int64
	matches []ctdf.StopMatch
	err     error
}

func (f *fakeStops) Resolve(ctx context.Context, routes []ctdf.Route) ([]ctdf.StopMatch, error) {
	f.calls.Add(1)
	return f.matches, f.err
}

// rendezvous makes one branch wait until another branch has started
type rendezvous struct {
	started chan struct{}
	peer    chan struct{}
}

func newRendezvousPair() (*rendezvous, *rendezvous) {
	fares := make(chan struct{})
	emissions := make(chan struct{})
	return &rendezvous{started: fares, peer: emissions}, &rendezvous{started: emissions, peer: fares}
}

func (r *rendezvous) meet(timeout time.Duration) error {
	if r == nil {
		return nil
	}

	close(r.started)
	select {
	case <-r.peer:
		return nil
	case <-time.After(timeout):
		return collaborator.NewUnexpectedError(errors.New("peer branch never started"))
	}
}

type fakeFares struct {
	calls atomic.Int64
	err   error
	wait  *rendezvous
}

func (f *fakeFares) CalculateFares(ctx context.Context, session collaborator.Session, routes []ctdf.Route, passengerType ctdf.PassengerType, peakHour bool) (*ctdf.FareCosts, error) {
	f.calls.Add(1)
	if err := f.wait.meet(2 * time.Second); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}

	return &ctdf.FareCosts{
		AllRoutes:      []ctdf.RouteFare{{TotalFare: 200, FareBreakdown: []ctdf.FareLine{}}},
		Currency:       ctdf.FareCurrency,
		ParametersUsed: ctdf.FareParameters{PassengerType: passengerType, PeakHour: peakHour},
	}, nil
}

type fakeEmissions struct {
	calls   atomic.Int64
	err     error
	explode bool
	wait    *rendezvous
}

func (f *fakeEmissions) CalculateEmissions(ctx context.Context, session collaborator.Session, routes []ctdf.Route) (*ctdf.Emissions, error) {
	f.calls.Add(1)
	if err := f.wait.meet(2 * time.Second); err != nil {
		return nil, err
	}
	if f.explode {
		panic("emissions exploded")
	}
	if f.err != nil {
		return nil, f.err
	}

	return &ctdf.Emissions{RouteEmissions: []ctdf.RouteEmissions{{RouteIndex: 0, TotalEmissions: 0.905, Segments: []ctdf.EmissionLine{}}}}, nil
}

type fakeTracker struct {
	calls atomic.Int64
}

func (f *fakeTracker) Track(ctx context.Context, session collaborator.Session, matches []ctdf.StopMatch) ([]ctdf.ArrivalResult, error) {
	f.calls.Add(1)

	results := []ctdf.ArrivalResult{}
	for _, match := range matches {
		results = append(results, ctdf.ArrivalResult{TransitType: ctdf.ArrivalTransitTypeBus, BusNumber: match.BusNumber})
	}
	return results, nil
}

// recordingSessions hands out real pool sessions and keeps them for inspection
type recordingSessions struct {
	pool     *collaborator.Pool
	mutex    sync.Mutex
	sessions []*collaborator.HTTPSession
}

func (r *recordingSessions) AcquireSession() collaborator.ScopedSession {
	session := r.pool.Acquire()

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.sessions = append(r.sessions, session)

	return session
}

func (r *recordingSessions) acquired() []*collaborator.HTTPSession {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]*collaborator.HTTPSession{}, r.sessions...)
}

type fakes struct {
	sessions   *recordingSessions
	directions *fakeDirections
	stops      *fakeStops
	fares      *fakeFares
	emissions  *fakeEmissions
	tracker    *fakeTracker
}

func newFakes() *fakes {
	return &fakes{
		sessions:   &recordingSessions{pool: collaborator.NewPool(collaborator.Endpoints{}, 0)},
		directions: &fakeDirections{
			directions: &ctdf.Directions{Status: "OK", Routes: []ctdf.Route{{Summary: "PIE"}}},
		},
		stops: &fakeStops{
			matches: []ctdf.StopMatch{{BusStopCode: "01012", Description: "Hotel Grand Pacific", BusNumber: "12e"}},
		},
		fares:     &fakeFares{},
		emissions: &fakeEmissions{},
		tracker:   &fakeTracker{},
	}
}

func (f *fakes) orchestrator() *Orchestrator {
	return &Orchestrator{
		Sessions:   f.sessions,
		Directions: f.directions,
		Stops:      f.stops,
		Fares:      f.fares,
		Emissions:  f.emissions,
		Tracker:    f.tracker,
	}
}

func (f *fakes) totalCalls() int64 {
	return f.directions.calls.Load() + f.stops.calls.Load() + f.fares.calls.Load() + f.emissions.calls.Load() + f.tracker.calls.Load()
}
