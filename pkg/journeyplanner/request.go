package journeyplanner

import (
	"strings"

	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"github.com/travigo/journeyplanner/pkg/fares"
	"golang.org/x/exp/slices"
)

type JourneyRequest struct {
	Origin        string
	Destination   string
	PassengerType ctdf.PassengerType
	PeakHour      bool
}

// ParseJourneyRequest applies the query parameter defaults, passenger type falls back
// to adult and peak hour to false. Nothing is rejected here, see Validate.
func ParseJourneyRequest(origin string, destination string, passengerType string, peakHour string) JourneyRequest {
	request := JourneyRequest{
		Origin:        strings.TrimSpace(origin),
		Destination:   strings.TrimSpace(destination),
		PassengerType: ctdf.PassengerType(strings.ToLower(strings.TrimSpace(passengerType))),
		PeakHour:      fares.ParsePeakHour(peakHour),
	}

	if request.PassengerType == "" {
		request.PassengerType = ctdf.PassengerTypeAdult
	}

	return request
}

func (r *JourneyRequest) Validate() error {
	if r.Origin == "" || r.Destination == "" {
		return collaborator.NewValidationError("Both origin and destination parameters are required")
	}

	if !slices.Contains(ctdf.PassengerTypes, r.PassengerType) {
		return collaborator.NewValidationError("Invalid passenger type %q, supported types are adult and student", r.PassengerType)
	}

	return nil
}
