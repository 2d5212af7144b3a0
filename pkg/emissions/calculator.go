package emissions

import (
	"context"
	"net/url"
	"strconv"

	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"github.com/travigo/journeyplanner/pkg/util"
)

// Calculator asks the emissions collaborator for every emitting step of every route
type Calculator struct{}

const NoRoutesMessage = "No routes found in directions data"

// CalculateEmissions fails with an UpstreamFailure when the directions carried no routes
func (c Calculator) CalculateEmissions(ctx context.Context, session collaborator.Session, routes []ctdf.Route) (*ctdf.Emissions, error) {
	if len(routes) == 0 {
		return nil, collaborator.NewUpstreamFailure(collaborator.ServiceEmissions, nil, NoRoutesMessage)
	}

	return routeEmissions(routes, func(mode ctdf.EmissionMode, distanceKM float64) (*ctdf.EmissionLine, error) {
		var segment ctdf.EmissionLine

		err := session.Get(ctx, collaborator.ServiceEmissions, url.Values{
			"mode":     {string(mode)},
			"distance": {strconv.FormatFloat(distanceKM, 'f', -1, 64)},
		}, &segment)
		if err != nil {
			return nil, err
		}

		segment.EmissionKgCO2 = util.RoundTo(segment.EmissionKgCO2, precision)

		return &segment, nil
	})
}
