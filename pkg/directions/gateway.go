package directions

import (
	"context"
	"net/url"

	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

// Gateway fetches routes between two places from the directions collaborator
type Gateway struct{}

func (g Gateway) GetDirections(ctx context.Context, session collaborator.Session, origin string, destination string) (*ctdf.Directions, error) {
	params := url.Values{
		"origin":      {origin},
		"destination": {destination},
	}

	var directions ctdf.Directions
	if err := session.Get(ctx, collaborator.ServiceDirections, params, &directions); err != nil {
		return nil, err
	}

	return &directions, nil
}
