package directions

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/travigo/journeyplanner/pkg/config"
	"github.com/travigo/journeyplanner/pkg/http_server"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "directions",
		Usage: "Directions collaborator backed by the Google Directions API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the directions service",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":5001",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					if cfg.Google.APIKey == "" {
						return errors.New("Google Maps API Key not found. Please set the TRAVIGO_GOOGLE_MAPS_API_KEY environment variable.")
					}

					service := &Service{
						APIKey:  cfg.Google.APIKey,
						BaseURL: cfg.Google.BaseURL,
						Client:  &http.Client{Timeout: cfg.Collaborators.Timeout},
					}

					webApp := http_server.NewApp("directions")
					service.Router(webApp)

					return webApp.Listen(c.String("listen"))
				},
			},
		},
	}
}
