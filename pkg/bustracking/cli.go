package bustracking

import (
	"github.com/pkg/errors"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/config"
	"github.com/travigo/journeyplanner/pkg/http_server"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "bus-tracking",
		Usage: "Live bus arrival collaborator backed by LTA DataMall",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the bus tracking service",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":5030",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					if cfg.Collaborators.BusArrival.AccountKey == "" {
						return errors.New("LTA API Key not found. Please set the TRAVIGO_LTA_API_KEY environment variable.")
					}

					service := &Service{
						Pool:    collaborator.NewPool(cfg.Collaborators.Endpoints(), cfg.Collaborators.Timeout),
						Tracker: &Tracker{MaxConcurrency: cfg.Tracking.MaxConcurrency},
					}

					webApp := http_server.NewApp("bus-tracking")
					service.Router(webApp)

					return webApp.Listen(c.String("listen"))
				},
			},
		},
	}
}
