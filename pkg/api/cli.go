package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/journeyplanner/pkg/config"
	"github.com/travigo/journeyplanner/pkg/journeyplanner"
	"github.com/travigo/journeyplanner/pkg/redis_client"
	"github.com/travigo/journeyplanner/pkg/stoplookup"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the public journey planning web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides server.listen",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					client, err := redis_client.Connect(c.Context, cfg.Redis)
					if err != nil {
						return err
					}
					defer client.Close()

					orchestrator := journeyplanner.NewOrchestrator(cfg, stoplookup.NewRedisDataset(client))

					listen := cfg.Server.Listen
					if c.IsSet("listen") {
						listen = c.String("listen")
					}

					log.Info().Str("listen", listen).Msg("Starting journey planner web API")

					return SetupServer(listen, orchestrator)
				},
			},
		},
	}
}
