package journeyplanner

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/config"
	"github.com/travigo/journeyplanner/pkg/redis_client"
	"github.com/travigo/journeyplanner/pkg/stoplookup"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Run the journey planner outside of the web API",
		Subcommands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "plan a single journey and print the composite plan",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "origin",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "destination",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "passenger-type",
						Value: "adult",
					},
					&cli.BoolFlag{
						Name: "peak-hour",
					},
					&cli.StringFlag{
						Name:  "stops-file",
						Usage: "read bus stops from a JSON or CSV file instead of Redis",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "json or go",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					var dataset stoplookup.Dataset
					if path := c.String("stops-file"); path != "" {
						file, err := os.Open(path)
						if err != nil {
							return errors.Wrap(err, "open stops file")
						}
						defer file.Close()

						stops, err := stoplookup.ReadStops(file, stoplookup.FormatFromPath(path))
						if err != nil {
							return err
						}
						dataset = stoplookup.StaticDataset(stops)
					} else {
						client, err := redis_client.Connect(c.Context, cfg.Redis)
						if err != nil {
							return err
						}
						defer client.Close()

						dataset = stoplookup.NewRedisDataset(client)
					}

					request := ParseJourneyRequest(c.String("origin"), c.String("destination"), c.String("passenger-type"), fmt.Sprint(c.Bool("peak-hour")))

					outcome := NewOrchestrator(cfg, dataset).Plan(c.Context, request)
					if outcome.Err != nil {
						log.Error().Str("kind", string(outcome.Err.Kind)).Str("state", string(outcome.State)).Msg("Journey planning failed")
						return exitError(outcome.Err)
					}

					switch c.String("format") {
					case "go":
						pretty.Println(outcome.Plan)
					default:
						encoded, err := json.MarshalIndent(outcome.Plan, "", "  ")
						if err != nil {
							return errors.Wrap(err, "encode plan")
						}
						fmt.Println(string(encoded))
					}

					return nil
				},
			},
		},
	}
}

// exitError maps request validation failures to exit code 2, everything else to 1
func exitError(err *collaborator.Error) error {
	if collaborator.IsKind(err, collaborator.ErrorKindValidation) {
		return cli.Exit(err.Error(), 2)
	}

	return cli.Exit(err.Error(), 1)
}
