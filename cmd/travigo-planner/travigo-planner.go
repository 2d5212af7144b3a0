package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/journeyplanner/pkg/api"
	"github.com/travigo/journeyplanner/pkg/bustracking"
	"github.com/travigo/journeyplanner/pkg/config"
	"github.com/travigo/journeyplanner/pkg/directions"
	"github.com/travigo/journeyplanner/pkg/emissions"
	"github.com/travigo/journeyplanner/pkg/fares"
	"github.com/travigo/journeyplanner/pkg/journeyplanner"
	"github.com/travigo/journeyplanner/pkg/stoplookup"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("TRAVIGO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRAVIGO_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "travigo-planner",
		Description: "Single binary for the journey planner and its collaborator services",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "path to the YAML configuration file",
			},
		},

		Commands: []*cli.Command{
			api.RegisterCLI(),
			journeyplanner.RegisterCLI(),
			directions.RegisterCLI(),
			stoplookup.RegisterCLI(),
			fares.RegisterCLI(),
			emissions.RegisterCLI(),
			bustracking.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
