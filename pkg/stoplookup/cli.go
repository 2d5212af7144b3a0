package stoplookup

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/journeyplanner/pkg/config"
	"github.com/travigo/journeyplanner/pkg/http_server"
	"github.com/travigo/journeyplanner/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stops",
		Usage: "Bus stop dataset and nearest stop lookup",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the bus stop lookup service",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":5002",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					client, err := connect(c)
					if err != nil {
						return err
					}
					defer client.Close()

					dataset := NewRedisDataset(client)
					if err := SeedSampleStops(c.Context, dataset); err != nil {
						return err
					}

					service := &Service{
						Resolver: &Resolver{Dataset: dataset},
					}

					webApp := http_server.NewApp("bus-stop-lookup")
					service.Router(webApp)

					return webApp.Listen(c.String("listen"))
				},
			},
			{
				Name:  "import",
				Usage: "replace the bus stop dataset with the contents of a JSON or CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path to the dataset file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "json or csv, detected from the file extension when unset",
					},
				},
				Action: func(c *cli.Context) error {
					client, err := connect(c)
					if err != nil {
						return err
					}
					defer client.Close()

					path := c.String("file")
					format := Format(c.String("format"))
					if format == "" {
						format = FormatFromPath(path)
					}

					file, err := os.Open(path)
					if err != nil {
						return errors.Wrap(err, "open dataset")
					}
					defer file.Close()

					stops, err := ReadStops(file, format)
					if err != nil {
						return err
					}

					if err := NewRedisDataset(client).Store(c.Context, stops); err != nil {
						return err
					}

					log.Info().Int("stops", len(stops)).Str("file", path).Msg("Imported bus stop dataset")

					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "load the sample bus stops when no dataset exists",
				Action: func(c *cli.Context) error {
					client, err := connect(c)
					if err != nil {
						return err
					}
					defer client.Close()

					return SeedSampleStops(c.Context, NewRedisDataset(client))
				},
			},
		},
	}
}

func connect(c *cli.Context) (*redis.Client, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	return redis_client.Connect(c.Context, cfg.Redis)
}

// SeedSampleStops stores SampleStops only when no dataset has been loaded yet
func SeedSampleStops(ctx context.Context, dataset *RedisDataset) error {
	loaded, err := dataset.Loaded(ctx)
	if err != nil {
		return err
	}

	if loaded {
		log.Info().Msg("Bus stops already exist in Redis")
		return nil
	}

	log.Info().Int("stops", len(SampleStops)).Msg("Loading sample bus stops into Redis")

	return dataset.Store(ctx, SampleStops)
}
