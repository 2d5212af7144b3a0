package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/travigo/journeyplanner/pkg/util"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yml"

func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Collaborators: CollaboratorsConfig{
			Directions: EndpointConfig{URL: "http://directions:5001/directions"},
			BusFare:    EndpointConfig{URL: "http://bus_fare:5003/bus-fare"},
			TrainFare:  EndpointConfig{URL: "http://train_fare:5004/train-fare"},
			Emissions:  EndpointConfig{URL: "http://emission:5005/emission"},
			BusArrival: BusArrivalConfig{URL: "https://datamall2.mytransport.sg/ltaodataservice/v3/BusArrival"},
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		Google: GoogleConfig{
			BaseURL: "https://maps.googleapis.com/maps/api/directions/json",
		},
		Tracking: TrackingConfig{
			MaxConcurrency: 16,
		},
	}
}

// Load reads the YAML file at path over the defaults, applies TRAVIGO_* environment
// overrides and validates the result. A missing file leaves the defaults in place.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}

		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}

	if err := applyEnvironment(&cfg, util.GetEnvironmentVariables()); err != nil {
		return cfg, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, errors.Wrap(err, "validate config")
	}

	return cfg, nil
}

func applyEnvironment(cfg *AppConfig, env map[string]string) error {
	overrides := map[string]*string{
		"TRAVIGO_LISTEN":                &cfg.Server.Listen,
		"TRAVIGO_DIRECTIONS_URL":        &cfg.Collaborators.Directions.URL,
		"TRAVIGO_BUS_FARE_URL":          &cfg.Collaborators.BusFare.URL,
		"TRAVIGO_TRAIN_FARE_URL":        &cfg.Collaborators.TrainFare.URL,
		"TRAVIGO_EMISSIONS_URL":         &cfg.Collaborators.Emissions.URL,
		"TRAVIGO_BUS_ARRIVAL_URL":       &cfg.Collaborators.BusArrival.URL,
		"TRAVIGO_LTA_API_KEY":           &cfg.Collaborators.BusArrival.AccountKey,
		"TRAVIGO_REDIS_ADDRESS":         &cfg.Redis.Address,
		"TRAVIGO_REDIS_PASSWORD":        &cfg.Redis.Password,
		"TRAVIGO_GOOGLE_MAPS_API_KEY":   &cfg.Google.APIKey,
		"TRAVIGO_GOOGLE_DIRECTIONS_URL": &cfg.Google.BaseURL,
	}

	for name, target := range overrides {
		if env[name] != "" {
			*target = env[name]
		}
	}

	if env["TRAVIGO_REDIS_DATABASE"] != "" {
		n, err := strconv.Atoi(env["TRAVIGO_REDIS_DATABASE"])
		if err != nil {
			return errors.Wrap(err, "TRAVIGO_REDIS_DATABASE")
		}
		cfg.Redis.Database = n
	}

	if env["TRAVIGO_COLLABORATOR_TIMEOUT"] != "" {
		timeout, err := time.ParseDuration(env["TRAVIGO_COLLABORATOR_TIMEOUT"])
		if err != nil {
			return errors.Wrap(err, "TRAVIGO_COLLABORATOR_TIMEOUT")
		}
		cfg.Collaborators.Timeout = timeout
	}

	if env["TRAVIGO_TRACKING_MAX_CONCURRENCY"] != "" {
		n, err := strconv.Atoi(env["TRAVIGO_TRACKING_MAX_CONCURRENCY"])
		if err != nil {
			return errors.Wrap(err, "TRAVIGO_TRACKING_MAX_CONCURRENCY")
		}
		cfg.Tracking.MaxConcurrency = n
	}

	return nil
}
