package stoplookup

import (
	"context"
	"encoding/json"

	"github.com/eko/gocache/lib/v4/cache"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/travigo/journeyplanner/pkg/collaborator"
	"github.com/travigo/journeyplanner/pkg/ctdf"
)

// Dataset is the reference set of physical bus stops the resolver searches
type Dataset interface {
	Stops(ctx context.Context) ([]ctdf.BusStop, error)
}

// DatasetKey holds the dataset as a single JSON document in the LTA DataMall shape
const DatasetKey = "bus_stops"

type datasetDocument struct {
	Value []ctdf.BusStop `json:"value"`
}

// RedisDataset keeps the stop dataset in Redis. Entries are written without an
// expiry, the dataset stays until it is replaced by an import.
type RedisDataset struct {
	client *redis.Client
	store  *cache.Cache[string]
}

func NewRedisDataset(client *redis.Client) *RedisDataset {
	return &RedisDataset{
		client: client,
		store:  cache.New[string](redisstore.NewRedis(client)),
	}
}

func (d *RedisDataset) Loaded(ctx context.Context) (bool, error) {
	exists, err := d.client.Exists(ctx, DatasetKey).Result()
	if err != nil {
		return false, errors.Wrap(err, "check bus stop dataset")
	}

	return exists > 0, nil
}

func (d *RedisDataset) Stops(ctx context.Context) ([]ctdf.BusStop, error) {
	loaded, err := d.Loaded(ctx)
	if err != nil {
		return nil, collaborator.NewUpstreamFailure(collaborator.ServiceStopLookup, err, "Error connecting to bus stop dataset: %s", err)
	}
	if !loaded {
		return nil, collaborator.NewDataUnavailable(collaborator.ServiceStopLookup, "No bus stop dataset loaded")
	}

	raw, err := d.store.Get(ctx, DatasetKey)
	if err != nil {
		return nil, collaborator.NewUpstreamFailure(collaborator.ServiceStopLookup, err, "Error reading bus stop dataset: %s", err)
	}

	var document datasetDocument
	if err := json.Unmarshal([]byte(raw), &document); err != nil {
		return nil, collaborator.NewDataUnavailable(collaborator.ServiceStopLookup, "Bus stop dataset is corrupt: %s", err)
	}

	return document.Value, nil
}

func (d *RedisDataset) Store(ctx context.Context, stops []ctdf.BusStop) error {
	encoded, err := json.Marshal(datasetDocument{Value: stops})
	if err != nil {
		return errors.Wrap(err, "encode bus stop dataset")
	}

	return errors.Wrap(d.store.Set(ctx, DatasetKey, string(encoded)), "store bus stop dataset")
}

// StaticDataset is an in-memory dataset, a nil dataset counts as not loaded
type StaticDataset []ctdf.BusStop

func (s StaticDataset) Stops(ctx context.Context) ([]ctdf.BusStop, error) {
	if s == nil {
		return nil, collaborator.NewDataUnavailable(collaborator.ServiceStopLookup, "No bus stop dataset loaded")
	}

	return s, nil
}

// SampleStops are seeded into an empty dataset so a fresh install can resolve stops
var SampleStops = []ctdf.BusStop{
	{
		BusStopCode: "01012",
		RoadName:    "Victoria St",
		Description: "Hotel Grand Pacific",
		Latitude:    1.29684825487647,
		Longitude:   103.85253591654006,
	},
	{
		BusStopCode: "01013",
		RoadName:    "Victoria St",
		Description: "St. Joseph's Ch",
		Latitude:    1.29770970610083,
		Longitude:   103.8532247463225,
	},
}
