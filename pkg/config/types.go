package config

import "time"

type ServerConfig struct {
	Listen string `yaml:"listen" validate:"required"`
}

type EndpointConfig struct {
	URL string `yaml:"url" validate:"omitempty,url"`
}

type BusArrivalConfig struct {
	URL        string `yaml:"url" validate:"omitempty,url"`
	AccountKey string `yaml:"accountKey"`
}

type CollaboratorsConfig struct {
	Directions EndpointConfig   `yaml:"directions"`
	BusFare    EndpointConfig   `yaml:"busFare"`
	TrainFare  EndpointConfig   `yaml:"trainFare"`
	Emissions  EndpointConfig   `yaml:"emissions"`
	BusArrival BusArrivalConfig `yaml:"busArrival"`

	// Zero disables the per-call timeout
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

type RedisConfig struct {
	Address  string `yaml:"address" validate:"required"`
	Password string `yaml:"password"`
	Database int    `yaml:"database" validate:"gte=0"`
}

type GoogleConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseURL" validate:"required,url"`
}

type TrackingConfig struct {
	MaxConcurrency int `yaml:"maxConcurrency" validate:"gte=0"`
}

type AppConfig struct {
	Server        ServerConfig        `yaml:"server" validate:"required"`
	Collaborators CollaboratorsConfig `yaml:"collaborators"`
	Redis         RedisConfig         `yaml:"redis" validate:"required"`
	Google        GoogleConfig        `yaml:"google" validate:"required"`
	Tracking      TrackingConfig      `yaml:"tracking"`
}
