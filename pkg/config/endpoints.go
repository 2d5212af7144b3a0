package config

import "github.com/travigo/journeyplanner/pkg/collaborator"

func (c CollaboratorsConfig) Endpoints() collaborator.Endpoints {
	endpoints := collaborator.Endpoints{
		collaborator.ServiceDirections: {URL: c.Directions.URL},
		collaborator.ServiceBusFare:    {URL: c.BusFare.URL},
		collaborator.ServiceTrainFare:  {URL: c.TrainFare.URL},
		collaborator.ServiceEmissions:  {URL: c.Emissions.URL},
		collaborator.ServiceBusArrival: {URL: c.BusArrival.URL},
	}

	if c.BusArrival.AccountKey != "" {
		endpoints[collaborator.ServiceBusArrival] = collaborator.Endpoint{
			URL: c.BusArrival.URL,
			Headers: map[string]string{
				"AccountKey": c.BusArrival.AccountKey,
			},
		}
	}

	return endpoints
}
