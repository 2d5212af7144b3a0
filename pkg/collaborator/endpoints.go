package collaborator

import "strings"

type Service string

const (
	ServiceDirections Service = "directions"
	ServiceStopLookup Service = "bus stop lookup"
	ServiceBusFare    Service = "bus fare"
	ServiceTrainFare  Service = "train fare"
	ServiceEmissions  Service = "emissions"
	ServiceBusArrival Service = "bus arrival"
)

type Endpoint struct {
	URL     string
	Headers map[string]string
}

type Endpoints map[Service]Endpoint

// Title is the service name as it appears at the start of an error message
func (s Service) Title() string {
	if s == "" {
		return ""
	}

	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
