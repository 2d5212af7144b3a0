package ctdf

// BusArrival mirrors the LTA DataMall v3 BusArrival response
type BusArrival struct {
	Metadata    string              `json:"odata.metadata,omitempty"`
	BusStopCode string              `json:"BusStopCode"`
	Services    []BusArrivalService `json:"Services"`
}

type BusArrivalService struct {
	ServiceNo string  `json:"ServiceNo"`
	Operator  string  `json:"Operator"`
	NextBus   NextBus `json:"NextBus"`
	NextBus2  NextBus `json:"NextBus2"`
	NextBus3  NextBus `json:"NextBus3"`
}

type NextBus struct {
	OriginCode       string `json:"OriginCode"`
	DestinationCode  string `json:"DestinationCode"`
	EstimatedArrival string `json:"EstimatedArrival"`
	Monitored        int    `json:"Monitored"`
	Latitude         string `json:"Latitude"`
	Longitude        string `json:"Longitude"`
	VisitNumber      string `json:"VisitNumber"`
	Load             string `json:"Load"`
	Feature          string `json:"Feature"`
	Type             string `json:"Type"`
}

type ArrivalTransitType string

const (
	ArrivalTransitTypeBus   ArrivalTransitType = "bus"
	ArrivalTransitTypeTrain ArrivalTransitType = "train"
)

const TrainArrivalUnavailableMessage = "Train information not available from bus API"

// ArrivalResult is one entry of the tracking results. A failed bus query keeps its
// entry and carries the failure in Error instead of ArrivalData.
type ArrivalResult struct {
	TransitType ArrivalTransitType `json:"transit_type"`

	BusNumber   string      `json:"bus_number,omitempty"`
	BusStopCode string      `json:"bus_stop_code,omitempty"`
	Description string      `json:"description,omitempty"`
	ArrivalData *BusArrival `json:"arrival_data,omitempty"`
	Error       *ItemError  `json:"error,omitempty"`

	TrainLine string `json:"train_line,omitempty"`
	Message   string `json:"message,omitempty"`
}

type ItemError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
}

type BusTracking struct {
	Results []ArrivalResult `json:"results"`
	Message string          `json:"message,omitempty"`
}
