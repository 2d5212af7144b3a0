package ctdf

type PassengerType string

const (
	PassengerTypeAdult   PassengerType = "adult"
	PassengerTypeStudent PassengerType = "student"
)

var PassengerTypes = []PassengerType{PassengerTypeAdult, PassengerTypeStudent}

type FareLine struct {
	Mode          string  `json:"mode"`
	ServiceNumber string  `json:"service_number"`
	DistanceKM    float64 `json:"distance_km"`
	Fare          int     `json:"fare"`
}

type RouteFare struct {
	TotalFare     int        `json:"total_fare"`
	FareBreakdown []FareLine `json:"fare_breakdown"`
}

type FareParameters struct {
	PassengerType PassengerType `json:"passengerType"`
	PeakHour      bool          `json:"peakHour"`
}

type FareCosts struct {
	AllRoutes      []RouteFare    `json:"all_routes"`
	Currency       string         `json:"currency"`
	ParametersUsed FareParameters `json:"parameters_used"`
}

// FareQuote is the response body of the bus and train fare collaborators
type FareQuote struct {
	BusService    string        `json:"busService,omitempty"`
	IsExpress     *bool         `json:"isExpress,omitempty"`
	PeakHour      *bool         `json:"peakHour,omitempty"`
	Distance      float64       `json:"distance"`
	PassengerType PassengerType `json:"passengerType"`
	Fare          int           `json:"fare"`
	Currency      string        `json:"currency"`
}

const FareCurrency = "cents"
