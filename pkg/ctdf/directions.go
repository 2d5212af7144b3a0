package ctdf

import (
	"encoding/json"
	"strings"
)

type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

// Directions is the payload returned by the directions collaborator. Raw holds the
// exact bytes received so the public API can hand the full payload back to clients.
type Directions struct {
	Status string  `json:"status,omitempty"`
	Routes []Route `json:"routes"`

	Raw json.RawMessage `json:"-"`
}

func (d Directions) MarshalJSON() ([]byte, error) {
	if len(d.Raw) > 0 {
		return d.Raw, nil
	}

	type plain Directions
	return json.Marshal(plain(d))
}

func (d *Directions) UnmarshalJSON(data []byte) error {
	type plain Directions

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*d = Directions(decoded)
	d.Raw = append(json.RawMessage(nil), data...)

	return nil
}

type Route struct {
	Summary string `json:"summary,omitempty"`
	Legs    []Leg  `json:"legs"`
}

type Leg struct {
	Steps []Step `json:"steps"`
}

type Step struct {
	TravelMode     TravelMode      `json:"travel_mode"`
	Distance       Distance        `json:"distance"`
	TransitDetails *TransitDetails `json:"transit_details,omitempty"`
}

type Distance struct {
	Text  string `json:"text,omitempty"`
	Value int    `json:"value"`
}

// Mode normalises the travel mode, the directions collaborator sends it upper case
func (s *Step) Mode() TravelMode {
	return TravelMode(strings.ToLower(string(s.TravelMode)))
}

func (s *Step) DistanceKM() float64 {
	return float64(s.Distance.Value) / 1000
}

// VehicleType returns the transit vehicle type of the step or an empty string when the
// step carries no transit details
func (s *Step) VehicleType() string {
	if s.TransitDetails == nil {
		return ""
	}

	return s.TransitDetails.Line.Vehicle.Type
}

func (s *Step) LineName() string {
	if s.TransitDetails == nil {
		return ""
	}

	return s.TransitDetails.Line.Name
}

type TransitDetails struct {
	Line          TransitLine `json:"line"`
	DepartureStop TransitStop `json:"departure_stop"`
	ArrivalStop   TransitStop `json:"arrival_stop"`
}

type TransitLine struct {
	Name      string         `json:"name"`
	ShortName string         `json:"short_name,omitempty"`
	Vehicle   TransitVehicle `json:"vehicle"`
}

type TransitVehicle struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type"`
}

type TransitStop struct {
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
}

type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
