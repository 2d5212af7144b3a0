package ctdf

type EmissionMode string

const (
	EmissionModeCar   EmissionMode = "car"
	EmissionModeBus   EmissionMode = "bus"
	EmissionModeTrain EmissionMode = "train"
)

// EmissionLine is both the emissions collaborator response and one segment of a route
type EmissionLine struct {
	Mode          EmissionMode `json:"mode"`
	DistanceKM    float64      `json:"distance_km"`
	EmissionKgCO2 float64      `json:"emission_kg_co2"`
}

type RouteEmissions struct {
	RouteIndex     int            `json:"routeIndex"`
	TotalEmissions float64        `json:"totalEmissions"`
	Segments       []EmissionLine `json:"segments"`
}

type Emissions struct {
	RouteEmissions []RouteEmissions `json:"routeEmissions"`
}
