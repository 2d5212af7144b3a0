package ctdf

// BusStop is one entry of the reference stop dataset
type BusStop struct {
	BusStopCode string  `json:"BusStopCode" csv:"BusStopCode"`
	RoadName    string  `json:"RoadName" csv:"RoadName"`
	Description string  `json:"Description" csv:"Description"`
	Latitude    float64 `json:"Latitude" csv:"Latitude"`
	Longitude   float64 `json:"Longitude" csv:"Longitude"`
}

func (b *BusStop) Coordinate() Coordinate {
	return Coordinate{Latitude: b.Latitude, Longitude: b.Longitude}
}

// StopMatch is produced for the first transit step of a leg. Bus steps carry the
// nearest stop and service number, rail steps only carry the line name.
type StopMatch struct {
	BusStopCode string `json:"BusStopCode,omitempty"`
	Description string `json:"Description,omitempty"`
	BusNumber   string `json:"BusNumber,omitempty"`

	TrainLine string `json:"TrainLine,omitempty"`
}

func (m *StopMatch) IsBus() bool {
	return m.BusStopCode != "" && m.BusNumber != ""
}

func (m *StopMatch) IsTrain() bool {
	return !m.IsBus() && m.TrainLine != ""
}

const UnknownBusStopCode = "Unknown"
