package ctdf

// CompositeJourneyPlan is the single response assembled for a journey request. It is
// built once, after every branch has settled, and never stored.
type CompositeJourneyPlan struct {
	Directions  Directions  `json:"directions"`
	FareCosts   FareCosts   `json:"fareCosts"`
	Emissions   Emissions   `json:"emissions"`
	BusTracking BusTracking `json:"busTracking"`
}
