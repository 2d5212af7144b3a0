package ctdf

import (
	"strings"

	"golang.org/x/exp/slices"
)

type TransportType string

//goland:noinspection GoUnusedConst
const (
	TransportTypeBus     TransportType = "Bus"
	TransportTypeRail    TransportType = "Rail"
	TransportTypeUnknown TransportType = "UNKNOWN"
)

var busVehicleTypes = []string{"BUS", "BUS_SERVICE"}
var railVehicleTypes = []string{"SUBWAY", "TRAIN", "HEAVY_RAIL", "COMMUTER_TRAIN", "RAIL"}

// ClassifyVehicleType maps a directions vehicle type onto the transport families the
// fare, emissions and stop lookup components know about
func ClassifyVehicleType(vehicleType string) TransportType {
	normalised := strings.ToUpper(strings.TrimSpace(vehicleType))

	switch {
	case slices.Contains(busVehicleTypes, normalised):
		return TransportTypeBus
	case slices.Contains(railVehicleTypes, normalised):
		return TransportTypeRail
	default:
		return TransportTypeUnknown
	}
}
