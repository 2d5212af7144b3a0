package fares

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// DistanceBrackets are the upper bounds in km of each fare tier
var DistanceBrackets = []float64{
	3.2, 4.2, 5.2, 6.2, 7.2, 8.2, 9.2, 10.2, 11.2, 12.2,
	13.2, 14.2, 15.2, 16.2, 17.2, 18.2, 19.2, 20.2, 21.2, 22.2,
	23.2, 24.2, 25.2, 26.2, 27.2, 28.2, 29.2, 30.2, 31.2, 32.2,
	33.2, 34.2, 35.2, 36.2, 37.2, 38.2, 39.2, 40.2,
}

var ExpressBusServices = []string{
	"12e", "43e", "518", "518A", "10e", "14e", "174e", "196e", "30e", "506", "513", "850e", "851e", "89e",
}

type busFares struct {
	Trunk   []int
	Express []int
}

type trainFares struct {
	Peak    []int
	OffPeak []int
}

var busFareTable = map[ctdf.PassengerType]busFares{
	ctdf.PassengerTypeAdult: {
		Trunk:   []int{119, 129, 140, 150, 159, 166, 173, 177, 181, 185, 189, 193, 198, 202, 206, 210, 214, 217, 220, 223, 226, 228, 230, 232, 233, 234, 235, 236, 237, 238, 239, 240, 241, 242, 243, 244, 245, 246, 247},
		Express: []int{179, 189, 200, 210, 219, 226, 233, 237, 241, 245, 249, 253, 258, 262, 266, 270, 274, 277, 280, 283, 286, 288, 290, 292, 293, 294, 295, 296, 297, 298, 299, 300, 301, 302, 303, 304, 305, 306, 307},
	},
	ctdf.PassengerTypeStudent: {
		Trunk:   []int{52, 57, 63, 68, 71, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74},
		Express: []int{82, 87, 93, 98, 101, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104, 104},
	},
}

var trainFareTable = map[ctdf.PassengerType]trainFares{
	ctdf.PassengerTypeAdult: {
		Peak:    []int{119, 129, 140, 150, 159, 166, 173, 177, 181, 185, 189, 193, 198, 202, 206, 210, 214, 217, 220, 223, 226, 228, 230, 232, 233, 234, 235, 236, 237, 238, 239, 240, 241, 242, 243, 244, 245, 246, 247},
		OffPeak: []int{69, 79, 90, 100, 109, 116, 123, 127, 131, 135, 139, 143, 148, 152, 156, 160, 164, 167, 170, 173, 176, 178, 180, 182, 183, 184, 185, 186, 187, 188, 189, 190, 191, 192, 193, 194, 195, 196, 197},
	},
	ctdf.PassengerTypeStudent: {
		Peak:    []int{52, 57, 63, 68, 71, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74},
		OffPeak: []int{2, 7, 13, 18, 21, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24},
	},
}

var ErrInvalidPassengerType = errors.New("Invalid passenger type")
var ErrNegativeDistance = errors.New("Distance cannot be negative")

func ParsePassengerType(value string) (ctdf.PassengerType, error) {
	passengerType := ctdf.PassengerType(strings.ToLower(strings.TrimSpace(value)))

	if !slices.Contains(ctdf.PassengerTypes, passengerType) {
		return "", errors.Wrapf(ErrInvalidPassengerType, "%q", value)
	}

	return passengerType, nil
}

func IsExpressService(busService string) bool {
	return slices.ContainsFunc(ExpressBusServices, func(express string) bool {
		return strings.EqualFold(express, busService)
	})
}

// BusFare returns the fare in cents. Distances below the first bracket pay the first
// trunk fare whatever the service.
func BusFare(distance float64, passengerType ctdf.PassengerType, busService string) (int, error) {
	table, exists := busFareTable[passengerType]
	if !exists {
		return 0, errors.Wrapf(ErrInvalidPassengerType, "%q", passengerType)
	}
	if distance < 0 {
		return 0, ErrNegativeDistance
	}

	if distance < DistanceBrackets[0] {
		return table.Trunk[0], nil
	}

	fares := table.Trunk
	if IsExpressService(busService) {
		fares = table.Express
	}

	return lookupBracket(fares, distance), nil
}

func TrainFare(distance float64, passengerType ctdf.PassengerType, peakHour bool) (int, error) {
	table, exists := trainFareTable[passengerType]
	if !exists {
		return 0, errors.Wrapf(ErrInvalidPassengerType, "%q", passengerType)
	}
	if distance < 0 {
		return 0, ErrNegativeDistance
	}

	fares := table.OffPeak
	if peakHour {
		fares = table.Peak
	}

	return lookupBracket(fares, distance), nil
}

func lookupBracket(fares []int, distance float64) int {
	for i, limit := range DistanceBrackets {
		if distance <= limit {
			return fares[i]
		}
	}

	return fares[len(fares)-1]
}
