package stoplookup

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/travigo/journeyplanner/pkg/ctdf"
	"github.com/travigo/journeyplanner/pkg/util"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}

	return FormatJSON
}

// ReadStops parses a stop dataset, either an LTA DataMall JSON document
// ({"value": [...]}) or a CSV file with a BusStopCode,RoadName,Description,Latitude,Longitude header.
// Rows without a stop code are dropped.
func ReadStops(reader io.Reader, format Format) ([]ctdf.BusStop, error) {
	var stops []ctdf.BusStop

	switch format {
	case FormatCSV:
		if err := gocsv.Unmarshal(reader, &stops); err != nil {
			return nil, errors.Wrap(err, "parse stop csv")
		}
	case FormatJSON:
		var document datasetDocument
		if err := json.NewDecoder(reader).Decode(&document); err != nil {
			return nil, errors.Wrap(err, "parse stop json")
		}
		stops = document.Value
	default:
		return nil, errors.Errorf("unsupported stop dataset format %s", format)
	}

	util.InPlaceFilter(&stops, func(stop ctdf.BusStop) bool {
		return strings.TrimSpace(stop.BusStopCode) != ""
	})

	return stops, nil
}
