package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	mdb "flightsdata/internal/mongo"
)

// Airport mirrors the filtered airport-codes export. Fields the export
// leaves out of an element decode to empty strings; only a wrong type
// fails the load.
type Airport struct {
	Ident        string `json:"ident"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	ElevationFt  string `json:"elevation_ft"`
	Continent    string `json:"continent"`
	ISOCountry   string `json:"iso_country"`
	ISORegion    string `json:"iso_region"`
	Municipality string `json:"municipality"`
	GPSCode      string `json:"gps_code"`
	IATACode     string `json:"iata_code"`
	LocalCode    string `json:"local_code"`
	Coordinates  string `json:"coordinates"`
}

func LoadAirports(path string) ([]Airport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []Airport
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

func AirportDocs(records []Airport) []mdb.AirportDoc {
	docs := make([]mdb.AirportDoc, 0, len(records))
	for _, r := range records {
		docs = append(docs, mdb.AirportDoc{
			ID:           uuid.New().String(),
			Ident:        r.Ident,
			Type:         r.Type,
			Name:         r.Name,
			ElevationFt:  r.ElevationFt,
			Continent:    r.Continent,
			ISOCountry:   r.ISOCountry,
			ISORegion:    r.ISORegion,
			Municipality: r.Municipality,
			GPSCode:      r.GPSCode,
			IATACode:     r.IATACode,
			LocalCode:    r.LocalCode,
			Coordinates:  r.Coordinates,
		})
	}
	return docs
}
