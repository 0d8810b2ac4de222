package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	mdb "flightsdata/internal/mongo"
)

type Manufacturer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func LoadManufacturers(path string) ([]Manufacturer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []Manufacturer
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

// MatchManufacturers assigns each aircraft the manufacturer whose name
// prefixes its description, preferring the longest name when several
// match ("Airbus Helicopters" beats "Airbus"). Aircraft matching no
// manufacturer are left out of the result.
func MatchManufacturers(aircraft []mdb.AircraftDoc, makers []Manufacturer) map[string]string {
	matched := make(map[string]string)
	for _, a := range aircraft {
		desc := strings.ToLower(a.Description)
		best := ""
		for _, m := range makers {
			if m.Name == "" {
				continue
			}
			if strings.HasPrefix(desc, strings.ToLower(m.Name)) && len(m.Name) > len(best) {
				best = m.Name
			}
		}
		if best != "" {
			matched[a.ID] = best
		}
	}
	return matched
}
