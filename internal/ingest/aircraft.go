package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	mdb "flightsdata/internal/mongo"
)

type Aircraft struct {
	IcaoCode    string `json:"icaoCode"`
	IataCode    string `json:"iataCode"`
	Description string `json:"description"`
}

// aircraftWire keeps the required fields as pointers so that an absent
// field is distinguishable from an empty string after decoding.
type aircraftWire struct {
	IcaoCode    *string `json:"icaoCode"`
	IataCode    *string `json:"iataCode"`
	Description *string `json:"description"`
}

// LoadAircraft reads the whole file and decodes it as a JSON array.
// Any element missing one of the three required string fields rejects
// the whole file; no partial list comes back.
func LoadAircraft(path string) ([]Aircraft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wire []aircraftWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	out := make([]Aircraft, 0, len(wire))
	for i, w := range wire {
		if w.IcaoCode == nil || w.IataCode == nil || w.Description == nil {
			return nil, fmt.Errorf("parse %s: element %d is missing a required field", path, i)
		}
		out = append(out, Aircraft{
			IcaoCode:    *w.IcaoCode,
			IataCode:    *w.IataCode,
			Description: *w.Description,
		})
	}
	return out, nil
}

// AircraftDocs maps records to documents in order, attaching a fresh
// uuid string as each document's _id.
func AircraftDocs(records []Aircraft) []mdb.AircraftDoc {
	docs := make([]mdb.AircraftDoc, 0, len(records))
	for _, r := range records {
		docs = append(docs, mdb.AircraftDoc{
			ID:          uuid.New().String(),
			IcaoCode:    r.IcaoCode,
			IataCode:    r.IataCode,
			Description: r.Description,
		})
	}
	return docs
}
