package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	mdb "flightsdata/internal/mongo"
)

type Alliance struct {
	Name     string   `json:"name"`
	Airlines []string `json:"airlines"`
}

type allianceWire struct {
	Name     *string   `json:"name"`
	Airlines *[]string `json:"airlines"`
}

func LoadAlliances(path string) ([]Alliance, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wire []allianceWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	out := make([]Alliance, 0, len(wire))
	for i, w := range wire {
		if w.Name == nil || w.Airlines == nil {
			return nil, fmt.Errorf("parse %s: element %d is missing a required field", path, i)
		}
		out = append(out, Alliance{Name: *w.Name, Airlines: *w.Airlines})
	}
	return out, nil
}

// AirlineResolver maps an IATA code to the airline document's id.
type AirlineResolver func(ctx context.Context, iata string) (string, error)

// AllianceDocs builds alliance and membership documents, resolving every
// member airline up front. A code with no airline fails the whole build
// before anything is inserted.
func AllianceDocs(ctx context.Context, alliances []Alliance, resolve AirlineResolver) ([]mdb.AllianceDoc, []mdb.AllianceMemberDoc, error) {
	docs := make([]mdb.AllianceDoc, 0, len(alliances))
	var members []mdb.AllianceMemberDoc
	for _, a := range alliances {
		allianceID := uuid.New().String()
		docs = append(docs, mdb.AllianceDoc{ID: allianceID, Name: a.Name})
		for _, iata := range a.Airlines {
			airlineID, err := resolve(ctx, iata)
			if err != nil {
				return nil, nil, fmt.Errorf("resolve airline %q in alliance %q: %w", iata, a.Name, err)
			}
			members = append(members, mdb.AllianceMemberDoc{
				ID:       uuid.New().String(),
				Airline:  airlineID,
				Alliance: allianceID,
			})
		}
	}
	return docs, members, nil
}
