package ingest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAirports(t *testing.T) {
	path := writeFixture(t, "airports.json", `[
		{"ident":"KSFO","type":"large_airport","name":"San Francisco International Airport",
		 "elevation_ft":"13","continent":"NA","iso_country":"US","iso_region":"US-CA",
		 "municipality":"San Francisco","gps_code":"KSFO","iata_code":"SFO",
		 "local_code":"SFO","coordinates":"-122.375, 37.61899948120117"},
		{"ident":"EGLL","name":"London Heathrow Airport","iata_code":"LHR"}
	]`)

	records, err := LoadAirports(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "KSFO", records[0].Ident)
	assert.Equal(t, "SFO", records[0].IATACode)
	assert.Equal(t, "13", records[0].ElevationFt)
	// absent fields decode to empty strings
	assert.Equal(t, "EGLL", records[1].Ident)
	assert.Empty(t, records[1].ISOCountry)
}

func TestLoadAirportsWrongType(t *testing.T) {
	path := writeFixture(t, "airports.json", `[{"ident":"KSFO","elevation_ft":13}]`)

	_, err := LoadAirports(path)
	require.Error(t, err)
}

func TestAirportDocs(t *testing.T) {
	records := []Airport{
		{Ident: "KSFO", Name: "San Francisco International Airport", IATACode: "SFO"},
		{Ident: "EGLL", Name: "London Heathrow Airport", IATACode: "LHR"},
	}

	docs := AirportDocs(records)
	require.Len(t, docs, 2)
	for i, d := range docs {
		assert.Equal(t, records[i].Ident, d.Ident)
		assert.Equal(t, records[i].Name, d.Name)
		assert.Equal(t, records[i].IATACode, d.IATACode)
		_, err := uuid.Parse(d.ID)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, docs[0].ID, docs[1].ID)
}
