package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAlliances(t *testing.T) {
	path := writeFixture(t, "alliances.json", `[
		{"name":"Star Alliance","airlines":["UA","LH"]},
		{"name":"oneworld","airlines":[]}
	]`)

	alliances, err := LoadAlliances(path)
	require.NoError(t, err)
	require.Len(t, alliances, 2)
	assert.Equal(t, "Star Alliance", alliances[0].Name)
	assert.Equal(t, []string{"UA", "LH"}, alliances[0].Airlines)
	assert.Empty(t, alliances[1].Airlines)
}

func TestLoadAlliancesMissingField(t *testing.T) {
	path := writeFixture(t, "alliances.json", `[{"name":"SkyTeam"}]`)

	_, err := LoadAlliances(path)
	require.Error(t, err)
}

func TestAllianceDocs(t *testing.T) {
	alliances := []Alliance{
		{Name: "Star Alliance", Airlines: []string{"UA", "LH"}},
		{Name: "oneworld", Airlines: []string{"BA"}},
	}
	resolve := func(ctx context.Context, iata string) (string, error) {
		return "airline-" + iata, nil
	}

	docs, members, err := AllianceDocs(context.Background(), alliances, resolve)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Len(t, members, 3)

	assert.Equal(t, "Star Alliance", docs[0].Name)
	assert.Equal(t, "oneworld", docs[1].Name)

	assert.Equal(t, "airline-UA", members[0].Airline)
	assert.Equal(t, docs[0].ID, members[0].Alliance)
	assert.Equal(t, "airline-LH", members[1].Airline)
	assert.Equal(t, docs[0].ID, members[1].Alliance)
	assert.Equal(t, "airline-BA", members[2].Airline)
	assert.Equal(t, docs[1].ID, members[2].Alliance)
}

func TestAllianceDocsUnknownAirline(t *testing.T) {
	alliances := []Alliance{{Name: "Star Alliance", Airlines: []string{"UA", "XX"}}}
	resolve := func(ctx context.Context, iata string) (string, error) {
		if iata == "XX" {
			return "", errors.New("no documents in result")
		}
		return "airline-" + iata, nil
	}

	docs, members, err := AllianceDocs(context.Background(), alliances, resolve)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"XX"`)
	assert.Nil(t, docs)
	assert.Nil(t, members)
}

func TestAllianceDocsEmpty(t *testing.T) {
	resolve := func(ctx context.Context, iata string) (string, error) {
		return "", fmt.Errorf("unexpected lookup %q", iata)
	}

	docs, members, err := AllianceDocs(context.Background(), nil, resolve)
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Empty(t, members)
}
