package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AllianceDoc struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

// AllianceMemberDoc joins an airline document to its alliance by id.
type AllianceMemberDoc struct {
	ID       string `bson:"_id"`
	Airline  string `bson:"airline"`
	Alliance string `bson:"alliance"`
}

type airlineDoc struct {
	ID string `bson:"_id"`
}

func (c *Client) alliancesCol() *mongo.Collection {
	return c.c.Database(flightsDB).Collection(alliancesCollection)
}

func (c *Client) allianceMembersCol() *mongo.Collection {
	return c.c.Database(flightsDB).Collection(allianceMembersCollection)
}

func (c *Client) airlinesCol() *mongo.Collection {
	return c.c.Database(flightsDB).Collection(airlinesCollection)
}

// AirlineIDByIATA resolves an airline document id from its IATA code.
func (c *Client) AirlineIDByIATA(ctx context.Context, iata string) (string, error) {
	var out airlineDoc
	err := c.airlinesCol().FindOne(ctx, bson.M{"iata": iata}).Decode(&out)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) InsertAlliances(ctx context.Context, docs []AllianceDoc) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, d)
	}
	_, err := c.alliancesCol().InsertMany(ctx, batch)
	return err
}

func (c *Client) InsertAllianceMembers(ctx context.Context, docs []AllianceMemberDoc) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, d)
	}
	_, err := c.allianceMembersCol().InsertMany(ctx, batch)
	return err
}
