package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AircraftDoc struct {
	ID           string `bson:"_id"`
	IcaoCode     string `bson:"icaoCode"`
	IataCode     string `bson:"iataCode"`
	Description  string `bson:"description"`
	Manufacturer string `bson:"manufacturer,omitempty"`
}

func (c *Client) aircraftCol() *mongo.Collection {
	return c.c.Database(flightsDB).Collection(aircraftCollection)
}

// InsertAircraft writes the whole batch in one insert-many call. No
// chunking: an oversized batch is the server's error to report.
func (c *Client) InsertAircraft(ctx context.Context, docs []AircraftDoc) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, d)
	}
	_, err := c.aircraftCol().InsertMany(ctx, batch)
	return err
}

func (c *Client) AllAircraft(ctx context.Context) ([]AircraftDoc, error) {
	cursor, err := c.aircraftCol().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var out []AircraftDoc
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetManufacturers updates the manufacturer field of the given aircraft
// documents, keyed by _id.
func (c *Client) SetManufacturers(ctx context.Context, byID map[string]string) error {
	if len(byID) == 0 {
		return nil
	}
	writes := make([]mongo.WriteModel, 0, len(byID))
	for id, name := range byID {
		w := mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"manufacturer": name}})
		writes = append(writes, w)
	}
	_, err := c.aircraftCol().BulkWrite(ctx, writes)
	return err
}
