package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// AirportDoc carries the filtered airport-codes fields. Everything is a
// string in the source export, elevation included.
type AirportDoc struct {
	ID           string `bson:"_id"`
	Ident        string `bson:"ident"`
	Type         string `bson:"type"`
	Name         string `bson:"name"`
	ElevationFt  string `bson:"elevation_ft"`
	Continent    string `bson:"continent"`
	ISOCountry   string `bson:"iso_country"`
	ISORegion    string `bson:"iso_region"`
	Municipality string `bson:"municipality"`
	GPSCode      string `bson:"gps_code"`
	IATACode     string `bson:"iata_code"`
	LocalCode    string `bson:"local_code"`
	Coordinates  string `bson:"coordinates"`
}

func (c *Client) airportsCol() *mongo.Collection {
	return c.c.Database(adminDB).Collection(airportsCollection)
}

func (c *Client) InsertAirports(ctx context.Context, docs []AirportDoc) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, d)
	}
	_, err := c.airportsCol().InsertMany(ctx, batch)
	return err
}
