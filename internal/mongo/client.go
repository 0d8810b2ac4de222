package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database and collection names are fixed, not configuration.
const (
	flightsDB = "flights"
	adminDB   = "flights-admin"

	aircraftCollection        = "aircraft"
	airlinesCollection        = "airlines"
	alliancesCollection       = "alliances"
	allianceMembersCollection = "alliance_members"
	airportsCollection        = "airports"
)

type Client struct {
	c *mongo.Client
}

func NewClient(ctx context.Context, uri string) (*Client, error) {
	api := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(api)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cl, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	// Connect does not dial; ping so an unreachable or misconfigured
	// deployment fails here instead of at the first write.
	if err := cl.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Client{c: cl}, nil
}

func (c *Client) Close(ctx context.Context) { _ = c.c.Disconnect(ctx) }
