package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"flightsdata/internal/config"
	"flightsdata/internal/ingest"
	mdb "flightsdata/internal/mongo"
)

func init() {
	_ = godotenv.Load() // .env
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// The file is parsed before any connection is made; a bad file
	// never touches the database.
	records, err := ingest.LoadAircraft(cfg.AircraftFile)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	mc, err := mdb.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer mc.Close(ctx)

	docs := ingest.AircraftDocs(records)
	if err := mc.InsertAircraft(ctx, docs); err != nil {
		log.Fatal(err)
	}
	log.Printf(`{"msg":"aircraft-insert-done","count":%d}`, len(docs))
}
