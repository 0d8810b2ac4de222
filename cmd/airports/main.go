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

	records, err := ingest.LoadAirports(cfg.AirportsFile)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	mc, err := mdb.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer mc.Close(ctx)

	docs := ingest.AirportDocs(records)
	if err := mc.InsertAirports(ctx, docs); err != nil {
		log.Fatal(err)
	}
	log.Printf(`{"msg":"airports-insert-done","count":%d}`, len(docs))
}
