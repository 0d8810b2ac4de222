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

	makers, err := ingest.LoadManufacturers(cfg.ManufacturersFile)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	mc, err := mdb.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer mc.Close(ctx)

	aircraft, err := mc.AllAircraft(ctx)
	if err != nil {
		log.Fatal(err)
	}
	matched := ingest.MatchManufacturers(aircraft, makers)
	if err := mc.SetManufacturers(ctx, matched); err != nil {
		log.Fatal(err)
	}
	log.Printf(`{"msg":"manufacturers-done","aircraft":%d,"matched":%d}`, len(aircraft), len(matched))
}
