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

	alliances, err := ingest.LoadAlliances(cfg.AlliancesFile)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	mc, err := mdb.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer mc.Close(ctx)

	docs, members, err := ingest.AllianceDocs(ctx, alliances, mc.AirlineIDByIATA)
	if err != nil {
		log.Fatal(err)
	}
	if err := mc.InsertAlliances(ctx, docs); err != nil {
		log.Fatal(err)
	}
	if err := mc.InsertAllianceMembers(ctx, members); err != nil {
		log.Fatal(err)
	}
	log.Printf(`{"msg":"alliances-insert-done","alliances":%d,"members":%d}`, len(docs), len(members))
}
