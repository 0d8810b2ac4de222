package config

import (
	"errors"
	"os"
)

type Config struct {
	MongoURI          string
	AircraftFile      string
	AirportsFile      string
	AlliancesFile     string
	ManufacturersFile string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the process environment once. MONGODB_URL has no default:
// without it there is nothing to connect to, so the caller must abort.
func Load() (Config, error) {
	uri := os.Getenv("MONGODB_URL")
	if uri == "" {
		return Config{}, errors.New("MONGODB_URL is not set")
	}
	return Config{
		MongoURI:          uri,
		AircraftFile:      getenv("AIRCRAFT_FILE", "aircraft.json"),
		AirportsFile:      getenv("AIRPORTS_FILE", "airport-codes_json_filtered.json"),
		AlliancesFile:     getenv("ALLIANCES_FILE", "alliances.json"),
		ManufacturersFile: getenv("MANUFACTURERS_FILE", "manufacturers.json"),
	}, nil
}
