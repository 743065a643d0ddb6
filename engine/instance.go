package engine

import (
	"log"
	"os"
	"strconv"
)

// Casino is the engine instance serving this deployment, set once by Init.
var Casino *Engine

// Init reads the genesis parameters from the environment, replays the event
// log into a fresh engine and attaches the recorder. Call after the event
// store is connected, before any route is served.
func Init(events []Event, recorder EventRecorder) {
	owner := os.Getenv("OWNER_ACCOUNT")
	if owner == "" {
		log.Fatal("❌ OWNER_ACCOUNT is required")
	}

	cfg := Config{
		HouseEdgeBps: uint16(envInt("HOUSE_EDGE_BPS", 250)),
		MinBet:       envInt("MIN_BET", 1),
		MaxBet:       envInt("MAX_BET", 1_000_000),
	}

	eng, err := Replay(owner, cfg, events)
	if err != nil {
		log.Fatal("❌ Failed to replay event log:", err)
	}
	eng.SetRecorder(recorder)

	Casino = eng
	log.Printf("✅ Casino engine ready (%d events replayed, owner %s)", len(events), owner)
}

func envInt(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("⚠️  Invalid value for %s: %s", key, raw)
		return def
	}
	return v
}
