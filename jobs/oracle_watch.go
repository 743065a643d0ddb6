package jobs

import (
	"log"
	"os"
	"time"

	"stakehouse/engine"
)

const defaultPendingWarn = 10 * time.Minute

// StartOracleWatcher periodically logs randomness requests that have been
// pending longer than ORACLE_PENDING_WARN. Nothing is expired or settled:
// a stranded request still needs an operator decision, this only makes the
// strand visible.
func StartOracleWatcher() {
	warnAfter := defaultPendingWarn
	if raw := os.Getenv("ORACLE_PENDING_WARN"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("⚠️  Invalid value for ORACLE_PENDING_WARN: %s", raw)
		} else {
			warnAfter = d
		}
	}

	ticker := time.NewTicker(time.Minute)
	go func() {
		for {
			<-ticker.C
			stale := engine.Casino.StalePendingRandomness(warnAfter)
			for _, gameID := range stale {
				log.Printf("⚠️  randomness still pending for game %s (> %s)", gameID, warnAfter)
			}
		}
	}()
}
