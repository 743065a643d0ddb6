package database

import (
	"fmt"
	"strconv"

	"stakehouse/engine"
	"stakehouse/models"

	"gorm.io/gorm"
)

const loadPageSize = 500

// Recorder persists committed engine events into the casino_events table.
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

func (r *Recorder) Record(ev engine.Event) error {
	return r.db.Create(toRow(ev)).Error
}

// LoadEvents reads the whole event log in insertion order, paged by primary
// key, for replay at startup.
func LoadEvents(db *gorm.DB) ([]engine.Event, error) {
	var out []engine.Event
	var lastID uint
	for {
		var rows []models.CasinoEvent
		if err := db.Where("id > ?", lastID).
			Order("id ASC").
			Limit(loadPageSize).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return out, nil
		}
		for _, row := range rows {
			lastID = row.ID
			ev, err := fromRow(row)
			if err != nil {
				return nil, fmt.Errorf("event row %d: %w", row.ID, err)
			}
			out = append(out, ev)
		}
	}
}

func toRow(ev engine.Event) *models.CasinoEvent {
	return &models.CasinoEvent{
		Type:          string(ev.Type),
		Account:       ev.Account,
		GameID:        ev.GameID,
		Amount:        ev.Amount,
		BalanceBefore: ev.BalanceBefore,
		BalanceAfter:  ev.BalanceAfter,
		IsWin:         ev.IsWin,
		WinAmount:     ev.WinAmount,
		ResultHash:    ev.ResultHash,
		ProvablyFair:  ev.ProvablyFair,
		Handle:        ev.Handle,
		RandomValue:   strconv.FormatUint(ev.RandomValue, 10),
		HouseEdgeBps:  ev.HouseEdgeBps,
		MinBet:        ev.MinBet,
		MaxBet:        ev.MaxBet,
		RefID:         ev.RefID,
		Note:          ev.Note,
	}
}

func fromRow(row models.CasinoEvent) (engine.Event, error) {
	var randomValue uint64
	if row.RandomValue != "" {
		var err error
		randomValue, err = strconv.ParseUint(row.RandomValue, 10, 64)
		if err != nil {
			return engine.Event{}, fmt.Errorf("random value %q: %w", row.RandomValue, err)
		}
	}
	return engine.Event{
		Type:          engine.EventType(row.Type),
		Account:       row.Account,
		GameID:        row.GameID,
		Amount:        row.Amount,
		BalanceBefore: row.BalanceBefore,
		BalanceAfter:  row.BalanceAfter,
		IsWin:         row.IsWin,
		WinAmount:     row.WinAmount,
		ResultHash:    row.ResultHash,
		ProvablyFair:  row.ProvablyFair,
		Handle:        row.Handle,
		RandomValue:   randomValue,
		HouseEdgeBps:  row.HouseEdgeBps,
		MinBet:        row.MinBet,
		MaxBet:        row.MaxBet,
		RefID:         row.RefID,
		Note:          row.Note,
		CreatedAt:     row.CreatedAt,
	}, nil
}
