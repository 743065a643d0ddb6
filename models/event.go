package models

import (
	"gorm.io/gorm"
)

// CasinoEvent is one row of the append-only audit log. Rows are only ever
// inserted; the full engine state is rebuilt by replaying them in ID order.
type CasinoEvent struct {
	gorm.Model

	Type    string `gorm:"size:32;index" json:"type"`
	Account string `gorm:"size:64;index" json:"account"`
	GameID  string `gorm:"size:64;index" json:"game_id"`

	Amount        int64 `json:"amount"`
	BalanceBefore int64 `json:"balance_before"`
	BalanceAfter  int64 `json:"balance_after"`

	IsWin      bool   `json:"is_win"`
	WinAmount  int64  `json:"win_amount"`
	ResultHash string `gorm:"size:64" json:"result_hash"`

	ProvablyFair bool   `json:"provably_fair"`
	Handle       string `gorm:"size:36;index" json:"handle"`
	// RandomValue is a decimal-encoded uint64. Oracle values use the full
	// 64-bit range, which overflows the signed bigint a Go uint64 maps to.
	RandomValue string `gorm:"size:20" json:"random_value"`

	HouseEdgeBps uint16 `json:"house_edge_bps"`
	MinBet       int64  `json:"min_bet"`
	MaxBet       int64  `json:"max_bet"`

	RefID string `gorm:"size:64;index" json:"ref_id"`
	Note  string `gorm:"size:255" json:"note"`
}
