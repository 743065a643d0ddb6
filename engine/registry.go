package engine

import "time"

// GameState is the settlement state of a game. Pending games move to Settled
// exactly once and never back.
type GameState string

const (
	GamePending GameState = "Pending"
	GameSettled GameState = "Settled"
)

// Game is one placed bet. Player and BetAmount are fixed at creation; the
// outcome fields are written once, at settlement. Records are never deleted.
type Game struct {
	ID           string
	Player       string
	BetAmount    int64
	State        GameState
	IsWin        bool
	WinAmount    int64
	ResultHash   string
	ProvablyFair bool
	CreatedAt    time.Time
}

// GameRegistry keeps every game ever created, keyed by caller-supplied ID.
type GameRegistry struct {
	games map[string]*Game
}

func NewGameRegistry() *GameRegistry {
	return &GameRegistry{games: make(map[string]*Game)}
}

func (r *GameRegistry) create(gameID, player string, betAmount int64, provablyFair bool) error {
	if _, ok := r.games[gameID]; ok {
		return ErrGameExists
	}
	r.games[gameID] = &Game{
		ID:           gameID,
		Player:       player,
		BetAmount:    betAmount,
		State:        GamePending,
		ProvablyFair: provablyFair,
		CreatedAt:    time.Now(),
	}
	return nil
}

func (r *GameRegistry) settle(gameID string, isWin bool, winAmount int64, resultHash string) (*Game, error) {
	game, ok := r.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	if game.State == GameSettled {
		return nil, ErrAlreadySettled
	}
	game.State = GameSettled
	game.IsWin = isWin
	game.WinAmount = winAmount
	game.ResultHash = resultHash
	return game, nil
}

// remove erases a game whose creating bet could not be committed. Never
// called on a game that has been observed outside the creating operation.
func (r *GameRegistry) remove(gameID string) {
	delete(r.games, gameID)
}

// revertSettle returns a game to Pending after a settlement that could not
// be committed, clearing the outcome fields it wrote.
func (r *GameRegistry) revertSettle(gameID string) {
	game, ok := r.games[gameID]
	if !ok {
		return
	}
	game.State = GamePending
	game.IsWin = false
	game.WinAmount = 0
	game.ResultHash = ""
}

// Get returns a copy of the record so callers cannot mutate registry state.
func (r *GameRegistry) Get(gameID string) (Game, bool) {
	game, ok := r.games[gameID]
	if !ok {
		return Game{}, false
	}
	return *game, true
}
