package game

import "screwyourneighbor-server/pkg/deck"

// GameState is the public view of the game, broadcast to the whole room
// These values must be safe for anyone at the table to see; the deck itself
// is never exposed
type GameState struct {
	Players          []*PlayerState `json:"players"`
	DealerIndex      int            `json:"dealerIndex"`
	CurrentTurnIndex int            `json:"currentTurnIndex"`
	LastTurnIndex    int            `json:"lastTurnIndex"`
	Round            int            `json:"round"`
}

// PlayerState is a point-in-time snapshot of a single seat
type PlayerState struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Lives int        `json:"lives"`
	IsOut bool       `json:"isOut"`
	Card  *deck.Card `json:"card"`
}

// State returns a snapshot of the current game state
func (g *Game) State() *GameState {
	players := make([]*PlayerState, len(g.players))
	for i, player := range g.players {
		players[i] = &PlayerState{
			ID:    player.ID,
			Name:  player.Name,
			Lives: player.lives,
			IsOut: player.isOut,
			Card:  player.card,
		}
	}

	return &GameState{
		Players:          players,
		DealerIndex:      g.dealerIndex,
		CurrentTurnIndex: g.currentTurnIndex,
		LastTurnIndex:    g.lastTurnIndex,
		Round:            g.round,
	}
}
