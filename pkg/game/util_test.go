package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"screwyourneighbor-server/pkg/deck"
)

// stubRand always returns the same value
type stubRand struct {
	n int
}

func (s stubRand) Intn(n int) int {
	return s.n % n
}

func card(s string) *deck.Card {
	return deck.CardFromString(s)
}

// newTestGame returns a game with players p1..pn and the dealer at seat 0
func newTestGame(t *testing.T, playerCount, lives int) *Game {
	t.Helper()

	seats := make([]Seat, playerCount)
	for i := range seats {
		seats[i] = Seat{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: fmt.Sprintf("Player %d", i+1),
		}
	}

	g, err := NewGame(seats, Options{Lives: lives})
	assert.NoError(t, err)

	g.rand = stubRand{}
	return g
}

// dealCards assigns cards to seats in seat order
// An empty string leaves the seat without a card
func dealCards(g *Game, cards ...string) {
	for i, c := range cards {
		if c == "" {
			g.players[i].card = nil
			continue
		}

		g.players[i].card = card(c)
	}
}

func livesEqual(t *testing.T, g *Game, livesMap map[string]int) {
	t.Helper()

	for id, expectedLives := range livesMap {
		assert.Equal(t, expectedLives, g.idToPlayer[id].lives, "expected player %s to have %d lives", id, expectedLives)
	}
}

func createExecFunctions(t *testing.T, g *Game) (func(playerID string, action Action), func(playerID string, action Action, expectedError string)) {
	t.Helper()

	execOK := func(playerID string, action Action) {
		t.Helper()

		_, err := g.ExecuteTurnForPlayer(playerID, action)
		assert.NoError(t, err)
	}

	execError := func(playerID string, action Action, expectedError string) {
		t.Helper()

		_, err := g.ExecuteTurnForPlayer(playerID, action)
		assert.EqualError(t, err, expectedError)
	}

	return execOK, execError
}
