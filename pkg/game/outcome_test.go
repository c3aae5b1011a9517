package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_DetermineOutcome_LowestCardLoses(t *testing.T) {
	g := newTestGame(t, 3, 3)
	g.dealerIndex = 0
	dealCards(g, "13c", "12h", "1s")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeLowestCard, result.Type)
	assert.Equal(t, 1, len(result.Losers))
	assert.Equal(t, "p3", result.Losers[0].PlayerID)
	assert.Equal(t, 1, result.Losers[0].LivesLost)

	livesEqual(t, g, map[string]int{"p1": 3, "p2": 3, "p3": 2})
}

func TestGame_DetermineOutcome_PairedCardsAreSafe(t *testing.T) {
	g := newTestGame(t, 4, 3)
	g.dealerIndex = 0
	dealCards(g, "13c", "1h", "1s", "7d")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeLowestCard, result.Type)
	assert.Equal(t, "p4", result.Losers[0].PlayerID)

	// the paired aces stay safe even though they rank below the seven
	livesEqual(t, g, map[string]int{"p1": 3, "p2": 3, "p3": 3, "p4": 2})
}

func TestGame_DetermineOutcome_AllPairedIsADraw(t *testing.T) {
	g := newTestGame(t, 4, 3)
	g.dealerIndex = 0
	g.idToPlayer["p3"].lives = 2
	g.idToPlayer["p4"].lives = 2
	dealCards(g, "13c", "13h", "7s", "7d")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeDraw, result.Type)
	assert.Empty(t, result.Losers)

	livesEqual(t, g, map[string]int{"p1": 3, "p2": 3, "p3": 2, "p4": 2})
}

func TestGame_DetermineOutcome_TripLowestLivesLoses(t *testing.T) {
	g := newTestGame(t, 4, 3)
	g.dealerIndex = 0
	g.idToPlayer["p3"].lives = 2
	g.idToPlayer["p4"].lives = 2
	dealCards(g, "11c", "11h", "5s", "11d")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeTrip, result.Type)
	assert.Equal(t, 1, len(result.Losers))
	assert.Equal(t, "p4", result.Losers[0].PlayerID)

	// the five is not part of the trip and is unaffected
	livesEqual(t, g, map[string]int{"p1": 3, "p2": 3, "p3": 2, "p4": 1})
}

func TestGame_DetermineOutcome_TripTiesAllLose(t *testing.T) {
	g := newTestGame(t, 4, 3)
	g.dealerIndex = 0
	g.idToPlayer["p1"].lives = 1
	g.idToPlayer["p2"].lives = 1
	dealCards(g, "4c", "4h", "4s", "9d")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeTrip, result.Type)
	assert.Equal(t, 2, len(result.Losers))

	// both tied holders lose; at one life that means elimination
	livesEqual(t, g, map[string]int{"p1": 0, "p2": 0, "p3": 3, "p4": 3})
	assert.True(t, g.idToPlayer["p1"].IsOut())
	assert.True(t, g.idToPlayer["p2"].IsOut())
	assert.Equal(t, 2, g.PlayersInCount())
}

func TestGame_DetermineOutcome_QuadEliminatesAllHolders(t *testing.T) {
	g := newTestGame(t, 5, 3)
	g.dealerIndex = 0
	dealCards(g, "8c", "8h", "8s", "8d", "3c")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeQuad, result.Type)
	assert.Equal(t, 4, len(result.Losers))

	// all four holders are eliminated outright regardless of lives;
	// the three stays untouched even though it is the lowest card
	livesEqual(t, g, map[string]int{"p1": 0, "p2": 0, "p3": 0, "p4": 0, "p5": 3})
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		assert.True(t, g.idToPlayer[id].IsOut())
	}
	assert.False(t, g.idToPlayer["p5"].IsOut())
	assert.Equal(t, 1, g.PlayersInCount())
	assert.True(t, g.IsGameOver())
}

func TestGame_DetermineOutcome_QuadBeatsTrip(t *testing.T) {
	g := newTestGame(t, 7, 3)
	g.dealerIndex = 0
	dealCards(g, "2c", "2h", "2s", "2d", "9c", "9h", "9s")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeQuad, result.Type)
	assert.Equal(t, 4, len(result.Losers))

	// the trip of nines is untouched
	livesEqual(t, g, map[string]int{"p5": 3, "p6": 3, "p7": 3})
}

func TestGame_DetermineOutcome_TripBeatsLowestCard(t *testing.T) {
	g := newTestGame(t, 4, 3)
	g.dealerIndex = 0
	dealCards(g, "12c", "12h", "12s", "1d")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeTrip, result.Type)

	// the lone ace survives; the queens settle it among themselves
	livesEqual(t, g, map[string]int{"p1": 2, "p2": 2, "p3": 2, "p4": 3})
}

func TestGame_DetermineOutcome_EliminatedSeatsAreNotCounted(t *testing.T) {
	g := newTestGame(t, 4, 3)
	g.dealerIndex = 0
	g.players[3].lives = 0
	g.players[3].isOut = true
	g.playersInCount--
	dealCards(g, "6c", "6h", "2s")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeLowestCard, result.Type)
	assert.Equal(t, "p3", result.Losers[0].PlayerID)
	livesEqual(t, g, map[string]int{"p1": 3, "p2": 3, "p3": 2, "p4": 0})
}

func TestGame_DetermineOutcome_EliminationAtOneLife(t *testing.T) {
	g := newTestGame(t, 3, 3)
	g.dealerIndex = 0
	g.idToPlayer["p2"].lives = 1
	dealCards(g, "10c", "3h", "8s")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeLowestCard, result.Type)
	assert.Equal(t, "p2", result.Losers[0].PlayerID)

	p2 := g.idToPlayer["p2"]
	assert.Equal(t, 0, p2.Lives())
	assert.True(t, p2.IsOut())
	assert.Equal(t, 2, g.PlayersInCount())

	// lives never go negative and isOut is only flipped once
	g.loseLife(p2)
	assert.Equal(t, 0, p2.Lives())
	assert.Equal(t, 2, g.PlayersInCount())
}

func TestGame_DetermineOutcome_SeatOrderFromDealer(t *testing.T) {
	// holders are collected in seat order starting at the dealer, so loser
	// lists are stable relative to the button
	g := newTestGame(t, 4, 3)
	g.dealerIndex = 2
	dealCards(g, "4c", "4h", "4s", "9d")

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeTrip, result.Type)
	assert.Equal(t, 3, len(result.Losers))
	assert.Equal(t, "p3", result.Losers[0].PlayerID)
	assert.Equal(t, "p1", result.Losers[1].PlayerID)
	assert.Equal(t, "p2", result.Losers[2].PlayerID)
}

func TestGame_FullRoundFlow(t *testing.T) {
	g := newTestGame(t, 2, 1)
	assert.NoError(t, g.StartRound())
	dealCards(g, "13c", "1s")

	execOK, _ := createExecFunctions(t, g)
	execOK("p1", ActionSkip)
	execOK("p2", ActionSkip)
	assert.True(t, g.IsRoundOver())

	result := g.DetermineOutcome()
	assert.Equal(t, OutcomeLowestCard, result.Type)
	assert.True(t, g.IsGameOver())

	g.CleanUp()
	winner, err := g.DetermineWinner()
	assert.NoError(t, err)
	assert.Equal(t, "p1", winner.ID)
	assert.False(t, winner.IsOut())
	assert.Equal(t, 1, g.PlayersInCount())
}
