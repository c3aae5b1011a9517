package game

import (
	"fmt"
	"strings"

	"screwyourneighbor-server/pkg/deck"
)

// OutcomeType identifies which rule decided the round
type OutcomeType string

// outcome type constants
const (
	// OutcomeQuad is four of a rank: every holder is eliminated outright
	OutcomeQuad OutcomeType = "QUAD_ELIMINATION"
	// OutcomeTrip is three of a rank: the holders with the fewest lives lose one
	OutcomeTrip OutcomeType = "TRIP_OUTCOME"
	// OutcomeLowestCard is the default rule: lowest unpaired card loses a life
	OutcomeLowestCard OutcomeType = "LOWEST_CARD"
	// OutcomeDraw happens when every card on the table is paired
	OutcomeDraw OutcomeType = "DRAW"
)

// RoundLoser provides details for a particular player who lost the round
type RoundLoser struct {
	PlayerID  string     `json:"playerId"`
	Name      string     `json:"name"`
	Card      *deck.Card `json:"card"`
	LivesLost int        `json:"livesLost"`
}

// Result is the outcome of a single round
type Result struct {
	Type   OutcomeType   `json:"type"`
	Losers []*RoundLoser `json:"losers"`
	Log    []string      `json:"log"`
}

// DetermineOutcome applies the end of round rules and subtracts lives
// Exactly one rule fires per round, in order of precedence:
// quads, then trips, then lowest unpaired card
func (g *Game) DetermineOutcome() *Result {
	holders := g.activeHoldersByRank()

	if losers, ok := g.quadRule(holders); ok {
		return losers
	}

	if losers, ok := g.tripRule(holders); ok {
		return losers
	}

	return g.lowestCardRule(holders)
}

// activeHoldersByRank maps card rank to its holders, in seat order starting
// at the dealer. Eliminated seats hold no card and are never counted
func (g *Game) activeHoldersByRank() map[int][]*Player {
	holders := make(map[int][]*Player)
	n := len(g.players)
	start := g.dealerIndex
	if start < 0 {
		start = 0
	}

	for i := 0; i < n; i++ {
		player := g.players[(start+i)%n]
		if player.isOut || player.card == nil {
			continue
		}

		holders[player.card.Rank] = append(holders[player.card.Rank], player)
	}

	return holders
}

// quadRule eliminates every holder of a four of a kind, regardless of lives
func (g *Game) quadRule(holders map[int][]*Player) (*Result, bool) {
	for rank := deck.Ace; rank <= deck.King; rank++ {
		if len(holders[rank]) != 4 {
			continue
		}

		losers := make([]*RoundLoser, 0, 4)
		names := make([]string, 0, 4)
		for _, player := range holders[rank] {
			lost := g.loseAllLives(player)
			losers = append(losers, &RoundLoser{
				PlayerID:  player.ID,
				Name:      player.Name,
				Card:      player.card,
				LivesLost: lost,
			})
			names = append(names, player.Name)
		}

		log := []string{
			fmt.Sprintf("four %ss on the table", rankName(rank)),
			fmt.Sprintf("%s are eliminated", strings.Join(names, ", ")),
		}

		return &Result{Type: OutcomeQuad, Losers: losers, Log: log}, true
	}

	return nil, false
}

// tripRule subtracts a life from the trip holders tied for the fewest lives
func (g *Game) tripRule(holders map[int][]*Player) (*Result, bool) {
	for rank := deck.Ace; rank <= deck.King; rank++ {
		if len(holders[rank]) != 3 {
			continue
		}

		minLives := holders[rank][0].lives
		for _, player := range holders[rank][1:] {
			if player.lives < minLives {
				minLives = player.lives
			}
		}

		losers := make([]*RoundLoser, 0, 3)
		log := []string{fmt.Sprintf("three %ss on the table", rankName(rank))}
		for _, player := range holders[rank] {
			if player.lives != minLives {
				continue
			}

			lost := g.loseLife(player)
			losers = append(losers, &RoundLoser{
				PlayerID:  player.ID,
				Name:      player.Name,
				Card:      player.card,
				LivesLost: lost,
			})
			log = append(log, lifeLostMessage(player))
		}

		return &Result{Type: OutcomeTrip, Losers: losers, Log: log}, true
	}

	return nil, false
}

// lowestCardRule finds the lowest card not protected by a pair
// If every card is paired, the round is a draw and nobody loses a life
func (g *Game) lowestCardRule(holders map[int][]*Player) *Result {
	var lowest *Player
	for rank := deck.Ace; rank <= deck.King; rank++ {
		if len(holders[rank]) == 1 {
			lowest = holders[rank][0]
			break
		}
	}

	if lowest == nil {
		return &Result{
			Type:   OutcomeDraw,
			Losers: []*RoundLoser{},
			Log:    []string{"every card is paired; nobody loses a life"},
		}
	}

	lost := g.loseLife(lowest)
	return &Result{
		Type: OutcomeLowestCard,
		Losers: []*RoundLoser{{
			PlayerID:  lowest.ID,
			Name:      lowest.Name,
			Card:      lowest.card,
			LivesLost: lost,
		}},
		Log: []string{
			fmt.Sprintf("%s has the lowest card (%s)", lowest.Name, lowest.card),
			lifeLostMessage(lowest),
		},
	}
}

func lifeLostMessage(player *Player) string {
	if player.isOut {
		return fmt.Sprintf("%s is out of the game", player.Name)
	}

	return fmt.Sprintf("%s loses a life", player.Name)
}

func rankName(rank int) string {
	switch rank {
	case deck.Ace:
		return "ace"
	case deck.Jack:
		return "jack"
	case deck.Queen:
		return "queen"
	case deck.King:
		return "king"
	}

	return fmt.Sprintf("%d", rank)
}
