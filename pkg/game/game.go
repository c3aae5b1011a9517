package game

import (
	"errors"
	"fmt"

	"screwyourneighbor-server/internal/rng"
	"screwyourneighbor-server/pkg/deck"
)

type state int

const (
	// stateSetup is before the first deal
	stateSetup state = iota
	// stateTurns is while players are acting on their cards
	stateTurns
	// stateRoundOver is after the last turn, before the outcome is applied
	stateRoundOver
	// stateGameOver is once one player (or none) remains
	stateGameOver
)

// random seed for deck shuffles
// defined here for testing purposes
var seed = int64(0)

// Seat identifies a player joining the game
type Seat struct {
	ID   string
	Name string
}

// Game is an individual game of Screw Your Neighbor
type Game struct {
	options    Options
	deck       *deck.Deck
	rand       rng.Generator
	players    []*Player
	idToPlayer map[string]*Player

	// -1 until the first round picks a random dealer
	dealerIndex      int
	currentTurnIndex int
	lastTurnIndex    int
	playersInCount   int
	round            int
	state            state
}

// NewGame returns a new game with one player per seat
// Cards are not dealt until the first call to StartRound()
func NewGame(seats []Seat, options Options) (*Game, error) {
	if len(seats) < 2 {
		return nil, errors.New("game requires at least two players")
	}

	if options.Lives <= 0 {
		return nil, errors.New("lives must be greater than 0")
	}

	d := deck.New()
	d.Shuffle(seed)

	idToPlayer := make(map[string]*Player)
	players := make([]*Player, len(seats))
	for i, seat := range seats {
		players[i] = &Player{
			ID:    seat.ID,
			Name:  seat.Name,
			lives: options.Lives,
		}
		idToPlayer[seat.ID] = players[i]
	}

	return &Game{
		options:        options,
		deck:           d,
		rand:           rng.Crypto{},
		players:        players,
		idToPlayer:     idToPlayer,
		dealerIndex:    -1,
		playersInCount: len(players),
		state:          stateSetup,
	}, nil
}

// StartRound advances the dealer, sets the turn markers, and deals one card
// to every active player starting at the dealer's seat
func (g *Game) StartRound() error {
	if g.state == stateTurns {
		return errors.New("cards have already been dealt this round")
	}

	if g.state == stateGameOver {
		return errors.New("the game is over")
	}

	// +1 because the last player may go to the deck
	if !g.deck.CanDraw(g.playersInCount + 1) {
		g.deck.Shuffle(seed)
	}

	g.advanceDealer()
	g.currentTurnIndex = g.dealerIndex

	n := len(g.players)
	for i := 0; i < n; i++ {
		index := (g.dealerIndex + i) % n
		player := g.players[index]
		if player.isOut {
			continue
		}

		card, err := g.deck.Draw()
		if err != nil {
			// unreachable thanks to the CanDraw() guard above
			return err
		}

		player.receiveCard(card)
		g.lastTurnIndex = index
	}

	g.round++
	g.state = stateTurns
	return nil
}

// advanceDealer either picks a random first dealer or moves the button to
// the next seat that is still in the game
func (g *Game) advanceDealer() {
	n := len(g.players)
	if g.dealerIndex < 0 {
		g.dealerIndex = g.rand.Intn(n)
	} else {
		g.dealerIndex = (g.dealerIndex + 1) % n
	}

	for g.players[g.dealerIndex].isOut {
		g.dealerIndex = (g.dealerIndex + 1) % n
	}
}

// nextActiveSeat returns the next seat after {index} that is still in the game
func (g *Game) nextActiveSeat(index int) int {
	n := len(g.players)
	for {
		index = (index + 1) % n
		if !g.players[index].isOut {
			return index
		}
	}
}

// ExecuteTurnForPlayer performs a turn action for the player
// The player must be seated at the current turn. A swap into a King is
// refused (ResultBlocked) but still consumes the turn
func (g *Game) ExecuteTurnForPlayer(playerID string, action Action) (ActionResult, error) {
	if g.state != stateTurns {
		return ResultOK, errors.New("no more actions can be taken this round")
	}

	player, ok := g.idToPlayer[playerID]
	if !ok {
		return ResultOK, fmt.Errorf("%s is not in this game", playerID)
	}

	if player != g.players[g.currentTurnIndex] {
		return ResultOK, errors.New("you are not up")
	}

	result := ResultOK
	switch action {
	case ActionSkip:
		// keep the card
	case ActionSwap:
		neighbor := g.players[g.nextActiveSeat(g.currentTurnIndex)]
		if neighbor.card.Rank == deck.King {
			// a King refuses the swap; no cards move
			result = ResultBlocked
		} else {
			player.card, neighbor.card = neighbor.card, player.card
		}
	case ActionDeck:
		if g.currentTurnIndex != g.lastTurnIndex {
			return ResultOK, errors.New("only the last player may go to the deck")
		}

		card, err := g.deck.Draw()
		if err != nil {
			return ResultOK, err
		}

		player.receiveCard(card)
	default:
		return ResultOK, errors.New("not a valid game action")
	}

	if g.currentTurnIndex == g.lastTurnIndex {
		g.state = stateRoundOver
	} else {
		g.currentTurnIndex = g.nextActiveSeat(g.currentTurnIndex)
	}

	return result, nil
}

// CleanUp discards every player's hand ahead of the next deal
func (g *Game) CleanUp() {
	for _, player := range g.players {
		player.clearCard()
	}
}

// IsLastTurn returns true if the current turn is the final one of the round
func (g *Game) IsLastTurn() bool {
	return g.currentTurnIndex == g.lastTurnIndex
}

// IsRoundOver returns true once every player has acted this round
func (g *Game) IsRoundOver() bool {
	return g.state == stateRoundOver
}

// IsGameOver returns true if one player or fewer remains
func (g *Game) IsGameOver() bool {
	return g.playersInCount <= 1
}

// PlayersInCount returns the number of players still in the game
func (g *Game) PlayersInCount() int {
	return g.playersInCount
}

// CurrentTurn returns the player whose turn it is, or nil between rounds
func (g *Game) CurrentTurn() *Player {
	if g.state != stateTurns {
		return nil
	}

	return g.players[g.currentTurnIndex]
}

// DetermineWinner returns the last player standing
// The dealer button is advanced one final time; the skip-eliminated walk can
// only land on the sole remaining player
func (g *Game) DetermineWinner() (*Player, error) {
	if g.playersInCount > 1 {
		return nil, errors.New("the game is not over")
	}

	if g.playersInCount == 0 {
		return nil, errors.New("no players remain")
	}

	g.advanceDealer()
	g.state = stateGameOver
	return g.players[g.dealerIndex], nil
}

// loseLife subtracts a single life, eliminating the player at zero
func (g *Game) loseLife(player *Player) int {
	if player.lives <= 1 {
		player.lives = 0
	} else {
		player.lives--
	}

	g.checkEliminated(player)
	return 1
}

// loseAllLives eliminates the player outright
func (g *Game) loseAllLives(player *Player) int {
	lost := player.lives
	player.lives = 0
	g.checkEliminated(player)
	return lost
}

// checkEliminated flips isOut exactly once per player
func (g *Game) checkEliminated(player *Player) {
	if player.lives == 0 && !player.isOut {
		player.isOut = true
		g.playersInCount--
	}
}
