package game

import "screwyourneighbor-server/pkg/deck"

// Player is a seat in the game
// Every player only ever holds one card at a time
type Player struct {
	// ID is the opaque connection ID assigned by the room
	ID string `json:"id"`

	// Name is the display name chosen in the lobby
	Name string `json:"name"`

	// when lives hit 0, the player is out of the game
	lives int

	// the current card the player was dealt
	card *deck.Card

	isOut bool
}

// Lives returns the number of lives the player has left
func (p *Player) Lives() int {
	return p.lives
}

// IsOut returns true if the player has been eliminated
func (p *Player) IsOut() bool {
	return p.isOut
}

// Card returns the card the player is currently holding, if any
func (p *Player) Card() *deck.Card {
	return p.card
}

// receiveCard overwrites any card the player may already hold
func (p *Player) receiveCard(card *deck.Card) {
	p.card = card
}

// clearCard is called at round cleanup
func (p *Player) clearCard() {
	p.card = nil
}
