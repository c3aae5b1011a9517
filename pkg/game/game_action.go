package game

import "fmt"

// Action is a turn action a player can take
type Action int

// action constants
const (
	// ActionSkip keeps the dealt card
	ActionSkip Action = iota
	// ActionSwap trades cards with the next active seat
	ActionSwap
	// ActionDeck draws a replacement card from the deck. Only the last seat
	// in the rotation may go to the deck
	ActionDeck
)

// ActionFromString returns an Action from its wire name
func ActionFromString(s string) (Action, error) {
	switch s {
	case "skip":
		return ActionSkip, nil
	case "swap":
		return ActionSwap, nil
	case "deck":
		return ActionDeck, nil
	}

	return 0, fmt.Errorf("no action with name %q", s)
}

func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionSwap:
		return "swap"
	case ActionDeck:
		return "deck"
	}

	panic(fmt.Sprintf("invalid action %d", a))
}

// ActionResult is the result of a player's action
type ActionResult int

// action result values
const (
	// ResultOK means the action was successful
	ResultOK ActionResult = iota
	// ResultBlocked means a swap was refused by a King
	ResultBlocked
)
