package room

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	// Action is one of createRoom, joinRoom, startGame, or playerAction
	Action string `json:"action"`

	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`

	// StartingLives applies to startGame; 0 means the server default
	StartingLives int `json:"startingLives"`

	// ActionType applies to playerAction: swap, skip, or deck
	ActionType string `json:"actionType"`

	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}
