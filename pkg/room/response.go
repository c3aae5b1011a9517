package room

import (
	"errors"

	"screwyourneighbor-server/pkg/game"
)

// errNotInRoom is returned when a client acts before creating or joining a room
var errNotInRoom = errors.New("you are not in a room")

// Response is the envelope for every message sent to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// outbound message keys
const (
	keyLobbyUpdate     = "lobbyUpdate"
	keyGameStateUpdate = "gameStateUpdate"
	keyRoundOutcome    = "roundOutcome"
	keyNewRoundStarted = "newRoundStarted"
	keyGameOver        = "gameOver"
	keyJoinError       = "joinError"
	keyError           = "error"
)

// lobbyState is the payload for lobbyUpdate messages
type lobbyState struct {
	RoomID  string         `json:"roomId"`
	HostID  string         `json:"hostId"`
	Phase   Phase          `json:"phase"`
	Players []*lobbyPlayer `json:"players"`
}

type lobbyPlayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// roomGameState is the payload for gameStateUpdate and newRoundStarted messages
type roomGameState struct {
	RoomID string `json:"roomId"`
	HostID string `json:"hostId"`
	Phase  Phase  `json:"phase"`
	*game.GameState
}

// gameOverState is the payload for gameOver messages
type gameOverState struct {
	WinnerName string `json:"winnerName"`
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     keyError,
		Value:   err.Error(),
		Context: ctx,
	}
}

func newJoinErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     keyJoinError,
		Value:   err.Error(),
		Context: ctx,
	}
}

// OK returns a generic success response
func OK(ctx string) *Response {
	return &Response{
		Key:     "status",
		Value:   "OK",
		Context: ctx,
	}
}
