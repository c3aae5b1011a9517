package room

import (
	"errors"

	"github.com/sirupsen/logrus"

	"screwyourneighbor-server/pkg/deck"
	"screwyourneighbor-server/pkg/game"
)

// Phase is the lifecycle phase of a room
type Phase string

// phase constants
const (
	PhaseLobby      Phase = "LOBBY"
	PhaseInProgress Phase = "IN_PROGRESS"
)

// Room is a single game session: a lobby roster plus, once started, a game
// All mutations run on the room's run loop so actions within a room are
// strictly serialized in arrival order
type Room struct {
	code     string
	registry *Registry

	phase  Phase
	hostID string

	// roster is the ordered list of players; order becomes the seating
	roster []*Client

	game *game.Game

	// resolving is true while the end of round broadcast sequence is running;
	// player actions are rejected until it completes
	resolving bool

	execInRunLoop chan func()
	close         chan bool
}

func newRoom(code string, registry *Registry) *Room {
	return &Room{
		code:          code,
		registry:      registry,
		phase:         PhaseLobby,
		roster:        make([]*Client, 0, 8),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Code returns the room's short join code
func (r *Room) Code() string {
	return r.code
}

// StartShift starts the run loop
func (r *Room) StartShift() {
	go r.runLoop()
}

// EndShift terminates the run loop. Any queued work is silently dropped
func (r *Room) EndShift() {
	close(r.close)
}

func (r *Room) runLoop() {
	log := logrus.WithField("room", r.code)
	log.Debug("creating room run loop")

	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-r.close:
			log.Debug("terminating room run loop")
			return
		}
	}
}

// execute schedules fn on the run loop
// If the room has been torn down the function is never run
func (r *Room) execute(fn func()) {
	select {
	case r.execInRunLoop <- fn:
	case <-r.close:
	}
}

// addClient seats a client in the room
// Must only be called from the run loop
func (r *Room) addClient(c *Client, name string) {
	if r.phase != PhaseLobby {
		c.Send(newJoinErrorResponse("", errors.New("the game is already in progress")))
		return
	}

	c.room = r
	c.Name = name
	r.roster = append(r.roster, c)
	if len(r.roster) == 1 {
		r.hostID = c.PlayerID
	}

	logrus.WithFields(logrus.Fields{
		"room":   r.code,
		"player": c.String(),
	}).Debug("client joined room")

	r.broadcastLobby()
}

// removeClient drops a client from the roster
// The last client leaving removes the room from the registry. A seat in a
// running game is not resumable; the engine keeps the seat and the round
// plays out without them
// Must only be called from the run loop
func (r *Room) removeClient(c *Client) {
	for i, member := range r.roster {
		if member == c {
			r.roster = append(r.roster[:i], r.roster[i+1:]...)
			break
		}
	}

	if len(r.roster) == 0 {
		r.registry.Remove(r.code)
		return
	}

	if r.hostID == c.PlayerID {
		r.hostID = r.roster[0].PlayerID
	}

	if r.phase == PhaseLobby {
		r.broadcastLobby()
	} else {
		r.broadcastGameState(keyGameStateUpdate)
	}
}

// ReceivedMessage is called when a seated client sends a message
func (r *Room) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "startGame":
		r.execute(func() {
			if err := r.startGame(c, msg.StartingLives); err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			c.Send(OK(msg.Context))
		})
	case "playerAction":
		r.execute(func() {
			if err := r.playerAction(c, msg.ActionType); err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			c.Send(OK(msg.Context))
		})
	default:
		logrus.WithField("msg", msg).Warn("unknown message")
		c.Send(newErrorResponse(msg.Context, errors.New("unknown action")))
	}
}

// startGame builds a fresh engine from the roster and deals the first round
// Must only be called from the run loop
func (r *Room) startGame(c *Client, startingLives int) error {
	if c.PlayerID != r.hostID {
		return errors.New("only the host may start the game")
	}

	if r.phase != PhaseLobby {
		return errors.New("the game is already in progress")
	}

	if startingLives == 0 {
		startingLives = r.registry.defaultLives
	}

	seats := make([]game.Seat, len(r.roster))
	for i, member := range r.roster {
		seats[i] = game.Seat{
			ID:   member.PlayerID,
			Name: member.Name,
		}
	}

	g, err := game.NewGame(seats, game.Options{Lives: startingLives})
	if err != nil {
		return err
	}

	if err := g.StartRound(); err != nil {
		return err
	}

	r.game = g
	r.phase = PhaseInProgress
	r.broadcastGameState(keyGameStateUpdate)

	logrus.WithFields(logrus.Fields{
		"room":    r.code,
		"players": len(seats),
		"lives":   startingLives,
	}).Info("game started")

	return nil
}

// playerAction applies a turn action to the engine
// Must only be called from the run loop
func (r *Room) playerAction(c *Client, actionType string) error {
	if r.phase != PhaseInProgress || r.game == nil {
		return errors.New("no game is in progress")
	}

	if r.resolving {
		return errors.New("the round is being resolved")
	}

	action, err := game.ActionFromString(actionType)
	if err != nil {
		return err
	}

	if _, err := r.game.ExecuteTurnForPlayer(c.PlayerID, action); err != nil {
		if errors.Is(err, deck.ErrEndOfDeck) {
			r.abortGame(err)
			return nil
		}

		return err
	}

	if r.game.IsRoundOver() {
		r.beginResolution()
		return nil
	}

	r.broadcastGameState(keyGameStateUpdate)
	return nil
}

// abortGame handles an unrecoverable engine error by resetting the room to
// the lobby rather than crashing the process
// Must only be called from the run loop
func (r *Room) abortGame(err error) {
	logrus.WithError(err).WithField("room", r.code).Error("game aborted")

	r.game = nil
	r.resolving = false
	r.phase = PhaseLobby
	r.broadcast(newErrorResponse("", errors.New("the game hit an unrecoverable error and was reset")))
	r.broadcastLobby()
}

// broadcast sends the message to every client in the room
// Must only be called from the run loop
func (r *Room) broadcast(res *Response) {
	for _, member := range r.roster {
		if !member.Send(res) {
			logrus.WithField("client", member.String()).Warn("dropped message to slow client")
		}
	}
}

// Must only be called from the run loop
func (r *Room) broadcastLobby() {
	players := make([]*lobbyPlayer, len(r.roster))
	for i, member := range r.roster {
		players[i] = &lobbyPlayer{
			ID:   member.PlayerID,
			Name: member.Name,
		}
	}

	r.broadcast(&Response{
		Key: keyLobbyUpdate,
		Data: &lobbyState{
			RoomID:  r.code,
			HostID:  r.hostID,
			Phase:   r.phase,
			Players: players,
		},
	})
}

// Must only be called from the run loop
func (r *Room) broadcastGameState(key string) {
	if r.game == nil {
		return
	}

	r.broadcast(&Response{
		Key: key,
		Data: &roomGameState{
			RoomID:    r.code,
			HostID:    r.hostID,
			Phase:     r.phase,
			GameState: r.game.State(),
		},
	})
}
