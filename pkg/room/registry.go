package room

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"screwyourneighbor-server/internal/rng"
)

// ErrRoomNotFound is returned when a room code does not match a live room
var ErrRoomNotFound = errors.New("room not found")

// Registry tracks every live room by its code
// It is the only structure shared across rooms, so all map access is guarded
type Registry struct {
	lock  sync.Mutex
	rooms map[string]*Room
	rand  rng.Generator

	// per-room settings handed to new rooms
	resolutionDelay time.Duration
	defaultLives    int
}

// NewRegistry returns a new room registry
func NewRegistry(resolutionDelay time.Duration, defaultLives int) *Registry {
	return &Registry{
		rooms:           make(map[string]*Room),
		rand:            rng.Crypto{},
		resolutionDelay: resolutionDelay,
		defaultLives:    defaultLives,
	}
}

// CreateRoom creates a new room with a unique code and starts its run loop
func (reg *Registry) CreateRoom() *Room {
	reg.lock.Lock()
	defer reg.lock.Unlock()

	var code string
	for {
		code = randomCode(reg.rand)
		if _, found := reg.rooms[code]; !found {
			break
		}
	}

	room := newRoom(code, reg)
	reg.rooms[code] = room
	room.StartShift()

	logrus.WithField("room", code).Debug("room created")
	return room
}

// Get returns the room for the given code
func (reg *Registry) Get(code string) (*Room, error) {
	reg.lock.Lock()
	defer reg.lock.Unlock()

	room, found := reg.rooms[strings.ToUpper(code)]
	if !found {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

// Remove removes the room from the registry and ends its run loop
// Codes may be reused once the room is gone
func (reg *Registry) Remove(code string) {
	reg.lock.Lock()
	defer reg.lock.Unlock()

	room, found := reg.rooms[code]
	if !found {
		return
	}

	delete(reg.rooms, code)
	room.EndShift()

	logrus.WithField("room", code).Debug("room removed")
}

// ReceivedMessage routes a message from a client that may not be in a room yet
func (reg *Registry) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "createRoom":
		if err := validatePlayerName(msg.PlayerName); err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		room := reg.CreateRoom()
		room.execute(func() {
			room.addClient(c, msg.PlayerName)
		})
	case "joinRoom":
		if err := validatePlayerName(msg.PlayerName); err != nil {
			c.Send(newJoinErrorResponse(msg.Context, err))
			return
		}

		room, err := reg.Get(msg.RoomID)
		if err != nil {
			c.Send(newJoinErrorResponse(msg.Context, err))
			return
		}

		room.execute(func() {
			room.addClient(c, msg.PlayerName)
		})
	default:
		c.ReceivedMessage(msg)
	}
}

// ClientDisconnected is called when a client's connection goes away
func (reg *Registry) ClientDisconnected(c *Client) {
	room := c.room
	if room == nil {
		return
	}

	room.execute(func() {
		room.removeClient(c)
	})
}

func validatePlayerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("a player name is required")
	}

	return nil
}
