package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player connected to the server via websockets
// Each connection is assigned an opaque ID which doubles as the player ID
// for the lifetime of the connection
type Client struct {
	// Conn is the underlying websocket connection. It may be nil in tests
	Conn *websocket.Conn

	// PlayerID uniquely identifies the connection
	PlayerID string

	// Name is the display name supplied on createRoom or joinRoom
	Name string

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// send is a channel for sending messages to the client
	send chan interface{}

	room *Room
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		Conn:     conn,
		PlayerID: uuid.New().String(),
		Close:    make(chan string),
		send:     make(chan interface{}, 256),
	}
}

// Send sends a message to the web client
// Returns false if the client's buffer is full and the message was dropped
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outbound messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	room := "-"
	if c.room != nil {
		room = c.room.code
	}

	return fmt.Sprintf("%s:%s", c.PlayerID, room)
}

// ReceivedMessage is called when the server receives a message from a
// connected client that already belongs to a room
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.room == nil {
		logrus.WithField("msg", msg).Warn("received message, but client is not in a room")
		c.Send(newErrorResponse(msg.Context, errNotInRoom))
		return
	}

	c.room.ReceivedMessage(c, msg)
}
