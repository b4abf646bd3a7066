package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to a session via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	session *Session
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, session *Session) *Client {
	return &Client{
		send:    make(chan interface{}, 256),
		Close:   make(chan string, 1),
		Conn:    conn,
		session: session,
	}
}

// Send sends a message to the web client
// If the client is not keeping up, the message is dropped
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	remote := "-"
	if c.Conn != nil {
		remote = c.Conn.RemoteAddr().String()
	}

	return fmt.Sprintf("%s:%s", remote, c.session.UUID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	state, err := c.session.ActionFromString(msg.Action)
	if err != nil {
		logrus.WithError(err).WithField("client", c.String()).Debug("action failed")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	// the other clients got the state through the broadcast, the sender gets its context back
	c.Send(newStateResponse(msg.Context, state))
}

func (c *Client) close(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}
