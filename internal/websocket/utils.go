package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

// Write and read deadlines for the seat stream. Reads are bounded by
// the client's ping cadence; a connection silent for longer than
// readWait is considered gone.
const (
	writeWait = 10 * time.Second
	readWait  = 5 * time.Minute
)

// WriteTyped sends one of the typed server events over the socket.
func WriteTyped(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// ReadJSON reads the next client message into v, renewing the read
// deadline first.
func ReadJSON(conn *websocket.Conn, v interface{}) error {
	conn.SetReadDeadline(time.Now().Add(readWait))
	return conn.ReadJSON(v)
}
