package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventSeats Event = "seats"
	EventError Event = "error"
	EventPong  Event = "pong"
)

// SeatUpdate announces the current number of seats left in a class.
// The first message on a stream is a snapshot; subsequent messages are
// pushed whenever a checkout commits.
type SeatUpdate struct {
	Event   Event `json:"event"`
	ClassID int64 `json:"class_id"`
	Seats   int   `json:"seats"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
