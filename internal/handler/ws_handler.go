package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/reelify/reelify-backend/internal/config"
	"github.com/reelify/reelify-backend/internal/service"
	ws "github.com/reelify/reelify-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams live seat counts per class.
type WSHandler struct {
	rdb          *redis.Client
	classService *service.ClassService
	log          zerolog.Logger
	upgrader     websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, classService *service.ClassService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:          rdb,
		classService: classService,
		log:          log.With().Str("component", "ws_handler").Logger(),
		upgrader:     buildUpgrader(allowedOrigins),
	}
}

// ClassSeatsStream godoc
// WS /ws/v1/classes/:id/seats
// Upgrades to WebSocket and pushes the seats-left count for a class:
// one snapshot on connect, then an update whenever a checkout commits.
func (h *WSHandler) ClassSeatsStream(c *gin.Context) {
	classID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class ID"})
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Int64("class_id", classID).Logger()
	wsLog.Info().Msg("Seat stream connected")

	// Both the pump goroutine and the pong replies write to the socket.
	var writeMu sync.Mutex
	write := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return ws.WriteTyped(conn, v)
	}

	// Snapshot before any pushed updates so the client never starts stale.
	if err := write(ws.SeatUpdate{Event: ws.EventSeats, ClassID: classID, Seats: class.Seats}); err != nil {
		return
	}

	// Subscribe before entering the loops; checkout publishes the new
	// count on this channel after every commit.
	pubsub := h.rdb.Subscribe(c.Request.Context(), config.CacheKey.ClassSeatsChannel(classID))
	defer pubsub.Close()

	done := make(chan struct{})

	// Writer: fan redis messages out to the socket.
	go func() {
		defer close(done)
		for msg := range pubsub.Channel() {
			seats, err := strconv.Atoi(msg.Payload)
			if err != nil {
				wsLog.Warn().Str("payload", msg.Payload).Msg("Malformed seat broadcast")
				continue
			}
			if err := write(ws.SeatUpdate{Event: ws.EventSeats, ClassID: classID, Seats: seats}); err != nil {
				return
			}
		}
	}()

	// Reader: keepalive pings and close detection.
	for {
		var msg ws.RequestEnvelope
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			break
		}

		switch msg.Action {
		case ws.ActionPing:
			_ = write(ws.PongResponse{Event: ws.EventPong})
		default:
			_ = write(ws.ErrorResponse{Event: ws.EventError, Error: "unknown action: " + string(msg.Action)})
		}
	}

	pubsub.Close()
	<-done
}
