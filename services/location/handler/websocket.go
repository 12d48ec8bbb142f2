package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/adiwira/tebengan/internal/pkg/constants"
	"github.com/adiwira/tebengan/internal/pkg/database"
	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/internal/pkg/websocket"
)

// RideChannelHandler bridges a ride's Redis pub/sub channel onto websocket
// subscribers. One subscription per socket; the bridge ends when the client
// disconnects.
type RideChannelHandler struct {
	manager     *websocket.Manager
	redisClient *database.RedisClient
}

// NewRideChannelHandler creates a new realtime channel handler
func NewRideChannelHandler(manager *websocket.Manager, redisClient *database.RedisClient) *RideChannelHandler {
	return &RideChannelHandler{
		manager:     manager,
		redisClient: redisClient,
	}
}

// Subscribe upgrades the connection and streams the ride's location records
func (h *RideChannelHandler) Subscribe(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ride id is required")
	}

	return h.manager.HandleConnection(c, func(client *models.WebSocketClient, ws *gorillaws.Conn) error {
		client.RideID = rideID
		return h.bridge(c.Request().Context(), client, ws)
	})
}

func (h *RideChannelHandler) bridge(ctx context.Context, client *models.WebSocketClient, ws *gorillaws.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	channel := fmt.Sprintf(constants.ChannelRideUpdates, client.RideID)
	sub := h.redisClient.Subscribe(ctx, channel)
	defer sub.Close()

	logger.Info("Realtime channel opened",
		logger.String("ride_id", client.RideID),
		logger.String("user_id", client.UserID),
		logger.String("role", string(client.Role)))

	// Reader goroutine: a read error means the client went away
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				readErr <- err
				return
			}
		}
	}()

	msgs := sub.Channel()
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := ws.WriteMessage(gorillaws.TextMessage, []byte(msg.Payload)); err != nil {
				return err
			}
			if isTerminalStatusFrame([]byte(msg.Payload)) {
				logger.Info("Ride reached terminal status, closing realtime channel",
					logger.String("ride_id", client.RideID))
				return nil
			}
		case err := <-readErr:
			logger.Debug("Realtime channel closed by client",
				logger.String("ride_id", client.RideID),
				logger.Err(err))
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// isTerminalStatusFrame reports whether the frame announces a terminal ride
// status. The frame is forwarded first so subscribers see the transition.
func isTerminalStatusFrame(payload []byte) bool {
	var msg models.WSMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return false
	}
	return msg.Event == models.WSEventRideStatus && msg.Status.IsTerminal()
}
