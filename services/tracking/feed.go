package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
)

// PartnerFeed delivers the counterpart's position as it arrives on the
// ride's realtime channel.
type PartnerFeed interface {
	// Subscribe opens the ride's channel and returns a stream of the
	// counterpart's positions. Re-subscribing tears down the prior
	// channel first; at most one channel is active per feed.
	Subscribe(ctx context.Context, rideID string, selfRole models.Role) (<-chan models.Position, error)

	// Unsubscribe releases the channel. Idempotent.
	Unsubscribe()
}

// feedBuffer bounds undelivered positions; overflow drops the oldest,
// the feed is most-recent display, not a consistency path.
const feedBuffer = 16

// WebsocketFeed subscribes to the location service's per-ride websocket
type WebsocketFeed struct {
	baseURL string
	token   string
	dialer  *websocket.Dialer

	mu     sync.Mutex
	conn   *websocket.Conn
	cancel context.CancelFunc
}

// NewWebsocketFeed creates a feed against the location service.
// baseURL is the service's HTTP base; the scheme is rewritten for ws.
func NewWebsocketFeed(baseURL, token string) *WebsocketFeed {
	return &WebsocketFeed{
		baseURL: baseURL,
		token:   token,
		dialer:  websocket.DefaultDialer,
	}
}

// Subscribe opens the ride's channel, tearing down any prior subscription
func (f *WebsocketFeed) Subscribe(ctx context.Context, rideID string, selfRole models.Role) (<-chan models.Position, error) {
	if rideID == "" {
		return nil, fmt.Errorf("ride id is required")
	}
	if !selfRole.Valid() {
		return nil, fmt.Errorf("invalid role: %q", selfRole)
	}

	// At most one active channel per feed
	f.Unsubscribe()

	url := wsURL(f.baseURL) + "/ws/rides/" + rideID
	header := http.Header{}
	header.Set("Authorization", "Bearer "+f.token)

	conn, _, err := f.dialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("failed to open realtime channel: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)

	f.mu.Lock()
	f.conn = conn
	f.cancel = cancel
	f.mu.Unlock()

	out := make(chan models.Position, feedBuffer)
	go f.readLoop(ctx, conn, selfRole, out)

	return out, nil
}

func (f *WebsocketFeed) readLoop(ctx context.Context, conn *websocket.Conn, selfRole models.Role, out chan models.Position) {
	defer close(out)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				logger.Debug("Realtime channel read ended", logger.Err(err))
			}
			return
		}

		var msg models.WSMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			logger.Warn("Ignoring malformed realtime message", logger.Err(err))
			continue
		}
		if msg.Event != models.WSEventLocationUpdate {
			continue
		}

		// Only the counterpart's half of the record is ours to consume;
		// records without it are partial upserts from our own side.
		pos, ok := counterpartPosition(&msg.Record, selfRole)
		if !ok {
			continue
		}

		select {
		case out <- pos:
		default:
			// Buffer full: drop the oldest so the newest wins
			select {
			case <-out:
			default:
			}
			select {
			case out <- pos:
			default:
			}
		}
	}
}

// counterpartPosition extracts the half of the record belonging to the
// other role.
func counterpartPosition(record *models.LocationUpdateRecord, selfRole models.Role) (models.Position, bool) {
	if selfRole == models.RoleDriver {
		return record.PassengerPosition()
	}
	return record.DriverPosition()
}

// Unsubscribe releases the channel. Safe to call repeatedly.
func (f *WebsocketFeed) Unsubscribe() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	if f.conn != nil {
		f.conn.Close()
		f.conn = nil
	}
}

func wsURL(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base
}
