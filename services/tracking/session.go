package tracking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
)

// PublishInterval is the fixed spacing between publish attempts. The server
// coalesces anything faster than its own 2 second window; the extra second
// of client-side slack is deliberate.
const PublishInterval = 3 * time.Second

// Snapshot is the externally visible session state
type Snapshot struct {
	IsTracking      bool
	SelfPosition    *models.Position
	PartnerPosition *models.Position
	LastError       string
}

// Session composes the sampler, publisher and partner feed into one
// start/stop-able unit scoped to a ride.
//
// Two states: Idle and Active. Start and Stop are both idempotent. On
// teardown no further publish or feed callback mutates session state:
// every mutation is guarded by a generation counter that Stop advances
// synchronously, so in-flight work against a stale generation is
// discarded.
type Session struct {
	userID    string
	sampler   PositionSampler
	publisher Publisher
	feed      PartnerFeed
	interval  time.Duration

	mu      sync.Mutex
	active  bool
	gen     uint64
	cancel  context.CancelFunc
	selfPos *models.Position
	partner *models.Position
	lastErr string
}

// NewSession creates an idle session for the given user
func NewSession(userID string, sampler PositionSampler, publisher Publisher, feed PartnerFeed) *Session {
	return &Session{
		userID:    userID,
		sampler:   sampler,
		publisher: publisher,
		feed:      feed,
		interval:  PublishInterval,
	}
}

// Start transitions Idle -> Active: begins the sample/publish loop and
// opens the partner feed. No-op without a user identity and ride id, or if
// already Active.
func (s *Session) Start(ctx context.Context, rideID string, role models.Role) error {
	if s.userID == "" || rideID == "" {
		return errors.New("user identity and ride id are required to start tracking")
	}
	if !role.Valid() {
		return errors.New("invalid role")
	}

	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return nil
	}
	s.active = true
	gen := s.gen
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	positions, err := s.feed.Subscribe(loopCtx, rideID, role)
	if err != nil {
		// Tracking still runs; the partner marker just stays absent
		logger.Warn("Failed to open partner feed",
			logger.String("ride_id", rideID),
			logger.Err(err))
		s.apply(gen, func() { s.lastErr = err.Error() })
	} else {
		go s.consumeFeed(gen, positions)
	}

	go s.runLoop(loopCtx, gen, rideID, role)

	logger.Info("Tracking started",
		logger.String("ride_id", rideID),
		logger.String("role", string(role)))

	return nil
}

// Stop transitions Active -> Idle: cancels the loop timer, then closes the
// feed subscription. Idempotent; never fails on an Idle session.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.gen++ // invalidate in-flight work before releasing the lock
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.feed.Unsubscribe()

	logger.Info("Tracking stopped")
}

// Snapshot returns the current session state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		IsTracking:      s.active,
		SelfPosition:    s.selfPos,
		PartnerPosition: s.partner,
		LastError:       s.lastErr,
	}
}

// runLoop samples and publishes once per interval. Publishes are strictly
// sequential: the ticker drops ticks while a publish is still settling, so
// at most one request is in flight.
func (s *Session) runLoop(ctx context.Context, gen uint64, rideID string, role models.Role) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if fatal := s.sampleAndPublish(ctx, gen, rideID, role); fatal {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// sampleAndPublish performs one sample/publish cycle. Returns true when the
// failure is fatal for sampling (no positioning capability).
func (s *Session) sampleAndPublish(ctx context.Context, gen uint64, rideID string, role models.Role) bool {
	pos, err := s.sampler.GetCurrentPosition(ctx)
	if err != nil {
		s.apply(gen, func() { s.lastErr = err.Error() })
		return errors.Is(err, ErrUnsupported)
	}

	s.apply(gen, func() {
		p := pos
		s.selfPos = &p
	})

	if err := s.publisher.Publish(ctx, pos, rideID, role); err != nil {
		// Reported, loop continues on the same cadence
		s.apply(gen, func() { s.lastErr = err.Error() })
		return false
	}

	s.apply(gen, func() { s.lastErr = "" })
	return false
}

func (s *Session) consumeFeed(gen uint64, positions <-chan models.Position) {
	for pos := range positions {
		p := pos
		s.apply(gen, func() { s.partner = &p })
	}
}

// apply runs a state mutation only if the session generation still matches;
// results arriving after Stop are discarded.
func (s *Session) apply(gen uint64, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return
	}
	fn()
}
