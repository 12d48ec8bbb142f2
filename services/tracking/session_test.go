package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

type fakeSampler struct {
	mu    sync.Mutex
	pos   models.Position
	err   error
	calls int
}

func (f *fakeSampler) GetCurrentPosition(ctx context.Context) (models.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return models.Position{}, f.err
	}
	return f.pos, nil
}

func (f *fakeSampler) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeSampler) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type fakePublisher struct {
	mu        sync.Mutex
	err       error
	published []models.Position
}

func (f *fakePublisher) Publish(ctx context.Context, pos models.Position, rideID string, role models.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, pos)
	return nil
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

type fakeFeed struct {
	mu           sync.Mutex
	ch           chan models.Position
	subscribeErr error
	subscribes   int
	unsubscribes int
}

func (f *fakeFeed) Subscribe(ctx context.Context, rideID string, selfRole models.Role) (<-chan models.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribes++
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	f.ch = make(chan models.Position, 16)
	return f.ch, nil
}

func (f *fakeFeed) Unsubscribe() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribes++
}

func (f *fakeFeed) push(pos models.Position) {
	f.mu.Lock()
	ch := f.ch
	f.mu.Unlock()
	ch <- pos
}

func newTestSession(t *testing.T) (*Session, *fakeSampler, *fakePublisher, *fakeFeed) {
	t.Helper()
	sampler := &fakeSampler{pos: models.Position{Latitude: -6.17, Longitude: 106.82}}
	publisher := &fakePublisher{}
	feed := &fakeFeed{}
	session := NewSession("user-123", sampler, publisher, feed)
	session.interval = 5 * time.Millisecond
	t.Cleanup(session.Stop)
	return session, sampler, publisher, feed
}

func TestSession_StartValidation(t *testing.T) {
	sampler := &fakeSampler{}
	publisher := &fakePublisher{}
	feed := &fakeFeed{}

	noUser := NewSession("", sampler, publisher, feed)
	assert.Error(t, noUser.Start(context.Background(), "ride-456", models.RoleDriver))

	session := NewSession("user-123", sampler, publisher, feed)
	assert.Error(t, session.Start(context.Background(), "", models.RoleDriver))
	assert.Error(t, session.Start(context.Background(), "ride-456", models.Role("admin")))

	// Nothing was started
	assert.False(t, session.Snapshot().IsTracking)
	assert.Equal(t, 0, feed.subscribes)
}

func TestSession_PublishLoop(t *testing.T) {
	session, sampler, publisher, _ := newTestSession(t)

	require.NoError(t, session.Start(context.Background(), "ride-456", models.RoleDriver))

	assert.Eventually(t, func() bool {
		return publisher.count() >= 2
	}, time.Second, time.Millisecond)

	snap := session.Snapshot()
	assert.True(t, snap.IsTracking)
	require.NotNil(t, snap.SelfPosition)
	assert.Equal(t, sampler.pos, *snap.SelfPosition)
	assert.Empty(t, snap.LastError)
}

func TestSession_StartIsIdempotent(t *testing.T) {
	session, _, _, feed := newTestSession(t)

	require.NoError(t, session.Start(context.Background(), "ride-456", models.RoleDriver))
	require.NoError(t, session.Start(context.Background(), "ride-456", models.RoleDriver))

	assert.Equal(t, 1, feed.subscribes)
}

func TestSession_PartnerPositionFromFeed(t *testing.T) {
	session, _, _, feed := newTestSession(t)

	require.NoError(t, session.Start(context.Background(), "ride-456", models.RolePassenger))

	partner := models.Position{Latitude: -6.19, Longitude: 106.84}
	feed.push(partner)

	assert.Eventually(t, func() bool {
		snap := session.Snapshot()
		return snap.PartnerPosition != nil && *snap.PartnerPosition == partner
	}, time.Second, time.Millisecond)
}

func TestSession_StopIsIdempotent(t *testing.T) {
	session, _, _, feed := newTestSession(t)

	require.NoError(t, session.Start(context.Background(), "ride-456", models.RoleDriver))
	session.Stop()
	session.Stop()

	assert.False(t, session.Snapshot().IsTracking)
	assert.Equal(t, 1, feed.unsubscribes)

	// Stop on a never-started session is also a no-op
	idle := NewSession("user-123", &fakeSampler{}, &fakePublisher{}, &fakeFeed{})
	idle.Stop()
	assert.Equal(t, 1, feed.unsubscribes)
}

func TestSession_StaleFeedResultsAreDiscarded(t *testing.T) {
	session, _, _, feed := newTestSession(t)

	require.NoError(t, session.Start(context.Background(), "ride-456", models.RolePassenger))

	first := models.Position{Latitude: -6.19, Longitude: 106.84}
	feed.push(first)
	assert.Eventually(t, func() bool {
		return session.Snapshot().PartnerPosition != nil
	}, time.Second, time.Millisecond)

	session.Stop()

	// The fake keeps the channel open; anything still in flight after
	// Stop must not mutate session state.
	stale := models.Position{Latitude: 0, Longitude: 0}
	feed.push(stale)
	time.Sleep(20 * time.Millisecond)

	snap := session.Snapshot()
	require.NotNil(t, snap.PartnerPosition)
	assert.Equal(t, first, *snap.PartnerPosition)
}

func TestSession_FeedFailureDoesNotBlockTracking(t *testing.T) {
	sampler := &fakeSampler{pos: models.Position{Latitude: -6.17, Longitude: 106.82}}
	publisher := &fakePublisher{}
	feed := &fakeFeed{subscribeErr: errors.New("channel unavailable")}
	session := NewSession("user-123", sampler, publisher, feed)
	session.interval = 5 * time.Millisecond
	t.Cleanup(session.Stop)

	require.NoError(t, session.Start(context.Background(), "ride-456", models.RoleDriver))

	assert.Eventually(t, func() bool {
		return publisher.count() >= 1
	}, time.Second, time.Millisecond)

	snap := session.Snapshot()
	assert.True(t, snap.IsTracking)
	assert.Nil(t, snap.PartnerPosition)
}

func TestSession_UnsupportedDeviceStopsLoop(t *testing.T) {
	session, sampler, publisher, _ := newTestSession(t)
	sampler.setErr(ErrUnsupported)

	require.NoError(t, session.Start(context.Background(), "ride-456", models.RoleDriver))

	assert.Eventually(t, func() bool {
		return session.Snapshot().LastError != ""
	}, time.Second, time.Millisecond)

	calls := sampler.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, sampler.callCount(), "loop should stop after unsupported")
	assert.Equal(t, 0, publisher.count())
}

func TestSession_TransientFailuresKeepCadence(t *testing.T) {
	session, sampler, publisher, _ := newTestSession(t)
	sampler.setErr(&AcquisitionError{Cause: errors.New("gps timeout")})

	require.NoError(t, session.Start(context.Background(), "ride-456", models.RoleDriver))

	assert.Eventually(t, func() bool {
		return sampler.callCount() >= 3
	}, time.Second, time.Millisecond)
	assert.NotEmpty(t, session.Snapshot().LastError)

	// Recovery clears the reported error
	sampler.setErr(nil)
	assert.Eventually(t, func() bool {
		snap := session.Snapshot()
		return publisher.count() >= 1 && snap.LastError == ""
	}, time.Second, time.Millisecond)
}
