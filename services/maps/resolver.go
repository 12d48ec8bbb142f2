package maps

import (
	"context"
	"fmt"
	"sync"

	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/internal/utils"
)

// Outcome reports how a route slot was resolved
type Outcome string

const (
	// ResolvedPrimary means the provider's driving route was drawn
	ResolvedPrimary Outcome = "primary"
	// ResolvedAlternate means the avoid-highways retry was drawn
	ResolvedAlternate Outcome = "alternate"
	// ResolvedFallback means a straight-line segment was drawn. This is a
	// displayed outcome, not a failure: the user always sees some path.
	ResolvedFallback Outcome = "fallback"
)

// slotState holds a route slot's resolution attempt state. One resolution
// chain per distinct (origin, destination) pair; a change in either
// endpoint resets the slot. This bounds routing calls to one chain per
// meaningfully new driver position, not one per location tick.
type slotState struct {
	origin    models.Position
	dest      models.Position
	attempted bool
	outcome   Outcome
}

// Resolver obtains a drawable path for a route slot with tiered fallback
// and renders it through the engine's provider.
type Resolver struct {
	engine *Engine

	mu    sync.Mutex
	slots map[RouteSlot]*slotState
}

// NewResolver creates a resolver bound to an engine
func NewResolver(engine *Engine) *Resolver {
	return &Resolver{
		engine: engine,
		slots:  make(map[RouteSlot]*slotState),
	}
}

// ResolveRoute draws a path for the slot between origin and destination,
// fitting the viewport to it. Tiers, short-circuiting on first success:
//
//  1. provider driving route
//  2. provider driving route avoiding highways
//  3. straight-line segment between the endpoints
//
// Only a total inability to place even the segment is an error
// (ErrRouteUnavailable). Calling again with an unchanged (origin,
// destination) pair re-issues nothing and returns the recorded outcome.
func (r *Resolver) ResolveRoute(ctx context.Context, slot RouteSlot, origin, dest models.Position, style RouteStyle) (Outcome, error) {
	if !r.engine.Ready() {
		return "", ErrRouteUnavailable
	}

	r.mu.Lock()
	state, ok := r.slots[slot]
	if ok && state.attempted && state.origin == origin && state.dest == dest {
		outcome := state.outcome
		r.mu.Unlock()
		return outcome, nil
	}
	// Mark attempted before issuing any request so concurrent callers and
	// repeat ticks cannot start a second chain for the same pair.
	state = &slotState{origin: origin, dest: dest, attempted: true}
	r.slots[slot] = state
	r.mu.Unlock()

	outcome, err := r.resolve(ctx, slot, origin, dest, style)
	if err != nil {
		r.mu.Lock()
		// Allow a retry for the same pair only on total failure
		delete(r.slots, slot)
		r.mu.Unlock()
		return "", err
	}

	r.mu.Lock()
	state.outcome = outcome
	r.mu.Unlock()
	return outcome, nil
}

func (r *Resolver) resolve(ctx context.Context, slot RouteSlot, origin, dest models.Position, style RouteStyle) (Outcome, error) {
	provider := r.engine.provider

	path, err := provider.Route(ctx, origin, dest, RouteOptions{})
	if err == nil {
		if drawErr := r.draw(ctx, slot, path, style); drawErr == nil {
			return ResolvedPrimary, nil
		}
	} else {
		logger.Debug("Primary routing attempt failed",
			logger.String("slot", string(slot)),
			logger.Err(err))
	}

	// An avoid-highways retry sometimes routes around the restriction that
	// failed the first attempt
	path, err = provider.Route(ctx, origin, dest, RouteOptions{AvoidHighways: true})
	if err == nil {
		if drawErr := r.draw(ctx, slot, path, style); drawErr == nil {
			return ResolvedAlternate, nil
		}
	} else {
		logger.Debug("Alternate routing attempt failed",
			logger.String("slot", string(slot)),
			logger.Err(err))
	}

	// Straight-line segment between the literal endpoints
	segment := []models.Position{origin, dest}
	if err := r.draw(ctx, slot, segment, RouteStyleFallback); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
	}

	logger.Info("Drew straight segment after routing failures",
		logger.String("slot", string(slot)),
		logger.Float64("distance_km", utils.CalculateDistance(origin, dest)))
	return ResolvedFallback, nil
}

func (r *Resolver) draw(ctx context.Context, slot RouteSlot, path []models.Position, style RouteStyle) error {
	if err := r.engine.provider.DrawRoute(ctx, slot, path, style); err != nil {
		return err
	}
	if err := r.engine.FitToPositions(ctx, path, 48); err != nil {
		logger.Warn("Failed to fit viewport to route", logger.Err(err))
	}
	return nil
}

// ClearSlot removes the slot's drawn route and resolution state
func (r *Resolver) ClearSlot(ctx context.Context, slot RouteSlot) error {
	r.mu.Lock()
	delete(r.slots, slot)
	r.mu.Unlock()

	if !r.engine.Ready() {
		return nil
	}
	return r.engine.provider.ClearRoute(ctx, slot)
}
