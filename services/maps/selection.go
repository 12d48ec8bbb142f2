package maps

import (
	"context"

	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
)

// Selection is the tuple reported when a user picks an address from the map
type Selection struct {
	Position models.Position
	Address  string
}

// SelectFromMap reverse-geocodes a map click and places the selection
// marker, replacing any previous selection. A geocode failure is non-fatal:
// the selection proceeds without an address string.
func (e *Engine) SelectFromMap(ctx context.Context, clickPos models.Position) (Selection, error) {
	if err := e.requireReady(); err != nil {
		return Selection{}, err
	}

	sel := Selection{Position: clickPos}

	address, err := e.Geocode(ctx, clickPos)
	if err != nil {
		logger.Warn("Reverse geocode failed for map selection", logger.Err(err))
	} else {
		sel.Address = address
	}

	// At most one selection marker at a time
	if err := e.CreateOrUpdateMarker(ctx, SlotSelectionMarker, clickPos, StyleSelection); err != nil {
		return Selection{}, err
	}

	return sel, nil
}

// SearchAddress resolves a typed query through the place search and places
// the selection marker, replacing any previous selection.
func (e *Engine) SearchAddress(ctx context.Context, query string) (Selection, error) {
	if err := e.requireReady(); err != nil {
		return Selection{}, err
	}

	pos, address, err := e.provider.SearchPlace(ctx, query)
	if err != nil {
		return Selection{}, err
	}

	if err := e.CreateOrUpdateMarker(ctx, SlotSelectionMarker, pos, StyleSelection); err != nil {
		return Selection{}, err
	}

	return Selection{Position: pos, Address: address}, nil
}

// ClearSelection removes the selection marker
func (e *Engine) ClearSelection(ctx context.Context) error {
	return e.RemoveMarker(ctx, SlotSelectionMarker)
}
