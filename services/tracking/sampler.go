package tracking

import (
	"context"
	"time"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

// SampleTimeout bounds a single position read
const SampleTimeout = 10 * time.Second

// ReadOptions configure a single position read
type ReadOptions struct {
	HighAccuracy bool
	// MaximumAge is the oldest cached fix the source may return.
	// Zero means a fresh fix is always required.
	MaximumAge time.Duration
}

// PositionSource is the raw device positioning capability
type PositionSource interface {
	// Supported reports whether positioning exists on this device
	Supported() bool
	// Read returns a single position fix, honoring ctx cancellation
	Read(ctx context.Context, opts ReadOptions) (models.Position, error)
}

// PositionSampler is a single-shot position read with the tracking
// contract applied. Retry policy belongs to the caller.
type PositionSampler interface {
	GetCurrentPosition(ctx context.Context) (models.Position, error)
}

// Sampler wraps a PositionSource with high accuracy, a 10 second timeout
// and zero cache age. No internal retry.
type Sampler struct {
	source  PositionSource
	timeout time.Duration
}

// NewSampler creates a sampler over the given source
func NewSampler(source PositionSource) *Sampler {
	return &Sampler{
		source:  source,
		timeout: SampleTimeout,
	}
}

// GetCurrentPosition returns one fresh position fix.
// Returns ErrUnsupported if the device has no positioning capability, or an
// *AcquisitionError wrapping the underlying cause.
func (s *Sampler) GetCurrentPosition(ctx context.Context) (models.Position, error) {
	if s.source == nil || !s.source.Supported() {
		return models.Position{}, ErrUnsupported
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pos, err := s.source.Read(ctx, ReadOptions{HighAccuracy: true, MaximumAge: 0})
	if err != nil {
		return models.Position{}, &AcquisitionError{Cause: err}
	}

	return pos, nil
}
