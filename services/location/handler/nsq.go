package handler

import (
	"context"

	"github.com/adiwira/tebengan/internal/pkg/constants"
	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/internal/pkg/nsq"
	"github.com/adiwira/tebengan/services/location"
)

// HistoryConsumer consumes location events and writes history rows
type HistoryConsumer struct {
	locationUC location.LocationUC
	consumer   *nsq.Consumer
}

// NewHistoryConsumer creates and connects the history consumer
func NewHistoryConsumer(locationUC location.LocationUC, cfg models.NSQConfig) (*HistoryConsumer, error) {
	h := &HistoryConsumer{locationUC: locationUC}

	consumer, err := nsq.NewConsumer(
		constants.TopicLocationUpdates,
		constants.ChannelHistoryWriter,
		cfg.Address,
		h.handleLocationEvent,
	)
	if err != nil {
		return nil, err
	}

	// Lookupd discovery picks up nsqd instances beyond the bootstrap one
	if len(cfg.LookupAddresses) > 0 {
		if err := consumer.ConnectToLookupd(cfg.LookupAddresses); err != nil {
			consumer.Stop()
			return nil, err
		}
	}

	h.consumer = consumer
	return h, nil
}

func (h *HistoryConsumer) handleLocationEvent(body []byte) error {
	var event models.LocationEvent
	if err := nsq.UnmarshalMessage(body, &event); err != nil {
		return err
	}

	if err := h.locationUC.RecordHistory(context.Background(), event); err != nil {
		return err
	}

	logger.Debug("Recorded location history",
		logger.String("ride_id", event.RideID),
		logger.String("role", event.Role),
		logger.String("at", models.FormatTime(event.Timestamp)))
	return nil
}

// Stop gracefully stops the consumer
func (h *HistoryConsumer) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
