package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adiwira/tebengan/internal/pkg/constants"
	"github.com/adiwira/tebengan/internal/pkg/database"
	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/internal/pkg/nsq"
	"github.com/adiwira/tebengan/services/location"
)

type locationGW struct {
	redisClient *database.RedisClient
	producer    *nsq.Producer
}

// NewLocationGW creates a new location gateway
func NewLocationGW(redisClient *database.RedisClient, producer *nsq.Producer) location.LocationGW {
	return &locationGW{
		redisClient: redisClient,
		producer:    producer,
	}
}

// BroadcastRecord publishes the merged record on the ride's pub/sub channel.
// The websocket bridge forwards it to subscribed counterparts.
func (g *locationGW) BroadcastRecord(ctx context.Context, record *models.LocationUpdateRecord) error {
	payload, err := json.Marshal(models.WSMessage{
		Event:  models.WSEventLocationUpdate,
		Record: *record,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal location record: %w", err)
	}

	channel := fmt.Sprintf(constants.ChannelRideUpdates, record.RideID)
	return g.redisClient.Publish(ctx, channel, payload)
}

// PublishLocationEvent publishes a location event to NSQ for downstream
// consumers such as the history writer.
func (g *locationGW) PublishLocationEvent(ctx context.Context, event models.LocationEvent) error {
	return g.producer.Publish(constants.TopicLocationUpdates, event)
}
