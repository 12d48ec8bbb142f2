package constants

// NSQ topics and channels
const (
	TopicLocationUpdates   = "location_updates"
	ChannelHistoryWriter   = "history_writer"
)
