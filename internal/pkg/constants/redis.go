package constants

// Redis key formats
const (
	KeyDriverGeo       = "drivers:locations" // Geo set of live driver positions
	KeyRideLocation    = "ride:location:%s"  // Format: ride:location:{ride_id}
	ChannelRideUpdates = "ride:%s:location"  // Pub/sub channel, format: ride:{ride_id}:location
)

// Redis hash fields
const (
	FieldDriverLat    = "driver_lat"
	FieldDriverLng    = "driver_lng"
	FieldPassengerLat = "passenger_lat"
	FieldPassengerLng = "passenger_lng"
	FieldUpdatedAt    = "updated_at"
)
