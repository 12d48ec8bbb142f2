package models

import "github.com/golang-jwt/jwt/v4"

// WebSocketClient identifies an authenticated realtime subscriber
type WebSocketClient struct {
	UserID string
	Role   Role
	RideID string
}

// WebSocketClaims are the JWT claims carried on the realtime handshake
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// WSMessage is the frame sent over a ride's realtime channel
type WSMessage struct {
	Event  string               `json:"event"`
	Record LocationUpdateRecord `json:"record,omitempty"`
	Status RideStatus           `json:"status,omitempty"`
}

// WebSocket event names
const (
	WSEventLocationUpdate = "location_update"
	WSEventRideStatus     = "ride_status"
)
