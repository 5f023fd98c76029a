package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// DeviceClaims defines the claims carried by a device token.
type DeviceClaims struct {
	DeviceID string `json:"device_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates device tokens for the HTTP API.
type TokenService interface {
	// GenerateDeviceToken signs a token for the given device
	GenerateDeviceToken(deviceID string) (string, error)

	// ValidateToken parses and verifies a token string
	ValidateToken(tokenString string) (*DeviceClaims, error)
}
