// Package auth provides the device token implementation of the TokenService.
package auth

import (
	"time"

	"georemind/config"
	"georemind/internal/domain/service"
	"georemind/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "georemind"

// jwtService signs device tokens with HMAC-SHA256.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.DeviceSecret == "" {
		return nil, errors.New("device token secret must be provided")
	}
	cfg.ApplyDefaults()

	return &jwtService{
		secret: []byte(cfg.Auth.DeviceSecret),
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}, nil
}

// GenerateDeviceToken creates a token identifying the device for the HTTP API.
func (s *jwtService) GenerateDeviceToken(deviceID string) (string, error) {
	if deviceID == "" {
		return "", errors.New("device id is required")
	}

	now := s.now()
	claims := service.DeviceClaims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   deviceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign device token")
	}

	return signed, nil
}

// ValidateToken checks the signature, expiry and issuer of a device token.
func (s *jwtService) ValidateToken(tokenString string) (*service.DeviceClaims, error) {
	claims := &service.DeviceClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid device token")
	}
	if !token.Valid || claims.DeviceID == "" {
		return nil, errors.New("invalid device token")
	}

	return claims, nil
}
