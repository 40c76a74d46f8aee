// Package gate implements the patrol-log unlock: one shared password for
// the whole crew, checked server-side, remembered per device. It is a
// casual deterrent against drive-by edits, not a security boundary; anyone
// with the password can mutate any device's log.
package gate

import (
	"context"
	"errors"
	"time"

	"github.com/dgennetten/trailsMapper/internal/kv"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

var ErrWrongPassword = errors.New("incorrect password")

type Service struct {
	secretHash []byte
	jwtSecret  []byte
	kv         kv.Store
}

type Claims struct {
	DeviceID string `json:"device_id"`
	jwt.RegisteredClaims
}

// NewService uses the bcrypt hash when configured, otherwise hashes the
// plaintext fallback at startup.
func NewService(secretHash, plainSecret, jwtSecret string, store kv.Store) (*Service, error) {
	hash := []byte(secretHash)
	if secretHash == "" {
		generated, err := bcrypt.GenerateFromPassword([]byte(plainSecret), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = generated
	}
	return &Service{
		secretHash: hash,
		jwtSecret:  []byte(jwtSecret),
		kv:         store,
	}, nil
}

func rememberedKey(deviceID string) string {
	return "trailsMapper.remembered:" + deviceID
}

// Unlock checks the password and issues a device token. On a wrong
// password nothing changes; the caller keeps its pending action and may
// retry.
func (s *Service) Unlock(ctx context.Context, deviceID, password string, remember bool) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.secretHash, []byte(password)); err != nil {
		return "", ErrWrongPassword
	}

	token, err := s.signToken(deviceID)
	if err != nil {
		return "", err
	}

	if remember {
		if err := s.kv.Set(ctx, rememberedKey(deviceID), "true"); err != nil {
			return "", err
		}
	}
	return token, nil
}

func (s *Service) Remembered(ctx context.Context, deviceID string) bool {
	val, ok, err := s.kv.Get(ctx, rememberedKey(deviceID))
	return err == nil && ok && val == "true"
}

func (s *Service) Forget(ctx context.Context, deviceID string) error {
	return s.kv.Delete(ctx, rememberedKey(deviceID))
}

func (s *Service) ValidateToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", errors.New("token invalid")
	}
	return claims.DeviceID, nil
}

func (s *Service) signToken(deviceID string) (string, error) {
	claims := Claims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
