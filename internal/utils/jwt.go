package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"fixmycity/internal/config"
	"fixmycity/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "fixmycity-api"

// GenerateTokens issues an access/refresh token pair for the given claims.
// Lifetimes come from ACCESS_TOKEN_TTL and REFRESH_TOKEN_TTL; the signing
// secret must be set in JWT_SECRET.
func GenerateTokens(claims *models.UserClaims) (accessToken string, refreshToken string, err error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", "", errors.New("JWT_SECRET not configured")
	}

	now := time.Now()
	accessTTL := config.GetDurationEnv("ACCESS_TOKEN_TTL", 15*time.Minute)
	refreshTTL := config.GetDurationEnv("REFRESH_TOKEN_TTL", 7*24*time.Hour)

	accessToken, err = signToken(claims, now, accessTTL, jwtSecret, true)
	if err != nil {
		return "", "", err
	}

	// Refresh tokens carry no permissions; they are re-derived from the
	// user's role when the pair is rotated.
	refreshToken, err = signToken(claims, now, refreshTTL, jwtSecret, false)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func signToken(claims *models.UserClaims, now time.Time, ttl time.Duration, secret string, withPermissions bool) (string, error) {
	signed := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
		},
		UserID:       claims.UserID,
		Email:        claims.Email,
		Role:         claims.Role,
		TokenVersion: claims.TokenVersion,
	}
	if withPermissions {
		signed.Permissions = claims.Permissions
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, signed).SignedString([]byte(secret))
}

// ParseToken parses and validates a JWT token string.
// It returns the token if valid, or an error if something is wrong.
func ParseToken(tokenStr string) (*jwt.Token, *models.UserClaims, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, nil, errors.New("JWT_SECRET not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		return nil, nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, nil, errors.New("invalid token claims")
	}

	return token, claims, nil
}
