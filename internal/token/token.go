package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Cookie names for the two bearer-token schemes.
const (
	AdminCookie  = "admin_token"
	ClientCookie = "client_token"
)

const (
	AdminTTL  = 7 * 24 * time.Hour
	ClientTTL = 30 * 24 * time.Hour
)

const (
	roleAdmin  = "admin"
	roleClient = "client"
)

var ErrInvalidToken = errors.New("invalid token")

func sign(secret string, claims jwt.MapClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func verify(secret, tokenString string) (jwt.MapClaims, error) {
	// An unset secret must never validate anything.
	if secret == "" {
		return nil, ErrInvalidToken
	}

	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SignAdmin mints the admin session token (7 day expiry).
func SignAdmin(secret, email string) (string, error) {
	return sign(secret, jwt.MapClaims{
		"role":  roleAdmin,
		"email": email,
	}, AdminTTL)
}

// VerifyAdmin returns the admin email carried by a valid admin token.
func VerifyAdmin(secret, tokenString string) (string, error) {
	claims, err := verify(secret, tokenString)
	if err != nil {
		return "", err
	}

	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	if role != roleAdmin || email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}

// SignClient mints the client session token (30 day expiry).
func SignClient(secret, clientID string) (string, error) {
	return sign(secret, jwt.MapClaims{
		"role":     roleClient,
		"clientId": clientID,
	}, ClientTTL)
}

// VerifyClient returns the client id carried by a valid client token.
func VerifyClient(secret, tokenString string) (string, error) {
	claims, err := verify(secret, tokenString)
	if err != nil {
		return "", err
	}

	role, _ := claims["role"].(string)
	clientID, _ := claims["clientId"].(string)
	if role != roleClient || clientID == "" {
		return "", ErrInvalidToken
	}
	return clientID, nil
}
