package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// MintCookieToken creates the signed token stored in the browser cookie. It
// carries only the session id and role; everything else lives in Redis.
func MintCookieToken(secret []byte, sessionID, role string, maxAge time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sessionID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(maxAge).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseCookieToken validates the cookie token and returns the session id and
// role claim.
func ParseCookieToken(secret []byte, tokenString string) (sessionID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid cookie token")
	}
	sessionID, ok = claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", "", errors.New("cookie token has no valid 'sid' claim")
	}
	role, _ = claims["role"].(string)
	return sessionID, role, nil
}
