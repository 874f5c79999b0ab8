// Package flash carries one-shot user notices across a redirect in a signed
// cookie.
package flash

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the flash cookie.
const CookieName = "flash"

// Expiry bounds how long an unread notice survives.
const Expiry = 5 * time.Minute

// Notice kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Notice is a message shown once on the next rendered page.
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"msg"`
}

type claims struct {
	Notice
	jwt.RegisteredClaims
}

// Encode signs a notice into a compact token.
func Encode(secret string, n Notice) (string, error) {
	now := time.Now()
	c := claims{
		Notice: n,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing notice: %w", err)
	}
	return signed, nil
}

// Decode parses and validates a signed notice.
func Decode(secret, tokenStr string) (*Notice, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing notice: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid notice")
	}
	return &c.Notice, nil
}

// Set stores a notice for the next request.
func Set(w http.ResponseWriter, secret, kind, message string) error {
	value, err := Encode(secret, Notice{Kind: kind, Message: message})
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(Expiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending notice, if any, and clears the cookie. Tampered or
// expired cookies yield nil.
func Pop(w http.ResponseWriter, r *http.Request, secret string) *Notice {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	n, err := Decode(secret, cookie.Value)
	if err != nil {
		return nil
	}
	return n
}
