package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"telegram-gift-certificates/internal/config"
)

// OperatorClaims is the payload of the short-lived tokens minted for a
// logged-in shop operator.
type OperatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const operatorRole = "operator"

var (
	errNoToken  = errors.New("missing operator token")
	errBadToken = errors.New("invalid operator token")
)

// AuthManager mints and verifies operator tokens. A token travels
// either as a bearer header or as the session cookie set on login.
type AuthManager struct {
	secret []byte
	cookie string
	secure bool
	ttl    time.Duration
}

func NewAuthManager(cfg *config.WebConfig, secure bool) *AuthManager {
	return &AuthManager{
		secret: []byte(cfg.JWTSecret),
		cookie: cfg.CookieName,
		secure: secure,
		ttl:    cfg.SessionTTL,
	}
}

// Issue mints a fresh operator token and installs it as the session
// cookie. The signed token is also returned for bearer-style clients.
func (a *AuthManager) Issue(w http.ResponseWriter) (string, error) {
	now := time.Now()
	claims := OperatorClaims{
		Role: operatorRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operatorRole,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, a.sessionCookie(signed, int(a.ttl.Seconds())))
	return signed, nil
}

// Clear expires the session cookie.
func (a *AuthManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, a.sessionCookie("", -1))
}

func (a *AuthManager) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     a.cookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// FromRequest verifies the token carried by the request. The bearer
// header wins over the cookie when both are present.
func (a *AuthManager) FromRequest(r *http.Request) (*OperatorClaims, error) {
	if hdr := r.Header.Get("Authorization"); hdr != "" {
		if len(hdr) > 7 && strings.EqualFold(hdr[:7], "bearer ") {
			return a.verify(strings.TrimSpace(hdr[7:]))
		}
		return nil, errNoToken
	}
	if c, err := r.Cookie(a.cookie); err == nil {
		return a.verify(c.Value)
	}
	return nil, errNoToken
}

func (a *AuthManager) verify(raw string) (*OperatorClaims, error) {
	claims := &OperatorClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errBadToken
	}
	return claims, nil
}
