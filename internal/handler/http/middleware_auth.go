package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/utils"
)

// sessionCookieName is the cookie the browser UI authenticates with. Bearer
// tokens in the "Authorization" header are accepted as a fallback for
// non-browser clients.
const sessionCookieName = "authToken"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the session token from the request (cookie first, then the
// "Authorization" header), validates it via the auth service, and on success
// stores the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests without a token, with a malformed header, or with an expired or
// otherwise invalid token are rejected with HTTP 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionToken(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionToken extracts the raw JWT from a request: the session cookie wins,
// a bearer "Authorization" header is the fallback.
func sessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if cookie.Value == "" {
			return "", ErrEmptyToken
		}
		return cookie.Value, nil
	} else if !errors.Is(err, http.ErrNoCookie) {
		return "", ErrNoToken
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
