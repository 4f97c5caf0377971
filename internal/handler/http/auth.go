// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/utils"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setSessionCookie(w, token.SignedString)
	// the register payload carries id/name/email only; initialLetter is
	// served on login
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "account created",
		User: models.PublicUser{
			ID:    registeredUser.UserID,
			Name:  registeredUser.Name,
			Email: registeredUser.Email,
		},
		Token: token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setSessionCookie(w, token.SignedString)
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "logged in",
		User:    foundUser.Public(),
		Token:   token.SignedString,
	}, http.StatusOK)
}

// verifyRegistration answers whether an invitation code can still be
// redeemed. It never consumes the code.
func (h *Handler) verifyRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.VerifyRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.verifyRegistration").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	allowed, err := h.services.AuthService.IsRegistrationAllowed(ctx, request.Registration)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.VerifyRegistrationResponse{IsAllowed: allowed}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

// setSessionCookie attaches the signed JWT as the browser session cookie.
// Its lifetime matches the token expiry.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
