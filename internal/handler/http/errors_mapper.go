package http

import (
	"errors"
	"net/http"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/service"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
	"github.com/cotacoes-epc/go-quote-keeper/internal/utils"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// Registration business failures (taken email, bad or consumed code) are
// plain 400s and every login failure is a 401: that is the contract the
// browser UI already speaks.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrAccountDisabled:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrFileTypeNotAllowed:      http.StatusBadRequest,
	service.ErrFileTooLarge:            http.StatusRequestEntityTooLarge,
	service.ErrNoFileAttached:          http.StatusNotFound,

	store.ErrEmailAlreadyExists:       http.StatusBadRequest,
	store.ErrNoUserWasFound:           http.StatusNotFound,
	store.ErrRegistrationCodeNotFound: http.StatusBadRequest,
	store.ErrRegistrationCodeUsed:     http.StatusBadRequest,
	store.ErrQuoteItemNotFound:        http.StatusNotFound,
	store.ErrSpreadsheetNotFound:      http.StatusNotFound,
	store.ErrFileNotFound:             http.StatusNotFound,
	store.ErrInvalidFileKey:           http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// handleError is the single translation point from service and store errors
// to HTTP responses. Known sentinels keep their message; anything unmapped
// becomes an opaque 500.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := http.StatusText(http.StatusInternalServerError)
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			message = target.Error()
			break
		}
	}

	log.Err(err).Int("status", status).Msg("request failed")
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
