package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/service"
	"github.com/cotacoes-epc/go-quote-keeper/internal/utils"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// Quote item handlers are factories over a QuoteItemService: the same
// handler code serves both the services and the inputs collection, each
// route group bound to its own service instance.

func (h *Handler) createQuoteItem(items service.QuoteItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		var request models.QuoteItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Str("func", "*Handler.createQuoteItem").Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		created, err := items.Create(r.Context(), request.QuoteItem(userID))
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, created, http.StatusCreated)
	}
}

func (h *Handler) listQuoteItems(items service.QuoteItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		found, err := items.GetAll(r.Context(), userID)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, found, http.StatusOK)
	}
}

func (h *Handler) getQuoteItem(items service.QuoteItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		found, err := items.GetByID(r.Context(), id, userID)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, found, http.StatusOK)
	}
}

func (h *Handler) updateQuoteItem(items service.QuoteItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var request models.QuoteItemRequest
		if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Str("func", "*Handler.updateQuoteItem").Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		item := request.QuoteItem(userID)
		item.ID = id

		updated, err := items.Update(r.Context(), item)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, updated, http.StatusOK)
	}
}

func (h *Handler) deleteQuoteItem(items service.QuoteItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if err = items.Delete(r.Context(), id, userID); err != nil {
			h.handleError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "deleted"}, http.StatusOK)
	}
}

// pathID parses the {id} URL parameter of the current route.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
