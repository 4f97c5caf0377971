package http

import (
	"net/http"

	"github.com/cotacoes-epc/go-quote-keeper/internal/utils"
)

func (h *Handler) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	summary, err := h.services.DashboardService.Summary(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) dashboardStatistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	statistics, err := h.services.DashboardService.Statistics(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, statistics, http.StatusOK)
}
