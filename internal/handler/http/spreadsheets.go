package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/utils"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

func (h *Handler) createSpreadsheet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.SpreadsheetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createSpreadsheet").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.SpreadsheetService.Create(r.Context(), request.Spreadsheet(userID))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

// listSpreadsheets serves the filtered listing. Query parameters: "search"
// matches name and description, "sort" is "recentes" or "antigos", and
// "filter=compartilhadas" keeps shared spreadsheets only.
func (h *Handler) listSpreadsheets(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	filter := models.SpreadsheetFilter{
		Search:     query.Get("search"),
		Sort:       query.Get("sort"),
		SharedOnly: query.Get("filter") == "compartilhadas",
	}

	found, err := h.services.SpreadsheetService.List(r.Context(), userID, filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) getSpreadsheet(w http.ResponseWriter, r *http.Request) {
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

	found, err := h.services.SpreadsheetService.GetByID(r.Context(), id, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) updateSpreadsheet(w http.ResponseWriter, r *http.Request) {
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

	var request models.SpreadsheetRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateSpreadsheet").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	spreadsheet := request.Spreadsheet(userID)
	spreadsheet.ID = id

	updated, err := h.services.SpreadsheetService.Update(r.Context(), spreadsheet)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSpreadsheet(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.SpreadsheetService.Delete(r.Context(), id, userID); err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "deleted"}, http.StatusOK)
}

// downloadSpreadsheet streams the file attached to a spreadsheet record.
func (h *Handler) downloadSpreadsheet(w http.ResponseWriter, r *http.Request) {
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

	file, stored, err := h.services.SpreadsheetService.Download(r.Context(), id, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	defer func() { _ = file.Close() }()

	serveStoredFile(w, stored)
	if _, err = io.Copy(w, file); err != nil {
		log.Err(err).Str("func", "*Handler.downloadSpreadsheet").Msg("streaming file failed")
	}
}

// spreadsheetContentTypes maps stored extensions to the content type the
// download endpoints serve them with.
var spreadsheetContentTypes = map[string]string{
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xls":  "application/vnd.ms-excel",
	"csv":  "text/csv",
}

// serveStoredFile writes the download headers for a stored file.
func serveStoredFile(w http.ResponseWriter, stored models.StoredFile) {
	contentType, ok := spreadsheetContentTypes[stored.Extension]
	if !ok {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", stored.OriginalName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", stored.Size))
}
