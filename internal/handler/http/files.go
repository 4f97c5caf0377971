package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/service"
	"github.com/cotacoes-epc/go-quote-keeper/internal/utils"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// uploadFile accepts one multipart file under the "file" form field, stores
// it and returns the key the client must reference it by.
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// the multipart overhead on top of the file cap
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadFile").Msg("no file in request")
		http.Error(w, "no file in request", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	stored, err := h.services.FileService.Upload(r.Context(), userID, header.Filename, header.Size, file)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.UploadResponse{
		Success:  true,
		FileName: stored.OriginalName,
		FileKey:  stored.Key,
		FileSize: stored.Size,
		FileType: stored.Extension,
		Message:  "file uploaded",
	}, http.StatusCreated)
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	fileKey := chi.URLParam(r, "fileKey")

	file, stored, err := h.services.FileService.Download(r.Context(), userID, fileKey)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	defer func() { _ = file.Close() }()

	serveStoredFile(w, stored)
	if _, err = io.Copy(w, file); err != nil {
		log.Err(err).Str("func", "*Handler.downloadFile").Msg("streaming file failed")
	}
}
