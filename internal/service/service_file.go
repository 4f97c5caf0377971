package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// MaxUploadSize is the upper bound for an uploaded spreadsheet file.
const MaxUploadSize int64 = 10 << 20

// allowedUploadExtensions is the whitelist of spreadsheet file types the
// upload endpoint accepts. Keys are lowercase extensions with the dot.
var allowedUploadExtensions = map[string]struct{}{
	".xlsx": {},
	".xls":  {},
	".csv":  {},
}

// fileService is the concrete implementation of FileService. It enforces the
// upload rules (extension whitelist, size cap) in front of the file storage.
type fileService struct {
	storage store.FileStorage
	logger  *logger.Logger
}

func NewFileService(storage store.FileStorage, logger *logger.Logger) FileService {
	return &fileService{
		storage: storage,
		logger:  logger,
	}
}

// Upload validates and stores one uploaded file.
//
// Returns the stored-file descriptor or:
//   - ErrInvalidDataProvided if the filename is empty.
//   - ErrFileTypeNotAllowed if the extension is not xlsx, xls or csv.
//   - ErrFileTooLarge if the declared size exceeds MaxUploadSize.
func (f *fileService) Upload(ctx context.Context, userID int64, originalName string, size int64, src io.Reader) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if originalName == "" {
		log.Error().Int64("userID", userID).Msg("no file name provided")
		return models.StoredFile{}, ErrInvalidDataProvided
	}

	extension := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedUploadExtensions[extension]; !ok {
		log.Error().Int64("userID", userID).Str("extension", extension).Msg("file type is not allowed")
		return models.StoredFile{}, ErrFileTypeNotAllowed
	}

	if size > MaxUploadSize {
		log.Error().Int64("userID", userID).Int64("size", size).Msg("file exceeds the size limit")
		return models.StoredFile{}, ErrFileTooLarge
	}

	// the declared size is client-supplied; cap the actual stream too
	stored, err := f.storage.Save(userID, originalName, io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("file saving ended with error")
		return models.StoredFile{}, fmt.Errorf("file saving ended with error: %w", err)
	}

	if stored.Size > MaxUploadSize {
		log.Error().Int64("userID", userID).Int64("size", stored.Size).Msg("file exceeds the size limit")
		return models.StoredFile{}, ErrFileTooLarge
	}

	return stored, nil
}

func (f *fileService) Download(ctx context.Context, userID int64, fileKey string) (io.ReadCloser, models.StoredFile, error) {
	log := logger.FromContext(ctx)

	file, stored, err := f.storage.Open(userID, fileKey)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("fileKey", fileKey).Msg("opening file failed")
		return nil, models.StoredFile{}, fmt.Errorf("opening file failed: %w", err)
	}

	return file, stored, nil
}
