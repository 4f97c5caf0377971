// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// diskFileStorage stores uploaded files on the local filesystem, one
// subdirectory per user. File keys are "<uuid>_<original-name>" so two
// uploads of the same file never collide.
type diskFileStorage struct {
	logger *logger.Logger
	root   string
}

// NewDiskFileStorage constructs a [FileStorage] rooted at dir. The root
// directory is created on first save, not here.
func NewDiskFileStorage(dir string, logger *logger.Logger) FileStorage {
	logger.Debug().Str("dir", dir).Msg("creating disk file storage")
	return &diskFileStorage{
		logger: logger,
		root:   dir,
	}
}

func (s *diskFileStorage) Save(userID int64, originalName string, src io.Reader) (models.StoredFile, error) {
	originalName = filepath.Base(originalName)
	key := uuid.NewString() + "_" + originalName

	userDir := s.userDir(userID)
	if err := os.MkdirAll(userDir, 0o750); err != nil {
		s.logger.Err(err).Str("func", "*diskFileStorage.Save").Msg("error: creating user directory failed")
		return models.StoredFile{}, fmt.Errorf("create uploads directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(userDir, key))
	if err != nil {
		s.logger.Err(err).Str("func", "*diskFileStorage.Save").Msg("error: creating file failed")
		return models.StoredFile{}, fmt.Errorf("create file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(dst.Name())
		s.logger.Err(err).Str("func", "*diskFileStorage.Save").Msg("error: writing file failed")
		return models.StoredFile{}, fmt.Errorf("write file: %w", err)
	}

	return models.StoredFile{
		Key:          key,
		OriginalName: originalName,
		Extension:    normalizedExtension(originalName),
		Size:         size,
	}, nil
}

func (s *diskFileStorage) Open(userID int64, fileKey string) (io.ReadCloser, models.StoredFile, error) {
	// keys are single path elements; anything else is a traversal attempt
	if fileKey == "" || fileKey == "." || fileKey == ".." ||
		fileKey != filepath.Base(fileKey) || strings.ContainsAny(fileKey, `/\`) {
		return nil, models.StoredFile{}, ErrInvalidFileKey
	}

	path := filepath.Join(s.userDir(userID), fileKey)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.StoredFile{}, ErrFileNotFound
		}
		s.logger.Err(err).Str("func", "*diskFileStorage.Open").Msg("error: opening file failed")
		return nil, models.StoredFile{}, fmt.Errorf("open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, models.StoredFile{}, fmt.Errorf("stat file: %w", err)
	}

	return file, models.StoredFile{
		Key:          fileKey,
		OriginalName: originalNameFromKey(fileKey),
		Extension:    normalizedExtension(fileKey),
		Size:         info.Size(),
	}, nil
}

func (s *diskFileStorage) userDir(userID int64) string {
	return filepath.Join(s.root, strconv.FormatInt(userID, 10))
}

// originalNameFromKey strips the "<uuid>_" prefix added on save. Keys that
// were not produced by Save come back unchanged.
func originalNameFromKey(key string) string {
	if _, name, found := strings.Cut(key, "_"); found {
		return name
	}
	return key
}

// normalizedExtension returns the lowercase extension without the dot.
func normalizedExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
