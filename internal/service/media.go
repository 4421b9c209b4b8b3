package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/itchan-dev/minichan/internal/domain"
	"github.com/itchan-dev/minichan/internal/logger"
	"github.com/itchan-dev/minichan/internal/service/utils"

	"github.com/google/uuid"
)

// Uploads outside this set are silently discarded; the post proceeds
// without an attachment.
var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
	"webm": {},
	"mp4":  {},
}

const storedNameLength = 8

type MediaService interface {
	Store(header *multipart.FileHeader) (*domain.Attachment, error)
}

type Media struct {
	storage MediaStorage
}

// MediaStorage persists raw upload bytes under a generated name.
type MediaStorage interface {
	Save(name string, data io.Reader) (int64, error)
	Read(name string) (io.ReadCloser, error)
	Delete(name string) error
}

func NewMedia(storage MediaStorage) MediaService {
	return &Media{storage}
}

// Store persists an uploaded file and describes it as an attachment.
// A missing or disallowed extension returns (nil, nil): the upload is
// dropped, not the whole request. The stored name is a short random id
// plus the lowercased extension; the client's name is only kept, in
// sanitized form, for display.
func (m *Media) Store(header *multipart.FileHeader) (*domain.Attachment, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if _, ok := allowedExtensions[ext]; !ok {
		logger.Log.Debug("discarding upload with disallowed extension", "filename", header.Filename)
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	storedName := uuid.NewString()[:storedNameLength] + "." + ext
	size, err := m.storage.Save(storedName, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	return &domain.Attachment{
		Filename:         storedName,
		OriginalFilename: utils.SanitizeFilename(header.Filename),
		FileSize:         size,
	}, nil
}
