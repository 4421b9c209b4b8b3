package service

import (
	"net/http"
	"strings"

	"github.com/itchan-dev/minichan/internal/domain"
	internal_errors "github.com/itchan-dev/minichan/internal/errors"
)

type ThreadService interface {
	Create(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error)
	Get(board domain.BoardName, id domain.ThreadId) (domain.Thread, error)
}

type Thread struct {
	storage ThreadStorage
}

type ThreadStorage interface {
	CreateThread(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error)
	GetThread(board domain.BoardName, id domain.ThreadId) (domain.Thread, error)
}

func NewThread(storage ThreadStorage) ThreadService {
	return &Thread{storage}
}

// Create opens a thread from its first post. An opening post must bring
// something: a subject, a comment or an attachment. Defaults are filled
// in after that check, otherwise the default subject would satisfy it.
func (t *Thread) Create(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error) {
	data.Subject = strings.TrimSpace(data.Subject)
	data.OpPost.Comment = strings.TrimSpace(data.OpPost.Comment)

	if data.Subject == "" && data.OpPost.Comment == "" && data.OpPost.Attachment == nil {
		return 0, 0, &internal_errors.ErrorWithStatusCode{Message: "Thread must have subject, comment, or image", StatusCode: http.StatusBadRequest}
	}

	if data.Subject == "" {
		data.Subject = domain.DefaultSubject
	}
	data.OpPost = withPostDefaults(data.OpPost)

	return t.storage.CreateThread(data)
}

func (t *Thread) Get(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
	return t.storage.GetThread(board, id)
}
