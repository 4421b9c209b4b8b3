package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/itchan-dev/minichan/internal/domain"

	"github.com/gorilla/mux"
)

// CreatePost handles the posting form: a reply when thread_id is set,
// a new thread otherwise. Success redirects to the thread.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]
	boardURL := fmt.Sprintf("/%s/", board)

	// The cap covers the whole request body, attachment included, and
	// rejects before any bytes are persisted. Plain form posts without
	// a file are accepted too.
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		redirectWithError(w, r, boardURL, fmt.Sprintf("Request too large (limit %d MB)", h.cfg.MaxUploadBytes/(1<<20)))
		return
	}

	fields := domain.PostCreationData{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Subject: r.FormValue("subject"),
		Comment: r.FormValue("comment"),
	}

	// A disallowed upload comes back as (nil, nil): the post goes on
	// without an attachment.
	if _, header, err := r.FormFile("file"); err == nil {
		attachment, err := h.media.Store(header)
		if err != nil {
			h.handleError(w, r, err, boardURL)
			return
		}
		fields.Attachment = attachment
	}

	threadIDStr := r.FormValue("thread_id")
	if threadIDStr == "" {
		h.createThread(w, r, board, fields)
		return
	}

	threadID, err := strconv.ParseInt(threadIDStr, 10, 64)
	if err != nil {
		redirectWithError(w, r, boardURL, "Invalid thread id")
		return
	}
	h.createReply(w, r, board, threadID, fields)
}

func (h *Handler) createThread(w http.ResponseWriter, r *http.Request, board domain.BoardName, fields domain.PostCreationData) {
	boardURL := fmt.Sprintf("/%s/", board)

	threadID, _, err := h.thread.Create(domain.ThreadCreationData{
		Board:   board,
		Subject: fields.Subject,
		OpPost:  fields,
	})
	if err != nil {
		h.handleError(w, r, err, boardURL)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/%s/thread/%d", board, threadID), http.StatusSeeOther)
}

func (h *Handler) createReply(w http.ResponseWriter, r *http.Request, board domain.BoardName, threadID domain.ThreadId, fields domain.PostCreationData) {
	boardURL := fmt.Sprintf("/%s/", board)
	threadURL := fmt.Sprintf("/%s/thread/%d", board, threadID)

	// The insert is keyed by thread id alone, so the slug has to be
	// resolved here before anything is written.
	if _, err := h.board.Get(board); err != nil {
		h.handleError(w, r, err, boardURL)
		return
	}

	if _, err := h.post.Create(threadID, fields); err != nil {
		h.handleError(w, r, err, threadURL)
		return
	}

	http.Redirect(w, r, threadURL, http.StatusSeeOther)
}
