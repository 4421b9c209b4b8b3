package handler

import (
	"html/template"
	"net/http"

	"github.com/itchan-dev/minichan/internal/config"
	"github.com/itchan-dev/minichan/internal/service"
)

// CommentRenderer turns raw comment text into sanitized HTML.
type CommentRenderer interface {
	Render(comment string) template.HTML
}

type Handler struct {
	board    service.BoardService
	thread   service.ThreadService
	post     service.PostService
	media    service.MediaService
	renderer CommentRenderer

	Templates map[string]*template.Template
	cfg       config.Public
}

func New(board service.BoardService, thread service.ThreadService, post service.PostService, media service.MediaService, renderer CommentRenderer, templates map[string]*template.Template, cfg config.Public) *Handler {
	return &Handler{
		board:     board,
		thread:    thread,
		post:      post,
		media:     media,
		renderer:  renderer,
		Templates: templates,
		cfg:       cfg,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
