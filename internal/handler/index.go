package handler

import (
	"net/http"

	"github.com/itchan-dev/minichan/internal/domain"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.GetAll()
	if err != nil {
		h.handleError(w, r, err, "/")
		return
	}

	h.renderTemplate(w, r, "index.html", domain.IndexPageData{Boards: boards})
}
