package handler

import (
	"net/http"

	"github.com/itchan-dev/minichan/internal/domain"

	"github.com/gorilla/mux"
)

// Board renders one page of a board's thread listing.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["board"]
	page := pageFromQuery(r)

	boardPage, err := h.board.GetPage(name, page)
	if err != nil {
		h.handleError(w, r, err, "/")
		return
	}

	h.renderTemplate(w, r, "board.html", domain.BoardPageData{
		Board:   boardPage.Board,
		Threads: h.renderThreads(boardPage.Threads),
		Page:    boardPage.Page,
		HasMore: boardPage.HasMore,
	})
}
