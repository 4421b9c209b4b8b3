package handler

import (
	"fmt"
	"net/http"

	"github.com/itchan-dev/minichan/internal/domain"
)

const createBoardURL = "/admin/create_board"

func (h *Handler) CreateBoardForm(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.GetAll()
	if err != nil {
		h.handleError(w, r, err, "/")
		return
	}

	h.renderTemplate(w, r, "create_board.html", domain.CreateBoardPageData{Boards: boards})
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, createBoardURL, "Invalid form data")
		return
	}

	board, err := h.board.Create(domain.BoardCreationData{
		Name:        r.FormValue("name"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	})
	if err != nil {
		h.handleError(w, r, err, createBoardURL)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/%s/", board.Name), http.StatusSeeOther)
}

// DeleteBoard hard-deletes a board and everything under it.
func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, createBoardURL, "Invalid form data")
		return
	}

	if err := h.board.Delete(r.FormValue("name")); err != nil {
		h.handleError(w, r, err, createBoardURL)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
