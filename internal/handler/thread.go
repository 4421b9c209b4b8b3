package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/itchan-dev/minichan/internal/domain"

	"github.com/gorilla/mux"
)

// Thread renders the full thread view, all posts ascending by time.
func (h *Handler) Thread(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	board := vars["board"]
	boardURL := fmt.Sprintf("/%s/", board)

	threadID, err := strconv.ParseInt(vars["thread"], 10, 64)
	if err != nil {
		redirectWithError(w, r, boardURL, "Invalid thread id")
		return
	}

	thread, err := h.thread.Get(board, threadID)
	if err != nil {
		h.handleError(w, r, err, boardURL)
		return
	}

	// Unreachable by construction (a thread commits together with its
	// first post), but an empty thread still degrades gracefully.
	if len(thread.Posts) == 0 {
		redirectWithError(w, r, boardURL, "Thread has no posts")
		return
	}

	boardData, err := h.board.Get(board)
	if err != nil {
		h.handleError(w, r, err, boardURL)
		return
	}

	h.renderTemplate(w, r, "thread.html", domain.ThreadPageData{
		Board:  boardData,
		Thread: h.renderThread(thread),
	})
}
