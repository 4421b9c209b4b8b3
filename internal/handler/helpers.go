package handler

import (
	"net/http"
	"net/url"
	"strconv"

	internal_errors "github.com/itchan-dev/minichan/internal/errors"
	"github.com/itchan-dev/minichan/internal/logger"
)

// redirectWithError redirects carrying a transient message in the
// ?error= query parameter; the next page render shows it once.
func redirectWithError(w http.ResponseWriter, r *http.Request, target, message string) {
	http.Redirect(w, r, target+"?error="+url.QueryEscape(message), http.StatusSeeOther)
}

func errorFromQuery(r *http.Request) string {
	return r.URL.Query().Get("error")
}

// pageFromQuery parses ?page=, defaulting to 1 on anything invalid.
func pageFromQuery(r *http.Request) int {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return page
}

// handleError is the single surfacing point for service errors.
// User-correctable failures (validation, conflict, lock) bounce back to
// redirectTarget with the message; not-found renders the error page;
// anything else logs and renders a generic failure without detail.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, redirectTarget string) {
	if e, ok := err.(*internal_errors.ErrorWithStatusCode); ok {
		if e.StatusCode == http.StatusNotFound {
			h.renderErrorPage(w, r, e.StatusCode, e.Message)
			return
		}
		redirectWithError(w, r, redirectTarget, e.Message)
		return
	}
	logger.Log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	h.renderErrorPage(w, r, http.StatusInternalServerError, "Something went wrong")
}
