package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/itchan-dev/minichan/internal/domain"
	"github.com/itchan-dev/minichan/internal/logger"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common domain.CommonPageData
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateStatus(w, r, name, http.StatusOK, data)
}

func (h *Handler) renderTemplateStatus(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{
		Data:   data,
		Common: domain.CommonPageData{Error: errorFromQuery(r)},
	}

	// Buffer first so a failed execute never sends half a page.
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.renderTemplateStatus(w, r, "error.html", status, domain.ErrorPageData{Status: status, Message: message})
}

// renderPost transforms a domain.Post into its view model.
func (h *Handler) renderPost(post domain.Post) *domain.RenderedPost {
	rendered := domain.RenderedPost{Post: post}
	rendered.CommentHTML = h.renderer.Render(post.Comment)

	if rendered.IsOp() {
		rendered.CSSClass = "op-post"
	} else {
		rendered.CSSClass = "reply-post"
	}

	return &rendered
}

func (h *Handler) renderThread(thread domain.Thread) *domain.RenderedThread {
	rendered := domain.RenderedThread{
		ThreadMetadata: thread.ThreadMetadata,
		Posts:          make([]*domain.RenderedPost, len(thread.Posts)),
		OmittedPosts:   thread.PostCount - int64(len(thread.Posts)),
	}
	for i, post := range thread.Posts {
		rendered.Posts[i] = h.renderPost(*post)
	}
	return &rendered
}

func (h *Handler) renderThreads(threads []*domain.Thread) []*domain.RenderedThread {
	rendered := make([]*domain.RenderedThread, len(threads))
	for i, thread := range threads {
		rendered[i] = h.renderThread(*thread)
	}
	return rendered
}
