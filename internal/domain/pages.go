package domain

import "html/template"

// CommonPageData holds fields every page template can use.
// Available in templates as .Common via the TemplateData wrapper.
type CommonPageData struct {
	Error string // transient message carried over a redirect
}

// RenderedPost wraps Post for templates. CommentHTML is the comment
// already rendered and sanitized; CSSClass distinguishes OP from reply.
type RenderedPost struct {
	Post
	CommentHTML template.HTML
	CSSClass    string
}

// RenderedThread wraps thread metadata with rendered posts.
// OmittedPosts counts posts cut from a board-page preview.
type RenderedThread struct {
	ThreadMetadata
	Posts        []*RenderedPost
	OmittedPosts int64
}

type IndexPageData struct {
	Boards []Board
}

type BoardPageData struct {
	Board   Board
	Threads []*RenderedThread
	Page    int
	HasMore bool
}

type ThreadPageData struct {
	Board  Board
	Thread *RenderedThread
}

type CreateBoardPageData struct {
	Boards []Board
}

type ErrorPageData struct {
	Status  int
	Message string
}
