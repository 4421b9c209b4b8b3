// Package markdown renders post comments into safe HTML: a restricted
// markdown subset (code, emphasis, strikethrough) plus imageboard
// greentext, sanitized through bluemonday after rendering.
package markdown

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	// Deliberately restricted parser set: no headings, lists, links,
	// blockquotes or raw HTML. Comments are plain text with a little
	// formatting, not documents.
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(NewGreentextParser(), 800),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(extension.Strikethrough),
	)
	md.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewGreentextHTMLRenderer(), 500),
	))

	return &TextProcessor{md: md, policy: sanitizePolicy()}
}

// Render converts a comment to sanitized HTML, safe to embed in a page.
// If markdown conversion fails the comment is still shown, escaped.
func (tp *TextProcessor) Render(comment string) template.HTML {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(comment), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(comment))
	}
	return template.HTML(tp.policy.SanitizeBytes(bytes.TrimSpace(buf.Bytes())))
}

func sanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile("^greentext$")).OnElements("span")
	return p
}
