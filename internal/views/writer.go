package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup to w and keeps the first error, so components can
// emit a sequence of elements and check once at the end.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes s unescaped
func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// text writes s as escaped character data
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped
func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// url writes a sanitized URL attribute
func (hw *htmlWriter) url(name, value string) {
	hw.attr(name, string(templ.URL(value)))
}

// open writes `<tag` followed by attribute pairs and `>`
func (hw *htmlWriter) open(tag string, attrs ...string) {
	hw.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		hw.attr(attrs[i], attrs[i+1])
	}
	hw.raw(">")
}

func (hw *htmlWriter) close(tag string) {
	hw.raw("</" + tag + ">")
}

// element writes an element containing escaped text
func (hw *htmlWriter) element(tag, text string, attrs ...string) {
	hw.open(tag, attrs...)
	hw.text(text)
	hw.close(tag)
}

// render writes a child component
func (hw *htmlWriter) render(c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}
