// Package pango builds span elements of the Pango markup language, which
// rofi renders for -markup-rows candidates and messages.
package pango

import "strings"

// Attribute names, in the order they are rendered.
var attributeOrder = []string{
	"font_desc",
	"face",
	"size",
	"style",
	"weight",
	"alpha",
	"variant",
	"stretch",
	"foreground",
	"background",
	"underline",
	"strikethrough",
}

// Span is content together with a set of span attributes. Setting an
// attribute twice keeps the last value.
type Span struct {
	content string
	attrs   map[string]string
}

// New returns a span without attributes.
func New(content string) *Span {
	return &Span{content: content, attrs: make(map[string]string)}
}

// FontDescription sets the complete font description, e.g. "Sans Italic 12".
func (s *Span) FontDescription(font string) *Span {
	return s.set("font_desc", font)
}

// FontFamily sets the font face.
func (s *Span) FontFamily(family FontFamily) *Span {
	return s.set("face", family.String())
}

// Size sets the font size relative to the configured font.
func (s *Span) Size(size FontSize) *Span {
	return s.set("size", size.String())
}

// SlantStyle sets the slant.
func (s *Span) SlantStyle(style SlantStyle) *Span {
	return s.set("style", style.String())
}

// Weight sets the font weight.
func (s *Span) Weight(weight Weight) *Span {
	return s.set("weight", weight.String())
}

// Alpha sets the text opacity. The value takes the form "NN%".
func (s *Span) Alpha(alpha string) *Span {
	return s.set("alpha", alpha)
}

// SmallCaps renders lower case letters as small capitals.
func (s *Span) SmallCaps() *Span {
	return s.set("variant", "smallcaps")
}

// Stretch sets the horizontal stretch.
func (s *Span) Stretch(stretch FontStretch) *Span {
	return s.set("stretch", stretch.String())
}

// Foreground sets the text colour, e.g. "#00FF00".
func (s *Span) Foreground(color string) *Span {
	return s.set("foreground", color)
}

// Background sets the background colour.
func (s *Span) Background(color string) *Span {
	return s.set("background", color)
}

// Underline sets the underline mode.
func (s *Span) Underline(underline Underline) *Span {
	return s.set("underline", underline.String())
}

// StrikeThrough draws a line through the text.
func (s *Span) StrikeThrough() *Span {
	return s.set("strikethrough", "true")
}

// Build renders the span around its own content. Without attributes the
// content is returned unchanged.
func (s *Span) Build() string {
	return s.BuildContent(s.content)
}

// BuildContent renders the attributes around content. The span itself is
// not modified, so one span can decorate many candidates.
func (s *Span) BuildContent(content string) string {
	if len(s.attrs) == 0 {
		return content
	}
	var b strings.Builder
	b.WriteString("<span")
	for _, name := range attributeOrder {
		value, ok := s.attrs[name]
		if !ok {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString("='")
		b.WriteString(value)
		b.WriteByte('\'')
	}
	b.WriteByte('>')
	b.WriteString(content)
	b.WriteString("</span>")
	return b.String()
}

func (s *Span) String() string {
	return s.Build()
}

func (s *Span) set(name, value string) *Span {
	if s.attrs == nil {
		s.attrs = make(map[string]string)
	}
	s.attrs[name] = value
	return s
}
