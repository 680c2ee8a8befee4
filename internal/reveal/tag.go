package reveal

// Tag is an element type the primitive can render.
type Tag int

const (
	TagDiv Tag = iota // fallback
	TagSection
	TagArticle
	TagHeader
	TagFooter
	TagMain
	TagNav
	TagAside
	TagFieldset
	TagForm
	TagP
	TagSpan
	TagH1
	TagH2
	TagH3
	TagUL
	TagOL
	TagLI
)

var tagNames = [...]string{
	TagDiv:      "div",
	TagSection:  "section",
	TagArticle:  "article",
	TagHeader:   "header",
	TagFooter:   "footer",
	TagMain:     "main",
	TagNav:      "nav",
	TagAside:    "aside",
	TagFieldset: "fieldset",
	TagForm:     "form",
	TagP:        "p",
	TagSpan:     "span",
	TagH1:       "h1",
	TagH2:       "h2",
	TagH3:       "h3",
	TagUL:       "ul",
	TagOL:       "ol",
	TagLI:       "li",
}

// String returns the element name. Out-of-range tags render as div.
func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return tagNames[TagDiv]
	}
	return tagNames[t]
}

// ParseTag resolves an element name, falling back to TagDiv.
func ParseTag(name string) Tag {
	for i, n := range tagNames {
		if n == name {
			return Tag(i)
		}
	}
	return TagDiv
}
