package reveal

import (
	"html"
	"html/template"
	"regexp"
	"strconv"
	"strings"
)

// Attr is an extra attribute forwarded to the rendered element.
type Attr struct {
	Name  string
	Value string
}

// Attrs keeps attribute order stable in the output.
type Attrs []Attr

const reservedPrefix = "data-reveal"

var attrNameRe = regexp.MustCompile(`^[A-Za-z_:][A-Za-z0-9_:.\-]*$`)

// Open renders the opening tag with the animation hooks and the initial
// hidden frame. Attributes in the data-reveal namespace or with malformed
// names are dropped; a style attribute is appended after the initial frame.
func Open(tag Tag, cfg Config, attrs Attrs) template.HTML {
	m := NewMotion(cfg)
	cfg = m.cfg
	hidden := m.Frame()

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag.String())

	style := "opacity:" + formatFloat(hidden.Opacity) + ";transform:translateY(" + formatFloat(hidden.OffsetY) + "px)"
	for _, a := range attrs {
		name := strings.ToLower(a.Name)
		if !attrNameRe.MatchString(a.Name) || strings.HasPrefix(name, reservedPrefix) {
			continue
		}
		if name == "style" {
			if v := strings.TrimSpace(a.Value); v != "" {
				style += ";" + v
			}
			continue
		}
		writeAttr(&b, a.Name, a.Value)
	}

	writeAttr(&b, reservedPrefix, "")
	writeAttr(&b, reservedPrefix+"-delay", formatFloat(cfg.Delay.Seconds()))
	writeAttr(&b, reservedPrefix+"-duration", formatFloat(cfg.Duration.Seconds()))
	writeAttr(&b, reservedPrefix+"-y", formatFloat(cfg.OffsetY))
	writeAttr(&b, reservedPrefix+"-once", strconv.FormatBool(cfg.Once))
	writeAttr(&b, reservedPrefix+"-amount", formatFloat(cfg.Threshold))
	if cfg.Exit != nil {
		writeAttr(&b, reservedPrefix+"-exit-opacity", formatFloat(cfg.Exit.Opacity))
		writeAttr(&b, reservedPrefix+"-exit-y", formatFloat(cfg.Exit.OffsetY))
	}
	writeAttr(&b, "style", style)
	b.WriteByte('>')

	return template.HTML(b.String())
}

// Close renders the closing tag matching Open.
func Close(tag Tag) template.HTML {
	return template.HTML("</" + tag.String() + ">")
}

// Render wraps already-safe content in a revealed element.
func Render(tag Tag, cfg Config, attrs Attrs, content template.HTML) template.HTML {
	return Open(tag, cfg, attrs) + content + Close(tag)
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
