package svgtext

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/net/html"
)

//go:embed templates/annotation.tmpl
var templateFS embed.FS

var annotationTmpl = template.Must(template.New("annotation.tmpl").Funcs(template.FuncMap{
	"attr": html.EscapeString,
}).ParseFS(templateFS, "templates/annotation.tmpl"))

const closingTag = "</svg>"

// EncodeWords serializes the words as a compact JSON array.
// Markup characters are left as is; escaping happens when the array is
// placed in an attribute.
func EncodeWords(words []WordBox) (string, error) {
	if words == nil {
		words = []WordBox{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(words); err != nil {
		return "", fmt.Errorf("failed to encode words: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// RenderAnnotation builds the hidden element that carries the words.
func RenderAnnotation(words []WordBox, cfg Config) (string, error) {
	encoded, err := EncodeWords(words)
	if err != nil {
		return "", err
	}

	data := struct {
		ID        string
		Attribute string
		Words     string
	}{cfg.ElementID, cfg.Attribute, encoded}

	var buf bytes.Buffer
	if err := annotationTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error rendering annotation template: %w", err)
	}
	return buf.String(), nil
}

// Splice inserts the annotation, followed by a newline, directly before the
// first closing </svg> tag. All other bytes are left untouched.
func Splice(svg, annotation string) (string, error) {
	idx := strings.Index(svg, closingTag)
	if idx < 0 {
		return "", svgError(ErrNoClosingTag)
	}
	var sb strings.Builder
	sb.Grow(len(svg) + len(annotation) + 1)
	sb.WriteString(svg[:idx])
	sb.WriteString(annotation)
	sb.WriteString("\n")
	sb.WriteString(svg[idx:])
	return sb.String(), nil
}
