package bbox

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

var (
	defaultNamespace = regexp.MustCompile(`\s+xmlns="[^"]*"`)
	charsetDecl      = regexp.MustCompile(`(?i)charset=["']?([a-z0-9_\-]+)`)
)

// Parse converts raw pdftotext -bbox output into a structured Document.
func Parse(data []byte) (Document, error) {
	return ParsePages(data, 0)
}

// ParsePages is like Parse but builds at most limit pages (0 = all).
// Later pages are counted in PageCount without being read, so errors in
// them do not surface.
func ParsePages(data []byte, limit int) (Document, error) {
	result := Document{Metadata: make(map[string]string)}

	decoded, err := decode(data)
	if err != nil {
		return result, err
	}

	// pdftotext declares the XHTML namespace on the root element; drop it so
	// the remaining tags are plain names.
	decoded = stripNamespace(decoded)

	if err := checkWellFormed(decoded); err != nil {
		return result, err
	}

	doc, err := html.Parse(bytes.NewReader(decoded))
	if err != nil {
		return result, fmt.Errorf("failed to parse pdftotext output: %w", err)
	}

	extractDocumentMeta(&result, doc)

	var pageErr error
	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if pageErr != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "page" {
			result.PageCount++
			if limit > 0 && len(result.Pages) >= limit {
				return
			}
			page, err := processPage(n)
			if err != nil {
				pageErr = fmt.Errorf("page %d: %w", result.PageCount, err)
				return
			}
			result.Pages = append(result.Pages, page)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	if pageErr != nil {
		return result, pageErr
	}
	if len(result.Pages) == 0 {
		return result, ErrNoPage
	}
	return result, nil
}

// checkWellFormed rejects output the HTML tree builder would silently
// repair, such as a document cut off mid-element.
func checkWellFormed(data []byte) error {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = true
	// Input is already UTF-8 at this point.
	d.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }
	for {
		_, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
}

// stripNamespace removes the first default namespace declaration.
func stripNamespace(data []byte) []byte {
	loc := defaultNamespace.FindIndex(data)
	if loc == nil {
		return data
	}
	out := make([]byte, 0, len(data)-(loc[1]-loc[0]))
	out = append(out, data[:loc[0]]...)
	return append(out, data[loc[1]:]...)
}

// decode converts Latin-1 output (pdftotext -enc Latin1) to UTF-8.
// Anything else is passed through unchanged.
func decode(data []byte) ([]byte, error) {
	head := data
	if i := bytes.Index(head, []byte("<body")); i >= 0 {
		head = head[:i]
	}
	m := charsetDecl.FindSubmatch(head)
	if m == nil {
		return data, nil
	}
	switch strings.ToLower(string(m[1])) {
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", m[1], err)
		}
		return decoded, nil
	}
	return data, nil
}

// extractDocumentMeta reads the title and meta tags from the head section
func extractDocumentMeta(result *Document, doc *html.Node) {
	head := findElement(doc, "head")
	if head == nil {
		return
	}

	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "title":
			result.Title = strings.TrimSpace(textContent(c))
		case "meta":
			name := getAttrVal(c, "name")
			content := getAttrVal(c, "content")
			if name != "" {
				result.Metadata[name] = content
			}
		}
	}
}

// processPage reads the page size and collects every word below it
func processPage(n *html.Node) (Page, error) {
	var page Page

	width, err := floatAttr(n, "width")
	if err != nil {
		return page, err
	}
	height, err := floatAttr(n, "height")
	if err != nil {
		return page, err
	}
	if width <= 0 || height <= 0 {
		return page, fmt.Errorf("%w: %gx%g", ErrInvalidPageSize, width, height)
	}
	page.Width, page.Height = width, height

	var wordErr error
	var collectWords func(*html.Node)
	collectWords = func(node *html.Node) {
		if wordErr != nil {
			return
		}
		if node.Type == html.ElementNode && node.Data == "word" {
			word, ok, err := processWord(node)
			if err != nil {
				wordErr = fmt.Errorf("word %d: %w", len(page.Words)+1, err)
				return
			}
			if ok {
				page.Words = append(page.Words, word)
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collectWords(c)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectWords(c)
	}

	return page, wordErr
}

// processWord extracts a word's text and extremes. Blank words report ok=false.
func processWord(n *html.Node) (Word, bool, error) {
	text := strings.TrimSpace(textContent(n))
	if text == "" {
		return Word{}, false, nil
	}

	var coords [4]float64
	for i, key := range [...]string{"xMin", "yMin", "xMax", "yMax"} {
		v, err := floatAttr(n, key)
		if err != nil {
			return Word{}, false, fmt.Errorf("%q: %w", text, err)
		}
		coords[i] = v
	}

	return Word{
		Text: text,
		BBox: NewBoundingBox(coords[0], coords[1], coords[2], coords[3]),
	}, true, nil
}

// floatAttr parses a numeric attribute; a missing attribute is an error.
func floatAttr(n *html.Node, key string) (float64, error) {
	raw, ok := lookupAttr(n, key)
	if !ok {
		return 0, fmt.Errorf("<%s> missing %s attribute", n.Data, key)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("<%s> %s: %w", n.Data, key, err)
	}
	return v, nil
}

// textContent gets all text from a node and its children
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// lookupAttr finds an attribute by name. The HTML tokenizer lower-cases
// attribute keys, so xMin arrives as xmin.
func lookupAttr(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// Get the value of a specific attribute from a node
func getAttrVal(n *html.Node, name string) string {
	v, _ := lookupAttr(n, name)
	return v
}
