package region

import "strings"

// document is a text file split into lines, remembering how to put it
// back together byte for byte.
type document struct {
	lines           []string
	eol             string
	trailingNewline bool
}

func parseDocument(data []byte) document {
	text := string(data)

	doc := document{eol: "\n"}
	if strings.Contains(text, "\r\n") {
		doc.eol = "\r\n"
	}

	if text == "" {
		return doc
	}

	if strings.HasSuffix(text, "\n") {
		doc.trailingNewline = true
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	}

	doc.lines = strings.Split(text, "\n")
	for i, line := range doc.lines {
		doc.lines[i] = strings.TrimSuffix(line, "\r")
	}

	return doc
}

// render joins lines with the document's line ending.
func (d document) render(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}

	text := strings.Join(lines, d.eol)
	if d.trailingNewline {
		text += d.eol
	}

	return []byte(text)
}
