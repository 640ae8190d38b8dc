package render

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// HTML renders entry Markdown to an HTML fragment.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
