// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

// htmlConverter renders the Markdown report body to HTML. GFM enables the
// video overview table.
var htmlConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

const htmlPageStyle = `body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
pre { background: #f5f5f5; padding: 0.8rem; overflow-x: auto; }
code { background: #f5f5f5; }`

// HTML renders the Markdown report and wraps it in a minimal styled page.
func HTML(w io.Writer, result *types.AnalysisResult) error {
	var md bytes.Buffer
	if err := Markdown(&md, result); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := htmlConverter.Convert(md.Bytes(), &body); err != nil {
		return fmt.Errorf("converting report to HTML: %w", err)
	}

	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Analysis: %s</title>
<style>
%s
</style>
</head>
<body>
`, html.EscapeString(result.Video.Title), htmlPageStyle)

	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
