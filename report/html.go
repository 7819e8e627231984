// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("report").Parse(htmlText))

const htmlText = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>optibench</title>
<style>
table { border-collapse: collapse; }
th, td { padding: 0.2em 0.8em; }
td.num { text-align: right; }
</style>
</head>
<body>
{{range .}}<h2>{{.Title}}</h2>
<table>
<tr><th>strategy</th><th>time</th><th>vs slowest</th></tr>
{{range .Rows}}<tr><td>{{.Name}}</td><td class="num">{{.Time}}</td><td class="num">{{.Speedup}}</td></tr>
{{end}}</table>
{{with .GeoMean}}<p>geomean speedup: {{.}}</p>
{{end}}{{with .Headline}}<p>{{.}}</p>
{{end}}{{end}}</body>
</html>
`

// WriteHTML writes the sections as a standalone HTML page.
func WriteHTML(w io.Writer, secs ...Section) error {
	views := make([]view, len(secs))
	for i, sec := range secs {
		views[i] = newView(sec)
	}
	return htmlTemplate.Execute(w, views)
}
