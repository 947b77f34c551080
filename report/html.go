package report

import (
	"bytes"
	"fmt"
	"html/template"
)

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}}{{else}}Test Report{{end}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
tr.failed { background: #fde8e8; }
.summary { padding: 1em; background: #f4f4f4; border-radius: 4px; }
.summary span { margin-right: 2em; }
.pass { color: #1a7f37; }
.fail { color: #b42318; }
</style>
</head>
<body>
<h1>{{if .Title}}{{.Title}}{{else}}Test Report{{end}}</h1>
<div class="summary">
<span>Total: {{.Summary.Total}}</span>
<span class="pass">Passed: {{.Summary.Passed}}</span>
<span class="fail">Failed: {{.Summary.Failed}}</span>
<span>Pass rate: {{.Summary.PassRate}}%</span>
{{if .Summary.DurationMs}}<span>Duration: {{.Summary.DurationMs}} ms</span>{{end}}
</div>
{{if .Results}}
<h2>Results</h2>
<table>
<tr><th>Suite</th><th>Selector</th><th>Assertion</th><th>Expected</th><th>Actual</th><th>Error</th><th>Status</th></tr>
{{range .Results}}
<tr{{if not .Passed}} class="failed"{{end}}>
<td>{{.Suite}}</td>
<td>{{.Selector}}</td>
<td>{{.Assertion}}</td>
<td>{{.Expected}}</td>
<td>{{if .Actual}}{{.Actual}}{{end}}</td>
<td>{{.Error}}</td>
<td>{{if .Passed}}pass{{else}}fail{{end}}</td>
</tr>
{{end}}
</table>
{{end}}
{{if .SpecRuns}}
<h2>Spec files</h2>
<table>
<tr><th>Spec</th><th>Tests</th><th>Passes</th><th>Failures</th><th>Duration (ms)</th></tr>
{{range .SpecRuns}}
<tr{{if .Failures}} class="failed"{{end}}>
<td>{{.SpecFile}}</td>
<td>{{.Tests}}</td>
<td>{{.Passes}}</td>
<td>{{.Failures}}</td>
<td>{{.DurationMs}}</td>
</tr>
{{end}}
</table>
{{end}}
{{if .Screenshots}}
<h2>Screenshots</h2>
<ul>
{{range .Screenshots}}<li><a href="{{.}}">{{basename .}}</a></li>
{{end}}
</ul>
{{end}}
{{if .Videos}}
<h2>Videos</h2>
<ul>
{{range .Videos}}<li><a href="{{.}}">{{basename .}}</a></li>
{{end}}
</ul>
{{end}}
</body>
</html>
`

var htmlTemplate = template.Must(
	template.New("report").Funcs(template.FuncMap{
		"basename": artifactName,
	}).Parse(reportTemplate),
)

// RenderHTML renders the report as a standalone HTML document. Empty result
// and artifact lists render cleanly with their sections omitted.
func RenderHTML(rep Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, rep); err != nil {
		return nil, fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.Bytes(), nil
}
