package report

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
	"sort"
	"strings"
)

// GroupScreenshots groups screenshot paths by route, then viewport. The
// basename is expected to encode "{route}-{viewport}-..."; files whose name
// carries fewer than two hyphen-delimited segments are silently excluded
// from grouping. Paths are kept in each group in input order.
func GroupScreenshots(paths []string) map[string]map[string][]string {
	groups := make(map[string]map[string][]string)
	for _, p := range paths {
		base := path.Base(p)
		if ext := path.Ext(base); ext != "" {
			base = strings.TrimSuffix(base, ext)
		}

		parts := strings.Split(base, "-")
		if len(parts) < 2 {
			continue
		}
		route, viewport := parts[0], parts[1]

		if groups[route] == nil {
			groups[route] = make(map[string][]string)
		}
		groups[route][viewport] = append(groups[route][viewport], p)
	}
	return groups
}

const routeViewportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>UI Test Report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h2 { margin-top: 1.5em; }
table { border-collapse: collapse; margin-top: 0.5em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
</style>
</head>
<body>
<h1>UI Test Report</h1>
{{range .Routes}}
<h2>Route: {{.Name}}</h2>
<table>
<tr><th>Viewport</th><th>Screenshots</th></tr>
{{range .Viewports}}
<tr><td>{{.Name}}</td><td>{{.Count}}</td></tr>
{{end}}
</table>
{{else}}
<p>No screenshots captured.</p>
{{end}}
</body>
</html>
`

var routeViewportTmpl = template.Must(template.New("route-viewport").Parse(routeViewportTemplate))

type viewportCount struct {
	Name  string
	Count int
}

type routeGroup struct {
	Name      string
	Viewports []viewportCount
}

// RenderRouteViewport renders the route/viewport screenshot-count report
// from a flat set of screenshot paths. Zero screenshots render a valid,
// empty document.
func RenderRouteViewport(paths []string) ([]byte, error) {
	groups := GroupScreenshots(paths)

	routes := make([]routeGroup, 0, len(groups))
	for route, viewports := range groups {
		rg := routeGroup{Name: route}
		for viewport, files := range viewports {
			rg.Viewports = append(rg.Viewports, viewportCount{Name: viewport, Count: len(files)})
		}
		sort.Slice(rg.Viewports, func(i, j int) bool { return rg.Viewports[i].Name < rg.Viewports[j].Name })
		routes = append(routes, rg)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Name < routes[j].Name })

	var buf bytes.Buffer
	if err := routeViewportTmpl.Execute(&buf, struct{ Routes []routeGroup }{routes}); err != nil {
		return nil, fmt.Errorf("failed to render route/viewport report: %w", err)
	}
	return buf.Bytes(), nil
}
