// Package renderer renders the portfolio views to markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderSummary renders the dashboard indicators.
func RenderSummary(d *Dashboard) string {
	return renderTemplate("summary", "report_summary.md", nil, d)
}

// RenderHoldings renders the holdings table.
func RenderHoldings(d *Dashboard) string {
	return renderTemplate("holdings", "report_holdings.md", nil, d)
}

// RenderAllocation renders the target and current allocation side by side.
func RenderAllocation(d *Dashboard) string {
	return renderTemplate("allocation", "report_allocation.md", nil, d)
}

// RenderRebalancing renders the rebalancing plan.
func RenderRebalancing(d *Dashboard) string {
	return renderTemplate("rebalancing", "report_rebalancing.md", nil, d)
}

// RenderInsights renders the deviations, diversification and recommended actions.
func RenderInsights(d *Dashboard) string {
	return renderTemplate("insights", "report_insights.md", nil, d)
}

// RenderReport renders every view in a single document.
func RenderReport(d *Dashboard) string {
	partials := map[string]string{
		"report_summary":     "report_summary.md",
		"report_holdings":    "report_holdings.md",
		"report_allocation":  "report_allocation.md",
		"report_rebalancing": "report_rebalancing.md",
		"report_insights":    "report_insights.md",
	}
	return renderTemplate("report", "report.md", partials, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
