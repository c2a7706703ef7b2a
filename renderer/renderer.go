// Package renderer turns ledger views into markdown strings for the CLI.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/spend"
	"github.com/shopspring/decimal"
)

const recordsTemplate = `# Expenses

| Date | Amount | Category | Note | Id |
|------|-------:|----------|------|----|
{{- range .Records}}
| {{.Date}} | {{money .Amount}} | {{.Category}} | {{.Note}} | {{.ID}} |
{{- end}}

{{len .Records}} record(s).
`

const summaryTemplate = `# Summary on {{.Date}}

* Total: **{{money .Total}}**
* This month ({{.Date.YearMonth}}): **{{money .MonthTotal}}**
{{- if .Top}}

## Top categories

| Category | Amount |
|----------|-------:|
{{- range .Top}}
| {{.Category}} | {{money .Amount}} |
{{- end}}
{{- end}}
`

const categoriesTemplate = `# Categories

{{- range .}}
* {{.}}
{{- end}}
`

// Records renders a record subsequence as a markdown table, amounts
// formatted in the given display currency.
func Records(records []spend.Record, currency string) string {
	data := struct{ Records []spend.Record }{Records: records}
	return renderTemplate("records", recordsTemplate, currency, data)
}

// Summary renders an aggregation summary to markdown.
func Summary(s *spend.Summary, currency string) string {
	return renderTemplate("summary", summaryTemplate, currency, s)
}

// Categories renders the category universe as a markdown list.
func Categories(categories []string) string {
	return renderTemplate("categories", categoriesTemplate, "", categories)
}

// renderTemplate is a generic utility to render one of the package templates.
func renderTemplate(name, content, currency string, data any) string {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string { return spend.FormatAmount(d, currency) },
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(content)
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error rendering template %q: %v", name, err)
	}
	return b.String()
}
