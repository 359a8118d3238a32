// Package report renders a read-only HTML progress report for one
// child. It consumes only the child snapshot and the derived
// statistics; it knows nothing about persistence.
package report

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"littlewords/internal/models"
	"littlewords/internal/stats"
)

// languageSection is one language's block in the report
type languageSection struct {
	Language   models.Language
	Understood int
	Spoken     int
	Categories []stats.CategoryStats
	Histogram  []stats.AgeBucket
}

// reportData is the template context
type reportData struct {
	Name        string
	AgeMonths   *int
	GeneratedAt string
	Languages   []languageSection
	Shares      []stats.LanguageShare
	ShowShares  bool
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}} — Vocabulary Progress</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #333; }
h1 { color: #4a6da7; }
h2 { border-bottom: 2px solid #4a6da7; padding-bottom: 0.25rem; text-transform: capitalize; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
.spoken-words { color: #666; font-size: 0.9rem; }
.meta { color: #888; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<p class="meta">Generated {{.GeneratedAt}}{{if .AgeMonths}} · age {{.AgeMonths}} months{{end}}</p>
{{if .ShowShares}}
<h2>Languages</h2>
<table>
<tr><th>Language</th><th>Spoken words</th><th>Share</th></tr>
{{range .Shares}}<tr><td>{{.Language}}</td><td>{{.Spoken}}</td><td>{{.Percent}}%</td></tr>
{{end}}</table>
{{end}}
{{range .Languages}}
<h2>{{.Language}}</h2>
<p>Understands {{.Understood}} words · speaks {{.Spoken}} words</p>
<table>
<tr><th>Category</th><th>Words</th><th>Understood</th><th>Spoken</th></tr>
{{range .Categories}}<tr><td>{{.Title}}</td><td>{{.WordCount}}</td><td>{{.Understood}}</td><td>{{.Spoken}}</td></tr>
{{end}}</table>
{{range .Categories}}{{if .SpokenWords}}<p class="spoken-words"><strong>{{.Title}}:</strong> {{range $i, $w := .SpokenWords}}{{if $i}}, {{end}}{{$w}}{{end}}</p>
{{end}}{{end}}
{{if .Histogram}}
<table>
<tr><th>First spoken at (months)</th><th>Words</th></tr>
{{range .Histogram}}<tr><td>{{.AgeMonths}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}
{{end}}
</body>
</html>
`))

// Render writes the HTML report for a child snapshot
func Render(w io.Writer, child *models.Child, now time.Time) error {
	data := reportData{
		Name:        child.Name,
		GeneratedAt: now.Format("January 2, 2006"),
		Shares:      stats.LanguageShares(child),
		ShowShares:  len(child.SelectedLanguages) > 1,
	}
	if child.BirthDate != nil {
		if months, err := models.AgeInMonths(*child.BirthDate, now); err == nil {
			data.AgeMonths = &months
		}
	}
	for _, lang := range child.SelectedLanguages {
		totals := stats.TotalsForLanguage(child, lang)
		data.Languages = append(data.Languages, languageSection{
			Language:   lang,
			Understood: totals.Understood,
			Spoken:     totals.Spoken,
			Categories: stats.CategoryBreakdown(child, lang),
			Histogram:  stats.AgeHistogram(child, lang),
		})
	}

	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
