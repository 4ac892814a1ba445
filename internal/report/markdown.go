package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

const defaultTemplate = `# Learning report {{.Date}}

| Deck | Cards | Learned | Answered | Available | Avg. level |
| --- | ---: | ---: | ---: | ---: | ---: |
{{range .Decks -}}
| {{.DeckName}} | {{.TotalCards}} | {{.LearnedCards}} | {{.AnsweredCards}} | {{.AvailableCards}} | {{printf "%.1f" .AverageLevel}} |
{{end}}
Total: {{.Aggregate.TotalCards}} cards, {{.Aggregate.LearnedCards}} learned, {{.Aggregate.AnsweredCards}} answered, {{.Aggregate.AvailableCards}} available for exercise
`

// Renderer renders statistics as a markdown document.
type Renderer struct {
	template *template.Template
}

// NewRenderer parses the report template at templatePath. An empty path
// selects the built-in template.
func NewRenderer(templatePath string) (*Renderer, error) {
	text := defaultTemplate
	if templatePath != "" {
		content, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile(%s) > %w", templatePath, err)
		}
		text = string(content)
	}
	parsed, err := template.New("report").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("template.Parse(%s) > %w", templatePath, err)
	}
	return &Renderer{template: parsed}, nil
}

type templateData struct {
	Date      string
	Decks     []DeckStatistics
	Aggregate AggregateStatistics
}

// Render executes the template over the statistics.
func (r *Renderer) Render(result StatisticsResult, now time.Time) (string, error) {
	var b strings.Builder
	data := templateData{
		Date:      now.Format("2006-01-02"),
		Decks:     result.Decks,
		Aggregate: result.Aggregate,
	}
	if err := r.template.Execute(&b, data); err != nil {
		return "", fmt.Errorf("template.Execute > %w", err)
	}
	return b.String(), nil
}

// WriteReport renders the report into directory and returns the markdown
// file path.
func (r *Renderer) WriteReport(directory string, result StatisticsResult, now time.Time) (string, error) {
	rendered, err := r.Render(result, now)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}
	path := filepath.Join(directory, fmt.Sprintf("report-%s.md", now.Format("2006-01-02")))
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}
