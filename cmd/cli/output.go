package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/model"
	"smart-task-analyzer/pkg/datemath"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	cellStyle = lipgloss.NewStyle().
			PaddingRight(2)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	bandStyles = map[model.PriorityBand]lipgloss.Style{
		model.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		model.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		model.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

// --- structured output ---

type explanationView struct {
	Urgency    float64            `json:"urgency" yaml:"urgency"`
	Importance float64            `json:"importance" yaml:"importance"`
	Effort     float64            `json:"effort" yaml:"effort"`
	Dependency float64            `json:"dependency" yaml:"dependency"`
	Weights    map[string]float64 `json:"weights" yaml:"weights"`
}

type taskView struct {
	ID             string          `json:"id" yaml:"id"`
	Title          string          `json:"title" yaml:"title"`
	DueDate        *string         `json:"due_date" yaml:"due_date"`
	EstimatedHours *float64        `json:"estimated_hours" yaml:"estimated_hours"`
	Importance     *float64        `json:"importance" yaml:"importance"`
	Dependencies   []string        `json:"dependencies" yaml:"dependencies"`
	Score          float64         `json:"score" yaml:"score"`
	PriorityBand   string          `json:"priority_band" yaml:"priority_band"`
	Explanation    explanationView `json:"explanation" yaml:"explanation"`
}

func newTaskView(t model.ScoredTask) taskView {
	v := taskView{
		ID:             t.ID,
		Title:          t.Title,
		EstimatedHours: t.EstimatedHours,
		Importance:     t.Importance,
		Dependencies:   t.Dependencies,
		Score:          t.Score,
		PriorityBand:   string(t.Band),
		Explanation: explanationView{
			Urgency:    t.Explanation.Urgency,
			Importance: t.Explanation.Importance,
			Effort:     t.Explanation.Effort,
			Dependency: t.Explanation.Dependency,
			Weights:    make(map[string]float64, len(model.Factors)),
		},
	}
	if v.Dependencies == nil {
		v.Dependencies = []string{}
	}
	if t.DueDate != nil {
		due := datemath.FormatISODate(*t.DueDate)
		v.DueDate = &due
	}
	for _, f := range model.Factors {
		v.Explanation.Weights[string(f)] = t.Explanation.Weights.Get(f)
	}
	return v
}

func newTaskViews(tasks []model.ScoredTask) []taskView {
	out := make([]taskView, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskView(t)
	}
	return out
}

type analyzeView struct {
	Tasks  []taskView `json:"tasks" yaml:"tasks"`
	Sorted []taskView `json:"sorted" yaml:"sorted"`
	Errors []string   `json:"errors" yaml:"errors"`
}

func newAnalyzeView(out analyzer.AnalyzeOutput) analyzeView {
	return analyzeView{
		Tasks:  newTaskViews(out.Tasks),
		Sorted: newTaskViews(out.Sorted),
		Errors: out.Errors,
	}
}

type suggestionView struct {
	ID     string   `json:"id" yaml:"id"`
	Title  string   `json:"title" yaml:"title"`
	Score  float64  `json:"score" yaml:"score"`
	Reason string   `json:"reason" yaml:"reason"`
	Task   taskView `json:"task" yaml:"task"`
}

type suggestView struct {
	Suggestions []suggestionView `json:"suggestions" yaml:"suggestions"`
}

func newSuggestView(out analyzer.SuggestOutput) suggestView {
	v := suggestView{Suggestions: make([]suggestionView, len(out.Suggestions))}
	for i, s := range out.Suggestions {
		v.Suggestions[i] = suggestionView{
			ID:     s.Task.ID,
			Title:  s.Task.Title,
			Score:  s.Task.Score,
			Reason: s.Reason,
			Task:   newTaskView(s.Task),
		}
	}
	return v
}

// encode writes data as JSON or YAML.
func encode(w io.Writer, format string, data any) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(data)
	default:
		return fmt.Errorf("unknown format: %s (supported: table, json, yaml)", format)
	}
}

// --- table output ---

// renderTable lays tasks out in aligned columns. reasons, when given, adds a
// column per row.
func renderTable(tasks []model.ScoredTask, reasons []string) string {
	if len(tasks) == 0 {
		return warnStyle.Render("No tasks.")
	}

	headers := []string{"#", "ID", "TITLE", "SCORE", "BAND", "DUE", "HOURS", "IMPORTANCE"}
	if reasons != nil {
		headers = append(headers, "REASON")
	}

	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		row := []string{
			fmt.Sprint(i + 1),
			t.ID,
			t.Title,
			fmt.Sprintf("%.3f", t.Score),
			string(t.Band),
			optionalDate(t),
			optionalNumber(t.EstimatedHours),
			optionalNumber(t.Importance),
		}
		if reasons != nil {
			row = append(row, reasons[i])
		}
		rows[i] = row
	}

	widths := make([]int, len(headers))
	for col, h := range headers {
		widths[col] = lipgloss.Width(h)
		for _, row := range rows {
			widths[col] = max(widths[col], lipgloss.Width(row[col]))
		}
	}

	var b strings.Builder
	b.WriteString(renderRow(headers, widths, func(int, string) lipgloss.Style { return headerStyle }))
	for i, row := range rows {
		band := tasks[i].Band
		b.WriteString("\n")
		b.WriteString(renderRow(row, widths, func(col int, _ string) lipgloss.Style {
			if headers[col] == "BAND" {
				return bandStyles[band]
			}
			return lipgloss.NewStyle()
		}))
	}
	return b.String()
}

func renderRow(cells []string, widths []int, style func(col int, cell string) lipgloss.Style) string {
	rendered := make([]string, len(cells))
	for col, cell := range cells {
		rendered[col] = cellStyle.Width(widths[col] + cellStyle.GetPaddingRight()).Render(style(col, cell).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func optionalDate(t model.ScoredTask) string {
	if t.DueDate == nil {
		return "-"
	}
	return datemath.FormatISODate(*t.DueDate)
}

func optionalNumber(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}
