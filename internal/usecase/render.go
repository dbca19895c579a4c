package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/naka-gawa/github-activity/internal/domain"
)

// OutputFormat selects how list results are laid out.
type OutputFormat string

const (
	OutputText  OutputFormat = "text"
	OutputTable OutputFormat = "table"
)

// ParseOutputFormat accepts "text" or "table".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputText, OutputTable:
		return f, nil
	}
	return "", &domain.InvalidOptionError{Name: "output", Reason: "must be text or table"}
}

// Renderer turns domain records into output lines.
type Renderer struct {
	format OutputFormat
}

// NewRenderer creates a Renderer for the given output format.
func NewRenderer(format OutputFormat) *Renderer {
	return &Renderer{format: format}
}

// Activity renders one "- " prefixed description per event.
func (r *Renderer) Activity(events []domain.ActivityEvent) []string {
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, "- "+domain.Describe(ev))
	}
	return lines
}

// Profile renders one "key: value" line per field in display order.
func (r *Renderer) Profile(p domain.ProfileRecord) []string {
	fields := p.Fields()
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, f.Key+": "+f.Value)
	}
	return lines
}

// Repos numbers repositories from 1, each followed by a blank line.
func (r *Renderer) Repos(repos []domain.RepoSummary) []string {
	if r.format == OutputTable {
		rows := make([][]string, 0, len(repos))
		for i, repo := range repos {
			rows = append(rows, []string{strconv.Itoa(i + 1), repo.Name, repo.URL})
		}
		return renderTable([]string{"#", "Name", "URL"}, rows)
	}

	lines := make([]string, 0, len(repos)*3)
	for i, repo := range repos {
		lines = append(lines,
			fmt.Sprintf("%d. Name: %s", i+1, repo.Name),
			"    URL: "+repo.URL,
			"",
		)
	}
	return lines
}

// Issues numbers issues from 1, each followed by a blank line.
func (r *Renderer) Issues(issues []domain.IssueSummary) []string {
	if r.format == OutputTable {
		rows := make([][]string, 0, len(issues))
		for i, is := range issues {
			rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(is.Number), is.Title, is.Status, is.URL})
		}
		return renderTable([]string{"#", "Number", "Title", "Status", "URL"}, rows)
	}

	lines := make([]string, 0, len(issues)*7)
	for i, is := range issues {
		lines = append(lines,
			fmt.Sprintf("%d. Issue: %s", i+1, is.Title),
			"   Context: "+is.Body,
			"   URL: "+is.URL,
			fmt.Sprintf("   Number: %d", is.Number),
			"   Repository: "+is.Repository,
			"   status: "+is.Status,
			"",
		)
	}
	return lines
}

func renderTable(header []string, rows [][]string) []string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
	return strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
}

// FormatError renders any error as the single line shown to the user.
func FormatError(err error) string {
	return "Error: " + err.Error()
}
