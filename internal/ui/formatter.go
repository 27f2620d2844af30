package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/ryo246912/gh-deploy-checklist/internal/models"
)

func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

func checkMark(checked bool) string {
	if checked {
		return color.New(color.FgGreen).Sprint("[x]")
	}
	return color.New(color.FgYellow).Sprint("[ ]")
}

// FormatItem renders one checklist row
func FormatItem(item models.ChecklistItem) string {
	return fmt.Sprintf("%s %s %s", checkMark(item.Checked), PadRight(fmt.Sprintf("#%d", item.Number), 8), item.URL)
}

// FormatChecklist renders the checklist issue for the terminal
func FormatChecklist(issue models.ChecklistIssue, prs, blockers []models.ChecklistItem) string {
	bold := color.New(color.Bold).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", bold(PadRight("Issue:", 10)), issue.URL)
	fmt.Fprintf(&b, "%s %s\n", bold(PadRight("Title:", 10)), issue.Title)
	fmt.Fprintf(&b, "%s %s\n", bold(PadRight("Release:", 10)), issue.Tag)
	fmt.Fprintf(&b, "%s %s\n", bold(PadRight("Compare:", 10)), issue.ComparisonURL)

	writeGroup(&b, bold("Pull requests"), prs)
	writeGroup(&b, bold("Deploy blockers"), blockers)
	return b.String()
}

func writeGroup(b *strings.Builder, title string, items []models.ChecklistItem) {
	done := 0
	for _, item := range items {
		if item.Checked {
			done++
		}
	}
	fmt.Fprintf(b, "\n%s (%d/%d)\n", title, done, len(items))
	if len(items) == 0 {
		b.WriteString("  none\n")
		return
	}
	for _, item := range items {
		b.WriteString("  " + FormatItem(item) + "\n")
	}
}
