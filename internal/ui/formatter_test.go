package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ryo246912/gh-deploy-checklist/internal/models"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "pad short string",
			input:    "hello",
			width:    10,
			expected: "hello     ",
		},
		{
			name:     "no padding needed",
			input:    "hello",
			width:    5,
			expected: "hello",
		},
		{
			name:     "string longer than width",
			input:    "hello world",
			width:    5,
			expected: "hello world",
		},
		{
			name:     "empty string",
			input:    "",
			width:    5,
			expected: "     ",
		},
		{
			name:     "zero width",
			input:    "hello",
			width:    0,
			expected: "hello",
		},
		{
			name:     "unicode characters",
			input:    "こんにちは",
			width:    15,
			expected: "こんにちは     ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadRight(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestFormatItem(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	got := FormatItem(models.ChecklistItem{URL: "https://github.com/o/r/pull/12", Number: 12, Checked: true})
	want := "[x] #12      https://github.com/o/r/pull/12"
	if got != want {
		t.Errorf("FormatItem() = %q, want %q", got, want)
	}
}

func TestFormatChecklist(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	issue := models.ChecklistIssue{
		URL:           "https://github.com/o/r/issues/1",
		Title:         "Deploy Checklist: 1.0.0-1",
		Tag:           "1.0.0-1",
		ComparisonURL: "https://github.com/o/r/compare/1.0.0-0...1.0.0-1",
	}
	prs := []models.ChecklistItem{
		{URL: "https://github.com/o/r/pull/2", Number: 2, Checked: true},
		{URL: "https://github.com/o/r/pull/3", Number: 3},
	}

	got := FormatChecklist(issue, prs, nil)
	for _, want := range []string{
		"Release:   1.0.0-1",
		"Pull requests (1/2)",
		"[ ] #3",
		"Deploy blockers (0/0)",
		"  none",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatChecklist() output should contain %q, got:\n%s", want, got)
		}
	}
}
