// Package checklist reads and renders the markdown body of the deploy
// checklist issue.
package checklist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ryo246912/gh-deploy-checklist/internal/ghurl"
	"github.com/ryo246912/gh-deploy-checklist/internal/models"
)

const (
	ReleaseVersionHeader = "**Release Version:**"
	CompareChangesHeader = "**Compare Changes:**"
	PullRequestsHeader   = "**This release contains changes from the following pull requests:**"
	DeployBlockersHeader = "**Deploy Blockers:**"

	// Sections are found by the tail of their header line.
	pullRequestsMarker   = "pull requests:**"
	deployBlockersMarker = "Deploy Blockers:**"
)

// SectionKind identifies a checklist section.
type SectionKind int

const (
	PullRequests SectionKind = iota
	DeployBlockers
)

func (k SectionKind) String() string {
	if k == PullRequests {
		return "pull requests"
	}
	return "deploy blockers"
}

// Shape is the URL shape accepted when reading checkbox lines. Both
// sections take issue or pull request links.
func (k SectionKind) Shape() ghurl.Shape {
	return ghurl.ShapeIssueOrPullRequest
}

// ItemShape is the URL shape required when writing an item into the
// section.
func (k SectionKind) ItemShape() ghurl.Shape {
	if k == PullRequests {
		return ghurl.ShapePullRequest
	}
	return ghurl.ShapeIssueOrPullRequest
}

// Section is a header followed by its checkbox lines, in body order.
type Section struct {
	Kind  SectionKind
	Items []models.ChecklistItem
}

// URLs returns the section's item URLs in body order.
func (s Section) URLs() []string {
	urls := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		urls = append(urls, item.URL)
	}
	return urls
}

var checkboxRegex = regexp.MustCompile(`^- \[([ xX])\] (\S+)\s*$`)

// Tokenize splits body into its list sections. The pull request section
// ends at the first blank line; the deploy blocker section runs to the end
// of the text. Lines that are not checkboxes are ignored, but a checkbox
// whose URL has the wrong shape is an error.
func Tokenize(body string) ([]Section, error) {
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")

	var (
		sections []Section
		current  *Section
		seen     = map[SectionKind]bool{}
	)
	flush := func() {
		if current != nil {
			sections = append(sections, *current)
			current = nil
		}
	}

	for i, raw := range lines {
		line := strings.TrimRight(raw, " \t")

		if kind, ok := headerKind(line); ok {
			flush()
			if seen[kind] {
				return nil, malformed(fmt.Sprintf("duplicate %s section on line %d", kind, i+1), nil)
			}
			seen[kind] = true
			current = &Section{Kind: kind}
			continue
		}
		if current == nil {
			continue
		}
		if line == "" {
			if current.Kind == PullRequests {
				flush()
			}
			continue
		}

		m := checkboxRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := ghurl.NumberForShape(m[2], current.Kind.Shape())
		if err != nil {
			return nil, malformed(fmt.Sprintf("%s section, line %d", current.Kind, i+1), err)
		}
		current.Items = append(current.Items, models.ChecklistItem{
			URL:     m[2],
			Number:  n,
			Checked: m[1] != " ",
		})
	}
	flush()
	return sections, nil
}

func headerKind(line string) (SectionKind, bool) {
	switch {
	case strings.HasSuffix(line, pullRequestsMarker):
		return PullRequests, true
	case strings.HasSuffix(line, deployBlockersMarker):
		return DeployBlockers, true
	}
	return 0, false
}
