package models

// User represents a GitHub user
type User struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}

// Label represents an issue label
type Label struct {
	Name string `json:"name"`
}

// Issue represents the subset of a GitHub issue the checklist needs
type Issue struct {
	Number    int     `json:"number"`
	Title     string  `json:"title"`
	HTMLURL   string  `json:"html_url"`
	Body      string  `json:"body"`
	State     string  `json:"state"`
	Labels    []Label `json:"labels"`
	Assignees []User  `json:"assignees"`
}

// LabelNames returns the names of the issue's labels
func (i Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		names = append(names, l.Name)
	}
	return names
}

// Tag represents a git tag as returned by the tags endpoint
type Tag struct {
	Name string `json:"name"`
}

// IssueRequest is the payload for creating an issue
type IssueRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Labels    []string `json:"labels,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
}

// ChecklistIssue is the decoded state of the open deploy checklist.
// Derive a new value instead of mutating one in place.
type ChecklistIssue struct {
	Number         int      `json:"number"`
	Title          string   `json:"title"`
	URL            string   `json:"url"`
	Labels         []string `json:"labels"`
	Tag            string   `json:"tag"`
	ComparisonURL  string   `json:"comparison_url"`
	PRList         []string `json:"pr_list"`
	DeployBlockers []string `json:"deploy_blockers"`
}

// ChecklistItem is one checkbox line of the checklist body
type ChecklistItem struct {
	URL     string `json:"url"`
	Number  int    `json:"number"`
	Checked bool   `json:"checked"`
}
