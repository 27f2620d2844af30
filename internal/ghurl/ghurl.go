// Package ghurl extracts pull request and issue numbers from GitHub URLs.
package ghurl

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Shape names the kind of URL a parser accepts.
type Shape string

const (
	ShapePullRequest        Shape = "pull request"
	ShapeIssue              Shape = "issue"
	ShapeIssueOrPullRequest Shape = "issue or pull request"
)

// ErrInvalidURL is matched by every *InvalidURLError.
var ErrInvalidURL = errors.New("invalid URL")

// InvalidURLError reports a URL that does not have the expected shape.
type InvalidURLError struct {
	URL   string
	Shape Shape
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: expected a GitHub %s URL", e.URL, e.Shape)
}

func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

const (
	pullRequestPattern        = `https://github\.com/[^/\s]+/[^/\s]+/pull/([0-9]+)`
	issuePattern              = `https://github\.com/[^/\s]+/[^/\s]+/issues/([0-9]+)`
	issueOrPullRequestPattern = `https://github\.com/[^/\s]+/[^/\s]+/(?:pull|issues)/([0-9]+)`
)

var (
	pullRequestRegex        = regexp.MustCompile(`^` + pullRequestPattern + `\S*$`)
	issueRegex              = regexp.MustCompile(`^` + issuePattern + `\S*$`)
	issueOrPullRequestRegex = regexp.MustCompile(`^` + issueOrPullRequestPattern + `\S*$`)
)

// PullRequestNumber returns the number of a pull request URL.
func PullRequestNumber(url string) (int, error) {
	return number(url, pullRequestRegex, ShapePullRequest)
}

// IssueNumber returns the number of an issue URL.
func IssueNumber(url string) (int, error) {
	return number(url, issueRegex, ShapeIssue)
}

// IssueOrPullRequestNumber accepts both /pull/N and /issues/N URLs.
func IssueOrPullRequestNumber(url string) (int, error) {
	return number(url, issueOrPullRequestRegex, ShapeIssueOrPullRequest)
}

// NumberForShape dispatches to the parser for shape.
func NumberForShape(url string, shape Shape) (int, error) {
	switch shape {
	case ShapePullRequest:
		return PullRequestNumber(url)
	case ShapeIssue:
		return IssueNumber(url)
	case ShapeIssueOrPullRequest:
		return IssueOrPullRequestNumber(url)
	default:
		return 0, fmt.Errorf("unknown URL shape %q", shape)
	}
}

// ParseShape maps CLI names (pull, issue, any) to a Shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "pull", "pr":
		return ShapePullRequest, nil
	case "issue":
		return ShapeIssue, nil
	case "any", "":
		return ShapeIssueOrPullRequest, nil
	default:
		return "", fmt.Errorf("unknown URL shape %q (must be pull, issue or any)", s)
	}
}

func number(url string, re *regexp.Regexp, shape Shape) (int, error) {
	m := re.FindStringSubmatch(url)
	if len(m) != 2 {
		return 0, &InvalidURLError{URL: url, Shape: shape}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &InvalidURLError{URL: url, Shape: shape}
	}
	return n, nil
}
